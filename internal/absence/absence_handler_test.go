package absence_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrapp/internal/absence"
	absenceerrors "go-hrapp/internal/absence/errors"
	absenceMock "go-hrapp/internal/absence/mock"
	"go-hrapp/internal/domain"
	"go-hrapp/internal/shared/apperror"
	"go-hrapp/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok   bool            `json:"ok"`
	Data json.RawMessage `json:"data"`
	Meta *struct {
		Total    int64 `json:"total"`
		Page     int   `json:"page"`
		PageSize int   `json:"pageSize"`
	} `json:"meta"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// newHandlerRouter stands in for AuthMiddleware by injecting p directly.
func newHandlerRouter(h *absence.Handler, p *domain.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if p != nil {
			c.Request = c.Request.WithContext(contextutil.WithPrincipal(c.Request.Context(), *p))
		}
	})
	g := r.Group("/absence-requests")
	g.POST("", h.Create)
	g.GET("/my", h.ListMine)
	g.GET("/all", h.ListAll)
	g.GET("/pending", h.ListPending)
	g.GET("/decided", h.ListDecided)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id/approve", h.Approve)
	g.PUT("/:id/reject", h.Reject)
	g.DELETE("/:id", h.Delete)
	return r
}

func TestAbsenceHandler(t *testing.T) {
	employee := domain.Principal{ID: uuid.New(), Role: domain.RoleEmployee}
	manager := domain.Principal{ID: uuid.New(), Role: domain.RoleManager}
	id := uuid.NewString()

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := absenceMock.NewMockService(ctrl)
		r := newHandlerRouter(absence.NewHandler(svc), &employee)

		svc.EXPECT().
			Create(gomock.Any(), employee, absence.CreateAbsenceRequest{StartDate: "2024-01-15", EndDate: "2024-01-17", Reason: "Vacation"}).
			Return(absence.AbsenceResponse{ID: id, Status: "PENDING"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/absence-requests",
			strings.NewReader(`{"startDate":"2024-01-15","endDate":"2024-01-17","reason":"Vacation"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var got absence.AbsenceResponse
		assert.NoError(t, json.Unmarshal(decode(t, w).Data, &got))
		assert.Equal(t, "PENDING", got.Status)
	})

	t.Run("negative create missing end date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := absenceMock.NewMockService(ctrl)
		r := newHandlerRouter(absence.NewHandler(svc), &employee)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/absence-requests", strings.NewReader(`{"startDate":"2024-01-15"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperror.CodeInvalidInput, decode(t, w).Error.Code)
	})

	t.Run("negative create invalid range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := absenceMock.NewMockService(ctrl)
		r := newHandlerRouter(absence.NewHandler(svc), &employee)

		svc.EXPECT().Create(gomock.Any(), employee, gomock.Any()).Return(absence.AbsenceResponse{}, absenceerrors.ErrInvalidDateRange)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/absence-requests",
			strings.NewReader(`{"startDate":"2024-01-17","endDate":"2024-01-15"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_DATE_RANGE", decode(t, w).Error.Code)
	})

	t.Run("list mine passes status filter and paginates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := absenceMock.NewMockService(ctrl)
		r := newHandlerRouter(absence.NewHandler(svc), &employee)

		list := make([]absence.AbsenceResponse, 12)
		svc.EXPECT().ListMine(gomock.Any(), employee, absence.ListFilter{Status: "PENDING"}).Return(list, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/absence-requests/my?status=PENDING&page=2", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w)
		var got []absence.AbsenceResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 2)
		assert.Equal(t, int64(12), env.Meta.Total)
		assert.Equal(t, 2, env.Meta.Page)
	})

	t.Run("negative list all as employee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := absenceMock.NewMockService(ctrl)
		r := newHandlerRouter(absence.NewHandler(svc), &employee)

		svc.EXPECT().ListAll(gomock.Any(), employee).Return(nil, apperror.ErrAccessDenied)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/absence-requests/all", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "ACCESS_DENIED", decode(t, w).Error.Code)
	})

	t.Run("pending and decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := absenceMock.NewMockService(ctrl)
		r := newHandlerRouter(absence.NewHandler(svc), &manager)

		svc.EXPECT().ListPending(gomock.Any(), manager).Return([]absence.AbsenceResponse{{ID: id}}, nil)
		svc.EXPECT().ListDecided(gomock.Any(), manager).Return([]absence.AbsenceResponse{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/absence-requests/pending", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/absence-requests/decided", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("get by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := absenceMock.NewMockService(ctrl)
		r := newHandlerRouter(absence.NewHandler(svc), &manager)

		svc.EXPECT().GetByID(gomock.Any(), manager, id).Return(absence.AbsenceResponse{}, absenceerrors.ErrAbsenceRequestNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/absence-requests/"+id, nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "ABSENCE_REQUEST_NOT_FOUND", decode(t, w).Error.Code)
	})

	t.Run("approve with comments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := absenceMock.NewMockService(ctrl)
		r := newHandlerRouter(absence.NewHandler(svc), &manager)

		svc.EXPECT().
			Approve(gomock.Any(), manager, id, absence.DecisionRequest{Comments: "Approved for vacation"}).
			Return(absence.AbsenceResponse{ID: id, Status: "APPROVED"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/absence-requests/"+id+"/approve",
			strings.NewReader(`{"comments":"Approved for vacation"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("reject without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := absenceMock.NewMockService(ctrl)
		r := newHandlerRouter(absence.NewHandler(svc), &manager)

		svc.EXPECT().
			Reject(gomock.Any(), manager, id, absence.DecisionRequest{}).
			Return(absence.AbsenceResponse{ID: id, Status: "REJECTED"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/absence-requests/"+id+"/reject", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative approve terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := absenceMock.NewMockService(ctrl)
		r := newHandlerRouter(absence.NewHandler(svc), &manager)

		svc.EXPECT().Approve(gomock.Any(), manager, id, gomock.Any()).Return(absence.AbsenceResponse{}, absenceerrors.ErrInvalidRequestStatus)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/absence-requests/"+id+"/approve", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_REQUEST_STATUS", decode(t, w).Error.Code)
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := absenceMock.NewMockService(ctrl)
		r := newHandlerRouter(absence.NewHandler(svc), &employee)

		svc.EXPECT().Delete(gomock.Any(), employee, id).Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/absence-requests/"+id, nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative internal error is not leaked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := absenceMock.NewMockService(ctrl)
		r := newHandlerRouter(absence.NewHandler(svc), &employee)

		svc.EXPECT().Delete(gomock.Any(), employee, id).Return(assert.AnError)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/absence-requests/"+id, nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decode(t, w)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.Equal(t, "Internal server error", env.Error.Message)
	})

	t.Run("negative no principal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := absenceMock.NewMockService(ctrl)
		r := newHandlerRouter(absence.NewHandler(svc), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/absence-requests/my", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
