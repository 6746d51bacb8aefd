package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	autherrors "go-hrapp/internal/auth/errors"
	"go-hrapp/internal/domain"
	"go-hrapp/internal/policy"
	profileerrors "go-hrapp/internal/profile/errors"
	"go-hrapp/internal/shared/apperror"
	"go-hrapp/internal/shared/contextutil"
	"go-hrapp/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	BasicListCacheKey = "profiles:basic"
	DefaultCacheTTL   = 10 * time.Minute

	employeeIDSequence = "employee_id"
	dateLayout         = "2006-01-02"
)

//go:generate mockgen -source=profile_service.go -destination=mock/profile_service_mock.go -package=mock
type Service interface {
	ListBasic(ctx context.Context, actor domain.Principal) ([]BasicProfileResponse, error)
	ListDetailed(ctx context.Context, actor domain.Principal) ([]DetailedProfileResponse, error)
	GetBasic(ctx context.Context, actor domain.Principal, id string) (BasicProfileResponse, error)
	GetDetailed(ctx context.Context, actor domain.Principal, id string) (DetailedProfileResponse, error)
	GetMine(ctx context.Context, actor domain.Principal) (DetailedProfileResponse, error)
	GetBasicByEmployeeID(ctx context.Context, actor domain.Principal, employeeID string) (BasicProfileResponse, error)
	ListReports(ctx context.Context, actor domain.Principal, id string) ([]BasicProfileResponse, error)
	Create(ctx context.Context, actor domain.Principal, req CreateProfileRequest) (DetailedProfileResponse, error)
	Update(ctx context.Context, actor domain.Principal, id string, req UpdateProfileRequest) (DetailedProfileResponse, error)
}

type service struct {
	repo     Repository
	seq      counter.Repository
	authz    policy.Authorizer
	names    *Directory
	rdb      *redis.Client
	cacheTTL time.Duration
	sf       singleflight.Group
	logger   *zap.Logger
}

func NewService(repo Repository, seq counter.Repository, authz policy.Authorizer, logger ...*zap.Logger) Service {
	return NewServiceWithCache(repo, seq, authz, nil, DefaultCacheTTL, logger...)
}

// NewServiceWithCache keeps the basic listing in redis for ttl. Writes drop
// the cached entry.
func NewServiceWithCache(
	repo Repository,
	seq counter.Repository,
	authz policy.Authorizer,
	rdb *redis.Client,
	ttl time.Duration,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("profile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.service")
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &service{
		repo:     repo,
		seq:      seq,
		authz:    authz,
		names:    NewDirectory(repo),
		rdb:      rdb,
		cacheTTL: ttl,
		logger:   l,
	}
}

func (s *service) ListBasic(ctx context.Context, actor domain.Principal) ([]BasicProfileResponse, error) {
	if err := s.authz.Decide(actor, policy.ProfileListBasic, policy.Resource{}).Err(); err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, BasicListCacheKey).Result(); err == nil {
			var resp []BasicProfileResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(BasicListCacheKey, func() (interface{}, error) {
		list, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		resp, err := s.basicList(ctx, list)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, BasicListCacheKey, jsonData, s.cacheTTL).Err(); err != nil {
					s.logger.Warn("cache basic profiles failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("list basic profiles failed", zap.Error(err))
		return nil, err
	}

	return v.([]BasicProfileResponse), nil
}

func (s *service) ListDetailed(ctx context.Context, actor domain.Principal) ([]DetailedProfileResponse, error) {
	if err := s.authz.Decide(actor, policy.ProfileListDetailed, policy.Resource{}).Err(); err != nil {
		return nil, err
	}

	list, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list detailed profiles failed", zap.Error(err))
		return nil, err
	}

	names, err := s.managerNames(ctx, list)
	if err != nil {
		return nil, err
	}

	out := make([]DetailedProfileResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toDetailedResponse(p, names))
	}
	return out, nil
}

func (s *service) GetBasic(ctx context.Context, actor domain.Principal, id string) (BasicProfileResponse, error) {
	p, err := s.findByID(ctx, id)
	if err != nil {
		return BasicProfileResponse{}, err
	}
	if err := s.authz.Decide(actor, policy.ProfileReadBasic, policy.Resource{OwnerID: p.UserID}).Err(); err != nil {
		return BasicProfileResponse{}, err
	}

	list, err := s.basicList(ctx, []EmployeeProfile{*p})
	if err != nil {
		return BasicProfileResponse{}, err
	}
	return list[0], nil
}

func (s *service) GetDetailed(ctx context.Context, actor domain.Principal, id string) (DetailedProfileResponse, error) {
	p, err := s.findByID(ctx, id)
	if err != nil {
		return DetailedProfileResponse{}, err
	}
	if d := s.authz.Decide(actor, policy.ProfileReadDetailed, policy.Resource{OwnerID: p.UserID}); !d.Allowed {
		s.logger.Warn("detailed profile denied",
			zap.String("profile_id", id),
			zap.String("actor_id", actor.ID.String()),
		)
		return DetailedProfileResponse{}, d.Err()
	}

	return s.detailed(ctx, *p)
}

func (s *service) GetMine(ctx context.Context, actor domain.Principal) (DetailedProfileResponse, error) {
	p, err := s.repo.FindByUserID(ctx, actor.ID)
	if err != nil {
		return DetailedProfileResponse{}, mapRepositoryError(err)
	}
	if err := s.authz.Decide(actor, policy.ProfileReadDetailed, policy.Resource{OwnerID: p.UserID}).Err(); err != nil {
		return DetailedProfileResponse{}, err
	}

	return s.detailed(ctx, *p)
}

func (s *service) GetBasicByEmployeeID(ctx context.Context, actor domain.Principal, employeeID string) (BasicProfileResponse, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return BasicProfileResponse{}, profileerrors.ErrProfileNotFound
	}

	p, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return BasicProfileResponse{}, mapRepositoryError(err)
	}
	if err := s.authz.Decide(actor, policy.ProfileReadBasic, policy.Resource{OwnerID: p.UserID}).Err(); err != nil {
		return BasicProfileResponse{}, err
	}

	list, err := s.basicList(ctx, []EmployeeProfile{*p})
	if err != nil {
		return BasicProfileResponse{}, err
	}
	return list[0], nil
}

func (s *service) ListReports(ctx context.Context, actor domain.Principal, id string) ([]BasicProfileResponse, error) {
	if err := s.authz.Decide(actor, policy.ProfileListBasic, policy.Resource{}).Err(); err != nil {
		return nil, err
	}

	p, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reports, err := s.repo.FindByManagerID(ctx, p.UserID)
	if err != nil {
		s.logger.Error("list reports failed", zap.String("profile_id", id), zap.Error(err))
		return nil, err
	}
	return s.basicList(ctx, reports)
}

func (s *service) Create(ctx context.Context, actor domain.Principal, req CreateProfileRequest) (DetailedProfileResponse, error) {
	if err := s.authz.Decide(actor, policy.ProfileCreate, policy.Resource{}).Err(); err != nil {
		return DetailedProfileResponse{}, err
	}

	rid := contextutil.GetRequestID(ctx)
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return DetailedProfileResponse{}, profileerrors.ErrInvalidUserID
	}
	hireDate, err := parseHireDate(req.HireDate)
	if err != nil {
		return DetailedProfileResponse{}, err
	}

	exists, err := s.repo.PrincipalExists(ctx, userID)
	if err != nil {
		s.logger.Error("create profile principal lookup failed", zap.String("request_id", rid), zap.Error(err))
		return DetailedProfileResponse{}, err
	}
	if !exists {
		return DetailedProfileResponse{}, autherrors.ErrUserNotFound
	}

	employeeID, err := s.employeeID(ctx, req.EmployeeID)
	if err != nil {
		return DetailedProfileResponse{}, err
	}

	p := &EmployeeProfile{
		ID:                    uuid.New(),
		UserID:                userID,
		EmployeeID:            employeeID,
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Department:            req.Department,
		Position:              req.Position,
		HireDate:              hireDate,
		Phone:                 req.Phone,
		Address:               req.Address,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
	}

	if req.ManagerID != nil {
		managerID, ok, err := s.resolveManager(ctx, *req.ManagerID)
		if err != nil {
			return DetailedProfileResponse{}, err
		}
		if !ok {
			return DetailedProfileResponse{}, profileerrors.ErrManagerNotFound
		}
		p.ManagerID = &managerID
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create profile persist failed", zap.String("request_id", rid), zap.Error(err))
		return DetailedProfileResponse{}, mapRepositoryError(err)
	}

	s.invalidateBasicList(ctx)
	s.logger.Info("create profile success",
		zap.String("request_id", rid),
		zap.String("profile_id", p.ID.String()),
		zap.String("user_id", userID.String()),
	)

	return s.detailed(ctx, *p)
}

func (s *service) Update(ctx context.Context, actor domain.Principal, id string, req UpdateProfileRequest) (DetailedProfileResponse, error) {
	p, err := s.findByID(ctx, id)
	if err != nil {
		return DetailedProfileResponse{}, err
	}
	if d := s.authz.Decide(actor, policy.ProfileUpdate, policy.Resource{OwnerID: p.UserID}); !d.Allowed {
		s.logger.Warn("update profile denied",
			zap.String("profile_id", id),
			zap.String("actor_id", actor.ID.String()),
		)
		return DetailedProfileResponse{}, d.Err()
	}

	hireDate, err := parseHireDate(req.HireDate)
	if err != nil {
		return DetailedProfileResponse{}, err
	}

	p.FirstName = req.FirstName
	p.LastName = req.LastName
	p.Department = req.Department
	p.Position = req.Position
	p.HireDate = hireDate
	p.Phone = req.Phone
	p.Address = req.Address
	p.EmergencyContactName = req.EmergencyContactName
	p.EmergencyContactPhone = req.EmergencyContactPhone

	if req.ManagerID != nil {
		if s.authz.Decide(actor, policy.ProfileReassignManager, policy.Resource{OwnerID: p.UserID}).Allowed {
			managerID, ok, err := s.resolveManager(ctx, *req.ManagerID)
			if err != nil {
				return DetailedProfileResponse{}, err
			}
			if ok {
				p.ManagerID = &managerID
			} else {
				// Unknown managers keep the previous value and the rest of the
				// update still applies. Pending product confirmation.
				s.logger.Warn("update profile manager not found, keeping previous manager",
					zap.String("profile_id", id),
					zap.String("manager_id", *req.ManagerID),
				)
			}
		} else {
			s.logger.Debug("update profile manager change ignored for non-manager",
				zap.String("profile_id", id),
				zap.String("actor_id", actor.ID.String()),
			)
		}
	}

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("update profile persist failed", zap.String("profile_id", id), zap.Error(err))
		return DetailedProfileResponse{}, mapRepositoryError(err)
	}

	s.invalidateBasicList(ctx)
	s.logger.Info("update profile success",
		zap.String("profile_id", id),
		zap.String("actor_id", actor.ID.String()),
	)

	return s.detailed(ctx, *p)
}

func (s *service) findByID(ctx context.Context, id string) (*EmployeeProfile, error) {
	profileID, err := uuid.Parse(id)
	if err != nil {
		return nil, profileerrors.ErrInvalidProfileID
	}

	p, err := s.repo.FindByID(ctx, profileID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("find profile failed", zap.String("profile_id", id), zap.Error(err))
		}
		return nil, mapRepositoryError(err)
	}
	return p, nil
}

// employeeID returns the requested business key or, when none was given,
// the next EMP-###### value.
func (s *service) employeeID(ctx context.Context, requested string) (string, error) {
	if v := strings.TrimSpace(requested); v != "" {
		return v, nil
	}
	if s.seq == nil {
		return "", apperror.RequiredField("Employee ID")
	}

	next, err := s.seq.NextValue(ctx, employeeIDSequence)
	if err != nil {
		s.logger.Error("generate employee id failed", zap.Error(err))
		return "", err
	}
	return fmt.Sprintf("EMP-%06d", next), nil
}

// resolveManager reports ok=false for ids that are malformed or do not
// belong to an existing principal.
func (s *service) resolveManager(ctx context.Context, raw string) (uuid.UUID, bool, error) {
	managerID, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, false, nil
	}

	exists, err := s.repo.PrincipalExists(ctx, managerID)
	if err != nil {
		s.logger.Error("manager lookup failed", zap.String("manager_id", raw), zap.Error(err))
		return uuid.Nil, false, err
	}
	return managerID, exists, nil
}

func (s *service) invalidateBasicList(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, BasicListCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate basic profiles cache",
			zap.Error(err),
			zap.String("key", BasicListCacheKey),
		)
	}
}

func (s *service) managerNames(ctx context.Context, list []EmployeeProfile) (map[uuid.UUID]string, error) {
	ids := make([]uuid.UUID, 0, len(list))
	for _, p := range list {
		if p.ManagerID != nil {
			ids = append(ids, *p.ManagerID)
		}
	}

	names, err := s.names.DisplayNames(ctx, ids)
	if err != nil {
		s.logger.Error("manager name lookup failed", zap.Error(err))
		return nil, err
	}
	return names, nil
}

func (s *service) basicList(ctx context.Context, list []EmployeeProfile) ([]BasicProfileResponse, error) {
	names, err := s.managerNames(ctx, list)
	if err != nil {
		return nil, err
	}

	out := make([]BasicProfileResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toBasicResponse(p, names))
	}
	return out, nil
}

func (s *service) detailed(ctx context.Context, p EmployeeProfile) (DetailedProfileResponse, error) {
	names, err := s.managerNames(ctx, []EmployeeProfile{p})
	if err != nil {
		return DetailedProfileResponse{}, err
	}
	return toDetailedResponse(p, names), nil
}

func parseHireDate(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, profileerrors.ErrInvalidHireDate
	}
	return &t, nil
}

func toBasicResponse(p EmployeeProfile, names map[uuid.UUID]string) BasicProfileResponse {
	resp := BasicProfileResponse{
		ID:         p.ID.String(),
		UserID:     p.UserID.String(),
		EmployeeID: p.EmployeeID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Department: p.Department,
		Position:   p.Position,
	}
	if p.ManagerID != nil {
		managerID := p.ManagerID.String()
		resp.ManagerID = &managerID
		resp.ManagerName = names[*p.ManagerID]
	}
	return resp
}

func toDetailedResponse(p EmployeeProfile, names map[uuid.UUID]string) DetailedProfileResponse {
	resp := DetailedProfileResponse{
		BasicProfileResponse:  toBasicResponse(p, names),
		Phone:                 p.Phone,
		Address:               p.Address,
		EmergencyContactName:  p.EmergencyContactName,
		EmergencyContactPhone: p.EmergencyContactPhone,
		CreatedAt:             p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             p.UpdatedAt.Format(time.RFC3339),
	}
	if p.HireDate != nil {
		hireDate := p.HireDate.Format(dateLayout)
		resp.HireDate = &hireDate
	}
	return resp
}
