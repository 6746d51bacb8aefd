package absence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	absenceerrors "go-hrapp/internal/absence/errors"
	"go-hrapp/internal/domain"
	"go-hrapp/internal/events"
	"go-hrapp/internal/messaging/kafka"
	"go-hrapp/internal/policy"
	"go-hrapp/internal/shared/apperror"
	"go-hrapp/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=absence_service.go -destination=mock/absence_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor domain.Principal, req CreateAbsenceRequest) (AbsenceResponse, error)
	ListMine(ctx context.Context, actor domain.Principal, filter ListFilter) ([]AbsenceResponse, error)
	ListAll(ctx context.Context, actor domain.Principal) ([]AbsenceResponse, error)
	ListPending(ctx context.Context, actor domain.Principal) ([]AbsenceResponse, error)
	ListDecided(ctx context.Context, actor domain.Principal) ([]AbsenceResponse, error)
	GetByID(ctx context.Context, actor domain.Principal, id string) (AbsenceResponse, error)
	Approve(ctx context.Context, actor domain.Principal, id string, req DecisionRequest) (AbsenceResponse, error)
	Reject(ctx context.Context, actor domain.Principal, id string, req DecisionRequest) (AbsenceResponse, error)
	Delete(ctx context.Context, actor domain.Principal, id string) error
}

// NameLookup resolves display names ("First Last") for principal ids.
// Principals without a profile are absent from the result.
type NameLookup interface {
	DisplayNames(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]string, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	authz  policy.Authorizer
	names  NameLookup
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, authz policy.Authorizer, names NameLookup, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, authz, names, nil, logger...)
}

// NewServiceWithOutbox also records every state change in the outbox, in the
// same transaction as the change itself.
func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	authz policy.Authorizer,
	names NameLookup,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("absence.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("absence.service")
	}
	return &service{db: db, repo: repo, authz: authz, names: names, outbox: outbox, logger: l}
}

func (s *service) Create(ctx context.Context, actor domain.Principal, req CreateAbsenceRequest) (AbsenceResponse, error) {
	if err := s.authz.Decide(actor, policy.AbsenceCreate, policy.Resource{OwnerID: actor.ID}).Err(); err != nil {
		return AbsenceResponse{}, err
	}

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("create absence validation failed",
			zap.String("requester_id", actor.ID.String()),
			zap.Error(err),
		)
		return AbsenceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create absence begin tx failed", zap.Error(err))
		return AbsenceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a := &AbsenceRequest{
		ID:          uuid.New(),
		RequesterID: actor.ID,
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      req.Reason,
		Status:      StatusPending,
		RequestedAt: time.Now().UTC(),
	}
	if err := qtx.Create(ctx, a); err != nil {
		s.logger.Error("create absence persist failed", zap.Error(err))
		return AbsenceResponse{}, err
	}

	if err := s.enqueue(ctx, tx, events.AbsenceRequested, actor.ID, a); err != nil {
		return AbsenceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create absence commit failed", zap.Error(err))
		return AbsenceResponse{}, err
	}
	s.logger.Info("create absence success",
		zap.String("absence_id", a.ID.String()),
		zap.String("requester_id", actor.ID.String()),
	)

	return s.respondOne(ctx, *a)
}

func (s *service) ListMine(ctx context.Context, actor domain.Principal, filter ListFilter) ([]AbsenceResponse, error) {
	if err := s.authz.Decide(actor, policy.AbsenceListOwn, policy.Resource{OwnerID: actor.ID}).Err(); err != nil {
		return nil, err
	}

	var (
		list []AbsenceRequest
		err  error
	)
	if filter.Status == "" {
		list, err = s.repo.FindByRequester(ctx, actor.ID)
	} else {
		status, ok := ParseStatus(filter.Status)
		if !ok {
			return nil, absenceerrors.ErrInvalidStatusFilter
		}
		list, err = s.repo.FindByRequesterAndStatus(ctx, actor.ID, status)
	}
	if err != nil {
		return nil, err
	}

	return s.respondList(ctx, list)
}

func (s *service) ListAll(ctx context.Context, actor domain.Principal) ([]AbsenceResponse, error) {
	if err := s.authz.Decide(actor, policy.AbsenceListAll, policy.Resource{}).Err(); err != nil {
		return nil, err
	}

	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.respondList(ctx, list)
}

func (s *service) ListPending(ctx context.Context, actor domain.Principal) ([]AbsenceResponse, error) {
	if err := s.authz.Decide(actor, policy.AbsenceListPending, policy.Resource{}).Err(); err != nil {
		return nil, err
	}

	list, err := s.repo.FindByStatus(ctx, StatusPending)
	if err != nil {
		return nil, err
	}
	return s.respondList(ctx, list)
}

func (s *service) ListDecided(ctx context.Context, actor domain.Principal) ([]AbsenceResponse, error) {
	if err := s.authz.Decide(actor, policy.AbsenceListDecided, policy.Resource{}).Err(); err != nil {
		return nil, err
	}

	list, err := s.repo.FindByApprover(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return s.respondList(ctx, list)
}

func (s *service) GetByID(ctx context.Context, actor domain.Principal, id string) (AbsenceResponse, error) {
	absenceID, err := uuid.Parse(id)
	if err != nil {
		return AbsenceResponse{}, absenceerrors.ErrInvalidAbsenceRequestID
	}

	a, err := s.repo.FindByID(ctx, absenceID)
	if err != nil {
		return AbsenceResponse{}, mapRepositoryError(err)
	}

	res := policy.Resource{OwnerID: a.RequesterID, Status: string(a.Status)}
	if err := s.authz.Decide(actor, policy.AbsenceRead, res).Err(); err != nil {
		return AbsenceResponse{}, err
	}

	return s.respondOne(ctx, *a)
}

func (s *service) Approve(ctx context.Context, actor domain.Principal, id string, req DecisionRequest) (AbsenceResponse, error) {
	return s.transition(ctx, actor, id, StatusApproved, req.Comments)
}

func (s *service) Reject(ctx context.Context, actor domain.Principal, id string, req DecisionRequest) (AbsenceResponse, error) {
	return s.transition(ctx, actor, id, StatusRejected, req.Comments)
}

// transition moves a PENDING request to target. The policy check catches
// requests that are already terminal; the conditional update in the store
// catches a concurrent decision that landed after the read.
func (s *service) transition(ctx context.Context, actor domain.Principal, id string, target Status, comments string) (AbsenceResponse, error) {
	absenceID, err := uuid.Parse(id)
	if err != nil {
		return AbsenceResponse{}, absenceerrors.ErrInvalidAbsenceRequestID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide absence begin tx failed", zap.Error(err))
		return AbsenceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindByID(ctx, absenceID)
	if err != nil {
		return AbsenceResponse{}, mapRepositoryError(err)
	}

	res := policy.Resource{OwnerID: a.RequesterID, Status: string(a.Status)}
	if d := s.authz.Decide(actor, policy.AbsenceDecide, res); !d.Allowed {
		s.logger.Warn("decide absence denied",
			zap.String("absence_id", id),
			zap.String("actor_id", actor.ID.String()),
			zap.String("reason", string(d.Reason)),
		)
		if d.Reason == policy.ReasonStatus {
			return AbsenceResponse{}, absenceerrors.ErrInvalidRequestStatus
		}
		return AbsenceResponse{}, d.Err()
	}

	decision := Decision{
		Status:     target,
		ApproverID: actor.ID,
		ApprovedAt: time.Now().UTC(),
		Comments:   comments,
	}
	updated, err := qtx.Transition(ctx, absenceID, decision)
	if err != nil {
		s.logger.Error("decide absence persist failed", zap.String("absence_id", id), zap.Error(err))
		return AbsenceResponse{}, err
	}
	if !updated {
		s.logger.Warn("decide absence lost race", zap.String("absence_id", id))
		return AbsenceResponse{}, absenceerrors.ErrInvalidRequestStatus
	}

	a.Status = decision.Status
	a.ApproverID = &decision.ApproverID
	a.ApprovedAt = &decision.ApprovedAt
	a.Comments = &decision.Comments

	eventType := events.AbsenceApproved
	if target == StatusRejected {
		eventType = events.AbsenceRejected
	}
	if err := s.enqueue(ctx, tx, eventType, actor.ID, a); err != nil {
		return AbsenceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide absence commit failed", zap.Error(err))
		return AbsenceResponse{}, err
	}
	s.logger.Info("decide absence success",
		zap.String("absence_id", id),
		zap.String("status", string(target)),
		zap.String("approver_id", actor.ID.String()),
	)

	return s.respondOne(ctx, *a)
}

func (s *service) Delete(ctx context.Context, actor domain.Principal, id string) error {
	absenceID, err := uuid.Parse(id)
	if err != nil {
		return absenceerrors.ErrInvalidAbsenceRequestID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete absence begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindByID(ctx, absenceID)
	if err != nil {
		return mapRepositoryError(err)
	}

	res := policy.Resource{OwnerID: a.RequesterID, Status: string(a.Status)}
	if d := s.authz.Decide(actor, policy.AbsenceDelete, res); !d.Allowed {
		s.logger.Warn("delete absence denied",
			zap.String("absence_id", id),
			zap.String("actor_id", actor.ID.String()),
			zap.String("reason", string(d.Reason)),
		)
		return d.Err()
	}

	deleted, err := qtx.DeletePending(ctx, absenceID, actor.ID)
	if err != nil {
		s.logger.Error("delete absence persist failed", zap.String("absence_id", id), zap.Error(err))
		return err
	}
	if !deleted {
		// decided or withdrawn between the read and the delete
		return apperror.ErrAccessDenied
	}

	if err := s.enqueue(ctx, tx, events.AbsenceWithdrawn, actor.ID, a); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete absence commit failed", zap.Error(err))
		return err
	}
	s.logger.Info("delete absence success", zap.String("absence_id", id))

	return nil
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, eventType string, actorID uuid.UUID, a *AbsenceRequest) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.AbsenceLifecycleEvent{
		EventType:   eventType,
		RequestID:   rid,
		AbsenceID:   a.ID.String(),
		RequesterID: a.RequesterID.String(),
		ActorID:     actorID.String(),
		Status:      string(a.Status),
		StartDate:   a.StartDate.Format(dateLayout),
		EndDate:     a.EndDate.Format(dateLayout),
		OccurredAt:  time.Now().UTC(),
	}
	if a.Comments != nil {
		event.Comments = *a.Comments
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal absence event failed", zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "absence_request",
		AggregateID:   a.ID.String(),
		EventType:     eventType,
		Topic:         events.AbsenceLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("absence outbox persist failed",
			zap.String("absence_id", a.ID.String()),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) respondOne(ctx context.Context, a AbsenceRequest) (AbsenceResponse, error) {
	list, err := s.respondList(ctx, []AbsenceRequest{a})
	if err != nil {
		return AbsenceResponse{}, err
	}
	return list[0], nil
}

func (s *service) respondList(ctx context.Context, list []AbsenceRequest) ([]AbsenceResponse, error) {
	names := map[uuid.UUID]string{}
	if s.names != nil && len(list) > 0 {
		ids := make([]uuid.UUID, 0, len(list)*2)
		for _, a := range list {
			ids = append(ids, a.RequesterID)
			if a.ApproverID != nil {
				ids = append(ids, *a.ApproverID)
			}
		}

		var err error
		names, err = s.names.DisplayNames(ctx, ids)
		if err != nil {
			s.logger.Error("absence name lookup failed", zap.Error(err))
			return nil, err
		}
	}

	out := make([]AbsenceResponse, 0, len(list))
	for _, a := range list {
		out = append(out, mapToResponse(a, names))
	}
	return out, nil
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, absenceerrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, absenceerrors.ErrInvalidDateFormat
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, absenceerrors.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return absenceerrors.ErrAbsenceRequestNotFound
	}
	return err
}

func mapToResponse(a AbsenceRequest, names map[uuid.UUID]string) AbsenceResponse {
	resp := AbsenceResponse{
		ID:            a.ID.String(),
		RequesterID:   a.RequesterID.String(),
		RequesterName: names[a.RequesterID],
		StartDate:     a.StartDate.Format(dateLayout),
		EndDate:       a.EndDate.Format(dateLayout),
		Reason:        a.Reason,
		Status:        string(a.Status),
		RequestedAt:   a.RequestedAt.UTC().Format(time.RFC3339),
		Comments:      a.Comments,
	}

	if a.ApproverID != nil {
		approverID := a.ApproverID.String()
		approverName := names[*a.ApproverID]
		resp.ApproverID = &approverID
		resp.ApproverName = &approverName
	}
	if a.ApprovedAt != nil {
		approvedAt := a.ApprovedAt.UTC().Format(time.RFC3339)
		resp.ApprovedAt = &approvedAt
	}

	return resp
}
