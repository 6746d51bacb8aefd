package absence

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=absence_repo.go -destination=mock/absence_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *AbsenceRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*AbsenceRequest, error)
	FindAll(ctx context.Context) ([]AbsenceRequest, error)
	FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]AbsenceRequest, error)
	FindByStatus(ctx context.Context, status Status) ([]AbsenceRequest, error)
	FindByRequesterAndStatus(ctx context.Context, requesterID uuid.UUID, status Status) ([]AbsenceRequest, error)
	FindByApprover(ctx context.Context, approverID uuid.UUID) ([]AbsenceRequest, error)
	// Transition applies d only while the row is still PENDING. It reports
	// false when no row was updated.
	Transition(ctx context.Context, id uuid.UUID, d Decision) (bool, error)
	// DeletePending removes the row only if it belongs to requesterID and is
	// still PENDING.
	DeletePending(ctx context.Context, id, requesterID uuid.UUID) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn runs statements on the bound transaction when there is one.
// WithContext clones the statement, so the shared handle is never mutated.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, a *AbsenceRequest) error {
	return r.conn(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*AbsenceRequest, error) {
	var a AbsenceRequest
	if err := r.conn(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAll(ctx context.Context) ([]AbsenceRequest, error) {
	var list []AbsenceRequest
	err := r.conn(ctx).
		Order("requested_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]AbsenceRequest, error) {
	var list []AbsenceRequest
	err := r.conn(ctx).
		Where("requester_id = ?", requesterID).
		Order("requested_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) FindByStatus(ctx context.Context, status Status) ([]AbsenceRequest, error) {
	var list []AbsenceRequest
	err := r.conn(ctx).
		Where("status = ?", status).
		Order("requested_at ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) FindByRequesterAndStatus(ctx context.Context, requesterID uuid.UUID, status Status) ([]AbsenceRequest, error) {
	var list []AbsenceRequest
	err := r.conn(ctx).
		Where("requester_id = ?", requesterID).
		Where("status = ?", status).
		Order("requested_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) FindByApprover(ctx context.Context, approverID uuid.UUID) ([]AbsenceRequest, error) {
	var list []AbsenceRequest
	err := r.conn(ctx).
		Where("approver_id = ?", approverID).
		Order("approved_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) Transition(ctx context.Context, id uuid.UUID, d Decision) (bool, error) {
	res := r.conn(ctx).
		Model(&AbsenceRequest{}).
		Where("id = ?", id).
		Where("status = ?", StatusPending).
		Updates(map[string]any{
			"status":      d.Status,
			"approver_id": d.ApproverID,
			"approved_at": d.ApprovedAt,
			"comments":    d.Comments,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) DeletePending(ctx context.Context, id, requesterID uuid.UUID) (bool, error) {
	res := r.conn(ctx).
		Where("id = ?", id).
		Where("requester_id = ?", requesterID).
		Where("status = ?", StatusPending).
		Delete(&AbsenceRequest{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
