package profile

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=profile_repo.go -destination=mock/profile_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, p *EmployeeProfile) error
	Update(ctx context.Context, p *EmployeeProfile) error
	FindAll(ctx context.Context) ([]EmployeeProfile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*EmployeeProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*EmployeeProfile, error)
	FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]EmployeeProfile, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*EmployeeProfile, error)
	FindByManagerID(ctx context.Context, managerID uuid.UUID) ([]EmployeeProfile, error)
	PrincipalExists(ctx context.Context, userID uuid.UUID) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *EmployeeProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) Update(ctx context.Context, p *EmployeeProfile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) FindAll(ctx context.Context) ([]EmployeeProfile, error) {
	var list []EmployeeProfile
	err := r.db.WithContext(ctx).
		Order("last_name ASC, first_name ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*EmployeeProfile, error) {
	var p EmployeeProfile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*EmployeeProfile, error) {
	var p EmployeeProfile
	if err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]EmployeeProfile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var list []EmployeeProfile
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&list).Error
	return list, err
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*EmployeeProfile, error) {
	var p EmployeeProfile
	if err := r.db.WithContext(ctx).First(&p, "employee_id = ?", employeeID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByManagerID(ctx context.Context, managerID uuid.UUID) ([]EmployeeProfile, error) {
	var list []EmployeeProfile
	err := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		Order("last_name ASC, first_name ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) PrincipalExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("users").
		Where("id = ?", userID).
		Count(&count).Error
	return count > 0, err
}
