package repository

import (
	"context"

	"gorm.io/gorm"

	"backoffice/internal/domain"
)

type ClassRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

func (r *ClassRepository) Create(ctx context.Context, c *domain.TrainingClass) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*domain.TrainingClass, error) {
	var c domain.TrainingClass
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Preload("Teacher").
		Preload("Students").
		Preload("Sessions").
		First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClassRepository) List(ctx context.Context) ([]domain.TrainingClass, error) {
	var classes []domain.TrainingClass
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Preload("Teacher").
		Order("id DESC").
		Find(&classes).Error
	return classes, err
}

// Update persists stored attributes, the enrolled-student set and the
// derived revenue in one transaction.
func (r *ClassRepository) Update(ctx context.Context, c *domain.TrainingClass) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":              c.Name,
			"start_date":        c.StartDate,
			"end_date":          c.EndDate,
			"status":            c.Status,
			"subject_id":        c.SubjectID,
			"teacher_id":        c.TeacherID,
			"price_per_student": c.PricePerStudent,
			"total_revenue":     c.TotalRevenue,
		}
		if err := tx.Model(&domain.TrainingClass{}).Where("id = ?", c.ID).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Model(c).Association("Students").Replace(c.Students)
	})
}

func (r *ClassRepository) AddSession(ctx context.Context, s *domain.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ClassRepository) ListSessions(ctx context.Context, classID int64) ([]domain.Session, error) {
	var sessions []domain.Session
	err := r.db.WithContext(ctx).
		Where("class_id = ?", classID).
		Order("date").
		Find(&sessions).Error
	return sessions, err
}
