package repository

import (
	"context"

	"gorm.io/gorm"

	"backoffice/internal/domain"
)

// TrainingRepository covers the training reference entities: subjects,
// teachers and students.
type TrainingRepository struct {
	db *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) *TrainingRepository {
	return &TrainingRepository{db: db}
}

func (r *TrainingRepository) CreateSubject(ctx context.Context, s *domain.Subject) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *TrainingRepository) GetSubjectByID(ctx context.Context, id int64) (*domain.Subject, error) {
	var s domain.Subject
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *TrainingRepository) UpdateSubject(ctx context.Context, s *domain.Subject) error {
	updates := map[string]interface{}{
		"name":        s.Name,
		"code":        s.Code,
		"description": s.Description,
	}
	return r.db.WithContext(ctx).
		Model(&domain.Subject{}).
		Where("id = ?", s.ID).
		Updates(updates).Error
}

func (r *TrainingRepository) ListSubjects(ctx context.Context) ([]domain.Subject, error) {
	var subjects []domain.Subject
	err := r.db.WithContext(ctx).Order("name").Find(&subjects).Error
	return subjects, err
}

func (r *TrainingRepository) CreateTeacher(ctx context.Context, t *domain.Teacher) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TrainingRepository) ListTeachers(ctx context.Context) ([]domain.Teacher, error) {
	var teachers []domain.Teacher
	err := r.db.WithContext(ctx).Order("name").Find(&teachers).Error
	return teachers, err
}

func (r *TrainingRepository) CreateStudent(ctx context.Context, s *domain.Student) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *TrainingRepository) ListStudents(ctx context.Context) ([]domain.Student, error) {
	var students []domain.Student
	err := r.db.WithContext(ctx).Order("name").Find(&students).Error
	return students, err
}

func (r *TrainingRepository) GetStudentsByIDs(ctx context.Context, ids []int64) ([]domain.Student, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var students []domain.Student
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&students).Error
	return students, err
}
