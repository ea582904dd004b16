package training

import (
	"context"

	"backoffice/internal/domain"
)

type ClassRepository interface {
	Create(ctx context.Context, c *domain.TrainingClass) error
	GetByID(ctx context.Context, id int64) (*domain.TrainingClass, error)
	List(ctx context.Context) ([]domain.TrainingClass, error)
	Update(ctx context.Context, c *domain.TrainingClass) error
	AddSession(ctx context.Context, s *domain.Session) error
	ListSessions(ctx context.Context, classID int64) ([]domain.Session, error)
}

// ReferenceRepository covers the training reference entities.
type ReferenceRepository interface {
	CreateSubject(ctx context.Context, s *domain.Subject) error
	GetSubjectByID(ctx context.Context, id int64) (*domain.Subject, error)
	UpdateSubject(ctx context.Context, s *domain.Subject) error
	ListSubjects(ctx context.Context) ([]domain.Subject, error)
	CreateTeacher(ctx context.Context, t *domain.Teacher) error
	ListTeachers(ctx context.Context) ([]domain.Teacher, error)
	CreateStudent(ctx context.Context, s *domain.Student) error
	ListStudents(ctx context.Context) ([]domain.Student, error)
	GetStudentsByIDs(ctx context.Context, ids []int64) ([]domain.Student, error)
}

type EventSink interface {
	Publish(event string, payload any)
}
