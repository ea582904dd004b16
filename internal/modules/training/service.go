package training

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"backoffice/internal/domain"
)

type Service struct {
	classes ClassRepository
	refs    ReferenceRepository
	events  EventSink
}

func NewService(classes ClassRepository, refs ReferenceRepository, events EventSink) *Service {
	return &Service{classes: classes, refs: refs, events: events}
}

// CreateClass validates the structural invariants and derives the revenue
// from the enrolled students and the per-student price.
func (s *Service) CreateClass(ctx context.Context, req CreateClassRequest) (*domain.TrainingClass, error) {
	if err := ValidateClass(req.Name, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	if _, err := s.refs.GetSubjectByID(ctx, req.SubjectID); err != nil {
		return nil, mapNotFound(err)
	}

	students, err := s.refs.GetStudentsByIDs(ctx, req.StudentIDs)
	if err != nil {
		return nil, err
	}

	price := int64(1_000_000)
	if req.PricePerStudent != nil {
		price = *req.PricePerStudent
	}

	c := &domain.TrainingClass{
		Name:            req.Name,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Status:          domain.ClassDraft,
		SubjectID:       req.SubjectID,
		TeacherID:       req.TeacherID,
		PricePerStudent: price,
		TotalRevenue:    TotalRevenue(len(students), price),
		Students:        students,
	}
	if err := s.classes.Create(ctx, c); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish("class.created", c)
	}
	return c, nil
}

// UpdateClass applies the changes, re-validates the invariants on the
// post-change values and recomputes the revenue.
func (s *Service) UpdateClass(ctx context.Context, id int64, req UpdateClassRequest) (*domain.TrainingClass, error) {
	c, err := s.classes.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.StartDate != nil {
		c.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		c.EndDate = req.EndDate
	}
	if req.Status != nil {
		if !validClassStatus(*req.Status) {
			return nil, ErrValidation
		}
		c.Status = domain.ClassStatus(*req.Status)
	}
	if req.TeacherID != nil {
		c.TeacherID = req.TeacherID
	}
	if req.PricePerStudent != nil {
		c.PricePerStudent = *req.PricePerStudent
	}
	if req.StudentIDs != nil {
		students, err := s.refs.GetStudentsByIDs(ctx, *req.StudentIDs)
		if err != nil {
			return nil, err
		}
		c.Students = students
	}

	if err := ValidateClass(c.Name, c.StartDate, c.EndDate); err != nil {
		return nil, err
	}

	c.TotalRevenue = TotalRevenue(len(c.Students), c.PricePerStudent)
	if err := s.classes.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Enroll replaces the student set and recomputes revenue in one write.
func (s *Service) Enroll(ctx context.Context, classID int64, studentIDs []int64) (*domain.TrainingClass, error) {
	c, err := s.classes.GetByID(ctx, classID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	students, err := s.refs.GetStudentsByIDs(ctx, studentIDs)
	if err != nil {
		return nil, err
	}
	c.Students = students
	c.TotalRevenue = TotalRevenue(len(students), c.PricePerStudent)

	if err := s.classes.Update(ctx, c); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish("class.enrollment_changed", c)
	}
	return c, nil
}

func (s *Service) GetClass(ctx context.Context, id int64) (*domain.TrainingClass, error) {
	c, err := s.classes.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return c, nil
}

func (s *Service) ListClasses(ctx context.Context) ([]domain.TrainingClass, error) {
	return s.classes.List(ctx)
}

func (s *Service) Revenue(ctx context.Context, id int64) (int64, error) {
	c, err := s.classes.GetByID(ctx, id)
	if err != nil {
		return 0, mapNotFound(err)
	}
	return TotalRevenue(len(c.Students), c.PricePerStudent), nil
}

func (s *Service) AddSession(ctx context.Context, classID int64, req AddSessionRequest) (*domain.Session, error) {
	if _, err := s.classes.GetByID(ctx, classID); err != nil {
		return nil, mapNotFound(err)
	}
	session := &domain.Session{
		Name:            req.Name,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		ClassID:         classID,
	}
	if err := s.classes.AddSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) ListSessions(ctx context.Context, classID int64) ([]domain.Session, error) {
	return s.classes.ListSessions(ctx, classID)
}

// CreateSubject derives the code from the description when none is given.
// Codes are unique; a clash surfaces as ErrDuplicateCode.
func (s *Service) CreateSubject(ctx context.Context, req CreateSubjectRequest) (*domain.Subject, error) {
	subject := &domain.Subject{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Code != "" {
		subject.Code = &req.Code
	} else if code, ok := SubjectCode(req.Description); ok {
		subject.Code = &code
	}
	if err := s.refs.CreateSubject(ctx, subject); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateCode
		}
		return nil, err
	}
	return subject, nil
}

// UpdateSubject re-derives the code whenever the description changes.
func (s *Service) UpdateSubject(ctx context.Context, id int64, req UpdateSubjectRequest) (*domain.Subject, error) {
	subject, err := s.refs.GetSubjectByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if req.Name != nil {
		subject.Name = *req.Name
	}
	if req.Description != nil {
		subject.Description = *req.Description
		if code, ok := SubjectCode(*req.Description); ok {
			subject.Code = &code
		}
	}

	if err := s.refs.UpdateSubject(ctx, subject); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateCode
		}
		return nil, err
	}
	return subject, nil
}

func (s *Service) ListSubjects(ctx context.Context) ([]domain.Subject, error) {
	return s.refs.ListSubjects(ctx)
}

func (s *Service) CreateTeacher(ctx context.Context, req CreateTeacherRequest) (*domain.Teacher, error) {
	t := &domain.Teacher{Name: req.Name, Phone: req.Phone, Skills: req.Skills}
	if err := s.refs.CreateTeacher(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) ListTeachers(ctx context.Context) ([]domain.Teacher, error) {
	return s.refs.ListTeachers(ctx)
}

func (s *Service) CreateStudent(ctx context.Context, req CreateStudentRequest) (*domain.Student, error) {
	st := &domain.Student{Name: req.Name, Email: req.Email, StudentNumber: req.StudentNumber}
	if err := s.refs.CreateStudent(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Service) ListStudents(ctx context.Context) ([]domain.Student, error) {
	return s.refs.ListStudents(ctx)
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
