package training

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"backoffice/internal/domain"
)

// Mock repositories
type MockClassRepository struct {
	mock.Mock
}

func (m *MockClassRepository) Create(ctx context.Context, c *domain.TrainingClass) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockClassRepository) GetByID(ctx context.Context, id int64) (*domain.TrainingClass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainingClass), args.Error(1)
}

func (m *MockClassRepository) List(ctx context.Context) ([]domain.TrainingClass, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrainingClass), args.Error(1)
}

func (m *MockClassRepository) Update(ctx context.Context, c *domain.TrainingClass) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClassRepository) AddSession(ctx context.Context, s *domain.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockClassRepository) ListSessions(ctx context.Context, classID int64) ([]domain.Session, error) {
	args := m.Called(ctx, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Session), args.Error(1)
}

type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) CreateSubject(ctx context.Context, s *domain.Subject) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockReferenceRepository) GetSubjectByID(ctx context.Context, id int64) (*domain.Subject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subject), args.Error(1)
}

func (m *MockReferenceRepository) UpdateSubject(ctx context.Context, s *domain.Subject) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockReferenceRepository) ListSubjects(ctx context.Context) ([]domain.Subject, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subject), args.Error(1)
}

func (m *MockReferenceRepository) CreateTeacher(ctx context.Context, t *domain.Teacher) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockReferenceRepository) ListTeachers(ctx context.Context) ([]domain.Teacher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Teacher), args.Error(1)
}

func (m *MockReferenceRepository) CreateStudent(ctx context.Context, s *domain.Student) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockReferenceRepository) ListStudents(ctx context.Context) ([]domain.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Student), args.Error(1)
}

func (m *MockReferenceRepository) GetStudentsByIDs(ctx context.Context, ids []int64) ([]domain.Student, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Student), args.Error(1)
}

type recordingSink struct {
	events []string
}

func (r *recordingSink) Publish(event string, payload any) {
	r.events = append(r.events, event)
}

func newTestService() (*Service, *MockClassRepository, *MockReferenceRepository, *recordingSink) {
	classes := new(MockClassRepository)
	refs := new(MockReferenceRepository)
	sink := &recordingSink{}
	return NewService(classes, refs, sink), classes, refs, sink
}

func students(n int) []domain.Student {
	out := make([]domain.Student, n)
	for i := range out {
		out[i] = domain.Student{ID: int64(i + 1)}
	}
	return out
}

func TestCreateClass_ComputesRevenue(t *testing.T) {
	svc, classes, refs, sink := newTestService()
	ctx := context.Background()

	refs.On("GetSubjectByID", ctx, int64(1)).Return(&domain.Subject{ID: 1, Name: "Go"}, nil)
	refs.On("GetStudentsByIDs", ctx, []int64{1, 2, 3, 4, 5}).Return(students(5), nil)
	classes.On("Create", ctx, mock.AnythingOfType("*domain.TrainingClass")).Return(nil)

	c, err := svc.CreateClass(ctx, CreateClassRequest{
		Name:       "Go Programming",
		SubjectID:  1,
		StudentIDs: []int64{1, 2, 3, 4, 5},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), c.PricePerStudent)
	assert.Equal(t, int64(5_000_000), c.TotalRevenue)
	assert.Equal(t, domain.ClassDraft, c.Status)
	assert.Equal(t, []string{"class.created"}, sink.events)
}

func TestCreateClass_CustomPrice(t *testing.T) {
	svc, classes, refs, _ := newTestService()
	ctx := context.Background()

	refs.On("GetSubjectByID", ctx, int64(1)).Return(&domain.Subject{ID: 1}, nil)
	refs.On("GetStudentsByIDs", ctx, []int64{1, 2}).Return(students(2), nil)
	classes.On("Create", ctx, mock.AnythingOfType("*domain.TrainingClass")).Return(nil)

	price := int64(250_000)
	c, err := svc.CreateClass(ctx, CreateClassRequest{
		Name:            "SQL Basics",
		SubjectID:       1,
		StudentIDs:      []int64{1, 2},
		PricePerStudent: &price,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(500_000), c.TotalRevenue)
}

func TestCreateClass_RejectsShortName(t *testing.T) {
	svc, _, _, sink := newTestService()

	_, err := svc.CreateClass(context.Background(), CreateClassRequest{Name: "AB", SubjectID: 1})
	assert.ErrorIs(t, err, ErrNameTooShort)
	assert.Empty(t, sink.events)
}

func TestCreateClass_RejectsBlankName(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateClass(context.Background(), CreateClassRequest{Name: "   ", SubjectID: 1})
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestCreateClass_RejectsReversedDates(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateClass(context.Background(), CreateClassRequest{
		Name:      "Go Programming",
		SubjectID: 1,
		StartDate: d(2024, 12, 1),
		EndDate:   d(2024, 9, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestUpdateClass_RecomputesRevenue(t *testing.T) {
	svc, classes, refs, _ := newTestService()
	ctx := context.Background()

	classes.On("GetByID", ctx, int64(3)).Return(&domain.TrainingClass{
		ID:              3,
		Name:            "Go Programming",
		PricePerStudent: 1_000_000,
		TotalRevenue:    2_000_000,
		Students:        students(2),
	}, nil)
	refs.On("GetStudentsByIDs", ctx, []int64{1, 2, 3}).Return(students(3), nil)
	classes.On("Update", ctx, mock.AnythingOfType("*domain.TrainingClass")).Return(nil)

	ids := []int64{1, 2, 3}
	c, err := svc.UpdateClass(ctx, 3, UpdateClassRequest{StudentIDs: &ids})

	require.NoError(t, err)
	assert.Equal(t, int64(3_000_000), c.TotalRevenue)
}

func TestUpdateClass_RevalidatesName(t *testing.T) {
	svc, classes, _, _ := newTestService()
	ctx := context.Background()

	classes.On("GetByID", ctx, int64(3)).Return(&domain.TrainingClass{
		ID:   3,
		Name: "Go Programming",
	}, nil)

	short := "Go"
	_, err := svc.UpdateClass(ctx, 3, UpdateClassRequest{Name: &short})
	assert.ErrorIs(t, err, ErrNameTooShort)
}

func TestEnroll_ReplacesStudentsAndRecomputes(t *testing.T) {
	svc, classes, refs, sink := newTestService()
	ctx := context.Background()

	classes.On("GetByID", ctx, int64(3)).Return(&domain.TrainingClass{
		ID:              3,
		Name:            "Go Programming",
		PricePerStudent: 1_000_000,
		Students:        students(1),
	}, nil)
	refs.On("GetStudentsByIDs", ctx, []int64{4, 5, 6, 7}).Return(students(4), nil)
	classes.On("Update", ctx, mock.AnythingOfType("*domain.TrainingClass")).Return(nil)

	c, err := svc.Enroll(ctx, 3, []int64{4, 5, 6, 7})

	require.NoError(t, err)
	assert.Len(t, c.Students, 4)
	assert.Equal(t, int64(4_000_000), c.TotalRevenue)
	assert.Equal(t, []string{"class.enrollment_changed"}, sink.events)
}

func TestCreateSubject_DerivesCodeFromDescription(t *testing.T) {
	svc, _, refs, _ := newTestService()
	ctx := context.Background()

	refs.On("CreateSubject", ctx, mock.AnythingOfType("*domain.Subject")).Return(nil)

	subject, err := svc.CreateSubject(ctx, CreateSubjectRequest{
		Name:        "Go Programming",
		Description: "golang fundamentals",
	})

	require.NoError(t, err)
	require.NotNil(t, subject.Code)
	assert.Equal(t, "GOL", *subject.Code)
}

func TestCreateSubject_KeepsExplicitCode(t *testing.T) {
	svc, _, refs, _ := newTestService()
	ctx := context.Background()

	refs.On("CreateSubject", ctx, mock.AnythingOfType("*domain.Subject")).Return(nil)

	subject, err := svc.CreateSubject(ctx, CreateSubjectRequest{
		Name:        "Go Programming",
		Code:        "GOP",
		Description: "golang fundamentals",
	})

	require.NoError(t, err)
	require.NotNil(t, subject.Code)
	assert.Equal(t, "GOP", *subject.Code)
}

func TestCreateSubject_ShortDescriptionYieldsNoCode(t *testing.T) {
	svc, _, refs, _ := newTestService()
	ctx := context.Background()

	refs.On("CreateSubject", ctx, mock.AnythingOfType("*domain.Subject")).Return(nil)

	subject, err := svc.CreateSubject(ctx, CreateSubjectRequest{
		Name:        "Databases",
		Description: "db",
	})

	require.NoError(t, err)
	assert.Nil(t, subject.Code)
}

func TestCreateSubject_DuplicateCode(t *testing.T) {
	svc, _, refs, _ := newTestService()
	ctx := context.Background()

	refs.On("CreateSubject", ctx, mock.AnythingOfType("*domain.Subject")).Return(gorm.ErrDuplicatedKey)

	_, err := svc.CreateSubject(ctx, CreateSubjectRequest{
		Name: "Go Programming",
		Code: "GOP",
	})
	assert.ErrorIs(t, err, ErrDuplicateCode)
}

func TestUpdateSubject_RederivesCodeOnDescriptionChange(t *testing.T) {
	svc, _, refs, _ := newTestService()
	ctx := context.Background()

	current := "GOL"
	refs.On("GetSubjectByID", ctx, int64(2)).Return(&domain.Subject{
		ID:          2,
		Name:        "Go Programming",
		Code:        &current,
		Description: "golang fundamentals",
	}, nil)
	refs.On("UpdateSubject", ctx, mock.AnythingOfType("*domain.Subject")).Return(nil)

	desc := "advanced concurrency"
	subject, err := svc.UpdateSubject(ctx, 2, UpdateSubjectRequest{Description: &desc})

	require.NoError(t, err)
	require.NotNil(t, subject.Code)
	assert.Equal(t, "ADV", *subject.Code)
}

func TestRevenue(t *testing.T) {
	svc, classes, _, _ := newTestService()
	ctx := context.Background()

	classes.On("GetByID", ctx, int64(3)).Return(&domain.TrainingClass{
		ID:              3,
		PricePerStudent: 1_000_000,
		Students:        students(5),
	}, nil)

	revenue, err := svc.Revenue(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5_000_000), revenue)
}
