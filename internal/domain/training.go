package domain

import "time"

type ClassStatus string

const (
	ClassDraft  ClassStatus = "draft"
	ClassOpen   ClassStatus = "open"
	ClassClosed ClassStatus = "closed"
)

// Subject codes are unique when present; subjects whose descriptions are
// too short to derive one carry no code at all, hence the pointer.
type Subject struct {
	ID          int64   `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" validate:"required" gorm:"not null"`
	Code        *string `json:"code,omitempty" gorm:"size:10;uniqueIndex"`
	Description string  `json:"description,omitempty" gorm:"type:text"`
}

func (Subject) TableName() string { return "subjects" }

type Teacher struct {
	ID     int64  `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" validate:"required" gorm:"not null"`
	Phone  string `json:"phone,omitempty"`
	Skills string `json:"skills,omitempty" gorm:"type:text"`
}

func (Teacher) TableName() string { return "teachers" }

type Student struct {
	ID            int64  `json:"id" gorm:"primaryKey"`
	Name          string `json:"name" validate:"required" gorm:"not null"`
	Email         string `json:"email,omitempty"`
	StudentNumber string `json:"student_number,omitempty"`
}

func (Student) TableName() string { return "students" }

// TrainingClass is the training root record. TotalRevenue is derived from
// the enrolled-student count and the per-student price.
type TrainingClass struct {
	ID        int64       `json:"id" gorm:"primaryKey"`
	Name      string      `json:"name" validate:"required,min=3" gorm:"not null"`
	StartDate *time.Time  `json:"start_date,omitempty"`
	EndDate   *time.Time  `json:"end_date,omitempty"`
	Status    ClassStatus `json:"status" gorm:"size:20;default:'draft'"`

	SubjectID int64  `json:"subject_id" validate:"required"`
	TeacherID *int64 `json:"teacher_id,omitempty"`

	PricePerStudent int64 `json:"price_per_student" gorm:"default:1000000"`
	TotalRevenue    int64 `json:"total_revenue"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Subject  *Subject  `json:"subject,omitempty" gorm:"foreignKey:SubjectID"`
	Teacher  *Teacher  `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`
	Students []Student `json:"students,omitempty" gorm:"many2many:class_students"`
	Sessions []Session `json:"sessions,omitempty" gorm:"foreignKey:ClassID"`
}

func (TrainingClass) TableName() string { return "training_classes" }

type Session struct {
	ID              int64      `json:"id" gorm:"primaryKey"`
	Name            string     `json:"name" validate:"required" gorm:"not null"`
	Date            *time.Time `json:"date,omitempty"`
	DurationMinutes int        `json:"duration_minutes"`
	ClassID         int64      `json:"class_id" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Session) TableName() string { return "sessions" }
