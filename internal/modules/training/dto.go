package training

import "time"

type CreateClassRequest struct {
	Name            string     `json:"name" binding:"required"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	SubjectID       int64      `json:"subject_id" binding:"required"`
	TeacherID       *int64     `json:"teacher_id"`
	StudentIDs      []int64    `json:"student_ids"`
	PricePerStudent *int64     `json:"price_per_student"`
}

type UpdateClassRequest struct {
	Name            *string    `json:"name"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	Status          *string    `json:"status"`
	TeacherID       *int64     `json:"teacher_id"`
	StudentIDs      *[]int64   `json:"student_ids"`
	PricePerStudent *int64     `json:"price_per_student"`
}

type EnrollRequest struct {
	StudentIDs []int64 `json:"student_ids" binding:"required"`
}

type AddSessionRequest struct {
	Name            string     `json:"name" binding:"required"`
	Date            *time.Time `json:"date"`
	DurationMinutes int        `json:"duration_minutes"`
}

type CreateSubjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

type UpdateSubjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type CreateTeacherRequest struct {
	Name   string `json:"name" validate:"required"`
	Phone  string `json:"phone"`
	Skills string `json:"skills"`
}

type CreateStudentRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
	StudentNumber string `json:"student_number"`
}
