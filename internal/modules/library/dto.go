package library

import (
	"time"

	"backoffice/internal/domain"
)

type CreateBookRequest struct {
	Name          string     `json:"name" binding:"required"`
	ISBN          string     `json:"isbn"`
	Condition     string     `json:"condition"`
	PurchasePrice int64      `json:"purchase_price"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	CategoryID    *int64     `json:"category_id"`
	AuthorIDs     []int64    `json:"author_ids"`
	Notes         string     `json:"notes"`
}

type UpdateBookRequest struct {
	Name          *string    `json:"name"`
	ISBN          *string    `json:"isbn"`
	Condition     *string    `json:"condition"`
	PurchasePrice *int64     `json:"purchase_price"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	CategoryID    *int64     `json:"category_id"`
	AuthorIDs     *[]int64   `json:"author_ids"`
	Notes         *string    `json:"notes"`
}

type ChangeStateRequest struct {
	State string `json:"state" binding:"required"`
}

type CreateLoanRequest struct {
	BookID       int64      `json:"book_id" binding:"required"`
	BorrowerName string     `json:"borrower_name"`
	BorrowDate   *time.Time `json:"borrow_date"`
	ReturnDate   *time.Time `json:"return_date"`
}

type ReturnLoanRequest struct {
	ReturnDate *time.Time `json:"return_date"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateAuthorRequest struct {
	Name string `json:"name" binding:"required"`
	Bio  string `json:"bio"`
}

// BookResponse adds the read-time derivations: the star rating and a
// days-since-purchase figure that is fresh relative to "today".
type BookResponse struct {
	domain.Book
	ConditionLevel int `json:"condition_level"`
}

// LoanResponse carries the return-date suggestion for loans created
// without one; the suggestion is advisory and not persisted.
type LoanResponse struct {
	domain.Loan
	SuggestedReturnDate *time.Time `json:"suggested_return_date,omitempty"`
}
