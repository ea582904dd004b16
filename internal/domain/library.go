package domain

import "time"

type BookState string

const (
	BookDraft     BookState = "draft"
	BookAvailable BookState = "available"
	BookBorrowed  BookState = "borrowed"
	BookLost      BookState = "lost"
)

// Book condition grades, stored as the raw selection keys "0".."3"
// (poor, fair, good, new).
const (
	ConditionPoor = "0"
	ConditionFair = "1"
	ConditionGood = "2"
	ConditionNew  = "3"
)

type Category struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" validate:"required" gorm:"not null"`
}

func (Category) TableName() string { return "categories" }

type Author struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" validate:"required" gorm:"not null"`
	Bio  string `json:"bio,omitempty" gorm:"type:text"`
}

func (Author) TableName() string { return "authors" }

// Book is the library root record. ShortDescription, DaysSincePurchase and
// TotalLoans are derived and stored; the star rating (condition level) is
// derived on read.
type Book struct {
	ID            int64      `json:"id" gorm:"primaryKey"`
	Name          string     `json:"name" validate:"required" gorm:"not null"`
	ISBN          string     `json:"isbn,omitempty" gorm:"column:isbn"`
	State         BookState  `json:"state" gorm:"size:20;default:'draft'"`
	Condition     string     `json:"condition" gorm:"size:1;default:'2'"`
	PurchasePrice int64      `json:"purchase_price"`
	PurchaseDate  *time.Time `json:"purchase_date,omitempty"`
	CategoryID    *int64     `json:"category_id,omitempty"`
	Notes         string     `json:"notes,omitempty" gorm:"type:text"`

	ShortDescription  string `json:"short_description"`
	DaysSincePurchase int    `json:"days_since_purchase"`
	TotalLoans        int    `json:"total_loans"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Authors  []Author  `json:"authors,omitempty" gorm:"many2many:book_authors"`
	Loans    []Loan    `json:"loans,omitempty" gorm:"foreignKey:BookID"`
}

func (Book) TableName() string { return "books" }

type Loan struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	BorrowerName string     `json:"borrower_name,omitempty"`
	BorrowDate   *time.Time `json:"borrow_date,omitempty"`
	ReturnDate   *time.Time `json:"return_date,omitempty"`
	IsReturned   bool       `json:"is_returned"`
	BookID       int64      `json:"book_id" validate:"required" gorm:"index"`

	Duration int `json:"duration"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }
