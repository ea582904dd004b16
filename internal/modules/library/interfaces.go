package library

import (
	"context"

	"backoffice/internal/domain"
)

type BookRepository interface {
	Create(ctx context.Context, b *domain.Book) error
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	List(ctx context.Context) ([]domain.Book, error)
	Update(ctx context.Context, b *domain.Book) error
	GetAuthorsByIDs(ctx context.Context, ids []int64) ([]domain.Author, error)
	CreateCategory(ctx context.Context, c *domain.Category) error
	GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateAuthor(ctx context.Context, a *domain.Author) error
	ListAuthors(ctx context.Context) ([]domain.Author, error)
}

type LoanRepository interface {
	Create(ctx context.Context, l *domain.Loan) error
	GetByID(ctx context.Context, id int64) (*domain.Loan, error)
	Update(ctx context.Context, l *domain.Loan) error
	ListByBook(ctx context.Context, bookID int64) ([]domain.Loan, error)
	CountByBook(ctx context.Context, bookID int64) (int64, error)
}

type EventSink interface {
	Publish(event string, payload any)
}
