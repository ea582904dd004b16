package repository

import (
	"context"

	"gorm.io/gorm"

	"backoffice/internal/domain"
)

type LoanRepository struct {
	db *gorm.DB
}

func NewLoanRepository(db *gorm.DB) *LoanRepository {
	return &LoanRepository{db: db}
}

func (r *LoanRepository) Create(ctx context.Context, l *domain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	var l domain.Loan
	if err := r.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LoanRepository) Update(ctx context.Context, l *domain.Loan) error {
	updates := map[string]interface{}{
		"borrower_name": l.BorrowerName,
		"borrow_date":   l.BorrowDate,
		"return_date":   l.ReturnDate,
		"is_returned":   l.IsReturned,
		"duration":      l.Duration,
	}
	return r.db.WithContext(ctx).
		Model(&domain.Loan{}).
		Where("id = ?", l.ID).
		Updates(updates).Error
}

func (r *LoanRepository) ListByBook(ctx context.Context, bookID int64) ([]domain.Loan, error) {
	var loans []domain.Loan
	err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("id").
		Find(&loans).Error
	return loans, err
}

func (r *LoanRepository) CountByBook(ctx context.Context, bookID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Loan{}).
		Where("book_id = ?", bookID).
		Count(&n).Error
	return n, err
}
