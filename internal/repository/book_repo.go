package repository

import (
	"context"

	"gorm.io/gorm"

	"backoffice/internal/domain"
)

type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) Create(ctx context.Context, b *domain.Book) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookRepository) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	var b domain.Book
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Authors").
		Preload("Loans").
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookRepository) List(ctx context.Context) ([]domain.Book, error) {
	var books []domain.Book
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Authors").
		Order("name").
		Find(&books).Error
	return books, err
}

// Update writes stored attributes and derived columns in one transaction.
func (r *BookRepository) Update(ctx context.Context, b *domain.Book) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":                b.Name,
			"isbn":                b.ISBN,
			"state":               b.State,
			"condition":           b.Condition,
			"purchase_price":      b.PurchasePrice,
			"purchase_date":       b.PurchaseDate,
			"category_id":         b.CategoryID,
			"notes":               b.Notes,
			"short_description":   b.ShortDescription,
			"days_since_purchase": b.DaysSincePurchase,
			"total_loans":         b.TotalLoans,
		}
		if err := tx.Model(&domain.Book{}).Where("id = ?", b.ID).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Model(b).Association("Authors").Replace(b.Authors)
	})
}

func (r *BookRepository) GetAuthorsByIDs(ctx context.Context, ids []int64) ([]domain.Author, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var authors []domain.Author
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&authors).Error
	return authors, err
}

func (r *BookRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *BookRepository) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *BookRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.WithContext(ctx).Order("name").Find(&categories).Error
	return categories, err
}

func (r *BookRepository) CreateAuthor(ctx context.Context, a *domain.Author) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *BookRepository) ListAuthors(ctx context.Context) ([]domain.Author, error) {
	var authors []domain.Author
	err := r.db.WithContext(ctx).Order("name").Find(&authors).Error
	return authors, err
}
