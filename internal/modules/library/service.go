package library

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"backoffice/internal/domain"
	"backoffice/internal/pkg/rules"
)

type Service struct {
	books  BookRepository
	loans  LoanRepository
	events EventSink

	// now is swappable so tests control "today"
	now func() time.Time
}

func NewService(books BookRepository, loans LoanRepository, events EventSink) *Service {
	return &Service{
		books:  books,
		loans:  loans,
		events: events,
		now:    time.Now,
	}
}

// CreateBook derives the descriptive fields from the stored attributes and
// persists everything together. The ISBN check is advisory only.
func (s *Service) CreateBook(ctx context.Context, req CreateBookRequest) (*BookResponse, []rules.Warning, error) {
	condition := req.Condition
	if condition == "" {
		condition = domain.ConditionGood
	}
	if !validCondition(condition) {
		return nil, nil, ErrValidation
	}

	authors, err := s.books.GetAuthorsByIDs(ctx, req.AuthorIDs)
	if err != nil {
		return nil, nil, err
	}

	purchaseDate := req.PurchaseDate
	if purchaseDate == nil {
		today := s.today()
		purchaseDate = &today
	}

	notes := req.Notes
	if req.CategoryID != nil && notes == "" {
		category, err := s.books.GetCategoryByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, nil, mapNotFound(err)
		}
		notes = ShelvingNote(category.Name)
	}

	b := &domain.Book{
		Name:          req.Name,
		ISBN:          req.ISBN,
		State:         domain.BookDraft,
		Condition:     condition,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  purchaseDate,
		CategoryID:    req.CategoryID,
		Notes:         notes,
		Authors:       authors,
	}
	s.deriveBook(b)

	if err := s.books.Create(ctx, b); err != nil {
		return nil, nil, err
	}

	var warnings []rules.Warning
	if warn := CheckISBN(b.ISBN); warn != nil {
		warnings = append(warnings, *warn)
	}
	return s.respond(b), warnings, nil
}

// UpdateBook applies the changes and recomputes every derived field from
// the post-change inputs before persisting.
func (s *Service) UpdateBook(ctx context.Context, id int64, req UpdateBookRequest) (*BookResponse, []rules.Warning, error) {
	b, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, nil, mapNotFound(err)
	}

	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.ISBN != nil {
		b.ISBN = *req.ISBN
	}
	if req.Condition != nil {
		if !validCondition(*req.Condition) {
			return nil, nil, ErrValidation
		}
		b.Condition = *req.Condition
	}
	if req.PurchasePrice != nil {
		b.PurchasePrice = *req.PurchasePrice
	}
	if req.PurchaseDate != nil {
		b.PurchaseDate = req.PurchaseDate
	}
	if req.Notes != nil {
		b.Notes = *req.Notes
	}
	if req.CategoryID != nil && (b.CategoryID == nil || *b.CategoryID != *req.CategoryID) {
		category, err := s.books.GetCategoryByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, nil, mapNotFound(err)
		}
		b.CategoryID = req.CategoryID
		if req.Notes == nil {
			b.Notes = ShelvingNote(category.Name)
		}
	}
	if req.AuthorIDs != nil {
		authors, err := s.books.GetAuthorsByIDs(ctx, *req.AuthorIDs)
		if err != nil {
			return nil, nil, err
		}
		b.Authors = authors
	}

	count, err := s.loans.CountByBook(ctx, b.ID)
	if err != nil {
		return nil, nil, err
	}
	b.TotalLoans = int(count)
	s.deriveBook(b)

	if err := s.books.Update(ctx, b); err != nil {
		return nil, nil, err
	}

	var warnings []rules.Warning
	if warn := CheckISBN(b.ISBN); warn != nil {
		warnings = append(warnings, *warn)
	}
	return s.respond(b), warnings, nil
}

// ChangeBookState moves the book through its lifecycle. Going lost resets
// the condition to poor in the same write.
func (s *Service) ChangeBookState(ctx context.Context, id int64, state domain.BookState) (*BookResponse, error) {
	if !validBookState(state) {
		return nil, ErrInvalidState
	}
	b, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	b.State = state
	b.Condition = ConditionAfterState(state, b.Condition)
	s.deriveBook(b)

	if err := s.books.Update(ctx, b); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish("book.state_changed", b)
	}
	return s.respond(b), nil
}

func (s *Service) GetBook(ctx context.Context, id int64) (*BookResponse, error) {
	b, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return s.respond(b), nil
}

func (s *Service) ListBooks(ctx context.Context) ([]BookResponse, error) {
	books, err := s.books.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BookResponse, 0, len(books))
	for i := range books {
		out = append(out, *s.respond(&books[i]))
	}
	return out, nil
}

// CreateLoan opens a loan for a book. When no return date is given the
// response suggests borrow date + 7 days; the stored duration stays zero
// until the loan is actually returned.
func (s *Service) CreateLoan(ctx context.Context, req CreateLoanRequest) (*LoanResponse, error) {
	book, err := s.books.GetByID(ctx, req.BookID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	borrowDate := req.BorrowDate
	if borrowDate == nil {
		today := s.today()
		borrowDate = &today
	}

	l := &domain.Loan{
		BorrowerName: req.BorrowerName,
		BorrowDate:   borrowDate,
		ReturnDate:   req.ReturnDate,
		BookID:       req.BookID,
		Duration:     LoanDuration(borrowDate, req.ReturnDate),
	}
	if err := s.loans.Create(ctx, l); err != nil {
		return nil, err
	}

	// keep the book's loan counter in step with its loan history
	count, err := s.loans.CountByBook(ctx, book.ID)
	if err != nil {
		return nil, err
	}
	book.TotalLoans = int(count)
	s.deriveBook(book)
	if err := s.books.Update(ctx, book); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish("loan.opened", l)
	}

	resp := &LoanResponse{Loan: *l}
	if l.ReturnDate == nil {
		suggested := SuggestReturnDate(*borrowDate)
		resp.SuggestedReturnDate = &suggested
	}
	return resp, nil
}

// ReturnLoan closes a loan and recomputes its duration from the actual
// return date.
func (s *Service) ReturnLoan(ctx context.Context, id int64, returnDate *time.Time) (*LoanResponse, error) {
	l, err := s.loans.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if l.IsReturned {
		return nil, ErrLoanAlreadyReturned
	}

	if returnDate == nil {
		today := s.today()
		returnDate = &today
	}
	l.ReturnDate = returnDate
	l.IsReturned = true
	l.Duration = LoanDuration(l.BorrowDate, l.ReturnDate)

	if err := s.loans.Update(ctx, l); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish("loan.returned", l)
	}
	return &LoanResponse{Loan: *l}, nil
}

func (s *Service) ListLoans(ctx context.Context, bookID int64) ([]domain.Loan, error) {
	return s.loans.ListByBook(ctx, bookID)
}

func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*domain.Category, error) {
	c := &domain.Category{Name: req.Name}
	if err := s.books.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.books.ListCategories(ctx)
}

func (s *Service) CreateAuthor(ctx context.Context, req CreateAuthorRequest) (*domain.Author, error) {
	a := &domain.Author{Name: req.Name, Bio: req.Bio}
	if err := s.books.CreateAuthor(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) ListAuthors(ctx context.Context) ([]domain.Author, error) {
	return s.books.ListAuthors(ctx)
}

// deriveBook recomputes the stored derived columns from their inputs.
func (s *Service) deriveBook(b *domain.Book) {
	names := make([]string, 0, len(b.Authors))
	for _, a := range b.Authors {
		names = append(names, a.Name)
	}
	b.ShortDescription = ShortDescription(b.Name, names, b.ISBN)
	b.DaysSincePurchase = DaysSincePurchase(b.PurchaseDate, s.today())
}

func (s *Service) respond(b *domain.Book) *BookResponse {
	resp := &BookResponse{Book: *b, ConditionLevel: ConditionLevel(b.Condition)}
	// refresh the age figure on read so it never lags behind "today"
	resp.DaysSincePurchase = DaysSincePurchase(b.PurchaseDate, s.today())
	return resp
}

func (s *Service) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
