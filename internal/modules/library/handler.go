package library

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"backoffice/internal/domain"
	"backoffice/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/library")
	{
		g.GET("/books", h.ListBooks)
		g.GET("/books/:id", h.GetBook)
		g.GET("/books/:id/loans", h.ListLoans)
		g.GET("/categories", h.ListCategories)
		g.GET("/authors", h.ListAuthors)
	}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/library")
	{
		g.POST("/books", h.CreateBook)
		g.PUT("/books/:id", h.UpdateBook)
		g.PATCH("/books/:id/state", h.ChangeBookState)
		g.POST("/loans", h.CreateLoan)
		g.PATCH("/loans/:id/return", h.ReturnLoan)
		g.POST("/categories", h.CreateCategory)
		g.POST("/authors", h.CreateAuthor)
	}
}

func (h *Handler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	book, warnings, err := h.service.CreateBook(c.Request.Context(), req)
	if err != nil {
		h.writeBookError(c, err)
		return
	}
	response.SuccessWithWarnings(c, http.StatusCreated, book, warnings)
}

func (h *Handler) UpdateBook(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	book, warnings, err := h.service.UpdateBook(c.Request.Context(), id, req)
	if err != nil {
		h.writeBookError(c, err)
		return
	}
	response.SuccessWithWarnings(c, http.StatusOK, book, warnings)
}

func (h *Handler) ChangeBookState(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req ChangeStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	book, err := h.service.ChangeBookState(c.Request.Context(), id, domain.BookState(req.State))
	if err != nil {
		switch err {
		case ErrInvalidState:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Book not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update book")
		}
		return
	}
	response.Success(c, http.StatusOK, book)
}

func (h *Handler) GetBook(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	book, err := h.service.GetBook(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Book not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load book")
		return
	}
	response.Success(c, http.StatusOK, book)
}

func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list books")
		return
	}
	response.Success(c, http.StatusOK, books)
}

func (h *Handler) CreateLoan(c *gin.Context) {
	var req CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	loan, err := h.service.CreateLoan(c.Request.Context(), req)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Book not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create loan")
		return
	}
	response.Success(c, http.StatusCreated, loan)
}

func (h *Handler) ReturnLoan(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req ReturnLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	loan, err := h.service.ReturnLoan(c.Request.Context(), id, req.ReturnDate)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Loan not found")
		case ErrLoanAlreadyReturned:
			response.Error(c, http.StatusConflict, "ALREADY_RETURNED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to return loan")
		}
		return
	}
	response.Success(c, http.StatusOK, loan)
}

func (h *Handler) ListLoans(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	loans, err := h.service.ListLoans(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list loans")
		return
	}
	response.Success(c, http.StatusOK, loans)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	category, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create category")
		return
	}
	response.Success(c, http.StatusCreated, category)
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list categories")
		return
	}
	response.Success(c, http.StatusOK, categories)
}

func (h *Handler) CreateAuthor(c *gin.Context) {
	var req CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	author, err := h.service.CreateAuthor(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create author")
		return
	}
	response.Success(c, http.StatusCreated, author)
}

func (h *Handler) ListAuthors(c *gin.Context) {
	authors, err := h.service.ListAuthors(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list authors")
		return
	}
	response.Success(c, http.StatusOK, authors)
}

func (h *Handler) writeBookError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book attributes")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Referenced record not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save book")
	}
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}
