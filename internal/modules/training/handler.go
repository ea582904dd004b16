package training

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"backoffice/internal/pkg/response"
	"backoffice/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/training")
	{
		g.GET("/classes", h.ListClasses)
		g.GET("/classes/:id", h.GetClass)
		g.GET("/classes/:id/revenue", h.Revenue)
		g.GET("/classes/:id/sessions", h.ListSessions)
		g.GET("/subjects", h.ListSubjects)
		g.GET("/teachers", h.ListTeachers)
		g.GET("/students", h.ListStudents)
	}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/training")
	{
		g.POST("/classes", h.CreateClass)
		g.PUT("/classes/:id", h.UpdateClass)
		g.POST("/classes/:id/enroll", h.Enroll)
		g.POST("/classes/:id/sessions", h.AddSession)
		g.POST("/subjects", h.CreateSubject)
		g.PUT("/subjects/:id", h.UpdateSubject)
		g.POST("/teachers", h.CreateTeacher)
		g.POST("/students", h.CreateStudent)
	}
}

func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	class, err := h.service.CreateClass(c.Request.Context(), req)
	if err != nil {
		h.writeClassError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, class)
}

func (h *Handler) UpdateClass(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	class, err := h.service.UpdateClass(c.Request.Context(), id, req)
	if err != nil {
		h.writeClassError(c, err)
		return
	}
	response.Success(c, http.StatusOK, class)
}

func (h *Handler) Enroll(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	class, err := h.service.Enroll(c.Request.Context(), id, req.StudentIDs)
	if err != nil {
		h.writeClassError(c, err)
		return
	}
	response.Success(c, http.StatusOK, class)
}

func (h *Handler) GetClass(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	class, err := h.service.GetClass(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Class not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load class")
		return
	}
	response.Success(c, http.StatusOK, class)
}

func (h *Handler) ListClasses(c *gin.Context) {
	classes, err := h.service.ListClasses(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list classes")
		return
	}
	response.Success(c, http.StatusOK, classes)
}

func (h *Handler) Revenue(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	revenue, err := h.service.Revenue(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Class not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute revenue")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"class_id": id, "total_revenue": revenue})
}

func (h *Handler) AddSession(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req AddSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	session, err := h.service.AddSession(c.Request.Context(), id, req)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Class not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add session")
		return
	}
	response.Success(c, http.StatusCreated, session)
}

func (h *Handler) ListSessions(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	sessions, err := h.service.ListSessions(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list sessions")
		return
	}
	response.Success(c, http.StatusOK, sessions)
}

func (h *Handler) CreateSubject(c *gin.Context) {
	var req CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid subject attributes", errs)
		return
	}
	subject, err := h.service.CreateSubject(c.Request.Context(), req)
	if err != nil {
		if err == ErrDuplicateCode {
			response.Error(c, http.StatusConflict, "DUPLICATE", "Subject code already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create subject")
		return
	}
	response.Success(c, http.StatusCreated, subject)
}

func (h *Handler) UpdateSubject(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	subject, err := h.service.UpdateSubject(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Subject not found")
		case ErrDuplicateCode:
			response.Error(c, http.StatusConflict, "DUPLICATE", "Subject code already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update subject")
		}
		return
	}
	response.Success(c, http.StatusOK, subject)
}

func (h *Handler) ListSubjects(c *gin.Context) {
	subjects, err := h.service.ListSubjects(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list subjects")
		return
	}
	response.Success(c, http.StatusOK, subjects)
}

func (h *Handler) CreateTeacher(c *gin.Context) {
	var req CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid teacher attributes", errs)
		return
	}
	teacher, err := h.service.CreateTeacher(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create teacher")
		return
	}
	response.Success(c, http.StatusCreated, teacher)
}

func (h *Handler) ListTeachers(c *gin.Context) {
	teachers, err := h.service.ListTeachers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list teachers")
		return
	}
	response.Success(c, http.StatusOK, teachers)
}

func (h *Handler) CreateStudent(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid student attributes", errs)
		return
	}
	student, err := h.service.CreateStudent(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create student")
		return
	}
	response.Success(c, http.StatusCreated, student)
}

func (h *Handler) ListStudents(c *gin.Context) {
	students, err := h.service.ListStudents(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list students")
		return
	}
	response.Success(c, http.StatusOK, students)
}

func (h *Handler) writeClassError(c *gin.Context, err error) {
	switch err {
	case ErrEmptyName, ErrNameTooShort, ErrInvalidDateRange, ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Referenced record not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save class")
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
