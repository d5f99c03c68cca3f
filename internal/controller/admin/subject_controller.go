package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizmaster/internal/controller/respond"
	"github.com/lshigami/quizmaster/internal/dto"
	"github.com/lshigami/quizmaster/internal/service"
)

type SubjectController struct {
	subjectService service.SubjectService
}

func NewSubjectController(subjectService service.SubjectService) *SubjectController {
	return &SubjectController{subjectService: subjectService}
}

// ListSubjects godoc
// @Summary (Admin) List subjects
// @Tags Admin - Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SubjectResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/subjects [get]
func (c *SubjectController) ListSubjects(ctx *gin.Context) {
	subjects, err := c.subjectService.GetAll(ctx.Request.Context())
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, subjects)
}

// GetSubject godoc
// @Summary (Admin) Get a subject
// @Tags Admin - Catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.SubjectResponse
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /admin/subjects/{id} [get]
func (c *SubjectController) GetSubject(ctx *gin.Context) {
	id, ok := respond.ParseID(ctx, "id")
	if !ok {
		return
	}
	subject, err := c.subjectService.Get(ctx.Request.Context(), id)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, subject)
}

// CreateSubject godoc
// @Summary (Admin) Create a subject
// @Description Subject names are unique among live subjects, ignoring case.
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subject body dto.SubjectRequest true "Subject data"
// @Success 201 {object} dto.SubjectResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Subject name already exists"
// @Router /admin/subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.SubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(ctx, "Invalid request body", err)
		return
	}
	subject, err := c.subjectService.Create(ctx.Request.Context(), req)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, subject)
}

// UpdateSubject godoc
// @Summary (Admin) Update a subject
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Param subject body dto.SubjectRequest true "Subject data"
// @Success 200 {object} dto.SubjectResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /admin/subjects/{id} [put]
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	id, ok := respond.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.SubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(ctx, "Invalid request body", err)
		return
	}
	subject, err := c.subjectService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, subject)
}

// DeleteSubject godoc
// @Summary (Admin) Delete a subject
// @Description Refused with 400 while the subject still has chapters.
// @Tags Admin - Catalog
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse "Subject still has chapters"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/subjects/{id} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	id, ok := respond.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.subjectService.Delete(ctx.Request.Context(), id); err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
