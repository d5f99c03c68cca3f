package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizmaster/internal/controller/respond"
	"github.com/lshigami/quizmaster/internal/dto"
	"github.com/lshigami/quizmaster/internal/service"
)

type ChapterController struct {
	chapterService service.ChapterService
}

func NewChapterController(chapterService service.ChapterService) *ChapterController {
	return &ChapterController{chapterService: chapterService}
}

// ListChapters godoc
// @Summary (Admin) List chapters
// @Tags Admin - Catalog
// @Produce json
// @Security BearerAuth
// @Param subject_id query int false "Only chapters of this subject"
// @Success 200 {array} dto.ChapterResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid subject_id"
// @Router /admin/chapters [get]
func (c *ChapterController) ListChapters(ctx *gin.Context) {
	subjectID, ok := respond.OptionalQueryID(ctx, "subject_id")
	if !ok {
		return
	}
	chapters, err := c.chapterService.GetAll(ctx.Request.Context(), subjectID)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, chapters)
}

// GetChapter godoc
// @Summary (Admin) Get a chapter
// @Tags Admin - Catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chapter ID"
// @Success 200 {object} dto.ChapterResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/chapters/{id} [get]
func (c *ChapterController) GetChapter(ctx *gin.Context) {
	id, ok := respond.ParseID(ctx, "id")
	if !ok {
		return
	}
	chapter, err := c.chapterService.Get(ctx.Request.Context(), id)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, chapter)
}

// CreateChapter godoc
// @Summary (Admin) Create a chapter under a subject
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param chapter body dto.ChapterRequest true "Chapter data"
// @Success 201 {object} dto.ChapterResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /admin/chapters [post]
func (c *ChapterController) CreateChapter(ctx *gin.Context) {
	var req dto.ChapterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(ctx, "Invalid request body", err)
		return
	}
	chapter, err := c.chapterService.Create(ctx.Request.Context(), req)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, chapter)
}

// UpdateChapter godoc
// @Summary (Admin) Update a chapter
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chapter ID"
// @Param chapter body dto.ChapterRequest true "Chapter data"
// @Success 200 {object} dto.ChapterResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/chapters/{id} [put]
func (c *ChapterController) UpdateChapter(ctx *gin.Context) {
	id, ok := respond.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.ChapterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(ctx, "Invalid request body", err)
		return
	}
	chapter, err := c.chapterService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, chapter)
}

// DeleteChapter godoc
// @Summary (Admin) Delete a chapter
// @Description Refused with 400 while the chapter still has quizzes.
// @Tags Admin - Catalog
// @Security BearerAuth
// @Param id path int true "Chapter ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse "Chapter still has quizzes"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/chapters/{id} [delete]
func (c *ChapterController) DeleteChapter(ctx *gin.Context) {
	id, ok := respond.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.chapterService.Delete(ctx.Request.Context(), id); err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
