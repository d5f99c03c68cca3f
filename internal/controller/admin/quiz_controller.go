package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizmaster/internal/controller/respond"
	"github.com/lshigami/quizmaster/internal/dto"
	"github.com/lshigami/quizmaster/internal/service"
)

type QuizController struct {
	quizService  service.QuizService
	scoreService service.ScoreService
}

func NewQuizController(quizService service.QuizService, scoreService service.ScoreService) *QuizController {
	return &QuizController{quizService: quizService, scoreService: scoreService}
}

// ListQuizzes godoc
// @Summary (Admin) List quizzes with question counts
// @Tags Admin - Catalog
// @Produce json
// @Security BearerAuth
// @Param chapter_id query int false "Only quizzes of this chapter"
// @Success 200 {array} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid chapter_id"
// @Router /admin/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	chapterID, ok := respond.OptionalQueryID(ctx, "chapter_id")
	if !ok {
		return
	}
	quizzes, err := c.quizService.GetAll(ctx.Request.Context(), chapterID)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuiz godoc
// @Summary (Admin) Get a quiz
// @Tags Admin - Catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	id, ok := respond.ParseID(ctx, "id")
	if !ok {
		return
	}
	quiz, err := c.quizService.Get(ctx.Request.Context(), id)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// CreateQuiz godoc
// @Summary (Admin) Create a quiz under a chapter
// @Description time_duration is HH:MM and must be longer than 00:00.
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz body dto.QuizRequest true "Quiz data"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Chapter not found"
// @Router /admin/quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(ctx, "Invalid request body", err)
		return
	}
	quiz, err := c.quizService.Create(ctx.Request.Context(), req)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}

// UpdateQuiz godoc
// @Summary (Admin) Update a quiz
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param quiz body dto.QuizRequest true "Quiz data"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/quizzes/{id} [put]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	id, ok := respond.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(ctx, "Invalid request body", err)
		return
	}
	quiz, err := c.quizService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// DeleteQuiz godoc
// @Summary (Admin) Delete a quiz
// @Description Refused with 400 while the quiz has questions or recorded scores.
// @Tags Admin - Catalog
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse "Quiz still in use"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/quizzes/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	id, ok := respond.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.quizService.Delete(ctx.Request.Context(), id); err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetQuizResults godoc
// @Summary (Admin) Scores recorded for a quiz
// @Tags Admin - Reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {array} dto.QuizResultItem
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/quizzes/{id}/results [get]
func (c *QuizController) GetQuizResults(ctx *gin.Context) {
	id, ok := respond.ParseID(ctx, "id")
	if !ok {
		return
	}
	results, err := c.scoreService.QuizResults(ctx.Request.Context(), id)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}
