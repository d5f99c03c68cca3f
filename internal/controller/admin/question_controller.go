package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizmaster/internal/controller/respond"
	"github.com/lshigami/quizmaster/internal/dto"
	"github.com/lshigami/quizmaster/internal/service"
)

type QuestionController struct {
	questionService service.QuestionService
	draftService    service.QuestionDraftService
}

func NewQuestionController(questionService service.QuestionService, draftService service.QuestionDraftService) *QuestionController {
	return &QuestionController{questionService: questionService, draftService: draftService}
}

// ListQuestions godoc
// @Summary (Admin) List the questions of a quiz
// @Tags Admin - Questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {array} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /admin/quizzes/{id}/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	quizID, ok := respond.ParseID(ctx, "id")
	if !ok {
		return
	}
	questions, err := c.questionService.GetAllQuestions(ctx.Request.Context(), quizID)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary (Admin) Get a question of a quiz
// @Tags Admin - Questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/quizzes/{id}/questions/{question_id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	quizID, ok := respond.ParseID(ctx, "id")
	if !ok {
		return
	}
	questionID, ok := respond.ParseID(ctx, "question_id")
	if !ok {
		return
	}
	question, err := c.questionService.GetQuestion(ctx.Request.Context(), quizID, questionID)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// CreateQuestion godoc
// @Summary (Admin) Add a question to a quiz
// @Description correct_option must equal exactly one of the four distinct options.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param question body dto.QuestionRequest true "Question data"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /admin/quizzes/{id}/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	quizID, ok := respond.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(ctx, "Invalid request body", err)
		return
	}
	question, err := c.questionService.CreateQuestion(ctx.Request.Context(), quizID, req)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// UpdateQuestion godoc
// @Summary (Admin) Update a question
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param question_id path int true "Question ID"
// @Param question body dto.QuestionRequest true "Question data"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/quizzes/{id}/questions/{question_id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	quizID, ok := respond.ParseID(ctx, "id")
	if !ok {
		return
	}
	questionID, ok := respond.ParseID(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(ctx, "Invalid request body", err)
		return
	}
	question, err := c.questionService.UpdateQuestion(ctx.Request.Context(), quizID, questionID, req)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Tags Admin - Questions
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param question_id path int true "Question ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/quizzes/{id}/questions/{question_id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	quizID, ok := respond.ParseID(ctx, "id")
	if !ok {
		return
	}
	questionID, ok := respond.ParseID(ctx, "question_id")
	if !ok {
		return
	}
	if err := c.questionService.DeleteQuestion(ctx.Request.Context(), quizID, questionID); err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DraftQuestions godoc
// @Summary (Admin) Draft questions with Gemini
// @Description Generates multiple-choice questions for review. Drafts are not saved.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param request body dto.DraftQuestionsRequest true "Topic and number of questions (1-10)"
// @Success 200 {object} dto.DraftQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse "Drafting not configured or model unavailable"
// @Router /admin/quizzes/{id}/questions/draft [post]
func (c *QuestionController) DraftQuestions(ctx *gin.Context) {
	quizID, ok := respond.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.DraftQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(ctx, "Invalid request body", err)
		return
	}
	drafts, err := c.draftService.DraftQuestions(ctx.Request.Context(), quizID, req.Topic, req.Count)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, drafts)
}
