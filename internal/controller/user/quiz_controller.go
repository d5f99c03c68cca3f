package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizmaster/internal/apperr"
	"github.com/lshigami/quizmaster/internal/controller/respond"
	"github.com/lshigami/quizmaster/internal/dto"
	"github.com/lshigami/quizmaster/internal/middleware"
	"github.com/lshigami/quizmaster/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	attemptService service.AttemptService
	scoreService   service.ScoreService
}

func NewQuizController(attemptService service.AttemptService, scoreService service.ScoreService) *QuizController {
	return &QuizController{attemptService: attemptService, scoreService: scoreService}
}

// ListQuizzes godoc
// @Summary (User) List available quizzes
// @Tags User - Quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuizResponse
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.attemptService.ListQuizzes(ctx.Request.Context())
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuizForAttempt godoc
// @Summary (User) Quiz questions for an attempt
// @Description Options are listed without the correct answer.
// @Tags User - Quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.QuizAttemptResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{id}/attempt [get]
func (c *QuizController) GetQuizForAttempt(ctx *gin.Context) {
	quizID, ok := respond.ParseID(ctx, "id")
	if !ok {
		return
	}
	quiz, err := c.attemptService.GetQuizForAttempt(ctx.Request.Context(), quizID)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// SubmitAttempt godoc
// @Summary (User) Submit answers for a quiz
// @Description answers maps question ids to the chosen option text. Unknown ids and keys that are not plain decimal ids (e.g. "05") are ignored.
// @Tags User - Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param submission body dto.SubmitAttemptRequest true "Answers keyed by question id"
// @Success 201 {object} dto.ScoreResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{id}/submit [post]
func (c *QuizController) SubmitAttempt(ctx *gin.Context) {
	quizID, ok := respond.ParseID(ctx, "id")
	if !ok {
		return
	}
	userID, ok := middleware.UserID(ctx)
	if !ok {
		respond.Error(ctx, apperr.Unauthorized("authentication required"))
		return
	}
	var req dto.SubmitAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(ctx, "Invalid request body", err)
		return
	}

	result, err := c.attemptService.SubmitAttempt(ctx.Request.Context(), quizID, userID, answersByQuestion(quizID, req.Answers))
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// GetMyScores godoc
// @Summary (User) My score history, newest first
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ScoreHistoryItem
// @Router /user/scores [get]
func (c *QuizController) GetMyScores(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		respond.Error(ctx, apperr.Unauthorized("authentication required"))
		return
	}
	scores, err := c.scoreService.History(ctx.Request.Context(), userID)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, scores)
}

// answersByQuestion keeps only keys written as canonical decimal ids, so "5"
// and "05" can never both claim question 5.
func answersByQuestion(quizID uint, raw map[string]string) map[uint]string {
	answers := make(map[uint]string, len(raw))
	for key, value := range raw {
		id, err := strconv.ParseUint(key, 10, 32)
		if err != nil || strconv.FormatUint(id, 10) != key {
			log.Debug().Str("key", key).Uint("quizID", quizID).Msg("Ignoring malformed answer key")
			continue
		}
		answers[uint(id)] = value
	}
	return answers
}
