// Package controller mounts the HTTP handlers on the gin engine.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	adminctrl "github.com/lshigami/quizmaster/internal/controller/admin"
	userctrl "github.com/lshigami/quizmaster/internal/controller/user"
	"github.com/lshigami/quizmaster/internal/middleware"
	"go.uber.org/fx"
)

// Handlers collects everything RegisterRoutes mounts.
type Handlers struct {
	fx.In

	Auth *middleware.Authenticator
	Gate *middleware.Gate

	Subjects  *adminctrl.SubjectController
	Chapters  *adminctrl.ChapterController
	Quizzes   *adminctrl.QuizController
	Questions *adminctrl.QuestionController
	Reports   *adminctrl.ReportController

	Account     *userctrl.AuthController
	UserQuizzes *userctrl.QuizController
}

func RegisterRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.POST("/register", h.Account.Register)
	api.POST("/login", h.Account.Login)

	authed := api.Group("", h.Auth.RequireAuth())
	{
		authed.POST("/logout", h.Account.Logout)
		authed.GET("/user/me", h.Account.Me)
		authed.GET("/user/scores", h.UserQuizzes.GetMyScores)

		authed.GET("/quizzes", h.UserQuizzes.ListQuizzes)
		authed.GET("/quizzes/:id/attempt", h.UserQuizzes.GetQuizForAttempt)
		authed.POST("/quizzes/:id/submit", h.UserQuizzes.SubmitAttempt)
	}

	admin := authed.Group("/admin", h.Gate.RequireAdmin())
	{
		admin.GET("/subjects", h.Subjects.ListSubjects)
		admin.POST("/subjects", h.Subjects.CreateSubject)
		admin.GET("/subjects/:id", h.Subjects.GetSubject)
		admin.PUT("/subjects/:id", h.Subjects.UpdateSubject)
		admin.DELETE("/subjects/:id", h.Subjects.DeleteSubject)

		admin.GET("/chapters", h.Chapters.ListChapters)
		admin.POST("/chapters", h.Chapters.CreateChapter)
		admin.GET("/chapters/:id", h.Chapters.GetChapter)
		admin.PUT("/chapters/:id", h.Chapters.UpdateChapter)
		admin.DELETE("/chapters/:id", h.Chapters.DeleteChapter)

		admin.GET("/quizzes", h.Quizzes.ListQuizzes)
		admin.POST("/quizzes", h.Quizzes.CreateQuiz)
		admin.GET("/quizzes/:id", h.Quizzes.GetQuiz)
		admin.PUT("/quizzes/:id", h.Quizzes.UpdateQuiz)
		admin.DELETE("/quizzes/:id", h.Quizzes.DeleteQuiz)
		admin.GET("/quizzes/:id/results", h.Quizzes.GetQuizResults)

		admin.GET("/quizzes/:id/questions", h.Questions.ListQuestions)
		admin.POST("/quizzes/:id/questions", h.Questions.CreateQuestion)
		admin.POST("/quizzes/:id/questions/draft", h.Questions.DraftQuestions)
		admin.GET("/quizzes/:id/questions/:question_id", h.Questions.GetQuestion)
		admin.PUT("/quizzes/:id/questions/:question_id", h.Questions.UpdateQuestion)
		admin.DELETE("/quizzes/:id/questions/:question_id", h.Questions.DeleteQuestion)

		admin.GET("/search", h.Reports.Search)
		admin.POST("/export-scores", h.Reports.ExportScores)
		admin.GET("/exports/:filename", h.Reports.DownloadExport)
		admin.POST("/jobs/daily-reminder", h.Reports.TriggerDailyReminder)
		admin.POST("/jobs/monthly-report", h.Reports.TriggerMonthlyReport)
	}
}
