package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizmaster/config"
	adminctrl "github.com/lshigami/quizmaster/internal/controller/admin"
	userctrl "github.com/lshigami/quizmaster/internal/controller/user"
	"github.com/lshigami/quizmaster/internal/dto"
	"github.com/lshigami/quizmaster/internal/mailer"
	"github.com/lshigami/quizmaster/internal/middleware"
	"github.com/lshigami/quizmaster/internal/model"
	"github.com/lshigami/quizmaster/internal/repository"
	"github.com/lshigami/quizmaster/internal/scheduler"
	"github.com/lshigami/quizmaster/internal/service"
	"github.com/lshigami/quizmaster/internal/session"
	"github.com/lshigami/quizmaster/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type apiFixture struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
	sched  *scheduler.Scheduler
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	db := testutil.DB(t)
	cfg := &config.Config{
		Auth: config.Auth{
			JWTSecret:     "routes-test",
			TokenTTL:      time.Hour,
			AdminEmail:    "admin@quizmaster.com",
			AdminPassword: "adminpass",
		},
		Scheduler:  config.Scheduler{Timezone: "UTC", JobTimeout: time.Minute},
		ExportsDir: t.TempDir(),
	}

	tokens, err := session.NewTokenManager(cfg)
	require.NoError(t, err)
	store := session.NewMemoryStore()
	m, err := mailer.NewMailer(cfg)
	require.NoError(t, err)

	users := repository.NewUserRepository(db)
	subjects := repository.NewSubjectRepository(db)
	chapters := repository.NewChapterRepository(db)
	quizzes := repository.NewQuizRepository(db)
	questions := repository.NewQuestionRepository(db)
	scores := repository.NewScoreRepository(db)
	reports := repository.NewReportRepository(db)

	converter := service.NewScoreConverterService()
	notifications := service.NewNotificationService(users, reports, m)
	authSvc := service.NewAuthService(users, tokens, store, cfg, db)
	require.NoError(t, authSvc.EnsureAdmin(context.Background()))
	scoreSvc := service.NewScoreService(scores, quizzes, converter)

	sched, err := scheduler.New(cfg, scheduler.NewMemoryLocker())
	require.NoError(t, err)
	require.NoError(t, service.RegisterJobs(sched, &config.Config{Scheduler: config.Scheduler{
		DailyReminderCron: "0 20 * * *",
		MonthlyReportCron: "0 3 1 * *",
	}}, notifications))
	t.Cleanup(func() {
		_ = sched.Stop(context.Background())
		_ = notifications.Shutdown(context.Background())
	})

	router := gin.New()
	RegisterRoutes(router, Handlers{
		Auth:      middleware.NewAuthenticator(tokens, store),
		Gate:      middleware.NewGate(users),
		Subjects:  adminctrl.NewSubjectController(service.NewSubjectService(subjects, db)),
		Chapters:  adminctrl.NewChapterController(service.NewChapterService(chapters, subjects, db)),
		Quizzes:   adminctrl.NewQuizController(service.NewQuizService(quizzes, chapters, db), scoreSvc),
		Questions: adminctrl.NewQuestionController(service.NewQuestionService(questions, quizzes, db), service.NewQuestionDraftService(nil, quizzes)),
		Reports: adminctrl.NewReportController(
			service.NewSearchService(users, subjects, quizzes),
			service.NewExportService(reports, cfg),
			sched,
		),
		Account: userctrl.NewAuthController(authSvc),
		UserQuizzes: userctrl.NewQuizController(
			service.NewAttemptService(quizzes, questions, scores, converter, notifications, db),
			scoreSvc,
		),
	})
	return &apiFixture{t: t, db: db, router: router, sched: sched}
}

func (f *apiFixture) call(method, path, token string, body any, out any) int {
	f.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(f.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	if out != nil && w.Body.Len() > 0 {
		require.NoError(f.t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

func (f *apiFixture) login(email, password string) string {
	f.t.Helper()
	var resp dto.LoginResponse
	code := f.call(http.MethodPost, "/api/v1/login", "", dto.LoginRequest{Email: email, Password: password}, &resp)
	require.Equal(f.t, http.StatusOK, code)
	require.NotEmpty(f.t, resp.Token)
	return resp.Token
}

func (f *apiFixture) register(email string) string {
	f.t.Helper()
	code := f.call(http.MethodPost, "/api/v1/register", "", dto.RegisterRequest{
		Email: email, Password: "secret1", FullName: "Test User",
	}, nil)
	require.Equal(f.t, http.StatusCreated, code)
	return f.login(email, "secret1")
}

func TestRegisterDuplicateReturns409(t *testing.T) {
	f := newAPIFixture(t)
	req := dto.RegisterRequest{Email: "dup@example.com", Password: "secret1", FullName: "Dup"}

	assert.Equal(t, http.StatusCreated, f.call(http.MethodPost, "/api/v1/register", "", req, nil))

	var errResp dto.ErrorResponse
	assert.Equal(t, http.StatusConflict, f.call(http.MethodPost, "/api/v1/register", "", req, &errResp))
	assert.Contains(t, errResp.Message, "already registered")

	var count int64
	f.db.Model(&model.User{}).Where("email = ?", "dup@example.com").Count(&count)
	assert.Equal(t, int64(1), count)

	bad := dto.RegisterRequest{Email: "not-an-email", Password: "secret1", FullName: "X"}
	assert.Equal(t, http.StatusBadRequest, f.call(http.MethodPost, "/api/v1/register", "", bad, nil))
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	f := newAPIFixture(t)
	userToken := f.register("plain@example.com")

	assert.Equal(t, http.StatusUnauthorized, f.call(http.MethodGet, "/api/v1/admin/subjects", "", nil, nil))
	assert.Equal(t, http.StatusForbidden, f.call(http.MethodGet, "/api/v1/admin/subjects", userToken, nil, nil))
	assert.Equal(t, http.StatusForbidden, f.call(http.MethodPost, "/api/v1/admin/export-scores", userToken, nil, nil))

	adminToken := f.login("admin@quizmaster.com", "adminpass")
	assert.Equal(t, http.StatusOK, f.call(http.MethodGet, "/api/v1/admin/subjects", adminToken, nil, nil))
}

func TestQuizLifecycleOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	admin := f.login("admin@quizmaster.com", "adminpass")

	var subject dto.SubjectResponse
	require.Equal(t, http.StatusCreated, f.call(http.MethodPost, "/api/v1/admin/subjects", admin,
		dto.SubjectRequest{Name: "Mathematics"}, &subject))
	var chapter dto.ChapterResponse
	require.Equal(t, http.StatusCreated, f.call(http.MethodPost, "/api/v1/admin/chapters", admin,
		dto.ChapterRequest{Name: "Algebra", SubjectID: subject.ID}, &chapter))
	var quiz dto.QuizResponse
	require.Equal(t, http.StatusCreated, f.call(http.MethodPost, "/api/v1/admin/quizzes", admin,
		dto.QuizRequest{Name: "Linear equations", ChapterID: chapter.ID, TimeDuration: "00:20"}, &quiz))

	questionIDs := make([]uint, 0, 3)
	for _, correct := range []string{"A", "B", "C"} {
		var q dto.QuestionResponse
		require.Equal(t, http.StatusCreated, f.call(http.MethodPost,
			"/api/v1/admin/quizzes/"+itoa(quiz.ID)+"/questions", admin,
			dto.QuestionRequest{
				QuestionStatement: "Pick " + correct,
				Option1:           "A", Option2: "B", Option3: "C", Option4: "D",
				CorrectOption: correct,
			}, &q))
		questionIDs = append(questionIDs, q.ID)
	}

	student := f.register("student@example.com")

	var attempt dto.QuizAttemptResponse
	require.Equal(t, http.StatusOK, f.call(http.MethodGet, "/api/v1/quizzes/"+itoa(quiz.ID)+"/attempt", student, nil, &attempt))
	require.Len(t, attempt.Questions, 3)

	var result dto.ScoreResult
	require.Equal(t, http.StatusCreated, f.call(http.MethodPost, "/api/v1/quizzes/"+itoa(quiz.ID)+"/submit", student,
		map[string]any{"answers": map[string]string{
			itoa(questionIDs[0]): "A",
			itoa(questionIDs[1]): "X",
			"not-a-number":       "A",
		}}, &result))
	assert.Equal(t, 1, result.TotalScored)
	assert.Equal(t, 3, result.TotalPossible)

	var history []dto.ScoreHistoryItem
	require.Equal(t, http.StatusOK, f.call(http.MethodGet, "/api/v1/user/scores", student, nil, &history))
	require.Len(t, history, 1)
	assert.Equal(t, result.ScoreID, history[0].ScoreID)
	assert.Equal(t, "Linear equations", history[0].QuizName)

	var results []dto.QuizResultItem
	require.Equal(t, http.StatusOK, f.call(http.MethodGet, "/api/v1/admin/quizzes/"+itoa(quiz.ID)+"/results", admin, nil, &results))
	require.Len(t, results, 1)
	assert.Equal(t, "student@example.com", results[0].UserEmail)

	var errResp dto.ErrorResponse
	assert.Equal(t, http.StatusBadRequest, f.call(http.MethodDelete, "/api/v1/admin/subjects/"+itoa(subject.ID), admin, nil, &errResp))
	assert.Contains(t, errResp.Message, "chapter")
	assert.Equal(t, http.StatusBadRequest, f.call(http.MethodDelete, "/api/v1/admin/chapters/"+itoa(chapter.ID), admin, nil, nil))
	assert.Equal(t, http.StatusBadRequest, f.call(http.MethodDelete, "/api/v1/admin/quizzes/"+itoa(quiz.ID), admin, nil, nil))

	var export dto.ExportResponse
	require.Equal(t, http.StatusOK, f.call(http.MethodPost, "/api/v1/admin/export-scores", admin, nil, &export))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/exports/"+export.Filename, nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "student@example.com,Test User,Linear equations,Mathematics,Algebra,1,3,")

	var search dto.SearchResponse
	require.Equal(t, http.StatusOK, f.call(http.MethodGet, "/api/v1/admin/search?query=LINEAR", admin, nil, &search))
	assert.Len(t, search.Quizzes, 1)
	assert.Equal(t, http.StatusBadRequest, f.call(http.MethodGet, "/api/v1/admin/search?query=", admin, nil, nil))

	assert.Equal(t, http.StatusServiceUnavailable, f.call(http.MethodPost,
		"/api/v1/admin/quizzes/"+itoa(quiz.ID)+"/questions/draft", admin, dto.DraftQuestionsRequest{Count: 2}, nil))
}

func TestZeroPaddedAnswerKeysDoNotChangeTheScore(t *testing.T) {
	f := newAPIFixture(t)
	_, _, quiz := testutil.SeedCatalog(t, f.db, "padded")
	question := testutil.SeedQuestion(t, f.db, quiz.ID, "A")
	student := f.register("padded@example.com")

	body := map[string]any{"answers": map[string]string{
		itoa(question.ID):       "A",
		"0" + itoa(question.ID): "A-2",
	}}
	for i := 0; i < 20; i++ {
		var result dto.ScoreResult
		require.Equal(t, http.StatusCreated, f.call(http.MethodPost, "/api/v1/quizzes/"+itoa(quiz.ID)+"/submit", student, body, &result))
		require.Equal(t, 1, result.TotalScored, "attempt %d", i)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	f := newAPIFixture(t)
	token := f.register("leaver@example.com")

	var me dto.UserResponse
	require.Equal(t, http.StatusOK, f.call(http.MethodGet, "/api/v1/user/me", token, nil, &me))
	assert.Equal(t, "leaver@example.com", me.Email)

	assert.Equal(t, http.StatusOK, f.call(http.MethodPost, "/api/v1/logout", token, nil, nil))
	assert.Equal(t, http.StatusUnauthorized, f.call(http.MethodGet, "/api/v1/user/me", token, nil, nil))
}

func TestManualJobTriggerIsAccepted(t *testing.T) {
	f := newAPIFixture(t)
	admin := f.login("admin@quizmaster.com", "adminpass")

	var accepted dto.JobAcceptedResponse
	assert.Equal(t, http.StatusAccepted, f.call(http.MethodPost, "/api/v1/admin/jobs/daily-reminder", admin, nil, &accepted))
	assert.Equal(t, scheduler.JobDailyReminder, accepted.Job)
	assert.Equal(t, http.StatusAccepted, f.call(http.MethodPost, "/api/v1/admin/jobs/monthly-report", admin, nil, nil))
	require.NoError(t, f.sched.Stop(context.Background()))
}

func TestManualJobTriggerAfterShutdownIsUnavailable(t *testing.T) {
	f := newAPIFixture(t)
	admin := f.login("admin@quizmaster.com", "adminpass")
	require.NoError(t, f.sched.Stop(context.Background()))

	var resp dto.ErrorResponse
	assert.Equal(t, http.StatusServiceUnavailable, f.call(http.MethodPost, "/api/v1/admin/jobs/daily-reminder", admin, nil, &resp))
	assert.Equal(t, "scheduler is shutting down", resp.Message)
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)
	assert.Equal(t, http.StatusOK, f.call(http.MethodGet, "/health", "", nil, nil))
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
