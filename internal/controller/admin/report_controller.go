package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizmaster/internal/apperr"
	"github.com/lshigami/quizmaster/internal/controller/respond"
	"github.com/lshigami/quizmaster/internal/dto"
	"github.com/lshigami/quizmaster/internal/scheduler"
	"github.com/lshigami/quizmaster/internal/service"
)

// JobTrigger starts a registered background job outside its schedule.
type JobTrigger interface {
	Trigger(name string) error
}

type ReportController struct {
	searchService service.SearchService
	exportService service.ExportService
	jobs          JobTrigger
}

func NewReportController(searchService service.SearchService, exportService service.ExportService, jobs *scheduler.Scheduler) *ReportController {
	return &ReportController{searchService: searchService, exportService: exportService, jobs: jobs}
}

// Search godoc
// @Summary (Admin) Search users, subjects and quizzes
// @Description Case-insensitive substring match, at most 50 results per category.
// @Tags Admin - Reports
// @Produce json
// @Security BearerAuth
// @Param query query string true "Search text"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} dto.ErrorResponse "Empty query"
// @Router /admin/search [get]
func (c *ReportController) Search(ctx *gin.Context) {
	resp, err := c.searchService.Search(ctx.Request.Context(), ctx.Query("query"))
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ExportScores godoc
// @Summary (Admin) Export every score to CSV
// @Tags Admin - Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ExportResponse
// @Failure 500 {object} dto.ErrorResponse "Export failed"
// @Router /admin/export-scores [post]
func (c *ReportController) ExportScores(ctx *gin.Context) {
	resp, err := c.exportService.ExportAllScores(ctx.Request.Context())
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DownloadExport godoc
// @Summary (Admin) Download a score export
// @Tags Admin - Reports
// @Produce text/csv
// @Security BearerAuth
// @Param filename path string true "Export filename"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse "Invalid filename"
// @Failure 404 {object} dto.ErrorResponse "Export not found"
// @Router /admin/exports/{filename} [get]
func (c *ReportController) DownloadExport(ctx *gin.Context) {
	name := ctx.Param("filename")
	path, err := c.exportService.OpenExport(name)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.FileAttachment(path, name)
}

// TriggerDailyReminder godoc
// @Summary (Admin) Send the daily reminder now
// @Tags Admin - Jobs
// @Produce json
// @Security BearerAuth
// @Success 202 {object} dto.JobAcceptedResponse
// @Router /admin/jobs/daily-reminder [post]
func (c *ReportController) TriggerDailyReminder(ctx *gin.Context) {
	c.trigger(ctx, scheduler.JobDailyReminder)
}

// TriggerMonthlyReport godoc
// @Summary (Admin) Send the monthly report now
// @Tags Admin - Jobs
// @Produce json
// @Security BearerAuth
// @Success 202 {object} dto.JobAcceptedResponse
// @Router /admin/jobs/monthly-report [post]
func (c *ReportController) TriggerMonthlyReport(ctx *gin.Context) {
	c.trigger(ctx, scheduler.JobMonthlyReport)
}

func (c *ReportController) trigger(ctx *gin.Context, job string) {
	if err := c.jobs.Trigger(job); err != nil {
		if errors.Is(err, scheduler.ErrStopped) {
			respond.Error(ctx, apperr.New(apperr.KindUnavailable, "scheduler is shutting down"))
			return
		}
		respond.Error(ctx, apperr.Internal(err, "triggering %s", job))
		return
	}
	ctx.JSON(http.StatusAccepted, dto.JobAcceptedResponse{Job: job, Message: "Job started"})
}
