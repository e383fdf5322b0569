package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/681102815-lab/CondoCare-backend/entity"
	"github.com/681102815-lab/CondoCare-backend/pkg/resp"
	"github.com/681102815-lab/CondoCare-backend/services"
	"github.com/681102815-lab/CondoCare-backend/utils"
	"github.com/gin-gonic/gin"
)

type CreateReportRequest struct {
	ReportID int64  `json:"reportId"`
	Category string `json:"category"`
	Detail   string `json:"detail"`
	Priority string `json:"priority"`
	Owner    string `json:"owner"`
}
type SetStatusRequest struct {
	Status string `json:"status"`
}
type SetFeedbackRequest struct {
	Feedback string `json:"feedback"`
}
type VoteRequest struct {
	Username string `json:"username"`
}
type AddCommentRequest struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

type ReportController struct {
	reportService *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{reportService: service}
}

// GET /api/reports
func (rc *ReportController) List(c *gin.Context) {
	reports, err := rc.reportService.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": reports})
}

// POST /api/reports
func (rc *ReportController) Create(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Category == "" || req.Detail == "" {
		resp.BadRequest(c, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}

	owner := req.Owner
	if owner == "" {
		owner = utils.CurrentUsername(c)
	}

	report, err := rc.reportService.Create(req.ReportID, req.Category, req.Detail, req.Priority, owner)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// DELETE /api/reports/:id
func (rc *ReportController) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := rc.reportService.Delete(id); err != nil {
		resp.NotFound(c, "Report not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted", "id": id})
}

// PUT /api/reports/:id/status
func (rc *ReportController) SetStatus(c *gin.Context) {
	reportID, ok := reportIDParam(c)
	if !ok {
		return
	}
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	report, err := rc.reportService.SetStatus(reportID, req.Status)
	if err != nil {
		rc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// PUT /api/reports/:id/feedback
func (rc *ReportController) SetFeedback(c *gin.Context) {
	reportID, ok := reportIDParam(c)
	if !ok {
		return
	}
	var req SetFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	report, err := rc.reportService.SetFeedback(reportID, req.Feedback)
	if err != nil {
		rc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// POST /api/reports/:id/like
func (rc *ReportController) ToggleLike(c *gin.Context) {
	rc.vote(c, rc.reportService.ToggleLike)
}

// POST /api/reports/:id/dislike
func (rc *ReportController) ToggleDislike(c *gin.Context) {
	rc.vote(c, rc.reportService.ToggleDislike)
}

// POST /api/reports/:id/comment
func (rc *ReportController) AddComment(c *gin.Context) {
	reportID, ok := reportIDParam(c)
	if !ok {
		return
	}
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Text == "" {
		resp.BadRequest(c, "กรุณากรอกข้อความ")
		return
	}

	author := req.Author
	if author == "" {
		author = utils.CurrentUsername(c)
	}
	if author == "" {
		author = "unknown"
	}

	report, err := rc.reportService.AddComment(reportID, author, req.Text)
	if err != nil {
		rc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (rc *ReportController) vote(c *gin.Context, toggle func(int64, string) (*entity.Report, error)) {
	reportID, ok := reportIDParam(c)
	if !ok {
		return
	}
	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	report, err := toggle(reportID, req.Username)
	if err != nil {
		rc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (rc *ReportController) fail(c *gin.Context, err error) {
	if errors.Is(err, services.ErrReportNotFound) {
		resp.NotFound(c, err.Error())
		return
	}
	resp.ServerError(c, err)
}

// :id ใน path ต้องเป็นเลขอ้างอิง report
func reportIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "Report not found")
		return 0, false
	}
	return id, true
}
