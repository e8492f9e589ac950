package handler

import (
	"net/http"

	"marketplace-admin/internal/aggregation"
	"marketplace-admin/services/admin/helpers"
	"marketplace-admin/utils"

	"github.com/gin-gonic/gin"
)

// ListReportsHandler handles GET /reports/:kind?status=pending|resolved|rejected
func (h *AdminHandler) ListReportsHandler(c *gin.Context) {
	kind, err := aggregation.ParseReportKind(c.Param("kind"))
	if err != nil {
		helpers.RespondError(c, "ListReportsHandler", err, map[string]any{"kind": c.Param("kind")})
		return
	}

	var q helpers.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "ListReportsHandler", err)
		return
	}

	page, err := h.service.ListReports(c.Request.Context(), kind, q.Status, listParams(q))
	if err != nil {
		helpers.RespondError(c, "ListReportsHandler", err, map[string]any{"kind": string(kind), "status_filter": q.Status})
		return
	}

	utils.JSONPage(c, http.StatusOK, page.Records, page.NextCursor, "reports retrieved successfully")
	helpers.LogSuccess("ListReportsHandler", "reports retrieved successfully", map[string]any{
		"kind":  string(kind),
		"count": len(page.Records),
	})
}

// UpdateReportStatusHandler handles PUT /reports/:kind/:report_id
func (h *AdminHandler) UpdateReportStatusHandler(c *gin.Context) {
	reportID := c.Param("report_id")
	kind, err := aggregation.ParseReportKind(c.Param("kind"))
	if err != nil {
		helpers.RespondError(c, "UpdateReportStatusHandler", err, map[string]any{"kind": c.Param("kind")})
		return
	}

	var req helpers.ReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateReportStatusHandler", err)
		return
	}

	if err := h.service.UpdateReportStatus(c.Request.Context(), kind, reportID, req.Status); err != nil {
		helpers.RespondError(c, "UpdateReportStatusHandler", err, map[string]any{"kind": string(kind), "report_id": reportID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"reportId": reportID, "status": req.Status}, "report status updated successfully")
	helpers.LogSuccess("UpdateReportStatusHandler", "report status updated successfully", map[string]any{
		"kind":      string(kind),
		"report_id": reportID,
		"status":    req.Status,
	})
}
