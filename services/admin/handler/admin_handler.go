package handler

//go:generate mockgen -package=handler -destination=mock_admin_service.go -source=admin_handler.go AdminServiceInterface

import (
	"context"
	"net/http"
	"time"

	admin "marketplace-admin/internal/adminService"
	"marketplace-admin/internal/aggregation"
	"marketplace-admin/internal/listing"
	model "marketplace-admin/internal/models"
	"marketplace-admin/services/admin/helpers"
	"marketplace-admin/utils"

	"github.com/gin-gonic/gin"
)

type AdminServiceInterface interface {
	ListUsers(ctx context.Context, p admin.ListParams) (listing.Page[model.User], error)
	GetUser(ctx context.Context, uid string) (model.User, error)
	GetUserAuctions(ctx context.Context, uid string) ([]model.Auction, error)
	GetUserGroups(ctx context.Context, uid string) ([]model.Group, error)
	SetUserBanned(ctx context.Context, uid string, banned bool, until *time.Time) error
	SetUserActive(ctx context.Context, uid string, active bool) error
	DeleteUser(ctx context.Context, uid string, confirmed bool) error

	ListAuctions(ctx context.Context, status string, p admin.ListParams) (listing.Page[model.Auction], error)
	AuctionFeed(ctx context.Context, pageSize int, token string) (listing.KeysetPage[model.Auction], error)
	GetAuction(ctx context.Context, id string) (model.Auction, error)
	DeleteAuction(ctx context.Context, id string, confirmed bool) error

	ListGroups(ctx context.Context, p admin.ListParams) (listing.Page[model.Group], error)
	GetGroup(ctx context.Context, id string) (model.Group, error)
	AddGroupMember(ctx context.Context, groupID, uid string) error
	RemoveGroupMember(ctx context.Context, groupID, uid string, confirmed bool) error
	AddGroupAdmin(ctx context.Context, groupID, uid string) error
	RemoveGroupAdmin(ctx context.Context, groupID, uid string) error
	DeleteGroup(ctx context.Context, id string, confirmed bool) error

	ListReports(ctx context.Context, kind aggregation.ReportKind, status string, p admin.ListParams) (listing.Page[model.Report], error)
	UpdateReportStatus(ctx context.Context, kind aggregation.ReportKind, id, status string) error

	DashboardStats(ctx context.Context) (model.DashboardStats, error)
}

type AdminHandler struct {
	service AdminServiceInterface
}

func NewAdminHandler(service AdminServiceInterface) *AdminHandler {
	return &AdminHandler{service: service}
}

func listParams(q helpers.ListQuery) admin.ListParams {
	return admin.ListParams{
		PageSize: q.PageSize,
		Cursor:   q.Cursor,
		Search:   q.Search,
		Sort:     q.Sort,
	}
}

// nextToken renders an exhausted feed as a null cursor, like offset pages
func nextToken(token string) any {
	if token == "" {
		return nil
	}
	return token
}

// DashboardHandler handles GET /dashboard
func (h *AdminHandler) DashboardHandler(c *gin.Context) {
	stats, err := h.service.DashboardStats(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "DashboardHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, stats, "dashboard stats retrieved successfully")
	helpers.LogSuccess("DashboardHandler", "dashboard stats retrieved successfully", map[string]any{
		"total_users":     stats.TotalUsers,
		"pending_reports": stats.PendingReports,
	})
}

// HealthHandler handles GET /healthz
func (h *AdminHandler) HealthHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, helpers.HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	}, "service healthy")
}
