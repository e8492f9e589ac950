package handler

import (
	"net/http"

	model "marketplace-admin/internal/models"
	"marketplace-admin/services/admin/helpers"
	"marketplace-admin/utils"

	"github.com/gin-gonic/gin"
)

// ListUsersHandler handles GET /users
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	var q helpers.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "ListUsersHandler", err)
		return
	}

	page, err := h.service.ListUsers(c.Request.Context(), listParams(q))
	if err != nil {
		helpers.RespondError(c, "ListUsersHandler", err, map[string]any{"sort": q.Sort})
		return
	}

	utils.JSONPage(c, http.StatusOK, page.Records, page.NextCursor, "users retrieved successfully")
	helpers.LogSuccess("ListUsersHandler", "users retrieved successfully", map[string]any{"count": len(page.Records)})
}

// GetUserHandler handles GET /users/:user_id
func (h *AdminHandler) GetUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "GetUserHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "user retrieved successfully")
}

// GetUserAuctionsHandler handles GET /users/:user_id/auctions
func (h *AdminHandler) GetUserAuctionsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	auctions, err := h.service.GetUserAuctions(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "GetUserAuctionsHandler", err, map[string]any{"user_id": userID})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("GetUserAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(auctions),
	})
}

// GetUserGroupsHandler handles GET /users/:user_id/groups
func (h *AdminHandler) GetUserGroupsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	groups, err := h.service.GetUserGroups(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "GetUserGroupsHandler", err, map[string]any{"user_id": userID})
		return
	}

	if groups == nil {
		groups = []model.Group{}
	}

	utils.JSONResponse(c, http.StatusOK, groups, "groups retrieved successfully")
}

// BanUserHandler handles PUT /users/:user_id/ban
func (h *AdminHandler) BanUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	var req helpers.BanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "BanUserHandler", err)
		return
	}

	if err := h.service.SetUserBanned(c.Request.Context(), userID, *req.Banned, req.Until); err != nil {
		helpers.RespondError(c, "BanUserHandler", err, map[string]any{"user_id": userID, "banned": *req.Banned})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"userId": userID, "isBanned": *req.Banned}, "user ban updated successfully")
	helpers.LogSuccess("BanUserHandler", "user ban updated successfully", map[string]any{
		"user_id": userID,
		"banned":  *req.Banned,
	})
}

// SetUserActiveHandler handles PUT /users/:user_id/active
func (h *AdminHandler) SetUserActiveHandler(c *gin.Context) {
	userID := c.Param("user_id")
	var req helpers.ActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetUserActiveHandler", err)
		return
	}

	if err := h.service.SetUserActive(c.Request.Context(), userID, *req.Active); err != nil {
		helpers.RespondError(c, "SetUserActiveHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"userId": userID, "isActive": *req.Active}, "user status updated successfully")
	helpers.LogSuccess("SetUserActiveHandler", "user status updated successfully", map[string]any{
		"user_id": userID,
		"active":  *req.Active,
	})
}

// DeleteUserHandler handles DELETE /users/:user_id?confirm=true
func (h *AdminHandler) DeleteUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	var q helpers.ConfirmQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "DeleteUserHandler", err)
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), userID, q.Confirm); err != nil {
		helpers.RespondError(c, "DeleteUserHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"userId": userID}, "user deleted successfully")
	helpers.LogSuccess("DeleteUserHandler", "user deleted successfully", map[string]any{"user_id": userID})
}
