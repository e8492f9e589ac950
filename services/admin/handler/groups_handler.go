package handler

import (
	"net/http"

	"marketplace-admin/services/admin/helpers"
	"marketplace-admin/utils"

	"github.com/gin-gonic/gin"
)

// ListGroupsHandler handles GET /groups
func (h *AdminHandler) ListGroupsHandler(c *gin.Context) {
	var q helpers.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "ListGroupsHandler", err)
		return
	}

	page, err := h.service.ListGroups(c.Request.Context(), listParams(q))
	if err != nil {
		helpers.RespondError(c, "ListGroupsHandler", err, map[string]any{"sort": q.Sort})
		return
	}

	utils.JSONPage(c, http.StatusOK, page.Records, page.NextCursor, "groups retrieved successfully")
}

// GetGroupHandler handles GET /groups/:group_id
func (h *AdminHandler) GetGroupHandler(c *gin.Context) {
	groupID := c.Param("group_id")
	group, err := h.service.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		helpers.RespondError(c, "GetGroupHandler", err, map[string]any{"group_id": groupID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, group, "group retrieved successfully")
	helpers.LogSuccess("GetGroupHandler", "group retrieved successfully", map[string]any{
		"group_id": groupID,
		"members":  group.MemberCount,
		"posts":    len(group.Posts),
	})
}

// AddGroupMemberHandler handles POST /groups/:group_id/members
func (h *AdminHandler) AddGroupMemberHandler(c *gin.Context) {
	groupID := c.Param("group_id")
	var req helpers.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddGroupMemberHandler", err)
		return
	}

	if err := h.service.AddGroupMember(c.Request.Context(), groupID, req.UserID); err != nil {
		helpers.RespondError(c, "AddGroupMemberHandler", err, map[string]any{"group_id": groupID, "user_id": req.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"groupId": groupID, "userId": req.UserID}, "member added successfully")
	helpers.LogSuccess("AddGroupMemberHandler", "member added successfully", map[string]any{
		"group_id": groupID,
		"user_id":  req.UserID,
	})
}

// RemoveGroupMemberHandler handles DELETE /groups/:group_id/members/:user_id?confirm=true
func (h *AdminHandler) RemoveGroupMemberHandler(c *gin.Context) {
	groupID, userID := c.Param("group_id"), c.Param("user_id")
	var q helpers.ConfirmQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "RemoveGroupMemberHandler", err)
		return
	}

	if err := h.service.RemoveGroupMember(c.Request.Context(), groupID, userID, q.Confirm); err != nil {
		helpers.RespondError(c, "RemoveGroupMemberHandler", err, map[string]any{"group_id": groupID, "user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"groupId": groupID, "userId": userID}, "member removed successfully")
	helpers.LogSuccess("RemoveGroupMemberHandler", "member removed successfully", map[string]any{
		"group_id": groupID,
		"user_id":  userID,
	})
}

// AddGroupAdminHandler handles POST /groups/:group_id/admins
func (h *AdminHandler) AddGroupAdminHandler(c *gin.Context) {
	groupID := c.Param("group_id")
	var req helpers.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddGroupAdminHandler", err)
		return
	}

	if err := h.service.AddGroupAdmin(c.Request.Context(), groupID, req.UserID); err != nil {
		helpers.RespondError(c, "AddGroupAdminHandler", err, map[string]any{"group_id": groupID, "user_id": req.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"groupId": groupID, "userId": req.UserID}, "group admin added successfully")
	helpers.LogSuccess("AddGroupAdminHandler", "group admin added successfully", map[string]any{
		"group_id": groupID,
		"user_id":  req.UserID,
	})
}

// RemoveGroupAdminHandler handles DELETE /groups/:group_id/admins/:user_id
func (h *AdminHandler) RemoveGroupAdminHandler(c *gin.Context) {
	groupID, userID := c.Param("group_id"), c.Param("user_id")

	if err := h.service.RemoveGroupAdmin(c.Request.Context(), groupID, userID); err != nil {
		helpers.RespondError(c, "RemoveGroupAdminHandler", err, map[string]any{"group_id": groupID, "user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"groupId": groupID, "userId": userID}, "group admin removed successfully")
	helpers.LogSuccess("RemoveGroupAdminHandler", "group admin removed successfully", map[string]any{
		"group_id": groupID,
		"user_id":  userID,
	})
}

// DeleteGroupHandler handles DELETE /groups/:group_id?confirm=true
func (h *AdminHandler) DeleteGroupHandler(c *gin.Context) {
	groupID := c.Param("group_id")
	var q helpers.ConfirmQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "DeleteGroupHandler", err)
		return
	}

	if err := h.service.DeleteGroup(c.Request.Context(), groupID, q.Confirm); err != nil {
		helpers.RespondError(c, "DeleteGroupHandler", err, map[string]any{"group_id": groupID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"groupId": groupID}, "group deleted successfully")
	helpers.LogSuccess("DeleteGroupHandler", "group deleted successfully", map[string]any{"group_id": groupID})
}
