package handler

import (
	"net/http"

	"marketplace-admin/services/admin/helpers"
	"marketplace-admin/utils"

	"github.com/gin-gonic/gin"
)

// ListAuctionsHandler handles GET /auctions?status=all|active|ended
func (h *AdminHandler) ListAuctionsHandler(c *gin.Context) {
	var q helpers.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "ListAuctionsHandler", err)
		return
	}

	page, err := h.service.ListAuctions(c.Request.Context(), q.Status, listParams(q))
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", err, map[string]any{"status_filter": q.Status, "sort": q.Sort})
		return
	}

	utils.JSONPage(c, http.StatusOK, page.Records, page.NextCursor, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"status_filter": q.Status,
		"count":         len(page.Records),
	})
}

// AuctionFeedHandler handles GET /auctions/feed?token=...
func (h *AdminHandler) AuctionFeedHandler(c *gin.Context) {
	var q helpers.FeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "AuctionFeedHandler", err)
		return
	}

	page, err := h.service.AuctionFeed(c.Request.Context(), q.PageSize, q.Token)
	if err != nil {
		helpers.RespondError(c, "AuctionFeedHandler", err, nil)
		return
	}

	utils.JSONPage(c, http.StatusOK, page.Records, nextToken(page.NextToken), "auction feed retrieved successfully")
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AdminHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	auction, err := h.service.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction retrieved successfully")
}

// DeleteAuctionHandler handles DELETE /auctions/:auction_id?confirm=true
func (h *AdminHandler) DeleteAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var q helpers.ConfirmQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "DeleteAuctionHandler", err)
		return
	}

	if err := h.service.DeleteAuction(c.Request.Context(), auctionID, q.Confirm); err != nil {
		helpers.RespondError(c, "DeleteAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auctionId": auctionID}, "auction deleted successfully")
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted successfully", map[string]any{"auction_id": auctionID})
}
