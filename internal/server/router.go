package server

import (
	handler "marketplace-admin/services/admin/handler"

	"github.com/gin-gonic/gin"
)

// Service is everything the HTTP surface needs from the admin service
type Service interface {
	handler.AdminServiceInterface
	AdminChecker
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(service Service) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // correlate logs
	router.Use(RequestLoggerMiddleware) // custom request logging

	adminHandler := handler.NewAdminHandler(service)

	router.GET("/healthz", adminHandler.HealthHandler)

	api := router.Group("", AdminAuthMiddleware(service))

	api.GET("/dashboard", adminHandler.DashboardHandler)

	users := api.Group("/users")
	{
		users.GET("", adminHandler.ListUsersHandler)
		users.GET("/:user_id", adminHandler.GetUserHandler)
		users.GET("/:user_id/auctions", adminHandler.GetUserAuctionsHandler)
		users.GET("/:user_id/groups", adminHandler.GetUserGroupsHandler)
		users.PUT("/:user_id/ban", adminHandler.BanUserHandler)
		users.PUT("/:user_id/active", adminHandler.SetUserActiveHandler)
		users.DELETE("/:user_id", adminHandler.DeleteUserHandler)
	}

	auctions := api.Group("/auctions")
	{
		auctions.GET("", adminHandler.ListAuctionsHandler)
		auctions.GET("/feed", adminHandler.AuctionFeedHandler)
		auctions.GET("/:auction_id", adminHandler.GetAuctionHandler)
		auctions.DELETE("/:auction_id", adminHandler.DeleteAuctionHandler)
	}

	groups := api.Group("/groups")
	{
		groups.GET("", adminHandler.ListGroupsHandler)
		groups.GET("/:group_id", adminHandler.GetGroupHandler)
		groups.DELETE("/:group_id", adminHandler.DeleteGroupHandler)
		groups.POST("/:group_id/members", adminHandler.AddGroupMemberHandler)
		groups.DELETE("/:group_id/members/:user_id", adminHandler.RemoveGroupMemberHandler)
		groups.POST("/:group_id/admins", adminHandler.AddGroupAdminHandler)
		groups.DELETE("/:group_id/admins/:user_id", adminHandler.RemoveGroupAdminHandler)
	}

	reports := api.Group("/reports")
	{
		reports.GET("/:kind", adminHandler.ListReportsHandler)
		reports.PUT("/:kind/:report_id", adminHandler.UpdateReportStatusHandler)
	}

	return router
}
