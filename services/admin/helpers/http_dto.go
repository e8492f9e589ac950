package helpers

import "time"

// Request DTOs

// ListQuery selects a page of an offset listing. Search and sort narrow the page.
type ListQuery struct {
	PageSize int    `form:"page_size" binding:"omitempty,min=1"`
	Cursor   *int   `form:"cursor" binding:"omitempty,min=0"`
	Search   string `form:"search"`
	Sort     string `form:"sort"`
	Status   string `form:"status"`
}

type FeedQuery struct {
	PageSize int    `form:"page_size" binding:"omitempty,min=1"`
	Token    string `form:"token"`
}

// ConfirmQuery guards destructive endpoints: ?confirm=true
type ConfirmQuery struct {
	Confirm bool `form:"confirm"`
}

type BanRequest struct {
	Banned *bool      `json:"banned" binding:"required"`
	Until  *time.Time `json:"until"`
}

type ActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type MemberRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type ReportStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending resolved rejected"`
}

// Response DTOs

type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}
