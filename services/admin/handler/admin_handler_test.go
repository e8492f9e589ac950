package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace-admin/internal/adminerrors"
	admin "marketplace-admin/internal/adminService"
	"marketplace-admin/internal/aggregation"
	"marketplace-admin/internal/listing"
	model "marketplace-admin/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(h *AdminHandler) *gin.Engine {
	router := gin.New()
	router.GET("/dashboard", h.DashboardHandler)
	router.GET("/healthz", h.HealthHandler)

	router.GET("/users", h.ListUsersHandler)
	router.GET("/users/:user_id", h.GetUserHandler)
	router.GET("/users/:user_id/auctions", h.GetUserAuctionsHandler)
	router.GET("/users/:user_id/groups", h.GetUserGroupsHandler)
	router.PUT("/users/:user_id/ban", h.BanUserHandler)
	router.PUT("/users/:user_id/active", h.SetUserActiveHandler)
	router.DELETE("/users/:user_id", h.DeleteUserHandler)

	router.GET("/auctions", h.ListAuctionsHandler)
	router.GET("/auctions/feed", h.AuctionFeedHandler)
	router.GET("/auctions/:auction_id", h.GetAuctionHandler)
	router.DELETE("/auctions/:auction_id", h.DeleteAuctionHandler)

	router.GET("/groups", h.ListGroupsHandler)
	router.GET("/groups/:group_id", h.GetGroupHandler)
	router.POST("/groups/:group_id/members", h.AddGroupMemberHandler)
	router.DELETE("/groups/:group_id/members/:user_id", h.RemoveGroupMemberHandler)
	router.POST("/groups/:group_id/admins", h.AddGroupAdminHandler)
	router.DELETE("/groups/:group_id/admins/:user_id", h.RemoveGroupAdminHandler)
	router.DELETE("/groups/:group_id", h.DeleteGroupHandler)

	router.GET("/reports/:kind", h.ListReportsHandler)
	router.PUT("/reports/:kind/:report_id", h.UpdateReportStatusHandler)
	return router
}

type httpCase struct {
	name           string
	method         string
	path           string
	body           any
	mockSetup      func(m *MockAdminServiceInterface)
	expectedStatus int
	expectedMsg    string
	validate       func(t *testing.T, resp map[string]any)
}

func runHTTPCases(t *testing.T, tests []httpCase) {
	t.Helper()

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockAdminServiceInterface(ctrl)
			if tc.mockSetup != nil {
				tc.mockSetup(mockService)
			}
			router := newTestRouter(NewAdminHandler(mockService))

			var reqBody []byte
			switch v := tc.body.(type) {
			case nil:
			case string:
				reqBody = []byte(v)
			default:
				var err error
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(tc.method, tc.path, bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validate != nil {
				tc.validate(t, resp)
			}
		})
	}
}

var created = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func TestUserHandlers(t *testing.T) {
	t.Parallel()

	runHTTPCases(t, []httpCase{
		{
			name:   "list_first_page",
			method: http.MethodGet,
			path:   "/users?page_size=2&search=ann&sort=name_asc",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().
					ListUsers(gomock.Any(), admin.ListParams{PageSize: 2, Search: "ann", Sort: "name_asc"}).
					Return(listing.Page[model.User]{
						Records:    []model.User{{UID: "u1", DisplayName: "Ann", CreatedAt: created}},
						NextCursor: lo.ToPtr(2),
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "users retrieved successfully",
			validate: func(t *testing.T, resp map[string]any) {
				require.Equal(t, 2.0, resp["nextCursor"])
				users := resp["data"].([]any)
				require.Len(t, users, 1)
				require.Equal(t, "Ann", users[0].(map[string]any)["displayName"])
			},
		},
		{
			name:   "list_with_cursor_last_page",
			method: http.MethodGet,
			path:   "/users?cursor=4",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().
					ListUsers(gomock.Any(), admin.ListParams{Cursor: lo.ToPtr(4)}).
					Return(listing.Page[model.User]{Records: []model.User{}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "users retrieved successfully",
			validate: func(t *testing.T, resp map[string]any) {
				require.Nil(t, resp["nextCursor"])
				require.Empty(t, resp["data"])
			},
		},
		{
			name:           "list_negative_cursor",
			method:         http.MethodGet,
			path:           "/users?cursor=-1",
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "list_non_numeric_page_size",
			method:         http.MethodGet,
			path:           "/users?page_size=lots",
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:   "list_bad_sort",
			method: http.MethodGet,
			path:   "/users?sort=height_asc",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().ListUsers(gomock.Any(), gomock.Any()).
					Return(listing.Page[model.User]{}, fmt.Errorf("service: %w", adminerrors.ErrInvalidSort))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid sort option",
		},
		{
			name:   "get_found",
			method: http.MethodGet,
			path:   "/users/u1",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().GetUser(gomock.Any(), "u1").Return(model.User{
					UID:       "u1",
					Followers: []model.UserRef{{UserID: "u2"}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "user retrieved successfully",
			validate: func(t *testing.T, resp map[string]any) {
				user := resp["data"].(map[string]any)
				follower := user["followers"].([]any)[0].(map[string]any)
				require.Equal(t, "u2", follower["userId"])
				require.NotContains(t, follower, "userInfo")
			},
		},
		{
			name:   "get_missing",
			method: http.MethodGet,
			path:   "/users/nope",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().GetUser(gomock.Any(), "nope").Return(model.User{}, adminerrors.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "resource not found",
		},
		{
			name:   "auctions_empty",
			method: http.MethodGet,
			path:   "/users/u1/auctions",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().GetUserAuctions(gomock.Any(), "u1").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auctions retrieved successfully",
			validate: func(t *testing.T, resp map[string]any) {
				require.Equal(t, []any{}, resp["data"])
			},
		},
		{
			name:   "groups",
			method: http.MethodGet,
			path:   "/users/u1/groups",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().GetUserGroups(gomock.Any(), "u1").Return([]model.Group{{ID: "g1"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "groups retrieved successfully",
		},
		{
			name:   "ban_until",
			method: http.MethodPut,
			path:   "/users/u1/ban",
			body:   map[string]any{"banned": true, "until": "2024-07-01T00:00:00Z"},
			mockSetup: func(m *MockAdminServiceInterface) {
				until := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
				m.EXPECT().SetUserBanned(gomock.Any(), "u1", true, gomock.Any()).
					DoAndReturn(func(_ any, _ string, _ bool, got *time.Time) error {
						require.True(t, until.Equal(*got))
						return nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "user ban updated successfully",
		},
		{
			name:   "unban",
			method: http.MethodPut,
			path:   "/users/u1/ban",
			body:   map[string]any{"banned": false},
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().SetUserBanned(gomock.Any(), "u1", false, (*time.Time)(nil)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "user ban updated successfully",
		},
		{
			name:           "ban_missing_flag",
			method:         http.MethodPut,
			path:           "/users/u1/ban",
			body:           map[string]any{},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:   "activate_store_down",
			method: http.MethodPut,
			path:   "/users/u1/active",
			body:   map[string]any{"active": true},
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().SetUserActive(gomock.Any(), "u1", true).Return(&adminerrors.MutationError{
					Op: "update", Collection: "users", ID: "u1", Kind: adminerrors.KindUnavailable, Err: errors.New("timeout"),
				})
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedMsg:    "document store unavailable",
		},
		{
			name:   "delete_unconfirmed",
			method: http.MethodDelete,
			path:   "/users/u1",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().DeleteUser(gomock.Any(), "u1", false).Return(adminerrors.ErrNotConfirmed)
			},
			expectedStatus: http.StatusPreconditionRequired,
			expectedMsg:    "operation requires confirmation",
		},
		{
			name:   "delete_confirmed",
			method: http.MethodDelete,
			path:   "/users/u1?confirm=true",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().DeleteUser(gomock.Any(), "u1", true).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "user deleted successfully",
		},
	})
}

func TestAuctionHandlers(t *testing.T) {
	t.Parallel()

	end := created.Add(72 * time.Hour)

	runHTTPCases(t, []httpCase{
		{
			name:   "list_active",
			method: http.MethodGet,
			path:   "/auctions?status=active&sort=price_desc",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().
					ListAuctions(gomock.Any(), "active", admin.ListParams{Sort: "price_desc"}).
					Return(listing.Page[model.Auction]{Records: []model.Auction{{
						ID: "a1", CurrentPrice: 40, EndTime: &end, CreatedAt: created,
						BidHistory: []model.BidEntry{{UserID: "u2", Amount: 40, Timestamp: created}},
					}}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auctions retrieved successfully",
			validate: func(t *testing.T, resp map[string]any) {
				auction := resp["data"].([]any)[0].(map[string]any)
				require.Equal(t, 40.0, auction["currentPrice"])
				require.Equal(t, "2024-05-04T09:00:00Z", auction["endTime"])
				require.NotContains(t, auction, "creator")
			},
		},
		{
			name:   "list_unknown_status",
			method: http.MethodGet,
			path:   "/auctions?status=sold",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().ListAuctions(gomock.Any(), "sold", gomock.Any()).
					Return(listing.Page[model.Auction]{}, fmt.Errorf("service: %w - unknown auction status", adminerrors.ErrInvalidInput))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
		},
		{
			name:   "feed_with_next_token",
			method: http.MethodGet,
			path:   "/auctions/feed?page_size=5",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().AuctionFeed(gomock.Any(), 5, "").
					Return(listing.KeysetPage[model.Auction]{Records: []model.Auction{{ID: "a9"}}, NextToken: "tok"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction feed retrieved successfully",
			validate: func(t *testing.T, resp map[string]any) {
				require.Equal(t, "tok", resp["nextCursor"])
			},
		},
		{
			name:   "feed_bad_token",
			method: http.MethodGet,
			path:   "/auctions/feed?token=zzz",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().AuctionFeed(gomock.Any(), 0, "zzz").
					Return(listing.KeysetPage[model.Auction]{}, adminerrors.ErrInvalidCursor)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid cursor",
		},
		{
			name:   "feed_last_page",
			method: http.MethodGet,
			path:   "/auctions/feed?token=abc",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().AuctionFeed(gomock.Any(), 0, "abc").
					Return(listing.KeysetPage[model.Auction]{Records: []model.Auction{}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction feed retrieved successfully",
			validate: func(t *testing.T, resp map[string]any) {
				require.Contains(t, resp, "nextCursor")
				require.Nil(t, resp["nextCursor"])
			},
		},
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/auctions/a1",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().GetAuction(gomock.Any(), "a1").Return(model.Auction{ID: "a1", Creator: &model.User{UID: "u1"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction retrieved successfully",
			validate: func(t *testing.T, resp map[string]any) {
				auction := resp["data"].(map[string]any)
				require.Equal(t, "u1", auction["creator"].(map[string]any)["uid"])
				require.NotContains(t, auction, "currentBidder")
			},
		},
		{
			name:   "get_unexpected_error",
			method: http.MethodGet,
			path:   "/auctions/a1",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().GetAuction(gomock.Any(), "a1").Return(model.Auction{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
		{
			name:   "delete_confirmed",
			method: http.MethodDelete,
			path:   "/auctions/a1?confirm=true",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().DeleteAuction(gomock.Any(), "a1", true).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction deleted successfully",
		},
		{
			name:           "delete_bad_confirm_value",
			method:         http.MethodDelete,
			path:           "/auctions/a1?confirm=maybe",
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	})
}

func TestGroupHandlers(t *testing.T) {
	t.Parallel()

	runHTTPCases(t, []httpCase{
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/groups?page_size=10&cursor=10",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().ListGroups(gomock.Any(), admin.ListParams{PageSize: 10, Cursor: lo.ToPtr(10)}).
					Return(listing.Page[model.Group]{Records: []model.Group{{ID: "g1", MemberCount: 3}}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "groups retrieved successfully",
		},
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/groups/g1",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().GetGroup(gomock.Any(), "g1").Return(model.Group{
					ID:    "g1",
					Posts: []model.Post{{ID: "p1", Comments: []model.Comment{{ID: "c1", UserID: "u9"}}}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "group retrieved successfully",
			validate: func(t *testing.T, resp map[string]any) {
				post := resp["data"].(map[string]any)["posts"].([]any)[0].(map[string]any)
				comment := post["comments"].([]any)[0].(map[string]any)
				require.NotContains(t, comment, "user")
			},
		},
		{
			name:   "add_member",
			method: http.MethodPost,
			path:   "/groups/g1/members",
			body:   map[string]any{"user_id": "u3"},
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().AddGroupMember(gomock.Any(), "g1", "u3").Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "member added successfully",
		},
		{
			name:           "add_member_invalid_json",
			method:         http.MethodPost,
			path:           "/groups/g1/members",
			body:           `{invalid json}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:   "add_unknown_member",
			method: http.MethodPost,
			path:   "/groups/g1/members",
			body:   map[string]any{"user_id": "ghost"},
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().AddGroupMember(gomock.Any(), "g1", "ghost").Return(fmt.Errorf("service: %w", adminerrors.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "resource not found",
		},
		{
			name:   "remove_member",
			method: http.MethodDelete,
			path:   "/groups/g1/members/u2?confirm=true",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().RemoveGroupMember(gomock.Any(), "g1", "u2", true).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "member removed successfully",
		},
		{
			name:   "add_admin",
			method: http.MethodPost,
			path:   "/groups/g1/admins",
			body:   map[string]any{"user_id": "u2"},
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().AddGroupAdmin(gomock.Any(), "g1", "u2").Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "group admin added successfully",
			validate: func(t *testing.T, resp map[string]any) {
				require.Equal(t, "u2", resp["data"].(map[string]any)["userId"])
			},
		},
		{
			name:           "add_admin_missing_user",
			method:         http.MethodPost,
			path:           "/groups/g1/admins",
			body:           map[string]any{},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:   "add_admin_to_missing_group",
			method: http.MethodPost,
			path:   "/groups/nope/admins",
			body:   map[string]any{"user_id": "u2"},
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().AddGroupAdmin(gomock.Any(), "nope", "u2").Return(fmt.Errorf("service: %w", adminerrors.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "resource not found",
		},
		{
			name:   "remove_admin",
			method: http.MethodDelete,
			path:   "/groups/g1/admins/u1",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().RemoveGroupAdmin(gomock.Any(), "g1", "u1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "group admin removed successfully",
		},
		{
			name:   "delete_unconfirmed",
			method: http.MethodDelete,
			path:   "/groups/g1",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().DeleteGroup(gomock.Any(), "g1", false).Return(adminerrors.ErrNotConfirmed)
			},
			expectedStatus: http.StatusPreconditionRequired,
			expectedMsg:    "operation requires confirmation",
		},
	})
}

func TestReportHandlers(t *testing.T) {
	t.Parallel()

	runHTTPCases(t, []httpCase{
		{
			name:   "list_group_reports",
			method: http.MethodGet,
			path:   "/reports/group?status=pending",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().ListReports(gomock.Any(), aggregation.ReportGroup, "pending", admin.ListParams{}).
					Return(listing.Page[model.Report]{Records: []model.Report{{
						ID: "r1", Type: "group", Status: "pending",
						ReportedGroup: &model.Group{ID: "g1", Name: "Collectors"},
					}}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "reports retrieved successfully",
			validate: func(t *testing.T, resp map[string]any) {
				report := resp["data"].([]any)[0].(map[string]any)
				require.Equal(t, "Collectors", report["reportedGroup"].(map[string]any)["name"])
				require.NotContains(t, report, "reportedAuction")
			},
		},
		{
			name:           "list_unknown_kind",
			method:         http.MethodGet,
			path:           "/reports/post",
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
		},
		{
			name:   "resolve",
			method: http.MethodPut,
			path:   "/reports/auction/r4",
			body:   map[string]any{"status": "resolved"},
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().UpdateReportStatus(gomock.Any(), aggregation.ReportAuction, "r4", "resolved").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "report status updated successfully",
		},
		{
			name:           "resolve_unknown_status",
			method:         http.MethodPut,
			path:           "/reports/user/r1",
			body:           map[string]any{"status": "archived"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:   "resolve_without_operator",
			method: http.MethodPut,
			path:   "/reports/user/r1",
			body:   map[string]any{"status": "rejected"},
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().UpdateReportStatus(gomock.Any(), aggregation.ReportUser, "r1", "rejected").Return(adminerrors.ErrUnauthorized)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "authentication required",
		},
	})
}

func TestDashboardAndHealthHandlers(t *testing.T) {
	t.Parallel()

	runHTTPCases(t, []httpCase{
		{
			name:   "dashboard",
			method: http.MethodGet,
			path:   "/dashboard",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().DashboardStats(gomock.Any()).Return(model.DashboardStats{TotalUsers: 3, CompletionRate: 67}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "dashboard stats retrieved successfully",
			validate: func(t *testing.T, resp map[string]any) {
				stats := resp["data"].(map[string]any)
				require.Equal(t, 3.0, stats["totalUsers"])
				require.Equal(t, 67.0, stats["completionRate"])
			},
		},
		{
			name:   "dashboard_failure",
			method: http.MethodGet,
			path:   "/dashboard",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().DashboardStats(gomock.Any()).Return(model.DashboardStats{}, errors.New("timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
		{
			name:           "healthz",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
			expectedMsg:    "service healthy",
			validate: func(t *testing.T, resp map[string]any) {
				require.Equal(t, "ok", resp["data"].(map[string]any)["status"])
			},
		},
	})
}
