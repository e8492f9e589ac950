package models

import "time"

// User is the assembled view of a marketplace account
type User struct {
	UID            string     `json:"uid"`
	Email          string     `json:"email"`
	DisplayName    string     `json:"displayName"`
	PhotoURL       string     `json:"photoURL"`
	Username       string     `json:"username"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Bio            string     `json:"bio"`
	Phone          string     `json:"phone"`
	Location       string     `json:"location"`
	Interests      []string   `json:"interests"`
	IsActive       bool       `json:"isActive"`
	IsBanned       bool       `json:"isBanned"`
	IsDeleted      bool       `json:"isDeleted"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastActive     *time.Time `json:"lastActive,omitempty"`
	BanStartDate   *time.Time `json:"banStartDate,omitempty"`
	BanEndDate     *time.Time `json:"banEndDate,omitempty"`
	FollowersCount int        `json:"followersCount"`
	FollowingCount int        `json:"followingCount"`
	Followers      []UserRef  `json:"followers"`
	Following      []UserRef  `json:"following"`
}

// UserRef is one element of a follower or following list
type UserRef struct {
	UserID   string `json:"userId"`
	UserInfo *User  `json:"userInfo,omitempty"`
}

// BidEntry is one bid of an auction's history
type BidEntry struct {
	UserID    string    `json:"userId"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
	UserInfo  *User     `json:"userInfo,omitempty"`
}

// Auction is the assembled view of an auction listing
type Auction struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	StartingPrice float64    `json:"startingPrice"`
	CurrentPrice  float64    `json:"currentPrice"`
	CreatorID     string     `json:"creatorId"`
	BidderID      string     `json:"bidderId"`
	EndTime       *time.Time `json:"endTime,omitempty"`
	ImageURLs     []string   `json:"imageUrls"`
	IsAuctionEnd  bool       `json:"isAuctionEnd"`
	IsDeleted     bool       `json:"isDeleted"`
	CategoryID    string     `json:"categoryId"`
	BidHistory    []BidEntry `json:"bidHistory"`
	CreatedAt     time.Time  `json:"createdAt"`
	Creator       *User      `json:"creator,omitempty"`
	CurrentBidder *User      `json:"currentBidder,omitempty"`
}

// Comment is a reply under a group post
type Comment struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Text      string     `json:"text"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	User      *User      `json:"user,omitempty"`
}

// Post is a message published inside a group
type Post struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	ImageURL  string     `json:"imageUrl"`
	Likes     int        `json:"likes"`
	Comments  []Comment  `json:"comments"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UserID    string     `json:"userId"`
	GroupID   string     `json:"groupId"`
	User      *User      `json:"user,omitempty"`
}

// Group is the assembled view of a community group
type Group struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Members       []string  `json:"members"`
	AdminIDs      []string  `json:"adminIds"`
	MemberCount   int       `json:"memberCount"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	IsDeleted     bool      `json:"isDeleted"`
	Creator       *User     `json:"creator,omitempty"`
	MemberDetails []User    `json:"memberDetails"`
	AdminDetails  []User    `json:"adminDetails"`
	Posts         []Post    `json:"posts"`
}

// Report is a moderation report with the reported entity resolved
type Report struct {
	ID              string     `json:"id"`
	Type            string     `json:"type"`
	Reason          string     `json:"reason"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	ReporterID      string     `json:"reporterId"`
	ReportedID      string     `json:"reportedId"`
	AuctionID       string     `json:"auctionId"`
	CreatedAt       time.Time  `json:"createdAt"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`
	ResolvedBy      string     `json:"resolvedBy"`
	Reporter        *User      `json:"reporter,omitempty"`
	ReportedUser    *User      `json:"reportedUser,omitempty"`
	ReportedGroup   *Group     `json:"reportedGroup,omitempty"`
	ReportedAuction *Auction   `json:"reportedAuction,omitempty"`
}

// Report statuses
const (
	ReportPending  = "pending"
	ReportResolved = "resolved"
	ReportRejected = "rejected"
)

// DashboardStats summarizes the marketplace for the console landing page
type DashboardStats struct {
	TotalUsers     int     `json:"totalUsers"`
	NewUsers       int     `json:"newUsers"`
	BannedUsers    int     `json:"bannedUsers"`
	ActiveAuctions int     `json:"activeAuctions"`
	EndedAuctions  int     `json:"endedAuctions"`
	NewAuctions    int     `json:"newAuctions"`
	TotalRevenue   float64 `json:"totalRevenue"`
	CompletionRate float64 `json:"completionRate"`
	TotalGroups    int     `json:"totalGroups"`
	PendingReports int     `json:"pendingReports"`
	// RevenueIncrease is this month's revenue minus last month's
	RevenueIncrease   float64         `json:"revenueIncrease"`
	RecentActivity    []Activity      `json:"recentActivity"`
	PopularCategories []CategoryShare `json:"popularCategories"`
}

// Activity actions
const (
	ActivityCreate = "create"
	ActivityBid    = "bid"
	ActivityWin    = "win"
)

// Activity is one recently touched auction and the user behind the last change
type Activity struct {
	AuctionID string    `json:"auctionId"`
	Action    string    `json:"action"`
	Item      string    `json:"item"`
	UserID    string    `json:"userId,omitempty"`
	UserName  string    `json:"userName"`
	UserPhoto string    `json:"userPhoto,omitempty"`
	Date      time.Time `json:"date"`
}

// CategoryShare is a category's share of all live auctions, in whole percent
type CategoryShare struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}
