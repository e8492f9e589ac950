package aggregation

import "time"

// Collection names of the marketplace document store
const (
	CollUsers          = "users"
	CollAuctions       = "auctions"
	CollGroups         = "groups"
	CollPosts          = "posts"
	CollAdmins         = "admin"
	CollUserReports    = "userReports"
	CollGroupReports   = "groupReports"
	CollAuctionReports = "auctionReports"
	CollCategories     = "categories"
)

// Reference rules per primary collection. Several rules may point at the same
// target to cover historical field names.
var (
	UserRules = []ReferenceRule{
		{Path: "followers[]", Collection: CollUsers},
		{Path: "following[]", Collection: CollUsers},
	}
	AuctionRules = []ReferenceRule{
		{Path: "creator_id", Collection: CollUsers},
		{Path: "creatorId", Collection: CollUsers},
		{Path: "createdBy", Collection: CollUsers},
		{Path: "bidder_id", Collection: CollUsers},
		{Path: "bidderId", Collection: CollUsers},
		{Path: "bid_history[].user_id", Collection: CollUsers},
		{Path: "bidHistory[].userId", Collection: CollUsers},
	}
	GroupRules = []ReferenceRule{
		{Path: "createdBy", Collection: CollUsers},
		{Path: "created_by", Collection: CollUsers},
		{Path: "members[]", Collection: CollUsers},
		{Path: "adminIds[]", Collection: CollUsers},
		{Path: "admin_ids[]", Collection: CollUsers},
	}
	PostRules = []ReferenceRule{
		{Path: "userId", Collection: CollUsers},
		{Path: "user_id", Collection: CollUsers},
		{Path: "comments[].userId", Collection: CollUsers},
		{Path: "comments[].user_id", Collection: CollUsers},
	}
)

// Assembler turns raw documents plus resolved references into view-models.
// asOf replaces unparseable creation timestamps, so assembling the same input
// with the same Assembler always yields the same output.
type Assembler struct {
	asOf time.Time
}

// NewAssembler creates an Assembler pinned to asOf
func NewAssembler(asOf time.Time) *Assembler {
	return &Assembler{asOf: asOf.UTC()}
}

// AsOf is the reference time of this assembler
func (a *Assembler) AsOf() time.Time {
	return a.asOf
}
