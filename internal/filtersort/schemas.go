package filtersort

import (
	"time"

	"golang.org/x/text/language"

	"marketplace-admin/internal/models"
)

func creatorName(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.DisplayName
}

// AuctionSchema searches name, description and creator name. "date" is the end time,
// "price" the starting price.
var AuctionSchema = Schema[models.Auction]{
	Searchable: []func(models.Auction) string{
		func(a models.Auction) string { return a.Name },
		func(a models.Auction) string { return a.Description },
		func(a models.Auction) string { return creatorName(a.Creator) },
	},
	Sorts: map[string]SortKey[models.Auction]{
		"name":  {Kind: KindString, String: func(a models.Auction) string { return a.Name }},
		"price": {Kind: KindNumber, Number: func(a models.Auction) float64 { return a.StartingPrice }},
		"date": {Kind: KindTime, Time: func(a models.Auction) time.Time {
			if a.EndTime == nil {
				return time.Time{}
			}
			return *a.EndTime
		}},
		"created": {Kind: KindTime, Time: func(a models.Auction) time.Time { return a.CreatedAt }},
	},
}

var UserSchema = Schema[models.User]{
	Searchable: []func(models.User) string{
		func(u models.User) string { return u.DisplayName },
		func(u models.User) string { return u.Email },
		func(u models.User) string { return u.Username },
	},
	Sorts: map[string]SortKey[models.User]{
		"name":      {Kind: KindString, String: func(u models.User) string { return u.DisplayName }},
		"email":     {Kind: KindString, String: func(u models.User) string { return u.Email }},
		"created":   {Kind: KindTime, Time: func(u models.User) time.Time { return u.CreatedAt }},
		"followers": {Kind: KindNumber, Number: func(u models.User) float64 { return float64(u.FollowersCount) }},
	},
}

var GroupSchema = Schema[models.Group]{
	Searchable: []func(models.Group) string{
		func(g models.Group) string { return g.Name },
		func(g models.Group) string { return g.Description },
		func(g models.Group) string { return creatorName(g.Creator) },
	},
	Sorts: map[string]SortKey[models.Group]{
		"name":    {Kind: KindString, String: func(g models.Group) string { return g.Name }},
		"members": {Kind: KindNumber, Number: func(g models.Group) float64 { return float64(g.MemberCount) }},
		"created": {Kind: KindTime, Time: func(g models.Group) time.Time { return g.CreatedAt }},
	},
}

var ReportSchema = Schema[models.Report]{
	Searchable: []func(models.Report) string{
		func(r models.Report) string { return r.Reason },
		func(r models.Report) string { return r.Description },
		func(r models.Report) string { return creatorName(r.Reporter) },
	},
	Sorts: map[string]SortKey[models.Report]{
		"created": {Kind: KindTime, Time: func(r models.Report) time.Time { return r.CreatedAt }},
		"status":  {Kind: KindString, String: func(r models.Report) string { return r.Status }},
		"reason":  {Kind: KindString, String: func(r models.Report) string { return r.Reason }},
	},
}

// Engines bundles one engine per view-model, all sharing a collation locale
type Engines struct {
	Auctions *Engine[models.Auction]
	Users    *Engine[models.User]
	Groups   *Engine[models.Group]
	Reports  *Engine[models.Report]
}

// NewEngines parses locale (BCP 47) and builds every engine; an invalid locale
// falls back to undetermined collation
func NewEngines(locale string) *Engines {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &Engines{
		Auctions: NewEngine(AuctionSchema, tag),
		Users:    NewEngine(UserSchema, tag),
		Groups:   NewEngine(GroupSchema, tag),
		Reports:  NewEngine(ReportSchema, tag),
	}
}
