package aggregation

import (
	"fmt"

	"marketplace-admin/internal/adminerrors"
	"marketplace-admin/internal/models"
	"marketplace-admin/internal/repository"
)

// ReportKind is the subject of a moderation report
type ReportKind string

const (
	ReportUser    ReportKind = "user"
	ReportGroup   ReportKind = "group"
	ReportAuction ReportKind = "auction"
)

// ParseReportKind validates a kind coming from the outside
func ParseReportKind(s string) (ReportKind, error) {
	switch k := ReportKind(s); k {
	case ReportUser, ReportGroup, ReportAuction:
		return k, nil
	}
	return "", fmt.Errorf("%w - unknown report kind %q", adminerrors.ErrInvalidInput, s)
}

// Collection is where reports of this kind are stored
func (k ReportKind) Collection() string {
	switch k {
	case ReportGroup:
		return CollGroupReports
	case ReportAuction:
		return CollAuctionReports
	default:
		return CollUserReports
	}
}

// Rules returns the reference rules for reports of this kind
func (k ReportKind) Rules() []ReferenceRule {
	rules := []ReferenceRule{
		{Path: "reporterId", Collection: CollUsers},
		{Path: "reporter_id", Collection: CollUsers},
	}
	switch k {
	case ReportUser:
		rules = append(rules,
			ReferenceRule{Path: "reportedId", Collection: CollUsers},
			ReferenceRule{Path: "reported_id", Collection: CollUsers},
			ReferenceRule{Path: "reportedUserId", Collection: CollUsers},
		)
	case ReportGroup:
		rules = append(rules,
			ReferenceRule{Path: "reportedId", Collection: CollGroups},
			ReferenceRule{Path: "reported_id", Collection: CollGroups},
			ReferenceRule{Path: "groupId", Collection: CollGroups},
		)
	case ReportAuction:
		// reportedId names the seller, the auction travels separately
		rules = append(rules,
			ReferenceRule{Path: "reportedId", Collection: CollUsers},
			ReferenceRule{Path: "reported_id", Collection: CollUsers},
			ReferenceRule{Path: "auctionId", Collection: CollAuctions},
			ReferenceRule{Path: "auction_id", Collection: CollAuctions},
		)
	}
	return rules
}

// NestedRules returns the rules for references of the reported entity itself
func (k ReportKind) NestedRules() (string, []ReferenceRule) {
	switch k {
	case ReportGroup:
		return CollGroups, GroupRules
	case ReportAuction:
		return CollAuctions, AuctionRules
	}
	return "", nil
}

// Report assembles a report of the given kind. A reported group or auction is
// assembled from the same cache, so its own references resolve when they were
// fetched in a second pass.
func (a *Assembler) Report(kind ReportKind, doc repository.Document, cache *EntityCache) models.Report {
	d := doc.Data

	r := models.Report{
		ID:          doc.ID,
		Type:        str(d, "type"),
		Reason:      str(d, "reason"),
		Description: str(d, "description"),
		Status:      str(d, "status"),
		ReporterID:  str(d, "reporterId", "reporter_id"),
		AuctionID:   str(d, "auctionId", "auction_id"),
		CreatedAt:   a.requiredTime(d, "createdAt", "created_at"),
		ResolvedAt:  optionalTime(d, "resolvedAt", "resolved_at"),
		ResolvedBy:  str(d, "resolvedBy", "resolved_by"),
	}
	if r.Type == "" {
		r.Type = string(kind)
	}
	if r.Status == "" {
		r.Status = models.ReportPending
	}
	r.Reporter = a.resolveUser(cache, r.ReporterID)

	switch kind {
	case ReportUser:
		r.ReportedID = str(d, "reportedId", "reported_id", "reportedUserId")
		r.ReportedUser = a.resolveUser(cache, r.ReportedID)
	case ReportGroup:
		r.ReportedID = str(d, "reportedId", "reported_id", "groupId")
		if g, ok := cache.Get(CollGroups, r.ReportedID); ok {
			group := a.Group(g, nil, cache)
			r.ReportedGroup = &group
		}
	case ReportAuction:
		r.ReportedID = str(d, "reportedId", "reported_id")
		r.ReportedUser = a.resolveUser(cache, r.ReportedID)
		if au, ok := cache.Get(CollAuctions, r.AuctionID); ok {
			auction := a.Auction(au, cache)
			r.ReportedAuction = &auction
		}
	}
	return r
}
