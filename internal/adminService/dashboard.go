package admin

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cast"
	"golang.org/x/sync/errgroup"

	"marketplace-admin/internal/aggregation"
	"marketplace-admin/internal/models"
	"marketplace-admin/internal/repository"
)

const (
	newUserWindow    = 30 * 24 * time.Hour
	newAuctionWindow = 7 * 24 * time.Hour

	recentActivityLimit  = 5
	popularCategoryLimit = 5
)

// DashboardStats counts live users, auctions and groups and pending reports.
// Revenue is the final price of ended auctions that received a bid; the completion
// rate is the rounded percentage of auctions that have ended. RevenueIncrease
// compares the revenue of auctions that ended this calendar month (UTC) with the
// previous one.
func (s *AdminService) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var (
		users, auctions, groups, categories []repository.Document
		reports                             = make([][]repository.Document, 3)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = s.liveDocs(gctx, aggregation.CollUsers)
		return err
	})
	g.Go(func() (err error) {
		auctions, err = s.liveDocs(gctx, aggregation.CollAuctions)
		return err
	})
	g.Go(func() (err error) {
		groups, err = s.liveDocs(gctx, aggregation.CollGroups)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.store.GetAll(gctx, aggregation.CollCategories)
		return err
	})
	for i, kind := range []aggregation.ReportKind{aggregation.ReportUser, aggregation.ReportGroup, aggregation.ReportAuction} {
		i, kind := i, kind
		g.Go(func() (err error) {
			reports[i], err = s.store.GetAll(gctx, kind.Collection())
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, err
	}

	asm := s.assembler()
	now := asm.AsOf()
	empty := aggregation.NewEntityCache()
	var stats models.DashboardStats

	for _, d := range users {
		u := asm.User(d, empty)
		stats.TotalUsers++
		// a missing creation time is not evidence of a new account
		if created, ok := aggregation.TimeOf(d.Data, "createdAt", "created_at"); ok && now.Sub(created) <= newUserWindow {
			stats.NewUsers++
		}
		if u.IsBanned {
			stats.BannedUsers++
		}
	}

	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonth := thisMonth.AddDate(0, -1, 0)
	assembled := make([]models.Auction, 0, len(auctions))
	for _, d := range auctions {
		a := asm.Auction(d, empty)
		assembled = append(assembled, a)
		if now.Sub(a.CreatedAt) <= newAuctionWindow {
			stats.NewAuctions++
		}
		if !auctionEnded(a, now) {
			stats.ActiveAuctions++
			continue
		}
		stats.EndedAuctions++
		if len(a.BidHistory) == 0 && a.BidderID == "" {
			continue
		}
		stats.TotalRevenue += a.CurrentPrice
		if a.EndTime == nil {
			continue
		}
		switch end := *a.EndTime; {
		case !end.Before(thisMonth) && !end.After(now):
			stats.RevenueIncrease += a.CurrentPrice
		case !end.Before(lastMonth) && end.Before(thisMonth):
			stats.RevenueIncrease -= a.CurrentPrice
		}
	}
	if len(auctions) > 0 {
		stats.CompletionRate = math.Round(float64(stats.EndedAuctions) / float64(len(auctions)) * 100)
	}

	stats.TotalGroups = len(groups)
	stats.PendingReports = lo.SumBy(reports, func(docs []repository.Document) int {
		return lo.CountBy(docs, func(d repository.Document) bool { return reportStatus(d) == models.ReportPending })
	})
	stats.PopularCategories = popularCategories(categories, assembled)
	stats.RecentActivity = s.recentActivity(ctx, auctions, assembled)
	return stats, nil
}

// recentActivity lists the auctions with the latest updatedAt, newest first.
// The actor is the current bidder, or the creator when nobody has bid; an ended
// auction with a bidder is that bidder's win.
func (s *AdminService) recentActivity(ctx context.Context, docs []repository.Document, auctions []models.Auction) []models.Activity {
	type touched struct {
		auction models.Auction
		at      time.Time
	}
	var recent []touched
	for i, d := range docs {
		if at, ok := aggregation.TimeOf(d.Data, "updatedAt", "updated_at"); ok {
			recent = append(recent, touched{auction: auctions[i], at: at})
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		if !recent[i].at.Equal(recent[j].at) {
			return recent[i].at.After(recent[j].at)
		}
		return recent[i].auction.ID < recent[j].auction.ID
	})
	if len(recent) > recentActivityLimit {
		recent = recent[:recentActivityLimit]
	}

	actors := aggregation.IDSet{}
	for _, r := range recent {
		actors.Add(lo.CoalesceOrEmpty(r.auction.BidderID, r.auction.CreatorID))
	}
	cache := s.resolver.Resolve(ctx, map[string]aggregation.IDSet{aggregation.CollUsers: actors})
	asm := s.assembler()

	activity := make([]models.Activity, 0, len(recent))
	for _, r := range recent {
		a := r.auction
		entry := models.Activity{
			AuctionID: a.ID,
			Action:    models.ActivityCreate,
			Item:      a.Name,
			UserID:    lo.CoalesceOrEmpty(a.BidderID, a.CreatorID),
			UserName:  "Unknown User",
			Date:      r.at,
		}
		if a.BidderID != "" {
			entry.Action = models.ActivityBid
			if auctionEnded(a, asm.AsOf()) {
				entry.Action = models.ActivityWin
			}
		}
		if doc, ok := cache.Get(aggregation.CollUsers, entry.UserID); ok {
			u := asm.User(doc, aggregation.NewEntityCache())
			entry.UserName = lo.CoalesceOrEmpty(u.DisplayName, u.Email, entry.UserName)
			entry.UserPhoto = u.PhotoURL
		}
		activity = append(activity, entry)
	}
	return activity
}

// popularCategories ranks known categories by live auction count. Auctions in
// unknown categories count toward no share and toward no total.
func popularCategories(categories []repository.Document, auctions []models.Auction) []models.CategoryShare {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = lo.CoalesceOrEmpty(cast.ToString(c.Data["name"]), c.ID)
	}

	counts := lo.CountValuesBy(lo.Filter(auctions, func(a models.Auction, _ int) bool {
		_, known := names[a.CategoryID]
		return known
	}), func(a models.Auction) string { return a.CategoryID })
	total := lo.Sum(lo.Values(counts))

	shares := make([]models.CategoryShare, 0, len(counts))
	for id, n := range counts {
		shares = append(shares, models.CategoryShare{
			ID:         id,
			Name:       names[id],
			Count:      n,
			Percentage: math.Round(float64(n) / float64(total) * 100),
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].ID < shares[j].ID
	})
	if len(shares) > popularCategoryLimit {
		shares = shares[:popularCategoryLimit]
	}
	return shares
}
