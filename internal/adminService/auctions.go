package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"marketplace-admin/internal/adminerrors"
	"marketplace-admin/internal/aggregation"
	"marketplace-admin/internal/listing"
	"marketplace-admin/internal/models"
	"marketplace-admin/internal/repository"
)

// Auction status filters
const (
	AuctionsAll    = "all"
	AuctionsActive = "active"
	AuctionsEnded  = "ended"
)

// auctionEnded reports whether bidding is closed at now. An auction without an end
// time stays open until it is closed explicitly.
func auctionEnded(a models.Auction, now time.Time) bool {
	if a.IsAuctionEnd {
		return true
	}
	return a.EndTime != nil && !a.EndTime.After(now)
}

func matchesAuctionStatus(status string) (func(models.Auction, time.Time) bool, error) {
	switch status {
	case "", AuctionsAll:
		return func(models.Auction, time.Time) bool { return true }, nil
	case AuctionsActive:
		return func(a models.Auction, now time.Time) bool { return !auctionEnded(a, now) }, nil
	case AuctionsEnded:
		return auctionEnded, nil
	}
	return nil, fmt.Errorf("service: %w - unknown auction status %q", adminerrors.ErrInvalidInput, status)
}

// ListAuctions returns one page of live auctions in the given status, newest first
func (s *AdminService) ListAuctions(ctx context.Context, status string, p ListParams) (listing.Page[models.Auction], error) {
	match, err := matchesAuctionStatus(status)
	if err != nil {
		return listing.Page[models.Auction]{}, err
	}
	opt, err := s.engines.Auctions.ParseSort(p.Sort)
	if err != nil {
		return listing.Page[models.Auction]{}, fmt.Errorf("service: %w", err)
	}

	asm := s.assembler()
	lister := listing.NewOffsetLister(
		func(ctx context.Context) ([]repository.Document, error) {
			docs, err := s.liveDocs(ctx, aggregation.CollAuctions)
			if err != nil {
				return nil, err
			}
			// status is judged on the normalized record, which needs no references
			empty := aggregation.NewEntityCache()
			return lo.Filter(docs, func(d repository.Document, _ int) bool {
				return match(asm.Auction(d, empty), asm.AsOf())
			}), nil
		},
		func(ctx context.Context, docs []repository.Document) []models.Auction {
			cache := s.resolver.ResolveFor(ctx, docs, aggregation.AuctionRules)
			return lo.Map(docs, func(d repository.Document, _ int) models.Auction { return asm.Auction(d, cache) })
		},
		func(a models.Auction) time.Time { return a.CreatedAt },
		func(a models.Auction) string { return a.ID },
	)

	page, err := lister.List(ctx, s.pageSize(p.PageSize), p.Cursor)
	if err != nil {
		return listing.Page[models.Auction]{}, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	page.Records = s.engines.Auctions.Apply(page.Records, p.Search, opt)
	return page, nil
}

// AuctionFeed pages through auctions by creation time with an opaque token. Both
// created_at and createdAt spellings, in any stored timestamp encoding, order
// together. Soft-deleted auctions are dropped from each page, so a page can hold
// fewer than pageSize records.
func (s *AdminService) AuctionFeed(ctx context.Context, pageSize int, token string) (listing.KeysetPage[models.Auction], error) {
	asm := s.assembler()
	lister := listing.NewKeysetLister(s.store, aggregation.CollAuctions, "createdAt",
		func(ctx context.Context, docs []repository.Document) []models.Auction {
			docs = lo.Reject(docs, func(d repository.Document, _ int) bool { return isDeleted(d) })
			cache := s.resolver.ResolveFor(ctx, docs, aggregation.AuctionRules)
			return lo.Map(docs, func(d repository.Document, _ int) models.Auction { return asm.Auction(d, cache) })
		},
	).WithSortKey(auctionCreatedAt)

	page, err := lister.List(ctx, s.pageSize(pageSize), token)
	if err != nil {
		return listing.KeysetPage[models.Auction]{}, fmt.Errorf("service: failed to read auction feed: %w", err)
	}
	return page, nil
}

// auctionCreatedAt is the feed's sort key; auctions without a readable creation
// time sort last
func auctionCreatedAt(d repository.Document) any {
	if t, ok := aggregation.TimeOf(d.Data, "created_at", "createdAt"); ok {
		return t
	}
	return nil
}

// GetAuction returns one auction with creator, bidder and every bidder profile resolved
func (s *AdminService) GetAuction(ctx context.Context, id string) (models.Auction, error) {
	doc, err := s.get(ctx, aggregation.CollAuctions, id)
	if err != nil {
		return models.Auction{}, err
	}
	cache := s.resolver.ResolveFor(ctx, []repository.Document{doc}, aggregation.AuctionRules)
	return s.assembler().Auction(doc, cache), nil
}

// DeleteAuction soft-deletes an auction
func (s *AdminService) DeleteAuction(ctx context.Context, id string, confirmed bool) error {
	if err := requireConfirmation(confirmed, "delete auction"); err != nil {
		return err
	}
	return s.gateway.SoftDelete(ctx, aggregation.CollAuctions, id)
}
