package admin

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"

	"marketplace-admin/internal/adminerrors"
	"marketplace-admin/internal/aggregation"
	"marketplace-admin/internal/listing"
	"marketplace-admin/internal/models"
	"marketplace-admin/internal/repository"
)

// ListUsers returns one page of live accounts, newest first. Follower lists carry
// IDs only; GetUser resolves them.
func (s *AdminService) ListUsers(ctx context.Context, p ListParams) (listing.Page[models.User], error) {
	opt, err := s.engines.Users.ParseSort(p.Sort)
	if err != nil {
		return listing.Page[models.User]{}, fmt.Errorf("service: %w", err)
	}

	asm := s.assembler()
	lister := listing.NewOffsetLister(
		func(ctx context.Context) ([]repository.Document, error) {
			return s.liveDocs(ctx, aggregation.CollUsers)
		},
		func(ctx context.Context, docs []repository.Document) []models.User {
			// listed users double as follower profiles, so only outsiders are fetched
			cache := aggregation.NewEntityCache()
			for _, d := range docs {
				cache.Put(aggregation.CollUsers, d)
			}
			s.resolver.ResolveMore(ctx, cache, docs, aggregation.UserRules)
			return lo.Map(docs, func(d repository.Document, _ int) models.User { return asm.User(d, cache) })
		},
		func(u models.User) time.Time { return u.CreatedAt },
		func(u models.User) string { return u.UID },
	)

	page, err := lister.List(ctx, s.pageSize(p.PageSize), p.Cursor)
	if err != nil {
		return listing.Page[models.User]{}, fmt.Errorf("service: failed to list users: %w", err)
	}
	page.Records = s.engines.Users.Apply(page.Records, p.Search, opt)
	return page, nil
}

// GetUser returns one account with followers and following resolved
func (s *AdminService) GetUser(ctx context.Context, uid string) (models.User, error) {
	doc, err := s.get(ctx, aggregation.CollUsers, uid)
	if err != nil {
		return models.User{}, err
	}
	cache := s.resolver.ResolveFor(ctx, []repository.Document{doc}, aggregation.UserRules)
	return s.assembler().User(doc, cache), nil
}

// GetUserAuctions returns the auctions created by uid, newest first
func (s *AdminService) GetUserAuctions(ctx context.Context, uid string) ([]models.Auction, error) {
	if uid == "" {
		return nil, fmt.Errorf("service: %w - empty user id", adminerrors.ErrInvalidInput)
	}

	// older documents name the creator creator_id, newer ones createdBy
	var docs []repository.Document
	for _, field := range []string{"creator_id", "createdBy"} {
		found, err := s.store.Query(ctx, aggregation.CollAuctions, repository.Query{}.Where(field, repository.OpEqual, uid))
		if err != nil {
			return nil, fmt.Errorf("service: failed to query auctions of %s: %w", uid, err)
		}
		docs = append(docs, found...)
	}
	docs = lo.UniqBy(docs, func(d repository.Document) string { return d.ID })

	asm := s.assembler()
	cache := s.resolver.ResolveFor(ctx, docs, aggregation.AuctionRules)
	auctions := lo.Map(docs, func(d repository.Document, _ int) models.Auction { return asm.Auction(d, cache) })
	sort.SliceStable(auctions, func(i, j int) bool { return auctions[i].CreatedAt.After(auctions[j].CreatedAt) })
	return auctions, nil
}

// GetUserGroups returns the groups uid is a member of
func (s *AdminService) GetUserGroups(ctx context.Context, uid string) ([]models.Group, error) {
	if uid == "" {
		return nil, fmt.Errorf("service: %w - empty user id", adminerrors.ErrInvalidInput)
	}

	docs, err := s.store.Query(ctx, aggregation.CollGroups, repository.Query{}.Where("members", repository.OpArrayContains, uid))
	if err != nil {
		return nil, fmt.Errorf("service: failed to query groups of %s: %w", uid, err)
	}

	asm := s.assembler()
	cache := s.resolver.ResolveFor(ctx, docs, aggregation.GroupRules)
	return lo.Map(docs, func(d repository.Document, _ int) models.Group { return asm.Group(d, nil, cache) }), nil
}

// SetUserBanned bans or unbans an account. A ban starts now and runs until until,
// or indefinitely when until is nil.
func (s *AdminService) SetUserBanned(ctx context.Context, uid string, banned bool, until *time.Time) error {
	fields := map[string]any{"isBanned": banned}
	if banned {
		fields["banStartDate"] = repository.ServerTimestamp()
		fields["banEndDate"] = nil
		if until != nil {
			if !until.After(s.now()) {
				return fmt.Errorf("service: %w - ban end %s is not in the future", adminerrors.ErrInvalidInput, until.Format(time.RFC3339))
			}
			fields["banEndDate"] = until.UTC()
		}
	} else {
		fields["banStartDate"] = nil
		fields["banEndDate"] = nil
	}
	return s.gateway.UpdateFields(ctx, aggregation.CollUsers, uid, fields)
}

// SetUserActive toggles whether the account can sign in
func (s *AdminService) SetUserActive(ctx context.Context, uid string, active bool) error {
	return s.gateway.UpdateFields(ctx, aggregation.CollUsers, uid, map[string]any{"isActive": active})
}

// DeleteUser soft-deletes an account
func (s *AdminService) DeleteUser(ctx context.Context, uid string, confirmed bool) error {
	if err := requireConfirmation(confirmed, "delete user"); err != nil {
		return err
	}
	return s.gateway.SoftDelete(ctx, aggregation.CollUsers, uid)
}
