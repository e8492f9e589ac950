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

// ListGroups returns one page of live groups, newest first, with creators, members
// and admins resolved. GetGroup adds the posts.
func (s *AdminService) ListGroups(ctx context.Context, p ListParams) (listing.Page[models.Group], error) {
	opt, err := s.engines.Groups.ParseSort(p.Sort)
	if err != nil {
		return listing.Page[models.Group]{}, fmt.Errorf("service: %w", err)
	}

	asm := s.assembler()
	lister := listing.NewOffsetLister(
		func(ctx context.Context) ([]repository.Document, error) {
			return s.liveDocs(ctx, aggregation.CollGroups)
		},
		func(ctx context.Context, docs []repository.Document) []models.Group {
			cache := s.resolver.ResolveFor(ctx, docs, aggregation.GroupRules)
			return lo.Map(docs, func(d repository.Document, _ int) models.Group { return asm.Group(d, nil, cache) })
		},
		func(g models.Group) time.Time { return g.CreatedAt },
		func(g models.Group) string { return g.ID },
	)

	page, err := lister.List(ctx, s.pageSize(p.PageSize), p.Cursor)
	if err != nil {
		return listing.Page[models.Group]{}, fmt.Errorf("service: failed to list groups: %w", err)
	}
	page.Records = s.engines.Groups.Apply(page.Records, p.Search, opt)
	return page, nil
}

// GetGroup returns a group with its members, admins and posts. Post authors and
// commenters share one cache with the members, so each user is read once.
func (s *AdminService) GetGroup(ctx context.Context, id string) (models.Group, error) {
	doc, err := s.get(ctx, aggregation.CollGroups, id)
	if err != nil {
		return models.Group{}, err
	}

	posts, err := s.store.Query(ctx, aggregation.CollPosts, repository.Query{}.Where("groupId", repository.OpEqual, id))
	if err != nil {
		return models.Group{}, fmt.Errorf("service: failed to fetch posts of group %s: %w", id, err)
	}

	cache := s.resolver.ResolveFor(ctx, []repository.Document{doc}, aggregation.GroupRules)
	s.resolver.ResolveMore(ctx, cache, posts, aggregation.PostRules)
	return s.assembler().Group(doc, posts, cache), nil
}

// AddGroupMember adds an existing user to a group
func (s *AdminService) AddGroupMember(ctx context.Context, groupID, uid string) error {
	if _, err := s.get(ctx, aggregation.CollUsers, uid); err != nil {
		return err
	}
	return s.gateway.AddToArray(ctx, aggregation.CollGroups, groupID, "members", uid)
}

// RemoveGroupMember takes uid out of the group, including its admin list
func (s *AdminService) RemoveGroupMember(ctx context.Context, groupID, uid string, confirmed bool) error {
	if uid == "" {
		return fmt.Errorf("service: %w - empty user id", adminerrors.ErrInvalidInput)
	}
	if err := requireConfirmation(confirmed, "remove group member"); err != nil {
		return err
	}
	return s.gateway.UpdateFields(ctx, aggregation.CollGroups, groupID, map[string]any{
		"members":  repository.ArrayRemove(uid),
		"adminIds": repository.ArrayRemove(uid),
	})
}

// AddGroupAdmin grants an existing user admin rights in a group. Membership is
// left as it is.
func (s *AdminService) AddGroupAdmin(ctx context.Context, groupID, uid string) error {
	if _, err := s.get(ctx, aggregation.CollUsers, uid); err != nil {
		return err
	}
	return s.gateway.AddToArray(ctx, aggregation.CollGroups, groupID, "adminIds", uid)
}

// RemoveGroupAdmin revokes uid's admin rights; uid stays a member
func (s *AdminService) RemoveGroupAdmin(ctx context.Context, groupID, uid string) error {
	if uid == "" {
		return fmt.Errorf("service: %w - empty user id", adminerrors.ErrInvalidInput)
	}
	return s.gateway.RemoveFromArray(ctx, aggregation.CollGroups, groupID, "adminIds", uid)
}

// DeleteGroup soft-deletes a group
func (s *AdminService) DeleteGroup(ctx context.Context, id string, confirmed bool) error {
	if err := requireConfirmation(confirmed, "delete group"); err != nil {
		return err
	}
	return s.gateway.SoftDelete(ctx, aggregation.CollGroups, id)
}
