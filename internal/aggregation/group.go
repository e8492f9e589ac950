package aggregation

import (
	"sort"

	"marketplace-admin/internal/models"
	"marketplace-admin/internal/repository"
)

var postImageAliases = []string{"imageUrl", "image", "imageUrls", "images", "photoURL", "photo"}

// Group assembles a group with its creator, member and admin profiles and posts.
// posts are raw post documents; their authors must already be in cache.
// Members that could not be resolved are left out of the detail lists but stay in Members.
func (a *Assembler) Group(doc repository.Document, posts []repository.Document, cache *EntityCache) models.Group {
	d := doc.Data

	g := models.Group{
		ID:          doc.ID,
		Name:        str(d, "name"),
		Description: str(d, "description"),
		Members:     strs(d, "members"),
		AdminIDs:    strs(d, "adminIds", "admin_ids"),
		CreatedAt:   a.requiredTime(d, "createdAt", "created_at"),
		CreatedBy:   str(d, "createdBy", "created_by"),
		IsDeleted:   boolean(d, false, "isDeleted", "is_deleted"),
	}
	g.MemberCount = len(g.Members)
	g.Creator = a.resolveUser(cache, g.CreatedBy)
	g.MemberDetails = a.resolveUsers(cache, g.Members)
	g.AdminDetails = a.resolveUsers(cache, g.AdminIDs)

	g.Posts = make([]models.Post, 0, len(posts))
	for _, p := range posts {
		g.Posts = append(g.Posts, a.Post(p, cache))
	}
	sort.SliceStable(g.Posts, func(i, j int) bool {
		return postTime(g.Posts[i]) > postTime(g.Posts[j])
	})
	return g
}

// Post assembles a group post with its author and commenters
func (a *Assembler) Post(doc repository.Document, cache *EntityCache) models.Post {
	d := doc.Data

	p := models.Post{
		ID:        doc.ID,
		Content:   str(d, "content", "text"),
		ImageURL:  firstNonEmpty(d, postImageAliases...),
		Likes:     likes(d),
		CreatedAt: optionalTime(d, "createdAt", "created_at"),
		UserID:    str(d, "userId", "user_id"),
		GroupID:   str(d, "groupId", "group_id"),
	}
	p.User = a.resolveUser(cache, p.UserID)

	raw := maps(d, "comments")
	p.Comments = make([]models.Comment, 0, len(raw))
	for _, c := range raw {
		userID := str(c, "userId", "user_id")
		p.Comments = append(p.Comments, models.Comment{
			ID:        str(c, "id"),
			UserID:    userID,
			Text:      str(c, "text", "content"),
			CreatedAt: optionalTime(c, "createdAt", "created_at"),
			User:      a.resolveUser(cache, userID),
		})
	}
	return p
}

func (a *Assembler) resolveUsers(cache *EntityCache, ids []string) []models.User {
	out := make([]models.User, 0, len(ids))
	for _, id := range ids {
		if u := a.resolveUser(cache, id); u != nil {
			out = append(out, *u)
		}
	}
	return out
}

// likes is stored either as a counter or as the list of users who liked the post
func likes(data map[string]any) int {
	v, ok := lookup(data, "likes", "likeCount")
	if !ok {
		return 0
	}
	if items := asSlice(v); items != nil {
		return len(items)
	}
	return integer(data, "likes", "likeCount")
}

// posts without a timestamp sort last
func postTime(p models.Post) int64 {
	if p.CreatedAt == nil {
		return -1 << 62
	}
	return p.CreatedAt.UnixNano()
}
