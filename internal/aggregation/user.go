package aggregation

import (
	"marketplace-admin/internal/models"
	"marketplace-admin/internal/repository"
)

// photoAliases lists every field name writers have used for the avatar, newest first
var photoAliases = []string{"photoURL", "profileImageUrl", "profilePic", "photo", "picture", "avatar"}

// User assembles a user with follower and following references spliced in.
// Unresolved followers keep their ID without userInfo.
func (a *Assembler) User(doc repository.Document, cache *EntityCache) models.User {
	u := a.userProfile(doc)
	u.Followers = a.userRefs(doc.Data, "followers", cache)
	u.Following = a.userRefs(doc.Data, "following", cache)
	if u.FollowersCount == 0 {
		u.FollowersCount = len(u.Followers)
	}
	if u.FollowingCount == 0 {
		u.FollowingCount = len(u.Following)
	}
	return u
}

// userProfile is the user without reference lists, used wherever a user is spliced
// into another record
func (a *Assembler) userProfile(doc repository.Document) models.User {
	d := doc.Data
	return models.User{
		UID:            doc.ID,
		Email:          str(d, "email"),
		DisplayName:    str(d, "displayName", "display_name", "username"),
		PhotoURL:       firstNonEmpty(d, photoAliases...),
		Username:       str(d, "username", "userName"),
		FirstName:      str(d, "firstName", "first_name"),
		LastName:       str(d, "lastName", "last_name"),
		Bio:            str(d, "bio"),
		Phone:          str(d, "phone", "phoneNumber"),
		Location:       str(d, "location"),
		Interests:      strs(d, "interests"),
		IsActive:       boolean(d, true, "isActive", "is_active"),
		IsBanned:       boolean(d, false, "isBanned", "is_banned"),
		IsDeleted:      boolean(d, false, "isDeleted", "is_deleted"),
		CreatedAt:      a.requiredTime(d, "createdAt", "created_at"),
		LastActive:     optionalTime(d, "lastActive", "last_active"),
		BanStartDate:   optionalTime(d, "banStartDate", "ban_start_date"),
		BanEndDate:     optionalTime(d, "banEndDate", "ban_end_date"),
		FollowersCount: integer(d, "followersCount", "followers_count"),
		FollowingCount: integer(d, "followingCount", "following_count"),
		Followers:      []models.UserRef{},
		Following:      []models.UserRef{},
	}
}

func (a *Assembler) userRefs(data map[string]any, field string, cache *EntityCache) []models.UserRef {
	ids := strs(data, field)
	refs := make([]models.UserRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, models.UserRef{UserID: id, UserInfo: a.resolveUser(cache, id)})
	}
	return refs
}

// resolveUser returns nil when the reference is empty or was not resolved
func (a *Assembler) resolveUser(cache *EntityCache, id string) *models.User {
	doc, ok := cache.Get(CollUsers, id)
	if !ok {
		return nil
	}
	u := a.userProfile(doc)
	return &u
}
