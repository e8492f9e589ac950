package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"marketplace-admin/internal/adminerrors"
)

func TestMongoFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		filters []Filter
		order   []Order
		cursor  []any
		want    bson.M
	}{
		{name: "empty", want: bson.M{}},
		{
			name:    "equality_and_array_contains",
			filters: []Filter{{Field: "status", Op: OpEqual, Value: "active"}, {Field: "members", Op: OpArrayContains, Value: "u1"}},
			want: bson.M{"$and": bson.A{
				bson.M{"status": bson.M{"$eq": "active"}},
				bson.M{"members": "u1"},
			}},
		},
		{
			name:    "not_equal_requires_field",
			filters: []Filter{{Field: "status", Op: OpNotEqual, Value: "ended"}},
			want: bson.M{"$and": bson.A{
				bson.M{"status": bson.M{"$exists": true, "$ne": "ended"}},
			}},
		},
		{
			name:   "keyset_cursor",
			order:  []Order{{Field: "createdAt", Desc: true}, {Field: FieldID}},
			cursor: []any{int64(5), "p1"},
			want: bson.M{"$and": bson.A{
				bson.M{"$or": bson.A{
					bson.M{"createdAt": bson.M{"$lt": int64(5)}},
					bson.M{"createdAt": int64(5), "_id": bson.M{"$gt": "p1"}},
				}},
			}},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, mongoFilter(tc.filters, tc.order, tc.cursor))
		})
	}
}

func TestMongoSortAndUpdate(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		bson.D{{Key: "price", Value: -1}, {Key: "_id", Value: 1}},
		mongoSort(withIDTieBreak([]Order{{Field: "price", Desc: true}})),
	)

	update := mongoUpdate(map[string]any{
		"isDeleted": true,
		"deletedAt": ServerTimestamp(),
		"members":   ArrayUnion("u2"),
		"likes":     ArrayRemove("u1"),
	})
	require.Equal(t, bson.M{
		"$set":         bson.M{"isDeleted": true},
		"$currentDate": bson.M{"deletedAt": true},
		"$addToSet":    bson.M{"members": bson.M{"$each": []any{"u2"}}},
		"$pull":        bson.M{"likes": bson.M{"$in": []any{"u1"}}},
	}, update)
}

func TestFromBSONDocument(t *testing.T) {
	t.Parallel()

	when := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	got := fromBSONDocument(bson.M{
		"_id":       "g1",
		"createdAt": bson.NewDateTimeFromTime(when),
		"members":   bson.A{"u1", "u2"},
		"meta":      bson.D{{Key: "photo", Value: "x.png"}},
	})

	require.Equal(t, "g1", got.ID)
	require.Equal(t, map[string]any{
		"createdAt": when,
		"members":   []any{"u1", "u2"},
		"meta":      map[string]any{"photo": "x.png"},
	}, got.Data)
}

// Runs against a live server only when MONGO_URL is set
func TestMongoRepo_Integration(t *testing.T) {
	url := os.Getenv("MONGO_URL")
	if url == "" {
		t.Skip("MONGO_URL not set")
	}

	ctx := context.Background()
	repo, client, err := NewMongoRepo(ctx, url, "admin_test_"+time.Now().Format("20060102150405"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = repo.db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	require.NoError(t, repo.Put(ctx, "groups", doc("g1", map[string]any{"name": "Cats", "members": []any{"u1"}})))
	require.NoError(t, repo.UpdateFields(ctx, "groups", "g1", map[string]any{"members": ArrayUnion("u2"), "deletedAt": ServerTimestamp()}))

	got, err := repo.GetByID(ctx, "groups", "g1")
	require.NoError(t, err)
	require.Equal(t, []any{"u1", "u2"}, got.Data["members"])
	require.IsType(t, time.Time{}, got.Data["deletedAt"])

	docs, err := repo.Query(ctx, "groups", Query{}.Where("members", OpArrayContains, "u2"))
	require.NoError(t, err)
	require.Len(t, docs, 1)

	require.NoError(t, repo.Delete(ctx, "groups", "g1"))
	require.ErrorIs(t, repo.Delete(ctx, "groups", "g1"), adminerrors.ErrNotFound)
}
