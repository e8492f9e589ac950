package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	admin "marketplace-admin/internal/adminService"
	"marketplace-admin/internal/repository"
	"marketplace-admin/internal/server"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const adminID = "adm"

const day = 24 * time.Hour

// backends lists every store the API is exercised against
var backends = []struct {
	name  string
	store func(t *testing.T) repository.DocumentStore
}{
	{"memory", func(*testing.T) repository.DocumentStore { return repository.NewMemoryRepo() }},
	{"redis", newMiniRedisStore},
}

func newMiniRedisStore(t *testing.T) repository.DocumentStore {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return repository.NewRedisRepo(client, repository.WithRedisPrefix("it:"))
}

// SetupTestRouter seeds store with a small marketplace and wires the full HTTP stack on top.
//
//	users     u1 (40d, followers u2 + a dangling id), u2 (10d), u3 (2d, banned), u4 (soft-deleted)
//	auctions  a1 ended with a bid by u2, a2 active, a3 closed by flag, a4 soft-deleted
//	groups    g1 {u1,u2} with post p1, g2 {u2}
//	reports   r1 pending + r2 resolved (user), r3 pending (group), r4 pending (auction)
func SetupTestRouter(t *testing.T, store repository.DocumentStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	now := time.Now().UTC()
	ago := func(d time.Duration) time.Time { return now.Add(-d) }
	ctx := context.Background()
	put := func(coll, id string, data map[string]any) {
		require.NoError(t, store.Put(ctx, coll, repository.Document{ID: id, Data: data}))
	}

	put("admin", adminID, map[string]any{"adminMail": "ops@example.com"})

	put("users", "u1", map[string]any{"displayName": "Ann", "email": "ann@example.com", "createdAt": ago(40 * day), "followers": []any{"u2", "gone"}})
	put("users", "u2", map[string]any{"displayName": "Bob", "email": "bob@example.com", "createdAt": ago(10 * day)})
	put("users", "u3", map[string]any{"displayName": "Cid", "email": "cid@example.com", "createdAt": ago(2 * day), "isBanned": true})
	put("users", "u4", map[string]any{"displayName": "Dee", "createdAt": ago(1 * day), "isDeleted": true})

	put("auctions", "a1", map[string]any{
		"name": "Lamp", "creator_id": "u1", "bidder_id": "u2", "starting_price": 10, "categoryId": "c1",
		"createdAt": ago(20 * day), "end_time": ago(1 * day),
		"bid_history": []any{map[string]any{"user_id": "u2", "amount": 40, "timestamp": ago(2 * day)}},
	})
	put("auctions", "a2", map[string]any{
		"name": "Chair", "createdBy": "u1", "starting_price": 25, "categoryId": "c2",
		"createdAt": ago(3 * day), "end_time": now.Add(2 * day), "updatedAt": ago(1 * time.Hour),
	})
	put("auctions", "a3", map[string]any{"name": "Table", "creator_id": "u2", "starting_price": 50, "isAuctionEnd": true, "categoryId": "c2", "createdAt": ago(5 * day)})
	put("auctions", "a4", map[string]any{"name": "Gone", "creator_id": "u1", "createdAt": ago(1 * day), "isDeleted": true})

	put("categories", "c1", map[string]any{"name": "Lighting"})
	put("categories", "c2", map[string]any{"name": "Furniture"})

	put("groups", "g1", map[string]any{"name": "Collectors", "createdBy": "u1", "members": []any{"u1", "u2"}, "adminIds": []any{"u1"}, "createdAt": ago(30 * day)})
	put("groups", "g2", map[string]any{"name": "Makers", "createdBy": "u2", "members": []any{"u2"}, "createdAt": ago(5 * day)})
	put("posts", "p1", map[string]any{"groupId": "g1", "userId": "u2", "content": "hello", "createdAt": ago(1 * day),
		"comments": []any{map[string]any{"id": "c1", "userId": "u1", "text": "hi"}}})

	put("userReports", "r1", map[string]any{"reporterId": "u1", "reportedId": "u3", "reason": "spam", "createdAt": ago(1 * day)})
	put("userReports", "r2", map[string]any{"reporterId": "u2", "reportedId": "u3", "reason": "abuse", "status": "resolved", "createdAt": ago(2 * day)})
	put("groupReports", "r3", map[string]any{"reporterId": "u3", "reportedId": "g1", "reason": "off-topic", "createdAt": ago(3 * day)})
	put("auctionReports", "r4", map[string]any{"reporterId": "u3", "reportedId": "u1", "auctionId": "a1", "reason": "fake", "createdAt": ago(4 * day)})

	return server.SetupRouter(admin.NewAdminService(store))
}

// ExecuteRequestAndParse executes an HTTP request as the seeded admin and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(server.AdminIDHeader, adminID)
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// ids pulls the given id field out of a list response
func ids(resp map[string]any, field string) []string {
	out := []string{}
	for _, rec := range resp["data"].([]any) {
		out = append(out, rec.(map[string]any)[field].(string))
	}
	return out
}

// forEachBackend runs fn against a freshly seeded router per store backend
func forEachBackend(t *testing.T, fn func(t *testing.T, router *gin.Engine)) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			fn(t, SetupTestRouter(t, b.store(t)))
		})
	}
}
