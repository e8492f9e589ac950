package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	admin "marketplace-admin/internal/adminService"
	"marketplace-admin/internal/aggregation"
	"marketplace-admin/internal/auth"
	"marketplace-admin/internal/repository"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name       string
	NumUsers   int
	NumItems   int
	ReadRatio  int // out of 10
	DetailRead int // out of 10 reads, the rest are list reads
	Burst      bool
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	om.mu.Lock()
	om.latencies = append(om.latencies, d)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (lo, hi, avg, p95, p99 time.Duration) {
	om.mu.Lock()
	defer om.mu.Unlock()

	if len(om.latencies) == 0 {
		return
	}
	latencies := append([]time.Duration(nil), om.latencies...)
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	lo = latencies[0]
	hi = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// setupRepo creates a memory store with users, auctions referencing them, one
// group per ten users and a pending report per auction
func setupRepo(tb testing.TB, numUsers, numAuctions int) (*repository.MemoryRepo, *admin.AdminService) {
	tb.Helper()

	repo := repository.NewMemoryRepo()
	ctx := context.Background()
	now := time.Now().UTC()
	put := func(coll, id string, data map[string]any) {
		if err := repo.Put(ctx, coll, repository.Document{ID: id, Data: data}); err != nil {
			tb.Fatalf("failed to seed %s/%s: %v", coll, id, err)
		}
	}

	for i := 0; i < numUsers; i++ {
		put(aggregation.CollUsers, userID(i), map[string]any{
			"displayName": fmt.Sprintf("User %d", i),
			"email":       fmt.Sprintf("user%d@example.com", i),
			"createdAt":   now.Add(-time.Duration(i) * time.Minute),
			"followers":   []any{userID((i + 1) % numUsers), userID((i + 7) % numUsers)},
		})
	}
	for i := 0; i < numAuctions; i++ {
		put(aggregation.CollAuctions, auctionID(i), map[string]any{
			"name":           fmt.Sprintf("Item %d", i),
			"creator_id":     userID(i % numUsers),
			"bidder_id":      userID((i + 3) % numUsers),
			"starting_price": 10 + i%90,
			"createdAt":      now.Add(-time.Duration(i) * time.Second),
			"end_time":       now.Add(time.Duration(i%48-24) * time.Hour),
			"bid_history": []any{
				map[string]any{"user_id": userID((i + 3) % numUsers), "amount": 100 + i%90, "timestamp": now},
			},
		})
		put(aggregation.CollAuctionReports, fmt.Sprintf("report_%d", i), map[string]any{
			"reporterId": userID((i + 5) % numUsers),
			"auctionId":  auctionID(i),
			"reason":     "load",
			"createdAt":  now,
		})
	}
	for i := 0; i < numUsers/10; i++ {
		put(aggregation.CollGroups, fmt.Sprintf("group_%d", i), map[string]any{
			"name":      fmt.Sprintf("Group %d", i),
			"createdBy": userID(i * 10),
			"members":   []any{userID(i * 10), userID(i*10 + 1)},
			"createdAt": now,
		})
	}

	return repo, admin.NewAdminService(repo, admin.WithAuthProvider(auth.StaticProvider("load-admin")))
}

// Benchmark_Load_AdminConsole runs multiple scenarios
func Benchmark_Load_AdminConsole(b *testing.B) {
	scenarios := []LoadScenario{
		{"ReadHeavy-Lists", 500, 500, 9, 2, false},
		{"ReadHeavy-Details", 500, 500, 9, 8, false},
		{"Mixed-Moderation", 300, 300, 6, 5, false},
		{"Small-Store-Contention", 20, 20, 5, 5, false},
		{"Peak-Burst", 500, 500, 8, 5, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	_, svc := setupRepo(b, s.NumUsers, s.NumItems)
	ctx := context.Background()

	var totalOps, reads, writes, failures int64
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

		for pb.Next() {
			idx := rnd.Intn(s.NumItems)
			opStart := time.Now()

			var err error
			switch op := rnd.Intn(10); {
			case op < s.ReadRatio && rnd.Intn(10) < s.DetailRead:
				if rnd.Intn(2) == 0 {
					_, err = svc.GetAuction(ctx, auctionID(idx))
				} else {
					_, err = svc.GetUser(ctx, userID(idx%s.NumUsers))
				}
				atomic.AddInt64(&reads, 1)
			case op < s.ReadRatio:
				if rnd.Intn(2) == 0 {
					_, err = svc.ListAuctions(ctx, "active", admin.ListParams{PageSize: 20})
				} else {
					_, err = svc.ListReports(ctx, aggregation.ReportAuction, "pending", admin.ListParams{PageSize: 20})
				}
				atomic.AddInt64(&reads, 1)
			default:
				if rnd.Intn(2) == 0 {
					err = svc.SetUserActive(ctx, userID(idx%s.NumUsers), rnd.Intn(2) == 0)
				} else {
					err = svc.UpdateReportStatus(ctx, aggregation.ReportAuction, fmt.Sprintf("report_%d", idx), "resolved")
				}
				atomic.AddInt64(&writes, 1)
			}
			if err != nil {
				b.Logf("ignored error: %v", err)
				atomic.AddInt64(&failures, 1)
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	lo, hi, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Users: %d | Auctions: %d | Total Ops: %d | Reads: %d | Writes: %d | Failures: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumUsers, s.NumItems, totalOps, reads, writes, failures, elapsed,
		throughput,
		float64(lo.Microseconds()), float64(avg.Microseconds()), float64(hi.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)
}
