package main

import (
	"context"
	"fmt"
	"os"
	"time"

	admin "marketplace-admin/internal/adminService"
	"marketplace-admin/internal/aggregation"
	"marketplace-admin/internal/config"
	"marketplace-admin/internal/filtersort"
	"marketplace-admin/internal/repository"
	"marketplace-admin/internal/server"
	"marketplace-admin/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}
	utils.SetLevel(cfg.LogLevel)

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.SeedDemo {
		if err := seedDemo(context.Background(), store); err != nil {
			return err
		}
	}

	resolver := aggregation.NewResolver(store,
		aggregation.WithConcurrency(cfg.Resolver.Concurrency),
		aggregation.WithRetries(cfg.Resolver.Retries),
		aggregation.WithInitialInterval(cfg.Resolver.Backoff),
	)
	adminSvc := admin.NewAdminService(store,
		admin.WithResolver(resolver),
		admin.WithEngines(filtersort.NewEngines(cfg.Locale)),
		admin.WithPageSizes(cfg.DefaultPageSize, cfg.MaxPageSize),
	)

	router := server.SetupRouter(adminSvc)

	utils.Info("starting admin console server", map[string]any{
		"addr":  cfg.ServerAddr,
		"store": cfg.Store,
	})
	return router.Run(cfg.ServerAddr)
}

// openStore connects the configured backend and returns a func releasing it
func openStore(cfg config.Config) (repository.DocumentStore, func(), error) {
	switch cfg.Store {
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
		}
		return repository.NewRedisRepo(client, repository.WithRedisPrefix(cfg.Redis.Prefix)), func() { _ = client.Close() }, nil

	case config.BackendMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		repo, client, err := repository.NewMongoRepo(ctx, cfg.Mongo.URL, cfg.Mongo.Database)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = client.Disconnect(context.Background()) }, nil
	}

	return repository.NewMemoryRepo(), func() {}, nil
}

// seedDemo adds a small marketplace to an empty store so the console has
// something to show. Stores that already hold an admin are left alone.
func seedDemo(ctx context.Context, store repository.DocumentStore) error {
	admins, err := store.GetAll(ctx, aggregation.CollAdmins)
	if err != nil {
		return err
	}
	if len(admins) > 0 {
		utils.Info("store already seeded, skipping demo data", map[string]any{"admins": len(admins)})
		return nil
	}

	now := time.Now().UTC()
	seller, buyer := uuid.NewString(), uuid.NewString()
	auctionID, groupID := uuid.NewString(), uuid.NewString()

	docs := []struct {
		coll string
		doc  repository.Document
	}{
		{aggregation.CollAdmins, repository.Document{ID: "demo-admin", Data: map[string]any{"adminMail": "admin@example.com"}}},
		{aggregation.CollUsers, repository.Document{ID: seller, Data: map[string]any{
			"displayName": "Demo Seller", "email": "seller@example.com", "isActive": true,
			"createdAt": now.Add(-45 * 24 * time.Hour), "followers": []any{buyer},
		}}},
		{aggregation.CollUsers, repository.Document{ID: buyer, Data: map[string]any{
			"displayName": "Demo Buyer", "email": "buyer@example.com", "isActive": true,
			"createdAt": now.Add(-3 * 24 * time.Hour), "following": []any{seller},
		}}},
		{aggregation.CollAuctions, repository.Document{ID: auctionID, Data: map[string]any{
			"name": "Vintage lamp", "creator_id": seller, "bidder_id": buyer,
			"starting_price": 20, "categoryId": "lighting",
			"createdAt": now.Add(-2 * 24 * time.Hour), "end_time": now.Add(5 * 24 * time.Hour),
			"updatedAt": now.Add(-24 * time.Hour),
			"bid_history": []any{map[string]any{"user_id": buyer, "amount": 35, "timestamp": now.Add(-24 * time.Hour)}},
		}}},
		{aggregation.CollCategories, repository.Document{ID: "lighting", Data: map[string]any{"name": "Lighting"}}},
		{aggregation.CollGroups, repository.Document{ID: groupID, Data: map[string]any{
			"name": "Lamp collectors", "createdBy": seller, "members": []any{seller, buyer},
			"adminIds": []any{seller}, "createdAt": now.Add(-30 * 24 * time.Hour),
		}}},
		{aggregation.CollAuctionReports, repository.Document{ID: uuid.NewString(), Data: map[string]any{
			"reporterId": buyer, "reportedId": seller, "auctionId": auctionID, "reason": "wrong category", "createdAt": now,
		}}},
	}

	for _, d := range docs {
		if err := store.Put(ctx, d.coll, d.doc); err != nil {
			return fmt.Errorf("seed %s/%s: %w", d.coll, d.doc.ID, err)
		}
	}
	utils.Info("demo data seeded", map[string]any{"records": len(docs), "admin_id": "demo-admin"})
	return nil
}
