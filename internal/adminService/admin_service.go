package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cast"

	"marketplace-admin/internal/adminerrors"
	"marketplace-admin/internal/aggregation"
	"marketplace-admin/internal/auth"
	"marketplace-admin/internal/filtersort"
	"marketplace-admin/internal/mutation"
	"marketplace-admin/internal/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListParams selects one page of a listing and narrows it for display.
// Search and Sort apply to the records of the returned page only.
type ListParams struct {
	PageSize int
	Cursor   *int
	Search   string
	Sort     string
}

// AdminService defines the business logic of the admin console
type AdminService struct {
	store    repository.DocumentStore
	resolver *aggregation.Resolver
	engines  *filtersort.Engines
	gateway  *mutation.Gateway
	auth     auth.Provider
	now      func() time.Time

	defaultPageSize int
	maxPageSize     int
}

// Option configures an AdminService
type Option func(*AdminService)

func WithResolver(r *aggregation.Resolver) Option {
	return func(s *AdminService) { s.resolver = r }
}

func WithEngines(e *filtersort.Engines) Option {
	return func(s *AdminService) { s.engines = e }
}

func WithAuthProvider(p auth.Provider) Option {
	return func(s *AdminService) { s.auth = p }
}

// WithClock sets the reference time source used for assembly and status windows
func WithClock(now func() time.Time) Option {
	return func(s *AdminService) { s.now = now }
}

// WithPageSizes sets the page size used when none is requested and the largest one allowed
func WithPageSizes(def, limit int) Option {
	return func(s *AdminService) {
		if def > 0 && limit >= def {
			s.defaultPageSize, s.maxPageSize = def, limit
		}
	}
}

// NewAdminService creates a new AdminService instance
func NewAdminService(store repository.DocumentStore, opts ...Option) *AdminService {
	s := &AdminService{
		store:           store,
		gateway:         mutation.NewGateway(store),
		auth:            auth.ContextProvider{},
		now:             time.Now,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.resolver == nil {
		s.resolver = aggregation.NewResolver(store)
	}
	if s.engines == nil {
		s.engines = filtersort.NewEngines("en")
	}
	return s
}

// IsAdmin reports whether uid has a record in the admin collection
func (s *AdminService) IsAdmin(ctx context.Context, uid string) (bool, error) {
	if uid == "" {
		return false, nil
	}
	_, err := s.store.GetByID(ctx, aggregation.CollAdmins, uid)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, adminerrors.ErrNotFound):
		return false, nil
	}
	return false, fmt.Errorf("service: failed to look up admin %s: %w", uid, err)
}

// assembler pins the reference time for one call
func (s *AdminService) assembler() *aggregation.Assembler {
	return aggregation.NewAssembler(s.now())
}

func (s *AdminService) pageSize(requested int) int {
	if requested == 0 {
		return s.defaultPageSize
	}
	// negative sizes are left for the lister to reject
	return min(requested, s.maxPageSize)
}

// liveDocs fetches a whole collection without soft-deleted documents
func (s *AdminService) liveDocs(ctx context.Context, collection string) ([]repository.Document, error) {
	docs, err := s.store.GetAll(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch %s: %w", collection, err)
	}
	return lo.Filter(docs, func(d repository.Document, _ int) bool { return !isDeleted(d) }), nil
}

func isDeleted(d repository.Document) bool {
	return cast.ToBool(d.Data["isDeleted"]) || cast.ToBool(d.Data["is_deleted"])
}

// get fetches one document; soft-deleted documents are still returned so operators
// can inspect them
func (s *AdminService) get(ctx context.Context, collection, id string) (repository.Document, error) {
	if id == "" {
		return repository.Document{}, fmt.Errorf("service: %w - empty %s id", adminerrors.ErrInvalidInput, collection)
	}
	doc, err := s.store.GetByID(ctx, collection, id)
	if err != nil {
		return repository.Document{}, fmt.Errorf("service: failed to get %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

func requireConfirmation(confirmed bool, action string) error {
	if !confirmed {
		return fmt.Errorf("service: %w - %s", adminerrors.ErrNotConfirmed, action)
	}
	return nil
}
