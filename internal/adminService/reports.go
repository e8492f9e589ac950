package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cast"

	"marketplace-admin/internal/adminerrors"
	"marketplace-admin/internal/aggregation"
	"marketplace-admin/internal/listing"
	"marketplace-admin/internal/models"
	"marketplace-admin/internal/repository"
)

func reportStatus(d repository.Document) string {
	if s := cast.ToString(d.Data["status"]); s != "" {
		return s
	}
	return models.ReportPending
}

func validReportStatus(status string) bool {
	return lo.Contains([]string{models.ReportPending, models.ReportResolved, models.ReportRejected}, status)
}

// ListReports returns one page of reports of a kind, newest first, optionally
// restricted to one status. The reported user, group or auction is resolved together
// with the users that group or auction references.
func (s *AdminService) ListReports(ctx context.Context, kind aggregation.ReportKind, status string, p ListParams) (listing.Page[models.Report], error) {
	if status == "all" {
		status = ""
	}
	if status != "" && !validReportStatus(status) {
		return listing.Page[models.Report]{}, fmt.Errorf("service: %w - unknown report status %q", adminerrors.ErrInvalidInput, status)
	}
	opt, err := s.engines.Reports.ParseSort(p.Sort)
	if err != nil {
		return listing.Page[models.Report]{}, fmt.Errorf("service: %w", err)
	}

	asm := s.assembler()
	lister := listing.NewOffsetLister(
		func(ctx context.Context) ([]repository.Document, error) {
			docs, err := s.store.GetAll(ctx, kind.Collection())
			if err != nil {
				return nil, fmt.Errorf("service: failed to fetch %s: %w", kind.Collection(), err)
			}
			if status == "" {
				return docs, nil
			}
			return lo.Filter(docs, func(d repository.Document, _ int) bool { return reportStatus(d) == status }), nil
		},
		func(ctx context.Context, docs []repository.Document) []models.Report {
			cache := s.resolveReports(ctx, kind, docs)
			return lo.Map(docs, func(d repository.Document, _ int) models.Report { return asm.Report(kind, d, cache) })
		},
		func(r models.Report) time.Time { return r.CreatedAt },
		func(r models.Report) string { return r.ID },
	)

	page, err := lister.List(ctx, s.pageSize(p.PageSize), p.Cursor)
	if err != nil {
		return listing.Page[models.Report]{}, fmt.Errorf("service: failed to list %s reports: %w", kind, err)
	}
	page.Records = s.engines.Reports.Apply(page.Records, p.Search, opt)
	return page, nil
}

// resolveReports runs two passes: the report references first, then the references
// of the reported groups or auctions that were found
func (s *AdminService) resolveReports(ctx context.Context, kind aggregation.ReportKind, docs []repository.Document) *aggregation.EntityCache {
	cache := s.resolver.ResolveFor(ctx, docs, kind.Rules())

	nestedCollection, nestedRules := kind.NestedRules()
	if nestedCollection == "" {
		return cache
	}
	ids := aggregation.Collect(docs, kind.Rules())[nestedCollection]
	s.resolver.ResolveMore(ctx, cache, cache.CachedDocs(nestedCollection, ids), nestedRules)
	return cache
}

// UpdateReportStatus moves a report to status. Resolving or rejecting records the
// operator from the auth provider; going back to pending clears the outcome.
func (s *AdminService) UpdateReportStatus(ctx context.Context, kind aggregation.ReportKind, id, status string) error {
	if !validReportStatus(status) {
		return fmt.Errorf("service: %w - unknown report status %q", adminerrors.ErrInvalidInput, status)
	}

	if status == models.ReportPending {
		return s.gateway.UpdateFields(ctx, kind.Collection(), id, map[string]any{
			"status":     status,
			"resolvedBy": "",
			"resolvedAt": nil,
		})
	}

	adminID, ok := s.auth.CurrentUserID(ctx)
	if !ok {
		return fmt.Errorf("service: %w - no operator for report %s", adminerrors.ErrUnauthorized, id)
	}
	return s.gateway.ResolveReport(ctx, kind.Collection(), id, status, adminID)
}
