package mutation

import (
	"context"
	"fmt"

	"marketplace-admin/internal/adminerrors"
	"marketplace-admin/internal/repository"
	"marketplace-admin/utils"
)

// Gateway issues single-document field updates on behalf of an operator. Every write
// stamps updatedAt with the store's server time. Failures come back as
// *adminerrors.MutationError; the gateway never panics.
type Gateway struct {
	store repository.DocumentStore
}

// NewGateway creates a new Gateway instance
func NewGateway(store repository.DocumentStore) *Gateway {
	return &Gateway{store: store}
}

// UpdateFields merges fields into collection/id
func (g *Gateway) UpdateFields(ctx context.Context, collection, id string, fields map[string]any) error {
	return g.write(ctx, "update", collection, id, fields)
}

// SoftDelete flags the document as deleted instead of removing it, so embedded
// references elsewhere keep pointing at something
func (g *Gateway) SoftDelete(ctx context.Context, collection, id string) error {
	return g.write(ctx, "soft_delete", collection, id, map[string]any{
		"isDeleted": true,
		"deletedAt": repository.ServerTimestamp(),
	})
}

// ResolveReport records the moderation outcome and the operator who decided it
func (g *Gateway) ResolveReport(ctx context.Context, collection, id, status, adminID string) error {
	if adminID == "" {
		return g.reject("resolve_report", collection, id, fmt.Errorf("%w - empty operator id", adminerrors.ErrInvalidInput))
	}
	return g.write(ctx, "resolve_report", collection, id, map[string]any{
		"status":     status,
		"resolvedBy": adminID,
		"resolvedAt": repository.ServerTimestamp(),
	})
}

// AddToArray appends values to an array field, skipping ones already present
func (g *Gateway) AddToArray(ctx context.Context, collection, id, field string, values ...any) error {
	return g.write(ctx, "array_add", collection, id, map[string]any{field: repository.ArrayUnion(values...)})
}

// RemoveFromArray drops every occurrence of values from an array field
func (g *Gateway) RemoveFromArray(ctx context.Context, collection, id, field string, values ...any) error {
	return g.write(ctx, "array_remove", collection, id, map[string]any{field: repository.ArrayRemove(values...)})
}

func (g *Gateway) write(ctx context.Context, op, collection, id string, fields map[string]any) error {
	if err := validate(collection, id, fields); err != nil {
		return g.reject(op, collection, id, err)
	}

	patch := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		patch[k] = v
	}
	patch["updatedAt"] = repository.ServerTimestamp()

	if err := g.store.UpdateFields(ctx, collection, id, patch); err != nil {
		merr := &adminerrors.MutationError{Op: op, Collection: collection, ID: id, Kind: adminerrors.KindOf(err), Err: err}
		utils.Error("mutation failed", map[string]any{
			"op":         op,
			"collection": collection,
			"id":         id,
			"kind":       string(merr.Kind),
			"error":      err.Error(),
		})
		return merr
	}

	utils.Info("mutation applied", map[string]any{
		"op":         op,
		"collection": collection,
		"id":         id,
		"fields":     len(fields),
	})
	return nil
}

func (g *Gateway) reject(op, collection, id string, err error) error {
	utils.Warn("mutation rejected", map[string]any{
		"op":         op,
		"collection": collection,
		"id":         id,
		"error":      err.Error(),
	})
	return &adminerrors.MutationError{Op: op, Collection: collection, ID: id, Kind: adminerrors.KindInvalidInput, Err: err}
}

func validate(collection, id string, fields map[string]any) error {
	switch {
	case collection == "":
		return fmt.Errorf("%w - empty collection", adminerrors.ErrInvalidInput)
	case id == "":
		return fmt.Errorf("%w - empty document id", adminerrors.ErrInvalidInput)
	case len(fields) == 0:
		return fmt.Errorf("%w - nothing to update", adminerrors.ErrInvalidInput)
	}
	for k := range fields {
		if k == "" {
			return fmt.Errorf("%w - empty field name", adminerrors.ErrInvalidInput)
		}
		// the document key lives outside the body
		if k == "id" {
			return fmt.Errorf("%w - the id field cannot be written", adminerrors.ErrInvalidInput)
		}
	}
	return nil
}
