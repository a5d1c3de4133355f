// Package services contains the domain services of the lists bounded context.
// AggregateSync is the core of the whole application: it keeps each game's
// per-family aggregate list a correct merged view of that family's regular
// lists as individual items are created, updated, and deleted.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/skyhoard/services/lists/domain"
	"github.com/ghuser/skyhoard/services/lists/domain/models"
	"github.com/ghuser/skyhoard/services/lists/domain/repositories"
)

// AggregateSync propagates one regular-list item mutation onto the game's
// aggregate list of the same family. All methods must run inside the same
// transaction as the direct mutation they follow, with the aggregate list row
// already locked, so the pair commits or rolls back atomically.
//
// Matching between regular and aggregate items is always by case-insensitive
// exact description; quantity changes propagate as deltas rather than by
// re-summing, so the aggregate item is never rebuilt from scratch.
type AggregateSync struct {
	store repositories.TxStore
}

// NewAggregateSync returns an AggregateSync bound to one transaction's store.
func NewAggregateSync(store repositories.TxStore) *AggregateSync {
	return &AggregateSync{store: store}
}

// SyncResult is the outcome of an update propagation. Propagated holds the
// sibling regular-list items whose unit weight was fanned out; it is empty
// unless the update changed unit weight.
type SyncResult struct {
	Aggregate  *models.Item
	Propagated []*models.Item
}

// ItemSnapshot captures the attributes of a regular item just before it was
// destroyed, which is all RemoveItem needs to reverse its contribution.
type ItemSnapshot struct {
	ID          uuid.UUID
	ListID      uuid.UUID
	Description string
	Quantity    int
}

// Snapshot captures item for a later RemoveItem call.
func Snapshot(item *models.Item) ItemSnapshot {
	return ItemSnapshot{
		ID:          item.ID,
		ListID:      item.ListID,
		Description: item.Description,
		Quantity:    item.Quantity,
	}
}

// AddItem propagates a newly inserted (or quantity-merged) regular item onto
// the aggregate list. source carries the contribution: for a fresh insert the
// whole item, for a merge just the added quantity under the same description.
//
// When no aggregate item matches the description, one is created copying the
// source. When one exists, its quantity grows by the contribution; it adopts
// the source's unit weight only if its own is unset, and keeps its notes
// (first writer wins).
func (s *AggregateSync) AddItem(ctx context.Context, aggregate *models.List, source *models.Item, contributed int) (*models.Item, error) {
	aggItem, err := s.store.AggregateItem(ctx, aggregate.ID, source.DescriptionKey())
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		aggItem = source.CopyToList(aggregate.ID)
		aggItem.Quantity = contributed
		if err := s.store.InsertItem(ctx, aggItem); err != nil {
			return nil, fmt.Errorf("insert aggregate item: %w", err)
		}
		return aggItem, nil
	case err != nil:
		return nil, fmt.Errorf("find aggregate item: %w", err)
	}

	aggItem.Quantity += contributed
	if !aggItem.UnitWeight.Valid && source.UnitWeight.Valid {
		aggItem.UnitWeight = source.UnitWeight
	}
	aggItem.UpdatedAt = time.Now().UTC()
	if err := s.store.UpdateItem(ctx, aggItem); err != nil {
		return nil, fmt.Errorf("update aggregate item: %w", err)
	}
	return aggItem, nil
}

// UpdateItem propagates an already-applied update of a regular item. source
// is the item in its post-update state; changes records what changed.
//
//   - Quantity applies the same delta to the aggregate item.
//   - Unit weight is shared game-wide: the new value is written to the
//     aggregate item and to every other regular item in the family with the
//     same description. The triggering item is excluded (the caller already
//     updated it).
//   - Notes propagate only when this item was the source of the aggregate's
//     current notes, or the aggregate has none. Notes contributed by a
//     different list are never clobbered.
//
// A missing aggregate item or a negative resulting quantity is corruption,
// not user error: both return ErrAggregateOutOfSync so the caller rolls the
// whole transaction back.
func (s *AggregateSync) UpdateItem(ctx context.Context, aggregate *models.List, source *models.Item, changes models.ItemChanges) (*SyncResult, error) {
	aggItem, err := s.store.AggregateItem(ctx, aggregate.ID, source.DescriptionKey())
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, fmt.Errorf("%w: no aggregate item matches %q", domain.ErrAggregateOutOfSync, source.Description)
		}
		return nil, fmt.Errorf("find aggregate item: %w", err)
	}

	result := &SyncResult{Aggregate: aggItem}

	if q := changes.Quantity; q != nil {
		aggItem.Quantity += q.To - q.From
		if aggItem.Quantity < 0 {
			return nil, fmt.Errorf("%w: aggregate quantity for %q went negative", domain.ErrAggregateOutOfSync, source.Description)
		}
	}

	if w := changes.UnitWeight; w != nil {
		aggItem.UnitWeight = w.To

		siblings, err := s.store.RegularItems(ctx, aggregate.GameID, aggregate.Family, source.DescriptionKey(), source.ID)
		if err != nil {
			return nil, fmt.Errorf("find sibling items: %w", err)
		}
		for _, sib := range siblings {
			sib.UnitWeight = w.To
			sib.UpdatedAt = time.Now().UTC()
			if err := s.store.UpdateItem(ctx, sib); err != nil {
				return nil, fmt.Errorf("propagate unit weight: %w", err)
			}
		}
		result.Propagated = siblings
	}

	if n := changes.Notes; n != nil {
		if models.NotesEmpty(aggItem.Notes) || models.NotesEqual(aggItem.Notes, n.From) {
			aggItem.Notes = n.To
		}
	}

	aggItem.UpdatedAt = time.Now().UTC()
	if err := s.store.UpdateItem(ctx, aggItem); err != nil {
		return nil, fmt.Errorf("update aggregate item: %w", err)
	}
	return result, nil
}

// RemoveItem reverses a destroyed regular item's contribution. When the
// aggregate item's whole quantity came from the removed item and no other
// regular list still has the description, the aggregate item is deleted and
// RemoveItem returns nil. Otherwise the aggregate quantity is decremented.
func (s *AggregateSync) RemoveItem(ctx context.Context, aggregate *models.List, removed ItemSnapshot) (*models.Item, error) {
	key := models.DescriptionKey(removed.Description)
	aggItem, err := s.store.AggregateItem(ctx, aggregate.ID, key)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, fmt.Errorf("%w: no aggregate item matches %q", domain.ErrAggregateOutOfSync, removed.Description)
		}
		return nil, fmt.Errorf("find aggregate item: %w", err)
	}

	remaining, err := s.store.RegularItems(ctx, aggregate.GameID, aggregate.Family, key, removed.ID)
	if err != nil {
		return nil, fmt.Errorf("find remaining items: %w", err)
	}

	if aggItem.Quantity == removed.Quantity && len(remaining) == 0 {
		if err := s.store.DeleteItem(ctx, aggItem.ID); err != nil {
			return nil, fmt.Errorf("delete aggregate item: %w", err)
		}
		return nil, nil
	}

	aggItem.Quantity -= removed.Quantity
	if aggItem.Quantity < 0 {
		return nil, fmt.Errorf("%w: aggregate quantity for %q went negative", domain.ErrAggregateOutOfSync, removed.Description)
	}
	aggItem.UpdatedAt = time.Now().UTC()
	if err := s.store.UpdateItem(ctx, aggItem); err != nil {
		return nil, fmt.Errorf("update aggregate item: %w", err)
	}
	return aggItem, nil
}
