package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	listsdomain "github.com/ghuser/skyhoard/services/lists/domain"
	domainevents "github.com/ghuser/skyhoard/services/lists/domain/events"
	"github.com/ghuser/skyhoard/services/lists/domain/models"
	"github.com/ghuser/skyhoard/services/lists/domain/repositories"
	domainsvcs "github.com/ghuser/skyhoard/services/lists/domain/services"
)

// ItemMutation is the outcome of a successful item-level mutation. Items
// holds every row the mutation touched, aggregate item first, so clients can
// refresh all affected views from one response.
type ItemMutation struct {
	Status Status
	Items  []*models.Item
}

// CreateItemAttrs are the recognized attributes for item creation.
type CreateItemAttrs struct {
	Description string
	Quantity    int
	UnitWeight  *decimal.Decimal
	Notes       *string
}

// UpdateItemAttrs are the recognized attributes for item updates. Nil means
// "not supplied". Description is immutable after creation: a rename would be
// a remove+add against the aggregate, not an update.
type UpdateItemAttrs struct {
	Quantity   *int
	UnitWeight *decimal.Decimal
	Notes      *string
}

// ItemService orchestrates item mutations on regular lists and their
// propagation onto the game's aggregate list. Every mutation runs in a single
// transaction with the aggregate list row locked, so the direct change and
// its aggregate counterpart are never observable apart.
type ItemService struct {
	repo repositories.ListRepository
}

// NewItemService returns an ItemService wired with the given repository.
func NewItemService(repo repositories.ListRepository) *ItemService {
	return &ItemService{repo: repo}
}

// Create adds an item to a regular list. A same-description item already on
// the list absorbs the new quantity instead of duplicating the row (combine
// semantics). The result is Created only when the description is new to the
// whole family; when the aggregate item already existed the result is OK,
// even if the row itself is new to its list. A supplied unit weight that
// differs from the aggregate item's fans out to every same-description item
// game-wide in the family.
func (s *ItemService) Create(ctx context.Context, userID, listID uuid.UUID, attrs CreateItemAttrs) (*ItemMutation, error) {
	if attrs.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be a positive integer", listsdomain.ErrInvalidItem)
	}
	if attrs.UnitWeight != nil && attrs.UnitWeight.IsNegative() {
		return nil, fmt.Errorf("%w: unit weight must not be negative", listsdomain.ErrInvalidItem)
	}

	var out *ItemMutation
	err := s.repo.WithTx(ctx, func(tx repositories.TxStore) error {
		list, err := tx.ListForUpdate(ctx, userID, listID)
		if err != nil {
			return err
		}
		if list.Aggregate {
			return listsdomain.ErrAggregateListImmutable
		}
		aggregate, err := lockAggregate(ctx, tx, list)
		if err != nil {
			return err
		}

		sync := domainsvcs.NewAggregateSync(tx)
		key := models.DescriptionKey(attrs.Description)

		// Capture the aggregate item's prior unit weight to decide whether a
		// supplied weight actually changes anything.
		priorWeight, aggExisted := decimal.NullDecimal{}, false
		if prior, err := tx.AggregateItem(ctx, aggregate.ID, key); err == nil {
			priorWeight, aggExisted = prior.UnitWeight, true
		} else if !errors.Is(err, listsdomain.ErrItemNotFound) {
			return err
		}

		// Created only when the family has never seen this description.
		status := StatusCreated
		if aggExisted {
			status = StatusOK
		}

		var source *models.Item
		existing, err := tx.ItemOnList(ctx, listID, key)
		switch {
		case err == nil:
			// Combine-or-new: same description on the same list merges by
			// summing quantity instead of erroring. Supplied weight replaces
			// the row's, supplied notes stick only when the row has none.
			existing.AddQuantity(attrs.Quantity)
			if attrs.UnitWeight != nil {
				existing.UnitWeight = decimal.NullDecimal{Decimal: *attrs.UnitWeight, Valid: true}
			}
			if attrs.Notes != nil && models.NotesEmpty(existing.Notes) {
				existing.Notes = attrs.Notes
			}
			if err := tx.UpdateItem(ctx, existing); err != nil {
				return fmt.Errorf("merge item: %w", err)
			}
			source = existing
		case errors.Is(err, listsdomain.ErrItemNotFound):
			item, err := models.NewItem(listID, attrs.Description, attrs.Quantity, nullWeight(attrs.UnitWeight), attrs.Notes)
			if err != nil {
				return fmt.Errorf("%w: %w", listsdomain.ErrInvalidItem, err)
			}
			if err := tx.InsertItem(ctx, item); err != nil {
				return fmt.Errorf("insert item: %w", err)
			}
			source = item
		default:
			return err
		}

		aggItem, err := sync.AddItem(ctx, aggregate, source, attrs.Quantity)
		if err != nil {
			return err
		}
		items := []*models.Item{aggItem, source}

		// Unit weight is shared game-wide within the family.
		if w := attrs.UnitWeight; w != nil && aggExisted {
			newWeight := decimal.NullDecimal{Decimal: *w, Valid: true}
			if !models.UnitWeightEqual(priorWeight, newWeight) {
				source.UnitWeight = newWeight
				if err := tx.UpdateItem(ctx, source); err != nil {
					return fmt.Errorf("update item weight: %w", err)
				}
				res, err := sync.UpdateItem(ctx, aggregate, source, models.ItemChanges{
					UnitWeight: &models.FieldChange[decimal.NullDecimal]{From: priorWeight, To: newWeight},
				})
				if err != nil {
					return err
				}
				items = append([]*models.Item{res.Aggregate, source}, res.Propagated...)
			}
		}

		if err := tx.PublishListChanged(ctx, domainevents.NewListChangedEvent(list.GameID, list.Family)); err != nil {
			return err
		}
		out = &ItemMutation{Status: status, Items: items}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies the supplied attributes to a regular-list item and
// propagates them: quantity as a delta onto the aggregate item, unit weight
// onto every same-description item game-wide, notes per first-writer-wins.
// The response carries every touched item, aggregate first.
func (s *ItemService) Update(ctx context.Context, userID, itemID uuid.UUID, attrs UpdateItemAttrs) (*ItemMutation, error) {
	if attrs.Quantity != nil && *attrs.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be a positive integer", listsdomain.ErrInvalidItem)
	}
	if attrs.UnitWeight != nil && attrs.UnitWeight.IsNegative() {
		return nil, fmt.Errorf("%w: unit weight must not be negative", listsdomain.ErrInvalidItem)
	}

	var out *ItemMutation
	err := s.repo.WithTx(ctx, func(tx repositories.TxStore) error {
		item, list, err := tx.ItemForUpdate(ctx, userID, itemID)
		if err != nil {
			return err
		}
		if list.Aggregate {
			return listsdomain.ErrAggregateListImmutable
		}
		aggregate, err := lockAggregate(ctx, tx, list)
		if err != nil {
			return err
		}

		var weight *decimal.NullDecimal
		if attrs.UnitWeight != nil {
			weight = &decimal.NullDecimal{Decimal: *attrs.UnitWeight, Valid: true}
		}
		var notes **string
		if attrs.Notes != nil {
			notes = &attrs.Notes
		}
		changes := models.ChangesFor(item, attrs.Quantity, weight, notes)
		if changes.Empty() {
			out = &ItemMutation{Status: StatusOK, Items: []*models.Item{item}}
			return nil
		}

		changes.Apply(item)
		if err := tx.UpdateItem(ctx, item); err != nil {
			return fmt.Errorf("update item: %w", err)
		}

		res, err := domainsvcs.NewAggregateSync(tx).UpdateItem(ctx, aggregate, item, changes)
		if err != nil {
			return err
		}

		if err := tx.PublishListChanged(ctx, domainevents.NewListChangedEvent(list.GameID, list.Family)); err != nil {
			return err
		}
		out = &ItemMutation{
			Status: StatusOK,
			Items:  append([]*models.Item{res.Aggregate, item}, res.Propagated...),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete destroys a regular-list item and reverses its contribution to the
// aggregate item. The result carries the aggregate item when it survives the
// decrement, or NoContent when the removed item was its last contributor.
func (s *ItemService) Delete(ctx context.Context, userID, itemID uuid.UUID) (*ItemMutation, error) {
	var out *ItemMutation
	err := s.repo.WithTx(ctx, func(tx repositories.TxStore) error {
		item, list, err := tx.ItemForUpdate(ctx, userID, itemID)
		if err != nil {
			return err
		}
		if list.Aggregate {
			return listsdomain.ErrAggregateListImmutable
		}
		aggregate, err := lockAggregate(ctx, tx, list)
		if err != nil {
			return err
		}

		snapshot := domainsvcs.Snapshot(item)
		if err := tx.DeleteItem(ctx, item.ID); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}

		aggItem, err := domainsvcs.NewAggregateSync(tx).RemoveItem(ctx, aggregate, snapshot)
		if err != nil {
			return err
		}

		if err := tx.PublishListChanged(ctx, domainevents.NewListChangedEvent(list.GameID, list.Family)); err != nil {
			return err
		}
		if aggItem == nil {
			out = &ItemMutation{Status: StatusNoContent}
		} else {
			out = &ItemMutation{Status: StatusOK, Items: []*models.Item{aggItem}}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// lockAggregate locks the aggregate list backing a regular list. Every
// regular list must have one; absence is corruption, not user error.
func lockAggregate(ctx context.Context, tx repositories.TxStore, list *models.List) (*models.List, error) {
	aggregate, err := tx.AggregateListForUpdate(ctx, list.GameID, list.Family)
	if err != nil {
		if errors.Is(err, listsdomain.ErrListNotFound) {
			return nil, fmt.Errorf("%w: regular list %s has no aggregate list", listsdomain.ErrAggregateOutOfSync, list.ID)
		}
		return nil, err
	}
	return aggregate, nil
}

func nullWeight(w *decimal.Decimal) decimal.NullDecimal {
	if w == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *w, Valid: true}
}
