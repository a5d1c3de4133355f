package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	pkgcache "github.com/ghuser/skyhoard/pkg/cache"
	listsdomain "github.com/ghuser/skyhoard/services/lists/domain"
	domainevents "github.com/ghuser/skyhoard/services/lists/domain/events"
	"github.com/ghuser/skyhoard/services/lists/domain/models"
	"github.com/ghuser/skyhoard/services/lists/domain/repositories"
	domainsvcs "github.com/ghuser/skyhoard/services/lists/domain/services"
)

// ListWithItems pairs a list with its items for response composition.
type ListWithItems struct {
	List  *models.List
	Items []*models.Item
}

// ListMutation is the outcome of a successful list-level mutation.
type ListMutation struct {
	Status Status
	Lists  []ListWithItems
}

// ListService is the list lifecycle manager: it creates and destroys
// aggregate lists as a transactionally-consistent side effect of regular-list
// lifecycle events, and refuses direct client mutation of aggregate lists.
//
// State machine per (game, family): no lists → regular lists with exactly one
// aggregate (entered on first creation) → no lists (entered when the last
// regular list is destroyed). There is never a state with regular lists but
// no aggregate, nor one with only an aggregate.
type ListService struct {
	repo  repositories.ListRepository
	cache SnapshotCache
}

// SnapshotCache stores denormalized aggregate-list snapshots for the
// read-through in AggregateView. Implemented by pkg/cache.AggregateCache.
type SnapshotCache interface {
	Get(ctx context.Context, gameID uuid.UUID, family string) (*pkgcache.CachedAggregateList, error)
	Set(ctx context.Context, snap *pkgcache.CachedAggregateList) error
}

// NewListService returns a ListService wired with the given repository and cache.
func NewListService(repo repositories.ListRepository, aggCache SnapshotCache) *ListService {
	return &ListService{repo: repo, cache: aggCache}
}

// Lists returns all of the (game, family)'s lists with their items, the
// aggregate list first.
func (s *ListService) Lists(ctx context.Context, userID, gameID uuid.UUID, family models.Family) ([]ListWithItems, error) {
	lists, err := s.repo.GameLists(ctx, userID, gameID, family)
	if err != nil {
		return nil, fmt.Errorf("load lists: %w", err)
	}
	out := make([]ListWithItems, 0, len(lists))
	for _, l := range lists {
		items, err := s.repo.ItemsForList(ctx, l.ID)
		if err != nil {
			return nil, fmt.Errorf("load items for list %s: %w", l.ID, err)
		}
		out = append(out, ListWithItems{List: l, Items: items})
	}
	return out, nil
}

// AggregateView returns the (game, family)'s aggregate list with items using
// a read-through cache: Redis snapshot first, Postgres on miss, cache warmed
// asynchronously. The worker invalidates the snapshot on list.changed events.
func (s *ListService) AggregateView(ctx context.Context, userID, gameID uuid.UUID, family models.Family) (*ListWithItems, error) {
	if s.cache != nil {
		if snap, err := s.cache.Get(ctx, gameID, family.String()); err == nil {
			// Snapshots are keyed by game only; confirm ownership before
			// serving one.
			owned, err := s.repo.GameOwned(ctx, userID, gameID)
			if err != nil {
				return nil, fmt.Errorf("check game ownership: %w", err)
			}
			if !owned {
				return nil, listsdomain.ErrGameNotFound
			}
			return snapshotToView(snap), nil
		}
	}

	list, err := s.repo.AggregateList(ctx, userID, gameID, family)
	if err != nil {
		return nil, fmt.Errorf("load aggregate list: %w", err)
	}
	items, err := s.repo.ItemsForList(ctx, list.ID)
	if err != nil {
		return nil, fmt.Errorf("load aggregate items: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), viewToSnapshot(list, items))
		}()
	}
	return &ListWithItems{List: list, Items: items}, nil
}

// snapshotToView rehydrates domain models from the denormalized cache entry.
func snapshotToView(snap *pkgcache.CachedAggregateList) *ListWithItems {
	list := &models.List{
		ID:        snap.ID,
		GameID:    snap.GameID,
		Family:    models.Family(snap.Family),
		Title:     snap.Title,
		Aggregate: true,
		CreatedAt: snap.CreatedAt,
		UpdatedAt: snap.UpdatedAt,
	}
	items := make([]*models.Item, 0, len(snap.Items))
	for _, ci := range snap.Items {
		weight := decimal.NullDecimal{}
		if ci.UnitWeight != nil {
			weight = decimal.NullDecimal{Decimal: *ci.UnitWeight, Valid: true}
		}
		items = append(items, &models.Item{
			ID:          ci.ID,
			ListID:      ci.ListID,
			Description: ci.Description,
			Quantity:    ci.Quantity,
			UnitWeight:  weight,
			Notes:       ci.Notes,
			CreatedAt:   ci.CreatedAt,
			UpdatedAt:   ci.UpdatedAt,
		})
	}
	return &ListWithItems{List: list, Items: items}
}

func viewToSnapshot(list *models.List, items []*models.Item) *pkgcache.CachedAggregateList {
	snap := &pkgcache.CachedAggregateList{
		ID:        list.ID,
		GameID:    list.GameID,
		Family:    list.Family.String(),
		Title:     list.Title,
		CreatedAt: list.CreatedAt,
		UpdatedAt: list.UpdatedAt,
		Items:     make([]pkgcache.CachedAggregateItem, 0, len(items)),
	}
	for _, it := range items {
		var weight *decimal.Decimal
		if it.UnitWeight.Valid {
			w := it.UnitWeight.Decimal
			weight = &w
		}
		snap.Items = append(snap.Items, pkgcache.CachedAggregateItem{
			ID:          it.ID,
			ListID:      it.ListID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitWeight:  weight,
			Notes:       it.Notes,
			CreatedAt:   it.CreatedAt,
			UpdatedAt:   it.UpdatedAt,
		})
	}
	return snap
}

// Create adds a regular list to the game, lazily creating the family's
// aggregate list in the same transaction when this is the game's first
// regular list of the family. Returns both lists when the aggregate was just
// created, otherwise only the new list.
//
// aggregateAttr is the client-supplied aggregate flag, accepted only to be
// rejected: aggregate lists are never client-created.
func (s *ListService) Create(ctx context.Context, userID, gameID uuid.UUID, family models.Family, title string, aggregateAttr bool) (*ListMutation, error) {
	if aggregateAttr {
		return nil, fmt.Errorf("%w: cannot manually create an aggregate list", listsdomain.ErrInvalidList)
	}

	var out *ListMutation
	err := s.repo.WithTx(ctx, func(tx repositories.TxStore) error {
		if err := tx.LockGame(ctx, userID, gameID); err != nil {
			return err
		}

		aggregate, err := tx.AggregateListForUpdate(ctx, gameID, family)
		createdAggregate := false
		if errors.Is(err, listsdomain.ErrListNotFound) {
			aggregate = models.NewAggregateList(gameID, family)
			if err := tx.InsertList(ctx, aggregate); err != nil {
				return fmt.Errorf("insert aggregate list: %w", err)
			}
			createdAggregate = true
		} else if err != nil {
			return err
		}

		if title == "" {
			count, err := tx.RegularListCount(ctx, gameID, family)
			if err != nil {
				return err
			}
			title = models.DefaultListTitle(count)
		}

		taken, err := tx.ListTitleTaken(ctx, gameID, family, title, uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: title %q is already taken", listsdomain.ErrInvalidList, title)
		}

		list, err := models.NewList(gameID, family, title, aggregate.ID)
		if err != nil {
			return fmt.Errorf("%w: %w", listsdomain.ErrInvalidList, err)
		}
		if err := tx.InsertList(ctx, list); err != nil {
			return fmt.Errorf("insert list: %w", err)
		}

		if err := tx.PublishListChanged(ctx, domainevents.NewListChangedEvent(gameID, family)); err != nil {
			return err
		}

		lists := []ListWithItems{{List: list, Items: []*models.Item{}}}
		if createdAggregate {
			lists = append([]ListWithItems{{List: aggregate, Items: []*models.Item{}}}, lists...)
		}
		out = &ListMutation{Status: StatusCreated, Lists: lists}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Rename changes a regular list's title. Aggregate lists cannot be renamed,
// and a regular list cannot be converted into an aggregate one.
func (s *ListService) Rename(ctx context.Context, userID, listID uuid.UUID, title string, aggregateAttr bool) (*models.List, error) {
	if aggregateAttr {
		return nil, fmt.Errorf("%w: cannot convert a list into an aggregate list", listsdomain.ErrInvalidList)
	}

	var out *models.List
	err := s.repo.WithTx(ctx, func(tx repositories.TxStore) error {
		list, err := tx.ListForUpdate(ctx, userID, listID)
		if err != nil {
			return err
		}
		if list.Aggregate {
			return listsdomain.ErrAggregateListImmutable
		}

		taken, err := tx.ListTitleTaken(ctx, list.GameID, list.Family, title, list.ID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: title %q is already taken", listsdomain.ErrInvalidList, title)
		}

		if err := list.Rename(title); err != nil {
			return fmt.Errorf("%w: %w", listsdomain.ErrInvalidList, err)
		}
		if err := tx.UpdateList(ctx, list); err != nil {
			return fmt.Errorf("update list: %w", err)
		}
		out = list
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete destroys a regular list: every item is first removed from the
// aggregate list through the synchronizer, then the list itself is deleted,
// and — when it was the game's last regular list of the family — the
// now-empty aggregate list is deleted in the same transaction. The result is
// the surviving aggregate list with its items, or NoContent when the
// aggregate went with it.
func (s *ListService) Delete(ctx context.Context, userID, listID uuid.UUID) (*ListMutation, error) {
	var out *ListMutation
	err := s.repo.WithTx(ctx, func(tx repositories.TxStore) error {
		list, err := tx.ListForUpdate(ctx, userID, listID)
		if err != nil {
			return err
		}
		if list.Aggregate {
			return listsdomain.ErrAggregateListImmutable
		}

		aggregate, err := tx.AggregateListForUpdate(ctx, list.GameID, list.Family)
		if err != nil {
			if errors.Is(err, listsdomain.ErrListNotFound) {
				return fmt.Errorf("%w: regular list %s has no aggregate list", listsdomain.ErrAggregateOutOfSync, list.ID)
			}
			return err
		}

		sync := domainsvcs.NewAggregateSync(tx)
		items, err := tx.ItemsOnList(ctx, list.ID)
		if err != nil {
			return err
		}
		for _, item := range items {
			if _, err := sync.RemoveItem(ctx, aggregate, domainsvcs.Snapshot(item)); err != nil {
				return err
			}
		}

		if err := tx.DeleteList(ctx, list.ID); err != nil {
			return fmt.Errorf("delete list: %w", err)
		}

		remaining, err := tx.RegularListCount(ctx, list.GameID, list.Family)
		if err != nil {
			return err
		}

		if err := tx.PublishListChanged(ctx, domainevents.NewListChangedEvent(list.GameID, list.Family)); err != nil {
			return err
		}

		if remaining == 0 {
			if err := tx.DeleteList(ctx, aggregate.ID); err != nil {
				return fmt.Errorf("delete aggregate list: %w", err)
			}
			out = &ListMutation{Status: StatusNoContent}
			return nil
		}

		aggItems, err := tx.ItemsOnList(ctx, aggregate.ID)
		if err != nil {
			return err
		}
		out = &ListMutation{Status: StatusOK, Lists: []ListWithItems{{List: aggregate, Items: aggItems}}}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
