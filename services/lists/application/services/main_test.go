package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	pkgcache "github.com/ghuser/skyhoard/pkg/cache"
	listsdomain "github.com/ghuser/skyhoard/services/lists/domain"
	"github.com/ghuser/skyhoard/services/lists/domain/events"
	"github.com/ghuser/skyhoard/services/lists/domain/models"
	"github.com/ghuser/skyhoard/services/lists/domain/repositories"
)

// fakeRepo is an in-memory ListRepository. WithTx hands the service the same
// backing store, so "transactions" always commit; rollback behavior is the
// caller returning an error before any assertion reads the store.
type fakeRepo struct {
	userID uuid.UUID
	games  map[uuid.UUID]bool
	lists  []*models.List
	items  []*models.Item
	events []events.ListChangedEvent
}

func newFakeRepo(userID uuid.UUID, gameIDs ...uuid.UUID) *fakeRepo {
	games := make(map[uuid.UUID]bool, len(gameIDs))
	for _, id := range gameIDs {
		games[id] = true
	}
	return &fakeRepo{userID: userID, games: games}
}

func (r *fakeRepo) WithTx(_ context.Context, fn func(tx repositories.TxStore) error) error {
	return fn(&fakeTx{repo: r})
}

func (r *fakeRepo) GameOwned(_ context.Context, userID, gameID uuid.UUID) (bool, error) {
	return userID == r.userID && r.games[gameID], nil
}

func (r *fakeRepo) GameLists(_ context.Context, userID, gameID uuid.UUID, family models.Family) ([]*models.List, error) {
	if userID != r.userID || !r.games[gameID] {
		return nil, listsdomain.ErrGameNotFound
	}
	var out []*models.List
	for _, l := range r.lists {
		if l.GameID == gameID && l.Family == family && l.Aggregate {
			out = append(out, l)
		}
	}
	for _, l := range r.lists {
		if l.GameID == gameID && l.Family == family && !l.Aggregate {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetList(_ context.Context, userID, listID uuid.UUID) (*models.List, error) {
	if userID != r.userID {
		return nil, listsdomain.ErrListNotFound
	}
	return r.findList(listID)
}

func (r *fakeRepo) AggregateList(_ context.Context, userID, gameID uuid.UUID, family models.Family) (*models.List, error) {
	if userID != r.userID || !r.games[gameID] {
		return nil, listsdomain.ErrGameNotFound
	}
	for _, l := range r.lists {
		if l.GameID == gameID && l.Family == family && l.Aggregate {
			return l, nil
		}
	}
	return nil, listsdomain.ErrListNotFound
}

func (r *fakeRepo) ItemsForList(_ context.Context, listID uuid.UUID) ([]*models.Item, error) {
	var out []*models.Item
	for _, it := range r.items {
		if it.ListID == listID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeRepo) AggregateDrift(context.Context) ([]repositories.DriftRow, error) {
	return nil, nil
}

func (r *fakeRepo) findList(listID uuid.UUID) (*models.List, error) {
	for _, l := range r.lists {
		if l.ID == listID {
			return l, nil
		}
	}
	return nil, listsdomain.ErrListNotFound
}

// fakeTx implements repositories.TxStore over the fakeRepo's state.
type fakeTx struct {
	repo *fakeRepo
}

func (t *fakeTx) LockGame(_ context.Context, userID, gameID uuid.UUID) error {
	if userID != t.repo.userID || !t.repo.games[gameID] {
		return listsdomain.ErrGameNotFound
	}
	return nil
}

func (t *fakeTx) ListForUpdate(_ context.Context, userID, listID uuid.UUID) (*models.List, error) {
	if userID != t.repo.userID {
		return nil, listsdomain.ErrListNotFound
	}
	return t.repo.findList(listID)
}

func (t *fakeTx) AggregateListForUpdate(_ context.Context, gameID uuid.UUID, family models.Family) (*models.List, error) {
	for _, l := range t.repo.lists {
		if l.GameID == gameID && l.Family == family && l.Aggregate {
			return l, nil
		}
	}
	return nil, listsdomain.ErrListNotFound
}

func (t *fakeTx) RegularListCount(_ context.Context, gameID uuid.UUID, family models.Family) (int, error) {
	n := 0
	for _, l := range t.repo.lists {
		if l.GameID == gameID && l.Family == family && !l.Aggregate {
			n++
		}
	}
	return n, nil
}

func (t *fakeTx) ListTitleTaken(_ context.Context, gameID uuid.UUID, family models.Family, title string, exclude uuid.UUID) (bool, error) {
	for _, l := range t.repo.lists {
		if l.GameID == gameID && l.Family == family && l.ID != exclude && models.SameDescription(l.Title, title) {
			return true, nil
		}
	}
	return false, nil
}

func (t *fakeTx) InsertList(_ context.Context, list *models.List) error {
	t.repo.lists = append(t.repo.lists, list)
	return nil
}

func (t *fakeTx) UpdateList(context.Context, *models.List) error { return nil }

// DeleteList mirrors the schema's ON DELETE CASCADE for list_items.
func (t *fakeTx) DeleteList(_ context.Context, id uuid.UUID) error {
	for i, l := range t.repo.lists {
		if l.ID == id {
			t.repo.lists = append(t.repo.lists[:i], t.repo.lists[i+1:]...)
			break
		}
	}
	kept := t.repo.items[:0]
	for _, it := range t.repo.items {
		if it.ListID != id {
			kept = append(kept, it)
		}
	}
	t.repo.items = kept
	return nil
}

func (t *fakeTx) ItemForUpdate(_ context.Context, userID, itemID uuid.UUID) (*models.Item, *models.List, error) {
	if userID != t.repo.userID {
		return nil, nil, listsdomain.ErrItemNotFound
	}
	for _, it := range t.repo.items {
		if it.ID == itemID {
			list, err := t.repo.findList(it.ListID)
			if err != nil {
				return nil, nil, err
			}
			return it, list, nil
		}
	}
	return nil, nil, listsdomain.ErrItemNotFound
}

func (t *fakeTx) ItemOnList(_ context.Context, listID uuid.UUID, key string) (*models.Item, error) {
	for _, it := range t.repo.items {
		if it.ListID == listID && it.DescriptionKey() == key {
			return it, nil
		}
	}
	return nil, listsdomain.ErrItemNotFound
}

func (t *fakeTx) ItemsOnList(_ context.Context, listID uuid.UUID) ([]*models.Item, error) {
	var out []*models.Item
	for _, it := range t.repo.items {
		if it.ListID == listID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (t *fakeTx) AggregateItem(ctx context.Context, aggregateListID uuid.UUID, key string) (*models.Item, error) {
	return t.ItemOnList(ctx, aggregateListID, key)
}

func (t *fakeTx) RegularItems(_ context.Context, gameID uuid.UUID, family models.Family, key string, exclude ...uuid.UUID) ([]*models.Item, error) {
	excluded := func(id uuid.UUID) bool {
		for _, e := range exclude {
			if e == id {
				return true
			}
		}
		return false
	}
	var out []*models.Item
	for _, it := range t.repo.items {
		if it.DescriptionKey() != key || excluded(it.ID) {
			continue
		}
		for _, l := range t.repo.lists {
			if l.ID == it.ListID && l.GameID == gameID && l.Family == family && !l.Aggregate {
				out = append(out, it)
			}
		}
	}
	return out, nil
}

func (t *fakeTx) InsertItem(_ context.Context, item *models.Item) error {
	t.repo.items = append(t.repo.items, item)
	return nil
}

func (t *fakeTx) UpdateItem(_ context.Context, item *models.Item) error {
	for i, it := range t.repo.items {
		if it.ID == item.ID {
			t.repo.items[i] = item
			return nil
		}
	}
	return listsdomain.ErrItemNotFound
}

func (t *fakeTx) DeleteItem(_ context.Context, id uuid.UUID) error {
	for i, it := range t.repo.items {
		if it.ID == id {
			t.repo.items = append(t.repo.items[:i], t.repo.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (t *fakeTx) PublishListChanged(_ context.Context, event events.ListChangedEvent) error {
	t.repo.events = append(t.repo.events, event)
	return nil
}

// fakeSnapshotCache is an in-memory SnapshotCache. The mutex covers the
// asynchronous warm AggregateView performs after a miss.
type fakeSnapshotCache struct {
	mu    sync.Mutex
	snaps map[string]*pkgcache.CachedAggregateList
}

func newFakeSnapshotCache() *fakeSnapshotCache {
	return &fakeSnapshotCache{snaps: map[string]*pkgcache.CachedAggregateList{}}
}

func (c *fakeSnapshotCache) Get(_ context.Context, gameID uuid.UUID, family string) (*pkgcache.CachedAggregateList, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if snap, ok := c.snaps[gameID.String()+":"+family]; ok {
		return snap, nil
	}
	return nil, errors.New("cache miss")
}

func (c *fakeSnapshotCache) Set(_ context.Context, snap *pkgcache.CachedAggregateList) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snaps[snap.GameID.String()+":"+snap.Family] = snap
	return nil
}

// --- shared helpers ---

func wgt(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func wgtp(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func notep(s string) *string { return &s }

func intp(n int) *int { return &n }
