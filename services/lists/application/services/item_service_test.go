package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	listsdomain "github.com/ghuser/skyhoard/services/lists/domain"
	"github.com/ghuser/skyhoard/services/lists/domain/models"
)

type itemFixture struct {
	repo    *fakeRepo
	listSvc *ListService
	itemSvc *ItemService
	userID  uuid.UUID
	gameID  uuid.UUID
	aggID   uuid.UUID
	listA   uuid.UUID
	listB   uuid.UUID
}

func newItemFixture(t *testing.T) *itemFixture {
	t.Helper()
	ctx := context.Background()
	userID, gameID := uuid.New(), uuid.New()
	repo := newFakeRepo(userID, gameID)
	listSvc := NewListService(repo, nil)
	itemSvc := NewItemService(repo)

	first, err := listSvc.Create(ctx, userID, gameID, models.FamilyShopping, "List A", false)
	if err != nil {
		t.Fatalf("create list: %v", err)
	}
	second, err := listSvc.Create(ctx, userID, gameID, models.FamilyShopping, "List B", false)
	if err != nil {
		t.Fatalf("create list: %v", err)
	}
	return &itemFixture{
		repo:    repo,
		listSvc: listSvc,
		itemSvc: itemSvc,
		userID:  userID,
		gameID:  gameID,
		aggID:   first.Lists[0].List.ID,
		listA:   first.Lists[1].List.ID,
		listB:   second.Lists[0].List.ID,
	}
}

func TestItemService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("new item creates its aggregate counterpart", func(t *testing.T) {
		fx := newItemFixture(t)
		res, err := fx.itemSvc.Create(ctx, fx.userID, fx.listA, CreateItemAttrs{
			Description: "Iron Ingot", Quantity: 3, UnitWeight: wgtp("1"), Notes: notep("for smithing"),
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if res.Status != StatusCreated {
			t.Errorf("status = %v, want StatusCreated", res.Status)
		}
		if len(res.Items) != 2 {
			t.Fatalf("items = %d, want aggregate + source", len(res.Items))
		}
		agg, src := res.Items[0], res.Items[1]
		if agg.ListID != fx.aggID {
			t.Errorf("first item on list %s, want the aggregate list first", agg.ListID)
		}
		if agg.Quantity != 3 || src.Quantity != 3 {
			t.Errorf("quantities = %d/%d, want 3/3", agg.Quantity, src.Quantity)
		}
		if !models.NotesEqual(agg.Notes, notep("for smithing")) {
			t.Errorf("aggregate notes = %v, want copied", agg.Notes)
		}
	})

	t.Run("same description on the same list merges", func(t *testing.T) {
		fx := newItemFixture(t)
		if _, err := fx.itemSvc.Create(ctx, fx.userID, fx.listA, CreateItemAttrs{Description: "Iron Ingot", Quantity: 2}); err != nil {
			t.Fatalf("Create: %v", err)
		}
		res, err := fx.itemSvc.Create(ctx, fx.userID, fx.listA, CreateItemAttrs{Description: "IRON INGOT", Quantity: 5})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if res.Status != StatusOK {
			t.Errorf("status = %v, want StatusOK for a merge", res.Status)
		}
		agg, src := res.Items[0], res.Items[1]
		if src.Quantity != 7 || agg.Quantity != 7 {
			t.Errorf("quantities = agg %d / src %d, want 7/7", agg.Quantity, src.Quantity)
		}
		if src.Description != "Iron Ingot" {
			t.Errorf("description = %q, want original casing kept", src.Description)
		}
	})

	t.Run("same description on a sibling list merges only the aggregate", func(t *testing.T) {
		fx := newItemFixture(t)
		if _, err := fx.itemSvc.Create(ctx, fx.userID, fx.listA, CreateItemAttrs{Description: "Iron Ingot", Quantity: 2}); err != nil {
			t.Fatalf("Create: %v", err)
		}
		res, err := fx.itemSvc.Create(ctx, fx.userID, fx.listB, CreateItemAttrs{Description: "iron ingot", Quantity: 5})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if res.Status != StatusOK {
			t.Errorf("status = %v, want StatusOK when the aggregate already tracked the description", res.Status)
		}
		if res.Items[0].Quantity != 7 {
			t.Errorf("aggregate quantity = %d, want 7", res.Items[0].Quantity)
		}
		if res.Items[1].Quantity != 5 {
			t.Errorf("source quantity = %d, want 5", res.Items[1].Quantity)
		}
	})

	t.Run("new description on a sibling list is still a creation", func(t *testing.T) {
		fx := newItemFixture(t)
		if _, err := fx.itemSvc.Create(ctx, fx.userID, fx.listA, CreateItemAttrs{Description: "Iron Ingot", Quantity: 2}); err != nil {
			t.Fatalf("Create: %v", err)
		}
		res, err := fx.itemSvc.Create(ctx, fx.userID, fx.listB, CreateItemAttrs{Description: "Leather Strips", Quantity: 4})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if res.Status != StatusCreated {
			t.Errorf("status = %v, want StatusCreated for a description new to the family", res.Status)
		}
	})

	t.Run("merge applies supplied weight and notes to the merged row", func(t *testing.T) {
		fx := newItemFixture(t)
		if _, err := fx.itemSvc.Create(ctx, fx.userID, fx.listA, CreateItemAttrs{Description: "Iron Ingot", Quantity: 2}); err != nil {
			t.Fatalf("Create: %v", err)
		}
		res, err := fx.itemSvc.Create(ctx, fx.userID, fx.listA, CreateItemAttrs{
			Description: "iron ingot", Quantity: 5, UnitWeight: wgtp("0.5"), Notes: notep("for smithing"),
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if res.Status != StatusOK {
			t.Errorf("status = %v, want StatusOK for a merge", res.Status)
		}
		agg, src := res.Items[0], res.Items[1]
		if src.Quantity != 7 {
			t.Errorf("merged quantity = %d, want 7", src.Quantity)
		}
		if !models.UnitWeightEqual(src.UnitWeight, wgt("0.5")) {
			t.Errorf("merged weight = %v, want 0.5", src.UnitWeight)
		}
		if !models.NotesEqual(src.Notes, notep("for smithing")) {
			t.Errorf("merged notes = %v, want adopted", src.Notes)
		}
		if !models.UnitWeightEqual(agg.UnitWeight, wgt("0.5")) {
			t.Errorf("aggregate weight = %v, want 0.5", agg.UnitWeight)
		}
	})

	t.Run("merge keeps a supplied weight even when the aggregate already has it", func(t *testing.T) {
		fx := newItemFixture(t)
		if _, err := fx.itemSvc.Create(ctx, fx.userID, fx.listA, CreateItemAttrs{
			Description: "Iron Ingot", Quantity: 2, UnitWeight: wgtp("0.5"),
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if _, err := fx.itemSvc.Create(ctx, fx.userID, fx.listB, CreateItemAttrs{Description: "Iron Ingot", Quantity: 1}); err != nil {
			t.Fatalf("Create: %v", err)
		}

		// Matches the aggregate's weight, so no fan-out; the merged row must
		// still pick it up.
		res, err := fx.itemSvc.Create(ctx, fx.userID, fx.listB, CreateItemAttrs{
			Description: "Iron Ingot", Quantity: 1, UnitWeight: wgtp("0.5"),
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if !models.UnitWeightEqual(res.Items[1].UnitWeight, wgt("0.5")) {
			t.Errorf("merged weight = %v, want 0.5", res.Items[1].UnitWeight)
		}
	})

	t.Run("differing unit weight fans out game-wide", func(t *testing.T) {
		fx := newItemFixture(t)
		if _, err := fx.itemSvc.Create(ctx, fx.userID, fx.listA, CreateItemAttrs{
			Description: "Iron Ingot", Quantity: 1, UnitWeight: wgtp("1"),
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
		res, err := fx.itemSvc.Create(ctx, fx.userID, fx.listB, CreateItemAttrs{
			Description: "Iron Ingot", Quantity: 1, UnitWeight: wgtp("2.5"),
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		// aggregate + source + the fanned-out sibling on list A
		if len(res.Items) != 3 {
			t.Fatalf("items = %d, want 3", len(res.Items))
		}
		for _, it := range res.Items {
			if !models.UnitWeightEqual(it.UnitWeight, wgt("2.5")) {
				t.Errorf("item %s weight = %v, want 2.5 everywhere", it.ID, it.UnitWeight)
			}
		}
	})

	t.Run("rejects items on the aggregate list", func(t *testing.T) {
		fx := newItemFixture(t)
		_, err := fx.itemSvc.Create(ctx, fx.userID, fx.aggID, CreateItemAttrs{Description: "Iron Ingot", Quantity: 1})
		if !errors.Is(err, listsdomain.ErrAggregateListImmutable) {
			t.Fatalf("err = %v, want ErrAggregateListImmutable", err)
		}
	})

	t.Run("unknown list", func(t *testing.T) {
		fx := newItemFixture(t)
		_, err := fx.itemSvc.Create(ctx, fx.userID, uuid.New(), CreateItemAttrs{Description: "Iron Ingot", Quantity: 1})
		if !errors.Is(err, listsdomain.ErrListNotFound) {
			t.Fatalf("err = %v, want ErrListNotFound", err)
		}
	})

	t.Run("invalid attributes", func(t *testing.T) {
		fx := newItemFixture(t)
		_, err := fx.itemSvc.Create(ctx, fx.userID, fx.listA, CreateItemAttrs{Description: "", Quantity: 1})
		if !errors.Is(err, listsdomain.ErrInvalidItem) {
			t.Fatalf("err = %v, want ErrInvalidItem", err)
		}
	})
}

func TestItemService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("quantity propagates as a delta", func(t *testing.T) {
		fx := newItemFixture(t)
		if _, err := fx.itemSvc.Create(ctx, fx.userID, fx.listA, CreateItemAttrs{Description: "Iron Ingot", Quantity: 2}); err != nil {
			t.Fatalf("Create: %v", err)
		}
		created, err := fx.itemSvc.Create(ctx, fx.userID, fx.listB, CreateItemAttrs{Description: "Iron Ingot", Quantity: 5})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		res, err := fx.itemSvc.Update(ctx, fx.userID, created.Items[1].ID, UpdateItemAttrs{Quantity: intp(1)})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if res.Items[0].Quantity != 3 {
			t.Errorf("aggregate quantity = %d, want 3 (7 - 4)", res.Items[0].Quantity)
		}
		if res.Items[1].Quantity != 1 {
			t.Errorf("item quantity = %d, want 1", res.Items[1].Quantity)
		}
	})

	t.Run("no-op update returns the item unchanged", func(t *testing.T) {
		fx := newItemFixture(t)
		created, err := fx.itemSvc.Create(ctx, fx.userID, fx.listA, CreateItemAttrs{Description: "Iron Ingot", Quantity: 2})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		eventsBefore := len(fx.repo.events)

		res, err := fx.itemSvc.Update(ctx, fx.userID, created.Items[1].ID, UpdateItemAttrs{Quantity: intp(2)})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if res.Status != StatusOK || len(res.Items) != 1 {
			t.Errorf("result = %+v, want just the untouched item", res)
		}
		if len(fx.repo.events) != eventsBefore {
			t.Errorf("no-op update published an event")
		}
	})

	t.Run("unit weight fans out to siblings", func(t *testing.T) {
		fx := newItemFixture(t)
		first, err := fx.itemSvc.Create(ctx, fx.userID, fx.listA, CreateItemAttrs{
			Description: "Iron Ingot", Quantity: 1, UnitWeight: wgtp("1"),
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if _, err := fx.itemSvc.Create(ctx, fx.userID, fx.listB, CreateItemAttrs{
			Description: "iron ingot", Quantity: 1, UnitWeight: wgtp("1"),
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}

		res, err := fx.itemSvc.Update(ctx, fx.userID, first.Items[1].ID, UpdateItemAttrs{UnitWeight: wgtp("2.5")})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		// aggregate + updated item + sibling
		if len(res.Items) != 3 {
			t.Fatalf("items = %d, want 3", len(res.Items))
		}
		for _, it := range res.Items {
			if !models.UnitWeightEqual(it.UnitWeight, wgt("2.5")) {
				t.Errorf("item %s weight = %v, want 2.5", it.ID, it.UnitWeight)
			}
		}
	})

	t.Run("rejects invalid values before touching state", func(t *testing.T) {
		fx := newItemFixture(t)
		created, err := fx.itemSvc.Create(ctx, fx.userID, fx.listA, CreateItemAttrs{Description: "Iron Ingot", Quantity: 2})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		if _, err := fx.itemSvc.Update(ctx, fx.userID, created.Items[1].ID, UpdateItemAttrs{Quantity: intp(0)}); !errors.Is(err, listsdomain.ErrInvalidItem) {
			t.Errorf("zero quantity: err = %v, want ErrInvalidItem", err)
		}
		if _, err := fx.itemSvc.Update(ctx, fx.userID, created.Items[1].ID, UpdateItemAttrs{UnitWeight: wgtp("-1")}); !errors.Is(err, listsdomain.ErrInvalidItem) {
			t.Errorf("negative weight: err = %v, want ErrInvalidItem", err)
		}
	})

	t.Run("rejects aggregate items", func(t *testing.T) {
		fx := newItemFixture(t)
		created, err := fx.itemSvc.Create(ctx, fx.userID, fx.listA, CreateItemAttrs{Description: "Iron Ingot", Quantity: 2})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		_, err = fx.itemSvc.Update(ctx, fx.userID, created.Items[0].ID, UpdateItemAttrs{Quantity: intp(5)})
		if !errors.Is(err, listsdomain.ErrAggregateListImmutable) {
			t.Fatalf("err = %v, want ErrAggregateListImmutable", err)
		}
	})
}

func TestItemService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("last contributor removes the aggregate item", func(t *testing.T) {
		fx := newItemFixture(t)
		created, err := fx.itemSvc.Create(ctx, fx.userID, fx.listA, CreateItemAttrs{Description: "Iron Ingot", Quantity: 3})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		res, err := fx.itemSvc.Delete(ctx, fx.userID, created.Items[1].ID)
		if err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if res.Status != StatusNoContent {
			t.Errorf("status = %v, want StatusNoContent", res.Status)
		}
		if len(fx.repo.items) != 0 {
			t.Errorf("items remaining = %d, want 0", len(fx.repo.items))
		}
	})

	t.Run("surviving contributors decrement the aggregate item", func(t *testing.T) {
		fx := newItemFixture(t)
		first, err := fx.itemSvc.Create(ctx, fx.userID, fx.listA, CreateItemAttrs{Description: "Iron Ingot", Quantity: 3})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if _, err := fx.itemSvc.Create(ctx, fx.userID, fx.listB, CreateItemAttrs{Description: "Iron Ingot", Quantity: 4}); err != nil {
			t.Fatalf("Create: %v", err)
		}

		res, err := fx.itemSvc.Delete(ctx, fx.userID, first.Items[1].ID)
		if err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if res.Status != StatusOK {
			t.Errorf("status = %v, want StatusOK", res.Status)
		}
		if len(res.Items) != 1 || res.Items[0].Quantity != 4 {
			t.Errorf("items = %+v, want the aggregate item at quantity 4", res.Items)
		}
	})

	t.Run("rejects aggregate items", func(t *testing.T) {
		fx := newItemFixture(t)
		created, err := fx.itemSvc.Create(ctx, fx.userID, fx.listA, CreateItemAttrs{Description: "Iron Ingot", Quantity: 3})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		_, err = fx.itemSvc.Delete(ctx, fx.userID, created.Items[0].ID)
		if !errors.Is(err, listsdomain.ErrAggregateListImmutable) {
			t.Fatalf("err = %v, want ErrAggregateListImmutable", err)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		fx := newItemFixture(t)
		_, err := fx.itemSvc.Delete(ctx, fx.userID, uuid.New())
		if !errors.Is(err, listsdomain.ErrItemNotFound) {
			t.Fatalf("err = %v, want ErrItemNotFound", err)
		}
	})
}
