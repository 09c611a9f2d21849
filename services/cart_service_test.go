package services

import (
	"errors"
	"testing"

	"github.com/PhamKien043/datn-sub000/entity"
	"github.com/PhamKien043/datn-sub000/repository"
	"gorm.io/gorm"
)

func TestLargeChange(t *testing.T) {
	tests := []struct {
		current int
		next    int
		want    bool
	}{
		{1, 2, false},  // diff 1 <= max(2,1)
		{1, 3, false},  // diff 2 <= 2
		{1, 4, true},   // diff 3 > 2
		{10, 15, false}, // diff 5 <= 10
		{10, 21, true},  // diff 11 > 10
		{10, 20, false}, // diff 10 == 10
		{30, 5, false},  // diff 25 <= 30
		{5, 20, true},   // diff 15 > 5
	}

	for _, tt := range tests {
		if got := largeChange(tt.current, tt.next); got != tt.want {
			t.Errorf("largeChange(%d, %d) = %v, want %v", tt.current, tt.next, got, tt.want)
		}
	}
}

func newCartService(t *testing.T, db *gorm.DB) *CartService {
	t.Helper()
	return NewCartService(db,
		repository.NewCartRepository(db),
		repository.NewMenuRepository(db),
		repository.NewCatalogRepository(db),
	)
}

func seedMenu(t *testing.T, db *gorm.DB, name string, price int64) entity.Menu {
	t.Helper()
	m := entity.Menu{Name: name, Price: price, MenuStatusID: menuStatusID(t, db, "Available")}
	mustCreate(t, db, &m)
	return m
}

func TestTableCountSyncsEveryLine(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	user := entity.User{Email: "cart@t.t", Role: "customer"}
	mustCreate(t, db, &user)
	m1 := seedMenu(t, db, "Set A", 200_000)
	m2 := seedMenu(t, db, "Set B", 350_000)

	if err := svc.AddItem(user.ID, m1.ID); err != nil {
		t.Fatalf("add m1: %v", err)
	}
	if err := svc.AddItem(user.ID, m2.ID); err != nil {
		t.Fatalf("add m2: %v", err)
	}

	if err := svc.SetTableCount(user.ID, 3, false); err != nil {
		t.Fatalf("set count: %v", err)
	}

	cart, subtotal, err := svc.Get(user.ID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if cart.TableCount != 3 {
		t.Fatalf("table count = %d, want 3", cart.TableCount)
	}
	for _, it := range cart.Items {
		if it.Qty != 3 {
			t.Errorf("line %d qty = %d, want 3", it.MenuID, it.Qty)
		}
		if it.Total != it.UnitPrice*3 {
			t.Errorf("line %d total = %d, want %d", it.MenuID, it.Total, it.UnitPrice*3)
		}
	}
	if want := int64(3)*(200_000+350_000); subtotal != want {
		t.Errorf("subtotal = %d, want %d", subtotal, want)
	}
}

func TestTableCountGuard(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	user := entity.User{Email: "guard@t.t", Role: "customer"}
	mustCreate(t, db, &user)
	m := seedMenu(t, db, "Set C", 100_000)
	if err := svc.AddItem(user.ID, m.ID); err != nil {
		t.Fatalf("add: %v", err)
	}

	// 1 → 20 is a large jump; rejected without confirm
	err := svc.SetTableCount(user.ID, 20, false)
	if !errors.Is(err, ErrConfirmRequired) {
		t.Fatalf("large change = %v, want ErrConfirmRequired", err)
	}

	// confirm bypasses the guard
	if err := svc.SetTableCount(user.ID, 20, true); err != nil {
		t.Fatalf("confirmed change: %v", err)
	}
	cart, _, _ := svc.Get(user.ID)
	if cart.TableCount != 20 {
		t.Fatalf("table count = %d, want 20", cart.TableCount)
	}

	// bounds are hard errors regardless of confirm
	if err := svc.SetTableCount(user.ID, 0, true); !errors.Is(err, ErrTableCountRange) {
		t.Fatalf("count 0 = %v, want ErrTableCountRange", err)
	}
	if err := svc.SetTableCount(user.ID, 51, true); !errors.Is(err, ErrTableCountRange) {
		t.Fatalf("count 51 = %v, want ErrTableCountRange", err)
	}
}

func TestAddItemUsesTableCount(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	user := entity.User{Email: "qty@t.t", Role: "customer"}
	mustCreate(t, db, &user)
	m1 := seedMenu(t, db, "Set D", 150_000)

	if err := svc.AddItem(user.ID, m1.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.SetTableCount(user.ID, 2, false); err != nil {
		t.Fatalf("set count: %v", err)
	}

	// a menu added after the count change picks it up
	m2 := seedMenu(t, db, "Set E", 90_000)
	if err := svc.AddItem(user.ID, m2.ID); err != nil {
		t.Fatalf("add second: %v", err)
	}

	cart, _, _ := svc.Get(user.ID)
	if len(cart.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(cart.Items))
	}
	for _, it := range cart.Items {
		if it.Qty != 2 {
			t.Errorf("line %d qty = %d, want 2", it.MenuID, it.Qty)
		}
	}
}

func TestAddUnavailableMenu(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	user := entity.User{Email: "una@t.t", Role: "customer"}
	mustCreate(t, db, &user)

	m := entity.Menu{Name: "Gone", Price: 10_000, MenuStatusID: menuStatusID(t, db, "Unavailable")}
	mustCreate(t, db, &m)

	if err := svc.AddItem(user.ID, m.ID); !errors.Is(err, ErrMenuUnavailable) {
		t.Fatalf("add unavailable = %v, want ErrMenuUnavailable", err)
	}
}

func TestRemoveAndClear(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	user := entity.User{Email: "rm@t.t", Role: "customer"}
	mustCreate(t, db, &user)
	m := seedMenu(t, db, "Set F", 80_000)
	if err := svc.AddItem(user.ID, m.ID); err != nil {
		t.Fatalf("add: %v", err)
	}

	cart, _, _ := svc.Get(user.ID)
	if len(cart.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(cart.Items))
	}

	if err := svc.RemoveItem(user.ID, cart.Items[0].ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	cart, subtotal, _ := svc.Get(user.ID)
	if len(cart.Items) != 0 || subtotal != 0 {
		t.Fatalf("after remove: items=%d subtotal=%d", len(cart.Items), subtotal)
	}

	if err := svc.AddItem(user.ID, m.ID); err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if err := svc.Clear(user.ID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	cart, _, _ = svc.Get(user.ID)
	if len(cart.Items) != 0 {
		t.Fatalf("after clear: items=%d", len(cart.Items))
	}
	if cart.TableCount != 1 {
		t.Fatalf("clear should reset table count, got %d", cart.TableCount)
	}
}
