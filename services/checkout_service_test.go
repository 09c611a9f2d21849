package services

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/PhamKien043/datn-sub000/entity"
	"github.com/PhamKien043/datn-sub000/pkg/vnpay"
	"github.com/PhamKien043/datn-sub000/repository"
	"gorm.io/gorm"
)

type checkoutFixture struct {
	db       *gorm.DB
	svc      *CheckoutService
	carts    *CartService
	vouchers *VoucherService
	gateway  *vnpay.Client
	user     entity.User
	room     entity.Room
	slot     entity.RoomSlot
	menu     entity.Menu
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	db := newTestDB(t)

	cartRepo := repository.NewCartRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	slotRepo := repository.NewSlotRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	voucherRepo := repository.NewVoucherRepository(db)

	gateway := vnpay.New(vnpay.Config{
		TmnCode:    "TESTTMN",
		HashSecret: "topsecret",
		PayURL:     "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		ReturnURL:  "http://localhost:8000/payment/vnpay/return",
	})
	vouchers := NewVoucherService(db, voucherRepo)

	f := &checkoutFixture{
		db:       db,
		svc:      NewCheckoutService(db, cartRepo, catalogRepo, slotRepo, orderRepo, vouchers, gateway),
		carts:    NewCartService(db, cartRepo, repository.NewMenuRepository(db), catalogRepo),
		vouchers: vouchers,
		gateway:  gateway,
	}

	f.user = entity.User{Email: "checkout@t.t", Role: "customer"}
	mustCreate(t, db, &f.user)

	f.room = entity.Room{Name: "Grand Hall", Price: 200_000, Capacity: 300}
	mustCreate(t, db, &f.room)

	f.slot = entity.RoomSlot{
		RoomID: f.room.ID, SlotDate: date("2026-09-20"),
		TimeSlot: entity.SlotMorning, IsAvailable: true,
	}
	mustCreate(t, db, &f.slot)

	f.menu = entity.Menu{Name: "Set A", Price: 200_000, MenuStatusID: menuStatusID(t, db, "Available")}
	mustCreate(t, db, &f.menu)

	return f
}

func (f *checkoutFixture) fillCart(t *testing.T, tables int) {
	t.Helper()
	if err := f.carts.AddItem(f.user.ID, f.menu.ID); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if err := f.carts.SetTableCount(f.user.ID, tables, true); err != nil {
		t.Fatalf("set tables: %v", err)
	}
}

func (f *checkoutFixture) req() *CheckoutReq {
	return &CheckoutReq{
		Method:   "vnpay",
		RoomID:   f.room.ID,
		Date:     "2026-09-20",
		TimeSlot: entity.SlotMorning,
	}
}

func TestCheckoutHappyPath(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, 4) // food 800,000 + room 200,000 = base 1,000,000

	res, err := f.svc.Submit(f.user.ID, "127.0.0.1", f.req())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Success {
		t.Fatal("expected success")
	}
	if res.Quote.BaseTotal != 1_000_000 {
		t.Errorf("base = %d, want 1000000", res.Quote.BaseTotal)
	}
	if res.Quote.DepositAmount != 300_000 {
		t.Errorf("deposit = %d, want 300000", res.Quote.DepositAmount)
	}
	if !strings.Contains(res.URL, "vnp_SecureHash=") {
		t.Errorf("url missing signature: %s", res.URL)
	}
	if !strings.Contains(res.URL, "vnp_Amount=30000000") { // x100
		t.Errorf("url charges wrong amount: %s", res.URL)
	}

	// the slot is held
	var slot entity.RoomSlot
	f.db.First(&slot, f.slot.ID)
	if slot.IsAvailable {
		t.Error("slot should be held after checkout")
	}

	// the cart is cleared
	cart, _, _ := f.carts.Get(f.user.ID)
	if len(cart.Items) != 0 {
		t.Errorf("cart still has %d items", len(cart.Items))
	}

	// the order is pending with a pending deposit payment
	var order entity.Order
	if err := f.db.Preload("OrderStatus").First(&order, res.OrderID).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if order.OrderStatus.StatusName != entity.StatusPending {
		t.Errorf("order status = %s, want pending", order.OrderStatus.StatusName)
	}
	var payment entity.Payment
	if err := f.db.Where("order_id = ?", order.ID).First(&payment).Error; err != nil {
		t.Fatalf("load payment: %v", err)
	}
	if payment.Amount != 300_000 {
		t.Errorf("payment amount = %d, want 300000", payment.Amount)
	}
}

func TestCheckoutPreconditions(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		f := newCheckoutFixture(t)
		if _, err := f.svc.Submit(f.user.ID, "127.0.0.1", f.req()); !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("got %v, want ErrEmptyCart", err)
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.fillCart(t, 1)
		req := f.req()
		req.Method = "cash"
		if _, err := f.svc.Submit(f.user.ID, "127.0.0.1", req); !errors.Is(err, ErrUnknownMethod) {
			t.Fatalf("got %v, want ErrUnknownMethod", err)
		}
	})

	t.Run("no slot for that day", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.fillCart(t, 1)
		req := f.req()
		req.Date = "2026-09-21"
		if _, err := f.svc.Submit(f.user.ID, "127.0.0.1", req); !errors.Is(err, ErrSlotUnavailable) {
			t.Fatalf("got %v, want ErrSlotUnavailable", err)
		}
	})

	t.Run("slot already held", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.fillCart(t, 1)
		f.db.Model(&entity.RoomSlot{}).Where("id = ?", f.slot.ID).Update("is_available", false)
		if _, err := f.svc.Submit(f.user.ID, "127.0.0.1", f.req()); !errors.Is(err, ErrSlotUnavailable) {
			t.Fatalf("got %v, want ErrSlotUnavailable", err)
		}
	})

	t.Run("room missing", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.fillCart(t, 1)
		req := f.req()
		req.RoomID = 999
		if _, err := f.svc.Submit(f.user.ID, "127.0.0.1", req); !errors.Is(err, ErrRoomNotFound) {
			t.Fatalf("got %v, want ErrRoomNotFound", err)
		}
	})
}

func TestCheckoutVoucherConflict(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, 1) // base 400,000

	v := entity.Voucher{
		Code: "BIG", Title: "big orders only", Value: 100_000, MinOrder: 2_000_000,
		Active: true, VoucherTypeID: voucherTypeID(t, f.db, entity.VoucherFixed),
	}
	mustCreate(t, f.db, &v)

	req := f.req()
	req.VoucherID = v.ID

	_, err := f.svc.Submit(f.user.ID, "127.0.0.1", req)
	var vc *VoucherConflictError
	if !errors.As(err, &vc) {
		t.Fatalf("got %v, want VoucherConflictError", err)
	}
	if vc.Cause != "below_min_order" || vc.Severity != SeverityInfo {
		t.Errorf("cause=%s severity=%s, want below_min_order/info", vc.Cause, vc.Severity)
	}

	// the failed submit must not hold the slot
	var slot entity.RoomSlot
	f.db.First(&slot, f.slot.ID)
	if !slot.IsAvailable {
		t.Error("slot held despite rejected checkout")
	}
}

func TestCheckoutAppliesVoucher(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, 4) // base 1,000,000

	v := entity.Voucher{
		Code: "TEN", Title: "10 percent", Value: 10, MinOrder: 500_000,
		Active: true, VoucherTypeID: voucherTypeID(t, f.db, entity.VoucherPercent),
	}
	mustCreate(t, f.db, &v)

	req := f.req()
	req.VoucherID = v.ID

	res, err := f.svc.Submit(f.user.ID, "127.0.0.1", req)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Quote.Discount != 100_000 || res.Quote.FinalTotal != 900_000 || res.Quote.DepositAmount != 270_000 {
		t.Errorf("quote = %+v, want discount 100000 final 900000 deposit 270000", res.Quote)
	}

	// voucher burned for this user
	uv, err := repository.NewVoucherRepository(f.db).GetUserVoucher(f.user.ID, v.ID)
	if err != nil {
		t.Fatalf("user voucher: %v", err)
	}
	if !uv.IsUsed {
		t.Error("voucher should be marked used")
	}

	var order entity.Order
	f.db.First(&order, res.OrderID)
	if order.VoucherID == nil || *order.VoucherID != v.ID {
		t.Error("order should reference the voucher")
	}
}

// gatewayReturn fabricates a signed return callback the way the gateway
// would send it: sorted query, HMAC-SHA512 over the shared secret.
func gatewayReturn(f *checkoutFixture, txnRef string, amount int64, code string) url.Values {
	q := url.Values{}
	q.Set("vnp_TmnCode", "TESTTMN")
	q.Set("vnp_TxnRef", txnRef)
	q.Set("vnp_Amount", fmt.Sprintf("%d", amount*100))
	q.Set("vnp_ResponseCode", code)
	q.Set("vnp_TransactionNo", "14226112")
	q.Set("vnp_BankCode", "NCB")

	mac := hmac.New(sha512.New, []byte("topsecret"))
	mac.Write([]byte(q.Encode()))
	q.Set("vnp_SecureHash", hex.EncodeToString(mac.Sum(nil)))
	return q
}

func TestReturnSuccessAdvancesOrder(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, 4)

	res, err := f.svc.Submit(f.user.ID, "127.0.0.1", f.req())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	var payment entity.Payment
	f.db.Where("order_id = ?", res.OrderID).First(&payment)

	out, err := f.svc.HandleReturn(gatewayReturn(f, payment.TxnRef, payment.Amount, "00"))
	if err != nil {
		t.Fatalf("handle return: %v", err)
	}
	if !out.Paid || out.Status != entity.StatusDepositPaid {
		t.Fatalf("outcome = %+v, want paid deposit_paid", out)
	}

	var order entity.Order
	f.db.Preload("OrderStatus").First(&order, res.OrderID)
	if order.OrderStatus.StatusName != entity.StatusDepositPaid {
		t.Errorf("order status = %s, want deposit_paid", order.OrderStatus.StatusName)
	}

	// replays are rejected
	if _, err := f.svc.HandleReturn(gatewayReturn(f, payment.TxnRef, payment.Amount, "00")); !errors.Is(err, ErrAlreadyProcessed) {
		t.Fatalf("replay = %v, want ErrAlreadyProcessed", err)
	}
}

func TestReturnAfterOrderLeftPending(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, 4)

	res, err := f.svc.Submit(f.user.ID, "127.0.0.1", f.req())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	var payment entity.Payment
	f.db.Where("order_id = ?", res.OrderID).First(&payment)

	// an admin cancels the order before the gateway calls back
	if err := f.db.Model(&entity.Order{}).Where("id = ?", res.OrderID).
		Update("order_status_id", f.svc.Status.ID(entity.StatusCancelled)).Error; err != nil {
		t.Fatalf("cancel order: %v", err)
	}

	if _, err := f.svc.HandleReturn(gatewayReturn(f, payment.TxnRef, payment.Amount, "00")); !errors.Is(err, ErrAlreadyProcessed) {
		t.Fatalf("return on cancelled order = %v, want ErrAlreadyProcessed", err)
	}

	// the lost race must roll the payment update back
	var after entity.Payment
	f.db.First(&after, payment.ID)
	if after.PaidAt != nil {
		t.Error("payment marked paid despite losing the status race")
	}
}

func TestReturnFailureReleasesEverything(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, 4)

	v := entity.Voucher{
		Code: "TEN2", Title: "ten", Value: 10, Active: true,
		VoucherTypeID: voucherTypeID(t, f.db, entity.VoucherPercent),
	}
	mustCreate(t, f.db, &v)

	req := f.req()
	req.VoucherID = v.ID
	res, err := f.svc.Submit(f.user.ID, "127.0.0.1", req)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	var payment entity.Payment
	f.db.Where("order_id = ?", res.OrderID).First(&payment)

	out, err := f.svc.HandleReturn(gatewayReturn(f, payment.TxnRef, payment.Amount, "24")) // user cancelled
	if err != nil {
		t.Fatalf("handle return: %v", err)
	}
	if out.Paid || out.Status != entity.StatusFailed {
		t.Fatalf("outcome = %+v, want failed", out)
	}

	// slot released
	var slot entity.RoomSlot
	f.db.First(&slot, f.slot.ID)
	if !slot.IsAvailable {
		t.Error("slot should be released after failed payment")
	}

	// voucher returned
	uv, err := repository.NewVoucherRepository(f.db).GetUserVoucher(f.user.ID, v.ID)
	if err != nil {
		t.Fatalf("user voucher: %v", err)
	}
	if uv.IsUsed {
		t.Error("voucher should be restored after failed payment")
	}
}

func TestReturnBadSignature(t *testing.T) {
	f := newCheckoutFixture(t)
	q := url.Values{}
	q.Set("vnp_TxnRef", "1-1")
	q.Set("vnp_ResponseCode", "00")
	q.Set("vnp_SecureHash", "deadbeef")
	if _, err := f.svc.HandleReturn(q); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("got %v, want ErrInvalidSignature", err)
	}
}
