package services

import (
	"testing"
	"time"

	"github.com/PhamKien043/datn-sub000/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the schema and the
// lookup rows the services resolve by name.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.LocationType{}, &entity.Room{}, &entity.RoomSlot{},
		&entity.Service{},
		&entity.MenuCategory{}, &entity.MenuStatus{}, &entity.Menu{},
		&entity.VoucherType{}, &entity.Voucher{}, &entity.UserVoucher{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderItem{},
		&entity.PaymentMethod{}, &entity.PaymentStatus{}, &entity.Payment{},
		&entity.BlogPost{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, name := range []string{
		entity.StatusPending, entity.StatusDepositPaid, entity.StatusConfirmed,
		entity.StatusAwaitingBalance, entity.StatusCompleted,
		entity.StatusFailed, entity.StatusCancelled,
	} {
		db.Create(&entity.OrderStatus{StatusName: name})
	}
	db.Create(&entity.PaymentMethod{MethodName: "vnpay"})
	for _, name := range []string{"Pending", "Paid", "Failed"} {
		db.Create(&entity.PaymentStatus{StatusName: name})
	}
	db.Create(&entity.MenuStatus{StatusName: "Available"})
	db.Create(&entity.MenuStatus{StatusName: "Unavailable"})
	db.Create(&entity.VoucherType{TypeName: entity.VoucherFixed})
	db.Create(&entity.VoucherType{TypeName: entity.VoucherPercent})

	return db
}

func voucherTypeID(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	var vt entity.VoucherType
	if err := db.Where("type_name = ?", name).First(&vt).Error; err != nil {
		t.Fatalf("voucher type %s: %v", name, err)
	}
	return vt.ID
}

func menuStatusID(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	var ms entity.MenuStatus
	if err := db.Where("status_name = ?", name).First(&ms).Error; err != nil {
		t.Fatalf("menu status %s: %v", name, err)
	}
	return ms.ID
}

func mustCreate(t *testing.T, db *gorm.DB, v any) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}
