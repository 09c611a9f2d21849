package configs

import (
	"github.com/PhamKien043/datn-sub000/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
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
}
