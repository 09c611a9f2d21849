package configs

import (
	"log"

	"github.com/PhamKien043/datn-sub000/entity"
	"golang.org/x/crypto/bcrypt"
)

// First-run admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// Seed lookup/status rows the services resolve by name at startup.
func SeedLookups() error {
	db := DB()

	// Location
	db.FirstOrCreate(&entity.LocationType{}, entity.LocationType{TypeName: "Indoor Hall"})
	db.FirstOrCreate(&entity.LocationType{}, entity.LocationType{TypeName: "Garden"})
	db.FirstOrCreate(&entity.LocationType{}, entity.LocationType{TypeName: "Rooftop"})

	// Menu
	db.FirstOrCreate(&entity.MenuStatus{}, entity.MenuStatus{StatusName: "Available"})
	db.FirstOrCreate(&entity.MenuStatus{}, entity.MenuStatus{StatusName: "Unavailable"})
	db.FirstOrCreate(&entity.MenuCategory{}, entity.MenuCategory{CategoryName: "Appetizer"})
	db.FirstOrCreate(&entity.MenuCategory{}, entity.MenuCategory{CategoryName: "Main Course"})
	db.FirstOrCreate(&entity.MenuCategory{}, entity.MenuCategory{CategoryName: "Dessert"})

	// Order
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: entity.StatusPending})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: entity.StatusDepositPaid})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: entity.StatusConfirmed})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: entity.StatusAwaitingBalance})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: entity.StatusCompleted})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: entity.StatusFailed})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: entity.StatusCancelled})

	// Payment
	db.FirstOrCreate(&entity.PaymentMethod{}, entity.PaymentMethod{MethodName: "vnpay"})
	db.FirstOrCreate(&entity.PaymentStatus{}, entity.PaymentStatus{StatusName: "Pending"})
	db.FirstOrCreate(&entity.PaymentStatus{}, entity.PaymentStatus{StatusName: "Paid"})
	db.FirstOrCreate(&entity.PaymentStatus{}, entity.PaymentStatus{StatusName: "Failed"})

	// Voucher
	db.FirstOrCreate(&entity.VoucherType{}, entity.VoucherType{TypeName: entity.VoucherFixed})
	db.FirstOrCreate(&entity.VoucherType{}, entity.VoucherType{TypeName: entity.VoucherPercent})

	log.Println("lookup tables seeded")
	return nil
}
