package repository

import (
	"strings"
	"time"

	"github.com/PhamKien043/datn-sub000/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("OrderStatus").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("OrderStatus").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Preload("Menu").Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

type OrderSummary struct {
	ID            uint      `json:"id"`
	RoomID        uint      `json:"roomId"`
	EventDate     time.Time `json:"eventDate"`
	TimeSlot      string    `json:"timeSlot"`
	Total         int64     `json:"total"`
	DepositAmount int64     `json:"depositAmount"`
	OrderStatusID uint      `json:"orderStatusId"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, room_id, event_date, time_slot, total, deposit_amount, order_status_id, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

type AdminOrderSummary struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"userId"`
	CustomerName  string    `json:"customerName"`
	RoomID        uint      `json:"roomId"`
	EventDate     time.Time `json:"eventDate"`
	Total         int64     `json:"total"`
	OrderStatusID uint      `json:"orderStatusId"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrders(statusID *uint, page, limit int) ([]AdminOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	dbCount := r.DB.Table("orders AS o").Where("o.deleted_at IS NULL")
	if statusID != nil && *statusID != 0 {
		dbCount = dbCount.Where("o.order_status_id = ?", *statusID)
	}
	if err := dbCount.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []struct {
		ID            uint
		UserID        uint
		RoomID        uint
		EventDate     time.Time
		Total         int64
		OrderStatusID uint
		CreatedAt     time.Time
		FirstName     string
		LastName      string
	}
	db := r.DB.Table("orders AS o").
		Select("o.id, o.user_id, o.room_id, o.event_date, o.total, o.order_status_id, o.created_at, u.first_name, u.last_name").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.deleted_at IS NULL")
	if statusID != nil && *statusID != 0 {
		db = db.Where("o.order_status_id = ?", *statusID)
	}
	if err := db.Order("o.id DESC").Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]AdminOrderSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, AdminOrderSummary{
			ID:            row.ID,
			UserID:        row.UserID,
			CustomerName:  strings.TrimSpace(row.FirstName + " " + row.LastName),
			RoomID:        row.RoomID,
			EventDate:     row.EventDate,
			Total:         row.Total,
			OrderStatusID: row.OrderStatusID,
			CreatedAt:     row.CreatedAt,
		})
	}
	return out, total, nil
}

// UpdateStatusGuard moves an order from one status to another only if it is
// still in the expected one. Rows affected 0 means a lost race or an
// illegal jump.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID, fromID, toID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status_id = ?", orderID, fromID).
		Update("order_status_id", toID)
	return res.RowsAffected, res.Error
}

// ---------------- Lookups ----------------

func (r *OrderRepository) GetStatusIDByName(name string) (uint, error) {
	var st entity.OrderStatus
	if err := r.DB.Where("status_name = ?", name).First(&st).Error; err != nil {
		return 0, err
	}
	return st.ID, nil
}

func (r *OrderRepository) GetPaymentMethodIDByName(name string) (uint, error) {
	var m entity.PaymentMethod
	if err := r.DB.Where("method_name = ?", name).First(&m).Error; err != nil {
		return 0, err
	}
	return m.ID, nil
}

func (r *OrderRepository) GetPaymentStatusIDByName(name string) (uint, error) {
	var st entity.PaymentStatus
	if err := r.DB.Where("status_name = ?", name).First(&st).Error; err != nil {
		return 0, err
	}
	return st.ID, nil
}

// ---------------- Payments ----------------

func (r *OrderRepository) CreatePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *OrderRepository) GetPaymentByTxnRef(txnRef string) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.Where("txn_ref = ?", txnRef).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *OrderRepository) SavePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Save(p).Error
}
