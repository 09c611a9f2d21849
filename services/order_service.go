package services

import (
	"github.com/PhamKien043/datn-sub000/entity"
	"github.com/PhamKien043/datn-sub000/repository"
	"gorm.io/gorm"
)

// StatusIDs maps seeded order status names to their lookup ids, resolved
// once at startup.
type StatusIDs struct {
	byName map[string]uint
	byID   map[uint]string
}

func LoadStatusIDs(repo *repository.OrderRepository) StatusIDs {
	s := StatusIDs{byName: map[string]uint{}, byID: map[uint]string{}}
	for _, name := range []string{
		entity.StatusPending, entity.StatusDepositPaid, entity.StatusConfirmed,
		entity.StatusAwaitingBalance, entity.StatusCompleted,
		entity.StatusFailed, entity.StatusCancelled,
	} {
		if id, err := repo.GetStatusIDByName(name); err == nil {
			s.byName[name] = id
			s.byID[id] = name
		}
	}
	return s
}

func (s StatusIDs) ID(name string) uint { return s.byName[name] }
func (s StatusIDs) Name(id uint) string { return s.byID[id] }
func (s StatusIDs) Known(name string) bool {
	_, ok := s.byName[name]
	return ok
}

type OrderService struct {
	DB     *gorm.DB
	Repo   *repository.OrderRepository
	Status StatusIDs
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, Status: LoadStatusIDs(repo)}
}

// ----- Customer -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	Order  entity.Order       `json:"order"`
	Status string             `json:"status"`
	Items  []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Status: s.Status.Name(o.OrderStatusID), Items: items}, nil
}

// ----- Admin -----

type AdminOrderListOut struct {
	Items []repository.AdminOrderSummary `json:"items"`
	Total int64                          `json:"total"`
	Page  int                            `json:"page"`
	Limit int                            `json:"limit"`
}

func (s *OrderService) ListAll(statusID *uint, page, limit int) (*AdminOrderListOut, error) {
	items, total, err := s.Repo.ListOrders(statusID, page, limit)
	if err != nil {
		return nil, err
	}
	return &AdminOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Status: s.Status.Name(o.OrderStatusID), Items: items}, nil
}
