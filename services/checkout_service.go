package services

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/PhamKien043/datn-sub000/entity"
	"github.com/PhamKien043/datn-sub000/pkg/vnpay"
	"github.com/PhamKien043/datn-sub000/repository"
	"gorm.io/gorm"
)

var (
	ErrUnknownMethod    = errors.New("unknown payment method")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrSlotUnavailable  = errors.New("room slot unavailable")
	ErrInvalidSignature = errors.New("invalid gateway signature")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrAlreadyProcessed = errors.New("payment already processed")
)

// VoucherConflictError carries the user-facing notice for a voucher that
// failed re-validation at submit time. Controllers render it as a 422.
type VoucherConflictError struct {
	Cause    string
	Severity string
}

func (e *VoucherConflictError) Error() string {
	return "voucher not applicable: " + e.Cause
}

type CheckoutService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
	SlotRepo    *repository.SlotRepository
	OrderRepo   *repository.OrderRepository
	Vouchers    *VoucherService
	Gateway     *vnpay.Client

	Status StatusIDs

	payPending uint
	payPaid    uint
	payFailed  uint
}

func NewCheckoutService(
	db *gorm.DB,
	cartRepo *repository.CartRepository,
	catalogRepo *repository.CatalogRepository,
	slotRepo *repository.SlotRepository,
	orderRepo *repository.OrderRepository,
	vouchers *VoucherService,
	gateway *vnpay.Client,
) *CheckoutService {
	s := &CheckoutService{
		DB:          db,
		CartRepo:    cartRepo,
		CatalogRepo: catalogRepo,
		SlotRepo:    slotRepo,
		OrderRepo:   orderRepo,
		Vouchers:    vouchers,
		Gateway:     gateway,
		Status:      LoadStatusIDs(orderRepo),
	}
	if id, err := orderRepo.GetPaymentStatusIDByName("Pending"); err == nil {
		s.payPending = id
	}
	if id, err := orderRepo.GetPaymentStatusIDByName("Paid"); err == nil {
		s.payPaid = id
	}
	if id, err := orderRepo.GetPaymentStatusIDByName("Failed"); err == nil {
		s.payFailed = id
	}
	return s
}

type CheckoutReq struct {
	Method    string `json:"method" binding:"required"`
	RoomID    uint   `json:"roomId" binding:"required"`
	ServiceID uint   `json:"serviceId"`
	Date      string `json:"date" binding:"required"`
	TimeSlot  string `json:"timeSlot" binding:"required,oneof=morning afternoon"`
	VoucherID uint   `json:"voucherId"`
}

type CheckoutRes struct {
	Success bool   `json:"success"`
	OrderID uint   `json:"orderId"`
	URL     string `json:"url"`
	Quote   Quote  `json:"quote"`
}

// Submit runs the whole checkout: precondition checks, slot hold, voucher
// redemption, order + payment creation, and the gateway redirect URL. One
// transaction; one non-retrying attempt per call.
func (s *CheckoutService) Submit(userID uint, clientIP string, req *CheckoutReq) (*CheckoutRes, error) {
	methodID, err := s.OrderRepo.GetPaymentMethodIDByName(req.Method)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownMethod
		}
		return nil, err
	}

	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	room, err := s.CatalogRepo.GetRoom(req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errors.New("invalid date, want YYYY-MM-DD")
	}

	// resolve (room, date, time-of-day) to a concrete slot
	slot, err := s.SlotRepo.Find(req.RoomID, date, req.TimeSlot)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}
	if !slot.IsAvailable {
		return nil, ErrSlotUnavailable
	}

	quote := BuildQuote(cart.Items, room, cart.TableCount)

	// re-validate the voucher right before money is involved
	var voucher *entity.Voucher
	if req.VoucherID != 0 {
		v, elig, err := s.Vouchers.Validate(userID, req.VoucherID, quote.BaseTotal)
		if err != nil {
			return nil, err
		}
		if elig.State != StateEligible {
			return nil, &VoucherConflictError{Cause: elig.Cause, Severity: elig.Severity}
		}
		voucher = v
		quote.ApplyVoucher(v.VoucherType.TypeName, v.Value)
	}

	var out CheckoutRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// hold the slot; losing the race means someone booked it first
		held, err := s.SlotRepo.Hold(tx, slot.ID)
		if err != nil {
			return err
		}
		if held == 0 {
			return ErrSlotUnavailable
		}

		order := entity.Order{
			Subtotal:      quote.FoodSubtotal,
			RoomFee:       quote.RoomFee,
			TableFee:      quote.TableFee,
			Discount:      quote.Discount,
			Total:         quote.FinalTotal,
			DepositAmount: quote.DepositAmount,
			BalanceAmount: quote.BalanceAmount,
			TableCount:    cart.TableCount,
			EventDate:     date,
			TimeSlot:      req.TimeSlot,
			UserID:        userID,
			RoomID:        room.ID,
			ServiceID:     req.ServiceID,
			RoomSlotID:    slot.ID,
			OrderStatusID: s.Status.ID(entity.StatusPending),
		}
		if voucher != nil {
			order.VoucherID = &voucher.ID
		}
		if err := s.OrderRepo.CreateOrder(tx, &order); err != nil {
			return err
		}

		// move lines from cart → order as a snapshot
		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				MenuID:    it.MenuID,
				Qty:       it.Qty,
				UnitPrice: it.UnitPrice,
				Total:     it.Total,
			}
			if err := s.OrderRepo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		if voucher != nil {
			if err := s.Vouchers.Redeem(tx, userID, voucher.ID); err != nil {
				if errors.Is(err, ErrAlreadyUsed) {
					return &VoucherConflictError{Cause: "already_used", Severity: SeverityWarning}
				}
				return err
			}
		}

		// the gateway collects the 30% deposit now
		p := entity.Payment{
			Amount:          quote.DepositAmount,
			TxnRef:          fmt.Sprintf("%d-%d", order.ID, time.Now().UnixNano()),
			OrderID:         order.ID,
			PaymentMethodID: methodID,
			PaymentStatusID: s.payPending,
		}
		if err := s.OrderRepo.CreatePayment(tx, &p); err != nil {
			return err
		}

		if err := s.CartRepo.ClearCart(tx, userID); err != nil {
			return err
		}

		out = CheckoutRes{
			Success: true,
			OrderID: order.ID,
			URL: s.Gateway.PayURL(vnpay.PayRequest{
				TxnRef:    p.TxnRef,
				Amount:    quote.DepositAmount,
				OrderInfo: fmt.Sprintf("Deposit for booking #%d", order.ID),
				IPAddr:    clientIP,
				CreatedAt: time.Now(),
			}),
			Quote: quote,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type ReturnOutcome struct {
	OrderID uint   `json:"orderId"`
	Status  string `json:"status"`
	Paid    bool   `json:"paid"`
}

// HandleReturn settles the gateway callback: verify the signature, then
// mark the payment and advance (or fail) the order. Idempotent: replays
// of an already-settled payment are rejected.
func (s *CheckoutService) HandleReturn(q url.Values) (*ReturnOutcome, error) {
	data, ok := s.Gateway.VerifyReturn(q)
	if !ok {
		return nil, ErrInvalidSignature
	}

	p, err := s.OrderRepo.GetPaymentByTxnRef(data.TxnRef)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if p.PaymentStatusID != s.payPending {
		return nil, ErrAlreadyProcessed
	}

	order, err := s.OrderRepo.GetOrder(p.OrderID)
	if err != nil {
		return nil, err
	}

	var out ReturnOutcome
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if data.Success() {
			now := time.Now()
			p.PaidAt = &now
			p.GatewayRef = data.GatewayRef
			p.PaymentStatusID = s.payPaid
			if err := s.OrderRepo.SavePayment(tx, p); err != nil {
				return err
			}
			affected, err := s.OrderRepo.UpdateStatusGuard(tx, order.ID,
				s.Status.ID(entity.StatusPending), s.Status.ID(entity.StatusDepositPaid))
			if err != nil {
				return err
			}
			if affected == 0 {
				// the order left pending while we were settling
				return ErrAlreadyProcessed
			}
			out = ReturnOutcome{OrderID: order.ID, Status: entity.StatusDepositPaid, Paid: true}
			return nil
		}

		// failed at the gateway: free the slot and give the voucher back
		p.PaymentStatusID = s.payFailed
		if err := s.OrderRepo.SavePayment(tx, p); err != nil {
			return err
		}
		affected, err := s.OrderRepo.UpdateStatusGuard(tx, order.ID,
			s.Status.ID(entity.StatusPending), s.Status.ID(entity.StatusFailed))
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrAlreadyProcessed
		}
		if err := s.SlotRepo.Release(tx, order.RoomSlotID); err != nil {
			return err
		}
		if order.VoucherID != nil {
			if err := s.Vouchers.Restore(tx, order.UserID, *order.VoucherID); err != nil {
				return err
			}
		}
		out = ReturnOutcome{OrderID: order.ID, Status: entity.StatusFailed, Paid: false}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
