package services

import (
	"github.com/PhamKien043/datn-sub000/entity"
)

// Deposit collected at booking time; the balance is settled later.
const depositPercent = 30

// roundHalfUp does integer division rounding .5 up. All money is int64 VND
// so this is exact for the amounts we deal with.
func roundHalfUp(num, den int64) int64 {
	return (num + den/2) / den
}

// DiscountAmount computes a voucher's discount against a base total and
// clamps it so the total can never go negative.
func DiscountAmount(kind string, value, base int64) int64 {
	var d int64
	switch kind {
	case entity.VoucherPercent:
		d = roundHalfUp(base*value, 100)
	default: // fixed
		d = value
	}
	if d > base {
		d = base
	}
	if d < 0 {
		d = 0
	}
	return d
}

// DepositAmount is the fixed 30% of the post-discount total.
func DepositAmount(finalTotal int64) int64 {
	return roundHalfUp(finalTotal*depositPercent, 100)
}

// Quote is the full price breakdown for one booking.
type Quote struct {
	FoodSubtotal  int64 `json:"foodSubtotal"`
	RoomFee       int64 `json:"roomFee"`
	TableFee      int64 `json:"tableFee"`
	BaseTotal     int64 `json:"baseTotal"`
	Discount      int64 `json:"discount"`
	FinalTotal    int64 `json:"finalTotal"`
	DepositAmount int64 `json:"depositAmount"`
	BalanceAmount int64 `json:"balanceAmount"`
}

// BuildQuote aggregates the cart lines with the room fees. The room fee is
// fixed per booking; the table fee scales with the table count, as does
// every line (line totals are kept in sync by the cart service).
func BuildQuote(items []entity.CartItem, room *entity.Room, tableCount int) Quote {
	var food int64
	for _, it := range items {
		food += it.Total
	}
	q := Quote{
		FoodSubtotal: food,
		RoomFee:      room.Price,
		TableFee:     room.TableFee * int64(tableCount),
	}
	q.BaseTotal = q.FoodSubtotal + q.RoomFee + q.TableFee
	q.applyDiscount(0)
	return q
}

func (q *Quote) applyDiscount(d int64) {
	if d > q.BaseTotal {
		d = q.BaseTotal
	}
	q.Discount = d
	q.FinalTotal = q.BaseTotal - d
	q.DepositAmount = DepositAmount(q.FinalTotal)
	q.BalanceAmount = q.FinalTotal - q.DepositAmount
}

// ApplyVoucher recomputes the discount-dependent fields for the given
// voucher kind/value.
func (q *Quote) ApplyVoucher(kind string, value int64) {
	q.applyDiscount(DiscountAmount(kind, value, q.BaseTotal))
}
