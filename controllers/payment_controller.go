package controllers

import (
	"errors"
	"log"

	"github.com/PhamKien043/datn-sub000/pkg/resp"
	"github.com/PhamKien043/datn-sub000/services"
	"github.com/PhamKien043/datn-sub000/utils"
	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	checkout *services.CheckoutService
}

func NewPaymentController(checkout *services.CheckoutService) *PaymentController {
	return &PaymentController{checkout: checkout}
}

// voucherMessages maps eligibility causes to user-facing copy.
var voucherMessages = map[string]string{
	"already_used":    "This voucher has already been used.",
	"inactive":        "This voucher is no longer active.",
	"not_started":     "This voucher is not valid yet.",
	"expired":         "This voucher has expired.",
	"below_min_order": "Your order total does not reach this voucher's minimum.",
}

// POST /payment/redirect  (also mounted at /payment/vnpay/redirect)
func (ctl *PaymentController) Redirect(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		// missing method / room / date never reaches the gateway
		resp.Unprocessable(c, map[string][]string{"request": {err.Error()}})
		return
	}

	res, err := ctl.checkout.Submit(utils.CurrentUserID(c), c.ClientIP(), &req)
	if err == nil {
		resp.OK(c, res)
		return
	}

	var vc *services.VoucherConflictError
	switch {
	case errors.As(err, &vc):
		msg := voucherMessages[vc.Cause]
		if msg == "" {
			msg = "This voucher cannot be applied."
		}
		resp.VoucherNotice(c, msg, vc.Severity)
	case errors.Is(err, services.ErrUnknownMethod):
		resp.Unprocessable(c, map[string][]string{"method": {"unknown payment method"}})
	case errors.Is(err, services.ErrEmptyCart):
		resp.Unprocessable(c, map[string][]string{"cart": {"cart is empty"}})
	case errors.Is(err, services.ErrRoomNotFound):
		resp.NotFound(c, "room not found")
	case errors.Is(err, services.ErrSlotUnavailable):
		resp.Unprocessable(c, map[string][]string{"slot": {"room slot is not available"}})
	case errors.Is(err, services.ErrVoucherNotFound):
		resp.VoucherNotice(c, "Voucher not found.", services.SeverityDanger)
	default:
		log.Printf("checkout failed: %v", err)
		resp.ServerError(c, err)
	}
}

// GET /payment/vnpay/return is where the gateway redirects the browser.
func (ctl *PaymentController) VNPayReturn(c *gin.Context) {
	out, err := ctl.checkout.HandleReturn(c.Request.URL.Query())
	if err == nil {
		resp.OK(c, out)
		return
	}

	switch {
	case errors.Is(err, services.ErrInvalidSignature):
		resp.BadRequest(c, "invalid signature")
	case errors.Is(err, services.ErrPaymentNotFound):
		resp.NotFound(c, "payment not found")
	case errors.Is(err, services.ErrAlreadyProcessed):
		resp.Conflict(c, "payment already processed")
	default:
		log.Printf("vnpay return failed: %v", err)
		resp.ServerError(c, err)
	}
}
