// Package vnpay builds and verifies VNPAY redirect-checkout URLs.
// The gateway contract: request params are sorted by key, URL-encoded,
// joined as a query string and signed with HMAC-SHA512 over the merchant
// secret; the signature travels as vnp_SecureHash.
package vnpay

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	version     = "2.1.0"
	commandPay  = "pay"
	codeSuccess = "00"
)

type Config struct {
	TmnCode    string
	HashSecret string
	PayURL     string
	ReturnURL  string
}

type Client struct {
	cfg Config
}

func New(cfg Config) *Client {
	return &Client{cfg: cfg}
}

// PayRequest describes one redirect-checkout attempt. Amount is in VND;
// the gateway wants it multiplied by 100.
type PayRequest struct {
	TxnRef    string
	Amount    int64
	OrderInfo string
	IPAddr    string
	CreatedAt time.Time
}

// PayURL returns the signed gateway URL the browser is redirected to.
func (c *Client) PayURL(req PayRequest) string {
	params := url.Values{}
	params.Set("vnp_Version", version)
	params.Set("vnp_Command", commandPay)
	params.Set("vnp_TmnCode", c.cfg.TmnCode)
	params.Set("vnp_Amount", strconv.FormatInt(req.Amount*100, 10))
	params.Set("vnp_CurrCode", "VND")
	params.Set("vnp_TxnRef", req.TxnRef)
	params.Set("vnp_OrderInfo", req.OrderInfo)
	params.Set("vnp_OrderType", "other")
	params.Set("vnp_Locale", "vn")
	params.Set("vnp_IpAddr", req.IPAddr)
	params.Set("vnp_CreateDate", req.CreatedAt.Format("20060102150405"))
	params.Set("vnp_ReturnUrl", c.cfg.ReturnURL)

	query := params.Encode() // sorted by key per url.Values
	return c.cfg.PayURL + "?" + query + "&vnp_SecureHash=" + c.sign(query)
}

// ReturnData is what we trust out of a verified return/IPN callback.
type ReturnData struct {
	TxnRef       string
	Amount       int64
	GatewayRef   string
	ResponseCode string
	BankCode     string
}

func (d ReturnData) Success() bool { return d.ResponseCode == codeSuccess }

// VerifyReturn checks the signature over the returned params and extracts
// the fields we act on. ok is false when the hash is missing or wrong.
func (c *Client) VerifyReturn(q url.Values) (ReturnData, bool) {
	got := q.Get("vnp_SecureHash")
	if got == "" {
		return ReturnData{}, false
	}

	params := url.Values{}
	for k, vs := range q {
		if k == "vnp_SecureHash" || k == "vnp_SecureHashType" {
			continue
		}
		if len(vs) > 0 {
			params.Set(k, vs[0])
		}
	}

	want := c.sign(params.Encode())
	if !hmac.Equal([]byte(strings.ToLower(got)), []byte(want)) {
		return ReturnData{}, false
	}

	amount, _ := strconv.ParseInt(q.Get("vnp_Amount"), 10, 64)
	return ReturnData{
		TxnRef:       q.Get("vnp_TxnRef"),
		Amount:       amount / 100,
		GatewayRef:   q.Get("vnp_TransactionNo"),
		ResponseCode: q.Get("vnp_ResponseCode"),
		BankCode:     q.Get("vnp_BankCode"),
	}, true
}

func (c *Client) sign(data string) string {
	mac := hmac.New(sha512.New, []byte(c.cfg.HashSecret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
