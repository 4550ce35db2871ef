package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

const sendEndpoint = "https://api.whatsapp.com/send"

// Client builds pre-filled WhatsApp deep links for the merchant number. The
// customer's browser opens the link; no API call leaves the server.
type Client struct {
	MerchantNumber string
}

// NewClient expects the number in international format without a leading plus,
// e.g. "9647510590334".
func NewClient(merchantNumber string) *Client {
	return &Client{MerchantNumber: merchantNumber}
}

// OrderSummary carries the fields rendered into the order message.
type OrderSummary struct {
	Name     string
	Phone    string
	Address  string
	Products []string
	Total    int
}

// OrderLink returns the deep link with the order summary URL-encoded in the
// text parameter.
func (c *Client) OrderLink(summary OrderSummary) string {
	v := url.Values{}
	v.Set("phone", c.MerchantNumber)
	v.Set("text", FormatOrderMessage(summary))
	return sendEndpoint + "?" + v.Encode()
}

// FormatOrderMessage renders the Arabic multi-line order summary.
func FormatOrderMessage(summary OrderSummary) string {
	return fmt.Sprintf(`طلب جديد:
الاسم: %s
الهاتف: %s
العنوان: %s
المنتجات:
- %s
المجموع الكلي: %d د.ع
`, summary.Name, summary.Phone, summary.Address, strings.Join(summary.Products, "\n- "), summary.Total)
}
