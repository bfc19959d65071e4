package dto

// CheckoutItem references a catalog book by internal id or ISBN. Title
// lookup is still accepted for older clients but resolves only on an exact
// match.
type CheckoutItem struct {
	BookRef  string `json:"bookRef" validate:"required"`
	Quantity int    `json:"qty" validate:"required,min=1"`
}

// CheckoutRequest is the order-creation payload.
type CheckoutRequest struct {
	Items       []CheckoutItem  `json:"items" validate:"required,min=1,dive"`
	Address     CheckoutAddress `json:"address"`
	PaymentMode string          `json:"paymentMode"`
}

// CheckoutAddress is flattened into a single snapshot string at order time.
type CheckoutAddress struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// Flatten renders the address snapshot stored on the order.
func (a CheckoutAddress) Flatten() string {
	out := ""
	for _, part := range []string{a.Line1, a.City, a.State, a.Pincode} {
		if part == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += part
	}
	return out
}

// IsZero reports whether no address fields were supplied.
func (a CheckoutAddress) IsZero() bool {
	return a.Line1 == "" && a.City == "" && a.State == "" && a.Pincode == ""
}
