package entity

// LineItem is one product entry of a purchase record. Discount is a
// percentage, expected in [0,100] but never range-checked. An empty or
// unknown SKU is reported by the analyzer and the item skipped.
type LineItem struct {
	SKU       string  `json:"sku" yaml:"sku" toml:"sku"`
	SalePrice float64 `json:"sale_price" yaml:"sale_price" toml:"sale_price"`
	Quantity  int     `json:"quantity" yaml:"quantity" toml:"quantity"`
	Discount  float64 `json:"discount" yaml:"discount" toml:"discount"`
}

// PurchaseRecord represents a receipt issued by a seller.
type PurchaseRecord struct {
	ReceiptID     string     `json:"receipt_id,omitempty" yaml:"receipt_id,omitempty" toml:"receipt_id,omitempty"`
	Date          string     `json:"date,omitempty" yaml:"date,omitempty" toml:"date,omitempty"`
	SellerID      string     `json:"seller_id" yaml:"seller_id" toml:"seller_id"`
	CustomerID    string     `json:"customer_id,omitempty" yaml:"customer_id,omitempty" toml:"customer_id,omitempty"`
	Items         []LineItem `json:"items" yaml:"items" toml:"items"`
	TotalAmount   float64    `json:"total_amount,omitempty" yaml:"total_amount,omitempty" toml:"total_amount,omitempty"`
	TotalDiscount float64    `json:"total_discount,omitempty" yaml:"total_discount,omitempty" toml:"total_discount,omitempty"`
}
