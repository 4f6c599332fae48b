package entity

// Product represents a catalog entry. PurchasePrice is the unit cost used to
// derive profit.
type Product struct {
	SKU           string  `json:"sku" yaml:"sku" toml:"sku" validate:"required"`
	PurchasePrice float64 `json:"purchase_price" yaml:"purchase_price" toml:"purchase_price"`
	Name          string  `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Category      string  `json:"category,omitempty" yaml:"category,omitempty" toml:"category,omitempty"`
	Vendor        string  `json:"vendor,omitempty" yaml:"vendor,omitempty" toml:"vendor,omitempty"`
	SalePrice     float64 `json:"sale_price,omitempty" yaml:"sale_price,omitempty" toml:"sale_price,omitempty"`
}
