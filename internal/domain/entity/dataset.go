package entity

// Dataset groups the three raw inputs of an analysis run.
type Dataset struct {
	Sellers         []Seller         `json:"sellers" yaml:"sellers" toml:"sellers" validate:"unique=ID,dive"`
	Products        []Product        `json:"products" yaml:"products" toml:"products" validate:"unique=SKU,dive"`
	PurchaseRecords []PurchaseRecord `json:"purchase_records" yaml:"purchase_records" toml:"purchase_records"`
}
