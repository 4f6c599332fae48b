package entity

import "time"

// TopProduct is one entry of a seller's best-selling list.
type TopProduct struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// ReportEntry represents the final, rounded figures for one seller.
type ReportEntry struct {
	SellerID    string       `json:"seller_id"`
	Name        string       `json:"name"`
	Revenue     float64      `json:"revenue"`
	Profit      float64      `json:"profit"`
	SalesCount  int          `json:"sales_count"`
	TopProducts []TopProduct `json:"top_products"`
	Bonus       float64      `json:"bonus"`
}

// SalesReport wraps the ranked entries of one run with its metadata.
type SalesReport struct {
	RunID           string        `json:"run_id"`
	GeneratedAt     time.Time     `json:"generated_at"`
	RevenueStrategy string        `json:"revenue_strategy"`
	BonusStrategy   string        `json:"bonus_strategy"`
	Entries         []ReportEntry `json:"entries"`
}
