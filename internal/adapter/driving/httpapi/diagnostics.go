package httpapi

import (
	"github.com/rs/zerolog"
)

// logDiagnostics writes analysis diagnostics to the request logger.
type logDiagnostics struct {
	logger zerolog.Logger
}

func (d logDiagnostics) DatasetSummary(sellers, products, records int) {
	d.logger.Debug().
		Int("sellers", sellers).
		Int("products", products).
		Int("purchase_records", records).
		Msg("dataset received")
}

func (d logDiagnostics) SellerNotFound(sellerID string) {
	d.logger.Warn().Str("seller_id", sellerID).Msg("seller not found, purchase record skipped")
}

func (d logDiagnostics) ProductNotFound(sellerID, sku string) {
	d.logger.Warn().Str("seller_id", sellerID).Str("sku", sku).Msg("product not found, line item skipped")
}
