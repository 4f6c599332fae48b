package usecase

import (
	"github.com/inheeen/sales-bonus/internal/shared/types"
)

// consoleDiagnostics encaminha os diagnósticos da análise para o console.
type consoleDiagnostics struct {
	console types.ConsoleInterface
}

func (d consoleDiagnostics) DatasetSummary(sellers, products, records int) {
	d.console.LogInfo("Dataset loaded: %d sellers, %d products, %d purchase records", sellers, products, records)
}

func (d consoleDiagnostics) SellerNotFound(sellerID string) {
	d.console.LogWarning("Seller '%s' not found, purchase record skipped", sellerID)
}

func (d consoleDiagnostics) ProductNotFound(sellerID, sku string) {
	d.console.LogWarning("Product '%s' not found (seller '%s'), line item skipped", sku, sellerID)
}
