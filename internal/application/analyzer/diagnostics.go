package analyzer

import "sync"

// Diagnostics receives the non-fatal events of an analysis run. It never
// influences control flow.
type Diagnostics interface {
	DatasetSummary(sellers, products, records int)
	SellerNotFound(sellerID string)
	ProductNotFound(sellerID, sku string)
}

type nopDiagnostics struct{}

func (nopDiagnostics) DatasetSummary(int, int, int)   {}
func (nopDiagnostics) SellerNotFound(string)          {}
func (nopDiagnostics) ProductNotFound(string, string) {}

// Event kinds recorded by Collector.
const (
	EventDatasetSummary  = "dataset_summary"
	EventSellerNotFound  = "seller_not_found"
	EventProductNotFound = "product_not_found"
)

// Event is a diagnostic captured by Collector.
type Event struct {
	Kind     string `json:"kind"`
	SellerID string `json:"seller_id,omitempty"`
	SKU      string `json:"sku,omitempty"`
	Sellers  int    `json:"sellers,omitempty"`
	Products int    `json:"products,omitempty"`
	Records  int    `json:"records,omitempty"`
}

// Collector keeps every diagnostic in memory, in emission order.
type Collector struct {
	mu     sync.Mutex
	events []Event
}

// NewCollector cria um coletor vazio.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) DatasetSummary(sellers, products, records int) {
	c.add(Event{Kind: EventDatasetSummary, Sellers: sellers, Products: products, Records: records})
}

func (c *Collector) SellerNotFound(sellerID string) {
	c.add(Event{Kind: EventSellerNotFound, SellerID: sellerID})
}

func (c *Collector) ProductNotFound(sellerID, sku string) {
	c.add(Event{Kind: EventProductNotFound, SellerID: sellerID, SKU: sku})
}

// Events returns a copy of the recorded events.
func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Warnings returns only the unresolved-reference events.
func (c *Collector) Warnings() []Event {
	var out []Event
	for _, e := range c.Events() {
		if e.Kind != EventDatasetSummary {
			out = append(out, e)
		}
	}
	return out
}

func (c *Collector) add(e Event) {
	c.mu.Lock()
	c.events = append(c.events, e)
	c.mu.Unlock()
}

// Multi fans a diagnostic out to several sinks.
type Multi []Diagnostics

func (m Multi) DatasetSummary(sellers, products, records int) {
	for _, d := range m {
		d.DatasetSummary(sellers, products, records)
	}
}

func (m Multi) SellerNotFound(sellerID string) {
	for _, d := range m {
		d.SellerNotFound(sellerID)
	}
}

func (m Multi) ProductNotFound(sellerID, sku string) {
	for _, d := range m {
		d.ProductNotFound(sellerID, sku)
	}
}
