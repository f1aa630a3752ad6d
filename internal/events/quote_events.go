package events

// KindQuoteStatusChanged is published by the quote lifecycle whenever a status
// transition is persisted.
const KindQuoteStatusChanged Kind = "quote.status.changed"

// QuoteStatusChanged carries one quote status transition. Statuses are opaque
// strings here; subscribers decide which transitions they care about.
type QuoteStatusChanged struct {
	QuoteID        string `json:"quoteId"`
	PreviousStatus string `json:"previousStatus"`
	NewStatus      string `json:"newStatus"`
}

// QuoteStatusChangedEvent is the typed descriptor used with On/Emit.
var QuoteStatusChangedEvent = TypedKind[QuoteStatusChanged]{Kind: KindQuoteStatusChanged}
