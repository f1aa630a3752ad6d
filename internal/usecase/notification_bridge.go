package usecase

import (
	"context"
	"log"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/events"
)

const bridgeLogPrefix = "[notificacoes][bridge]"

// RegisterNotificationBridge subscribes the generator to quote status changes:
// a transition into "aceito" generates notifications, a transition out of it
// retracts them. Anything else is a no-op.
//
// Every failure is caught and logged here. The bus already isolates handler
// errors, but the bridge does not lean on that alone: the quote lifecycle must
// never be destabilized by notification-side problems. Returns the
// unsubscribe function.
func RegisterNotificationBridge(bus *events.Bus, gen INotificationGeneratorUseCase) func() {
	aceito := string(entities.QuoteStatusAceito)

	return events.On(bus, events.QuoteStatusChangedEvent, func(ctx context.Context, ev events.QuoteStatusChanged) error {
		switch {
		case ev.NewStatus == aceito && ev.PreviousStatus != aceito:
			created, err := gen.GenerateForQuote(ctx, ev.QuoteID)
			if err != nil {
				log.Printf("%s generate failed orcamento_id=%s err=%v", bridgeLogPrefix, ev.QuoteID, err)
				return nil
			}
			log.Printf("%s generated orcamento_id=%s count=%d", bridgeLogPrefix, ev.QuoteID, len(created))

		case ev.PreviousStatus == aceito && ev.NewStatus != aceito:
			deleted, err := gen.RetractForQuote(ctx, ev.QuoteID)
			if err != nil {
				log.Printf("%s retract failed orcamento_id=%s err=%v", bridgeLogPrefix, ev.QuoteID, err)
				return nil
			}
			log.Printf("%s retracted orcamento_id=%s count=%d", bridgeLogPrefix, ev.QuoteID, deleted)
		}
		return nil
	})
}
