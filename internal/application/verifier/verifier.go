// Package verifier orquesta la verificación de tickets: carga el ticket,
// resuelve cada leg contra los datos reales del proveedor, persiste los
// resultados y agrega el veredicto final.
package verifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alejandrodnm/betcheck/internal/domain"
	"github.com/alejandrodnm/betcheck/internal/markets"
	"github.com/alejandrodnm/betcheck/internal/ports"
)

// Config contiene la configuración del verificador.
type Config struct {
	Workers int // goroutines para verificar legs en paralelo (0 = NumCPU*2)
}

// Verifier es el orquestador de la verificación de tickets.
type Verifier struct {
	cfg      Config
	provider ports.FixtureProvider
	store    ports.TicketStore
	notifier ports.Notifier
}

// New crea un Verifier con todas las dependencias inyectadas.
func New(cfg Config, provider ports.FixtureProvider, store ports.TicketStore, notifier ports.Notifier) *Verifier {
	return &Verifier{
		cfg:      cfg,
		provider: provider,
		store:    store,
		notifier: notifier,
	}
}

// VerifyTicket verifica todas las legs del ticket contra los datos reales,
// persiste cada resultado y el veredicto agregado, y devuelve el ticket con
// los resultados escritos.
//
// Los fallos de persistencia no abortan la verificación: el resultado
// calculado se devuelve igualmente y el fallo queda en el log.
func (v *Verifier) VerifyTicket(ctx context.Context, ticketID string) (domain.Ticket, error) {
	start := time.Now()

	ticket, err := v.store.GetTicket(ctx, ticketID)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("verifier.VerifyTicket: load ticket: %w", err)
	}

	// Caché por verificación: todas las legs del mismo día comparten fetch.
	cache := newFixtureCache(v.provider)
	results := gradeLegsConcurrent(ctx, cache, ticket.Legs, v.cfg.Workers)

	outcomes := make([]string, len(ticket.Legs))
	for i := range ticket.Legs {
		ticket.Legs[i].Outcome = results[i].Outcome
		ticket.Legs[i].ActualText = results[i].Actual
		outcomes[i] = results[i].Outcome

		if err := v.store.UpdateLegOutcome(ctx, ticket.Legs[i].ID, results[i].Outcome, results[i].Actual); err != nil {
			slog.Error("failed to persist leg outcome",
				"ticket_id", ticketID,
				"leg_id", ticket.Legs[i].ID,
				"err", err,
			)
		}
	}

	ticket.Verdict = domain.AggregateVerdict(outcomes)
	if err := v.store.UpdateTicketVerdict(ctx, ticketID, ticket.Verdict); err != nil {
		slog.Error("failed to persist ticket verdict", "ticket_id", ticketID, "err", err)
	}

	if v.notifier != nil {
		if err := v.notifier.NotifyTicket(ctx, ticket); err != nil {
			slog.Warn("notifier error", "err", err)
		}
	}

	slog.Info("ticket verified",
		"ticket_id", ticketID,
		"verdict", ticket.Verdict,
		"legs", len(ticket.Legs),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return ticket, nil
}

// gradeLeg resuelve una leg: partido → fecha → fixture → evaluador de mercado.
// Nunca devuelve error de Go; cada fallo se codifica en el tag del resultado.
func gradeLeg(ctx context.Context, cache *fixtureCache, leg domain.BetLeg) domain.LegResult {
	pair, ok := domain.ParseMatchLabel(leg.MatchLabel)
	if !ok {
		return domain.LegResult{
			Outcome: domain.ErrMatchLabel,
			Actual:  "El nombre del partido no tiene el formato esperado 'Equipo A vs Equipo B'.",
		}
	}

	date, ok := isoDate(leg.ScheduledAt)
	if !ok {
		return domain.LegResult{
			Outcome: domain.ErrInvalidDate,
			Actual:  fmt.Sprintf("No se pudo interpretar la fecha '%s'.", leg.ScheduledAt),
		}
	}

	fixtures, err := cache.fixturesFor(ctx, date)
	if err != nil {
		return domain.LegResult{Outcome: domain.ErrAPI, Actual: err.Error()}
	}

	fx, ok := findFixture(fixtures, pair)
	if !ok {
		return domain.LegResult{
			Outcome: domain.ErrMatchNotFound,
			Actual: fmt.Sprintf("No se encontró el partido en la API. Búsqueda: [%s vs %s] en fecha [%s]",
				pair.Home, pair.Away, date),
		}
	}

	if !fx.IsFinished() {
		return domain.LegResult{
			Outcome: "pendiente_" + fx.Status.Short,
			Actual:  "Estado actual: " + fx.Status.Long,
		}
	}

	marketType, eval := markets.Classify(leg, fx)
	res := eval(leg, fx)
	slog.Debug("leg graded",
		"match", leg.MatchLabel,
		"market_type", marketType,
		"outcome", res.Outcome,
	)
	return res
}
