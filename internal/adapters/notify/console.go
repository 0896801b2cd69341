package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/alejandrodnm/betcheck/internal/domain"
)

// Console implementa ports.Notifier.
type Console struct {
	out io.Writer
}

// NewConsole crea un notificador que escribe a stdout.
func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

// NewConsoleWriter crea un notificador para tests.
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{out: w}
}

// NotifyTicket imprime el informe de verificación del ticket: cabecera,
// tabla con el detalle por leg y resumen final.
func (c *Console) NotifyTicket(_ context.Context, t domain.Ticket) error {
	now := time.Now().Format("15:04:05")

	fmt.Fprintf(c.out, "\n[%s] Ticket %s — %s\n", now, shortID(t.ID), verdictLabel(t.Verdict))
	fmt.Fprintf(c.out, "  Stake: %.2f  Cuota total: %.2f", t.Stake, t.TotalOdds)
	if t.Agent != "" {
		fmt.Fprintf(c.out, "  Agente: %s", t.Agent)
	}
	if t.Client != "" {
		fmt.Fprintf(c.out, "  Cliente: %s", t.Client)
	}
	fmt.Fprintln(c.out)

	table := tablewriter.NewWriter(c.out)
	table.Header("#", "Partido", "Mercado", "Selección", "Cuota", "Resultado", "Comprobado")

	for i, leg := range t.Legs {
		market := leg.Market
		if leg.IsLive {
			market += " [live]"
		}
		if leg.IsBoostedOdds {
			market += " [boost]"
		}

		table.Append(
			fmt.Sprintf("%d", i+1),
			truncate(leg.MatchLabel, 32),
			truncate(market, 34),
			truncate(leg.Selection, 24),
			fmt.Sprintf("%.2f", leg.Odds),
			truncate(leg.Outcome, 28),
			truncate(leg.ActualText, 44),
		)
	}
	table.Render()

	won, lost, void, unresolved := countOutcomes(t.Legs)
	fmt.Fprintf(c.out, "  %d ganadas | %d perdidas | %d anuladas | %d sin resolver\n\n",
		won, lost, void, unresolved)
	return nil
}

// --- helpers ---

func countOutcomes(legs []domain.BetLeg) (won, lost, void, unresolved int) {
	for _, leg := range legs {
		switch leg.Outcome {
		case domain.OutcomeWon:
			won++
		case domain.OutcomeLost:
			lost++
		case domain.OutcomeVoid:
			void++
		default:
			unresolved++
		}
	}
	return
}

func verdictLabel(verdict string) string {
	switch verdict {
	case domain.VerdictWon:
		return "GANADO"
	case domain.VerdictLost:
		return "PERDIDO"
	case domain.VerdictPartial:
		return "PARCIAL"
	case domain.VerdictPending, "":
		return "PENDIENTE"
	default:
		return strings.ToUpper(verdict)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
