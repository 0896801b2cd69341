package notify_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/betcheck/internal/adapters/notify"
	"github.com/alejandrodnm/betcheck/internal/domain"
)

func makeTicket() domain.Ticket {
	return domain.Ticket{
		ID:        "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
		Stake:     20,
		TotalOdds: 4.35,
		Agent:     "agente-1",
		Verdict:   domain.VerdictPending,
		Legs: []domain.BetLeg{
			{
				MatchLabel: "Real Madrid vs Barcelona",
				Market:     "Resultado del Partido",
				Selection:  "Real Madrid",
				Odds:       1.85,
				Outcome:    domain.OutcomeWon,
				ActualText: "Final: Real Madrid 2 - 1 Barcelona",
			},
			{
				MatchLabel: "Getafe vs Valencia",
				Market:     "Total de Goles",
				Selection:  "Más de 2,5",
				Odds:       2.35,
				IsLive:     true,
				Outcome:    "pendiente_1H",
				ActualText: "Estado actual: First Half",
			},
		},
	}
}

func TestConsoleNotifyTicket(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewConsoleWriter(&buf)

	err := n.NotifyTicket(context.Background(), makeTicket())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Ticket a1b2c3d4")
	assert.Contains(t, out, "PENDIENTE")
	assert.Contains(t, out, "Real Madrid vs Barcelona")
	assert.Contains(t, out, "ganada")
	assert.Contains(t, out, "pendiente_1H")
	assert.Contains(t, out, "[live]")
	assert.Contains(t, out, "1 ganadas | 0 perdidas | 0 anuladas | 1 sin resolver")
}

func TestConsoleNotifyTicketVerdictLabels(t *testing.T) {
	tests := []struct {
		verdict string
		want    string
	}{
		{domain.VerdictWon, "GANADO"},
		{domain.VerdictLost, "PERDIDO"},
		{domain.VerdictPartial, "PARCIAL"},
		{"", "PENDIENTE"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var buf bytes.Buffer
			n := notify.NewConsoleWriter(&buf)

			ticket := makeTicket()
			ticket.Verdict = tt.verdict
			require.NoError(t, n.NotifyTicket(context.Background(), ticket))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}
