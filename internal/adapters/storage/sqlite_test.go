package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/betcheck/internal/adapters/storage"
	"github.com/alejandrodnm/betcheck/internal/domain"
)

func newStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	s, err := storage.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func makeTicket() domain.Ticket {
	return domain.Ticket{
		Stake:     20,
		TotalOdds: 4.35,
		Agent:     "agente-1",
		Client:    "cliente-7",
		Legs: []domain.BetLeg{
			{
				MatchLabel:  "Real Madrid vs Barcelona",
				ScheduledAt: "10/05/25 21:00",
				Market:      "Resultado del Partido",
				Selection:   "Real Madrid",
				Odds:        1.85,
				Kind:        domain.BetSimple,
			},
			{
				MatchLabel:  "Getafe vs Valencia",
				ScheduledAt: "10/05/25",
				Market:      "Crear Apuesta",
				Selection:   "Getafe y más de 1,5 goles",
				Odds:        2.35,
				Kind:        domain.BetBuilt,
				IsLive:      true,
				SubSelections: []domain.SubSelection{
					{Market: "Resultado del Partido", Selection: "Getafe"},
					{Market: "Total de Goles", Selection: "Más de 1,5"},
				},
			},
		},
	}
}

func TestCreateAndGetTicket(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	ticket := makeTicket()
	ticket.ID = "ticket-1"
	require.NoError(t, s.CreateTicket(ctx, ticket))

	got, err := s.GetTicket(ctx, "ticket-1")
	require.NoError(t, err)

	assert.Equal(t, 20.0, got.Stake)
	assert.Equal(t, 4.35, got.TotalOdds)
	assert.Equal(t, "agente-1", got.Agent)
	assert.Empty(t, got.Verdict)
	require.Len(t, got.Legs, 2)

	first := got.Legs[0]
	assert.NotEmpty(t, first.ID) // id asignado por el store
	assert.Equal(t, "ticket-1", first.TicketID)
	assert.Equal(t, "Real Madrid vs Barcelona", first.MatchLabel)
	assert.Equal(t, domain.BetSimple, first.Kind)
	assert.Empty(t, first.SubSelections)

	built := got.Legs[1]
	assert.Equal(t, domain.BetBuilt, built.Kind)
	assert.True(t, built.IsLive)
	require.Len(t, built.SubSelections, 2)
	assert.Equal(t, "Total de Goles", built.SubSelections[1].Market)
}

func TestGetTicketNotFound(t *testing.T) {
	s := newStore(t)

	_, err := s.GetTicket(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestListTickets(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	first := makeTicket()
	first.ID = "ticket-a"
	second := makeTicket()
	second.ID = "ticket-b"
	second.Legs = second.Legs[:1]

	require.NoError(t, s.CreateTicket(ctx, first))
	require.NoError(t, s.CreateTicket(ctx, second))

	tickets, err := s.ListTickets(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 2)

	byID := map[string]int{}
	for _, tk := range tickets {
		byID[tk.ID] = len(tk.Legs)
	}
	assert.Equal(t, 2, byID["ticket-a"])
	assert.Equal(t, 1, byID["ticket-b"])
}

func TestUpdateLegOutcomeAndVerdict(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	ticket := makeTicket()
	ticket.ID = "ticket-1"
	require.NoError(t, s.CreateTicket(ctx, ticket))

	got, err := s.GetTicket(ctx, "ticket-1")
	require.NoError(t, err)
	legID := got.Legs[0].ID

	require.NoError(t, s.UpdateLegOutcome(ctx, legID, domain.OutcomeWon, "Final: Real Madrid 2 - 1 Barcelona"))
	require.NoError(t, s.UpdateTicketVerdict(ctx, "ticket-1", domain.VerdictPending))

	got, err = s.GetTicket(ctx, "ticket-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeWon, got.Legs[0].Outcome)
	assert.Equal(t, "Final: Real Madrid 2 - 1 Barcelona", got.Legs[0].ActualText)
	assert.Equal(t, domain.VerdictPending, got.Verdict)

	// verificar dos veces sobreescribe sin duplicar
	require.NoError(t, s.UpdateLegOutcome(ctx, legID, domain.OutcomeLost, "Final: 0 - 1"))
	got, _ = s.GetTicket(ctx, "ticket-1")
	assert.Equal(t, domain.OutcomeLost, got.Legs[0].Outcome)
}

func TestUpdateMissingRows(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	err := s.UpdateLegOutcome(ctx, "missing-leg", domain.OutcomeWon, "")
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)

	err = s.UpdateTicketVerdict(ctx, "missing-ticket", domain.VerdictWon)
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}
