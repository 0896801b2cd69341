package verifier

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/betcheck/internal/domain"
)

// --- stubs ---

type stubProvider struct {
	mu       sync.Mutex
	calls    int
	fixtures map[string][]domain.Fixture
	err      error
	panics   bool
}

func (p *stubProvider) FixturesByDate(_ context.Context, date string) ([]domain.Fixture, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	if p.panics {
		panic("boom")
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.fixtures[date], nil
}

type memStore struct {
	mu       sync.Mutex
	tickets  map[string]domain.Ticket
	outcomes map[string]domain.LegResult
	verdicts map[string]string
	updErr   error
}

func newMemStore(tickets ...domain.Ticket) *memStore {
	s := &memStore{
		tickets:  make(map[string]domain.Ticket),
		outcomes: make(map[string]domain.LegResult),
		verdicts: make(map[string]string),
	}
	for _, t := range tickets {
		s.tickets[t.ID] = t
	}
	return s
}

func (s *memStore) CreateTicket(_ context.Context, t domain.Ticket) error {
	s.tickets[t.ID] = t
	return nil
}

func (s *memStore) GetTicket(_ context.Context, id string) (domain.Ticket, error) {
	t, ok := s.tickets[id]
	if !ok {
		return domain.Ticket{}, domain.ErrTicketNotFound
	}
	return t, nil
}

func (s *memStore) ListTickets(_ context.Context) ([]domain.Ticket, error) {
	var out []domain.Ticket
	for _, t := range s.tickets {
		out = append(out, t)
	}
	return out, nil
}

func (s *memStore) UpdateLegOutcome(_ context.Context, legID, outcome, actual string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updErr != nil {
		return s.updErr
	}
	s.outcomes[legID] = domain.LegResult{Outcome: outcome, Actual: actual}
	return nil
}

func (s *memStore) UpdateTicketVerdict(_ context.Context, ticketID, verdict string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updErr != nil {
		return s.updErr
	}
	s.verdicts[ticketID] = verdict
	return nil
}

func (s *memStore) Close() error { return nil }

type recordingNotifier struct {
	ticket domain.Ticket
	called bool
}

func (n *recordingNotifier) NotifyTicket(_ context.Context, t domain.Ticket) error {
	n.called = true
	n.ticket = t
	return nil
}

// --- fixtures de prueba ---

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func finishedFixture() domain.Fixture {
	return domain.Fixture{
		ID:     42,
		Status: domain.FixtureStatus{Short: "FT", Long: "Match Finished"},
		Teams: domain.Teams{
			Home: domain.Team{ID: 1, Name: "Real Madrid", Winner: boolPtr(true)},
			Away: domain.Team{ID: 2, Name: "Barcelona", Winner: boolPtr(false)},
		},
		Goals: domain.Score{Home: 2, Away: 1},
		Score: domain.ScoreBreakdown{
			Halftime: domain.PartialScore{Home: intPtr(1), Away: intPtr(0)},
			Fulltime: domain.PartialScore{Home: intPtr(2), Away: intPtr(1)},
		},
	}
}

func makeLeg(id, label, date, market, selection string) domain.BetLeg {
	return domain.BetLeg{
		ID:          id,
		MatchLabel:  label,
		ScheduledAt: date,
		Market:      market,
		Selection:   selection,
		Kind:        domain.BetSimple,
	}
}

func makeTicket(legs ...domain.BetLeg) domain.Ticket {
	return domain.Ticket{ID: "ticket-1", Stake: 10, TotalOdds: 3.1, Legs: legs}
}

// --- tests ---

func TestVerifyTicketAllWonSharesFetch(t *testing.T) {
	provider := &stubProvider{fixtures: map[string][]domain.Fixture{
		"2025-05-10": {finishedFixture()},
	}}
	ticket := makeTicket(
		makeLeg("leg-1", "Real Madrid vs Barcelona", "10/05/25 21:00", "Resultado del Partido", "Real Madrid"),
		makeLeg("leg-2", "Real Madrid vs Barcelona", "10/05/2025", "Total de Goles", "Más de 2,5"),
	)
	store := newMemStore(ticket)
	notifier := &recordingNotifier{}

	v := New(Config{Workers: 4}, provider, store, notifier)
	got, err := v.VerifyTicket(context.Background(), "ticket-1")
	require.NoError(t, err)

	assert.Equal(t, domain.VerdictWon, got.Verdict)
	assert.Equal(t, domain.OutcomeWon, got.Legs[0].Outcome)
	assert.Equal(t, "Final: Real Madrid 2 - 1 Barcelona", got.Legs[0].ActualText)
	assert.Equal(t, domain.OutcomeWon, got.Legs[1].Outcome)

	// ambas legs son del mismo día: una sola llamada al API
	assert.Equal(t, 1, provider.calls)

	// resultados y veredicto persistidos
	assert.Equal(t, domain.OutcomeWon, store.outcomes["leg-1"].Outcome)
	assert.Equal(t, domain.OutcomeWon, store.outcomes["leg-2"].Outcome)
	assert.Equal(t, domain.VerdictWon, store.verdicts["ticket-1"])

	require.True(t, notifier.called)
	assert.Equal(t, domain.VerdictWon, notifier.ticket.Verdict)
}

func TestVerifyTicketFetchesPerDate(t *testing.T) {
	provider := &stubProvider{fixtures: map[string][]domain.Fixture{
		"2025-05-10": {finishedFixture()},
		"2025-05-11": {finishedFixture()},
	}}
	ticket := makeTicket(
		makeLeg("leg-1", "Real Madrid vs Barcelona", "10/05/25", "1X2", "Real Madrid"),
		makeLeg("leg-2", "Real Madrid vs Barcelona", "11/05/25", "1X2", "Real Madrid"),
	)
	store := newMemStore(ticket)

	v := New(Config{Workers: 2}, provider, store, nil)
	_, err := v.VerifyTicket(context.Background(), "ticket-1")
	require.NoError(t, err)
	assert.Equal(t, 2, provider.calls)
}

func TestVerifyTicketLostDominates(t *testing.T) {
	provider := &stubProvider{fixtures: map[string][]domain.Fixture{
		"2025-05-10": {finishedFixture()},
	}}
	ticket := makeTicket(
		makeLeg("leg-1", "Real Madrid vs Barcelona", "10/05/25", "Resultado del Partido", "Real Madrid"),
		makeLeg("leg-2", "Real Madrid vs Barcelona", "10/05/25", "Resultado del Partido", "Barcelona"),
	)
	store := newMemStore(ticket)

	v := New(Config{}, provider, store, nil)
	got, err := v.VerifyTicket(context.Background(), "ticket-1")
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictLost, got.Verdict)
}

func TestVerifyTicketPendingMatch(t *testing.T) {
	fx := finishedFixture()
	fx.Status = domain.FixtureStatus{Short: "1H", Long: "First Half"}
	provider := &stubProvider{fixtures: map[string][]domain.Fixture{
		"2025-05-10": {fx},
	}}
	ticket := makeTicket(
		makeLeg("leg-1", "Real Madrid vs Barcelona", "10/05/25", "1X2", "Real Madrid"),
	)
	store := newMemStore(ticket)

	v := New(Config{}, provider, store, nil)
	got, err := v.VerifyTicket(context.Background(), "ticket-1")
	require.NoError(t, err)

	assert.Equal(t, "pendiente_1H", got.Legs[0].Outcome)
	assert.Equal(t, "Estado actual: First Half", got.Legs[0].ActualText)
	assert.Equal(t, domain.VerdictPending, got.Verdict)
}

func TestVerifyTicketResolutionErrors(t *testing.T) {
	provider := &stubProvider{fixtures: map[string][]domain.Fixture{
		"2025-05-10": {finishedFixture()},
	}}
	ticket := makeTicket(
		makeLeg("leg-1", "Real Madrid Barcelona", "10/05/25", "1X2", "1"),
		makeLeg("leg-2", "Real Madrid vs Barcelona", "algún día", "1X2", "1"),
		makeLeg("leg-3", "Sevilla vs Betis", "10/05/25", "1X2", "1"),
	)
	store := newMemStore(ticket)

	v := New(Config{Workers: 1}, provider, store, nil)
	got, err := v.VerifyTicket(context.Background(), "ticket-1")
	require.NoError(t, err)

	assert.Equal(t, domain.ErrMatchLabel, got.Legs[0].Outcome)
	assert.Equal(t, domain.ErrInvalidDate, got.Legs[1].Outcome)
	assert.Equal(t, domain.ErrMatchNotFound, got.Legs[2].Outcome)
	assert.Contains(t, got.Legs[2].ActualText, "[Sevilla vs Betis]")
	assert.Equal(t, domain.VerdictPending, got.Verdict)
}

func TestVerifyTicketReversedTeamsMatch(t *testing.T) {
	provider := &stubProvider{fixtures: map[string][]domain.Fixture{
		"2025-05-10": {finishedFixture()},
	}}
	ticket := makeTicket(
		makeLeg("leg-1", "Barcelona vs Real Madrid", "10/05/25", "Resultado del Partido", "Real Madrid"),
	)
	store := newMemStore(ticket)

	v := New(Config{}, provider, store, nil)
	got, err := v.VerifyTicket(context.Background(), "ticket-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeWon, got.Legs[0].Outcome)
}

func TestVerifyTicketProviderError(t *testing.T) {
	provider := &stubProvider{err: errors.New("api caída")}
	ticket := makeTicket(
		makeLeg("leg-1", "Real Madrid vs Barcelona", "10/05/25", "1X2", "1"),
	)
	store := newMemStore(ticket)

	v := New(Config{}, provider, store, nil)
	got, err := v.VerifyTicket(context.Background(), "ticket-1")
	require.NoError(t, err)

	assert.Equal(t, domain.ErrAPI, got.Legs[0].Outcome)
	assert.Contains(t, got.Legs[0].ActualText, "api caída")
	assert.Equal(t, domain.VerdictPending, got.Verdict)
}

func TestVerifyTicketPanicIsCritical(t *testing.T) {
	provider := &stubProvider{panics: true}
	ticket := makeTicket(
		makeLeg("leg-1", "Real Madrid vs Barcelona", "10/05/25", "1X2", "1"),
	)
	store := newMemStore(ticket)

	v := New(Config{}, provider, store, nil)
	got, err := v.VerifyTicket(context.Background(), "ticket-1")
	require.NoError(t, err)

	assert.Equal(t, domain.ErrCritical, got.Legs[0].Outcome)
	// error_critico pierde el ticket entero
	assert.Equal(t, domain.VerdictLost, got.Verdict)
}

func TestVerifyTicketUnknownTicket(t *testing.T) {
	v := New(Config{}, &stubProvider{}, newMemStore(), nil)
	_, err := v.VerifyTicket(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestVerifyTicketPersistFailureDoesNotAbort(t *testing.T) {
	provider := &stubProvider{fixtures: map[string][]domain.Fixture{
		"2025-05-10": {finishedFixture()},
	}}
	ticket := makeTicket(
		makeLeg("leg-1", "Real Madrid vs Barcelona", "10/05/25", "Resultado del Partido", "Real Madrid"),
	)
	store := newMemStore(ticket)
	store.updErr = errors.New("disco lleno")

	v := New(Config{}, provider, store, nil)
	got, err := v.VerifyTicket(context.Background(), "ticket-1")
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictWon, got.Verdict)
	assert.Equal(t, domain.OutcomeWon, got.Legs[0].Outcome)
}

func TestIsoDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"10/05/25", "2025-05-10", true},
		{"10/05/2025", "2025-05-10", true},
		{"1/5/25", "2025-05-01", true},
		{"10/05/25 21:00", "2025-05-10", true},
		{"  10/05/25  ", "2025-05-10", true},
		{"N/A", "", false},
		{"", "", false},
		{"2025-05-10", "", false},
		{"32/05/25", "", false},
		{"10/13/25", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := isoDate(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
