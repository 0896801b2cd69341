package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateVerdict_LostLegDominates(t *testing.T) {
	assert.Equal(t, VerdictLost, AggregateVerdict([]string{OutcomeWon, OutcomeLost}))
	// Incluso con legs pendientes, una perdida cierra el ticket
	assert.Equal(t, VerdictLost, AggregateVerdict([]string{"pendiente_NS", OutcomeLost, OutcomeWon}))
}

func TestAggregateVerdict_CriticalErrorLosesTicket(t *testing.T) {
	assert.Equal(t, VerdictLost, AggregateVerdict([]string{OutcomeWon, ErrCritical}))
}

func TestAggregateVerdict_AllWon(t *testing.T) {
	assert.Equal(t, VerdictWon, AggregateVerdict([]string{OutcomeWon, OutcomeWon, OutcomeWon}))
}

func TestAggregateVerdict_PendingLeg(t *testing.T) {
	assert.Equal(t, VerdictPending, AggregateVerdict([]string{OutcomeWon, "pendiente_NS"}))
}

func TestAggregateVerdict_UnsupportedMarketStaysPending(t *testing.T) {
	assert.Equal(t, VerdictPending, AggregateVerdict([]string{OutcomeWon, OutcomeUnsupportedMarket}))
}

func TestAggregateVerdict_NonCriticalErrorStaysPending(t *testing.T) {
	assert.Equal(t, VerdictPending, AggregateVerdict([]string{OutcomeWon, ErrPlayerNotFound}))
}

func TestAggregateVerdict_WonPlusVoidIsPartial(t *testing.T) {
	assert.Equal(t, VerdictPartial, AggregateVerdict([]string{OutcomeWon, OutcomeVoid}))
}

func TestAggregateVerdict_Empty(t *testing.T) {
	assert.Equal(t, VerdictPending, AggregateVerdict(nil))
}
