package markets

// halves.go — mercados de rendimiento por mitades: ganar ambas, ganar
// cualquiera y marcar en las dos partes. El equipo viene en la selección.

import (
	"fmt"

	"github.com/alejandrodnm/betcheck/internal/domain"
)

// halfPerformance descompone el partido en mitades y localiza el equipo de
// la selección. El LegResult de error se devuelve cuando ok=false.
func halfPerformance(leg domain.BetLeg, fx domain.Fixture) (ht, sh domain.Score, idx int, res domain.LegResult, ok bool) {
	if !fx.Score.Halftime.Available() {
		return ht, sh, 0, dataUnavailable("Datos del descanso no disponibles."), false
	}
	sh, _ = fx.SecondHalfGoals()
	ht = fx.Score.Halftime.Values()

	idx, _, found := teamFromText(lowerSel(leg), fx)
	if !found {
		return ht, sh, 0, teamNotFound(), false
	}
	return ht, sh, idx, domain.LegResult{}, true
}

func wonHalf(s domain.Score, idx int) bool {
	if idx == homeIdx {
		return s.Home > s.Away
	}
	return s.Away > s.Home
}

func halvesText(ht, sh domain.Score) string {
	return fmt.Sprintf("1T: %d-%d, 2T: %d-%d", ht.Home, ht.Away, sh.Home, sh.Away)
}

// WinsBothHalves evalúa si el equipo seleccionado ganó las dos mitades.
func WinsBothHalves(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	ht, sh, idx, res, ok := halfPerformance(leg, fx)
	if !ok {
		return res
	}
	won := wonHalf(ht, idx) && wonHalf(sh, idx)
	return domain.LegResult{Outcome: wonLost(won), Actual: halvesText(ht, sh)}
}

// WinsEitherHalf evalúa si el equipo seleccionado ganó al menos una mitad.
func WinsEitherHalf(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	ht, sh, idx, res, ok := halfPerformance(leg, fx)
	if !ok {
		return res
	}
	won := wonHalf(ht, idx) || wonHalf(sh, idx)
	return domain.LegResult{Outcome: wonLost(won), Actual: halvesText(ht, sh)}
}

// ScoresBothHalves evalúa si el equipo seleccionado marcó en las dos mitades.
func ScoresBothHalves(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	ht, sh, idx, res, ok := halfPerformance(leg, fx)
	if !ok {
		return res
	}
	won := pickSide(ht, idx) > 0 && pickSide(sh, idx) > 0
	actual := fmt.Sprintf("Goles 1T: %d-%d, Goles 2T: %d-%d", ht.Home, ht.Away, sh.Home, sh.Away)
	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}
