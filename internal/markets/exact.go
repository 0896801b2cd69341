package markets

// exact.go — marcador exacto (partido y descanso) y goles exactos.

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alejandrodnm/betcheck/internal/domain"
)

// ExactScore compara la selección "A-B" contra el marcador final literal.
func ExactScore(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	actual := fmt.Sprintf("Final: %d - %d", fx.Goals.Home, fx.Goals.Away)

	home, away, ok := domain.ParseExactScore(leg.Selection)
	if !ok {
		return invalidSelection(leg.Selection, actual)
	}

	won := fx.Goals.Home == home && fx.Goals.Away == away
	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}

// FirstHalfExactScore compara la selección contra el marcador al descanso.
func FirstHalfExactScore(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	if !fx.Score.Halftime.Available() {
		return dataUnavailable("Datos del descanso no disponibles.")
	}
	ht := fx.Score.Halftime.Values()
	actual := fmt.Sprintf("1T Marcador: %d - %d", ht.Home, ht.Away)

	home, away, ok := domain.ParseExactScore(leg.Selection)
	if !ok {
		return invalidSelection(leg.Selection, actual)
	}

	won := ht.Home == home && ht.Away == away
	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}

// ExactGoals evalúa "N" (goles totales exactos) o "N+" (N o más).
func ExactGoals(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	total := fx.Goals.Total()
	actual := fmt.Sprintf("Goles exactos: %d", total)
	sel := strings.TrimSpace(lowerSel(leg))

	if strings.Contains(sel, "+") {
		if n, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(sel, "+", ""))); err == nil {
			return domain.LegResult{Outcome: wonLost(total >= n), Actual: actual}
		}
	}

	n, err := strconv.Atoi(sel)
	if err != nil {
		return domain.LegResult{Outcome: domain.ErrSelection, Actual: actual}
	}
	return domain.LegResult{Outcome: wonLost(total == n), Actual: actual}
}
