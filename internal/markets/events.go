package markets

// events.go — mercados posicionales sobre la secuencia de eventos:
// primer/último gol y primer/último córner.

import (
	"fmt"
	"strings"

	"github.com/alejandrodnm/betcheck/internal/domain"
)

// FirstOrLastGoal evalúa qué equipo marcó el primer (o último) gol.
// Si no hubo goles, solo gana la selección "no hay goles".
func FirstOrLastGoal(first bool) Evaluator {
	return func(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
		goals := fx.EventsOfType(domain.EventGoal)
		sel := lowerSel(leg)

		if len(goals) == 0 {
			won := strings.Contains(sel, "no hay goles")
			return domain.LegResult{Outcome: wonLost(won), Actual: "No hubo goles."}
		}

		goal := goals[len(goals)-1]
		label := "Último"
		if first {
			goal = goals[0]
			label = "Primer"
		}

		actual := fmt.Sprintf("%s gol: %s (%d')", label, goal.TeamName, goal.Elapsed)
		won := strings.Contains(strings.ToLower(goal.TeamName), sel)
		return domain.LegResult{Outcome: wonLost(won), Actual: actual}
	}
}

// FirstOrLastCorner evalúa qué equipo lanzó el primer (o último) córner.
// Sin córners en el partido la leg se anula.
func FirstOrLastCorner(first bool) Evaluator {
	return func(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
		corners := fx.EventsOfType(domain.EventCorner)
		if len(corners) == 0 {
			return domain.LegResult{Outcome: domain.OutcomeVoid, Actual: "No hubo córners."}
		}

		corner := corners[len(corners)-1]
		label := "Último"
		if first {
			corner = corners[0]
			label = "Primer"
		}

		actual := fmt.Sprintf("%s córner: %s (%d')", label, corner.TeamName, corner.Elapsed)
		won := strings.Contains(strings.ToLower(corner.TeamName), lowerSel(leg))
		return domain.LegResult{Outcome: wonLost(won), Actual: actual}
	}
}

// FirstHalfLastCorner evalúa el último córner de la primera mitad.
func FirstHalfLastCorner(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	_, _, corners := fx.FirstHalfCorners()
	if len(corners) == 0 {
		return domain.LegResult{Outcome: domain.OutcomeVoid, Actual: "No hubo córners en la 1T."}
	}

	last := corners[len(corners)-1]
	actual := fmt.Sprintf("Último córner 1T: %s (%d')", last.TeamName, last.Elapsed)
	won := strings.Contains(strings.ToLower(last.TeamName), lowerSel(leg))
	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}
