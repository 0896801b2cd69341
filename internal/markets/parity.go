package markets

// parity.go — mercados par/impar sobre córners y goles.

import (
	"fmt"
	"strings"

	"github.com/alejandrodnm/betcheck/internal/domain"
)

// "impar" contiene "par", así que se comprueba primero.
func oddEven(selection string, total int, actual string) domain.LegResult {
	even := total%2 == 0
	var won bool
	switch {
	case strings.Contains(selection, "impar"):
		won = !even
	case strings.Contains(selection, "par"):
		won = even
	}
	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}

// CornersOddEven evalúa la paridad del total de córners del partido.
func CornersOddEven(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	total := fx.Corners(homeIdx) + fx.Corners(awayIdx)
	return oddEven(lowerSel(leg), total, fmt.Sprintf("Total Córners: %d", total))
}

// FirstHalfCornersOddEven evalúa la paridad de los córners de la 1a mitad.
func FirstHalfCornersOddEven(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	home, away, _ := fx.FirstHalfCorners()
	total := home + away
	return oddEven(lowerSel(leg), total, fmt.Sprintf("1T Total Córners: %d", total))
}

// FirstHalfGoalsOddEven evalúa la paridad de los goles de la 1a mitad.
func FirstHalfGoalsOddEven(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	if !fx.Score.Halftime.Available() {
		return dataUnavailable("Datos del descanso no disponibles.")
	}
	total := fx.Score.Halftime.Values().Total()
	return oddEven(lowerSel(leg), total, fmt.Sprintf("1T Goles: %d", total))
}
