package markets

// btts.go — familia "ambos equipos marcan" y mercados de quién marca.

import (
	"fmt"
	"strings"

	"github.com/alejandrodnm/betcheck/internal/domain"
)

// BothTeamsScore evalúa el BTTS clásico del partido completo (Sí/No).
func BothTeamsScore(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	both := fx.Goals.Home > 0 && fx.Goals.Away > 0

	actual := "No marcaron ambos"
	if both {
		actual = "Ambos marcaron"
	}

	sel := lowerSel(leg)
	won := (domain.IsYes(sel) && both) || (domain.IsNo(sel) && !both)
	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}

// FirstHalfBothTeamsScore evalúa el BTTS sobre la primera mitad.
func FirstHalfBothTeamsScore(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	if !fx.Score.Halftime.Available() {
		return dataUnavailable("Datos del descanso no disponibles.")
	}
	ht := fx.Score.Halftime.Values()
	actual := fmt.Sprintf("1T: %d-%d", ht.Home, ht.Away)

	both := ht.Home > 0 && ht.Away > 0
	sel := lowerSel(leg)
	won := (domain.IsYes(sel) && both) || (domain.IsNo(sel) && !both)
	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}

// SecondHalfBothTeamsScore evalúa el BTTS sobre la segunda mitad derivada.
func SecondHalfBothTeamsScore(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	sh, ok := fx.SecondHalfGoals()
	if !ok {
		return dataUnavailable("Datos del descanso no disponibles.")
	}
	actual := fmt.Sprintf("2T Goles: Local %d - Visitante %d", sh.Home, sh.Away)

	both := sh.Home > 0 && sh.Away > 0
	sel := lowerSel(leg)
	won := (domain.IsYes(sel) && both) || (domain.IsNo(sel) && !both)
	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}

// BothTeamsScoreBothHalves evalúa si ambos equipos marcaron en las dos
// mitades. La selección "No" gana si falla en cualquiera de las dos.
func BothTeamsScoreBothHalves(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	if !fx.Score.Halftime.Available() {
		return dataUnavailable("Datos del descanso no disponibles.")
	}
	ht := fx.Score.Halftime.Values()
	sh, _ := fx.SecondHalfGoals()
	actual := fmt.Sprintf("1T: %d-%d, 2T: %d-%d", ht.Home, ht.Away, sh.Home, sh.Away)

	firstBoth := ht.Home > 0 && ht.Away > 0
	secondBoth := sh.Home > 0 && sh.Away > 0

	sel := lowerSel(leg)
	won := (domain.IsYes(sel) && firstBoth && secondBoth) ||
		(domain.IsNo(sel) && (!firstBoth || !secondBoth))
	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}

// WhichTeamScores evalúa "qué equipo marca": ambos, solo uno o ninguno.
func WhichTeamScores(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	home, away := fx.Goals.Home, fx.Goals.Away

	var actual string
	switch {
	case home > 0 && away > 0:
		actual = "Ambos equipos marcaron"
	case home > 0:
		actual = "Solo marcó " + fx.Teams.Home.Name
	case away > 0:
		actual = "Solo marcó " + fx.Teams.Away.Name
	default:
		actual = "Ningún equipo marcó"
	}

	sel := lowerSel(leg)
	won := false
	switch {
	case strings.Contains(sel, "ambos") && home > 0 && away > 0:
		won = true
	case strings.Contains(sel, strings.ToLower(fx.Teams.Home.Name)) && home > 0 && away == 0:
		won = true
	case strings.Contains(sel, strings.ToLower(fx.Teams.Away.Name)) && away > 0 && home == 0:
		won = true
	case strings.Contains(sel, "ninguno") && home == 0 && away == 0:
		won = true
	}

	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}

// SecondHalfTeamScores evalúa "el equipo X marca en la 2a mitad" (Sí/No).
// El equipo viene nombrado en el texto del mercado.
func SecondHalfTeamScores(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	sh, ok := fx.SecondHalfGoals()
	if !ok {
		return dataUnavailable("Datos del descanso no disponibles.")
	}

	idx, name, ok := teamFromText(lowerMarket(leg), fx)
	if !ok {
		return teamNotFound()
	}

	scored := pickSide(sh, idx) > 0
	siNo := "No"
	if scored {
		siNo = "Sí"
	}
	actual := fmt.Sprintf("2T %s marcó: %s", name, siNo)

	sel := lowerSel(leg)
	won := (domain.IsYes(sel) && scored) || (domain.IsNo(sel) && !scored)
	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}
