package markets

// outcome.go — familia de mercados de resultado: 1X2 y variantes (doble
// oportunidad, sin empate, hándicap, por mitades, tarjetas y córners).

import (
	"fmt"
	"strings"

	"github.com/alejandrodnm/betcheck/internal/domain"
)

// MatchResult evalúa el 1X2 clásico sobre el resultado final.
func MatchResult(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	sel := lowerSel(leg)

	won := false
	switch {
	case selectsHome(sel, fx) && fx.HomeWon():
		won = true
	case selectsAway(sel, fx) && fx.AwayWon():
		won = true
	case selectsDraw(sel) && fx.IsDraw():
		won = true
	}

	return domain.LegResult{Outcome: wonLost(won), Actual: finalScoreText(fx)}
}

// HalftimeResult evalúa el 1X2 sobre el marcador al descanso.
func HalftimeResult(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	if !fx.Score.Halftime.Available() {
		return dataUnavailable("Datos del descanso no disponibles.")
	}
	ht := fx.Score.Halftime.Values()
	sel := lowerSel(leg)

	won := false
	switch {
	case selectsHome(sel, fx) && ht.Home > ht.Away:
		won = true
	case selectsAway(sel, fx) && ht.Away > ht.Home:
		won = true
	case selectsDraw(sel) && ht.Home == ht.Away:
		won = true
	}

	actual := fmt.Sprintf("Descanso: %s %d - %d %s",
		fx.Teams.Home.Name, ht.Home, ht.Away, fx.Teams.Away.Name)
	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}

// DoubleChance evalúa la doble oportunidad (1X, X2, 12) del partido completo.
func DoubleChance(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	sel := compact(lowerSel(leg))

	won := false
	switch sel {
	case "1x":
		won = fx.HomeWon() || fx.IsDraw()
	case "x2":
		won = fx.AwayWon() || fx.IsDraw()
	case "12":
		won = fx.HomeWon() || fx.AwayWon()
	}

	return domain.LegResult{Outcome: wonLost(won), Actual: finalScoreText(fx)}
}

// FirstHalfDoubleChance evalúa la doble oportunidad sobre la primera mitad.
// Acepta tokens (1X/12/X2) o las formas largas "local o empate", etc.
func FirstHalfDoubleChance(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	if !fx.Score.Halftime.Available() {
		return dataUnavailable("Datos del descanso no disponibles.")
	}
	ht := fx.Score.Halftime.Values()
	sel := lowerSel(leg)
	actual := fmt.Sprintf("1T: %d-%d", ht.Home, ht.Away)

	won := false
	switch {
	case strings.Contains(sel, "1x") || strings.Contains(sel, "local o empate"):
		won = ht.Home >= ht.Away
	case strings.Contains(sel, "12") || strings.Contains(sel, "local o visitante"):
		won = ht.Home != ht.Away
	case strings.Contains(sel, "x2") || strings.Contains(sel, "empate o visitante"):
		won = ht.Home <= ht.Away
	}

	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}

// DrawNoBet evalúa la apuesta sin empate: el empate anula la leg.
func DrawNoBet(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	actual := finalScoreText(fx)
	if fx.IsDraw() {
		return domain.LegResult{Outcome: domain.OutcomeVoid, Actual: actual + " (Empate)"}
	}

	sel := lowerSel(leg)
	won := (fx.HomeWon() && strings.Contains(sel, strings.ToLower(fx.Teams.Home.Name))) ||
		(fx.AwayWon() && strings.Contains(sel, strings.ToLower(fx.Teams.Away.Name)))

	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}

// Handicap1x2 aplica el hándicap del mercado al lado local y evalúa el 1X2
// resultante. El valor va entre paréntesis en el texto del mercado.
func Handicap1x2(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	handicap, ok := domain.ParseHandicap(leg.Market)
	if !ok {
		return domain.LegResult{
			Outcome: domain.ErrNoHandicap,
			Actual:  "No se encontró el valor del hándicap en el mercado.",
		}
	}

	adjHome := float64(fx.Goals.Home) + handicap
	away := float64(fx.Goals.Away)
	actual := fmt.Sprintf("Resultado con Hándicap (%g): %.2f - %g", handicap, adjHome, away)

	sel := lowerSel(leg)
	won := false
	switch {
	case selectsHome(sel, fx):
		won = adjHome > away
	case selectsDraw(sel):
		won = adjHome == away
	case selectsAway(sel, fx):
		won = adjHome < away
	}

	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}

// HandicapCorners aplica el hándicap del mercado a los córners del lado local.
// No hay selección de empate en este mercado.
func HandicapCorners(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	handicap, ok := domain.ParseHandicap(leg.Market)
	if !ok {
		return domain.LegResult{
			Outcome: domain.ErrNoHandicap,
			Actual:  "No se encontró el valor del hándicap en el mercado.",
		}
	}

	adjHome := float64(fx.Corners(homeIdx)) + handicap
	away := float64(fx.Corners(awayIdx))
	actual := fmt.Sprintf("Resultado Córners con Hándicap (%g): %.2f - %g", handicap, adjHome, away)

	sel := lowerSel(leg)
	won := false
	switch {
	case selectsHome(sel, fx):
		won = adjHome > away
	case selectsAway(sel, fx):
		won = adjHome < away
	}

	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}

// Cards1x2 compara las tarjetas recibidas por cada equipo como un 1X2.
func Cards1x2(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	home := fx.Cards(homeIdx)
	away := fx.Cards(awayIdx)
	actual := fmt.Sprintf("Tarjetas: Local %d - Visitante %d", home, away)
	sel := lowerSel(leg)

	won := false
	switch {
	case selectsHome(sel, fx) && home > away:
		won = true
	case selectsDrawLoose(sel) && home == away:
		won = true
	case selectsAway(sel, fx) && home < away:
		won = true
	}

	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}

// Corners1x2 compara los córners lanzados por cada equipo como un 1X2.
func Corners1x2(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	home := fx.Corners(homeIdx)
	away := fx.Corners(awayIdx)
	actual := fmt.Sprintf("Córners: Local %d - Visitante %d", home, away)
	sel := lowerSel(leg)

	won := false
	switch {
	case selectsHome(sel, fx) && home > away:
		won = true
	case selectsDrawLoose(sel) && home == away:
		won = true
	case selectsAway(sel, fx) && home < away:
		won = true
	}

	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}

// HalfFull evalúa el mercado Mitad/Final: la selección "A/B" debe acertar
// el ganador al descanso y el ganador final.
func HalfFull(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	if !fx.Score.Halftime.Available() {
		return dataUnavailable("Datos del descanso no disponibles.")
	}
	ht := fx.Score.Halftime.Values()
	ft := fx.Goals
	actual := fmt.Sprintf("Descanso: %d-%d, Final: %d-%d", ht.Home, ht.Away, ft.Home, ft.Away)

	parts := strings.Split(compact(lowerSel(leg)), "/")
	if len(parts) != 2 {
		return invalidSelection(leg.Selection, actual)
	}

	sideOf := func(s domain.Score) string {
		switch {
		case s.Home > s.Away:
			return "local"
		case s.Away > s.Home:
			return "visitante"
		default:
			return "empate"
		}
	}

	mapSel := func(sel string) string {
		switch {
		case strings.Contains(sel, "local"),
			strings.Contains(sel, compact(strings.ToLower(fx.Teams.Home.Name))),
			sel == "1":
			return "local"
		case strings.Contains(sel, "visitante"),
			strings.Contains(sel, compact(strings.ToLower(fx.Teams.Away.Name))),
			sel == "2":
			return "visitante"
		case strings.Contains(sel, "empate"), strings.Contains(sel, "x"):
			return "empate"
		default:
			return "invalido"
		}
	}

	won := sideOf(ht) == mapSel(parts[0]) && sideOf(ft) == mapSel(parts[1])
	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}

// VictoryMargin evalúa "Equipo por N goles" (o "empate") contra el margen
// real de victoria.
func VictoryMargin(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	margin := fx.Goals.Home - fx.Goals.Away
	if margin < 0 {
		margin = -margin
	}

	winnerName := "Empate"
	if fx.HomeWon() {
		winnerName = fx.Teams.Home.Name
	} else if fx.AwayWon() {
		winnerName = fx.Teams.Away.Name
	}
	actual := fmt.Sprintf("Margen: %d, Ganador: %s", margin, winnerName)

	sel := lowerSel(leg)
	if strings.Contains(sel, "empate") {
		return domain.LegResult{Outcome: wonLost(fx.IsDraw()), Actual: actual}
	}

	parts := strings.Split(sel, " por ")
	if len(parts) != 2 {
		return domain.LegResult{Outcome: domain.ErrSelection, Actual: actual}
	}

	raw := strings.TrimSpace(strings.TrimSuffix(strings.TrimSuffix(parts[1], " goles"), " gol"))
	var n int
	if _, err := fmt.Sscanf(raw, "%d", &n); err != nil {
		return domain.LegResult{Outcome: domain.ErrSelection, Actual: actual}
	}

	teamWon := (fx.HomeWon() && strings.Contains(parts[0], strings.ToLower(fx.Teams.Home.Name))) ||
		(fx.AwayWon() && strings.Contains(parts[0], strings.ToLower(fx.Teams.Away.Name)))

	return domain.LegResult{Outcome: wonLost(teamWon && margin == n), Actual: actual}
}

// Comeback evalúa "remontará y ganará": perder al descanso y ganar al final.
func Comeback(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	if !fx.Score.Halftime.Available() || !fx.Score.Fulltime.Available() {
		return dataUnavailable("Datos del descanso no disponibles.")
	}
	ht := fx.Score.Halftime.Values()
	ft := fx.Score.Fulltime.Values()
	actual := fmt.Sprintf("Resultado 1T: %d-%d, Final: %d-%d", ht.Home, ht.Away, ft.Home, ft.Away)

	idx, _, ok := teamFromText(lowerSel(leg), fx)
	if !ok {
		return teamNotFound()
	}

	var cameBack bool
	if idx == homeIdx {
		cameBack = ht.Home < ht.Away && ft.Home > ft.Away
	} else {
		cameBack = ht.Away < ht.Home && ft.Away > ft.Home
	}

	return domain.LegResult{Outcome: wonLost(cameBack), Actual: actual}
}
