// Package markets contiene los evaluadores de mercado y el clasificador que
// decide qué evaluador corresponde a la etiqueta de mercado de una leg.
//
// Todos los evaluadores son funciones puras: consumen la leg y el fixture y
// producen un LegResult (tag + hecho real comprobado). Nunca hacen I/O y
// nunca devuelven error de Go — los fallos se codifican en el tag.
package markets

import (
	"fmt"
	"strings"

	"github.com/alejandrodnm/betcheck/internal/domain"
)

// Evaluator calcula el resultado de una leg contra un partido finalizado.
type Evaluator func(leg domain.BetLeg, fx domain.Fixture) domain.LegResult

// wonLost traduce un booleano al par ganada/perdida.
func wonLost(won bool) string {
	if won {
		return domain.OutcomeWon
	}
	return domain.OutcomeLost
}

// finalScoreText formatea el marcador final con los nombres del proveedor.
func finalScoreText(fx domain.Fixture) string {
	return fmt.Sprintf("Final: %s %d - %d %s",
		fx.Teams.Home.Name, fx.Goals.Home, fx.Goals.Away, fx.Teams.Away.Name)
}

// invalidSelection es el resultado descriptivo para selecciones que no se
// pudieron interpretar: el tag es el propio texto, y cuenta como no ganada.
func invalidSelection(selection, actual string) domain.LegResult {
	return domain.LegResult{
		Outcome: fmt.Sprintf("Selección '%s' no válida.", selection),
		Actual:  actual,
	}
}

// dataUnavailable es el error de datos con su detalle.
func dataUnavailable(detail string) domain.LegResult {
	return domain.LegResult{Outcome: domain.ErrData, Actual: detail}
}

// lowerSel devuelve la selección en minúsculas, lista para los parsers.
func lowerSel(leg domain.BetLeg) string {
	return strings.ToLower(leg.Selection)
}

// lowerMarket devuelve la etiqueta de mercado en minúsculas, conservando el
// whitespace para la contención de nombres de equipo.
func lowerMarket(leg domain.BetLeg) string {
	return strings.ToLower(leg.Market)
}

// compact elimina todo el whitespace de un string ya en minúsculas.
func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// Matching de identidad de equipo: contención case-insensitive del nombre
// del proveedor dentro de la selección, o los tokens cortos 1/x/2.

func selectsHome(sel string, fx domain.Fixture) bool {
	return strings.Contains(sel, strings.ToLower(fx.Teams.Home.Name)) || sel == "1"
}

func selectsAway(sel string, fx domain.Fixture) bool {
	return strings.Contains(sel, strings.ToLower(fx.Teams.Away.Name)) || sel == "2"
}

func selectsDraw(sel string) bool {
	return strings.Contains(sel, "empate") || sel == "x"
}

// selectsDrawLoose acepta cualquier selección que contenga una "x"; es el
// matching que los mercados de tarjetas y córners 1x2 usan para el empate.
func selectsDrawLoose(sel string) bool {
	return strings.Contains(sel, "empate") || strings.Contains(sel, "x")
}

// teamIdx identifica lado local/visitante por índice de estadísticas.
const (
	homeIdx = 0
	awayIdx = 1
)

// teamFromText localiza el equipo nombrado dentro de un texto (mercado o
// selección). Devuelve el índice del lado y el nombre del proveedor.
func teamFromText(text string, fx domain.Fixture) (idx int, name string, ok bool) {
	if strings.Contains(text, strings.ToLower(fx.Teams.Home.Name)) {
		return homeIdx, fx.Teams.Home.Name, true
	}
	if strings.Contains(text, strings.ToLower(fx.Teams.Away.Name)) {
		return awayIdx, fx.Teams.Away.Name, true
	}
	return 0, "", false
}

// teamNotFound es el error estándar cuando el texto no nombra a ninguno de
// los dos equipos del fixture.
func teamNotFound() domain.LegResult {
	return domain.LegResult{
		Outcome: domain.ErrTeamNotFound,
		Actual:  "No se pudo identificar el equipo en el mercado.",
	}
}

// Fallback es el evaluador para mercados que ninguna regla reconoce.
func Fallback(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	return domain.LegResult{
		Outcome: domain.OutcomeUnsupportedMarket,
		Actual:  fmt.Sprintf("Final: %d - %d", fx.Goals.Home, fx.Goals.Away),
	}
}
