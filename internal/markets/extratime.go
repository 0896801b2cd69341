package markets

// extratime.go — mercados de eliminatoria: prórroga, penaltis, quién se
// clasifica y por qué vía.

import (
	"fmt"
	"strings"

	"github.com/alejandrodnm/betcheck/internal/domain"
)

func yesNoMarket(selection string, happened bool, actualYes, actualNo string) domain.LegResult {
	actual := actualNo
	if happened {
		actual = actualYes
	}
	won := (domain.IsYes(selection) && happened) || (domain.IsNo(selection) && !happened)
	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}

// ExtraTime evalúa "¿habrá prórroga?" (Sí/No).
func ExtraTime(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	happened := fx.Score.Extratime.Home != nil
	return yesNoMarket(lowerSel(leg), happened, "Sí hubo prórroga", "No hubo prórroga")
}

// Penalties evalúa "¿habrá lanzamientos de penaltis?" (Sí/No).
func Penalties(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	happened := fx.Score.Penalty.Home != nil
	return yesNoMarket(lowerSel(leg), happened, "Sí hubo penaltis", "No hubo penaltis")
}

// qualifiedTeam resuelve quién pasa la eliminatoria con la precedencia:
// penaltis > prórroga > flags de ganador > suma prórroga+penaltis cuando el
// proveedor no marcó ganador tras AET/PEN. ok=false si nada de lo anterior
// desempata.
func qualifiedTeam(fx domain.Fixture) (string, bool) {
	if fx.Score.Penalty.Available() {
		p := fx.Score.Penalty.Values()
		if p.Home > p.Away {
			return fx.Teams.Home.Name, true
		}
		return fx.Teams.Away.Name, true
	}

	if fx.Score.Extratime.Available() {
		et := fx.Score.Extratime.Values()
		if et.Home > et.Away {
			return fx.Teams.Home.Name, true
		}
		return fx.Teams.Away.Name, true
	}

	if fx.HomeWon() {
		return fx.Teams.Home.Name, true
	}
	if fx.AwayWon() {
		return fx.Teams.Away.Name, true
	}

	// Algunos fixtures AET/PEN llegan sin flag de ganador: se reconstruye el
	// total sumando prórroga (o marcador final) y penaltis.
	if fx.Status.Short == "AET" || fx.Status.Short == "PEN" {
		home := valueOr(fx.Score.Extratime.Home, fx.Goals.Home) + valueOr(fx.Score.Penalty.Home, 0)
		away := valueOr(fx.Score.Extratime.Away, fx.Goals.Away) + valueOr(fx.Score.Penalty.Away, 0)
		if home != away {
			if home > away {
				return fx.Teams.Home.Name, true
			}
			return fx.Teams.Away.Name, true
		}
	}

	return "", false
}

func valueOr(p *int, fallback int) int {
	if p != nil {
		return *p
	}
	return fallback
}

// Qualifies evalúa "se clasifica": la selección debe nombrar al equipo que
// pasó la eliminatoria.
func Qualifies(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	winner, ok := qualifiedTeam(fx)
	if !ok {
		return domain.LegResult{
			Outcome: domain.ErrNoWinner,
			Actual:  "No se pudo determinar un ganador para la clasificación.",
		}
	}

	actual := "Se clasifica: " + winner
	won := strings.Contains(lowerSel(leg), strings.ToLower(winner))
	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}

// QualificationMethod evalúa por qué vía se decidió la eliminatoria:
// tiempo reglamentario, prórroga o penaltis.
func QualificationMethod(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	method := "Tiempo reglamentario"
	switch {
	case fx.Score.Penalty.Home != nil:
		method = "Penaltis"
	case fx.Score.Extratime.Home != nil:
		method = "Prórroga"
	}

	actual := fmt.Sprintf("Método de clasificación: %s", method)
	won := strings.Contains(lowerSel(leg), strings.ToLower(method))
	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}
