package markets

// ranges.go — mercados de rango: multigoles y "ambos marcan N o más".

import (
	"fmt"

	"github.com/alejandrodnm/betcheck/internal/domain"
)

// Multigoals evalúa el mercado multigoles: la selección es un rango
// inclusivo "2-3" o un mínimo abierto "4 o más". Si el texto del mercado
// nombra a un equipo se cuentan solo sus goles; si no, los de ambos.
func Multigoals(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	total := fx.Goals.Total()
	prefix := "Multigoles"
	if idx, name, ok := teamFromText(lowerMarket(leg), fx); ok {
		total = pickSide(fx.Goals, idx)
		prefix = "Multigoles " + name
	}
	actual := fmt.Sprintf("%s: %d", prefix, total)

	r, ok := domain.ParseRange(lowerSel(leg))
	if !ok {
		return domain.LegResult{Outcome: domain.ErrInvalidSelection, Actual: actual}
	}

	return domain.LegResult{Outcome: wonLost(r.Contains(total)), Actual: actual}
}

// BothTeamsScoreNPlus evalúa "ambos equipos marcan N o más goles": los dos
// lados tienen que alcanzar el mínimo por separado.
func BothTeamsScoreNPlus(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	required, ok := domain.ParseOrMore(lowerSel(leg))
	if !ok {
		return domain.LegResult{
			Outcome: domain.ErrInvalidSelection,
			Actual:  fmt.Sprintf("Resultado: %d-%d", fx.Goals.Home, fx.Goals.Away),
		}
	}

	actual := fmt.Sprintf("Ambos marcan %d+ goles? Local: %d, Visitante: %d",
		required, fx.Goals.Home, fx.Goals.Away)
	won := fx.Goals.Home >= required && fx.Goals.Away >= required
	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}
