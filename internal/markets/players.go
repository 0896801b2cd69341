package markets

// players.go — mercados de jugador: goleador, asistencias, remates y
// tarjetas. El jugador se localiza por el primer tramo de la selección
// ("Benzema - Sí" → "benzema") contra ambas plantillas.

import (
	"fmt"
	"strings"

	"github.com/alejandrodnm/betcheck/internal/domain"
)

func playerNotFound() domain.LegResult {
	return domain.LegResult{
		Outcome: domain.ErrPlayerNotFound,
		Actual:  "Jugador no encontrado o sin estadísticas.",
	}
}

func playerFromLeg(leg domain.BetLeg, fx domain.Fixture) (domain.PlayerStats, bool) {
	name := strings.TrimSpace(strings.SplitN(leg.Selection, "-", 2)[0])
	return fx.FindPlayer(name)
}

// Scorer evalúa "marcará gol": gana si el jugador marcó al menos uno.
func Scorer(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	p, ok := playerFromLeg(leg, fx)
	if !ok {
		return playerNotFound()
	}

	actual := fmt.Sprintf("%s marcó %d gol(es).", p.Name, p.Goals)
	return domain.LegResult{Outcome: wonLost(p.Goals > 0), Actual: actual}
}

// MultiScorer evalúa "marcará N o más goles".
func MultiScorer(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	required, ok := domain.ParseOrMore(lowerSel(leg))
	if !ok {
		return domain.LegResult{
			Outcome: domain.ErrInvalidSelection,
			Actual:  "Selección de multigoleador no válida.",
		}
	}

	p, found := playerFromLeg(leg, fx)
	if !found {
		return playerNotFound()
	}

	actual := fmt.Sprintf("%s marcó %d gol(es).", p.Name, p.Goals)
	return domain.LegResult{Outcome: wonLost(p.Goals >= required), Actual: actual}
}

// Assists evalúa "dará una asistencia".
func Assists(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	p, ok := playerFromLeg(leg, fx)
	if !ok {
		return playerNotFound()
	}

	actual := fmt.Sprintf("%s hizo %d asistencia(s).", p.Name, p.Assists)
	return domain.LegResult{Outcome: wonLost(p.Assists > 0), Actual: actual}
}

// PlayerShots evalúa remates totales o a puerta contra un umbral más/menos.
func PlayerShots(onTarget bool) Evaluator {
	return func(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
		p, ok := playerFromLeg(leg, fx)
		if !ok {
			return playerNotFound()
		}

		threshold, ok := domain.ParseThreshold(lowerSel(leg))
		if !ok {
			return domain.LegResult{
				Outcome: domain.ErrInvalidSelection,
				Actual:  "Valor de remates no válido.",
			}
		}

		shots := p.ShotsTotal
		kind := "totales"
		if onTarget {
			shots = p.ShotsOn
			kind = "a puerta"
		}

		actual := fmt.Sprintf("%s - Remates %s: %d", p.Name, kind, shots)
		return domain.LegResult{Outcome: wonLost(threshold.Hits(float64(shots))), Actual: actual}
	}
}

// PlayerCarded evalúa "recibirá una tarjeta" (Sí/No), amarilla o roja.
func PlayerCarded(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
	p, ok := playerFromLeg(leg, fx)
	if !ok {
		return playerNotFound()
	}

	carded := p.Yellow > 0 || p.Red > 0
	actual := fmt.Sprintf("%s - Tarjetas: %d Amarilla(s), %d Roja(s).", p.Name, p.Yellow, p.Red)

	sel := lowerSel(leg)
	won := ((strings.Contains(sel, "sí") || strings.Contains(sel, "si")) && carded) ||
		(strings.Contains(sel, "no") && !carded)
	return domain.LegResult{Outcome: wonLost(won), Actual: actual}
}
