package markets

// totals.go — motor único de umbrales "más/menos N" parametrizado por
// métrica (goles, córners, tarjetas), alcance (partido, 1a mitad, 2a mitad)
// y sujeto (ambos equipos o el equipo nombrado en el mercado).
//
// Las ~12 variantes de totales del clasificador son instancias de este motor,
// con comportamiento observable idéntico al de las verificaciones separadas.

import (
	"fmt"

	"github.com/alejandrodnm/betcheck/internal/domain"
)

// Metric es la magnitud que se suma y compara.
type Metric int

const (
	MetricGoals Metric = iota
	MetricCorners
	MetricCards
)

// Scope es el tramo del partido sobre el que se mide la métrica.
type Scope int

const (
	ScopeFull Scope = iota
	ScopeFirstHalf
	ScopeSecondHalf
)

// Subject indica si se mide el total combinado o el de un equipo concreto.
type Subject int

const (
	SubjectCombined Subject = iota
	SubjectTeam // el equipo se extrae del texto del mercado
)

func (m Metric) label() string {
	switch m {
	case MetricCorners:
		return "Córners"
	case MetricCards:
		return "Tarjetas"
	default:
		return "Goles"
	}
}

func (s Scope) prefix() string {
	switch s {
	case ScopeFirstHalf:
		return "1T "
	case ScopeSecondHalf:
		return "2T "
	default:
		return ""
	}
}

// OverUnder construye el evaluador de umbral para la combinación dada.
func OverUnder(metric Metric, scope Scope, subject Subject) Evaluator {
	return func(leg domain.BetLeg, fx domain.Fixture) domain.LegResult {
		teamIdx := -1
		teamName := ""
		if subject == SubjectTeam {
			idx, name, ok := teamFromText(lowerMarket(leg), fx)
			if !ok {
				return teamNotFound()
			}
			teamIdx, teamName = idx, name
		}

		total, res, ok := metricTotal(fx, metric, scope, teamIdx)
		if !ok {
			return res
		}

		actual := totalText(metric, scope, teamName, total)
		threshold, ok := domain.ParseThreshold(lowerSel(leg))
		if !ok {
			return invalidSelection(leg.Selection, actual)
		}

		return domain.LegResult{Outcome: wonLost(threshold.Hits(float64(total))), Actual: actual}
	}
}

// metricTotal calcula el valor a comparar. El segundo retorno trae el
// LegResult de error cuando ok=false.
func metricTotal(fx domain.Fixture, metric Metric, scope Scope, teamIdx int) (int, domain.LegResult, bool) {
	switch metric {
	case MetricGoals:
		return goalsTotal(fx, scope, teamIdx)
	case MetricCorners:
		return cornersTotal(fx, scope, teamIdx)
	default:
		return cardsTotal(fx, teamIdx), domain.LegResult{}, true
	}
}

func goalsTotal(fx domain.Fixture, scope Scope, teamIdx int) (int, domain.LegResult, bool) {
	var s domain.Score
	switch scope {
	case ScopeFirstHalf:
		if !fx.Score.Halftime.Available() {
			return 0, dataUnavailable("Datos del descanso no disponibles."), false
		}
		s = fx.Score.Halftime.Values()
	case ScopeSecondHalf:
		sh, ok := fx.SecondHalfGoals()
		if !ok {
			return 0, dataUnavailable("Datos del descanso no disponibles."), false
		}
		s = sh
	default:
		s = fx.Goals
	}
	return pickSide(s, teamIdx), domain.LegResult{}, true
}

func cornersTotal(fx domain.Fixture, scope Scope, teamIdx int) (int, domain.LegResult, bool) {
	if scope == ScopeFirstHalf {
		home, away, _ := fx.FirstHalfCorners()
		return pickSide(domain.Score{Home: home, Away: away}, teamIdx), domain.LegResult{}, true
	}

	if teamIdx >= 0 {
		return fx.Corners(teamIdx), domain.LegResult{}, true
	}

	// Para el total combinado del partido la ausencia del dato es un error:
	// un 0 silencioso ganaría cualquier "menos de N".
	home, okH := fx.CornersStrict(homeIdx)
	away, okA := fx.CornersStrict(awayIdx)
	if !okH || !okA {
		return 0, dataUnavailable("Datos de córners no disponibles."), false
	}
	return home + away, domain.LegResult{}, true
}

func cardsTotal(fx domain.Fixture, teamIdx int) int {
	if teamIdx >= 0 {
		return fx.Cards(teamIdx)
	}
	return fx.Cards(homeIdx) + fx.Cards(awayIdx)
}

func pickSide(s domain.Score, teamIdx int) int {
	switch teamIdx {
	case homeIdx:
		return s.Home
	case awayIdx:
		return s.Away
	default:
		return s.Total()
	}
}

func totalText(metric Metric, scope Scope, teamName string, total int) string {
	if teamName != "" {
		return fmt.Sprintf("%s%s de %s: %d", scope.prefix(), metric.label(), teamName, total)
	}
	return fmt.Sprintf("%sTotal %s: %d", scope.prefix(), metric.label(), total)
}
