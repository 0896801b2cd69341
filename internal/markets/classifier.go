package markets

// classifier.go — tabla ordenada de reglas (predicado, evaluador).
//
// La etiqueta de mercado se normaliza en dos formas: compacta (minúsculas y
// sin whitespace) para los patrones, y espaciada (solo minúsculas) para la
// contención de nombres de equipo. El orden de la tabla codifica la
// prioridad por especificidad: los mercados compuestos o con equipo nombrado
// van SIEMPRE antes que su contraparte genérica. Cambiar el orden relativo
// de reglas solapadas cambia el resultado de la clasificación — los tests
// fijan los casos sensibles al orden.

import (
	"strings"

	"github.com/alejandrodnm/betcheck/internal/domain"
)

// marketText son las dos formas normalizadas de la etiqueta de mercado.
type marketText struct {
	compact string // minúsculas, sin whitespace
	spaced  string // minúsculas, con whitespace
}

func normalizeMarket(market string) marketText {
	lower := strings.ToLower(market)
	return marketText{compact: compact(lower), spaced: lower}
}

// has indica si la forma compacta contiene alguno de los patrones dados
// (típicamente la variante con y sin tilde).
func (m marketText) has(patterns ...string) bool {
	for _, p := range patterns {
		if strings.Contains(m.compact, p) {
			return true
		}
	}
	return false
}

// namesTeam indica si la etiqueta espaciada nombra a uno de los dos equipos
// del fixture.
func (m marketText) namesTeam(fx domain.Fixture) bool {
	_, _, ok := teamFromText(m.spaced, fx)
	return ok
}

// rule es una entrada de la tabla del clasificador.
type rule struct {
	name  string
	match func(m marketText, fx domain.Fixture) bool
	eval  Evaluator
}

func pattern(patterns ...string) func(marketText, domain.Fixture) bool {
	return func(m marketText, _ domain.Fixture) bool { return m.has(patterns...) }
}

func teamPattern(patterns ...string) func(marketText, domain.Fixture) bool {
	return func(m marketText, fx domain.Fixture) bool {
		return m.has(patterns...) && m.namesTeam(fx)
	}
}

// rules es la tabla ordenada. Primera coincidencia gana.
var rules = []rule{
	// --- 1a mitad (compuestos antes que sus genéricos de partido completo) ---
	{"1t_goles_equipo", teamPattern("1amitad-totaldegoles"), OverUnder(MetricGoals, ScopeFirstHalf, SubjectTeam)},
	{"1t_total_goles", pattern("1amitad-totaldegoles"), OverUnder(MetricGoals, ScopeFirstHalf, SubjectCombined)},
	{"1t_doble_oportunidad", pattern("1amitad-dobleoportunidad"), FirstHalfDoubleChance},
	{"1t_ambos_marcan", pattern("1amitad-ambosequiposmarcan"), FirstHalfBothTeamsScore},
	{"1t_1x2", pattern("1amitad-1x2"), HalftimeResult},
	{"1t_goles_par_impar", pattern("1amitad-par/impar"), FirstHalfGoalsOddEven},
	{"1t_corners_equipo", teamPattern("1amitad-totalcórneres", "1amitad-totalcorneres"), OverUnder(MetricCorners, ScopeFirstHalf, SubjectTeam)},
	{"1t_total_corners", pattern("1amitad-totalcórneres", "1amitad-totalcorneres"), OverUnder(MetricCorners, ScopeFirstHalf, SubjectCombined)},
	{"1t_ultimo_corner", pattern("1amitad-últimocórner", "1amitad-ultimocorner"), FirstHalfLastCorner},
	{"1t_corners_par_impar", pattern("1amitad-córnerespar/impar", "1amitad-cornerespar/impar"), FirstHalfCornersOddEven},
	{"1t_marcador_exacto", pattern("1amitad-marcadorexacto"), FirstHalfExactScore},

	// --- 2a mitad ---
	{"2t_goles_equipo", teamPattern("2mitad-totaldegoles"), OverUnder(MetricGoals, ScopeSecondHalf, SubjectTeam)},
	{"2t_total_goles", pattern("2mitad-totaldegoles"), OverUnder(MetricGoals, ScopeSecondHalf, SubjectCombined)},
	{"2t_ambos_marcan", pattern("2mitad-ambosequiposmarcan"), SecondHalfBothTeamsScore},
	{"2t_equipo_marca", func(m marketText, fx domain.Fixture) bool {
		return m.has("2mitad-") && m.has("paramarcar")
	}, SecondHalfTeamScores},

	// --- variantes 1x2 específicas, antes del 1x2 genérico ---
	{"handicap_1x2", pattern("hándicap1x2", "handicap1x2"), Handicap1x2},
	{"handicap_corner", pattern("hándicapcórner", "handicapcorner"), HandicapCorners},
	{"tarjetas_1x2", pattern("tarjetas1x2"), Cards1x2},
	{"corner_1x2", pattern("córner1x2", "corner1x2"), Corners1x2},

	// --- compuestos de "ambos equipos marcan", antes del BTTS genérico ---
	{"ambos_marcan_ambas_mitades", pattern("ambosequiposmarcanenambasmitades"), BothTeamsScoreBothHalves},
	{"ambos_marcan_n_goles", func(m marketText, fx domain.Fixture) bool {
		return m.has("ambosequiposmarcan") && m.has("golesomás", "golesomas")
	}, BothTeamsScoreNPlus},

	// --- jugadores con prefijo "multi", antes de goleador ---
	{"multigoleador", pattern("multigoleadores"), MultiScorer},

	// --- multigoles antes que cualquier total de goles ---
	{"multigoles", pattern("multigoles"), Multigoals},

	// --- totales de goles: equipo nombrado antes que el genérico ---
	{"goles_equipo", teamPattern("totaldegoles"), OverUnder(MetricGoals, ScopeFull, SubjectTeam)},
	{"total_goles", pattern("totaldegoles"), OverUnder(MetricGoals, ScopeFull, SubjectCombined)},
	{"goles_exactos", pattern("golesexactos"), ExactGoals},

	// --- resultado y marcadores ---
	{"doble_oportunidad", pattern("dobleoportunidad"), DoubleChance},
	{"ambos_marcan", pattern("ambosequiposmarcan"), BothTeamsScore},
	{"resultado_descanso", pattern("resultadoaldescanso"), HalftimeResult},
	{"sin_empate", pattern("apuestasinempate"), DrawNoBet},
	{"marcador_exacto", pattern("marcadorexacto"), ExactScore},
	{"mitad_final", pattern("mitad/final"), HalfFull},
	{"primer_gol", pattern("primergol"), FirstOrLastGoal(true)},
	{"ultimo_gol", pattern("últimogol", "ultimogol"), FirstOrLastGoal(false)},
	{"margen_victoria", pattern("margendevictoria"), VictoryMargin},
	{"habra_prorroga", pattern("habráprórroga", "habraprorroga"), ExtraTime},
	{"habra_penaltis", pattern("habrálanzamientosdepenaltis", "habralanzamientosdepenaltis", "habrápenaltis", "habrapenaltis"), Penalties},
	{"se_clasifica", pattern("seclasifica"), Qualifies},
	{"metodo_clasificacion", pattern("métododeclasificación", "metododeclasificacion"), QualificationMethod},
	{"que_equipo_marca", pattern("queequipomarca", "quéequipomarca"), WhichTeamScores},

	// --- jugadores (a puerta antes que remates genérico) ---
	{"remates_a_puerta", pattern("rematesapuerta"), PlayerShots(true)},
	{"remates", pattern("remates"), PlayerShots(false)},
	{"goleador", pattern("goleador"), Scorer},
	{"asistencias", pattern("asistencias"), Assists},
	{"jugador_tarjeta", pattern("jugadorrecibeunatarjeta"), PlayerCarded},

	// --- córners ---
	{"corners_equipo", teamPattern("totalcórneres", "totalcorneres", "totaldecórners", "totaldecorners"), OverUnder(MetricCorners, ScopeFull, SubjectTeam)},
	{"primer_corner", pattern("córnerprimer", "cornerprimer"), FirstOrLastCorner(true)},
	{"ultimo_corner", pattern("últimocórner", "ultimocorner"), FirstOrLastCorner(false)},
	{"corners_par_impar", pattern("córnerespar/impar", "cornerespar/impar"), CornersOddEven},
	{"total_corners", pattern("totaldecórners", "totaldecorners", "totalcórneres", "totalcorneres"), OverUnder(MetricCorners, ScopeFull, SubjectCombined)},

	// --- tarjetas: equipo nombrado antes que el total genérico ---
	{"tarjetas_equipo", teamPattern("totaltarjetas"), OverUnder(MetricCards, ScopeFull, SubjectTeam)},
	{"total_tarjetas", pattern("totaltarjetas"), OverUnder(MetricCards, ScopeFull, SubjectCombined)},

	// --- rendimiento por mitades ---
	{"gana_ambas_mitades", pattern("ganaambasmitades"), WinsBothHalves},
	{"gana_cualquier_mitad", pattern("ganacualquiermitad"), WinsEitherHalf},
	{"marca_ambas_partes", pattern("marcaenambaspartes"), ScoresBothHalves},
	{"remontada", pattern("remontaráyganará", "remontarayganara"), Comeback},

	// --- 1x2 genérico, el último de sus solapamientos ---
	{"resultado_partido", pattern("resultadodelpartido", "1x2"), MatchResult},
}

// Classify resuelve el evaluador para la etiqueta de mercado de la leg.
// Devuelve el nombre del tipo de mercado reconocido; "no_soportado" y el
// evaluador Fallback cuando ninguna regla coincide.
func Classify(leg domain.BetLeg, fx domain.Fixture) (string, Evaluator) {
	m := normalizeMarket(leg.Market)
	for _, r := range rules {
		if r.match(m, fx) {
			return r.name, r.eval
		}
	}
	return "no_soportado", Fallback
}
