package domain

import "strings"

// Tags de resultado por leg. El conjunto es cerrado salvo los prefijos
// pendiente_* (estado del proveedor) y error_* (motivo del fallo).
const (
	OutcomeWon     = "ganada"
	OutcomeLost    = "perdida"
	OutcomeVoid    = "anulada"
	OutcomePending = "pendiente"

	OutcomeUnsupportedMarket = "mercado_no_soportado"

	ErrSelection        = "error_seleccion"
	ErrInvalidSelection = "error_seleccion_invalida"
	ErrNoHandicap       = "error_handicap_no_definido"
	ErrData             = "error_datos"
	ErrTeamNotFound     = "error_equipo_no_encontrado"
	ErrPlayerNotFound   = "error_jugador_no_encontrado"
	ErrNoWinner         = "error_no_ganador"
	ErrMatchNotFound    = "error_partido_no_encontrado"
	ErrInvalidDate      = "error_fecha_invalida"
	ErrMatchLabel       = "error_formato_partido"
	ErrAPI              = "error_api"
	ErrCritical         = "error_critico"
)

// Veredictos a nivel de ticket.
const (
	VerdictWon     = "verificado_ganado"
	VerdictLost    = "verificado_perdido"
	VerdictPartial = "verificado_parcial"
	VerdictPending = "pendiente"
)

// LegResult es lo que produce cada evaluador: un tag de resultado y una
// descripción legible del hecho real comprobado.
type LegResult struct {
	Outcome string
	Actual  string
}

// AggregateVerdict combina los resultados de todas las legs en el veredicto
// del ticket. El orden de las reglas es una decisión de diseño: una sola leg
// perdida domina sobre cualquier combinación parcialmente ganada.
//
//  1. alguna perdida o error_critico      → verificado_perdido
//  2. todas ganadas                       → verificado_ganado
//  3. alguna pendiente/no soportada/error → pendiente
//  4. resto (mezclas de ganada y anulada) → verificado_parcial
func AggregateVerdict(outcomes []string) string {
	if len(outcomes) == 0 {
		return VerdictPending
	}

	allWon := true
	anyUnresolved := false
	for _, o := range outcomes {
		if o == OutcomeLost || o == ErrCritical {
			return VerdictLost
		}
		if o != OutcomeWon {
			allWon = false
		}
		if strings.Contains(o, "pendiente") ||
			strings.Contains(o, "terminado") ||
			strings.Contains(o, "soportado") ||
			strings.Contains(o, "error") {
			anyUnresolved = true
		}
	}

	if allWon {
		return VerdictWon
	}
	if anyUnresolved {
		return VerdictPending
	}
	return VerdictPartial
}
