package domain

import (
	"errors"
	"strings"
)

// ErrTicketNotFound lo devuelve el almacenamiento cuando el id no existe.
var ErrTicketNotFound = errors.New("ticket no encontrado")

// BetKind distingue apuestas simples de apuestas construidas ("crear apuesta").
type BetKind string

const (
	BetSimple BetKind = "simple"
	BetBuilt  BetKind = "crear_apuesta"
)

// Ticket es un boleto de apuestas con una o más selecciones.
type Ticket struct {
	ID        string
	Stake     float64 // importe apostado
	TotalOdds float64 // cuota combinada del boleto
	Agent     string
	Client    string
	Verdict   string // último veredicto de verificación, vacío si nunca se verificó
	Legs      []BetLeg
}

// BetLeg es una línea del boleto: un partido, un mercado y una selección.
type BetLeg struct {
	ID            string
	TicketID      string
	MatchLabel    string  // "Equipo A vs Equipo B" tal y como lo escribió el usuario
	ScheduledAt   string  // fecha/hora en texto libre (DD/MM/YY[YY] [HH:MM]), puede ser "N/A"
	Market        string  // etiqueta de mercado en texto libre
	Selection     string  // selección dentro del mercado
	Odds          float64
	Kind          BetKind
	IsLive        bool
	IsBoostedOdds bool
	SubSelections []SubSelection // solo para Kind == BetBuilt

	// Escritos por el motor de verificación, nunca por el usuario.
	Outcome    string
	ActualText string
}

// SubSelection es una sub-línea de una apuesta construida. Se persiste pero
// no se evalúa de forma independiente: el mercado padre ya codifica la
// condición combinada.
type SubSelection struct {
	Market    string
	Selection string
}

// TeamPair son los dos equipos extraídos del MatchLabel de una leg.
type TeamPair struct {
	Home string
	Away string
}

// ParseMatchLabel separa "Equipo A vs Equipo B" en sus dos equipos.
// Acepta "vs" y "vs." en cualquier capitalización. Devuelve ok=false si el
// texto no tiene el formato esperado.
func ParseMatchLabel(label string) (TeamPair, bool) {
	lower := strings.ToLower(label)
	idx := -1
	sepLen := 0
	for _, sep := range []string{" vs. ", " vs "} {
		if i := strings.Index(lower, sep); i >= 0 {
			idx = i
			sepLen = len(sep)
			break
		}
	}
	if idx < 0 {
		return TeamPair{}, false
	}
	home := strings.TrimSpace(label[:idx])
	away := strings.TrimSpace(label[idx+sepLen:])
	if home == "" || away == "" {
		return TeamPair{}, false
	}
	return TeamPair{Home: home, Away: away}, true
}
