package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// seleccion.go — parsers de texto libre de selecciones y mercados.
//
// Contrato común: entrada en minúsculas, salida nullable (valor + ok).
// Los parsers nunca fallan con panic; si el patrón no aparece devuelven
// ok=false y el llamador decide el tag de error.

var (
	rangeRe    = regexp.MustCompile(`(\d+)-(\d+)`)
	orMoreRe   = regexp.MustCompile(`(\d+)\s*o\s*m[aá]s`)
	handicapRe = regexp.MustCompile(`\((-?\d+(?:\.\d+)?)\)`)
)

// Threshold es un umbral "más/menos N" extraído de una selección.
type Threshold struct {
	Over  bool // true = "más", false = "menos"
	Value float64
}

// Hits compara un total contra el umbral. Los umbrales con decimal (2.5)
// nunca empatan; los enteros exactos pierden en ambas direcciones.
func (t Threshold) Hits(total float64) bool {
	if t.Over {
		return total > t.Value
	}
	return total < t.Value
}

// ParseThreshold extrae el comparador más/menos y el valor numérico de una
// selección tipo "más 2,5" o "menos de 3". La coma decimal se normaliza a
// punto y el valor es siempre el último token.
func ParseThreshold(selection string) (Threshold, bool) {
	parts := strings.Fields(selection)
	if len(parts) == 0 {
		return Threshold{}, false
	}

	var over, found bool
	for _, p := range parts {
		if strings.Contains(p, "más") || strings.Contains(p, "mas") {
			over, found = true, true
			break
		}
		if strings.Contains(p, "menos") {
			over, found = false, true
			break
		}
	}
	if !found {
		return Threshold{}, false
	}

	raw := strings.ReplaceAll(parts[len(parts)-1], ",", ".")
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Threshold{}, false
	}
	return Threshold{Over: over, Value: value}, true
}

// GoalRange es un rango inclusivo "A-B" o un mínimo abierto "N o más".
type GoalRange struct {
	Min       int
	Max       int
	OpenEnded bool // true = sin límite superior
}

// Contains indica si un total cae dentro del rango.
func (r GoalRange) Contains(total int) bool {
	if r.OpenEnded {
		return total >= r.Min
	}
	return total >= r.Min && total <= r.Max
}

// ParseRange reconoce "2-3" (rango inclusivo) o "2 o más" (mínimo abierto).
// El rango se comprueba primero: "2-3 o más" no es una selección real.
func ParseRange(selection string) (GoalRange, bool) {
	if m := rangeRe.FindStringSubmatch(selection); m != nil {
		min, _ := strconv.Atoi(m[1])
		max, _ := strconv.Atoi(m[2])
		return GoalRange{Min: min, Max: max}, true
	}
	if m := orMoreRe.FindStringSubmatch(selection); m != nil {
		min, _ := strconv.Atoi(m[1])
		return GoalRange{Min: min, OpenEnded: true}, true
	}
	return GoalRange{}, false
}

// ParseOrMore reconoce solo la forma abierta "N o más".
func ParseOrMore(selection string) (int, bool) {
	m := orMoreRe.FindStringSubmatch(selection)
	if m == nil {
		return 0, false
	}
	n, _ := strconv.Atoi(m[1])
	return n, true
}

// ParseHandicap extrae el valor de hándicap entre paréntesis del texto del
// mercado: "Hándicap 1x2 (-1.5)" → -1.5.
func ParseHandicap(market string) (float64, bool) {
	m := handicapRe.FindStringSubmatch(market)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseExactScore interpreta una selección "A-B" como marcador exacto,
// ignorando espacios ("2 - 1" → 2, 1).
func ParseExactScore(selection string) (home, away int, ok bool) {
	compact := stripSpaces(selection)
	parts := strings.SplitN(compact, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, errH := strconv.Atoi(parts[0])
	a, errA := strconv.Atoi(parts[1])
	if errH != nil || errA != nil {
		return 0, 0, false
	}
	return h, a, true
}

// IsYes e IsNo reconocen selecciones afirmativas/negativas ("Sí"/"Si"/"No").
func IsYes(selection string) bool {
	s := strings.TrimSpace(selection)
	return s == "sí" || s == "si"
}

func IsNo(selection string) bool {
	return strings.TrimSpace(selection) == "no"
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
