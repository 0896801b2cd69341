package domain

import "strings"

// Tipos de evento reportados por el proveedor.
const (
	EventGoal   = "Goal"
	EventCorner = "Corner"
	EventCard   = "Card"
)

// Tipos de estadística por equipo reportados por el proveedor.
const (
	StatCornerKicks = "Corner Kicks"
	StatYellowCards = "Yellow Cards"
	StatRedCards    = "Red Cards"
)

// StatusFinished es el código de estado de un partido finalizado.
const StatusFinished = "FT"

// Fixture es el registro completo de un partido según el proveedor de datos.
// Es de solo lectura para el motor: los evaluadores nunca lo mutan.
type Fixture struct {
	ID         int
	Status     FixtureStatus
	Teams      Teams
	Goals      Score
	Score      ScoreBreakdown
	Statistics []TeamStatistics // índice 0 = local, 1 = visitante, como lo entrega el proveedor
	Events     []Event
	Players    []TeamPlayers
}

// FixtureStatus es el estado del partido (NS, 1H, HT, 2H, FT, AET, PEN, ...).
type FixtureStatus struct {
	Short string
	Long  string
}

// Teams agrupa los dos equipos del partido.
type Teams struct {
	Home Team
	Away Team
}

// Team identifica a un equipo. Winner es nil cuando el proveedor aún no
// declaró ganador (partido en juego) y false para ambos en caso de empate.
type Team struct {
	ID     int
	Name   string
	Winner *bool
}

// Score es un marcador con ambos lados presentes.
type Score struct {
	Home int
	Away int
}

// Total devuelve la suma de ambos lados.
func (s Score) Total() int { return s.Home + s.Away }

// PartialScore es un marcador que puede no existir (descanso no reportado,
// no hubo prórroga, no hubo penaltis).
type PartialScore struct {
	Home *int
	Away *int
}

// Available indica si ambos lados del marcador están presentes.
func (p PartialScore) Available() bool { return p.Home != nil && p.Away != nil }

// Values devuelve el marcador como Score. Solo válido si Available().
func (p PartialScore) Values() Score { return Score{Home: *p.Home, Away: *p.Away} }

// ScoreBreakdown son los snapshots de marcador por fase del partido.
type ScoreBreakdown struct {
	Halftime  PartialScore
	Fulltime  PartialScore
	Extratime PartialScore
	Penalty   PartialScore
}

// TeamStatistics son las estadísticas agregadas de un equipo.
type TeamStatistics struct {
	TeamID int
	Stats  []StatValue
}

// StatValue es una estadística con valor posiblemente ausente.
type StatValue struct {
	Type  string
	Value *int
}

// Event es un suceso del partido (gol, córner, tarjeta) con su minuto.
type Event struct {
	Type     string
	Elapsed  int // minuto de juego
	TeamID   int
	TeamName string
}

// TeamPlayers agrupa las estadísticas individuales de la plantilla de un equipo.
type TeamPlayers struct {
	TeamID  int
	Players []PlayerStats
}

// PlayerStats son las estadísticas de un jugador en el partido. Los valores
// ausentes en el proveedor se normalizan a 0 en el adapter.
type PlayerStats struct {
	Name       string
	Goals      int
	Assists    int
	ShotsTotal int
	ShotsOn    int
	Yellow     int
	Red        int
}

// IsFinished indica si el partido terminó en tiempo reglamentario.
func (f Fixture) IsFinished() bool { return f.Status.Short == StatusFinished }

// HomeWon, AwayWon e IsDraw leen los flags de ganador del proveedor.
func (f Fixture) HomeWon() bool { return f.Teams.Home.Winner != nil && *f.Teams.Home.Winner }
func (f Fixture) AwayWon() bool { return f.Teams.Away.Winner != nil && *f.Teams.Away.Winner }

// IsDraw es cierto cuando el proveedor marcó a ambos equipos como no ganadores.
func (f Fixture) IsDraw() bool {
	return f.Teams.Home.Winner != nil && !*f.Teams.Home.Winner &&
		f.Teams.Away.Winner != nil && !*f.Teams.Away.Winner
}

// statFor busca una estadística por tipo en el bloque del equipo dado
// (0 = local, 1 = visitante).
func (f Fixture) statFor(teamIdx int, statType string) (int, bool) {
	if teamIdx >= len(f.Statistics) {
		return 0, false
	}
	for _, s := range f.Statistics[teamIdx].Stats {
		if s.Type == statType && s.Value != nil {
			return *s.Value, true
		}
	}
	return 0, false
}

// Corners devuelve los córners de un equipo, 0 si el dato no existe.
func (f Fixture) Corners(teamIdx int) int {
	v, _ := f.statFor(teamIdx, StatCornerKicks)
	return v
}

// CornersStrict devuelve los córners de un equipo y si el dato existe.
func (f Fixture) CornersStrict(teamIdx int) (int, bool) {
	return f.statFor(teamIdx, StatCornerKicks)
}

// Cards devuelve las tarjetas (amarillas + rojas) de un equipo, 0 si faltan.
func (f Fixture) Cards(teamIdx int) int {
	y, _ := f.statFor(teamIdx, StatYellowCards)
	r, _ := f.statFor(teamIdx, StatRedCards)
	return y + r
}

// SecondHalfGoals deriva los goles de la segunda mitad como
// fulltime − halftime. ok=false si falta el marcador del descanso.
func (f Fixture) SecondHalfGoals() (Score, bool) {
	if !f.Score.Halftime.Available() {
		return Score{}, false
	}
	ht := f.Score.Halftime.Values()
	ft := Score{Home: f.Goals.Home, Away: f.Goals.Away}
	if f.Score.Fulltime.Available() {
		ft = f.Score.Fulltime.Values()
	}
	return Score{Home: ft.Home - ht.Home, Away: ft.Away - ht.Away}, true
}

// EventsOfType devuelve los eventos del tipo dado ordenados por minuto.
// El slice de entrada ya viene ordenado del proveedor, pero no se asume.
func (f Fixture) EventsOfType(eventType string) []Event {
	var out []Event
	for _, e := range f.Events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Elapsed < out[j-1].Elapsed; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// FirstHalfCorners cuenta los córners de la primera mitad (minuto <= 45) a
// partir de los eventos, ya que el proveedor no da estadísticas por mitad.
func (f Fixture) FirstHalfCorners() (home, away int, events []Event) {
	for _, e := range f.EventsOfType(EventCorner) {
		if e.Elapsed > 45 {
			continue
		}
		events = append(events, e)
		if e.TeamID == f.Teams.Home.ID {
			home++
		} else {
			away++
		}
	}
	return home, away, events
}

// FindPlayer localiza a un jugador en ambas plantillas por contención de
// substring case-insensitive. ok=false si no aparece.
func (f Fixture) FindPlayer(name string) (PlayerStats, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return PlayerStats{}, false
	}
	for _, team := range f.Players {
		for _, p := range team.Players {
			if strings.Contains(strings.ToLower(p.Name), needle) {
				return p, true
			}
		}
	}
	return PlayerStats{}, false
}
