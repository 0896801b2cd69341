package apifootball

import "github.com/alejandrodnm/betcheck/internal/domain"

// mapping.go — traducción DTO → dominio. El dominio trabaja con valores
// concretos donde el API garantiza presencia (goles de un partido jugado) y
// con punteros donde el dato puede no existir (descanso, prórroga, penaltis).

func mapFixture(dto fixtureDTO) domain.Fixture {
	return domain.Fixture{
		ID: dto.Fixture.ID,
		Status: domain.FixtureStatus{
			Short: dto.Fixture.Status.Short,
			Long:  dto.Fixture.Status.Long,
		},
		Teams: domain.Teams{
			Home: mapTeam(dto.Teams.Home),
			Away: mapTeam(dto.Teams.Away),
		},
		Goals: domain.Score{
			Home: intOrZero(dto.Goals.Home),
			Away: intOrZero(dto.Goals.Away),
		},
		Score: domain.ScoreBreakdown{
			Halftime:  mapPartial(dto.Score.Halftime),
			Fulltime:  mapPartial(dto.Score.Fulltime),
			Extratime: mapPartial(dto.Score.Extratime),
			Penalty:   mapPartial(dto.Score.Penalty),
		},
		Statistics: mapStatistics(dto.Statistics),
		Events:     mapEvents(dto.Events),
		Players:    mapPlayers(dto.Players),
	}
}

func mapTeam(t teamDTO) domain.Team {
	return domain.Team{ID: t.ID, Name: t.Name, Winner: t.Winner}
}

func mapPartial(p scorePairDTO) domain.PartialScore {
	return domain.PartialScore{Home: p.Home, Away: p.Away}
}

func mapStatistics(stats []teamStatsDTO) []domain.TeamStatistics {
	if len(stats) == 0 {
		return nil
	}
	out := make([]domain.TeamStatistics, 0, len(stats))
	for _, ts := range stats {
		mapped := domain.TeamStatistics{TeamID: ts.Team.ID}
		for _, sv := range ts.Statistics {
			mapped.Stats = append(mapped.Stats, domain.StatValue{
				Type:  sv.Type,
				Value: sv.Value.Value,
			})
		}
		out = append(out, mapped)
	}
	return out
}

func mapEvents(events []eventDTO) []domain.Event {
	if len(events) == 0 {
		return nil
	}
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		out = append(out, domain.Event{
			Type:     e.Type,
			Elapsed:  e.Time.Elapsed,
			TeamID:   e.Team.ID,
			TeamName: e.Team.Name,
		})
	}
	return out
}

func mapPlayers(teams []teamPlayersDTO) []domain.TeamPlayers {
	if len(teams) == 0 {
		return nil
	}
	out := make([]domain.TeamPlayers, 0, len(teams))
	for _, tp := range teams {
		mapped := domain.TeamPlayers{TeamID: tp.Team.ID}
		for _, p := range tp.Players {
			// jugadores convocados sin minutos llegan sin bloque de estadísticas
			if len(p.Statistics) == 0 {
				continue
			}
			st := p.Statistics[0]
			mapped.Players = append(mapped.Players, domain.PlayerStats{
				Name:       p.Player.Name,
				Goals:      intOrZero(st.Goals.Total),
				Assists:    intOrZero(st.Goals.Assists),
				ShotsTotal: intOrZero(st.Shots.Total),
				ShotsOn:    intOrZero(st.Shots.On),
				Yellow:     intOrZero(st.Cards.Yellow),
				Red:        intOrZero(st.Cards.Red),
			})
		}
		out = append(out, mapped)
	}
	return out
}

func intOrZero(p *int) int {
	if p != nil {
		return *p
	}
	return 0
}
