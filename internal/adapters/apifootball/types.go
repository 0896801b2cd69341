package apifootball

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// types.go — DTOs del API (v3.football.api-sports.io). Se mapean a
// domain.Fixture en mapping.go; nada fuera del adapter los ve.

// apiEnvelope es el sobre común de todas las respuestas del API.
// `errors` es {} o [] cuando no hay error; cualquier contenido es fallo.
type apiEnvelope struct {
	Errors   json.RawMessage `json:"errors"`
	Response []fixtureDTO    `json:"response"`
}

// apiErrors devuelve el contenido de `errors` si la respuesta trae alguno.
func apiErrors(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "{}", "[]":
		return "", false
	}
	return string(trimmed), true
}

type fixtureDTO struct {
	Fixture struct {
		ID     int       `json:"id"`
		Status statusDTO `json:"status"`
	} `json:"fixture"`
	Teams struct {
		Home teamDTO `json:"home"`
		Away teamDTO `json:"away"`
	} `json:"teams"`
	Goals scorePairDTO `json:"goals"`
	Score struct {
		Halftime  scorePairDTO `json:"halftime"`
		Fulltime  scorePairDTO `json:"fulltime"`
		Extratime scorePairDTO `json:"extratime"`
		Penalty   scorePairDTO `json:"penalty"`
	} `json:"score"`
	Statistics []teamStatsDTO   `json:"statistics"`
	Events     []eventDTO       `json:"events"`
	Players    []teamPlayersDTO `json:"players"`
}

type statusDTO struct {
	Short string `json:"short"`
	Long  string `json:"long"`
}

type teamDTO struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Winner *bool  `json:"winner"`
}

type scorePairDTO struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type teamStatsDTO struct {
	Team       teamDTO        `json:"team"`
	Statistics []statValueDTO `json:"statistics"`
}

type statValueDTO struct {
	Type  string  `json:"type"`
	Value flexInt `json:"value"`
}

// flexInt tolera los formatos del campo value: null, entero, float o string
// con porcentaje ("55%"). Nil significa dato ausente.
type flexInt struct {
	Value *int
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if string(trimmed) == "null" {
		f.Value = nil
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "%")
		n, err := strconv.Atoi(s)
		if err != nil {
			// valor no numérico ("N/A"): se trata como ausente
			f.Value = nil
			return nil
		}
		f.Value = &n
		return nil
	}

	var v float64
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return err
	}
	n := int(v)
	f.Value = &n
	return nil
}

type eventDTO struct {
	Time struct {
		Elapsed int `json:"elapsed"`
	} `json:"time"`
	Team   teamDTO `json:"team"`
	Type   string  `json:"type"`
	Detail string  `json:"detail"`
}

type teamPlayersDTO struct {
	Team    teamDTO     `json:"team"`
	Players []playerDTO `json:"players"`
}

type playerDTO struct {
	Player struct {
		Name string `json:"name"`
	} `json:"player"`
	Statistics []playerStatDTO `json:"statistics"`
}

type playerStatDTO struct {
	Goals struct {
		Total   *int `json:"total"`
		Assists *int `json:"assists"`
	} `json:"goals"`
	Shots struct {
		Total *int `json:"total"`
		On    *int `json:"on"`
	} `json:"shots"`
	Cards struct {
		Yellow *int `json:"yellow"`
		Red    *int `json:"red"`
	} `json:"cards"`
}
