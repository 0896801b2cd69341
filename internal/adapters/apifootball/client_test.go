package apifootball

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
	"errors": [],
	"response": [
		{
			"fixture": {"id": 9001, "status": {"short": "FT", "long": "Match Finished"}},
			"teams": {
				"home": {"id": 10, "name": "Getafe", "winner": true},
				"away": {"id": 20, "name": "Valencia", "winner": false}
			},
			"goals": {"home": 2, "away": 0},
			"score": {
				"halftime": {"home": 1, "away": 0},
				"fulltime": {"home": 2, "away": 0},
				"extratime": {"home": null, "away": null},
				"penalty": {"home": null, "away": null}
			},
			"statistics": [
				{"team": {"id": 10}, "statistics": [
					{"type": "Corner Kicks", "value": 5},
					{"type": "Ball Possession", "value": "55%"},
					{"type": "Yellow Cards", "value": null}
				]},
				{"team": {"id": 20}, "statistics": [
					{"type": "Corner Kicks", "value": 3}
				]}
			],
			"events": [
				{"time": {"elapsed": 23}, "team": {"id": 10, "name": "Getafe"}, "type": "Goal", "detail": "Normal Goal"},
				{"time": {"elapsed": 67}, "team": {"id": 10, "name": "Getafe"}, "type": "Goal", "detail": "Penalty"}
			],
			"players": [
				{"team": {"id": 10}, "players": [
					{"player": {"name": "Borja Mayoral"}, "statistics": [
						{"goals": {"total": 2, "assists": null}, "shots": {"total": 4, "on": 3}, "cards": {"yellow": 1, "red": 0}}
					]},
					{"player": {"name": "Suplente Sin Minutos"}, "statistics": []}
				]}
			]
		}
	]
}`

func TestFixturesByDate(t *testing.T) {
	var gotKey, gotDate string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-apisports-key")
		gotDate = r.URL.Query().Get("date")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	fixtures, err := client.FixturesByDate(context.Background(), "2025-05-10")
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "2025-05-10", gotDate)
	require.Len(t, fixtures, 1)

	fx := fixtures[0]
	assert.Equal(t, 9001, fx.ID)
	assert.True(t, fx.IsFinished())
	assert.Equal(t, "Getafe", fx.Teams.Home.Name)
	assert.True(t, fx.HomeWon())
	assert.Equal(t, 2, fx.Goals.Home)
	assert.Equal(t, 0, fx.Goals.Away)

	require.True(t, fx.Score.Halftime.Available())
	assert.Equal(t, 1, fx.Score.Halftime.Values().Home)
	assert.False(t, fx.Score.Extratime.Available())

	// estadísticas: el valor porcentual se normaliza y el null queda ausente
	require.Len(t, fx.Statistics, 2)
	assert.Equal(t, 5, fx.Corners(0))
	assert.Equal(t, 3, fx.Corners(1))
	corners, present := fx.CornersStrict(0)
	assert.True(t, present)
	assert.Equal(t, 5, corners)
	assert.Equal(t, 0, fx.Cards(0)) // Yellow Cards null → 0

	require.Len(t, fx.Events, 2)
	assert.Equal(t, 23, fx.Events[0].Elapsed)

	// los jugadores sin bloque de estadísticas no se mapean
	require.Len(t, fx.Players, 1)
	require.Len(t, fx.Players[0].Players, 1)
	p := fx.Players[0].Players[0]
	assert.Equal(t, "Borja Mayoral", p.Name)
	assert.Equal(t, 2, p.Goals)
	assert.Equal(t, 0, p.Assists)
	assert.Equal(t, 3, p.ShotsOn)
	assert.Equal(t, 1, p.Yellow)
}

func TestFixturesByDateAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"errors": {"token": "Error/Missing application key"}, "response": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.FixturesByDate(context.Background(), "2025-05-10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api errors")
	assert.Contains(t, err.Error(), "Missing application key")
}

func TestFixturesByDateEmptyDay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"errors": {}, "response": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	fixtures, err := client.FixturesByDate(context.Background(), "2025-05-10")
	require.NoError(t, err)
	assert.Empty(t, fixtures)
}

func TestFixturesByDateRetriesServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"errors": [], "response": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.FixturesByDate(context.Background(), "2025-05-10")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFixturesByDateClientError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message": "suscripción caducada"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.FixturesByDate(context.Background(), "2025-05-10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client error 403")
}

func TestFlexInt(t *testing.T) {
	tests := []struct {
		raw  string
		want *int
	}{
		{`null`, nil},
		{`7`, intp(7)},
		{`7.0`, intp(7)},
		{`"55%"`, intp(55)},
		{`"12"`, intp(12)},
		{`"N/A"`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var f flexInt
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &f))
			if tt.want == nil {
				assert.Nil(t, f.Value)
			} else {
				require.NotNil(t, f.Value)
				assert.Equal(t, *tt.want, *f.Value)
			}
		})
	}
}

func intp(n int) *int { return &n }
