package verifier

// resolver.go — de la leg escrita por el usuario al fixture del proveedor:
// parseo de la fecha en texto libre, caché de fixtures por fecha y matching
// de equipos.

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/alejandrodnm/betcheck/internal/domain"
	"github.com/alejandrodnm/betcheck/internal/ports"
)

// isoDate convierte la fecha en texto libre de una leg ("DD/MM/YY" o
// "DD/MM/YYYY", con hora opcional detrás) al formato ISO del API.
func isoDate(raw string) (string, bool) {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) == 0 {
		return "", false
	}

	parts := strings.Split(fields[0], "/")
	if len(parts) != 3 {
		return "", false
	}

	day, errD := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	if errD != nil || errM != nil || day < 1 || day > 31 || month < 1 || month > 12 {
		return "", false
	}

	yearRaw := parts[2]
	if len(yearRaw) == 2 {
		yearRaw = "20" + yearRaw
	}
	year, errY := strconv.Atoi(yearRaw)
	if errY != nil || len(yearRaw) != 4 {
		return "", false
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

// fixtureCache memoriza los fixtures por fecha durante una verificación:
// todas las legs del mismo día comparten una única llamada al API.
type fixtureCache struct {
	provider ports.FixtureProvider
	mu       sync.Mutex
	byDate   map[string][]domain.Fixture
}

func newFixtureCache(provider ports.FixtureProvider) *fixtureCache {
	return &fixtureCache{
		provider: provider,
		byDate:   make(map[string][]domain.Fixture),
	}
}

// fixturesFor devuelve los fixtures de la fecha, consultando el API solo en
// el primer acceso. El mutex cubre también el fetch: dos legs concurrentes
// de la misma fecha nunca provocan dos llamadas.
func (c *fixtureCache) fixturesFor(ctx context.Context, date string) ([]domain.Fixture, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if fixtures, ok := c.byDate[date]; ok {
		slog.Debug("fixture cache hit", "date", date)
		return fixtures, nil
	}

	slog.Debug("fixture cache miss", "date", date)
	fixtures, err := c.provider.FixturesByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	c.byDate[date] = fixtures
	return fixtures, nil
}

// findFixture localiza el partido de la leg entre los fixtures del día por
// contención case-insensitive de ambos nombres, en cualquier orden: el
// usuario puede haber escrito los equipos al revés.
func findFixture(fixtures []domain.Fixture, pair domain.TeamPair) (domain.Fixture, bool) {
	home := strings.ToLower(pair.Home)
	away := strings.ToLower(pair.Away)

	for _, fx := range fixtures {
		apiHome := strings.ToLower(fx.Teams.Home.Name)
		apiAway := strings.ToLower(fx.Teams.Away.Name)
		if apiHome == "" || apiAway == "" {
			continue
		}
		if (strings.Contains(apiHome, home) && strings.Contains(apiAway, away)) ||
			(strings.Contains(apiHome, away) && strings.Contains(apiAway, home)) {
			return fx, true
		}
	}
	return domain.Fixture{}, false
}
