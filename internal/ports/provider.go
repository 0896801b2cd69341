package ports

import (
	"context"

	"github.com/alejandrodnm/betcheck/internal/domain"
)

// FixtureProvider obtiene los partidos de una fecha desde el proveedor de
// datos deportivos.
type FixtureProvider interface {
	// FixturesByDate devuelve todos los fixtures de la fecha dada
	// (formato ISO "2006-01-02"), con marcadores, estadísticas, eventos
	// y jugadores.
	FixturesByDate(ctx context.Context, date string) ([]domain.Fixture, error)
}
