package verifier

// concurrent.go — worker pool para verificar las legs de un ticket en
// paralelo. El caché de fixtures serializa los fetches por fecha, así que el
// paralelismo solo paga en tickets que cruzan varios días.

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/alejandrodnm/betcheck/internal/domain"
)

// gradeLegsConcurrent verifica todas las legs usando un worker pool y
// devuelve los resultados en el mismo orden que las legs.
//
// Si workers <= 0 usa runtime.NumCPU() × 2.
func gradeLegsConcurrent(ctx context.Context, cache *fixtureCache, legs []domain.BetLeg, workers int) []domain.LegResult {
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	if workers > len(legs) {
		workers = len(legs)
	}

	results := make([]domain.LegResult, len(legs))
	workCh := make(chan int, len(legs))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range workCh {
				results[idx] = gradeLegSafe(ctx, cache, legs[idx])
			}
		}()
	}

	for i := range legs {
		workCh <- i
	}
	close(workCh)
	wg.Wait()

	return results
}

// gradeLegSafe aísla panics de la verificación de una leg: una leg rota no
// tumba el resto del ticket, queda marcada como error_critico.
func gradeLegSafe(ctx context.Context, cache *fixtureCache, leg domain.BetLeg) (res domain.LegResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic while grading leg",
				"match", leg.MatchLabel,
				"market", leg.Market,
				"panic", r,
			)
			res = domain.LegResult{
				Outcome: domain.ErrCritical,
				Actual:  fmt.Sprintf("Error crítico durante la verificación: %v", r),
			}
		}
	}()
	return gradeLeg(ctx, cache, leg)
}
