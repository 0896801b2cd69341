package ports

import (
	"context"

	"github.com/alejandrodnm/betcheck/internal/domain"
)

// Notifier presenta el resultado de una verificación al usuario.
type Notifier interface {
	// NotifyTicket muestra el ticket verificado con el detalle por leg.
	// En la implementación de consola, imprime una tabla formateada.
	NotifyTicket(ctx context.Context, ticket domain.Ticket) error
}
