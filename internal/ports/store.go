package ports

import (
	"context"

	"github.com/alejandrodnm/betcheck/internal/domain"
)

// TicketStore persiste los tickets de apuesta y el resultado de su verificación.
type TicketStore interface {
	// CreateTicket inserta el ticket y todas sus legs de forma atómica.
	CreateTicket(ctx context.Context, t domain.Ticket) error

	// GetTicket devuelve un ticket con sus legs. domain.ErrTicketNotFound
	// si no existe.
	GetTicket(ctx context.Context, id string) (domain.Ticket, error)

	// ListTickets devuelve todos los tickets con sus legs, más recientes primero.
	ListTickets(ctx context.Context) ([]domain.Ticket, error)

	// UpdateLegOutcome escribe el resultado verificado de una leg.
	UpdateLegOutcome(ctx context.Context, legID, outcome, actual string) error

	// UpdateTicketVerdict escribe el veredicto agregado del ticket.
	UpdateTicketVerdict(ctx context.Context, ticketID, verdict string) error

	// Close cierra la conexión a la base de datos limpiamente.
	Close() error
}
