package storage

// sqlite.go — persistencia de tickets y legs.
//
// Estrategia:
//   - `tickets`: una fila por boleto, con el último veredicto de verificación.
//   - `legs`: una fila por selección, con el resultado verificado escrito
//     encima tras cada verificación (UPDATE idempotente).
//   - Las sub-selecciones de "crear apuesta" se guardan como JSON en la
//     propia fila de la leg: se persisten para trazabilidad pero nunca se
//     consultan por separado.

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/alejandrodnm/betcheck/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS tickets (
    id         TEXT PRIMARY KEY,
    stake      REAL NOT NULL DEFAULT 0,
    total_odds REAL NOT NULL DEFAULT 0,
    agent      TEXT NOT NULL DEFAULT '',
    client     TEXT NOT NULL DEFAULT '',
    verdict    TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS legs (
    id             TEXT PRIMARY KEY,
    ticket_id      TEXT NOT NULL REFERENCES tickets(id) ON DELETE CASCADE,
    match_label    TEXT NOT NULL,
    scheduled_at   TEXT NOT NULL DEFAULT '',
    market         TEXT NOT NULL,
    selection      TEXT NOT NULL DEFAULT '',
    odds           REAL NOT NULL DEFAULT 0,
    kind           TEXT NOT NULL DEFAULT 'simple',
    is_live        INTEGER NOT NULL DEFAULT 0,
    is_boosted     INTEGER NOT NULL DEFAULT 0,
    sub_selections TEXT NOT NULL DEFAULT '',
    outcome        TEXT NOT NULL DEFAULT '',
    actual_text    TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_legs_ticket     ON legs(ticket_id);
CREATE INDEX IF NOT EXISTS idx_tickets_created ON tickets(created_at DESC);
`

// SQLiteStore implementa ports.TicketStore usando SQLite (pure Go, sin CGo).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore abre (o crea) la base de datos en la ruta dada y aplica el
// schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.NewSQLiteStore: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1) // SQLite es single-writer
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.NewSQLiteStore: apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// CreateTicket inserta el ticket y sus legs en una transacción. Asigna ids
// nuevos a las entidades que lleguen sin uno.
func (s *SQLiteStore) CreateTicket(ctx context.Context, t domain.Ticket) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage.CreateTicket: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO tickets (id, stake, total_odds, agent, client, verdict, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Stake, t.TotalOdds, t.Agent, t.Client, t.Verdict, time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("storage.CreateTicket: insert ticket: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO legs
			(id, ticket_id, match_label, scheduled_at, market, selection,
			 odds, kind, is_live, is_boosted, sub_selections, outcome, actual_text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("storage.CreateTicket: prepare legs: %w", err)
	}
	defer stmt.Close()

	for _, leg := range t.Legs {
		if leg.ID == "" {
			leg.ID = uuid.NewString()
		}

		subs, err := marshalSubSelections(leg.SubSelections)
		if err != nil {
			return fmt.Errorf("storage.CreateTicket: leg %s: %w", leg.ID, err)
		}

		if _, err := stmt.ExecContext(ctx,
			leg.ID, t.ID, leg.MatchLabel, leg.ScheduledAt, leg.Market, leg.Selection,
			leg.Odds, string(leg.Kind), boolToInt(leg.IsLive), boolToInt(leg.IsBoostedOdds),
			subs, leg.Outcome, leg.ActualText,
		); err != nil {
			return fmt.Errorf("storage.CreateTicket: insert leg %s: %w", leg.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage.CreateTicket: commit: %w", err)
	}
	return nil
}

// GetTicket devuelve un ticket con todas sus legs.
func (s *SQLiteStore) GetTicket(ctx context.Context, id string) (domain.Ticket, error) {
	var t domain.Ticket
	err := s.db.QueryRowContext(ctx,
		`SELECT id, stake, total_odds, agent, client, verdict FROM tickets WHERE id = ?`, id,
	).Scan(&t.ID, &t.Stake, &t.TotalOdds, &t.Agent, &t.Client, &t.Verdict)
	if err == sql.ErrNoRows {
		return domain.Ticket{}, domain.ErrTicketNotFound
	}
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("storage.GetTicket: query ticket: %w", err)
	}

	legs, err := s.legsFor(ctx, t.ID)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("storage.GetTicket: %w", err)
	}
	t.Legs = legs
	return t, nil
}

// ListTickets devuelve todos los tickets con sus legs, más recientes primero.
func (s *SQLiteStore) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, stake, total_odds, agent, client, verdict
		 FROM tickets ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage.ListTickets: query: %w", err)
	}
	defer rows.Close()

	var tickets []domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.Stake, &t.TotalOdds, &t.Agent, &t.Client, &t.Verdict); err != nil {
			return nil, fmt.Errorf("storage.ListTickets: scan row: %w", err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage.ListTickets: rows: %w", err)
	}

	for i := range tickets {
		legs, err := s.legsFor(ctx, tickets[i].ID)
		if err != nil {
			return nil, fmt.Errorf("storage.ListTickets: %w", err)
		}
		tickets[i].Legs = legs
	}
	return tickets, nil
}

// UpdateLegOutcome escribe el resultado verificado de una leg.
func (s *SQLiteStore) UpdateLegOutcome(ctx context.Context, legID, outcome, actual string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE legs SET outcome = ?, actual_text = ? WHERE id = ?`,
		outcome, actual, legID,
	)
	if err != nil {
		return fmt.Errorf("storage.UpdateLegOutcome: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("storage.UpdateLegOutcome: leg %s: %w", legID, domain.ErrTicketNotFound)
	}
	return nil
}

// UpdateTicketVerdict escribe el veredicto agregado del ticket.
func (s *SQLiteStore) UpdateTicketVerdict(ctx context.Context, ticketID, verdict string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE tickets SET verdict = ? WHERE id = ?`,
		verdict, ticketID,
	)
	if err != nil {
		return fmt.Errorf("storage.UpdateTicketVerdict: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("storage.UpdateTicketVerdict: ticket %s: %w", ticketID, domain.ErrTicketNotFound)
	}
	return nil
}

// Close cierra la conexión a la base de datos.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// --- helpers internos ---

func (s *SQLiteStore) legsFor(ctx context.Context, ticketID string) ([]domain.BetLeg, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, ticket_id, match_label, scheduled_at, market, selection,
		       odds, kind, is_live, is_boosted, sub_selections, outcome, actual_text
		FROM legs WHERE ticket_id = ? ORDER BY rowid
	`, ticketID)
	if err != nil {
		return nil, fmt.Errorf("query legs: %w", err)
	}
	defer rows.Close()

	var legs []domain.BetLeg
	for rows.Next() {
		var leg domain.BetLeg
		var kind, subs string
		var isLive, isBoosted int

		if err := rows.Scan(
			&leg.ID, &leg.TicketID, &leg.MatchLabel, &leg.ScheduledAt,
			&leg.Market, &leg.Selection, &leg.Odds, &kind,
			&isLive, &isBoosted, &subs, &leg.Outcome, &leg.ActualText,
		); err != nil {
			return nil, fmt.Errorf("scan leg: %w", err)
		}

		leg.Kind = domain.BetKind(kind)
		leg.IsLive = isLive == 1
		leg.IsBoostedOdds = isBoosted == 1
		if subs != "" {
			if err := json.Unmarshal([]byte(subs), &leg.SubSelections); err != nil {
				return nil, fmt.Errorf("decode sub_selections leg %s: %w", leg.ID, err)
			}
		}
		legs = append(legs, leg)
	}
	return legs, rows.Err()
}

func marshalSubSelections(subs []domain.SubSelection) (string, error) {
	if len(subs) == 0 {
		return "", nil
	}
	b, err := json.Marshal(subs)
	if err != nil {
		return "", fmt.Errorf("encode sub_selections: %w", err)
	}
	return string(b), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
