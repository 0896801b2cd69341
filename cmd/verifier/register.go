package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/alejandrodnm/betcheck/internal/domain"
	"github.com/alejandrodnm/betcheck/internal/ports"
)

// ticketFile es el formato JSON de entrada para registrar un ticket.
// Replica el body que envía la extensión: campos en castellano, camelCase.
type ticketFile struct {
	Importe    float64   `json:"importe"`
	CuotaTotal float64   `json:"cuotaTotal"`
	Agente     string    `json:"agente"`
	Cliente    string    `json:"cliente"`
	Partidos   []legFile `json:"partidos"`
}

type legFile struct {
	Partido        string       `json:"partido"`
	FechaHora      string       `json:"fechaHora"`
	Mercado        string       `json:"mercado"`
	Seleccionado   string       `json:"seleccionado"`
	Cuota          float64      `json:"cuota"`
	EnVivo         bool         `json:"enVivo"`
	CuotaAumentada bool         `json:"cuotaAumentada"`
	Detalles       []detailFile `json:"detalles"`
}

type detailFile struct {
	Mercado      string `json:"mercado"`
	Seleccionado string `json:"seleccionado"`
}

func registerTicket(ctx context.Context, store ports.TicketStore, path string) {
	ticket, err := loadTicketFile(path)
	if err != nil {
		slog.Error("failed to load ticket file", "path", path, "err", err)
		os.Exit(1)
	}

	if err := store.CreateTicket(ctx, ticket); err != nil {
		slog.Error("failed to register ticket", "err", err)
		os.Exit(1)
	}

	slog.Info("ticket registered", "ticket_id", ticket.ID, "legs", len(ticket.Legs))
	fmt.Println(ticket.ID)
}

func loadTicketFile(path string) (domain.Ticket, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("read %q: %w", path, err)
	}

	var tf ticketFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return domain.Ticket{}, fmt.Errorf("parse %q: %w", path, err)
	}
	if tf.Importe <= 0 || tf.CuotaTotal <= 0 || len(tf.Partidos) == 0 {
		return domain.Ticket{}, fmt.Errorf("ticket incompleto: se requieren importe, cuotaTotal y partidos")
	}

	// Se asigna el ID aquí para poder mostrarlo tras el insert.
	ticket := domain.Ticket{
		ID:        uuid.NewString(),
		Stake:     tf.Importe,
		TotalOdds: tf.CuotaTotal,
		Agent:     tf.Agente,
		Client:    tf.Cliente,
		Verdict:   domain.VerdictPending,
	}
	for _, p := range tf.Partidos {
		kind := domain.BetSimple
		if len(p.Detalles) > 0 {
			kind = domain.BetBuilt
		}

		leg := domain.BetLeg{
			MatchLabel:    p.Partido,
			ScheduledAt:   p.FechaHora,
			Market:        p.Mercado,
			Selection:     p.Seleccionado,
			Odds:          p.Cuota,
			Kind:          kind,
			IsLive:        p.EnVivo,
			IsBoostedOdds: p.CuotaAumentada,
		}
		for _, d := range p.Detalles {
			leg.SubSelections = append(leg.SubSelections, domain.SubSelection{
				Market:    d.Mercado,
				Selection: d.Seleccionado,
			})
		}
		ticket.Legs = append(ticket.Legs, leg)
	}
	return ticket, nil
}

func listTickets(ctx context.Context, store ports.TicketStore) {
	tickets, err := store.ListTickets(ctx)
	if err != nil {
		slog.Error("failed to list tickets", "err", err)
		os.Exit(1)
	}

	if len(tickets) == 0 {
		fmt.Println("No hay tickets registrados.")
		return
	}

	for _, t := range tickets {
		verdict := t.Verdict
		if verdict == "" {
			verdict = domain.VerdictPending
		}
		fmt.Printf("%s  stake=%.2f cuota=%.2f legs=%d  %s\n",
			t.ID, t.Stake, t.TotalOdds, len(t.Legs), verdict)
	}
}
