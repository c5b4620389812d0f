// Package service publishes domain events to RabbitMQ. Publishing is
// fire-and-forget: errors are logged and returned so the request path can
// ignore them, and the whole feature is disabled when no broker URL is
// configured.
package service

import (
	"context"
	"encoding/json"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// ReservaCreadaEvent is published after a reservation row is inserted. It
// carries enough resolved data for downstream consumers to notify or feed
// analytics without querying the primary database.
type ReservaCreadaEvent struct {
	ReservaKey    int64  `json:"reserva_key"`
	HotelNombre   string `json:"hotel_nombre"`
	ClienteNombre string `json:"cliente_nombre"`
	NumeroHab     int    `json:"numero_hab"`
	Fecha         string `json:"fecha"`
	Noches        int    `json:"noches"`
	IngresoTotal  string `json:"ingreso_total"`
	CreadaEn      string `json:"creada_en"`
}

const reservaCreadaQueue = "reserva.creada"

// PublishReservaCreada sends a ReservaCreadaEvent to the reserva.creada
// queue. When AMQP_URL is unset the publisher is disabled and the call is a
// no-op. Messages are persistent; the queue declaration is idempotent.
func PublishReservaCreada(ctx context.Context, event ReservaCreadaEvent) error {
	url := os.Getenv("AMQP_URL")
	if url == "" {
		return nil
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Error().Err(err).Msg("amqp dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Error().Err(err).Msg("amqp channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(reservaCreadaQueue, true, false, false, false, nil); err != nil {
		log.Error().Err(err).Msg("amqp queue declare failed")
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", reservaCreadaQueue, false, false, pub); err != nil {
		log.Error().Err(err).Msg("amqp publish failed")
		return err
	}
	return nil
}
