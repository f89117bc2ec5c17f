package notifications

import (
	"context"

	"care4u-service/internal/app/contracts"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Worker drains the notification queue in the background. Delivery today is
// a structured log line; the queue contract stays the same when a real
// mail or push channel is attached.
type Worker struct {
	conn      *amqp.Connection
	log       *zap.Logger
	queueName string
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewWorker(conn *amqp.Connection, log *zap.Logger, queueName string) *Worker {
	return &Worker{
		conn:      conn,
		log:       log,
		queueName: queueName,
		done:      make(chan struct{}),
	}
}

// Start opens its own channel and consumes until Stop is called.
func (w *Worker) Start() error {
	ch, err := w.conn.Channel()
	if err != nil {
		return err
	}

	if err := ch.Qos(1, 0, false); err != nil {
		return err
	}

	deliveries, err := ch.Consume(
		w.queueName, // queue
		"",          // consumer
		false,       // autoAck
		false,       // exclusive
		false,       // noLocal
		false,       // noWait
		nil,         // args
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	go func() {
		defer close(w.done)
		defer ch.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.handle(delivery)
			}
		}
	}()

	return nil
}

func (w *Worker) handle(delivery amqp.Delivery) {
	var message contracts.NotificationMessage
	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		w.log.Error("NotificationWorker.handle cannot decode delivery", zap.Error(err))
		// Malformed payload will never succeed, drop it.
		delivery.Nack(false, false)
		return
	}

	w.log.Info("notification delivered",
		zap.String("user_id", message.UserID),
		zap.String("event", message.Event),
		zap.String("subject", message.Subject),
	)
	delivery.Ack(false)
}

// Stop cancels the consume loop and waits for it to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	<-w.done
}
