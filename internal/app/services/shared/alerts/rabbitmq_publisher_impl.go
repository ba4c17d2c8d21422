package alerts

import (
	"context"
	"staffportal-service/internal/pkg/constvars"
	"staffportal-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQPublisher struct {
	channel   *amqp.Channel
	queueName string
	log       *zap.Logger
}

// NewRabbitMQPublisher opens a channel on the shared connection and declares
// the alert queue as durable so alerts survive a broker restart.
func NewRabbitMQPublisher(conn *amqp.Connection, queueName string, log *zap.Logger) (AlertPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, err
	}

	return &rabbitMQPublisher{channel: channel, queueName: queueName, log: log}, nil
}

func (p *rabbitMQPublisher) PublishCriticalStatus(ctx context.Context, alert *PatientAlert) error {
	body, err := json.Marshal(alert)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	if err := p.channel.PublishWithContext(ctx, "", p.queueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	p.log.Info("published critical patient alert",
		zap.String(constvars.LoggingPatientIDKey, alert.PatientID),
		zap.String(constvars.LoggingQueueKey, p.queueName),
	)
	return nil
}
