package queue

import (
    "context"
    "encoding/json"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "go.uber.org/zap"
)

// Publisher sends record events to RabbitMQ.  It dials once per publish.
type Publisher struct {
    url string
    log *zap.Logger
}

func NewPublisher(url string, log *zap.Logger) *Publisher {
    return &Publisher{url: url, log: log.Named("publisher")}
}

// Publish declares the queue (idempotent) and sends ev as a persistent JSON
// message.  Errors are logged and returned so the caller can ignore them.
func (p *Publisher) Publish(ctx context.Context, ev RecordEvent) error {
    conn, err := amqp.Dial(p.url)
    if err != nil {
        p.log.Warn("dial failed", zap.Error(err))
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        p.log.Warn("channel open failed", zap.Error(err))
        return err
    }
    defer func() { _ = ch.Close() }()

    if _, err := ch.QueueDeclare(
        RecordsQueueName, // name
        true,             // durable
        false,            // autoDelete
        false,            // exclusive
        false,            // noWait
        nil,              // args
    ); err != nil {
        p.log.Warn("queue declare failed", zap.Error(err))
        return err
    }

    body, err := json.Marshal(ev)
    if err != nil {
        return err
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }
    if err := ch.PublishWithContext(ctx, "", RecordsQueueName, false, false, pub); err != nil {
        p.log.Warn("publish failed", zap.Error(err), zap.String("resource", ev.Resource))
        return err
    }
    return nil
}

// Nop discards events.  It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, RecordEvent) error { return nil }
