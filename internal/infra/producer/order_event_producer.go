package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	evt_model "github.com/RoyceAzure/lab/checkout/internal/domain/model/event"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type OrderEventProducerError error

var ErrProducerClosed OrderEventProducerError = fmt.Errorf("order event producer is closed")

// 需要根據customer id做分區，同一客戶的事件保持順序
// topic: 由producer創建時設置
type IOrderEventProducer interface {
	ProduceOrderCreatedEvent(ctx context.Context, event *evt_model.OrderCreatedEvent) error
	Close() error
}

type OrderEventProducer struct {
	writer *kafka.Writer
	closed atomic.Bool
}

func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll, // 等待所有副本確認
		Async:        false,

		// 錯誤處理
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			log.Error().Msgf("kafka producer error: "+msg, args...)
		}),

		// 壓縮設置
		Compression: kafka.Snappy,
	}

	return &OrderEventProducer{writer: writer}
}

// 同步發送，會block到寫入完成
func (p *OrderEventProducer) ProduceOrderCreatedEvent(ctx context.Context, event *evt_model.OrderCreatedEvent) error {
	if p.closed.Load() {
		return ErrProducerClosed
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order created event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", event.CustomerID)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type())},
			{Key: "event_id", Value: []byte(event.GetID())},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to produce order created event: %w", err)
	}
	return nil
}

func (p *OrderEventProducer) Close() error {
	if p.closed.CompareAndSwap(false, true) {
		return p.writer.Close()
	}
	return nil
}

var _ IOrderEventProducer = (*OrderEventProducer)(nil)
