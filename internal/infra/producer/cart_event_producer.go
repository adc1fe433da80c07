package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model/event"
	"github.com/segmentio/kafka-go"
)

// 需要根據customer id做分區，同一customer的事件才會保序
// topic: 由producer創建時設置
type ICartEventProducer interface {
	ProduceCartEvent(ctx context.Context, customerID uint, evt event.Event) error
	Close() error
}

type CartEventProducer struct {
	writer *kafka.Writer
}

func NewCartEventProducer(brokers []string, topic string) *CartEventProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &CustomerBalancer{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,

		// 壓縮設置
		Compression: kafka.Snappy,
	}
	return &CartEventProducer{writer: writer}
}

func (c *CartEventProducer) ProduceCartEvent(ctx context.Context, customerID uint, evt event.Event) error {
	msg, err := convertToMessage(customerID, evt)
	if err != nil {
		return err
	}
	return c.writer.WriteMessages(ctx, msg)
}

func (c *CartEventProducer) Close() error {
	return c.writer.Close()
}

func convertToMessage(customerID uint, evt event.Event) (kafka.Message, error) {
	evtValue, err := json.Marshal(evt)
	if err != nil {
		return kafka.Message{}, err
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", customerID)),
		Value: evtValue,
		Headers: []kafka.Header{
			{
				Key:   "event_type",
				Value: []byte(evt.Type()),
			},
		},
	}

	return msg, nil
}

var _ ICartEventProducer = (*CartEventProducer)(nil)
