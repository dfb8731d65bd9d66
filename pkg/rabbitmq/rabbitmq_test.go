package rabbitmq

import (
	"testing"

	amqp "github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
)

func TestLogStockEvent(t *testing.T) {
	err := LogStockEvent(amqp.Delivery{
		RoutingKey: "stock.sale.created",
		Body:       []byte(`{"type":"sale.created","quantity":2}`),
	})
	assert.NoError(t, err)
}

func TestLogStockEventRejectsMalformedBody(t *testing.T) {
	err := LogStockEvent(amqp.Delivery{Body: []byte("not json")})
	assert.Error(t, err)
}

func TestPublishWithoutChannel(t *testing.T) {
	c := &Client{}
	assert.Error(t, c.Publish(t.Context(), "stock.sale.created", map[string]int{"quantity": 1}))
}
