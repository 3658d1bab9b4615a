package auditlogs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/NeuralTrust/AuthGuard/pkg/domain/security"
	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	messages   []*kafka.Message
	deliverErr error
	produceErr error
	flushed    bool
	closed     bool
}

func (p *fakeProducer) Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error {
	if p.produceErr != nil {
		return p.produceErr
	}
	p.messages = append(p.messages, msg)
	delivered := *msg
	delivered.TopicPartition.Error = p.deliverErr
	deliveryChan <- &delivered
	return nil
}

func (p *fakeProducer) Flush(int) int { p.flushed = true; return 0 }

func (p *fakeProducer) Close() { p.closed = true }

func TestDecodeKafkaConfig(t *testing.T) {
	cfg, err := DecodeKafkaConfig(map[string]any{
		"enabled": true,
		"host":    "kafka",
		"port":    9092,
		"topic":   "security-events",
	})
	require.NoError(t, err)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "9092", cfg.Port)
	assert.NoError(t, cfg.Validate())

	assert.Error(t, KafkaConfig{Host: "kafka", Port: "9092"}.Validate())
	assert.Error(t, KafkaConfig{Port: "9092", Topic: "t"}.Validate())
}

func TestKafkaSink_Handle(t *testing.T) {
	p := &fakeProducer{}
	sink := &kafkaSink{cfg: KafkaConfig{Topic: "security-events"}, producer: p}

	event := security.NewEvent(security.EventTypeIPBlacklisted, security.SeverityCritical)
	event.IPAddress = "203.0.113.5"
	require.NoError(t, sink.Handle(context.Background(), event))

	require.Len(t, p.messages, 1)
	msg := p.messages[0]
	assert.Equal(t, "security-events", *msg.TopicPartition.Topic)
	assert.Equal(t, []byte("203.0.113.5"), msg.Key)

	var decoded security.Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, security.SeverityCritical, decoded.Severity)

	require.NoError(t, sink.Close())
	assert.True(t, p.flushed)
	assert.True(t, p.closed)
}

func TestKafkaSink_DeliveryFailure(t *testing.T) {
	p := &fakeProducer{deliverErr: errors.New("broker down")}
	sink := &kafkaSink{cfg: KafkaConfig{Topic: "security-events"}, producer: p}

	err := sink.Handle(context.Background(), security.NewEvent(security.EventTypeAuthFailure, security.SeverityMedium))
	assert.ErrorContains(t, err, "delivery failed")
}

func TestKafkaSink_ProduceFailure(t *testing.T) {
	p := &fakeProducer{produceErr: errors.New("queue full")}
	sink := &kafkaSink{cfg: KafkaConfig{Topic: "security-events"}, producer: p}

	err := sink.Handle(context.Background(), security.NewEvent(security.EventTypeAuthFailure, security.SeverityMedium))
	assert.ErrorContains(t, err, "failed to produce message")
}
