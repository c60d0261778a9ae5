package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher_NoBrokersIsNop(t *testing.T) {
	t.Parallel()

	p := NewPublisher(nil)
	_, ok := p.(Nop)
	require.True(t, ok)

	assert.NoError(t, p.PublishEvent(context.Background(), "order_events", "1", map[string]any{"type": "x"}))
	assert.NoError(t, p.Close())
}

func TestNewPublisher_WithBrokers(t *testing.T) {
	t.Parallel()

	p := NewPublisher([]string{"localhost:9092"})
	prod, ok := p.(*Producer)
	require.True(t, ok)
	assert.Equal(t, "localhost:9092", prod.writer.Addr.String())
	require.NoError(t, p.Close())
}

func TestProducer_PublishEvent_MarshalError(t *testing.T) {
	t.Parallel()

	p := NewProducer([]string{"localhost:9092"})
	defer p.Close()

	err := p.PublishEvent(context.Background(), "order_events", "1", map[string]any{"bad": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshal event")
}
