package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Shutdown runs Close and the context cancellation together; both paths
// close the inbox, so they must not trip over each other.
func TestProducerShutdownCloseThenCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewProducer([]string{"127.0.0.1:9"}, "orders", 8)
	p.Start(ctx)

	p.Close()
	cancel()

	done := make(chan struct{})
	go func() {
		p.WaitClosed()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("producer did not shut down")
	}

	assert.NotPanics(t, func() { p.Close() })
}

func TestProducerShutdownCancelOnly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewProducer([]string{"127.0.0.1:9"}, "orders", 8)
	p.Start(ctx)

	cancel()
	done := make(chan struct{})
	go func() {
		p.WaitClosed()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("producer did not shut down")
	}
}
