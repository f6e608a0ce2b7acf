//go:build !windows

package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteTableCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Discover(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRouteTableDiscover(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping gateway discovery in short mode")
	}

	addr, err := New().Discover(context.Background())
	if err != nil {
		assert.ErrorIs(t, err, ErrNotFound)
		t.Skipf("no default route in this environment: %v", err)
	}
	assert.True(t, addr.IsValid())
}
