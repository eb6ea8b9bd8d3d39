package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type check struct {
	name  string
	err   error
	calls int
	block bool
}

func (c *check) Name() string { return c.name }

func (c *check) IsReady(ctx context.Context) error {
	c.calls++
	if c.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return c.err
}

func TestCheckAll(t *testing.T) {
	ctx := context.Background()

	ok := &check{name: "files"}
	require.NoError(t, CheckAll(ctx, time.Second, ok, ok))
	assert.Equal(t, 2, ok.calls)

	failing := &check{name: "objects", err: errors.New("bucket missing")}
	after := &check{name: "sessions"}
	err := CheckAll(ctx, time.Second, ok, failing, after)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "objects")
	assert.Zero(t, after.calls, "checks stop at the first failure")
}

func TestCheckAllTimeout(t *testing.T) {
	err := CheckAll(context.Background(), 10*time.Millisecond, &check{name: "slow", block: true})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
