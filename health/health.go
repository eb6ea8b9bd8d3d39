package health

import (
	"context"
	"fmt"
	"time"
)

// ReadinessCheck is implemented by every dependency the service needs before
// it can report SERVING.
type ReadinessCheck interface {
	IsReady(ctx context.Context) error
	Name() string
}

// CheckAll runs the checks in order, each bounded by timeout, and returns the
// first failure.
func CheckAll(ctx context.Context, timeout time.Duration, checks ...ReadinessCheck) error {
	for _, c := range checks {
		cctx, cancel := context.WithTimeout(ctx, timeout)
		err := c.IsReady(cctx)
		cancel()

		if err != nil {
			return fmt.Errorf("%s: %w", c.Name(), err)
		}
	}
	return nil
}
