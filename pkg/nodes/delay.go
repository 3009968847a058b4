package nodes

import (
	"context"
	"time"

	"github.com/flowrun-io/flowrun/pkg/models"
)

const defaultDelayMS = 1000

// evaluateDelay suspends the run for the configured number of milliseconds
// without occupying a thread. Context cancellation cuts the delay short and
// fails the node.
func evaluateDelay(ctx context.Context, data map[string]any) models.NodeResult {
	delayMS := defaultDelayMS

	switch value := data["delay_ms"].(type) {
	case float64:
		delayMS = int(value)
	case int:
		delayMS = value
	}

	timer := time.NewTimer(time.Duration(delayMS) * time.Millisecond)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return failure("delay interrupted: " + ctx.Err().Error())
	}

	return models.NodeResult{
		Success:    true,
		Output:     map[string]any{"delayed_ms": delayMS},
		DurationMS: int64(delayMS),
	}
}
