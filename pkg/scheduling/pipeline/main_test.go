package pipeline

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain enables goroutine leak detection for all tests in this package.
// This catches any scheduler goroutines left running after a CronPump stop.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
