package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Example_basicUsage demonstrates basic metrics configuration.
func Example_basicUsage() {
	// Create a separate registry for this test
	testRegistry := prometheus.NewRegistry()
	registry := NewRegistry(testRegistry)

	// Example of accessing metrics
	registry.PipelineDeliveries.WithLabelValues("word_matcher").Add(8)
	registry.PipelineForwards.WithLabelValues("word_matcher", "filter").Add(2)
	registry.PipelineCloses.WithLabelValues("word_matcher").Inc()

	registry.StreamNodes.WithLabelValues("integers").Add(6)
	registry.ThunkForces.WithLabelValues("integers").Add(5)

	fmt.Println("Metrics updated successfully")

	// Output:
	// Metrics updated successfully
}

// Example_customRegistry demonstrates using a custom Prometheus registry.
func Example_customRegistry() {
	customRegistry := prometheus.NewRegistry()

	config := Config{
		Enabled:  true,
		Registry: customRegistry,
	}

	registry := NewRegistry(config.Registry)

	registry.PumpRuns.WithLabelValues("scheduled").Inc()
	registry.DeliveryDuration.WithLabelValues("scheduled").Observe(0.0001)

	fmt.Printf("Custom registry enabled: %v\n", config.Enabled)
	fmt.Println("Custom registry configured with seqflow metrics")

	// Output:
	// Custom registry enabled: true
	// Custom registry configured with seqflow metrics
}
