package monitor

import (
	"fmt"
	"time"
)

const maxSamples = 100

type OpStats struct {
	Avg   float64 `json:"avg"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// StartTiming begins timing a named operation and returns the stop func.
// A call that runs past the slow threshold logs a warning naming the
// operation. Safe on a nil receiver.
func (m *Monitor) StartTiming(operation string) func() {
	if m == nil {
		return func() {}
	}
	start := time.Now()

	return func() {
		duration := time.Since(start)
		ms := float64(duration) / float64(time.Millisecond)

		m.mu.Lock()
		samples := append(m.perf[operation], ms)
		if len(samples) > maxSamples {
			samples = samples[len(samples)-maxSamples:]
		}
		m.perf[operation] = samples
		threshold := m.slowThreshold
		m.mu.Unlock()

		if duration > threshold {
			m.Log(LevelWarning, "Performance", "Slow operation detected: "+operation, map[string]any{
				"duration": fmt.Sprintf("%.2fms", ms),
			})
		}
	}
}

// PerfMetrics reports aggregate timing stats; pass an empty operation name
// for every tracked operation.
func (m *Monitor) PerfMetrics(operation string) map[string]OpStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := map[string]OpStats{}
	for op, samples := range m.perf {
		if operation != "" && op != operation {
			continue
		}
		if len(samples) == 0 {
			continue
		}
		stats := OpStats{Min: samples[0], Max: samples[0], Count: len(samples)}
		var sum float64
		for _, s := range samples {
			sum += s
			if s < stats.Min {
				stats.Min = s
			}
			if s > stats.Max {
				stats.Max = s
			}
		}
		stats.Avg = sum / float64(len(samples))
		result[op] = stats
	}
	return result
}

func (m *Monitor) ClearPerfMetrics() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.perf = map[string][]float64{}
}
