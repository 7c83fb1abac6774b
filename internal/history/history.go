package history

import (
	"sync"

	"fraudScope/internal/model"
)

// DefaultCapacity bounds retained scans when no capacity is configured.
const DefaultCapacity = 1000

// Stats are the aggregates over retained history.
type Stats struct {
	TotalScans         int                     `json:"total_scans"`
	RetainedScans      int                     `json:"retained_scans"`
	AverageSafetyScore float64                 `json:"average_safety_score"`
	RiskDistribution   map[model.RiskLevel]int `json:"risk_distribution"`
}

// History is a fixed-capacity, append-only scan log. Appending beyond
// capacity evicts the oldest entry first; stored results are never mutated.
type History struct {
	mu       sync.Mutex
	entries  []model.ScanResult
	head     int
	count    int
	appended int
}

func New(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{entries: make([]model.ScanResult, capacity)}
}

// Append records a scan result, evicting the oldest entry when full.
func (h *History) Append(result model.ScanResult) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries[(h.head+h.count)%len(h.entries)] = result
	if h.count < len(h.entries) {
		h.count++
	} else {
		h.head = (h.head + 1) % len(h.entries)
	}
	h.appended++
}

// Len returns the number of retained results.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}

// Results returns a copy of retained results, oldest first.
func (h *History) Results() []model.ScanResult {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]model.ScanResult, 0, h.count)
	for i := 0; i < h.count; i++ {
		out = append(out, h.entries[(h.head+i)%len(h.entries)])
	}
	return out
}

// Stats computes aggregates over retained history.
func (h *History) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()

	stats := Stats{
		TotalScans:    h.appended,
		RetainedScans: h.count,
		RiskDistribution: map[model.RiskLevel]int{
			model.RiskLevelLow:      0,
			model.RiskLevelMedium:   0,
			model.RiskLevelHigh:     0,
			model.RiskLevelCritical: 0,
		},
	}

	if h.count == 0 {
		return stats
	}

	var sum int
	for i := 0; i < h.count; i++ {
		entry := h.entries[(h.head+i)%len(h.entries)]
		sum += entry.SafetyScore
		stats.RiskDistribution[entry.RiskLevel]++
	}
	stats.AverageSafetyScore = float64(sum) / float64(h.count)

	return stats
}
