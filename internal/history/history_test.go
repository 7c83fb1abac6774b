package history

import (
	"fmt"
	"sync"
	"testing"

	"fraudScope/internal/model"
)

func result(id string, score int) model.ScanResult {
	return model.ScanResult{
		ScanID:      id,
		SafetyScore: score,
		RiskLevel:   model.RiskLevelForScore(score),
	}
}

func TestAppendWithinCapacity(t *testing.T) {
	h := New(3)
	h.Append(result("a", 90))
	h.Append(result("b", 50))

	if h.Len() != 2 {
		t.Fatalf("len: got %d, want 2", h.Len())
	}

	got := h.Results()
	if got[0].ScanID != "a" || got[1].ScanID != "b" {
		t.Fatalf("order mismatch: %+v", got)
	}
}

func TestEvictsOldestFirst(t *testing.T) {
	h := New(3)
	for i, id := range []string{"a", "b", "c", "d", "e"} {
		h.Append(result(id, 50+i))
	}

	if h.Len() != 3 {
		t.Fatalf("len: got %d, want 3", h.Len())
	}

	got := h.Results()
	want := []string{"c", "d", "e"}
	for i, id := range want {
		if got[i].ScanID != id {
			t.Fatalf("slot %d: got %s, want %s", i, got[i].ScanID, id)
		}
	}
}

func TestStats(t *testing.T) {
	h := New(10)
	h.Append(result("a", 90)) // low
	h.Append(result("b", 70)) // medium
	h.Append(result("c", 50)) // high
	h.Append(result("d", 10)) // critical

	stats := h.Stats()
	if stats.TotalScans != 4 || stats.RetainedScans != 4 {
		t.Fatalf("counts: %+v", stats)
	}
	if stats.AverageSafetyScore != 55 {
		t.Fatalf("avg: got %v, want 55", stats.AverageSafetyScore)
	}
	for level, want := range map[model.RiskLevel]int{
		model.RiskLevelLow:      1,
		model.RiskLevelMedium:   1,
		model.RiskLevelHigh:     1,
		model.RiskLevelCritical: 1,
	} {
		if stats.RiskDistribution[level] != want {
			t.Fatalf("distribution[%s]: got %d, want %d", level, stats.RiskDistribution[level], want)
		}
	}
}

func TestTotalCountsEvicted(t *testing.T) {
	h := New(2)
	for i := 0; i < 5; i++ {
		h.Append(result(fmt.Sprintf("r%d", i), 80))
	}

	stats := h.Stats()
	if stats.TotalScans != 5 {
		t.Fatalf("total: got %d, want 5", stats.TotalScans)
	}
	if stats.RetainedScans != 2 {
		t.Fatalf("retained: got %d, want 2", stats.RetainedScans)
	}
}

func TestConcurrentAppends(t *testing.T) {
	h := New(100)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				h.Append(result(fmt.Sprintf("g%d-%d", g, i), 80))
			}
		}(g)
	}
	wg.Wait()

	stats := h.Stats()
	if stats.TotalScans != 400 {
		t.Fatalf("total: got %d, want 400", stats.TotalScans)
	}
	if stats.RetainedScans != 100 {
		t.Fatalf("retained: got %d, want 100", stats.RetainedScans)
	}
}
