// Aggregates per-unit counters for end-of-run reporting.

package sim

import (
	"fmt"
	"time"
)

// UnitReport is one unit's final accounting.
type UnitReport struct {
	ID       int
	Counters Counters
}

// Metrics aggregates statistics about a completed run for final reporting.
// Useful for comparing the message cost of coherence against the staleness
// risk of its absence.
type Metrics struct {
	Regime Regime
	Units  []UnitReport

	TotalHits     uint64
	TotalMisses   uint64
	TotalMessages uint64
}

// NewMetrics snapshots every unit's counters. Call only after all unit
// goroutines are joined.
func NewMetrics(regime Regime, units []Unit) *Metrics {
	m := &Metrics{Regime: regime}
	for _, u := range units {
		c := u.Counters()
		m.Units = append(m.Units, UnitReport{ID: u.ID(), Counters: c})
		m.TotalHits += c.Hits
		m.TotalMisses += c.Misses
		m.TotalMessages += c.CoherenceMessages
	}
	return m
}

// HitRate returns the run-wide fraction of reads served from local caches.
func (m *Metrics) HitRate() float64 {
	total := m.TotalHits + m.TotalMisses
	if total == 0 {
		return 0
	}
	return float64(m.TotalHits) / float64(total)
}

// Print displays aggregated counters at the end of a run.
func (m *Metrics) Print(elapsed time.Duration) {
	fmt.Printf("=== %s run ===\n", m.Regime)
	for _, r := range m.Units {
		msgs := "n/a"
		if r.Counters.MessagesApplicable {
			msgs = fmt.Sprintf("%d", r.Counters.CoherenceMessages)
		}
		fmt.Printf("unit %-3d: hits=%-8d misses=%-8d coherence messages=%s\n",
			r.ID, r.Counters.Hits, r.Counters.Misses, msgs)
	}
	fmt.Printf("Hit Rate            : %.2f%%\n", m.HitRate()*100)
	fmt.Printf("Store Fetches       : %d\n", m.TotalMisses)
	if m.Regime == RegimeCoherent {
		fmt.Printf("Coherence Messages  : %d\n", m.TotalMessages)
	}
	fmt.Printf("Elapsed             : %v\n", elapsed)
}
