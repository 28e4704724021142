package sim

// Counters is a read-only snapshot of one unit's accounting. Counters are
// owned by the unit and mutated only by its own operations; a snapshot is
// meaningful only after the unit's operation sequence has completed.
type Counters struct {
	Hits              uint64 // reads served from the local cache
	Misses            uint64 // reads that had to fetch from the shared store
	CoherenceMessages uint64 // protocol cost: one per miss fetch, two per write

	// MessagesApplicable is false for incoherent units, which run no
	// protocol and have no message cost to report.
	MessagesApplicable bool
}

// Reads returns the number of read operations accounted for.
func (c Counters) Reads() uint64 {
	return c.Hits + c.Misses
}

// HitRate returns the fraction of reads served locally, 0 when no reads ran.
func (c Counters) HitRate() float64 {
	if c.Reads() == 0 {
		return 0
	}
	return float64(c.Hits) / float64(c.Reads())
}
