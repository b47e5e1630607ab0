package pkg

const (
	// START_VALVE is where every agent starts. The scan always contains it
	// and its flow rate is zero in this domain.
	START_VALVE = "AA"

	// whole-minute budgets of the original problem. callers may override
	// them, these are only the defaults of the cmd harness.
	SOLO_BUDGET = 30
	DUO_BUDGET  = 26

	// MAX_VALVES is fixed by the uint64 activation bitmask.
	MAX_VALVES = 64

	INF_DIST int = 1 << 30
)

const (
	DEBUG = false
)
