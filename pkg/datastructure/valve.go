package datastructure

// Valve is one vertex of the scan: a stable two-letter name, a non-negative
// flow rate, and the names of the valves its tunnels lead to. immutable
// after construction.
type Valve struct {
	name     string
	flowRate int
	tunnels  []string
}

func NewValve(name string, flowRate int, tunnels []string) Valve {
	return Valve{
		name:     name,
		flowRate: flowRate,
		tunnels:  tunnels,
	}
}

func (v Valve) GetName() string {
	return v.name
}

func (v Valve) GetFlowRate() int {
	return v.flowRate
}

func (v Valve) GetTunnels() []string {
	return v.tunnels
}
