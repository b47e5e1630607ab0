package datastructure

import (
	"sort"

	"github.com/lintang-b-s/pressurex/pkg"
	"github.com/lintang-b-s/pressurex/pkg/util"
)

type Index uint32

// ValveGraph is the immutable scan model: every valve keyed by name plus the
// name<->dense index bijection used by the distance matrix and the search
// bitmasks. built once by NewValveGraph, never mutated afterwards.
type ValveGraph struct {
	valves    map[string]Valve
	nameToId  map[string]Index
	idToName  []string
	flowRates []int
	adjacency [][]Index
	start     Index
}

// NewValveGraph validates the scan and assigns dense indices. index
// assignment is by sorted name so two runs over the same scan agree on ids.
// a tunnel to an unknown valve or a missing start valve is a fatal
// configuration error, detected here before any search runs.
func NewValveGraph(valves []Valve, startName string) (*ValveGraph, error) {
	if len(valves) > pkg.MAX_VALVES {
		return nil, util.WrapErrorf(nil, util.ErrTooManyValves,
			"scan has %d valves, at most %d fit the activation bitmask", len(valves), pkg.MAX_VALVES)
	}

	vg := &ValveGraph{
		valves:    make(map[string]Valve, len(valves)),
		nameToId:  make(map[string]Index, len(valves)),
		idToName:  make([]string, len(valves)),
		flowRates: make([]int, len(valves)),
		adjacency: make([][]Index, len(valves)),
	}

	names := make([]string, 0, len(valves))
	for _, v := range valves {
		vg.valves[v.GetName()] = v
		names = append(names, v.GetName())
	}
	sort.Strings(names)

	for i, name := range names {
		vg.nameToId[name] = Index(i)
		vg.idToName[i] = name
		vg.flowRates[i] = vg.valves[name].GetFlowRate()
	}

	for _, v := range valves {
		u := vg.nameToId[v.GetName()]
		for _, tunnel := range v.GetTunnels() {
			w, ok := vg.nameToId[tunnel]
			if !ok {
				return nil, util.WrapErrorf(nil, util.ErrUnknownValve,
					"valve %s has a tunnel to unknown valve %s", v.GetName(), tunnel)
			}
			vg.adjacency[u] = append(vg.adjacency[u], w)
		}
	}

	start, ok := vg.nameToId[startName]
	if !ok {
		return nil, util.WrapErrorf(nil, util.ErrStartValveNotFound,
			"start valve %s is not present in the scan", startName)
	}
	vg.start = start

	return vg, nil
}

func (vg *ValveGraph) NumberOfValves() int {
	return len(vg.idToName)
}

func (vg *ValveGraph) GetFlowRate(u Index) int {
	return vg.flowRates[u]
}

func (vg *ValveGraph) GetFlowRates() []int {
	return vg.flowRates
}

func (vg *ValveGraph) GetNeighbors(u Index) []Index {
	return vg.adjacency[u]
}

func (vg *ValveGraph) GetStart() Index {
	return vg.start
}

func (vg *ValveGraph) GetName(u Index) string {
	return vg.idToName[u]
}

func (vg *ValveGraph) GetIndex(name string) (Index, bool) {
	u, ok := vg.nameToId[name]
	return u, ok
}
