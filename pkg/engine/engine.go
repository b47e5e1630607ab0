package engine

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/pressurex/pkg/datastructure"
	"github.com/lintang-b-s/pressurex/pkg/engine/search"
	"go.uber.org/zap"
)

type planCacheKey struct {
	budget int
	agents int
}

// Engine owns one immutable scan and answers plan queries against it. plans
// are memoized per (budget, agents) pair for the lifetime of the process,
// the same query from the API never re-runs the search.
type Engine struct {
	search    *search.PressureSearch
	planCache *lru.Cache[planCacheKey, int]
	log       *zap.Logger
}

func NewEngine(graph *datastructure.ValveGraph, log *zap.Logger) (*Engine, error) {
	log.Info("starting pressure release planning engine...",
		zap.Int("valves", graph.NumberOfValves()),
		zap.String("start", graph.GetName(graph.GetStart())))

	planCache, err := lru.New[planCacheKey, int](1 << 10)
	if err != nil {
		return nil, err
	}

	return &Engine{
		search:    search.NewPressureSearch(graph, log),
		planCache: planCache,
		log:       log,
	}, nil
}

func (e *Engine) GetSearch() *search.PressureSearch {
	return e.search
}

func (e *Engine) GetGraph() *datastructure.ValveGraph {
	return e.search.GetGraph()
}

// SoloPlan returns the most pressure one agent can release within budget
// minutes.
func (e *Engine) SoloPlan(budget int) int {
	key := planCacheKey{budget: budget, agents: 1}
	if cached, ok := e.planCache.Get(key); ok {
		return cached
	}

	best, _ := e.search.Run(budget)
	e.log.Info("solo plan computed", zap.Int("budget", budget), zap.Int("pressure", best))

	e.planCache.Add(key, best)
	return best
}

// DuoPlan returns the most pressure two agents can release together within
// budget minutes each, never opening the same valve twice. one search under
// the shared budget produces the best-per-mask table, the combiner then
// picks the best disjoint pair of sub-plans.
func (e *Engine) DuoPlan(budget int) int {
	key := planCacheKey{budget: budget, agents: 2}
	if cached, ok := e.planCache.Get(key); ok {
		return cached
	}

	_, table := e.search.Run(budget)
	best := table.BestDisjointPair()
	e.log.Info("duo plan computed", zap.Int("budget", budget), zap.Int("pressure", best))

	e.planCache.Add(key, best)
	return best
}
