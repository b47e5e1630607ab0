package usecases

import (
	"strings"

	"github.com/lintang-b-s/pressurex/pkg"
	"github.com/lintang-b-s/pressurex/pkg/datastructure"
	"github.com/lintang-b-s/pressurex/pkg/engine/search"
	"github.com/lintang-b-s/pressurex/pkg/parser"
	"github.com/lintang-b-s/pressurex/pkg/util"
	"go.uber.org/zap"
)

type PlannerService struct {
	log       *zap.Logger
	engine    PlanningEngine
	maxBudget int
}

// NewPlannerService wraps the planning engine for the API. maxBudget bounds
// the time budget a caller may ask for, the state space grows exponentially
// with it.
func NewPlannerService(log *zap.Logger, engine PlanningEngine, maxBudget int) *PlannerService {
	return &PlannerService{
		log:       log,
		engine:    engine,
		maxBudget: maxBudget,
	}
}

func (ps *PlannerService) SoloPlan(budget int) (int, error) {
	if err := ps.checkBudget(budget); err != nil {
		return 0, err
	}
	return ps.engine.SoloPlan(budget), nil
}

func (ps *PlannerService) DuoPlan(budget int) (int, error) {
	if err := ps.checkBudget(budget); err != nil {
		return 0, err
	}
	return ps.engine.DuoPlan(budget), nil
}

// PlanScan plans over a scan submitted by the caller instead of the engine's
// own. every request builds a transient graph and search, nothing is cached.
func (ps *PlannerService) PlanScan(scanLines []string, budget, agents int) (int, error) {
	if err := ps.checkBudget(budget); err != nil {
		return 0, err
	}
	if agents < 1 || agents > 2 {
		return 0, util.WrapErrorf(nil, util.ErrBadParamInput,
			"agents must be 1 or 2, got %d", agents)
	}

	valves, err := parser.NewScanParser().Parse(strings.NewReader(strings.Join(scanLines, "\n")))
	if err != nil {
		return 0, util.WrapErrorf(err, util.ErrBadParamInput, "invalid scan: %v", err)
	}
	graph, err := datastructure.NewValveGraph(valves, pkg.START_VALVE)
	if err != nil {
		return 0, util.WrapErrorf(err, util.ErrBadParamInput, "invalid scan: %v", err)
	}

	pressureSearch := search.NewPressureSearch(graph, ps.log)
	best, table := pressureSearch.Run(budget)
	if agents == 2 {
		return table.BestDisjointPair(), nil
	}
	return best, nil
}

func (ps *PlannerService) checkBudget(budget int) error {
	if budget < 0 || budget > ps.maxBudget {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"budget must be between 0 and %d, got %d", ps.maxBudget, budget)
	}
	return nil
}
