package main

import (
	"flag"
	"time"

	"github.com/lintang-b-s/pressurex/pkg"
	"github.com/lintang-b-s/pressurex/pkg/datastructure"
	"github.com/lintang-b-s/pressurex/pkg/engine/search"
	"github.com/lintang-b-s/pressurex/pkg/logger"
	"github.com/lintang-b-s/pressurex/pkg/parser"
)

var (
	scanPath   = flag.String("scan", "./data/scan.txt", "valve scan file (.txt, or .bz2 compressed)")
	soloBudget = flag.Int("solo_budget", pkg.SOLO_BUDGET, "time budget of the single agent plan")
	duoBudget  = flag.Int("duo_budget", pkg.DUO_BUDGET, "time budget of each agent in the two agent plan")
	numWorkers = flag.Int("workers", 1, "search worker count, 1 runs sequentially")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	valves, err := parser.NewScanParser().ParseFile(*scanPath)
	if err != nil {
		panic(err)
	}
	graph, err := datastructure.NewValveGraph(valves, pkg.START_VALVE)
	if err != nil {
		panic(err)
	}

	pressureSearch := search.NewPressureSearch(graph, logger)

	start := time.Now()
	solo, _ := pressureSearch.RunConcurrent(*soloBudget, *numWorkers)
	logger.Sugar().Infof("solo plan (budget %d): %d pressure released, solved in %s",
		*soloBudget, solo, time.Since(start))

	start = time.Now()
	_, table := pressureSearch.RunConcurrent(*duoBudget, *numWorkers)
	duo := table.BestDisjointPair()
	logger.Sugar().Infof("duo plan (budget %d each): %d pressure released, solved in %s",
		*duoBudget, duo, time.Since(start))
}
