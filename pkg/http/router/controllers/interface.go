package controllers

type PlannerService interface {
	SoloPlan(budget int) (int, error)
	DuoPlan(budget int) (int, error)
	PlanScan(scanLines []string, budget, agents int) (int, error)
}
