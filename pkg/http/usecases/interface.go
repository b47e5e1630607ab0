package usecases

type PlanningEngine interface {
	SoloPlan(budget int) int
	DuoPlan(budget int) int
}
