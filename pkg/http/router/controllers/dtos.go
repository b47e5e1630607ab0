package controllers

type planRequest struct {
	Budget int `json:"budget" validate:"gte=0,lte=60"`
}

type planResponse struct {
	Budget   int `json:"budget"`
	Agents   int `json:"agents"`
	Pressure int `json:"pressure"`
}

func NewPlanResponse(budget, agents, pressure int) planResponse {
	return planResponse{
		Budget:   budget,
		Agents:   agents,
		Pressure: pressure,
	}
}

type wsPlanRequest struct {
	Scan   []string `json:"scan" validate:"required,min=1"`
	Budget int      `json:"budget" validate:"gte=0,lte=60"`
	Agents int      `json:"agents" validate:"gte=1,lte=2"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
