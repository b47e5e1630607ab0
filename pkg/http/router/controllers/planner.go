package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/pressurex/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type plannerAPI struct {
	plannerService PlannerService
	log            *zap.Logger
}

func New(plannerService PlannerService, log *zap.Logger) *plannerAPI {
	return &plannerAPI{
		plannerService: plannerService,
		log:            log,
	}
}

func (api *plannerAPI) Routes(group *helper.RouteGroup) {
	group.GET("/soloPlan", api.soloPlan)
	group.GET("/duoPlan", api.duoPlan)
}

func (api *plannerAPI) soloPlan(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	budget, ok := api.parseBudget(w, r)
	if !ok {
		return
	}

	pressure, err := api.plannerService.SoloPlan(budget)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewPlanResponse(budget, 1, pressure)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *plannerAPI) duoPlan(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	budget, ok := api.parseBudget(w, r)
	if !ok {
		return
	}

	pressure, err := api.plannerService.DuoPlan(budget)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewPlanResponse(budget, 2, pressure)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *plannerAPI) parseBudget(w http.ResponseWriter, r *http.Request) (int, bool) {
	var (
		request planRequest
		err     error
	)

	query := r.URL.Query()

	request.Budget, err = strconv.Atoi(query.Get("budget"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("budget is required and must be a valid int"))
		return 0, false
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return 0, false
	}

	return request.Budget, true
}
