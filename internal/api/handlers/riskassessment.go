package handlers

import (
	"errors"
	"net/http"

	"retrofit-risk/internal/api/models"
	"retrofit-risk/internal/model"
	"retrofit-risk/internal/report"
	"retrofit-risk/internal/simulation"

	"github.com/gin-gonic/gin"
)

// DefaultsProvider resolves per-project CAPEX/OPEX defaults when a request
// omits them. The lookup backend (dataset, database) lives outside this
// service; a nil provider simply makes the fields required.
type DefaultsProvider interface {
	FetchDefaultCapexOpex(projectID string) (capex, opex float64, err error)
}

// RiskAssessmentHandler handles risk-assessment requests.
type RiskAssessmentHandler struct {
	forecasts *model.MarketForecasts
	defaults  DefaultsProvider
	engine    *simulation.Engine

	defaultNSims int
	defaultSeed  uint64
}

// NewRiskAssessmentHandler creates a handler over startup-validated forecast
// tables. defaults may be nil.
func NewRiskAssessmentHandler(forecasts *model.MarketForecasts, defaults DefaultsProvider, nsims int, seed uint64) *RiskAssessmentHandler {
	if nsims == 0 {
		nsims = simulation.DefaultNSims
	}
	return &RiskAssessmentHandler{
		forecasts:    forecasts,
		defaults:     defaults,
		engine:       simulation.New(),
		defaultNSims: nsims,
		defaultSeed:  seed,
	}
}

// Assess handles POST /risk-assessment.
func (h *RiskAssessmentHandler) Assess(c *gin.Context) {
	var req models.RiskAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	level, err := report.ParseOutputLevel(req.OutputLevel)
	if err != nil {
		writeInputError(c, err)
		return
	}

	indicators, err := model.ParseIndicators(req.Indicators)
	if err != nil {
		writeInputError(c, err)
		return
	}

	inputs, err := h.resolveInputs(req)
	if err != nil {
		writeInputError(c, err)
		return
	}

	opts := simulation.Options{NSims: h.defaultNSims, Seed: h.defaultSeed}
	if req.NSims != 0 {
		opts.NSims = req.NSims
	}
	if req.Seed != nil {
		opts.Seed = *req.Seed
	}

	result, err := h.engine.Run(inputs, *h.forecasts, opts)
	if err != nil {
		writeInputError(c, err)
		return
	}

	env, err := report.Build(inputs, result, level, indicators)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, env)
}

// resolveInputs fills missing CAPEX/OPEX from the defaults provider and
// validates the assembled project inputs.
func (h *RiskAssessmentHandler) resolveInputs(req models.RiskAssessmentRequest) (model.ProjectInputs, error) {
	capex := req.CapEx
	opex := req.AnnualMaintenanceCost

	if capex == nil || opex == nil {
		if h.defaults == nil {
			return model.ProjectInputs{}, model.InvalidInputs("capex and annual_maintenance_cost are required")
		}
		defCapex, defOpex, err := h.defaults.FetchDefaultCapexOpex(req.ProjectID)
		if err != nil {
			return model.ProjectInputs{}, model.InvalidInputs("failed to resolve default capex/opex: %v", err)
		}
		if capex == nil {
			capex = &defCapex
		}
		if opex == nil {
			opex = &defOpex
		}
	}

	return model.NewProjectInputs(*capex, *opex, req.AnnualEnergySavings,
		req.ProjectLifetime, req.LoanAmount, req.LoanTerm)
}

// writeInputError maps InputError to a 400 envelope and anything else to 500.
func writeInputError(c *gin.Context, err error) {
	var inputErr *model.InputError
	if errors.As(err, &inputErr) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    inputErr.Code,
				Message: inputErr.Message,
			},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "SIMULATION_ERROR",
			Message: err.Error(),
		},
	})
}
