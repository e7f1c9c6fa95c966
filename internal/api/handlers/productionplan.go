package handlers

import (
	"errors"
	"net/http"
	"time"

	"production-plan/internal/api/middleware"
	"production-plan/internal/api/models"
	"production-plan/internal/logger"
	"production-plan/internal/metrics"
	"production-plan/internal/planner"

	"github.com/gin-gonic/gin"
)

// ProductionPlanHandler handles production plan requests
type ProductionPlanHandler struct {
	planner  *planner.Planner
	recorder metrics.Recorder
	log      logger.Logger
}

// NewProductionPlanHandler creates a new production plan handler
func NewProductionPlanHandler(p *planner.Planner, rec metrics.Recorder, log logger.Logger) *ProductionPlanHandler {
	if p == nil {
		p = planner.New(log)
	}
	if rec == nil {
		rec = metrics.NopRecorder{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &ProductionPlanHandler{planner: p, recorder: rec, log: log}
}

// ProductionPlan handles POST /productionplan
func (h *ProductionPlanHandler) ProductionPlan(c *gin.Context) {
	res, ok := h.run(c, "productionplan")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.NewPlanItems(res.Allocations))
}

// MeritOrder handles POST /productionplan/meritorder
func (h *ProductionPlanHandler) MeritOrder(c *gin.Context) {
	res, ok := h.run(c, "meritorder")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.NewMeritOrderResponse(res))
}

// run binds the request, computes the plan and writes any error response.
func (h *ProductionPlanHandler) run(c *gin.Context, endpoint string) (*planner.Result, bool) {
	start := time.Now()
	ev := metrics.PlanEvent{Endpoint: endpoint}
	defer func() {
		ev.Duration = time.Since(start)
		if err := h.recorder.RecordPlan(ev); err != nil {
			h.log.Warnf("record plan metrics: %v", err)
		}
	}()

	var req models.ProductionPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ev.Outcome = metrics.OutcomeInvalid
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return nil, false
	}

	in := req.ToModel()
	ev.LoadMW = in.Load
	ev.Powerplants = len(in.PowerPlants)

	res, err := h.planner.Run(in)
	if err != nil {
		ev.Outcome = h.writeError(c, err)
		return nil, false
	}
	ev.Outcome = metrics.OutcomeAllocated
	return res, true
}

// writeError maps planner failures onto HTTP and returns the metrics outcome.
func (h *ProductionPlanHandler) writeError(c *gin.Context, err error) string {
	switch {
	case errors.Is(err, planner.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return metrics.OutcomeInvalid
	case errors.Is(err, planner.ErrInsufficientCapacity):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INSUFFICIENT_CAPACITY",
				Message: err.Error(),
			},
		})
		return metrics.OutcomeInsufficient
	case errors.Is(err, planner.ErrLoadNotMatched):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "LOAD_NOT_MATCHED",
				Message: err.Error(),
			},
		})
		return metrics.OutcomeUnmatched
	default:
		h.log.Errorf("unexpected error while calculating plan (request_id=%s): %v", middleware.RequestID(c), err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: "An unexpected error occurred",
				Details: map[string]interface{}{"request_id": middleware.RequestID(c)},
			},
		})
		return metrics.OutcomeError
	}
}
