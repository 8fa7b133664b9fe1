package httpserver

import (
	"net/http"

	"retain-api/internal/classifier"
	"retain-api/internal/model"
	"retain-api/internal/revenue"
	"retain-api/internal/scoring"
	"retain-api/internal/threshold"
	pkgErrors "retain-api/pkg/errors"
	"retain-api/pkg/paginator"
	"retain-api/pkg/response"
	"retain-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

var errMapping = response.ErrorMapping{
	scoring.ErrFieldRequired:        pkgErrors.NewHTTPError(40001, "Required field missing", http.StatusBadRequest),
	scoring.ErrNoProbability:        pkgErrors.NewHTTPError(40002, "No churn probability available and no classifier loaded", http.StatusBadRequest),
	scoring.ErrDecisionNotFound:     pkgErrors.NewHTTPError(40401, "Decision not found", http.StatusNotFound),
	scoring.ErrAlreadyLabeled:       pkgErrors.NewHTTPError(40901, "Decision already has an observed outcome", http.StatusConflict),
	scoring.ErrNoLabeledDecisions:   pkgErrors.NewHTTPError(42201, "No labeled decisions to calibrate on", http.StatusUnprocessableEntity),
	revenue.ErrInvalidProbability:   pkgErrors.NewHTTPError(40003, "Churn probability must be between 0 and 1", http.StatusBadRequest),
	revenue.ErrNegativeAmount:       pkgErrors.NewHTTPError(40004, "Monetary amounts must not be negative", http.StatusBadRequest),
	revenue.ErrNegativeTenure:       pkgErrors.NewHTTPError(40005, "Tenure must not be negative", http.StatusBadRequest),
	threshold.ErrInvalidProbability: pkgErrors.NewHTTPError(40006, "Churn probability must be between 0 and 1", http.StatusBadRequest),
	threshold.ErrInvalidThreshold:   pkgErrors.NewHTTPError(40009, "Threshold must be between 0 and 1", http.StatusBadRequest),
	threshold.ErrInvalidCLV:         pkgErrors.NewHTTPError(40007, "Customer lifetime value must not be negative", http.StatusBadRequest),
	threshold.ErrInvalidOfferCost:   pkgErrors.NewHTTPError(40008, "Retention cost must not be negative", http.StatusBadRequest),
}

type scoreReq struct {
	CustomerID string                     `json:"customer_id" binding:"required"`
	Profile    classifier.CustomerProfile `json:"profile"`
	// ChurnProbability, when present, is used as-is and the classifier is skipped.
	ChurnProbability *float64 `json:"churn_probability,omitempty"`
	ChurnCategory    string   `json:"churn_category,omitempty"`
}

func (req scoreReq) toInput() scoring.ScoreInput {
	return scoring.ScoreInput{
		CustomerID:       req.CustomerID,
		Profile:          req.Profile,
		ChurnProbability: req.ChurnProbability,
		ChurnCategory:    req.ChurnCategory,
	}
}

type decisionResp struct {
	ID                    string            `json:"id"`
	CustomerID            string            `json:"customer_id"`
	ChurnProbability      float64           `json:"churn_probability"`
	ThresholdUsed         float64           `json:"threshold_used"`
	Label                 int               `json:"label"`
	RiskLevel             string            `json:"risk_level"`
	Recommendation        string            `json:"recommendation"`
	CustomerLifetimeValue float64           `json:"customer_lifetime_value"`
	RevenueAtRisk         float64           `json:"revenue_at_risk"`
	RevenueTier           string            `json:"revenue_tier"`
	Priority              string            `json:"priority"`
	RecommendedOffer      string            `json:"recommended_offer"`
	ModelVersion          string            `json:"model_version"`
	ChurnCategory         *string           `json:"churn_category,omitempty"`
	ObservedOutcome       *bool             `json:"observed_outcome,omitempty"`
	CreatedAt             response.DateTime `json:"created_at"`
	UpdatedAt             response.DateTime `json:"updated_at"`
}

func newDecisionResp(d model.Decision) decisionResp {
	return decisionResp{
		ID:                    d.ID,
		CustomerID:            d.CustomerID,
		ChurnProbability:      d.ChurnProbability,
		ThresholdUsed:         d.ThresholdUsed,
		Label:                 d.Label,
		RiskLevel:             d.RiskLevel,
		Recommendation:        d.Recommendation,
		CustomerLifetimeValue: d.CustomerLifetimeValue,
		RevenueAtRisk:         d.RevenueAtRisk,
		RevenueTier:           d.RevenueTier,
		Priority:              d.Priority,
		RecommendedOffer:      d.RecommendedOffer,
		ModelVersion:          d.ModelVersion,
		ChurnCategory:         d.ChurnCategory,
		ObservedOutcome:       d.ObservedOutcome,
		CreatedAt:             response.DateTime(d.CreatedAt),
		UpdatedAt:             response.DateTime(d.UpdatedAt),
	}
}

type scoreResp struct {
	Decision         decisionResp         `json:"decision"`
	Impact           revenue.ImpactReport `json:"impact"`
	DynamicThreshold float64              `json:"dynamic_threshold"`
	Insights         []string             `json:"insights,omitempty"`
	Playbook         []string             `json:"playbook,omitempty"`
}

func newScoreResp(op scoring.ScoreOutput) scoreResp {
	return scoreResp{
		Decision:         newDecisionResp(op.Decision),
		Impact:           op.Impact,
		DynamicThreshold: op.DynamicThreshold,
		Insights:         op.Insights,
		Playbook:         op.Playbook,
	}
}

// score handles churn scoring requests
// @Summary Score a customer for churn risk
// @Description Runs the full churn decision pipeline: probability, revenue impact, dynamic threshold, recommendation
// @Tags Churn
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body scoreReq true "Customer to score"
// @Success 200 {object} scoreResp "Scoring decision"
// @Failure 400 {object} response.Resp "Invalid request"
// @Router /api/v1/churn/score [post]
func (srv *HTTPServer) score(c *gin.Context) {
	ctx := c.Request.Context()

	var req scoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		srv.l.Warnf(ctx, "internal.httpserver.score.ShouldBindJSON: %v", err)
		response.HttpError(c, pkgErrors.NewHTTPError(40000, "Invalid request body", http.StatusBadRequest))
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	op, err := srv.scoringUC.Score(ctx, sc, req.toInput())
	if err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.score: %v", err)
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newScoreResp(op))
}

type feedbackReq struct {
	DecisionID string `json:"decision_id" binding:"required"`
	Churned    *bool  `json:"churned" binding:"required"`
}

// feedback records the observed outcome for a past decision
// @Summary Record observed churn outcome
// @Description Labels a past decision with whether the customer actually churned; labeled decisions feed calibration
// @Tags Churn
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body feedbackReq true "Observed outcome"
// @Success 200 {object} decisionResp "Updated decision"
// @Failure 404 {object} response.Resp "Decision not found"
// @Failure 409 {object} response.Resp "Decision already labeled"
// @Router /api/v1/churn/feedback [post]
func (srv *HTTPServer) feedback(c *gin.Context) {
	ctx := c.Request.Context()

	var req feedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		srv.l.Warnf(ctx, "internal.httpserver.feedback.ShouldBindJSON: %v", err)
		response.HttpError(c, pkgErrors.NewHTTPError(40000, "Invalid request body", http.StatusBadRequest))
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	op, err := srv.scoringUC.Feedback(ctx, sc, scoring.FeedbackInput{
		DecisionID: req.DecisionID,
		Churned:    *req.Churned,
	})
	if err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.feedback: %v", err)
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newDecisionResp(op.Decision))
}

type listDecisionsReq struct {
	CustomerID string   `form:"customer_id"`
	RiskLevels []string `form:"risk_level"`
	Labeled    *bool    `form:"labeled"`
	paginator.PaginateQuery
}

type listDecisionsResp struct {
	Decisions []decisionResp              `json:"decisions"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

// listDecisions lists past scoring decisions
// @Summary List scoring decisions
// @Description Lists the decision audit log, filterable by customer, risk level, and label status
// @Tags Churn
// @Produce json
// @Security BearerAuth
// @Param customer_id query string false "Filter by customer id"
// @Param risk_level query []string false "Filter by risk level"
// @Param labeled query bool false "Filter by feedback presence"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} listDecisionsResp "Decision page"
// @Router /api/v1/churn/decisions [get]
func (srv *HTTPServer) listDecisions(c *gin.Context) {
	ctx := c.Request.Context()

	var req listDecisionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		srv.l.Warnf(ctx, "internal.httpserver.listDecisions.ShouldBindQuery: %v", err)
		response.HttpError(c, pkgErrors.NewHTTPError(40000, "Invalid query parameters", http.StatusBadRequest))
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	op, err := srv.scoringUC.Get(ctx, sc, scoring.GetInput{
		Filter: scoring.Filter{
			CustomerID: req.CustomerID,
			RiskLevels: req.RiskLevels,
			Labeled:    req.Labeled,
		},
		PaginateQuery: req.PaginateQuery,
	})
	if err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.listDecisions: %v", err)
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	decisions := make([]decisionResp, 0, len(op.Decisions))
	for _, d := range op.Decisions {
		decisions = append(decisions, newDecisionResp(d))
	}

	response.OK(c, listDecisionsResp{
		Decisions: decisions,
		Paginator: op.Paginator.ToResponse(),
	})
}

// detailDecision fetches one decision by id
// @Summary Get one scoring decision
// @Tags Churn
// @Produce json
// @Security BearerAuth
// @Param id path string true "Decision id"
// @Success 200 {object} decisionResp "Decision"
// @Failure 404 {object} response.Resp "Decision not found"
// @Router /api/v1/churn/decisions/{id} [get]
func (srv *HTTPServer) detailDecision(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	op, err := srv.scoringUC.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.detailDecision: %v", err)
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newDecisionResp(op.Decision))
}

type calibrateReq struct {
	// Grid overrides the default threshold candidate grid when non-empty.
	Grid []float64 `json:"grid,omitempty"`
}

type calibrateResp struct {
	Result threshold.CalibrationResult `json:"result"`
}

// calibrate recomputes the decision threshold from labeled decisions
// @Summary Calibrate the decision threshold
// @Description Grid-searches candidate thresholds over labeled decisions and adopts the cost-optimal one
// @Tags Churn
// @Accept json
// @Produce json
// @Param X-Internal-Key header string true "Operator key"
// @Param body body calibrateReq false "Optional candidate grid"
// @Success 200 {object} calibrateResp "Calibration result"
// @Failure 422 {object} response.Resp "No labeled decisions"
// @Router /internal/api/v1/churn/calibrate [post]
func (srv *HTTPServer) calibrate(c *gin.Context) {
	ctx := c.Request.Context()

	var req calibrateReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			srv.l.Warnf(ctx, "internal.httpserver.calibrate.ShouldBindJSON: %v", err)
			response.HttpError(c, pkgErrors.NewHTTPError(40000, "Invalid request body", http.StatusBadRequest))
			return
		}
	}

	sc := scope.GetScopeFromContext(ctx)
	op, err := srv.scoringUC.Calibrate(ctx, sc, scoring.CalibrateInput{Grid: req.Grid})
	if err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.calibrate: %v", err)
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, calibrateResp{Result: op.Result})
}
