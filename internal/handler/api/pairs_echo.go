package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"PairScope/internal/domain/models"
	svcmetrics "PairScope/internal/service/metrics"
	"PairScope/internal/usecase"
	xhttp "PairScope/pkg/http"
	xlogger "PairScope/pkg/logger"
)

// PairsEchoHandler serves the pair analysis API.
type PairsEchoHandler struct {
	logger *xlogger.Logger
	uc     *usecase.PairAnalysis
}

func NewPairsEchoHandler(logger *xlogger.Logger, uc *usecase.PairAnalysis) *PairsEchoHandler {
	svcmetrics.Register()
	return &PairsEchoHandler{logger: logger, uc: uc}
}

func (h *PairsEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	g := e.Group("/api/v1")
	g.POST("/pairs/analyze", h.Analyze)
	g.POST("/pairs/recheck", h.Recheck)
	g.POST("/series/parse", h.ParseSeries)
	g.GET("/zscore", h.ZScore)
}

func (h *PairsEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func (h *PairsEchoHandler) Analyze(c echo.Context) error {
	const endpoint = "analyze"
	defer svcmetrics.Observe(endpoint, time.Now())

	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		svcmetrics.Reject(endpoint, "bad_request")
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.uc.Analyze(c.Request().Context(), req)
	if err != nil {
		if ve, ok := usecase.AsValidationError(err); ok {
			svcmetrics.Reject(endpoint, "unprocessable")
			return xhttp.AppErrorResponse(c, xhttp.UnprocessableError(ve.Field, ve.Reason))
		}
		svcmetrics.Reject(endpoint, "internal")
		h.logger.Error("analyze usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("analysis failed").WithError(err))
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return xhttp.SuccessResponse(c, res)
}

func (h *PairsEchoHandler) Recheck(c echo.Context) error {
	const endpoint = "recheck"
	defer svcmetrics.Observe(endpoint, time.Now())

	req := &models.RecheckRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		svcmetrics.Reject(endpoint, "bad_request")
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.uc.Recheck(c.Request().Context(), req)
	if err != nil {
		svcmetrics.Reject(endpoint, "internal")
		h.logger.Error("recheck usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("recheck failed").WithError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *PairsEchoHandler) ParseSeries(c echo.Context) error {
	const endpoint = "parse_series"
	defer svcmetrics.Observe(endpoint, time.Now())

	req := &models.ParseSeriesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		svcmetrics.Reject(endpoint, "bad_request")
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, h.uc.ParseSeries(req))
}

func (h *PairsEchoHandler) ZScore(c echo.Context) error {
	const endpoint = "zscore"
	defer svcmetrics.Observe(endpoint, time.Now())

	req := &models.ZScoreRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		svcmetrics.Reject(endpoint, "bad_request")
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.DataResponse(c, http.StatusOK, map[string]float64{"zScore": h.uc.ZScore(req)})
}
