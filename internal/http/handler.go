package http

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pressure-drop-service/internal/domain/dto"
	"github.com/guttosm/pressure-drop-service/internal/domain/model"
	"github.com/guttosm/pressure-drop-service/internal/i18n"
	"github.com/guttosm/pressure-drop-service/internal/metrics"
	"github.com/guttosm/pressure-drop-service/internal/middleware"
	"github.com/guttosm/pressure-drop-service/internal/report"
	"github.com/guttosm/pressure-drop-service/internal/service"
)

// Handler provides HTTP handlers for the calculation and report routes.
type Handler struct {
	calculator service.PressureDropCalculator
}

// NewHandler creates a new Handler instance.
func NewHandler(calculator service.PressureDropCalculator) *Handler {
	return &Handler{calculator: calculator}
}

// Calculate handles POST /api/calculate requests.
//
// @Summary      Calculate pipeline pressure drop
// @Description  Converts the design input to SI units and calculates velocity, Reynolds number, friction factor, fitting equivalent length and the total pressure drop rounded up to a whole kPa. Supports idempotency via Idempotency-Key header.
// @Tags         Calculation
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        Authorization header string false "Bearer token (required if JWT auth enabled)"
// @Param        request body dto.CalculateRequest true "Pipeline design input"
// @Success      200 {object} dto.SuccessResponse{data=dto.CalculateResponse} "Successful calculation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      422 {object} dto.ErrorResponse "Input produced a non-finite result"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/calculate [post]
func (h *Handler) Calculate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	pipeline, result, ok := h.calculate(c, builder, middleware.ActionCalculate)
	if !ok {
		return
	}

	builder.SuccessOK(dto.CalculateResponse{Pipeline: pipeline, Result: result})
}

// Report handles POST /api/report requests.
//
// @Summary      Calculate and tabulate a report
// @Description  Runs the calculation and returns the design input and rounded results as report rows.
// @Tags         Report
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if JWT auth enabled)"
// @Param        request body dto.CalculateRequest true "Pipeline design input"
// @Success      200 {object} dto.SuccessResponse{data=dto.ReportResponse} "Report rows"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      422 {object} dto.ErrorResponse "Input produced a non-finite result"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/report [post]
func (h *Handler) Report(c *gin.Context) {
	builder := NewResponseBuilder(c)

	pipeline, result, ok := h.calculate(c, builder, middleware.ActionReport)
	if !ok {
		return
	}

	builder.SuccessOK(dto.ReportResponse{
		Result: result,
		Rows:   report.ToRows(pipeline, result),
	})
}

// ExportReport handles POST /api/report/export requests.
//
// @Summary      Export a report file
// @Description  Runs the calculation and downloads the report rows as xlsx (default), csv, json or msgpack.
// @Tags         Report
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Produce      json
// @Produce      application/x-msgpack
// @Param        format query string false "Export format" Enums(xlsx, csv, json, msgpack)
// @Param        Authorization header string false "Bearer token (required if JWT auth enabled)"
// @Param        request body dto.CalculateRequest true "Pipeline design input"
// @Success      200 {file} file "Report file"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or unsupported format"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      422 {object} dto.ErrorResponse "Input produced a non-finite result"
// @Failure      500 {object} dto.ErrorResponse "Report could not be rendered"
// @Security     BearerAuth
// @Router       /api/report/export [post]
func (h *Handler) ExportReport(c *gin.Context) {
	builder := NewResponseBuilder(c)
	format := c.DefaultQuery("format", report.DefaultFormat)

	exporter, err := report.NewExporter(format)
	if err != nil {
		metrics.RecordReportExport("unsupported", "invalid_format")
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyUnsupportedFormat,
			map[string]string{"format": format, "supported": strings.Join(report.Formats(), ", ")}, err)
		return
	}

	pipeline, result, ok := h.calculate(c, builder, middleware.ActionExportReport)
	if !ok {
		metrics.RecordReportExport(exporter.Extension(), "invalid_input")
		return
	}

	var buf bytes.Buffer
	if err := exporter.Export(&buf, report.ToRows(pipeline, result)); err != nil {
		metrics.RecordReportExport(exporter.Extension(), "error")
		auditError(c, middleware.ActionExportReport, "Report export failed", err, map[string]interface{}{
			"format": exporter.Extension(),
		})
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyExportFailed, err)
		return
	}

	metrics.RecordReportExport(exporter.Extension(), "success")
	c.Header("Content-Disposition", `attachment; filename="`+report.FileName(exporter)+`"`)
	c.Data(http.StatusOK, exporter.ContentType(), buf.Bytes())
}

// calculate binds the request body, builds the SI pipeline and runs the
// calculator. On failure the error response is already written.
func (h *Handler) calculate(c *gin.Context, builder *ResponseBuilder, action string) (model.Pipeline, model.PipelineResult, bool) {
	req, err := BuildRequest[dto.CalculateRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return model.Pipeline{}, model.PipelineResult{}, false
	}

	pipeline, err := model.NewPipeline(req.ToInput())
	if err != nil {
		h.writeCalculationError(builder, err)
		return model.Pipeline{}, model.PipelineResult{}, false
	}

	result, err := h.calculator.Calculate(pipeline)
	if err != nil {
		auditError(c, action, "Pressure drop calculation failed", err, nil)
		h.writeCalculationError(builder, err)
		return model.Pipeline{}, model.PipelineResult{}, false
	}

	audit(c, action, "Pressure drop calculated", map[string]interface{}{
		"flow_regime":       string(result.FlowRegime),
		"pressure_drop_kpa": result.PressureDrop,
	})
	return pipeline, result, true
}

func (h *Handler) writeCalculationError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidPipeline, validationDetails(err), err)
	case errors.Is(err, service.ErrNumericDegenerate):
		builder.Error(http.StatusUnprocessableEntity, i18n.ErrKeyNumericDegenerate, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// loggingService returns the audit log sink installed by the router, or nil.
func loggingService(c *gin.Context) service.LoggingService {
	if v, exists := c.Get("logging_service"); exists {
		if ls, ok := v.(service.LoggingService); ok {
			return ls
		}
	}
	return nil
}

func audit(c *gin.Context, action, message string, fields map[string]interface{}) {
	if ls := loggingService(c); ls != nil {
		middleware.AuditLog(ls, c, action, message, fields)
	}
}

func auditError(c *gin.Context, action, message string, err error, fields map[string]interface{}) {
	if ls := loggingService(c); ls != nil {
		middleware.AuditLogError(ls, c, action, message, err, fields)
	}
}
