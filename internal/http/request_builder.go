package http

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pressure-drop-service/internal/domain/dto"
	"github.com/guttosm/pressure-drop-service/internal/domain/model"
	"github.com/guttosm/pressure-drop-service/internal/i18n"
	"github.com/guttosm/pressure-drop-service/internal/middleware"
)

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	*resp = dto.SuccessResponse{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorResponsePool.Put(resp)
}

// ResponseBuilder writes the service's success and error envelopes.
// Envelopes come from a sync.Pool; gin serializes synchronously, so they are
// returned to the pool as soon as the response is written.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends a successful response with the given data.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// Error sends an error response with the given status code and translated
// message key. err, when set, is attached to the context for logging.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.ErrorWithDetails(statusCode, messageKey, nil, err)
}

// ErrorWithDetails is Error with per-field details.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, messageKey string, details map[string]string, err error) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.write(statusCode, message, details, err)
}

// ErrorWithMessage sends an error response with a custom message.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	b.write(statusCode, message, nil, err)
}

func (b *ResponseBuilder) write(statusCode int, message string, details map[string]string, err error) {
	resp := getErrorResponse()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = message
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}

// Validator interface for types that can validate themselves.
type Validator interface {
	Validate() error
}

// BuildRequest binds the JSON body into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// BuildRequestAndValidate builds a request and validates it if it implements Validator.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if validator, ok := any(req).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// validationDetails returns the rejected field of a domain or DTO
// validation error, or nil for any other error.
func validationDetails(err error) map[string]string {
	var modelErr *model.ValidationError
	if errors.As(err, &modelErr) {
		return map[string]string{modelErr.Field: modelErr.Message}
	}
	var dtoErr *dto.ValidationError
	if errors.As(err, &dtoErr) {
		return map[string]string{dtoErr.Field: dtoErr.Message}
	}
	return nil
}
