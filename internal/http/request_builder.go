package http

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wsawebmaster/delivery/internal/domain/dto"
	"github.com/wsawebmaster/delivery/internal/i18n"
	"github.com/wsawebmaster/delivery/internal/middleware"
)

var successResponsePool = sync.Pool{
	New: func() interface{} {
		return &dto.SuccessResponse{}
	},
}

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	resp.Data = nil
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	successResponsePool.Put(resp)
}

// BuildRequest binds the JSON body of c into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Validator is implemented by requests that check themselves after binding.
type Validator interface {
	Validate() error
}

// BuildRequestAndValidate binds the body and runs Validate when T implements Validator.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// UnmarshalFromReader decodes JSON from reader into a new T.
func UnmarshalFromReader[T any](reader io.Reader) (*T, error) {
	var v T
	if err := json.NewDecoder(reader).Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// ResponseBuilder writes the API envelopes.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a response builder for c.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends data wrapped in a SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// gin serializes synchronously, so the envelope can go back to the pool right away
	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 response.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// Error aborts with the translated message of messageKey. err, when set, is attached to
// the context for the error handler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.abort(statusCode, dto.NewError(dto.ErrCodeFromStatus(statusCode), i18n.Translate(b.c, messageKey)), err)
}

// ErrorWithMessage aborts with a literal message.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	b.abort(statusCode, dto.NewError(dto.ErrCodeFromStatus(statusCode), message), err)
}

// ErrorWithData aborts with an explicit code and a payload, used when a rejected
// interaction still refreshed the visitor's view.
func (b *ResponseBuilder) ErrorWithData(statusCode int, code, message string, data interface{}, err error) {
	b.abort(statusCode, dto.NewError(code, message).WithData(data), err)
}

// ValidationFailed aborts with 400 and the field that failed validation.
func (b *ResponseBuilder) ValidationFailed(verr *dto.ValidationError) {
	resp := dto.NewError(dto.ErrCodeInvalidRequest, i18n.Translate(b.c, i18n.ErrKeyInvalidRequest))
	resp.Details = map[string]string{verr.Field: verr.Message}
	b.abort(http.StatusBadRequest, resp, nil)
}

func (b *ResponseBuilder) abort(statusCode int, resp dto.ErrorResponse, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}
	b.c.AbortWithStatusJSON(statusCode, resp.WithRequestID(middleware.GetRequestID(b.c)))
}
