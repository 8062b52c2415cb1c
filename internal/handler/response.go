package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Dirk1989/Ideal/internal/apperr"
	"github.com/Dirk1989/Ideal/internal/domain"
	"github.com/Dirk1989/Ideal/internal/logger"
	"github.com/Dirk1989/Ideal/internal/middleware"
	"github.com/Dirk1989/Ideal/internal/service"
)

// DevelopmentKey is the context key that, when true, exposes internal error
// messages to clients.
const DevelopmentKey = "development"

// MaxRequestBody caps admin write bodies: ten images plus form fields.
const MaxRequestBody = 64 << 20

const msgInternal = "Internal server error"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool                `json:"success"`
	Error   string              `json:"error"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// Development marks requests so that internal errors are shown verbatim.
func Development(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(DevelopmentKey, enabled)
		c.Next()
	}
}

// respondError writes err as an ErrorResponse with the status of its kind.
// Internal errors are logged and their message is redacted outside
// development.
func respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.Internal("unexpected error", err)
	}

	msg := appErr.Error()
	if appErr.Kind == apperr.KindInternal {
		logger.ErrorContext(c.Request.Context(), "Request failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		if !c.GetBool(DevelopmentKey) {
			msg = msgInternal
		}
	}

	_ = c.Error(err)
	c.JSON(appErr.Kind.HTTPStatus(), ErrorResponse{
		Success: false,
		Error:   msg,
		Fields:  appErr.Fields,
	})
}

// parseID reads the :id path parameter. Ids that cannot name a record are
// reported as notFound.
func parseID(c *gin.Context, notFound string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, apperr.NotFound(notFound))
		return 0, false
	}
	return id, true
}

// readInput collects the submitted fields and files of an admin write.
// Multipart, urlencoded and JSON object bodies are accepted; only
// multipart bodies carry files.
func readInput(c *gin.Context) (service.Input, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxRequestBody)
	in := service.Input{Fields: domain.Fields{}}

	switch c.ContentType() {
	case gin.MIMEMultipartPOSTForm:
		form, err := c.MultipartForm()
		if err != nil {
			return in, apperr.Validation("Invalid form data", nil)
		}
		for name, values := range form.Value {
			if len(values) > 0 {
				in.Fields[name] = values[0]
			}
		}
		in.Files = form.File
	case gin.MIMEJSON:
		var raw map[string]any
		if err := c.ShouldBindJSON(&raw); err != nil {
			return in, apperr.Validation("Invalid JSON body", nil)
		}
		for name, v := range raw {
			in.Fields[name] = stringify(v)
		}
	default:
		if err := c.Request.ParseForm(); err != nil {
			return in, apperr.Validation("Invalid form data", nil)
		}
		for name, values := range c.Request.PostForm {
			if len(values) > 0 {
				in.Fields[name] = values[0]
			}
		}
	}
	return in, nil
}

// stringify renders a decoded JSON value the way a form would submit it.
// Arrays become comma-separated lists.
func stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}

// bindingError converts a gin binding failure into a validation error
// listing the offending fields.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Validation("Invalid request", map[string][]string{
			"request": {err.Error()},
		})
	}

	fields := make(map[string][]string)
	for _, fe := range verrs {
		name := lowerFirst(fe.Field())
		fields[name] = append(fields[name], fieldMessage(name, fe))
	}
	return apperr.Validation("", fields)
}

func fieldMessage(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "max":
		return name + " is too long"
	default:
		return "Invalid " + name
	}
}

func lowerFirst(s string) string {
	for i, r := range s {
		return string(unicode.ToLower(r)) + s[i+len(string(r)):]
	}
	return s
}

// SuccessResponse acknowledges a write that returns no record.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// NotFound answers requests for unknown routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Success: false, Error: "Not found"})
}
