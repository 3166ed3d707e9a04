package respond

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/portfolio/backend/internal/api"
	appmiddleware "github.com/portfolio/backend/internal/middleware"
)

const (
	msgRouteNotFound    = "Route not found"
	msgMethodNotAllowed = "Method not allowed"
	msgInternalError    = "Internal server error"
)

var (
	installOnce sync.Once

	// exposeErrors controls whether raw error text is attached to 5xx
	// envelopes. Set once via Install from explicit configuration.
	exposeErrors bool
)

// Install routes all Huma-generated errors through the shared envelope
// and records whether error detail may be exposed to clients. The flag
// takes effect on every call; the Huma override happens once.
func Install(exposeErrorDetail bool) {
	exposeErrors = exposeErrorDetail
	installOnce.Do(func() {
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			return statusError(context.Background(), status, messageOrDefault(status, msg), nil, errs...)
		}

		huma.NewErrorWithContext = func(hctx huma.Context, status int, msg string, errs ...error) huma.StatusError {
			goCtx := context.Background()
			if hctx != nil {
				goCtx = hctx.Context()
			}
			return statusError(goCtx, status, messageOrDefault(status, msg), issuesFromErrors(errs), errs...)
		}
	})
}

// Body is a helper for huma handlers returning enveloped payloads.
type Body[T any] struct {
	Body api.Envelope[T] `json:"body"`
}

// Error returns a status error rendered through the shared envelope.
func Error(ctx context.Context, status int, msg string) huma.StatusError {
	return statusError(ctx, status, msg, nil)
}

// ValidationError returns a 400 listing every rejected field.
func ValidationError(ctx context.Context, msg string, fields []api.FieldError) huma.StatusError {
	return statusError(ctx, http.StatusBadRequest, msg, fields)
}

// ServerError returns a 500 whose envelope carries the underlying error
// text only when detail exposure is enabled.
func ServerError(ctx context.Context, msg string, err error) huma.StatusError {
	return statusError(ctx, http.StatusInternalServerError, msg, nil, err)
}

// Write serializes an envelope directly to the ResponseWriter.
func Write[T any](w http.ResponseWriter, status int, env api.Envelope[T]) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(env)
}

// WriteFailure renders a failure envelope, logging per status class.
func WriteFailure(ctx context.Context, w http.ResponseWriter, status int, msg string, errs ...error) error {
	se := statusError(ctx, status, msg, nil, errs...)
	env, ok := se.(*statusEnvelopeError)
	if !ok {
		return se
	}
	return Write(w, se.GetStatus(), env.Envelope)
}

// NotFoundHandler emits the contract's unmatched-route response.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := WriteFailure(r.Context(), w, http.StatusNotFound, msgRouteNotFound); err != nil {
			appmiddleware.LogError(r.Context(), "failed to render not found", err)
		}
	}
}

// MethodNotAllowedHandler emits a shared-envelope 405 response.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := WriteFailure(r.Context(), w, http.StatusMethodNotAllowed, msgMethodNotAllowed); err != nil {
			appmiddleware.LogError(r.Context(), "failed to render method not allowed", err)
		}
	}
}

// Recoverer converts panics into enveloped 500 responses.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					var err error
					switch v := rec.(type) {
					case error:
						err = v
					default:
						err = fmt.Errorf("%v", v)
					}
					err = fmt.Errorf("%w\n%s", err, debug.Stack())
					if writeErr := WriteFailure(r.Context(), w, http.StatusInternalServerError, msgInternalError, err); writeErr != nil {
						appmiddleware.LogError(r.Context(), "failed to render internal error", writeErr)
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// statusEnvelopeError carries a failure envelope through Huma's error path.
type statusEnvelopeError struct {
	api.Envelope[struct{}]
	status int
}

func (e *statusEnvelopeError) Error() string {
	if e.Envelope.Message != "" {
		return e.Envelope.Message
	}
	return http.StatusText(e.status)
}

func (e *statusEnvelopeError) GetStatus() int {
	return e.status
}

func statusError(ctx context.Context, status int, msg string, fields []api.FieldError, errs ...error) huma.StatusError {
	err := joinErrors(errs)

	logFields := []zap.Field{
		zap.Int("status", status),
		zap.String("message", msg),
	}
	if len(fields) > 0 {
		logFields = append(logFields, zap.Any("fields", fields))
	}
	logWithStatus(ctx, status, msg, err, logFields...)

	env := api.FailureFields[struct{}](msg, fields)
	if err != nil && exposeErrors {
		env.Error = err.Error()
	}
	return &statusEnvelopeError{Envelope: env, status: status}
}

// issuesFromErrors maps Huma's schema errors into the contract's
// field-error list so body parse failures share the same shape.
func issuesFromErrors(errs []error) []api.FieldError {
	if len(errs) == 0 {
		return nil
	}
	fields := make([]api.FieldError, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		fe := api.FieldError{Message: err.Error()}
		if detailer, ok := err.(huma.ErrorDetailer); ok {
			if detail := detailer.ErrorDetail(); detail != nil {
				fe.Message = detail.Message
				fe.Field = detail.Location
			}
		}
		fields = append(fields, fe)
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func joinErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}

func messageOrDefault(status int, msg string) string {
	if strings.TrimSpace(msg) != "" {
		return msg
	}
	if text := http.StatusText(status); strings.TrimSpace(text) != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", status)
}

func logWithStatus(ctx context.Context, status int, msg string, err error, fields ...zap.Field) {
	if ctx == nil {
		ctx = context.Background()
	}
	if msg == "" {
		msg = "request failed"
	}
	switch {
	case status >= 500:
		appmiddleware.LogError(ctx, msg, err, fields...)
	case status >= 400:
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		appmiddleware.LogWarn(ctx, msg, fields...)
	default:
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		appmiddleware.LogInfo(ctx, msg, fields...)
	}
}
