package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/portfolio/backend/internal/platform/timeutil"
)

// Response is the liveness payload. It carries its own timestamp field
// rather than the generic envelope's data slot.
type Response struct {
	Success   bool          `json:"success"   doc:"Always true when the server responds"`
	Message   string        `json:"message"   doc:"Liveness message"`
	Timestamp timeutil.Time `json:"timestamp" doc:"Server time"`
}

// Output wraps the health payload for Huma.
type Output struct {
	Body Response
}

// Register wires the liveness endpoint.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health-check",
		Method:      "GET",
		Path:        "/api/health",
		Summary:     "Liveness check",
		Tags:        []string{"Health"},
	}, func(_ context.Context, _ *struct{}) (*Output, error) {
		return &Output{Body: Response{
			Success:   true,
			Message:   "Server is running",
			Timestamp: timeutil.Now(),
		}}, nil
	})
}
