package paginate

import "fmt"

// ConfigError reports raster or page dimensions that cannot be paginated.
// It indicates a programming or configuration mistake and is never
// retried.
type ConfigError struct {
	Message    string
	Width      int
	Height     int
	PageWidth  float64
	PageHeight float64
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("pagination config error: %s (image %dx%d, page %.2fx%.2f)",
		e.Message, e.Width, e.Height, e.PageWidth, e.PageHeight)
}

// AssembleError represents a failure while writing pages to a document.
type AssembleError struct {
	Message string
	Cause   error
}

func (e *AssembleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("assemble error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("assemble error: %s", e.Message)
}

func (e *AssembleError) Unwrap() error {
	return e.Cause
}
