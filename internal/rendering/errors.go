package rendering

import "fmt"

// Template stages reported by TemplateError.
const (
	StageRead    = "read"
	StageParse   = "parse"
	StageExecute = "execute"
)

// TemplateError is returned when the embedded LaTeX source cannot be loaded or filled in.
// TemplateID is empty for failures shared by every layout (read and parse).
type TemplateError struct {
	TemplateID string
	Stage      string
	Cause      error
}

func (e *TemplateError) Error() string {
	if e.TemplateID == "" {
		return fmt.Sprintf("latex template %s failed: %v", e.Stage, e.Cause)
	}
	return fmt.Sprintf("latex template %q: %s failed: %v", e.TemplateID, e.Stage, e.Cause)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError is returned when a résumé request cannot be rendered at all.
type RenderError struct {
	TemplateID string
	Reason     string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("cannot render resume with template %q: %s", e.TemplateID, e.Reason)
}
