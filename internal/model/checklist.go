package model

// ProbeType selects the automated pre-check of a checklist step.
type ProbeType string

const (
	// ProbeHTTP issues a GET and compares the status code.
	ProbeHTTP ProbeType = "http"
	// ProbeWebSocket dials, sends a message and waits for an echo.
	ProbeWebSocket ProbeType = "websocket"
)

// Probe is an automated check run before a checklist question is asked.
type Probe struct {
	Type           ProbeType `yaml:"type"`
	URL            string    `yaml:"url"`
	ExpectStatus   int       `yaml:"expect_status,omitempty"`
	Send           string    `yaml:"send,omitempty"`
	ExpectContains string    `yaml:"expect_contains,omitempty"`
	TimeoutSeconds int       `yaml:"timeout_seconds,omitempty"`
}

// ChecklistStep is a single instruction the operator carries out and judges.
type ChecklistStep struct {
	Name        string `yaml:"name"`
	Instruction string `yaml:"instruction"`
	Question    string `yaml:"question"`
	Required    bool   `yaml:"required,omitempty"`
	Probe       *Probe `yaml:"probe,omitempty"`
}

// Checklist is a manual procedure walked step by step.
type Checklist struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Steps       []ChecklistStep `yaml:"steps"`
}
