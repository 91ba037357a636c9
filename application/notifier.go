package application

// Severity tags a notification for the presentation layer.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier is the external notification capability the core delegates to.
// The dashboard invokes it with a message string and a severity tag and
// never learns how the message is rendered.
type Notifier interface {
	Notify(message string, severity Severity)
}

// NopNotifier discards notifications. Useful in tests and as a safe default.
type NopNotifier struct{}

func (NopNotifier) Notify(string, Severity) {}
