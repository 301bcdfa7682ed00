package controller

import "log"

// Notifier receives the user-facing outcome of controller operations. Every
// network failure ends here as a notification; none propagates further.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier surfaces notifications through the process logger.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) { log.Printf("notify: %s", msg) }
func (LogNotifier) Error(msg string)   { log.Printf("notify: ERROR %s", msg) }

// CaptureNotifier records notifications for inspection; tests and the HTTP
// layer use it to hand toasts back to the caller of one operation.
type CaptureNotifier struct {
	Successes []string
	Errors    []string
}

func (n *CaptureNotifier) Success(msg string) { n.Successes = append(n.Successes, msg) }
func (n *CaptureNotifier) Error(msg string)   { n.Errors = append(n.Errors, msg) }
