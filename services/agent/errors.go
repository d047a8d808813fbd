package agent

import "fmt"

type AgentError struct {
	Code    string
	Message string
}

func (e *AgentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrMissingInput is returned when a required request field is absent.
	// No session state is mutated.
	ErrMissingInput = &AgentError{Code: "missingInput", Message: "required input is missing"}
	// ErrUnknownSession is returned by operations that need pre-existing
	// session state.
	ErrUnknownSession = &AgentError{Code: "unknownSession", Message: "session not found"}
)
