package models

import "strconv"

type OutcomeKind string

const (
	OutcomeSuccess   OutcomeKind = "success"
	OutcomeHTTPError OutcomeKind = "http_error"
	OutcomeFailure   OutcomeKind = "failure"
)

// Outcome is the result of a single repository creation attempt.
// StatusCode and Body are set for OutcomeSuccess and OutcomeHTTPError,
// Message only for OutcomeFailure.
type Outcome struct {
	Kind       OutcomeKind
	StatusCode int
	Body       string
	Message    string
}

func SuccessOutcome(status int, body string) Outcome {
	return Outcome{Kind: OutcomeSuccess, StatusCode: status, Body: body}
}

func HTTPErrorOutcome(status int, body string) Outcome {
	return Outcome{Kind: OutcomeHTTPError, StatusCode: status, Body: body}
}

func FailureOutcome(message string) Outcome {
	return Outcome{Kind: OutcomeFailure, Message: message}
}

func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}

// Lines returns what gets printed for the outcome: status and body when a
// response was received, otherwise the failure message alone.
func (o Outcome) Lines() []string {
	if o.Kind == OutcomeFailure {
		return []string{o.Message}
	}
	return []string{strconv.Itoa(o.StatusCode), o.Body}
}
