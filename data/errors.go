package data

import "fmt"

// RequestError covers transport failures and non-2xx responses from the risk
// API, normalized into one shape. StatusCode is zero for transport failures.
type RequestError struct {
	Message    string
	StatusCode int
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request failed (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed: %s", e.Message)
}

// PreconditionError is returned when an action is attempted before the state
// it depends on exists, such as comparing before any evaluation.
type PreconditionError struct {
	Action string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("nothing to act on yet: %s requires a prior evaluation", e.Action)
}

// EmptyDatasetError is returned when a required dataset came back with zero entries.
type EmptyDatasetError struct {
	Dataset string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("dataset %q returned no regions", e.Dataset)
}

// DivisionGuardError is returned by ratio computations with a zero or absent denominator.
type DivisionGuardError struct {
	Denominator float64
}

func (e *DivisionGuardError) Error() string {
	return fmt.Sprintf("ratio undefined for denominator %g", e.Denominator)
}
