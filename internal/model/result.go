package model

// Result is the job-level outcome handed back to the queue.
type Result int

const (
	ResultSuccess Result = iota
	ResultRetryable
	ResultPermanent
)

func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "SUCCESS"
	case ResultRetryable:
		return "RETRYABLE_ERROR"
	case ResultPermanent:
		return "PERMANENT_ERROR"
	default:
		return "UNKNOWN"
	}
}
