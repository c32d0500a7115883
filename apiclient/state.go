package apiclient

// State is the outcome of one logical request.
type State int

const (
	StatePending State = iota
	StateSucceeded
	StateFailedNoRetry
	StateRefreshing
	StateRetriedSucceeded
	StateRetriedFailed
	StateSuperseded
)

var stateNames = map[State]string{
	StatePending:          "pending",
	StateSucceeded:        "succeeded",
	StateFailedNoRetry:    "failed_no_retry",
	StateRefreshing:       "refreshing",
	StateRetriedSucceeded: "retried_succeeded",
	StateRetriedFailed:    "retried_failed",
	StateSuperseded:       "superseded",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s != StatePending && s != StateRefreshing
}
