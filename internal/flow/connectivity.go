package flow

// ConnectivityState tracks whether the backend is reachable. It drives the
// retry affordance and gates submission.
type ConnectivityState string

const (
	ConnectivityChecking     ConnectivityState = "checking"
	ConnectivityConnected    ConnectivityState = "connected"
	ConnectivityDisconnected ConnectivityState = "disconnected"
)
