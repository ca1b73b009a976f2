package core

// ChannelKind identifies one of the five channels an action server owns:
// three request/response pairs and two broadcast channels.
type ChannelKind int8

const (
	// SubmitGoalChannel carries goal submission requests and responses.
	SubmitGoalChannel ChannelKind = iota
	// CancelChannel carries cancellation requests and responses.
	CancelChannel
	// FetchResultChannel carries result fetch requests and responses.
	FetchResultChannel
	// FeedbackChannel broadcasts opaque per-goal feedback.
	FeedbackChannel
	// StatusChannel broadcasts status snapshots for all tracked goals.
	StatusChannel
)

// String returns the channel's wire-level suffix name.
func (k ChannelKind) String() string {
	switch k {
	case SubmitGoalChannel:
		return "submit_goal"
	case CancelChannel:
		return "cancel"
	case FetchResultChannel:
		return "fetch_result"
	case FeedbackChannel:
		return "feedback"
	case StatusChannel:
		return "status"
	default:
		return "invalid"
	}
}

// RequestChannel is the server end of one request/response pair. Payloads are
// opaque to the tracking core; only the cancel pair's shapes are interpreted,
// and that happens above this interface.
type RequestChannel interface {
	// Take removes and returns the oldest pending request. When no request
	// is pending it fails with a transport-specific condition the server
	// translates to ErrTakeFailed.
	Take() (any, error)
	// Respond sends a response toward the requester.
	Respond(resp any) error
	// Valid reports whether the channel is usable.
	Valid() bool
	// Close releases the channel's resources.
	Close() error
}

// BroadcastChannel is the publishing end of a one-to-many channel.
type BroadcastChannel interface {
	// Publish sends a sample to every subscriber.
	Publish(msg any) error
	// Valid reports whether the channel is usable.
	Valid() bool
	// Close releases the channel's resources.
	Close() error
}

// Transport constructs the five channels for a named action. Implementations
// own delivery semantics; the tracking core only opens, uses and closes the
// channels it is given.
type Transport interface {
	OpenRequestChannel(action string, kind ChannelKind, qos QoSProfile) (RequestChannel, error)
	OpenBroadcastChannel(action string, kind ChannelKind, qos QoSProfile) (BroadcastChannel, error)
}
