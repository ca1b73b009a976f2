package core

// History controls how many samples a channel retains.
type History int8

const (
	// KeepLast retains at most Depth samples, dropping the oldest.
	KeepLast History = iota
	// KeepAll retains every sample until taken.
	KeepAll
)

// Reliability controls delivery effort.
type Reliability int8

const (
	// Reliable delivery retries until the sample is received.
	Reliable Reliability = iota
	// BestEffort delivery may drop samples under pressure.
	BestEffort
)

// Durability controls whether late subscribers see earlier samples.
type Durability int8

const (
	// Volatile delivers only samples published after subscription.
	Volatile Durability = iota
	// TransientLocal replays retained samples to late subscribers.
	TransientLocal
)

// QoSProfile configures one channel's quality-of-service behavior. The
// tracking core treats profiles as opaque configuration passed through to the
// transport collaborator.
type QoSProfile struct {
	History     History
	Depth       int
	Reliability Reliability
	Durability  Durability
}

// ServicesDefaultQoS is the default profile for the three request/response
// channels: bounded reliable delivery.
func ServicesDefaultQoS() QoSProfile {
	return QoSProfile{History: KeepLast, Depth: 10, Reliability: Reliable, Durability: Volatile}
}

// TopicsDefaultQoS is the default profile for the feedback broadcast channel.
func TopicsDefaultQoS() QoSProfile {
	return QoSProfile{History: KeepLast, Depth: 10, Reliability: Reliable, Durability: Volatile}
}

// StatusDefaultQoS is the default profile for the status broadcast channel:
// late subscribers receive the most recent status snapshot.
func StatusDefaultQoS() QoSProfile {
	return QoSProfile{History: KeepLast, Depth: 1, Reliability: Reliable, Durability: TransientLocal}
}
