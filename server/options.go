package server

import (
	"time"

	"github.com/goalmesh/goalmesh/core"
	"github.com/goalmesh/goalmesh/lifecycle"
	"github.com/goalmesh/goalmesh/logging"
)

// DefaultResultRetention is how long a terminal goal's result stays
// fetchable before the expiry sweep may evict it.
const DefaultResultRetention = 15 * time.Minute

// Options configures an action server: one quality-of-service profile per
// channel, the result retention window, the tracked-goal bound, and the
// injected lifecycle factory and logger.
type Options struct {
	// GoalServiceQoS applies to the submit-goal request/response channel.
	GoalServiceQoS core.QoSProfile
	// CancelServiceQoS applies to the cancel request/response channel.
	CancelServiceQoS core.QoSProfile
	// ResultServiceQoS applies to the fetch-result request/response channel.
	ResultServiceQoS core.QoSProfile
	// FeedbackTopicQoS applies to the feedback broadcast channel.
	FeedbackTopicQoS core.QoSProfile
	// StatusTopicQoS applies to the status broadcast channel.
	StatusTopicQoS core.QoSProfile

	// ResultRetention is the result retention window. Zero or negative
	// selects DefaultResultRetention.
	ResultRetention time.Duration

	// MaxTrackedGoals bounds the registry; zero means unbounded.
	MaxTrackedGoals int

	// LifecycleFactory constructs the state machine for each accepted
	// goal. Defaults to lifecycle.New.
	LifecycleFactory core.LifecycleFactory

	// Logger receives structured server logs. Defaults to NoOp.
	Logger logging.Logger
}

// DefaultOptions returns the baseline configuration: service-default
// profiles for the three request/response channels, topic defaults for
// feedback, the transient-local status profile, and a 15 minute retention
// window.
func DefaultOptions() Options {
	return Options{
		GoalServiceQoS:   core.ServicesDefaultQoS(),
		CancelServiceQoS: core.ServicesDefaultQoS(),
		ResultServiceQoS: core.ServicesDefaultQoS(),
		FeedbackTopicQoS: core.TopicsDefaultQoS(),
		StatusTopicQoS:   core.StatusDefaultQoS(),
		ResultRetention:  DefaultResultRetention,
		LifecycleFactory: lifecycle.New,
		Logger:           logging.NoOpLogger{},
	}
}

// withDefaults fills unset fields. A keep-last profile with zero depth is
// treated as unset and replaced by the channel's default profile.
func (o Options) withDefaults() Options {
	o.GoalServiceQoS = orDefault(o.GoalServiceQoS, core.ServicesDefaultQoS())
	o.CancelServiceQoS = orDefault(o.CancelServiceQoS, core.ServicesDefaultQoS())
	o.ResultServiceQoS = orDefault(o.ResultServiceQoS, core.ServicesDefaultQoS())
	o.FeedbackTopicQoS = orDefault(o.FeedbackTopicQoS, core.TopicsDefaultQoS())
	o.StatusTopicQoS = orDefault(o.StatusTopicQoS, core.StatusDefaultQoS())
	if o.ResultRetention <= 0 {
		o.ResultRetention = DefaultResultRetention
	}
	if o.LifecycleFactory == nil {
		o.LifecycleFactory = lifecycle.New
	}
	if o.Logger == nil {
		o.Logger = logging.NoOpLogger{}
	}
	return o
}

func orDefault(q, def core.QoSProfile) core.QoSProfile {
	if q.History == core.KeepLast && q.Depth == 0 {
		return def
	}
	return q
}
