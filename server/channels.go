package server

import (
	"fmt"

	"github.com/goalmesh/goalmesh/core"
)

// The take/send/publish operations below carry no independent logic: they
// validate, delegate to the transport collaborator and translate error
// conditions (a channel with no pending request becomes ErrTakeFailed).

// TakeGoalRequest takes the oldest pending submit-goal request.
func (s *Server) TakeGoalRequest() (any, error) {
	return s.takeRequest(core.SubmitGoalChannel)
}

// SendGoalResponse sends a submit-goal response.
func (s *Server) SendGoalResponse(resp any) error {
	return s.sendResponse(core.SubmitGoalChannel, resp)
}

// TakeCancelRequest takes the oldest pending cancel request.
func (s *Server) TakeCancelRequest() (any, error) {
	return s.takeRequest(core.CancelChannel)
}

// SendCancelResponse sends a cancel response.
func (s *Server) SendCancelResponse(resp any) error {
	return s.sendResponse(core.CancelChannel, resp)
}

// TakeResultRequest takes the oldest pending fetch-result request.
func (s *Server) TakeResultRequest() (any, error) {
	return s.takeRequest(core.FetchResultChannel)
}

// SendResultResponse sends a fetch-result response.
func (s *Server) SendResultResponse(resp any) error {
	return s.sendResponse(core.FetchResultChannel, resp)
}

// PublishFeedback broadcasts an opaque per-goal feedback payload.
func (s *Server) PublishFeedback(msg any) error {
	return s.publish(core.FeedbackChannel, msg)
}

// PublishStatus broadcasts a status payload, typically a StatusSnapshot
// result.
func (s *Server) PublishStatus(msg any) error {
	return s.publish(core.StatusChannel, msg)
}

// PublishStatusSnapshot builds the current status snapshot and broadcasts it
// on the status channel.
func (s *Server) PublishStatusSnapshot() error {
	entries, err := s.StatusSnapshot()
	if err != nil {
		return err
	}
	return s.publish(core.StatusChannel, entries)
}

func (s *Server) requestChannel(kind core.ChannelKind) core.RequestChannel {
	switch kind {
	case core.SubmitGoalChannel:
		return s.impl.goalService
	case core.CancelChannel:
		return s.impl.cancelService
	default:
		return s.impl.resultService
	}
}

func (s *Server) takeRequest(kind core.ChannelKind) (any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	msg, err := s.requestChannel(kind).Take()
	if err != nil {
		return nil, translateTake(kind.String(), err)
	}
	return msg, nil
}

func (s *Server) sendResponse(kind core.ChannelKind, resp any) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if resp == nil {
		return fmt.Errorf("send %s response: nil response: %w", kind, core.ErrInvalidArgument)
	}
	if err := s.requestChannel(kind).Respond(resp); err != nil {
		return fmt.Errorf("send %s response: %w", kind, err)
	}
	return nil
}

func (s *Server) publish(kind core.ChannelKind, msg any) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if msg == nil {
		return fmt.Errorf("publish %s: nil message: %w", kind, core.ErrInvalidArgument)
	}
	ch := s.impl.feedbackTopic
	if kind == core.StatusChannel {
		ch = s.impl.statusTopic
	}
	if err := ch.Publish(msg); err != nil {
		return fmt.Errorf("publish %s: %w", kind, err)
	}
	return nil
}
