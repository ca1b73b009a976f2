// Package transport provides an in-process implementation of the transport
// collaborator interfaces: bounded request/response queues and fan-out
// broadcast channels honoring the quality-of-service profile they were opened
// with. It is the default transport wired by the root facade and the one used
// by tests and examples.
//
// Delivery semantics implemented: history (keep-last with drop-oldest versus
// keep-all), depth bounds, and transient-local durability (late subscribers
// receive retained samples). Wire encoding, delivery reliability across
// processes and multi-process coordination are out of scope.
package transport
