// Package core provides the foundational domain types, interfaces and result
// codes used by goalmesh. It defines the core abstractions for:
//
//   - Goal identity and metadata (GoalID, GoalInfo, GoalHandle)
//   - The goal lifecycle capability interface (Lifecycle) decoupling the
//     tracking core from the state machine implementation
//   - Cancellation request/response shapes and status snapshots
//   - Transport collaborator interfaces (request/response channels and
//     broadcast channels) with quality-of-service profiles
//   - The injected time source (Clock)
//
// The package intentionally keeps implementation concerns (registry storage,
// selection algorithms, transports, the concrete state machine) out of scope,
// exposing small interfaces to enable custom backends and extensions.
package core
