// Package services provides stateless domain services for the marketplace.
//
// The package contains the money policy: pure settlement computation that
// derives the platform commission, the estimated provider fee, and the seller's
// net payout from an order total and payment channel. The fee schedule is an
// interface so regional deployments can replace the default tiered mobile money
// approximation without touching the policy.
//
// Services here hold no state and perform no I/O; orchestration that touches
// repositories or external capabilities lives in the application layer.
package services
