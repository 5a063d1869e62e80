// Package order provides domain entities and business logic for marketplace
// order fulfillment and value settlement. It implements the Order aggregate
// root with lifecycle management, payment tracking and physical handoff
// verification.
//
// The package includes:
//   - Order: The aggregate root covering placement, capture, handoff, delivery and settlement
//   - Status: A state machine enforcing valid fulfillment transitions
//   - PaymentStatus / CommissionStatus: State machines for the money side of an order
//   - LineItem: The purchased positions an order's total is derived from
//   - HandoffToken: The deterministic proof exchanged at physical pickup
//   - Event: Append-only records of state changes, persisted with the order
//
// Key business rules:
//   - Orders follow Pending -> Confirmed -> InTransit -> Delivered -> Settled,
//     with Cancelled and Refunded as side branches
//   - A payout is released at most once; the payment state machine guards it
//   - Handoff tokens are verified against live order state, never cached
//   - Every transition appends a domain event for the audit trail
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
