// Package agent provides domain entities and business logic for delivery
// agents and their cash custody ledger. Agents physically move marketplace
// orders and, for cash-on-delivery, hold buyer money between the doorstep and
// the bank.
//
// The package includes:
//   - DeliveryAgent: The aggregate root owning the custody ledger
//   - ActiveDelivery: One delivery entry with its own stage sub-lifecycle
//   - Deposit: An append-only cash hand-in record with back-office verification
//   - CeilingExceededError: The hard stop when a collection would cross the cash limit
//
// Key business rules:
//   - The held balance never exceeds the agent's cash limit; breaching
//     collections are rejected whole, never capped
//   - Recording a deposit credits the balance optimistically, before
//     verification; a rejection compensates the credit without editing history
//   - Deposits finalize exactly once (verified or rejected)
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package agent
