// Package kernel provides shared value objects used across the marketplace
// domain model.
//
// The package includes:
//   - UUID: validated wrapper over github.com/google/uuid for entity identity
//   - PaymentChannel: the enumeration of supported payment channels
//   - Address: a shipping destination with an optional geocoordinate
//
// All value objects are immutable, created through validating constructors, and
// fail validation as zero values. They carry no behavior beyond their own
// invariants; aggregates compose them.
package kernel
