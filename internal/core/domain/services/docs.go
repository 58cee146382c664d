// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the order system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderNumberGenerator: produces unique business identifiers for new orders
//   - RefinementChain: ordered reverse-geocoding fallback across providers
//   - AddressRefiner: rebuilds order locations with provider-refined addresses
//   - OrderCreator: transactional order creation with outbox event capture
//   - OrderLocationChanger: transactional destination change with outbox event capture
//   - OrderTransitioner: transactional deliver/cancel transitions with outbox event capture
//   - OutboxRelay: publishes stored events to the message broker
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
