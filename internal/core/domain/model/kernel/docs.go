// Package kernel provides the shared value objects of the order domain:
// geographic coordinates, addresses, contacts, entrance information and the
// measurement types used by order items.
//
// All types are immutable and self-validating. They can only be created
// through their constructor functions; the zero value of a guarded type fails
// validation. Construction errors use the standardized types from
// internal/pkg/errs.
package kernel
