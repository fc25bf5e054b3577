// Package domain defines the core business entities for Lotus.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types and the pure computations over them:
//
//   - Contact: An address-book record keyed by its normalised name
//   - Note: A free-form note with an ordered tag set
//   - Greeting: An upcoming birthday with its congratulation date
//   - Snapshot: The opaque state handed to persistence adapters
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, golang.org/x/text
//   - Cannot Import: Any internal/ package, any other external dependency
package domain
