// Package domain contains the value types and errors shared by cablesplit.
//
// It has no dependencies on infrastructure concerns (files, flags, logging)
// and contains only the data model.
//
// # Entities
//
//   - [Cable]: a named length of cable; pieces produced by a split are Cables too
//
// # Errors
//
// Every input rejection wraps [ErrInvalidArgument], so callers can check a
// single sentinel with errors.Is and still match the specific cause.
package domain
