// Package domain contains shared domain types used across entity sub-packages.
// The registration flow lives in domain/registration; this root package holds
// the sentinel errors and error types every layer maps against.
package domain
