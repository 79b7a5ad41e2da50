// Package pgerr classifies PostgreSQL errors returned through lib/pq.
package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// SQLSTATE codes the repositories react to
const (
	UniqueViolation     pq.ErrorCode = "23505"
	SerializationFailed pq.ErrorCode = "40001"
)

// Code returns the SQLSTATE of err, or "" if err is not a *pq.Error
func Code(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

// IsUniqueViolation reports whether err is a unique constraint violation.
// With constraint names given, only those constraints match.
func IsUniqueViolation(err error, constraints ...string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != UniqueViolation {
		return false
	}
	if len(constraints) == 0 {
		return true
	}
	for _, c := range constraints {
		if pqErr.Constraint == c {
			return true
		}
	}
	return false
}

// IsSerializationFailure reports whether a serializable transaction lost a race
func IsSerializationFailure(err error) bool {
	return Code(err) == SerializationFailed
}
