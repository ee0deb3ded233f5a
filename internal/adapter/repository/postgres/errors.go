package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres error codes the repositories translate into domain errors.
const (
	codeUniqueViolation    = "23505"
	codeExclusionViolation = "23P01"
)

func isUniqueViolation(err error) bool {
	return pqCode(err) == codeUniqueViolation
}

func isExclusionViolation(err error) bool {
	return pqCode(err) == codeExclusionViolation
}

func pqCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}

	return ""
}
