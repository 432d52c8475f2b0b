package repositories

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicate signals a unique-constraint violation (duplicate vote,
// second memo for a deal, taken email). Services translate it into their
// own conflict errors.
var ErrDuplicate = errors.New("duplicate row")

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
