package depthchart

import "github.com/cockroachdb/errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDuplicateState  = errors.New("duplicate state")
)
