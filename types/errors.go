package types

import "github.com/pkg/errors"

// Engine sentinels. Callers match with errors.Is; the executor's VM maps them
// to the user-facing message strings.
var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrKeyNotFound  = errors.New("key not found")
)
