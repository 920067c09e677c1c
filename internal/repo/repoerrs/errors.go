package repoerrs

import "errors"

var (
	ErrNotFound = errors.New("not found")
)
