package cmdutil

import "errors"

// ErrInvalidArgs is returned on invalid command invocations.
var ErrInvalidArgs = errors.New("arguments invalid")
