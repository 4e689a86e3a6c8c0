package wrap

import (
	"fmt"
	"strings"
)

// DocumentError reports a single document within a manifest stream that could
// not be parsed into an object. Index is the 1-indexed position of the
// document in the stream.
type DocumentError struct {
	Index int
	Err   error
}

func (e DocumentError) Error() string {
	return fmt.Sprintf("document %d: %v", e.Index, e.Err)
}

func (e DocumentError) Unwrap() error {
	return e.Err
}

// DocumentErrorList aggregates all broken documents of one manifest stream,
// so a caller sees every offending document index at once instead of fixing
// them one by one.
type DocumentErrorList []DocumentError

func (l DocumentErrorList) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return "invalid manifest stream: " + strings.Join(msgs, "; ")
}

// ConfigError reports missing or invalid wrap configuration. It is returned
// before any input is parsed.
type ConfigError struct {
	Field   string
	Details string
}

func (e ConfigError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("configuration %s: %s", e.Field, e.Details)
	}
	return fmt.Sprintf("configuration %s: must not be empty", e.Field)
}
