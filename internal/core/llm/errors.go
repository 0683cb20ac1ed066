package llm

import "errors"

// ErrEmptyResponse is returned when a provider answers with no text
var ErrEmptyResponse = errors.New("llm returned an empty response")
