package s2

import "errors"

// ErrNotFound is returned when the API reports no such paper.
var ErrNotFound = errors.New("paper not found in semantic scholar")
