package dialogue

import "errors"

// ErrNodeNotFound is returned when a question id has no node in the graph.
var ErrNodeNotFound = errors.New("dialogue: node not found")
