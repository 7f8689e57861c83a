package logs

// Span identifies one unit of work, such as a single compilation, across log records.
type Span string

type spanKey struct{}

var SpanKey spanKey
