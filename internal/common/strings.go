package common

const (
	// UnknownStr is the String() of out-of-range enum values.
	UnknownStr = "unknown"
	// DefaultSampleName names samples read from stdin or given inline.
	DefaultSampleName = "sample.go"
)
