package serializer

import "fmt"

// SerializeError reports that a value could not be encoded in the selected
// wire format. Encoding is deterministic, so the error is terminal for that
// value.
type SerializeError struct {
	Format Serializer
	Err    error
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("unable to serialize to %s: %v", e.Format, e.Err)
}

// Unwrap exposes the underlying codec failure.
func (e *SerializeError) Unwrap() error { return e.Err }

// DeserializeError reports that bytes did not conform to the selected wire
// format or the target shape. Decoding is deterministic, so the error is
// terminal for those bytes.
type DeserializeError struct {
	Format Serializer
	Err    error
}

func (e *DeserializeError) Error() string {
	return fmt.Sprintf("unable to deserialize from %s: %v", e.Format, e.Err)
}

// Unwrap exposes the underlying codec failure.
func (e *DeserializeError) Unwrap() error { return e.Err }
