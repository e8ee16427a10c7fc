package serializer

import (
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/protobuf/proto"
)

// Serializer selects a wire codec. Values of this type come from the node
// configuration; the names are part of the serialized configuration
// contract.
type Serializer string

const (
	// JSON encodes messages as JSON documents.
	JSON Serializer = "JSON"

	// ProtoBuf encodes messages in protobuf binary form. Values must
	// implement proto.Message.
	ProtoBuf Serializer = "ProtoBuf"
)

var errUnknownSerializer = errors.New("unknown serializer")

// Serialize encodes v in the selected wire format. On failure it returns a
// *SerializeError wrapping the codec's diagnostic; the failure is terminal
// for v, retrying cannot succeed.
func (s Serializer) Serialize(v any) ([]byte, error) {
	switch s {
	case JSON:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, &SerializeError{Format: s, Err: err}
		}
		return data, nil

	case ProtoBuf:
		msg, ok := v.(proto.Message)
		if !ok {
			return nil, &SerializeError{
				Format: s,
				Err:    fmt.Errorf("value of type %T does not implement proto.Message", v),
			}
		}
		data, err := proto.Marshal(msg)
		if err != nil {
			return nil, &SerializeError{Format: s, Err: err}
		}
		return data, nil

	default:
		return nil, &SerializeError{Format: s, Err: errUnknownSerializer}
	}
}

// Deserialize decodes data into v, which must be a pointer (and for the
// ProtoBuf codec a proto.Message). On failure it returns a
// *DeserializeError wrapping the codec's diagnostic; the same bytes will
// never decode on retry.
func (s Serializer) Deserialize(data []byte, v any) error {
	switch s {
	case JSON:
		if err := json.Unmarshal(data, v); err != nil {
			return &DeserializeError{Format: s, Err: err}
		}
		return nil

	case ProtoBuf:
		msg, ok := v.(proto.Message)
		if !ok {
			return &DeserializeError{
				Format: s,
				Err:    fmt.Errorf("target of type %T does not implement proto.Message", v),
			}
		}
		if err := proto.Unmarshal(data, msg); err != nil {
			return &DeserializeError{Format: s, Err: err}
		}
		return nil

	default:
		return &DeserializeError{Format: s, Err: errUnknownSerializer}
	}
}
