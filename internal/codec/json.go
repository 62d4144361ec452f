// Package codec provides the JSON gRPC codec used by the combat API.
//
// Importing the package registers the codec. Clients select it per call
// with grpc.CallContentSubtype(codec.Name); servers pick it from the
// request content type.
package codec

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Name is the content subtype, sent as "application/grpc+json".
const Name = "json"

func init() {
	encoding.RegisterCodec(JSON{})
}

// JSON marshals protobuf messages with protojson and anything else with
// encoding/json.
type JSON struct{}

// Marshal implements encoding.Codec.
func (JSON) Marshal(v any) ([]byte, error) {
	if msg, ok := v.(proto.Message); ok {
		return protojson.Marshal(msg)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: marshal %T: %w", v, err)
	}
	return data, nil
}

// Unmarshal implements encoding.Codec.
func (JSON) Unmarshal(data []byte, v any) error {
	if msg, ok := v.(proto.Message); ok {
		return protojson.UnmarshalOptions{DiscardUnknown: true}.Unmarshal(data, msg)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("codec: unmarshal %T: %w", v, err)
	}
	return nil
}

// Name implements encoding.Codec.
func (JSON) Name() string {
	return Name
}
