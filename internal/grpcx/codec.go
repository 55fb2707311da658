// Package grpcx holds the JSON wire codec shared by the catalog services.
//
// The message bindings under internal/proto are hand-maintained plain
// structs, so the services exchange JSON frames instead of protobuf binary.
// Servers force this codec; clients select it per call via CallOption.
package grpcx

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// Name is the content-subtype the codec is registered under
// ("application/grpc+json" on the wire).
const Name = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec implements grpc encoding.Codec over encoding/json.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json codec: %w", err)
	}
	return nil
}

func (Codec) Name() string {
	return Name
}

// CallOption selects the JSON codec on an outbound call. Intended for use
// with grpc.WithDefaultCallOptions when dialing.
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(Name)
}

// ServerOption makes a server decode and encode every call with the JSON
// codec regardless of the content-subtype the client declared.
func ServerOption() grpc.ServerOption {
	return grpc.ForceServerCodec(Codec{})
}
