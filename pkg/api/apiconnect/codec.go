package apiconnect

import (
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

// jsonCodec marshals plain Go structs. It replaces Connect's default "json"
// codecs, which only handle protobuf messages.
type jsonCodec struct {
	name string
}

var _ connect.Codec = jsonCodec{}

func (c jsonCodec) Name() string { return c.name }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}

// WithJSON registers the JSON codec on a client.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{name: "json"})
}

func handlerCodecs() []connect.HandlerOption {
	return []connect.HandlerOption{
		connect.WithCodec(jsonCodec{name: "json"}),
		connect.WithCodec(jsonCodec{name: "json; charset=utf-8"}),
	}
}
