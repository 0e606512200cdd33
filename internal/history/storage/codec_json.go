package storage

import (
	"encoding/json"
	"fmt"
)

var _ Codec[string, any] = (*JSONCodec[string, any])(nil)

// JSONCodec encodes keys and values as JSON. For string keys that only use
// unescaped characters, like KSUIDs, the encoding preserves key order.
type JSONCodec[K, V any] struct{}

// EncodeKey encodes a key into JSON.
func (c *JSONCodec[K, V]) EncodeKey(key K) ([]byte, error) {
	b, err := json.Marshal(key)
	if err != nil {
		return nil, fmt.Errorf("failed to encode key: %w", err)
	}
	return b, nil
}

// DecodeKey decodes a JSON encoded key.
func (c *JSONCodec[K, V]) DecodeKey(data []byte) (K, error) {
	var key K
	if err := json.Unmarshal(data, &key); err != nil {
		return key, fmt.Errorf("failed to decode key: %w", err)
	}
	return key, nil
}

// EncodeValue encodes a value into JSON.
func (c *JSONCodec[K, V]) EncodeValue(value V) ([]byte, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode value: %w", err)
	}
	return b, nil
}

// DecodeValue decodes a JSON encoded value.
func (c *JSONCodec[K, V]) DecodeValue(data []byte) (V, error) {
	var value V
	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("failed to decode value: %w", err)
	}
	return value, nil
}
