package storage

// Codec encodes and decodes the keys and values of a Backend that stores
// raw bytes.
//
// Encoded keys must sort in the same order as the keys themselves, since
// backends list entries in byte order.
type Codec[K, V any] interface {
	EncodeKey(K) ([]byte, error)
	DecodeKey([]byte) (K, error)
	EncodeValue(V) ([]byte, error)
	DecodeValue([]byte) (V, error)
}
