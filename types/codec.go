package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

var _ collcodec.ValueCodec[Params] = jsonValueCodec[Params]{}

// jsonValueCodec stores plain Go structs in collections using their JSON form.
type jsonValueCodec[T any] struct {
	name string
}

// NewJSONValueCodec returns a collections value codec for T named after valueType.
func NewJSONValueCodec[T any](valueType string) collcodec.ValueCodec[T] {
	return jsonValueCodec[T]{name: valueType}
}

func (c jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[T]) Decode(b []byte) (T, error) {
	var value T
	if err := json.Unmarshal(b, &value); err != nil {
		return value, fmt.Errorf("failed to decode %s: %w", c.name, err)
	}
	return value, nil
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValueCodec[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValueCodec[T]) Stringify(value T) string {
	bz, err := c.Encode(value)
	if err != nil {
		return fmt.Sprintf("%s(%v)", c.name, err)
	}
	return string(bz)
}

func (c jsonValueCodec[T]) ValueType() string {
	return "json/" + c.name
}

var (
	// ParamsValue is the collections codec for Params.
	ParamsValue = NewJSONValueCodec[Params]("yieldrouter.Params")
	// MigrationLockValue is the collections codec for MigrationLock.
	MigrationLockValue = NewJSONValueCodec[MigrationLock]("yieldrouter.MigrationLock")
)
