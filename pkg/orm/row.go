package orm

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// TagName is the struct tag read by Encode and Decode.
const TagName = "db"

// Row is a generic record keyed by attribute name (or by column name when
// it comes straight from the gateway).
type Row map[string]any

// Encode converts a tagged struct (or pointer to one) into a Row. Fields
// tagged `db:"name,omitempty"` are left out of the row when they hold their
// zero value, which Model treats as "unset".
func Encode(rec any) (Row, error) {
	out := map[string]any{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: TagName,
		Result:  &out,
	})
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	if err := dec.Decode(rec); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return Row(out), nil
}

// Decode fills dst, a pointer to a tagged struct, from row. Driver values
// are coerced loosely so []byte columns decode into strings and numbers.
func Decode(row Row, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          TagName,
		WeaklyTypedInput: true,
		Result:           dst,
		DecodeHook:       bytesToStringHook,
	})
	if err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	if err := dec.Decode(map[string]any(row)); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	return nil
}

// bytesToStringHook turns driver []byte values into strings unless the
// target itself is a byte slice.
func bytesToStringHook(from, to reflect.Type, data any) (any, error) {
	b, ok := data.([]byte)
	if !ok {
		return data, nil
	}
	if to.Kind() == reflect.Slice && to.Elem().Kind() == reflect.Uint8 {
		return data, nil
	}
	return string(b), nil
}
