package ir

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// SchemaVersion is incremented whenever the serialized crate format
// changes.
const SchemaVersion uint16 = 1

// ErrNonLiteralConstant reports an attempt to serialize a constant value
// that was not lowered to a literal. The non-literal constant kinds exist
// only to carry intermediate translation state; one reaching serialization
// is a bug in the lowering, not a user error.
var ErrNonLiteralConstant = errors.New("ir: non-literal constant value in serialized output")

var (
	_ msgpack.CustomEncoder = (*ConstantValue)(nil)
	_ msgpack.CustomDecoder = (*ConstantValue)(nil)
)

// EncodeMsgpack implements msgpack.CustomEncoder. Only the literal case is
// representable in the output; everything else must have been resolved to a
// global reference or inlined before serialization.
func (cv *ConstantValue) EncodeMsgpack(enc *msgpack.Encoder) error {
	if cv.Kind != ConstLiteral {
		return fmt.Errorf("%w: %s", ErrNonLiteralConstant, cv)
	}
	return enc.Encode(cv.Literal)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (cv *ConstantValue) DecodeMsgpack(dec *msgpack.Decoder) error {
	*cv = ConstantValue{Kind: ConstLiteral}
	return dec.Decode(&cv.Literal)
}

// crateEnvelope versions the on-disk format.
type crateEnvelope struct {
	Schema uint16
	Crate  *Crate
}

// WriteCrate serializes the crate to w.
func WriteCrate(w io.Writer, c *Crate) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(crateEnvelope{Schema: SchemaVersion, Crate: c}); err != nil {
		return fmt.Errorf("ir: encoding crate %q: %w", c.Name, err)
	}
	return nil
}

// ReadCrate deserializes a crate from r.
func ReadCrate(r io.Reader) (*Crate, error) {
	dec := msgpack.NewDecoder(r)
	var env crateEnvelope
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("ir: decoding crate: %w", err)
	}
	if env.Schema != SchemaVersion {
		return nil, fmt.Errorf("ir: crate schema %d, expected %d", env.Schema, SchemaVersion)
	}
	if env.Crate == nil {
		return nil, fmt.Errorf("ir: empty crate envelope")
	}
	return env.Crate, nil
}
