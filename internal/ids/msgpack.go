package ids

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Dense vectors serialize as plain arrays in identifier order; the
// identifier of each element is its position.

var (
	_ msgpack.CustomEncoder = (*Vector[int32, int])(nil)
	_ msgpack.CustomDecoder = (*Vector[int32, int])(nil)
)

// EncodeMsgpack implements msgpack.CustomEncoder.
func (vec *Vector[I, T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(len(vec.elems)); err != nil {
		return err
	}
	for i := range vec.elems {
		if err := enc.Encode(vec.elems[i]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (vec *Vector[I, T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("ids: negative vector length %d", n)
	}
	vec.elems = make([]T, 0, n)
	for range n {
		var v T
		if err := dec.Decode(&v); err != nil {
			return err
		}
		vec.elems = append(vec.elems, v)
	}
	return nil
}

// Memoizing maps serialize as an array of (key, id) pairs sorted by key, so
// output is deterministic regardless of registration order.

// EncodeMsgpack implements msgpack.CustomEncoder.
func (m *Map[K, I]) EncodeMsgpack(enc *msgpack.Encoder) error {
	pairs := m.Pairs()
	if err := enc.EncodeArrayLen(len(pairs)); err != nil {
		return err
	}
	for _, p := range pairs {
		if err := enc.EncodeArrayLen(2); err != nil {
			return err
		}
		if err := enc.Encode(p.Key); err != nil {
			return err
		}
		if err := enc.Encode(p.ID); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (m *Map[K, I]) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	m.m = make(map[K]I, max(n, 0))
	for range n {
		if _, err := dec.DecodeArrayLen(); err != nil {
			return err
		}
		var k K
		if err := dec.Decode(&k); err != nil {
			return err
		}
		var id I
		if err := dec.Decode(&id); err != nil {
			return err
		}
		m.m[k] = id
	}
	// Identifiers are dense, so the generator resumes past the largest one.
	m.gen.next = FromLen[I](len(m.m))
	return nil
}
