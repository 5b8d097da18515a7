package base32768

import (
	"bytes"
	"math/rand"
	"testing"
)

type sliceSink struct {
	units []uint16
}

func (s *sliceSink) WriteCodeUnits(u []uint16) {
	s.units = append(s.units, u...)
}

func encodeOneShot(data []byte) []uint16 {
	sink := &sliceSink{}
	enc := NewEncoder(sink)
	enc.Write(data)
	enc.Finish()
	return sink.units
}

func TestEncoderWriteInChunks(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox "), 5)
	whole := encodeOneShot(data)

	sink := &sliceSink{}
	enc := NewEncoder(sink)
	r := rand.New(rand.NewSource(3))
	for i := 0; i < len(data); {
		k := 1 + r.Intn(7)
		if i+k > len(data) {
			k = len(data) - i
		}
		enc.Write(data[i : i+k])
		i += k
	}
	enc.Finish()

	if !equalU16(sink.units, whole) {
		t.Fatalf("chunked write diverged from one-shot write")
	}
}

func TestEncoderFinishIsIdempotentNoOp(t *testing.T) {
	sink := &sliceSink{}
	enc := NewEncoder(sink)
	enc.Write([]byte("ab"))
	enc.Finish()
	n := len(sink.units)
	enc.Finish()
	if len(sink.units) != n {
		t.Fatalf("second Finish emitted more units")
	}
}

func equalU16(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
