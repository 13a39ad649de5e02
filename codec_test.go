package sihsort

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestInt64CodecRoundTrip(t *testing.T) {
	c := Int64Codec()
	vs := []int{0, 1, -1, 1 << 40, -(1 << 40)}
	buf := encodeAll(c, vs)
	got := decodeAll(c, buf)
	for i, v := range vs {
		if got[i] != v {
			t.Errorf("Int64Codec round-trip[%d] = %d, want %d", i, got[i], v)
		}
	}
}

func TestInt64ValueCodecRoundTrip(t *testing.T) {
	c := Int64ValueCodec()
	vs := []int64{0, 1, -1, 1 << 50, -(1 << 50)}
	buf := encodeAll(c, vs)
	got := decodeAll(c, buf)
	for i, v := range vs {
		if got[i] != v {
			t.Errorf("Int64ValueCodec round-trip[%d] = %d, want %d", i, got[i], v)
		}
	}
}

func TestFloat64CodecRoundTrip(t *testing.T) {
	c := Float64Codec()
	vs := []float64{0, 1.5, -3.25, 1e100}
	buf := encodeAll(c, vs)
	got := decodeAll(c, buf)
	for i, v := range vs {
		if got[i] != v {
			t.Errorf("Float64Codec round-trip[%d] = %v, want %v", i, got[i], v)
		}
	}
}

func TestDecimalCodecRoundTrip(t *testing.T) {
	c := DecimalCodec()
	vs := []decimal.Decimal{
		decimal.New(0, 0),
		decimal.New(10050, -2),  // 100.50
		decimal.New(-10050, -2), // -100.50
		decimal.New(1, 6),       // 1000000
	}
	buf := encodeAll(c, vs)
	got := decodeAll(c, buf)
	for i, v := range vs {
		if !got[i].Equal(v) {
			t.Errorf("DecimalCodec round-trip[%d] = %s, want %s", i, got[i], v)
		}
		if got[i].Exponent() != v.Exponent() {
			t.Errorf("DecimalCodec round-trip[%d] exponent = %d, want %d", i, got[i].Exponent(), v.Exponent())
		}
	}
}

func TestStringCodecRoundTrip(t *testing.T) {
	c := StringCodec(8)
	vs := []string{"", "hi", "exactly8", "toolongtofit"}
	buf := encodeAll(c, vs)
	got := decodeAll(c, buf)
	want := []string{"", "hi", "exactly8", "toolongt"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("StringCodec round-trip[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
