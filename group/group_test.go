package group

import (
	"bytes"
	"testing"
)

func TestSerializationRoundTrip(t *testing.T) {
	g := Ristretto255()

	for i := 0; i < 16; i++ {
		p, err := g.RandomElement()
		if err != nil {
			t.Fatalf("RandomElement: %v", err)
		}

		enc := g.Serialize(p)
		if len(enc) != g.ByteLength {
			t.Fatalf("Serialize returned %d bytes, want %d", len(enc), g.ByteLength)
		}

		dec, err := g.Deserialize(enc)
		if err != nil {
			t.Fatalf("Deserialize: %v", err)
		}

		if !g.IsEqual(p, dec) {
			t.Fatal("deserialize(serialize(P)) != P")
		}
	}
}

func TestSerializationRejection(t *testing.T) {
	g := Ristretto255()

	p, err := g.RandomElement()
	if err != nil {
		t.Fatalf("RandomElement: %v", err)
	}
	enc := g.Serialize(p)

	rejected := 0
	for i := 0; i < 4; i++ {
		tampered := bytes.Clone(enc)
		tampered[i] ^= 0xFF
		if _, err := g.Deserialize(tampered); err != nil {
			rejected++
		}
	}

	if rejected == 0 {
		t.Fatal("flipping leading bytes never produced a DeserializationError")
	}
}

func TestDeserializeWrongLength(t *testing.T) {
	g := Ristretto255()
	if _, err := g.Deserialize(make([]byte, 31)); err == nil {
		t.Fatal("expected an error for a short buffer")
	}
	if _, err := g.Deserialize(make([]byte, 33)); err == nil {
		t.Fatal("expected an error for a long buffer")
	}
}

func TestScalarHomomorphism(t *testing.T) {
	g := Ristretto255()

	p, err := g.RandomElement()
	if err != nil {
		t.Fatalf("RandomElement: %v", err)
	}

	r1, err := g.UniformBytes()
	if err != nil {
		t.Fatalf("UniformBytes: %v", err)
	}
	r2, err := g.UniformBytes()
	if err != nil {
		t.Fatalf("UniformBytes: %v", err)
	}

	s1, err := g.DecodeScalar(r1)
	if err != nil {
		t.Fatalf("DecodeScalar: %v", err)
	}
	s2, err := g.DecodeScalar(r2)
	if err != nil {
		t.Fatalf("DecodeScalar: %v", err)
	}
	sum := s1.Add(s1, s2).Encode(nil)

	left1, err := g.ScalarMult(p, r1)
	if err != nil {
		t.Fatalf("ScalarMult: %v", err)
	}
	left2, err := g.ScalarMult(p, r2)
	if err != nil {
		t.Fatalf("ScalarMult: %v", err)
	}
	left := g.Add(left1, left2)

	right, err := g.ScalarMult(p, sum)
	if err != nil {
		t.Fatalf("ScalarMult: %v", err)
	}

	if !g.IsEqual(left, right) {
		t.Fatal("scalar_mult(P,r1)+scalar_mult(P,r2) != scalar_mult(P,r1+r2)")
	}
}

func TestInverse(t *testing.T) {
	g := Ristretto255()

	p, err := g.RandomElement()
	if err != nil {
		t.Fatalf("RandomElement: %v", err)
	}
	r, err := g.UniformBytes()
	if err != nil {
		t.Fatalf("UniformBytes: %v", err)
	}

	rp, err := g.ScalarMult(p, r)
	if err != nil {
		t.Fatalf("ScalarMult: %v", err)
	}
	back, err := g.InverseMult(rp, r)
	if err != nil {
		t.Fatalf("InverseMult: %v", err)
	}

	if !g.IsEqual(p, back) {
		t.Fatal("inverse_mult(scalar_mult(P,r), r) != P")
	}
}

func TestHashToGroupTestVector(t *testing.T) {
	g := Ristretto255()

	p := g.EncodeToGroup(make([]byte, 32))
	got := g.Serialize(p)

	want := []byte{
		106, 149, 254, 191, 64, 250, 76, 160, 174, 188, 62, 185, 131, 87,
		159, 9, 240, 147, 1, 218, 222, 46, 118, 3, 46, 99, 181, 131, 28,
		64, 18, 101,
	}

	if !bytes.Equal(got, want) {
		t.Fatalf("encode_to_group(0^32) = %v, want %v", got, want)
	}
}

func TestHashToGroupDeterministic(t *testing.T) {
	g := Ristretto255()
	a := g.Serialize(g.EncodeToGroup([]byte("same input")))
	b := g.Serialize(g.EncodeToGroup([]byte("same input")))
	if !bytes.Equal(a, b) {
		t.Fatal("encode_to_group is not deterministic")
	}

	c := g.Serialize(g.EncodeToGroup([]byte("different input")))
	if bytes.Equal(a, c) {
		t.Fatal("encode_to_group produced the same output for different inputs")
	}
}

func TestGeneratorIsConsistent(t *testing.T) {
	g := Ristretto255()
	if g.Generator == nil {
		t.Fatal("Generator is nil")
	}
	// G + G should differ from G for a prime-order group with order > 2.
	if g.IsEqual(g.Generator, g.Add(g.Generator, g.Generator)) {
		t.Fatal("G == G+G, generator looks degenerate")
	}
}
