package ciphersuite

import (
	"bytes"
	"testing"

	"github.com/oprfgo/voprf/group"
)

func TestNaming(t *testing.T) {
	oprfSuite, err := New(group.Ristretto255(), false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if want := "OPRF-ristretto255-SHA512-HKDF-ELL2-RO"; oprfSuite.Name != want {
		t.Fatalf("Name = %q, want %q", oprfSuite.Name, want)
	}
	if oprfSuite.Mode != OPRF || oprfSuite.Verifiable() {
		t.Fatal("non-verifiable New() did not set Mode to OPRF")
	}

	voprfSuite, err := New(group.Ristretto255(), true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if want := "VOPRF-ristretto255-SHA512-HKDF-ELL2-RO"; voprfSuite.Name != want {
		t.Fatalf("Name = %q, want %q", voprfSuite.Name, want)
	}
	if voprfSuite.Mode != VOPRF || !voprfSuite.Verifiable() {
		t.Fatal("verifiable New() did not set Mode to VOPRF")
	}
}

func TestNewRejectsIncompleteGroup(t *testing.T) {
	if _, err := New(nil, false); err == nil {
		t.Fatal("expected an error for a nil group")
	}
	if _, err := New(&group.PrimeOrderGroup{}, false); err == nil {
		t.Fatal("expected an error for an incomplete group record")
	}
}

func TestH2ZeroLengthKey(t *testing.T) {
	c, err := New(group.Ristretto255(), false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := c.H2(nil, []byte("input"))
	if err != nil {
		t.Fatalf("H2 with zero-length key: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("H2 returned no output")
	}
}

func TestH3H4Deterministic(t *testing.T) {
	c, err := New(group.Ristretto255(), false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a := c.H3([]byte("x"))
	b := c.H3([]byte("x"))
	if !bytes.Equal(a, b) {
		t.Fatal("H3 is not deterministic")
	}
	if bytes.Equal(c.H3([]byte("x")), c.H3([]byte("y"))) {
		t.Fatal("H3 collided on different inputs")
	}
	if !bytes.Equal(c.H4([]byte("x")), c.H4([]byte("x"))) {
		t.Fatal("H4 is not deterministic")
	}
}

func TestH5ExpandSized(t *testing.T) {
	c, err := New(group.Ristretto255(), false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h5 := c.H5()
	prk := h5.Extract([]byte("seed"), []byte{0})
	out, err := h5.Expand(prk, []byte("info"), 32)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(out) != 32 {
		t.Fatalf("Expand returned %d bytes, want 32", len(out))
	}
}
