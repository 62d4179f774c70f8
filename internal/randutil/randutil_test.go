package randutil

import "testing"

func TestBytesLength(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 5, 32, 64, 65} {
		b, err := Bytes(n)
		if err != nil {
			t.Fatalf("Bytes(%d): %v", n, err)
		}
		if len(b) != n {
			t.Fatalf("Bytes(%d) returned %d bytes", n, len(b))
		}
	}
}

func TestBytesNotAllZero(t *testing.T) {
	b, err := Bytes(32)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	zero := true
	for _, v := range b {
		if v != 0 {
			zero = false
			break
		}
	}
	if zero {
		t.Fatal("Bytes returned an all-zero buffer, RNG looks broken")
	}
}

func TestBytesVaries(t *testing.T) {
	a, err := Bytes(32)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	b, err := Bytes(32)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("two successive calls to Bytes returned identical output")
	}
}
