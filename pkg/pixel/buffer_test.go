package pixel

import (
	"math/rand"
	"testing"
)

func randomBuffer(t *testing.T, w, h int, seed int64) *Buffer {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	b := New(w, h)
	for i := range b.Pix {
		b.Pix[i] = uint8(rng.Intn(256))
	}
	return b
}

func TestReverseInvolution(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {2, 2}, {3, 5}, {16, 9}} {
		b := randomBuffer(t, dims[0], dims[1], int64(dims[0]*100+dims[1]))
		if got := Reverse(Reverse(b)); !got.Equal(b) {
			t.Errorf("Reverse(Reverse(b)) != b for %dx%d buffer", dims[0], dims[1])
		}
	}
}

func TestReverseCornerMapping(t *testing.T) {
	b := New(2, 2)
	b.Set(0, 0, 1, 2, 3)
	b.Set(1, 0, 4, 5, 6)
	b.Set(0, 1, 7, 8, 9)
	b.Set(1, 1, 10, 11, 12)

	out := Reverse(b)
	if r, g, bl := out.At(0, 0); r != 10 || g != 11 || bl != 12 {
		t.Errorf("out(0,0) = (%d,%d,%d), want bottom-right of input (10,11,12)", r, g, bl)
	}
	if r, g, bl := out.At(1, 1); r != 1 || g != 2 || bl != 3 {
		t.Errorf("out(1,1) = (%d,%d,%d), want top-left of input (1,2,3)", r, g, bl)
	}
	if r, g, bl := out.At(1, 0); r != 7 || g != 8 || bl != 9 {
		t.Errorf("out(1,0) = (%d,%d,%d), want bottom-left of input (7,8,9)", r, g, bl)
	}
	if out.W != b.W || out.H != b.H {
		t.Errorf("dimensions changed: got %dx%d, want %dx%d", out.W, out.H, b.W, b.H)
	}
}

func TestXORKeyInvolution(t *testing.T) {
	b := randomBuffer(t, 4, 7, 42)
	for _, key := range []uint8{0, 1, 123, 254, 255} {
		if got := XORKey(XORKey(b, key), key); !got.Equal(b) {
			t.Errorf("XORKey twice with key %d did not restore the buffer", key)
		}
	}
}

func TestXORKeyZeroIsIdentity(t *testing.T) {
	b := randomBuffer(t, 3, 3, 7)
	if got := XORKey(b, 0); !got.Equal(b) {
		t.Error("XORKey with key 0 changed the buffer")
	}
}

func TestXORKeyFullInversion(t *testing.T) {
	b := New(2, 2)
	out := XORKey(b, 255)
	for i, v := range out.Pix {
		if v != 255 {
			t.Fatalf("Pix[%d] = %d, want 255 (every bit flipped)", i, v)
		}
	}
}

func TestXORKeyMathExample(t *testing.T) {
	// 2x2 all-zero image, key 10: every channel becomes 10.
	b := New(2, 2)
	enc := XORKey(b, 10)
	for i, v := range enc.Pix {
		if v != 10 {
			t.Fatalf("encrypted Pix[%d] = %d, want 10", i, v)
		}
	}
	if dec := XORKey(enc, 10); !dec.Equal(b) {
		t.Error("decrypting with the same key did not restore all-zero buffer")
	}
}

func TestCloneIsDeep(t *testing.T) {
	b := randomBuffer(t, 2, 3, 1)
	c := b.Clone()
	c.Pix[0] ^= 0xFF
	if b.Pix[0] == c.Pix[0] {
		t.Error("mutating the clone changed the original")
	}
}
