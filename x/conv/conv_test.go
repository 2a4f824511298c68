package conv

import "testing"

func TestHex(t *testing.T) {
	src := []byte{0x00, 0x11, 0x91, 0xAB, 0xF3, 0xFF}
	dst := make([]byte, HexLen(len(src)))
	n := Hex(dst, src)
	if n != 12 {
		t.Fatalf("Hex wrote %d, want 12", n)
	}
	if got, want := string(dst[:n]), "001191ABF3FF"; got != want {
		t.Fatalf("Hex = %q, want %q", got, want)
	}
}

func TestHexShortBuffer(t *testing.T) {
	dst := []byte("xxx")
	if n := Hex(dst, []byte{1, 2}); n != -1 {
		t.Fatalf("Hex into short buffer = %d, want -1", n)
	}
	if string(dst) != "xxx" {
		t.Fatalf("short buffer was modified: %q", dst)
	}
	if n := Hex(nil, nil); n != 0 {
		t.Fatalf("Hex(nil,nil) = %d", n)
	}
}

func TestUtoa(t *testing.T) {
	var buf [20]byte
	for _, c := range []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{12, "12"},
		{175, "175"},
		{18446744073709551615, "18446744073709551615"},
	} {
		if got := string(Utoa(buf[:], c.n)); got != c.want {
			t.Fatalf("Utoa(%d) = %q, want %q", c.n, got, c.want)
		}
	}
	if got := Utoa(nil, 5); len(got) != 0 {
		t.Fatalf("Utoa(nil) = %q", got)
	}
}
