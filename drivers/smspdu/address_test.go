package smspdu

import (
	"bytes"
	"testing"

	"modemcode-go/errcode"
)

func TestEncodeAddress_Vectors(t *testing.T) {
	for _, c := range []struct {
		digits string
		want   []byte
	}{
		{"", []byte{}},
		{"1", []byte{0xF1}},
		{"123", []byte{0x21, 0xF3}},
		{"1234", []byte{0x21, 0x43}},
		{"46708251358", []byte{0x64, 0x07, 0x28, 0x15, 0x53, 0xF8}},
		{"447785016005", []byte{0x44, 0x77, 0x58, 0x10, 0x06, 0x50}},
	} {
		dst := make([]byte, AddressLen(len(c.digits)))
		n, err := EncodeAddress(dst, c.digits)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c.digits, err)
		}
		if !bytes.Equal(dst[:n], c.want) {
			t.Fatalf("%q: got % X, want % X", c.digits, dst[:n], c.want)
		}
	}
}

func TestEncodeAddress_NibbleLayout(t *testing.T) {
	const src = "90817263545463728190"
	for l := 0; l <= len(src); l++ {
		d := src[:l]
		dst := make([]byte, 16)
		n, err := EncodeAddress(dst, d)
		if err != nil {
			t.Fatalf("len %d: %v", l, err)
		}
		if n != (l+1)/2 {
			t.Fatalf("len %d: wrote %d bytes", l, n)
		}
		for i := 0; i < l/2; i++ {
			want := (d[2*i+1]-'0')<<4 | (d[2*i] - '0')
			if dst[i] != want {
				t.Fatalf("len %d byte %d: got %02X want %02X", l, i, dst[i], want)
			}
		}
		if l%2 == 1 {
			last := dst[n-1]
			if last>>4 != 0xF {
				t.Fatalf("len %d: pad nibble %X, want F", l, last>>4)
			}
			if last&0xF != d[l-1]-'0' {
				t.Fatalf("len %d: last digit nibble %X", l, last&0xF)
			}
		}
	}
}

func TestEncodeAddress_RejectsNonDigits(t *testing.T) {
	for _, d := range []string{"+4412", "12a4", "12 34", "/", ":", "١٢"} {
		dst := []byte{0xAA, 0xAA, 0xAA, 0xAA}
		_, err := EncodeAddress(dst, d)
		if errcode.Of(err) != errcode.Format {
			t.Fatalf("%q: got %v, want format error", d, err)
		}
		if !bytes.Equal(dst, []byte{0xAA, 0xAA, 0xAA, 0xAA}) {
			t.Fatalf("%q: buffer written on format error: % X", d, dst)
		}
	}
}

func TestEncodeAddress_Capacity(t *testing.T) {
	dst := make([]byte, 1)
	if _, err := EncodeAddress(dst, "123"); errcode.Of(err) != errcode.Capacity {
		t.Fatalf("got %v, want capacity error", err)
	}
	if _, err := EncodeAddress(dst[:2], "12"); err != nil {
		t.Fatalf("exact capacity: %v", err)
	}
}
