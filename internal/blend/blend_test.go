package blend

import "testing"

func TestDiv255MatchesRoundedDivision(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			x := a * b
			want := (x + 127) / 255
			if got := int(div255(uint16(x))); got != want {
				t.Fatalf("div255(%d) = %d, want %d", x, got, want)
			}
		}
	}
}

func TestScreen(t *testing.T) {
	tests := []struct {
		name     string
		src, dst [4]byte
		want     [4]byte
	}{
		{"transparent source", [4]byte{0, 0, 0, 0}, [4]byte{10, 20, 30, 255}, [4]byte{10, 20, 30, 255}},
		{"transparent destination", [4]byte{10, 20, 30, 40}, [4]byte{0, 0, 0, 0}, [4]byte{10, 20, 30, 40}},
		{"white saturates", [4]byte{255, 255, 255, 255}, [4]byte{10, 20, 30, 255}, [4]byte{255, 255, 255, 255}},
		{"black is identity", [4]byte{0, 0, 0, 255}, [4]byte{10, 20, 30, 255}, [4]byte{10, 20, 30, 255}},
		{"mid grey", [4]byte{128, 128, 128, 255}, [4]byte{128, 128, 128, 255}, [4]byte{192, 192, 192, 255}},
	}

	fn := GetFunc(Screen)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := fn(tt.src[0], tt.src[1], tt.src[2], tt.src[3],
				tt.dst[0], tt.dst[1], tt.dst[2], tt.dst[3])
			got := [4]byte{r, g, b, a}
			if got != tt.want {
				t.Errorf("screen(%v, %v) = %v, want %v", tt.src, tt.dst, got, tt.want)
			}
		})
	}
}

func TestScreenNeverDarkens(t *testing.T) {
	fn := GetFunc(Screen)
	for s := 0; s < 256; s += 5 {
		for d := 0; d < 256; d += 7 {
			r, _, _, a := fn(byte(s), 0, 0, 255, byte(d), 0, 0, 255)
			if int(r) < d || int(r) < s {
				t.Fatalf("screen(%d, %d) = %d darkened", s, d, r)
			}
			if a != 255 {
				t.Fatalf("opaque screen produced alpha %d", a)
			}
		}
	}
}

func TestSourceOver(t *testing.T) {
	fn := GetFunc(SourceOver)

	r, g, b, a := fn(255, 0, 0, 255, 0, 0, 255, 255)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("opaque over = (%d,%d,%d,%d), want (255,0,0,255)", r, g, b, a)
	}

	// 50% black over opaque white
	r, g, b, a = fn(0, 0, 0, 128, 255, 255, 255, 255)
	if r != 127 || g != 127 || b != 127 || a != 255 {
		t.Errorf("half black over white = (%d,%d,%d,%d), want (127,127,127,255)", r, g, b, a)
	}
}

func TestCopy(t *testing.T) {
	fn := GetFunc(Copy)
	r, g, b, a := fn(1, 2, 3, 4, 100, 100, 100, 255)
	if r != 1 || g != 2 || b != 3 || a != 4 {
		t.Errorf("copy = (%d,%d,%d,%d), want (1,2,3,4)", r, g, b, a)
	}
}

func TestSpan(t *testing.T) {
	dst := []byte{
		10, 20, 30, 255,
		10, 20, 30, 255,
	}
	src := []byte{
		0, 0, 0, 0,
		255, 255, 255, 255,
	}
	Span(dst, src, 2, Screen)
	want := []byte{10, 20, 30, 255, 255, 255, 255, 255}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestSpanCopyTransparent(t *testing.T) {
	dst := []byte{10, 20, 30, 255}
	Span(dst, []byte{0, 0, 0, 0}, 1, Copy)
	for i, v := range dst {
		if v != 0 {
			t.Fatalf("dst[%d] = %d, copy of transparent should clear", i, v)
		}
	}
}

func TestModeString(t *testing.T) {
	if Screen.String() != "screen" || SourceOver.String() != "source-over" || Copy.String() != "copy" {
		t.Errorf("unexpected mode names: %s %s %s", Screen, SourceOver, Copy)
	}
	if Mode(200).String() != "unknown" {
		t.Errorf("Mode(200) = %s", Mode(200))
	}
}

func BenchmarkSpanScreen(b *testing.B) {
	const n = 1024
	dst := make([]byte, n*4)
	src := make([]byte, n*4)
	for i := range src {
		src[i] = byte(i)
		dst[i] = byte(255 - i%256)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Span(dst, src, n, Screen)
	}
}
