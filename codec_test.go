package seqbit

import "testing"

func TestParseControlByte_FillShort(t *testing.T) {
	f, consumed, ok := parseControlByte([]byte{0x05}, 0)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if consumed != 1 {
		t.Fatalf("consumed = %d, want 1", consumed)
	}
	if f.kind != runFill || f.fillValue != fillZero || f.length != 5 {
		t.Fatalf("frame = %+v, want FILL/0x00 length 5", f)
	}
}

func TestParseControlByte_FillOnesShort(t *testing.T) {
	f, consumed, ok := parseControlByte([]byte{0x42}, 0)
	if !ok || consumed != 1 {
		t.Fatalf("parse failed: ok=%v consumed=%d", ok, consumed)
	}
	if f.kind != runFill || f.fillValue != fillOnes || f.length != 2 {
		t.Fatalf("frame = %+v, want FILL/0xFF length 2", f)
	}
}

func TestParseControlByte_FillLong(t *testing.T) {
	f, consumed, ok := parseControlByte([]byte{0x60, 0x02, 0x00}, 0)
	if !ok || consumed != 2 {
		t.Fatalf("parse failed: ok=%v consumed=%d", ok, consumed)
	}
	if f.kind != runFill || f.fillValue != fillOnes || f.length != 2 {
		t.Fatalf("frame = %+v, want FILL/0xFF length 2", f)
	}
}

func TestParseControlByte_NoiseShort(t *testing.T) {
	f, consumed, ok := parseControlByte([]byte{0x81, 0x80}, 0)
	if !ok || consumed != 1 {
		t.Fatalf("parse failed: ok=%v consumed=%d", ok, consumed)
	}
	if f.kind != runNoise || f.length != 1 {
		t.Fatalf("frame = %+v, want NOISE length 1", f)
	}
}

func TestParseControlByte_NoiseLong(t *testing.T) {
	// c[7]=1, c[6]=1 (long), c[5:0]=0x01, extension=0x00 -> length = 0x100 = 256.
	f, consumed, ok := parseControlByte([]byte{0xC1, 0x00}, 0)
	if !ok || consumed != 2 {
		t.Fatalf("parse failed: ok=%v consumed=%d", ok, consumed)
	}
	if f.kind != runNoise || f.length != 256 {
		t.Fatalf("frame = %+v, want NOISE length 256", f)
	}
}

func TestParseControlByte_LengthZeroIsLegal(t *testing.T) {
	f, consumed, ok := parseControlByte([]byte{0x00}, 0)
	if !ok || consumed != 1 {
		t.Fatalf("parse failed: ok=%v consumed=%d", ok, consumed)
	}
	if f.length != 0 {
		t.Fatalf("length = %d, want 0", f.length)
	}
}

func TestParseControlByte_TruncatedControlByte(t *testing.T) {
	_, _, ok := parseControlByte(nil, 0)
	if ok {
		t.Fatal("expected ok=false for empty buffer")
	}
	_, _, ok = parseControlByte([]byte{0x01}, 1)
	if ok {
		t.Fatal("expected ok=false for pos past end of buf")
	}
}

func TestParseControlByte_TruncatedExtensionByte(t *testing.T) {
	// Long-form FILL with no extension byte following.
	_, _, ok := parseControlByte([]byte{0x20}, 0)
	if ok {
		t.Fatal("expected ok=false for missing extension byte")
	}
	// Long-form NOISE with no extension byte following.
	_, _, ok = parseControlByte([]byte{0xC0}, 0)
	if ok {
		t.Fatal("expected ok=false for missing extension byte")
	}
}

func TestAppendControlByte_RoundTripsWithParse(t *testing.T) {
	cases := []struct {
		name      string
		kind      runKind
		fillValue byte
		length    uint
		payload   []byte
	}{
		{"fill-zero-short", runFill, fillZero, 17, nil},
		{"fill-ones-short", runFill, fillOnes, 31, nil},
		{"fill-zero-long", runFill, fillZero, 8191, nil},
		{"noise-short", runNoise, 0, 5, []byte{1, 2, 3, 4, 5}},
		{"noise-long", runNoise, 0, 300, make([]byte, 300)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := appendControlByte(nil, c.kind, c.fillValue, c.length, c.payload)
			f, consumed, ok := parseControlByte(buf, 0)
			if !ok {
				t.Fatal("parse failed on freshly encoded frame")
			}
			if f.kind != c.kind || f.length != c.length {
				t.Fatalf("frame = %+v, want kind=%v length=%d", f, c.kind, c.length)
			}
			if c.kind == runFill && f.fillValue != c.fillValue {
				t.Fatalf("fillValue = 0x%02x, want 0x%02x", f.fillValue, c.fillValue)
			}
			if c.kind == runNoise && len(buf) != consumed+len(c.payload) {
				t.Fatalf("encoded length = %d, want consumed(%d)+payload(%d)", len(buf), consumed, len(c.payload))
			}
		})
	}
}
