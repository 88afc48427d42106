package sound

import (
	"encoding/binary"
	"testing"
	"time"
)

func TestShotPCM(t *testing.T) {
	buf := ShotPCM(100, time.Second, 5)
	if len(buf) != 100*4 {
		t.Fatalf("expected 400 bytes of 16-bit stereo, got %d", len(buf))
	}
	if first := int16(binary.LittleEndian.Uint16(buf[0:])); first != 0 {
		t.Fatalf("wave should start at zero, got %d", first)
	}
	for i := 0; i < len(buf); i += 4 {
		l := binary.LittleEndian.Uint16(buf[i:])
		r := binary.LittleEndian.Uint16(buf[i+2:])
		if l != r {
			t.Fatalf("sample %d: channels differ", i/4)
		}
	}
}
