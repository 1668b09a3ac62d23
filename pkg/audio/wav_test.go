package audio

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeParseWAV(t *testing.T) {
	in := &Sound{
		Format: Format{SampleRate: 22050, Channels: 2, BitDepth: 16},
		Data:   []byte{1, 2, 3, 4, 5, 6, 7, 8},
	}

	out, err := ParseWAV(EncodeWAV(in))
	if err != nil {
		t.Fatalf("ParseWAV: %v", err)
	}
	if out.Format != in.Format {
		t.Errorf("format = %+v, want %+v", out.Format, in.Format)
	}
	if !bytes.Equal(out.Data, in.Data) {
		t.Errorf("data = %v, want %v", out.Data, in.Data)
	}
}

func TestParseWAVSkipsUnknownChunks(t *testing.T) {
	wav := EncodeWAV(&Sound{
		Format: Format{SampleRate: 8000, Channels: 1, BitDepth: 16},
		Data:   []byte{9, 9},
	})

	// Insert an odd-sized LIST chunk (with pad byte) between fmt and data
	extra := []byte("LIST\x03\x00\x00\x00abc\x00")
	fmtEnd := 12 + 8 + 16
	withList := append(append(append([]byte{}, wav[:fmtEnd]...), extra...), wav[fmtEnd:]...)

	sound, err := ParseWAV(withList)
	if err != nil {
		t.Fatalf("ParseWAV: %v", err)
	}
	if !bytes.Equal(sound.Data, []byte{9, 9}) {
		t.Errorf("data = %v", sound.Data)
	}
}

func TestParseWAVErrors(t *testing.T) {
	good := EncodeWAV(&Sound{Format: Format{SampleRate: 8000, Channels: 1, BitDepth: 16}, Data: []byte{0, 0}})

	eightBit := append([]byte{}, good...)
	eightBit[34] = 8 // bits per sample

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrNotWAV},
		{"not riff", []byte("OggS0000WAVEfmt "), ErrNotWAV},
		{"header only", good[:12], ErrNoAudioData},
		{"8 bit", eightBit, ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		if _, err := ParseWAV(tt.data); !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
	}

	if _, err := ParseWAV(good[:len(good)-1]); err == nil {
		t.Error("truncated data: expected error")
	}
}

func TestBell(t *testing.T) {
	bell := Bell()
	if bell.Format != (Format{SampleRate: 44100, Channels: 1, BitDepth: 16}) {
		t.Errorf("format = %+v", bell.Format)
	}
	if d := bell.Duration(); d < 0.79 || d > 0.81 {
		t.Errorf("duration = %v, want 0.8s", d)
	}

	parsed, err := ParseWAV(EncodeWAV(bell))
	if err != nil {
		t.Fatalf("bell does not round trip: %v", err)
	}
	if len(parsed.Data) != len(bell.Data) {
		t.Errorf("data length = %d, want %d", len(parsed.Data), len(bell.Data))
	}
}
