package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNotWAV is returned when the data has no RIFF/WAVE header
	ErrNotWAV = errors.New("not a RIFF/WAVE file")
	// ErrNoAudioData is returned when the file has no data chunk
	ErrNoAudioData = errors.New("WAV file has no data chunk")
	// ErrUnsupportedFormat is returned for anything but 16-bit PCM
	ErrUnsupportedFormat = errors.New("only 16-bit PCM WAV is supported")
)

const pcmFormat = 1

// Format describes raw PCM samples
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// Sound is decoded PCM audio ready for playback
type Sound struct {
	Format Format
	Data   []byte
}

// Duration returns the length of one playback in seconds
func (s *Sound) Duration() float64 {
	frame := s.Format.Channels * s.Format.BitDepth / 8
	if frame == 0 || s.Format.SampleRate == 0 {
		return 0
	}
	return float64(len(s.Data)/frame) / float64(s.Format.SampleRate)
}

// ParseWAV parses a WAV file and returns its format and samples
func ParseWAV(data []byte) (*Sound, error) {
	reader := bytes.NewReader(data)

	var header [12]byte
	if _, err := io.ReadFull(reader, header[:]); err != nil {
		return nil, ErrNotWAV
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return nil, ErrNotWAV
	}

	sound := &Sound{}
	haveFormat := false

	for {
		var chunkID [4]byte
		if _, err := io.ReadFull(reader, chunkID[:]); err != nil {
			if err == io.EOF {
				return nil, ErrNoAudioData
			}
			return nil, fmt.Errorf("read chunk id: %w", err)
		}

		var chunkSize uint32
		if err := binary.Read(reader, binary.LittleEndian, &chunkSize); err != nil {
			return nil, fmt.Errorf("read chunk size: %w", err)
		}

		switch string(chunkID[:]) {
		case "fmt ":
			if chunkSize < 16 {
				return nil, fmt.Errorf("fmt chunk too short: %d bytes", chunkSize)
			}
			var fmtChunk struct {
				AudioFormat   uint16
				Channels      uint16
				SampleRate    uint32
				ByteRate      uint32
				BlockAlign    uint16
				BitsPerSample uint16
			}
			if err := binary.Read(reader, binary.LittleEndian, &fmtChunk); err != nil {
				return nil, fmt.Errorf("read fmt chunk: %w", err)
			}
			if fmtChunk.AudioFormat != pcmFormat || fmtChunk.BitsPerSample != 16 {
				return nil, fmt.Errorf("%w (format %d, %d bits)", ErrUnsupportedFormat, fmtChunk.AudioFormat, fmtChunk.BitsPerSample)
			}
			sound.Format = Format{
				SampleRate: int(fmtChunk.SampleRate),
				Channels:   int(fmtChunk.Channels),
				BitDepth:   int(fmtChunk.BitsPerSample),
			}
			haveFormat = true
			if err := skip(reader, int64(chunkSize)-16); err != nil {
				return nil, err
			}
		case "data":
			if !haveFormat {
				return nil, fmt.Errorf("data chunk before fmt chunk")
			}
			sound.Data = make([]byte, chunkSize)
			if _, err := io.ReadFull(reader, sound.Data); err != nil {
				return nil, fmt.Errorf("read audio data: %w", err)
			}
			return sound, nil
		default:
			if err := skip(reader, int64(chunkSize)); err != nil {
				return nil, err
			}
		}

		// Chunks are word aligned
		if chunkSize%2 == 1 {
			if err := skip(reader, 1); err != nil {
				return nil, err
			}
		}
	}
}

func skip(r *bytes.Reader, n int64) error {
	if n <= 0 {
		return nil
	}
	if n > int64(r.Len()) {
		return io.ErrUnexpectedEOF
	}
	_, err := r.Seek(n, io.SeekCurrent)
	return err
}

// EncodeWAV writes s as a 16-bit PCM WAV file
func EncodeWAV(s *Sound) []byte {
	var buf bytes.Buffer
	blockAlign := s.Format.Channels * s.Format.BitDepth / 8

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(s.Data)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(pcmFormat))
	binary.Write(&buf, binary.LittleEndian, uint16(s.Format.Channels))
	binary.Write(&buf, binary.LittleEndian, uint32(s.Format.SampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(s.Format.SampleRate*blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(s.Format.BitDepth))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(s.Data)))
	buf.Write(s.Data)

	return buf.Bytes()
}
