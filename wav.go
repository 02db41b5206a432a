// wav.go - mono IEEE-float32 RIFF/WAVE file sink
//
// No library in the retrieved dependency pack gives a clean
// FloatBuffer-shaped WAV writer (the ones available are built around
// integer PCM buffers), so this hand-rolls the RIFF container with
// encoding/binary rather than force-fitting an int16-oriented API to
// float32 samples.

package synth

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"
)

const (
	wavFormatIEEEFloat = 3
	wavBitsPerSample   = 32
	wavHeaderSize      = 44
)

// WavSink writes mono 32-bit IEEE-float WAV data to disk. Callers
// must call Close to patch the RIFF and data chunk sizes, which are
// unknown until every block has been written.
type WavSink struct {
	file        *os.File
	writer      *bufio.Writer
	sampleRate  uint32
	dataBytes   uint32
	closed      bool
}

// NewWavSink creates (or truncates) path and writes a placeholder WAV
// header, ready to receive blocks via Write.
func NewWavSink(path string, sampleRate int) (*WavSink, error) {
	if sampleRate <= 0 {
		return nil, newInvalidParameterError("WavSink", "sampleRate", "must be positive")
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := &WavSink{
		file:       f,
		sampleRate: uint32(sampleRate),
	}
	if err := w.writeHeader(0); err != nil {
		f.Close()
		return nil, err
	}
	// writeHeader uses WriteAt(0, ...), which never moves the file's
	// write offset, so the buffered writer below must be seeked past
	// the header itself or its first Flush would clobber it.
	if _, err := f.Seek(wavHeaderSize, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}
	w.writer = bufio.NewWriter(f)
	return w, nil
}

func (w *WavSink) writeHeader(dataBytes uint32) error {
	byteRate := w.sampleRate * 1 * (wavBitsPerSample / 8)
	blockAlign := uint16(1 * (wavBitsPerSample / 8))

	buf := make([]byte, 0, wavHeaderSize)
	buf = append(buf, "RIFF"...)
	buf = binary.LittleEndian.AppendUint32(buf, 36+dataBytes)
	buf = append(buf, "WAVE"...)

	buf = append(buf, "fmt "...)
	buf = binary.LittleEndian.AppendUint32(buf, 16)
	buf = binary.LittleEndian.AppendUint16(buf, wavFormatIEEEFloat)
	buf = binary.LittleEndian.AppendUint16(buf, 1) // mono
	buf = binary.LittleEndian.AppendUint32(buf, w.sampleRate)
	buf = binary.LittleEndian.AppendUint32(buf, byteRate)
	buf = binary.LittleEndian.AppendUint16(buf, blockAlign)
	buf = binary.LittleEndian.AppendUint16(buf, wavBitsPerSample)

	buf = append(buf, "data"...)
	buf = binary.LittleEndian.AppendUint32(buf, dataBytes)

	if _, err := w.file.WriteAt(buf, 0); err != nil {
		return err
	}
	return nil
}

// Write appends one block of samples as little-endian float32s.
func (w *WavSink) Write(b Block) error {
	var sampleBuf [4]byte
	for _, s := range b {
		binary.LittleEndian.PutUint32(sampleBuf[:], math.Float32bits(s))
		if _, err := w.writer.Write(sampleBuf[:]); err != nil {
			return err
		}
		w.dataBytes += 4
	}
	return nil
}

// Close flushes buffered samples, patches the RIFF and data chunk
// sizes now that the total sample count is known, and closes the
// underlying file.
func (w *WavSink) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.writer.Flush(); err != nil {
		w.file.Close()
		return err
	}
	if err := w.writeHeader(w.dataBytes); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
