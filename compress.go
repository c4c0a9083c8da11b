package schematic

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// ErrCorruptStream is wrapped by inflate failures: unrecognized or
// invalid compression headers and truncated streams.
var ErrCorruptStream = errors.New("schematic: corrupt compressed stream")

// deflate compresses a serialized tag tree into a gzip stream. Gzip
// output is required for compatibility with the external tools that
// read these files; the compression level is not part of the contract.
func deflate(data []byte) []byte {
	buf := new(bytes.Buffer)
	zw := gzip.NewWriter(buf)
	_, _ = zw.Write(data)
	_ = zw.Close()
	return buf.Bytes()
}

// inflate decompresses a schematic payload. Files in the wild are gzip
// compressed, but some older tools emitted zlib streams instead; both
// are accepted, told apart by their header bytes.
func inflate(data []byte) ([]byte, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: %d byte payload", ErrCorruptStream, len(data))
	}

	var (
		zr  io.ReadCloser
		err error
	)
	switch {
	case data[0] == 0x1f && data[1] == 0x8b:
		zr, err = gzip.NewReader(bytes.NewReader(data))
	case data[0] == 0x78:
		zr, err = zlib.NewReader(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: unrecognized header %#02x %#02x", ErrCorruptStream, data[0], data[1])
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}
	return raw, nil
}
