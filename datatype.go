package progvar

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
	DataTypeZlib
)

func (d DataType) String() string {
	switch d {
	case DataTypeNoCompression:
		return "plain"
	case DataTypeGzip:
		return "gzip"
	case DataTypeZip:
		return "zip"
	case DataTypeXZ:
		return "xz"
	case DataTypeZ:
		return "compress"
	case DataTypeZlib:
		return "zlib"
	case DataTypeBZip2:
		return "bzip2"
	}
	return "invalid"
}

// Byte code signatures from https://stackoverflow.com/a/19127748/199475
var byteCodeSigs = []struct {
	dt  DataType
	sig []byte
}{
	{DataTypeGzip, []byte{0x1f, 0x8b, 0x08}},
	{DataTypeZip, []byte{0x50, 0x4b, 0x03, 0x04}},
	{DataTypeXZ, []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}},
	{DataTypeZ, []byte{0x1f, 0x9d}},
	{DataTypeZlib, []byte{0x78, 0x9c}},
	{DataTypeBZip2, []byte{0x42, 0x5a, 0x68}},
}

// DetectDataType peeks at the head of the stream without consuming it.
func DetectDataType(r *bufio.Reader) (DataType, error) {
	head, err := r.Peek(6)
	if err != nil && err != io.EOF {
		return DataTypeInvalid, err
	}

	for _, v := range byteCodeSigs {
		if bytes.HasPrefix(head, v.sig) {
			return v.dt, nil
		}
	}

	return DataTypeNoCompression, nil
}

// MaybeDecompress wraps rc in the decompressor matching its magic bytes. The
// returned ReadCloser closes rc.
func MaybeDecompress(rc io.ReadCloser) (io.ReadCloser, DataType, error) {
	buffered := bufio.NewReader(rc)
	dt, err := DetectDataType(buffered)
	if err != nil {
		return nil, dt, err
	}

	var r io.Reader
	switch dt {
	case DataTypeGzip:
		r, err = gzip.NewReader(buffered)
	case DataTypeZip:
		// Only the first member of an archive is read.
		zr := zipstream.NewReader(buffered)
		if _, err = zr.Next(); err == nil {
			r = zr
		}
	case DataTypeBZip2:
		r = bzip2.NewReader(buffered)
	case DataTypeXZ:
		r, err = xz.NewReader(buffered, 0)
	case DataTypeZ:
		err = fmt.Errorf("unix compress (.Z) streams are not supported")
	case DataTypeZlib:
		r, err = zlib.NewReader(buffered)
	default:
		r = buffered
	}
	if err != nil {
		return nil, dt, err
	}

	return &wrappedReadCloser{Reader: r, closer: rc}, dt, nil
}

// wrappedReadCloser reads from the decompressed stream and closes the source.
type wrappedReadCloser struct {
	io.Reader
	closer io.Closer
}

// Close closes both streams and returns the first error.
func (w *wrappedReadCloser) Close() error {
	var err error
	if c, ok := w.Reader.(io.Closer); ok {
		err = c.Close()
	}
	if cerr := w.closer.Close(); err == nil {
		err = cerr
	}
	return err
}
