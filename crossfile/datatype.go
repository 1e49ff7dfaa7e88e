package crossfile

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/carbocation/pfx"
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
	DataTypeZlib
	DataTypeBZip2
)

func (d DataType) String() string {
	switch d {
	case DataTypeNoCompression:
		return "uncompressed"
	case DataTypeGzip:
		return "gzip"
	case DataTypeZip:
		return "zip"
	case DataTypeXZ:
		return "xz"
	case DataTypeZlib:
		return "zlib"
	case DataTypeBZip2:
		return "bzip2"
	default:
		return "invalid"
	}
}

// Byte code signatures from https://stackoverflow.com/a/19127748/199475
var byteCodeSigs = []struct {
	dt  DataType
	sig []byte
}{
	{DataTypeXZ, []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}},
	{DataTypeZip, []byte{0x50, 0x4b, 0x03, 0x04}},
	{DataTypeGzip, []byte{0x1f, 0x8b, 0x08}},
	{DataTypeBZip2, []byte{0x42, 0x5a, 0x68}},
	// zlib at no, default and best compression.
	{DataTypeZlib, []byte{0x78, 0x01}},
	{DataTypeZlib, []byte{0x78, 0x9c}},
	{DataTypeZlib, []byte{0x78, 0xda}},
}

// DetectDataType matches the leading bytes of b against known compression
// signatures. Anything unrecognized is assumed to be plain text.
func DetectDataType(b []byte) DataType {
	for _, v := range byteCodeSigs {
		if bytes.HasPrefix(b, v.sig) {
			return v.dt
		}
	}

	return DataTypeNoCompression
}

// decompress returns the plain contents of raw, whatever its compression. For
// zip archives only the first file is read.
func decompress(raw []byte) ([]byte, error) {
	var r io.Reader
	var err error

	switch DetectDataType(raw) {
	case DataTypeNoCompression:
		return raw, nil
	case DataTypeGzip:
		r, err = gzip.NewReader(bytes.NewReader(raw))
	case DataTypeZip:
		zr := zipstream.NewReader(bytes.NewReader(raw))
		_, err = zr.Next()
		r = zr
	case DataTypeBZip2:
		r = bzip2.NewReader(bytes.NewReader(raw))
	case DataTypeXZ:
		r, err = xz.NewReader(bytes.NewReader(raw), 0)
	case DataTypeZlib:
		r, err = zlib.NewReader(bytes.NewReader(raw))
	}
	if err != nil {
		return nil, pfx.Err(err)
	}

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}
