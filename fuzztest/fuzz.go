package fuzz

import (
	"bytes"

	dicomcharset "github.com/msz-kp/go-dicom-charset"
)

// Fuzz exercises Parse and the selected backend's Decode/Encode round trip.
// The fuzz corpus entry is split on the first NUL byte: everything before
// it is treated as a Specific Character Set attribute value, everything
// after as the payload bytes to decode under that codec.
func Fuzz(data []byte) int {
	scs, payload, found := splitOnNul(data)
	if !found {
		scs, payload = data, nil
	}

	codec, _ := dicomcharset.Parse(string(scs), dicomcharset.DefaultConfig())
	ctx := dicomcharset.Context{IsMultiValued: true}
	decoded := codec.Decode(payload, ctx)
	_ = codec.Encode(decoded, ctx)
	return 1
}

func splitOnNul(data []byte) ([]byte, []byte, bool) {
	i := bytes.IndexByte(data, 0)
	if i < 0 {
		return nil, nil, false
	}
	return data[:i], data[i+1:], true
}
