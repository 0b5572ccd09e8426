// Package datauri models the content bundled by an RFC 2397 "data:" URI:
// raw payload bytes, a media type, ordered parameters and a binary/text
// classification. It does not parse or render the serialized URI string.
package datauri

import (
	"fmt"
	"strings"
)

// LengthMode selects which protocol length ceiling strict construction
// enforces. The names come from the SGML/HTML attribute-length limits.
type LengthMode int

const (
	// LITLEN caps the payload at 1024 bytes.
	LITLEN LengthMode = iota
	// ATTSPLEN caps the payload at 2100 bytes (same ceiling as TAGLEN).
	ATTSPLEN
	// TAGLEN caps the payload at 2100 bytes. Default mode.
	TAGLEN
)

const (
	litlenLimit = 1024
	taglenLimit = 2100

	// DefaultMimeType is injected when construction gets no media type.
	DefaultMimeType = "text/plain"
	// DefaultCharset accompanies DefaultMimeType as a charset parameter.
	DefaultCharset = "US-ASCII"
)

func (m LengthMode) String() string {
	switch m {
	case LITLEN:
		return "LITLEN"
	case ATTSPLEN:
		return "ATTSPLEN"
	case TAGLEN:
		return "TAGLEN"
	}
	return fmt.Sprintf("LengthMode(%d)", int(m))
}

// limit returns the byte ceiling for the mode. ATTSPLEN and TAGLEN share
// one ceiling even though they are distinct modes.
func (m LengthMode) limit() int {
	if m == LITLEN {
		return litlenLimit
	}
	return taglenLimit
}

// Data is the in-memory data: URI content object. The payload is fixed at
// construction; mutators only touch metadata. A Data value is not safe for
// concurrent use.
type Data struct {
	data     []byte
	mimeType string
	params   *Parameters
	binary   bool
}

// New constructs a Data value. An empty mimeType means "not supplied": the
// media type defaults to text/plain and a charset=US-ASCII parameter is
// injected. params may be nil. With strict set, the payload length is
// checked once, here, against the mode's ceiling.
func New(data []byte, mimeType string, params *Parameters, strict bool, mode LengthMode) (*Data, error) {
	if data == nil {
		data = []byte{}
	}
	if strict {
		if limit := mode.limit(); len(data) > limit {
			return nil, &TooLongDataError{Length: len(data), Limit: limit, Mode: mode}
		}
	}
	if params == nil {
		params = NewParameters()
	}
	if mimeType == "" {
		mimeType = DefaultMimeType
		params.Add("charset", DefaultCharset)
	}
	return &Data{
		data:     data,
		mimeType: mimeType,
		params:   params,
		binary:   !strings.HasPrefix(mimeType, "text/"),
	}, nil
}

// FromBytes constructs a Data value from a literal payload with all
// defaults: no media type, no strict checking, TAGLEN mode.
func FromBytes(data []byte) *Data {
	d, _ := New(data, "", nil, false, TAGLEN)
	return d
}

// GetData returns the payload bytes.
func (d *Data) GetData() []byte {
	return d.data
}

// Len returns the payload length in bytes.
func (d *Data) Len() int {
	return len(d.data)
}

// GetMimeType returns the media type. Never empty after construction.
func (d *Data) GetMimeType() string {
	return d.mimeType
}

// GetParameters returns the live ordered parameter set, not a copy.
func (d *Data) GetParameters() *Parameters {
	return d.params
}

// IsBinaryData reports the binary classification: derived from the media
// type prefix at construction, or whatever SetBinaryData last set.
func (d *Data) IsBinaryData() bool {
	return d.binary
}

// SetBinaryData overrides the derived binary classification.
func (d *Data) SetBinaryData(binary bool) *Data {
	d.binary = binary
	return d
}

// AddParameter inserts a parameter, preserving insertion order. If the key
// already exists the call leaves the existing value untouched.
func (d *Data) AddParameter(key, value string) *Data {
	d.params.Add(key, value)
	return d
}

// String is a debug representation. It is not a serialized data: URI.
func (d *Data) String() string {
	kind := "text"
	if d.binary {
		kind = "binary"
	}
	return fmt.Sprintf("datauri.Data{%s, %d bytes, %s, %d params}", d.mimeType, len(d.data), kind, d.params.Len())
}
