package datauri

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsWhenNoMimeType(t *testing.T) {
	d, err := New([]byte("hello"), "", nil, false, TAGLEN)
	require.NoError(t, err)

	assert.Equal(t, "text/plain", d.GetMimeType())
	charset, ok := d.GetParameters().Get("charset")
	require.True(t, ok)
	assert.Equal(t, "US-ASCII", charset)
	assert.False(t, d.IsBinaryData())
}

func TestNew_ExplicitMimeTypeGetsNoCharset(t *testing.T) {
	d, err := New([]byte{0x89, 0x50}, "image/png", nil, false, TAGLEN)
	require.NoError(t, err)

	assert.Equal(t, "image/png", d.GetMimeType())
	assert.Equal(t, 0, d.GetParameters().Len())
	assert.True(t, d.IsBinaryData())
}

func TestNew_TextPrefixIsNotBinary(t *testing.T) {
	d, err := New([]byte("<html>"), "text/html", nil, false, TAGLEN)
	require.NoError(t, err)
	assert.False(t, d.IsBinaryData())
}

func TestNew_NilDataBecomesEmpty(t *testing.T) {
	d, err := New(nil, "", nil, false, TAGLEN)
	require.NoError(t, err)
	assert.NotNil(t, d.GetData())
	assert.Equal(t, 0, d.Len())
}

func TestNew_StrictTaglenAtLimit(t *testing.T) {
	payload := bytes.Repeat([]byte{0xab}, 2100)
	d, err := New(payload, "application/octet-stream", nil, true, TAGLEN)
	require.NoError(t, err)
	assert.Equal(t, payload, d.GetData())
}

func TestNew_StrictTaglenOverLimit(t *testing.T) {
	_, err := New(bytes.Repeat([]byte{0xab}, 2101), "", nil, true, TAGLEN)

	var tooLong *TooLongDataError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, 2101, tooLong.Length)
	assert.Equal(t, 2100, tooLong.Limit)
	assert.Equal(t, TAGLEN, tooLong.Mode)
}

func TestNew_StrictLitlenOverLimit(t *testing.T) {
	_, err := New(bytes.Repeat([]byte{0x01}, 1025), "", nil, true, LITLEN)

	var tooLong *TooLongDataError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, 1025, tooLong.Length)
	assert.Equal(t, 1024, tooLong.Limit)
}

func TestNew_StrictLitlenAtLimit(t *testing.T) {
	_, err := New(bytes.Repeat([]byte{0x01}, 1024), "", nil, true, LITLEN)
	assert.NoError(t, err)
}

func TestNew_AttsplenSharesTaglenLimit(t *testing.T) {
	payload := bytes.Repeat([]byte{0x01}, 2100)
	_, err := New(payload, "", nil, true, ATTSPLEN)
	assert.NoError(t, err)

	_, err = New(append(payload, 0x01), "", nil, true, ATTSPLEN)
	var tooLong *TooLongDataError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, 2101, tooLong.Length)
}

func TestNew_NoLimitWithoutStrict(t *testing.T) {
	payload := bytes.Repeat([]byte{0x01}, 5000)
	for _, mode := range []LengthMode{LITLEN, ATTSPLEN, TAGLEN} {
		d, err := New(payload, "", nil, false, mode)
		require.NoError(t, err, "mode %s", mode)
		assert.Equal(t, 5000, d.Len())
	}
}

func TestAddParameter_ExistingKeyIsNoOp(t *testing.T) {
	d, err := New([]byte("x"), "", nil, false, TAGLEN)
	require.NoError(t, err)
	require.Equal(t, 1, d.GetParameters().Len())

	d.AddParameter("charset", "UTF-8")

	assert.Equal(t, 1, d.GetParameters().Len())
	charset, _ := d.GetParameters().Get("charset")
	assert.Equal(t, "US-ASCII", charset, "existing value must survive a duplicate add")
}

func TestAddParameter_NewKeyAppends(t *testing.T) {
	d, err := New([]byte("x"), "", nil, false, TAGLEN)
	require.NoError(t, err)

	d.AddParameter("base64", "true")

	assert.Equal(t, 2, d.GetParameters().Len())
	assert.Equal(t, []string{"charset", "base64"}, d.GetParameters().Keys())
}

func TestAddParameter_Fluent(t *testing.T) {
	d := FromBytes([]byte("x"))
	got := d.AddParameter("a", "1").AddParameter("b", "2").SetBinaryData(true)
	assert.Same(t, d, got)
	assert.Equal(t, []string{"charset", "a", "b"}, d.GetParameters().Keys())
}

func TestSetBinaryData_OverridesMimeDerivation(t *testing.T) {
	d := FromBytes([]byte("plain text"))
	require.False(t, d.IsBinaryData())

	d.SetBinaryData(true)
	assert.True(t, d.IsBinaryData())

	d.SetBinaryData(false)
	assert.False(t, d.IsBinaryData())
}

func TestFromBytes_Defaults(t *testing.T) {
	d := FromBytes([]byte("abc"))
	assert.Equal(t, []byte("abc"), d.GetData())
	assert.Equal(t, "text/plain", d.GetMimeType())
	assert.True(t, d.GetParameters().Has("charset"))
}

func TestParameters_InsertionOrder(t *testing.T) {
	p := NewParameters()
	p.Add("c", "3")
	p.Add("a", "1")
	p.Add("b", "2")

	assert.Equal(t, []string{"c", "a", "b"}, p.Keys())

	var got []string
	for k, v := range p.All() {
		got = append(got, k+"="+v)
	}
	assert.Equal(t, []string{"c=3", "a=1", "b=2"}, got)
}

func TestTooLongDataError_Message(t *testing.T) {
	err := &TooLongDataError{Length: 3000, Limit: 2100, Mode: TAGLEN}
	assert.Contains(t, err.Error(), "3000")
	assert.Contains(t, err.Error(), "TAGLEN")
}

func TestFileNotFoundError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &FileNotFoundError{Resource: "/tmp/nope", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "/tmp/nope")
}
