package csvlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []Row{
		{Hangul: "사람", Description: "person"},
		{Hangul: "눈", Description: "eye; snow"},
	}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "hangul;description\n사람;person\n눈;\"eye; snow\"\n", buf.String())
}

func TestReadWriteEUCKR(t *testing.T) {
	rows := []Row{{Hangul: "한국어", Description: "Korean language"}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rows, Options{Encoding: "euc-kr"}))
	// 한 is 0xC7 0xD1 in EUC-KR.
	assert.True(t, bytes.Contains(buf.Bytes(), []byte{0xC7, 0xD1}))
	assert.False(t, bytes.Contains(buf.Bytes(), []byte("한")))

	got, err := Read(bytes.NewReader(buf.Bytes()), Options{Encoding: "EUC-KR"})
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestRead(t *testing.T) {
	input := "\ufeffhangul;description\n가방;bag\n 나무 ;tree\n"
	got, err := Read(strings.NewReader(input), Options{})
	require.NoError(t, err)
	assert.Equal(t, []Row{
		{Hangul: "가방", Description: "bag"},
		{Hangul: "나무", Description: "tree"},
	}, got)
}

func TestReadEmpty(t *testing.T) {
	got, err := Read(strings.NewReader(""), Options{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("word;meaning\n가;x\n"), Options{})
	assert.ErrorIs(t, err, ErrBadHeader)

	_, err = Read(strings.NewReader("hangul;description\n가;x;extra\n"), Options{})
	assert.Error(t, err)

	_, err = Read(strings.NewReader(""), Options{Encoding: "latin-1"})
	assert.ErrorIs(t, err, ErrUnknownEncoding)

	assert.ErrorIs(t, Write(&bytes.Buffer{}, nil, Options{Encoding: "shift-jis"}), ErrUnknownEncoding)
}
