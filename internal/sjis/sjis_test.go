package sjis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

func TestConvertRoundTripsJapaneseText(t *testing.T) {
	input := "INSERT INTO EMPLOYEES (LAST_NAME_JP) VALUES ('佐藤');"

	converted, err := Convert([]byte(input))
	require.NoError(t, err)
	assert.NotEqual(t, []byte(input), converted)

	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), converted)
	require.NoError(t, err)
	assert.Equal(t, input, string(decoded))
}

func TestConvertLeavesASCIIUntouched(t *testing.T) {
	input := "CREATE TABLE EMPLOYEES (ID NUMBER);"

	converted, err := Convert([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, input, string(converted))
}

func TestConvertSubstitutesUnmappableRunes(t *testing.T) {
	converted, err := Convert([]byte("price 😀"))
	require.NoError(t, err)
	assert.Contains(t, string(converted), "price ")
	assert.NotContains(t, string(converted), "😀")
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "export.sql")
	out := filepath.Join(dir, "export.sql.sjis")
	require.NoError(t, os.WriteFile(in, []byte("-- 日本"), 0644))

	require.NoError(t, ConvertFile(in, out))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), raw)
	require.NoError(t, err)
	assert.Equal(t, "-- 日本", string(decoded))

	assert.Error(t, ConvertFile(filepath.Join(dir, "missing.sql"), out))
}
