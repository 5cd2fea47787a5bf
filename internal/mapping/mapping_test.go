package mapping

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/usagetranslator/internal/types"
)

func TestDecode(t *testing.T) {
	m, err := Decode(strings.NewReader(`{"EA000001GB0O": "core.chargeable.adsync", "PMQ00005GB0R": "core.chargeable.exchange"}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"EA000001GB0O": "core.chargeable.adsync",
		"PMQ00005GB0R": "core.chargeable.exchange",
	}, m)
}

func TestDecode_EmptyObject(t *testing.T) {
	m, err := Decode(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestDecode_Invalid(t *testing.T) {
	for _, doc := range []string{`null`, `[1,2]`, `{`, ``} {
		_, err := Decode(strings.NewReader(doc))
		assert.ErrorIs(t, err, types.ErrMissingMapping, doc)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "typemap.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"A": "product.a"}`), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "product.a", m["A"])

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, types.ErrMissingMapping)
}
