// Package mapping loads the part number to product mapping file.
package mapping

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/ginjaninja78/usagetranslator/internal/types"
)

// Load reads the JSON object at path. See Decode.
func Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", types.ErrMissingMapping, path, err)
	}

	m, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to load mapping file %s: %w", path, err)
	}

	return m, nil
}

// Decode parses a JSON object of string keys to string values.
//
// A document that is not such an object, or that is the literal null,
// yields an error wrapping types.ErrMissingMapping. A null value inside the
// object decodes as the empty string.
func Decode(r io.Reader) (map[string]string, error) {
	var m map[string]string
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrMissingMapping, err)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: the mapping is null", types.ErrMissingMapping)
	}
	return m, nil
}
