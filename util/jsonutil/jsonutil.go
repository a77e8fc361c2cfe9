package jsonutil

import (
	"bytes"
	"encoding/json"

	"github.com/buger/jsonparser"
	jsonpatch "github.com/evanphx/json-patch"
)

// Marshal encodes v without HTML escaping. Page URLs routinely contain '&' which must reach
// bidders verbatim.
func Marshal(v interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// IsObject reports whether data holds a single JSON object.
func IsObject(data []byte) bool {
	_, dataType, _, err := jsonparser.Get(data)
	return err == nil && dataType == jsonparser.Object
}

// IsNull reports whether data is empty or the JSON literal null.
func IsNull(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// MergePatch applies patch to the JSON encoding of base as an RFC 7386 merge patch and decodes the
// result into a new value. Keys present in patch win, including explicit zero values; keys set to
// null are removed. base is never modified.
func MergePatch[T any](base *T, patch json.RawMessage) (*T, error) {
	if IsNull(patch) {
		return base, nil
	}

	doc, err := Marshal(base)
	if err != nil {
		return nil, err
	}

	merged, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, err
	}

	var out T
	if err := Unmarshal(merged, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
