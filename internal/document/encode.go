package document

import (
	"bytes"
	"encoding/json"
)

// MarshalValue encodes v as JSON without escaping '<', '>' and '&', so text
// such as URLs and markup is written as it appears in the source.
func MarshalValue(v any) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(b.Bytes(), []byte("\n")), nil
}
