package results

import (
	"testing"

	"github.com/jacoelho/jx/internal/document"
	"github.com/jacoelho/jx/internal/jsonpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectMissing(t *testing.T) {
	doc, err := document.DecodeBytes([]byte(`{"a": 1, "b": [2]}`))
	require.NoError(t, err)

	complete, err := jsonpath.ExtractMany(doc, []string{"a", "b[0]"}, false)
	require.NoError(t, err)
	partial, err := jsonpath.ExtractMany(doc, []string{"a", "c", "b[5]"}, true)
	require.NoError(t, err)

	missing := CollectMissing([]Envelope{
		{File: "complete.json", Results: complete},
		{File: "partial.json", Results: partial},
		{File: "skipped.json"},
	})

	assert.Equal(t, []Missing{{File: "partial.json", Queries: []string{"c", "b[5]"}}}, missing)
}
