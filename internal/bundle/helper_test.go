package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHelperOutputParsesCombinedObject(t *testing.T) {
	raw := []byte(`{
		"game": {"filler_item_name": "Rupee"},
		"items": [{"name": "Lamp", "count": 1}],
		"locations": [{"name": "Start", "requires": "|Lamp|"}],
		"categories": {},
		"options": {"hard_mode": {"default": true}},
		"regions": {"Start": {"starting": true}}
	}`)

	tables, err := decodeHelperOutput(raw)
	require.NoError(t, err)
	assert.Equal(t, "Rupee", tables.Game.FillerItemName)
	assert.Len(t, tables.Items, 1)
	assert.Len(t, tables.Locations, 1)
	assert.Equal(t, 1, tables.Yaml["hard_mode"])
	assert.True(t, tables.Regions["Start"].IsStarting())
}

func TestDecodeHelperOutputRejectsInvalidJSON(t *testing.T) {
	_, err := decodeHelperOutput([]byte("not json"))
	require.Error(t, err)
	var herr *HelperError
	assert.ErrorAs(t, err, &herr)
}
