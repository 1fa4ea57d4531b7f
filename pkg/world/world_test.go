package world

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicFacadeLoadsAndQueries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.zip")
	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	write := func(name, content string) {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	write("data/items.json", `[{"name":"Lamp","count":1}]`)
	write("data/locations.json", `[{"name":"Cave","requires":"|Lamp|"}]`)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	w, err := Load(context.Background(), Config{BundlePath: path})
	require.NoError(t, err)
	assert.Nil(t, w.InLogic("Cave", map[string]int{"Lamp": 1}, nil))

	tr, err := ParseRequires("|Lamp| OR |Key|")
	require.NoError(t, err)
	assert.Equal(t, "|Lamp| OR |Key|", Deparse(tr))
	assert.NotEmpty(t, Normalize(tr))
}
