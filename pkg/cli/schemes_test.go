package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pombredanne/anitya/pkg/scheme"
)

func TestListSchemes(t *testing.T) {
	entries := listSchemes()
	require.NotEmpty(t, entries)

	byName := map[string]string{}
	for _, e := range entries {
		byName[e.Scheme] = e.Display
	}
	assert.Contains(t, byName, scheme.SchemeGeneric)
	assert.Contains(t, byName, scheme.SchemeRPM)
	assert.Contains(t, byName, scheme.SchemeDebian)
	assert.Equal(t, "Generic", byName[scheme.SchemeGeneric])
}

func TestSchemesCommandWritesJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "schemes.json")
	err := schemesCmd().Run(context.Background(), []string{"schemes", "--output", out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var entries []schemeEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	assert.Len(t, entries, len(listSchemes()))
}
