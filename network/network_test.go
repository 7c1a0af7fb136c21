package network_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/logging"
	"github.com/katalvlaran/lvroute/network"
	"github.com/katalvlaran/lvroute/planner"
)

func TestDefault_AeroUPV(t *testing.T) {
	n, err := network.Default()
	require.NoError(t, err)
	assert.Len(t, n.Locations, 7)
	assert.Len(t, n.Routes, 7)
	assert.Equal(t, planner.DiscountTable{"CDMX": 0.3, "NYC": 0.1, "PE": 0.15}, n.DiscountTable())

	g, err := n.Build()
	require.NoError(t, err)
	assert.True(t, g.Frozen())
	assert.Equal(t, []string{"CDMX", "MAD", "NYC", "OTT", "PE", "PR", "TYO"}, g.Locations())
	assert.Equal(t, 7, g.EdgeCount())

	loc, ok := g.Location("PE")
	require.True(t, ok)
	assert.Equal(t, "Pekín", loc.Name)
	assert.Equal(t, &core.Point{X: 4308, Y: 2176}, loc.Coord)
}

func TestDefault_PlansScenario(t *testing.T) {
	n, err := network.Default()
	require.NoError(t, err)
	p, err := n.NewPlanner()
	require.NoError(t, err)

	it, err := p.Plan("CDMX", "PE")
	require.NoError(t, err)
	assert.Equal(t, []string{"CDMX", "NYC", "PE"}, it.Path)
	assert.Equal(t, 950.0, it.BaseCost)
	assert.InDelta(t, 795.0, it.AdjustedCost, 1e-9)

	it, err = p.Plan("CDMX", "MAD")
	require.NoError(t, err)
	assert.False(t, it.Reachable)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":         ``,
		"syntax":        "locations: [",
		"unknown field": "locations: []\nairports: []\n",
		"bad coord":     "locations:\n  - {key: A, name: A, coord: [1]}\n",
		"bad discount":  "locations:\n  - {key: A, name: A}\ndiscounts: {A: 1.5}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := network.Parse([]byte(doc))
			require.ErrorIs(t, err, network.ErrInvalidDocument)
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	dup, err := network.Parse([]byte("locations:\n  - {key: A, name: A}\n  - {key: A, name: B}\n"))
	require.NoError(t, err)
	_, err = dup.Build()
	require.ErrorIs(t, err, network.ErrInvalidDocument)
	require.ErrorIs(t, err, core.ErrDuplicateLocation)

	orphan, err := network.Parse([]byte("locations:\n  - {key: A, name: A}\nroutes:\n  - {from: A, to: B, cost: 1}\n"))
	require.NoError(t, err)
	_, err = orphan.Build()
	require.ErrorIs(t, err, network.ErrInvalidDocument)
	require.ErrorIs(t, err, core.ErrUnknownLocation)
}

func TestLoad_RoundTrip(t *testing.T) {
	n, err := network.Default()
	require.NoError(t, err)
	data, err := n.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "network.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	loaded, err := network.Load(path)
	require.NoError(t, err)
	assert.Equal(t, n, loaded)

	_, err = network.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_UsesInjectedLogger(t *testing.T) {
	n, err := network.Default()
	require.NoError(t, err)
	data, err := n.Marshal()
	require.NoError(t, err)
	dir := t.TempDir()
	path := filepath.Join(dir, "network.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelDebug)

	_, err = network.Load(path, network.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "INFO reading network file path="+path)
	assert.Contains(t, buf.String(), "DEBUG network loaded path="+path+" locations=7 routes=7 discounts=3")

	buf.Reset()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("airports: []\n"), 0o600))
	_, err = network.Load(bad, network.WithLogger(logger))
	require.ErrorIs(t, err, network.ErrInvalidDocument)
	assert.Contains(t, buf.String(), "ERROR invalid network file path="+bad)
}
