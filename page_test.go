package shipdash

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DashboardPage("").Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "<h1>Shipping Dashboard Example</h1>")
	assert.Contains(t, out, `<div style="width:45%; float:left">`)
	assert.Contains(t, out, `<div style="width:45%; float:right">`)
	for i, img := range []string{
		`<img src="shipping_per_warehouse.png" alt="Fig 1">`,
		`<img src="mode_of_shipment.png" alt="Fig 2">`,
		`<img src="average_customer_rating.png" alt="Fig 3">`,
		`<img src="weight_distribution.png" alt="Fig 4">`,
	} {
		assert.Equal(t, 1, strings.Count(out, img), "figure %d", i+1)
	}
	assert.Less(t, strings.Index(out, "float:left"), strings.Index(out, "mode_of_shipment.png"))
	assert.Less(t, strings.Index(out, "mode_of_shipment.png"), strings.Index(out, "float:right"))

	snaps.MatchSnapshot(t, out)
}

func TestPageEscapesTitle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DashboardPage("Q3 <draft> & more").Render(&buf))
	assert.Contains(t, buf.String(), "<h1>Q3 &lt;draft&gt; &amp; more</h1>")
}

func TestWritePage(t *testing.T) {
	dir := t.TempDir()
	page := DashboardPage(DefaultTitle)

	require.NoError(t, WritePage(dir, page))
	first, err := os.ReadFile(filepath.Join(dir, PageFile))
	require.NoError(t, err)

	require.NoError(t, WritePage(dir, page))
	second, err := os.ReadFile(filepath.Join(dir, PageFile))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	err = WritePage(filepath.Join(dir, "no", "such", "dir"), page)
	assert.ErrorIs(t, err, ErrWrite)
}
