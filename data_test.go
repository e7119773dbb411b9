package shipdash

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "ID,Warehouse_block,Mode_of_Shipment,Customer_rating,Weight_in_gms\n"

// shipments returns CSV content with one row per record.
func shipments(records ...Record) string {
	var b strings.Builder
	b.WriteString(header)
	for i, r := range records {
		fmt.Fprintf(&b, "%d,%s,%s,%d,%g\n", i+1, r.WarehouseBlock, r.ModeOfShipment, r.CustomerRating, r.WeightInGrams)
	}
	return b.String()
}

func mustRead(t *testing.T, content string) *Dataset {
	t.Helper()
	ds, err := Read(strings.NewReader(content), "test.csv")
	require.NoError(t, err)
	return ds
}

var sample = []Record{
	{"A", "Ship", 1, 1200},
	{"B", "Road", 2, 3100},
	{"A", "Ship", 3, 4500},
	{"C", "Flight", 4, 1500},
	{"A", "Ship", 5, 5800},
	{"B", "Road", 2, 2200},
}

func TestRead(t *testing.T) {
	ds := mustRead(t, shipments(sample...))

	assert.Equal(t, "test.csv", ds.Name)
	assert.Equal(t, 6, ds.Len())
	assert.Equal(t, []string{"ID", ColWarehouseBlock, ColModeOfShipment, ColCustomerRating, ColWeightInGrams}, ds.Names())
	assert.True(t, ds.Has(ColModeOfShipment))
	assert.False(t, ds.Has("Discount_offered"))

	blocks, err := ds.Strings(ColWarehouseBlock)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "A", "C", "A", "B"}, blocks)

	weights, err := ds.Floats(ColWeightInGrams)
	require.NoError(t, err)
	assert.Equal(t, []float64{1200, 3100, 4500, 1500, 5800, 2200}, weights)

	records, err := ds.Records()
	require.NoError(t, err)
	assert.Equal(t, sample, records)
}

func TestReadCopies(t *testing.T) {
	ds := mustRead(t, shipments(sample...))

	weights, err := ds.Floats(ColWeightInGrams)
	require.NoError(t, err)
	weights[0] = -1
	again, err := ds.Floats(ColWeightInGrams)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, again[0])
}

func TestReadHeaderOnly(t *testing.T) {
	ds := mustRead(t, header)

	assert.Equal(t, 0, ds.Len())
	assert.True(t, ds.Has(ColWeightInGrams))

	records, err := ds.Records()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"empty", "", ErrParse},
		{"ragged", header + "1,A,Ship,3\n", ErrParse},
		{"duplicate column", "a,b,a\n1,2,3\n", ErrParse},
		{"blank column name", "a,,c\n1,2,3\n", ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.content), "bad.csv")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSchemaErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing column", "ID,Warehouse_block,Mode_of_Shipment,Customer_rating\n1,A,Ship,3\n"},
		{"text weight", header + "1,A,Ship,3,heavy\n2,B,Road,4,light\n"},
		{"empty weight", header + "1,A,Ship,3,1000\n2,B,Road,4,\n"},
		{"NA rating", header + "1,A,Ship,NA,1000\n2,B,Road,4,2000\n"},
		{"empty mode", header + "1,A,,3,1000\n2,B,Road,4,2000\n"},
		{"fractional rating", header + "1,A,Ship,2.5,1000\n2,B,Road,4,2000\n"},
		{"inf weight", header + "1,A,Ship,3,1000\n2,B,Road,4,inf\n"},
		{"negative inf weight", header + "1,A,Ship,3,-Inf\n2,B,Road,4,2000\n"},
		{"overflowing weight", header + "1,A,Ship,3,1e999\n2,B,Road,4,2000\n"},
		{"inf rating", header + "1,A,Ship,Inf,1000\n2,B,Road,4,2000\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := mustRead(t, tt.content)
			_, err := ds.Records()
			assert.ErrorIs(t, err, ErrSchema)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shipping-data.csv")
	require.NoError(t, os.WriteFile(path, []byte(shipments(sample...)), 0o644))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "shipping-data.csv", ds.Name)
	assert.Equal(t, len(sample), ds.Len())

	_, err = Load(filepath.Join(dir, "nope.csv"))
	assert.ErrorIs(t, err, ErrMissingInput)

	// The file exists but cannot be opened as a directory.
	_, err = Load(filepath.Join(path, "x.csv"))
	assert.ErrorIs(t, err, ErrParse)
	assert.NotErrorIs(t, err, ErrMissingInput)
}

func TestNonFiniteWeights(t *testing.T) {
	ds := mustRead(t, header+"1,A,Ship,3,1000\n2,B,Road,4,2000\n3,C,Flight,5,inf\n")

	assert.NotPanics(t, func() {
		_, err := WeightHistogram(ds, 10)
		assert.ErrorIs(t, err, ErrSchema)
	})
	_, err := RatingByMode(ds)
	assert.NoError(t, err)
}
