package shipdash

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Columns of the shipping dataset used by the dashboard.
const (
	ColWarehouseBlock = "Warehouse_block"
	ColModeOfShipment = "Mode_of_Shipment"
	ColCustomerRating = "Customer_rating"
	ColWeightInGrams  = "Weight_in_gms"
)

// Record is one shipment.
type Record struct {
	WarehouseBlock string
	ModeOfShipment string
	CustomerRating int
	WeightInGrams  float64
}

// Dataset is a loaded table with named, typed columns. It is never
// modified after loading: all accessors hand out copies.
type Dataset struct {
	// Name is the base name of the file the data was read from.
	Name string

	frame dataframe.DataFrame
}

// FieldType represents the basic type of a column as inferred from its
// content.
type FieldType uint

const (
	Int FieldType = iota
	Float
	String
)

func (t FieldType) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	}
	return "string"
}

// Load reads the comma separated file at path. The first row must be a
// header naming the columns. A path that does not exist gives
// ErrMissingInput, any other failure to read the file ErrParse.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer f.Close()
	return Read(f, filepath.Base(path))
}

// Read reads a Dataset in CSV format from r. A header without data rows
// gives an empty Dataset.
func Read(r io.Reader, name string) (*Dataset, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s: missing header row", ErrParse, name)
	}

	header := records[0]
	seen := NewStringSet()
	for i, h := range header {
		if strings.TrimSpace(h) == "" {
			return nil, fmt.Errorf("%w: %s: column %d has no name", ErrParse, name, i+1)
		}
		if seen.Contains(h) {
			return nil, fmt.Errorf("%w: %s: duplicate column %q", ErrParse, name, h)
		}
		seen.Add(h)
	}

	var frame dataframe.DataFrame
	if len(records) == 1 {
		// gota refuses a header without rows.
		cols := make([]series.Series, len(header))
		for i, h := range header {
			cols[i] = series.New([]string{}, series.String, h)
		}
		frame = dataframe.New(cols...)
	} else {
		frame = dataframe.LoadRecords(records,
			dataframe.HasHeader(true),
			dataframe.DetectTypes(true),
		)
	}
	if frame.Err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, name, frame.Err)
	}

	return &Dataset{Name: name, frame: frame}, nil
}

// Len returns the number of records.
func (ds *Dataset) Len() int { return ds.frame.Nrow() }

// Names returns the column names in file order.
func (ds *Dataset) Names() []string { return ds.frame.Names() }

// Has reports whether ds has a column named col.
func (ds *Dataset) Has(col string) bool {
	for _, n := range ds.frame.Names() {
		if n == col {
			return true
		}
	}
	return false
}

func fieldType(t series.Type) FieldType {
	switch t {
	case series.Int:
		return Int
	case series.Float:
		return Float
	}
	return String
}

// column returns a copy of column col.
func (ds *Dataset) column(col string) (series.Series, error) {
	if !ds.Has(col) {
		return series.Series{}, fmt.Errorf("%w: %s: no column %q", ErrSchema, ds.Name, col)
	}
	s := ds.frame.Col(col)
	if s.Err != nil {
		return series.Series{}, fmt.Errorf("%w: %s: column %q: %v", ErrSchema, ds.Name, col, s.Err)
	}
	return s, nil
}

// checkMissing fails on the first missing value in s. Rows are counted
// from 1, the header not included.
func (ds *Dataset) checkMissing(s series.Series, col string) error {
	for i, missing := range s.IsNaN() {
		if missing {
			return fmt.Errorf("%w: %s: column %q: missing value in row %d", ErrSchema, ds.Name, col, i+1)
		}
	}
	return nil
}

// Strings returns the values of column col as text.
func (ds *Dataset) Strings(col string) ([]string, error) {
	s, err := ds.column(col)
	if err != nil {
		return nil, err
	}
	if err := ds.checkMissing(s, col); err != nil {
		return nil, err
	}
	vals := s.Records()
	for i, v := range vals {
		if strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("%w: %s: column %q: missing value in row %d", ErrSchema, ds.Name, col, i+1)
		}
	}
	return vals, nil
}

// Floats returns the values of the numeric column col.
func (ds *Dataset) Floats(col string) ([]float64, error) {
	s, err := ds.column(col)
	if err != nil {
		return nil, err
	}
	if t := s.Type(); t != series.Int && t != series.Float && s.Len() > 0 {
		return nil, fmt.Errorf("%w: %s: column %q is %s, not numeric", ErrSchema, ds.Name, col, fieldType(t))
	}
	if err := ds.checkMissing(s, col); err != nil {
		return nil, err
	}
	vals := s.Float()
	for i, v := range vals {
		if math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s: column %q: infinite value in row %d", ErrSchema, ds.Name, col, i+1)
		}
	}
	return vals, nil
}

// Records returns the dataset as typed shipments. It fails if one of the
// four dashboard columns is absent, malformed or has missing values.
func (ds *Dataset) Records() ([]Record, error) {
	blocks, err := ds.Strings(ColWarehouseBlock)
	if err != nil {
		return nil, err
	}
	modes, err := ds.Strings(ColModeOfShipment)
	if err != nil {
		return nil, err
	}
	ratings, err := ds.Floats(ColCustomerRating)
	if err != nil {
		return nil, err
	}
	weights, err := ds.Floats(ColWeightInGrams)
	if err != nil {
		return nil, err
	}

	records := make([]Record, ds.Len())
	for i := range records {
		r := ratings[i]
		if r != math.Trunc(r) {
			return nil, fmt.Errorf("%w: %s: column %q: rating %g in row %d is not an integer",
				ErrSchema, ds.Name, ColCustomerRating, r, i+1)
		}
		records[i] = Record{
			WarehouseBlock: blocks[i],
			ModeOfShipment: modes[i],
			CustomerRating: int(r),
			WeightInGrams:  weights[i],
		}
	}
	return records, nil
}
