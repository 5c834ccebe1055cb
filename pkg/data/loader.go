package data

import (
	"bufio"
	"encoding/csv"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/dataset"
)

// DefaultMissingMarkers are the fields read as missing when Options does
// not set its own.
var DefaultMissingMarkers = []string{"", "NA", "NaN"}

// Options controls how text fields become cells.
type Options struct {
	MissingMarkers []string
	Comma          rune
}

func (o Options) markers() []string {
	if o.MissingMarkers == nil {
		return DefaultMissingMarkers
	}
	return o.MissingMarkers
}

// ReadCSV reads a header row followed by data rows.
func ReadCSV(r io.Reader, opts Options) (*dataset.Dataset, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read csv")
	}
	return fromRecords(records, opts)
}

// LoadCSV opens path and reads it with ReadCSV.
func LoadCSV(path string, opts Options) (*dataset.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ds, err := ReadCSV(file, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	slog.Debug("loaded csv", "path", path, "rows", ds.Len(), "columns", ds.Width())
	return ds, nil
}

// LoadXLSX reads one sheet of a workbook. An empty sheet name selects the
// first sheet. Short rows are padded with empty fields.
func LoadXLSX(path, sheet string, opts Options) (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.Errorf("%s has no sheets", path)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %q", sheet)
	}
	if len(rows) > 0 {
		width := len(rows[0])
		for i, row := range rows {
			for len(row) < width {
				row = append(row, "")
			}
			rows[i] = row
		}
	}

	ds, err := fromRecords(rows, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	slog.Debug("loaded xlsx", "path", path, "sheet", sheet, "rows", ds.Len(), "columns", ds.Width())
	return ds, nil
}

func fromRecords(records [][]string, opts Options) (*dataset.Dataset, error) {
	if len(records) == 0 {
		return nil, errors.New("no header row")
	}
	header := records[0]
	markers := opts.markers()
	cols := make([][]dataset.Cell, len(header))
	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, errors.Wrapf(dataset.ErrShape, "row %d has %d fields, header has %d", i+1, len(rec), len(header))
		}
		for j, field := range rec {
			cols[j] = append(cols[j], dataset.ParseCell(field, markers))
		}
	}

	out := make([]*dataset.Column, len(header))
	for j, name := range header {
		cells := cols[j]
		if cells == nil {
			cells = []dataset.Cell{}
		}
		out[j] = dataset.NewColumn(name, cells)
	}
	return dataset.New(out...)
}

// WriteCSV writes the header and every row. Missing cells are empty fields.
func WriteCSV(w io.Writer, ds *dataset.Dataset) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ds.Names()); err != nil {
		return errors.Wrap(err, "write header")
	}
	rec := make([]string, ds.Width())
	for i := range ds.Len() {
		for j, c := range ds.Row(i) {
			if c.IsMissing() {
				rec[j] = ""
			} else {
				rec[j] = c.Label()
			}
		}
		if err := writer.Write(rec); err != nil {
			return errors.Wrapf(err, "write row %d", i)
		}
	}
	writer.Flush()
	return writer.Error()
}

// SaveCSV creates path and writes ds to it.
func SaveCSV(path string, ds *dataset.Dataset) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(file, ds); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
