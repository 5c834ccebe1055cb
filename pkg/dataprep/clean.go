package dataprep

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/dataset"
)

// DropDuplicates removes rows identical cell for cell to an earlier row.
func DropDuplicates(ds *dataset.Dataset) {
	seen := make(map[string]struct{}, ds.Len())
	keep := make([]bool, ds.Len())
	for i := range ds.Len() {
		key := fmt.Sprintf("%#v", ds.Row(i))
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			keep[i] = true
		}
	}
	ds.KeepRows(keep)
}

// DropSparse removes the columns whose missing ratio exceeds threshold and
// returns their names.
func DropSparse(ds *dataset.Dataset, threshold float64) ([]string, error) {
	if threshold < 0 || threshold > 1 {
		return nil, errors.Errorf("dropsparse: threshold %v outside [0, 1]", threshold)
	}
	if ds.Len() == 0 {
		return nil, nil
	}

	var dropped []string
	for _, col := range ds.Columns() {
		ratio := float64(col.MissingCount()) / float64(ds.Len())
		if ratio > threshold {
			dropped = append(dropped, col.Name)
		}
	}
	if len(dropped) == 0 {
		return nil, nil
	}
	return dropped, ds.Drop(dropped...)
}
