package loader

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/valeriasoars/tia-lu-preprocessing-vitoria/pkg/dataset"
)

// TrainTestSplit shuffles the rows of ds with rng and splits them by
// testRatio. A nil rng uses the global source.
func TrainTestSplit(ds *dataset.Dataset, testRatio float64, rng *rand.Rand) (train, test *dataset.Dataset, err error) {
	if testRatio < 0 || testRatio > 1 {
		return nil, nil, errors.Errorf("test ratio %v outside [0, 1]", testRatio)
	}
	indices := perm(ds.Len(), rng)
	nTest := int(float64(len(indices)) * testRatio)
	return ds.Take(indices[nTest:]), ds.Take(indices[:nTest]), nil
}

// Shuffle returns a copy of ds with its rows in random order.
func Shuffle(ds *dataset.Dataset, rng *rand.Rand) *dataset.Dataset {
	return ds.Take(perm(ds.Len(), rng))
}

// KFoldSplit yields k folds of shuffled row indices.
func KFoldSplit(n, k int, rng *rand.Rand) ([][]int, error) {
	if k < 2 || k > n {
		return nil, errors.Errorf("cannot make %d folds from %d rows", k, n)
	}
	folds := make([][]int, k)
	for i, idx := range perm(n, rng) {
		folds[i%k] = append(folds[i%k], idx)
	}
	return folds, nil
}

// Fold returns the train and test datasets for fold i of folds.
func Fold(ds *dataset.Dataset, folds [][]int, i int) (train, test *dataset.Dataset) {
	var rest []int
	for j, f := range folds {
		if j != i {
			rest = append(rest, f...)
		}
	}
	return ds.Take(rest), ds.Take(folds[i])
}

func perm(n int, rng *rand.Rand) []int {
	if rng == nil {
		return rand.Perm(n)
	}
	return rng.Perm(n)
}
