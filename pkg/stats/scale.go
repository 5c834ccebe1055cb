package stats

// MinMaxScale rescales x in place to [0, 1]. A constant vector maps to 0.
func MinMaxScale(x []float64) error {
	min, max, err := MinMax(x)
	if err != nil {
		return err
	}
	for i, v := range x {
		if max != min {
			x[i] = (v - min) / (max - min)
		} else {
			x[i] = 0
		}
	}
	return nil
}

// Standardize rescales x in place to zero mean and unit population variance.
// A constant vector maps to 0.
func Standardize(x []float64, p Provider) error {
	mean, err := p.Mean(x)
	if err != nil {
		return err
	}
	std, err := p.StdDev(x)
	if err != nil {
		return err
	}
	for i, v := range x {
		if std != 0 {
			x[i] = (v - mean) / std
		} else {
			x[i] = 0
		}
	}
	return nil
}

// RobustScale rescales x in place using the median and the interquartile
// range. A zero IQR maps to 0.
func RobustScale(x []float64) error {
	median, err := Median(x)
	if err != nil {
		return err
	}
	q1, _ := Percentile(x, 25)
	q3, _ := Percentile(x, 75)
	iqr := q3 - q1
	for i, v := range x {
		if iqr != 0 {
			x[i] = (v - median) / iqr
		} else {
			x[i] = 0
		}
	}
	return nil
}
