package stats

// Clip clamps x in place to its lower and upper percentiles.
func Clip(x []float64, lower, upper float64) error {
	low, err := Percentile(x, lower)
	if err != nil {
		return err
	}
	high, _ := Percentile(x, upper)
	for i, v := range x {
		if v < low {
			x[i] = low
		} else if v > high {
			x[i] = high
		}
	}
	return nil
}
