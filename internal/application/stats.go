package app

import "gonum.org/v1/gonum/stat"

// coverageStats среднее и выборочное стандартное отклонение долей покрытия
func coverageStats(ratios []float64) (mean, stdDev float64) {
	switch len(ratios) {
	case 0:
		return 0, 0
	case 1:
		return ratios[0], 0
	}
	return stat.MeanStdDev(ratios, nil)
}
