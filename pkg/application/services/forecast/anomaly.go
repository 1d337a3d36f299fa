package forecast

import (
	"math"

	"github.com/vsinha/replenish/pkg/domain/entities"
)

// DetectAnomalies flags sales points whose z-score exceeds the given
// threshold. Fewer than 3 points is not enough signal to call anything
// anomalous, so the result is empty.
func (f *Forecaster) DetectAnomalies(history []entities.HistoricalSalesPoint, zThreshold float64) []entities.HistoricalSalesPoint {
	if len(history) < 3 {
		return nil
	}

	quantities := make([]float64, len(history))
	for i, point := range history {
		quantities[i] = float64(point.Quantity)
	}

	m := mean(quantities)
	sd := stddev(quantities, m)
	if sd == 0 {
		return nil
	}

	var anomalies []entities.HistoricalSalesPoint
	for i, point := range history {
		zScore := math.Abs(quantities[i]-m) / sd
		if zScore > zThreshold {
			anomalies = append(anomalies, point)
		}
	}
	return anomalies
}
