package model

import "math"

// PointsPerUnit is the fixed points-to-currency conversion rate.
const PointsPerUnit = 100

// CashValue converts a points balance into its displayed currency value,
// rounded to two decimals. Pure function of the balance.
func CashValue(points int64) float64 {
	return math.Round(float64(points)*100/PointsPerUnit) / 100
}
