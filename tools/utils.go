package tools

import (
	"encoding/json"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

func FmtJSONString(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "marshal data fail"
	}
	return string(data)
}

const (
	FloatMin = 0.000001
)

func IsFloatEqual(f1, f2 float64) bool {
	return math.Abs(f1-f2) < FloatMin
}

// Elapsed seconds with two decimals, e.g. "1.25"
func FormatSeconds(d time.Duration) string {
	return decimal.NewFromInt(d.Nanoseconds()).Shift(-9).StringFixed(2)
}

// part/whole with two decimals, "0.00" when whole is zero
func FormatRatio(part int64, whole int64) string {
	if whole == 0 {
		return decimal.Zero.StringFixed(2)
	}
	return decimal.NewFromInt(part).DivRound(decimal.NewFromInt(whole), 4).StringFixed(2)
}
