package main

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the numeric values appended to one table
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes a Summary of the values that parse as floats.
// Empty and non-numeric values are ignored.
func Summarize(values []string) (ret Summary) {
	nums := make([]float64, 0, len(values))
	for _, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		nums = append(nums, f)
	}
	ret.N = len(nums)
	if ret.N == 0 {
		return
	}
	ret.Min = floats.Min(nums)
	ret.Max = floats.Max(nums)
	if ret.N == 1 {
		ret.Mean = nums[0]
		return
	}
	ret.Mean, ret.StdDev = stat.MeanStdDev(nums, nil)
	return
}
