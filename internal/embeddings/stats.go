package embeddings

import "math"

// Stats summarizes a vector the way the embed command reports it.
type Stats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	L2Norm float64
}

func VectorStats(v []float64) Stats {
	if len(v) == 0 {
		return Stats{}
	}
	var sum, sq float64
	min, max := v[0], v[0]
	for _, x := range v {
		sum += x
		sq += x * x
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	mean := sum / float64(len(v))
	var variance float64
	for _, x := range v {
		d := x - mean
		variance += d * d
	}
	variance /= float64(len(v))
	return Stats{
		Mean:   mean,
		StdDev: math.Sqrt(variance),
		Min:    min,
		Max:    max,
		L2Norm: math.Sqrt(sq),
	}
}
