package stats

import (
	"math"

	"github.com/ecopia-map/quadtree_compressor/internal/data"
)

const (
	// Number of intensity levels per channel
	Levels = 256

	// Number of channels of a histogram: red, green, blue
	Channels = 3
)

// Luma weights applied to the per channel standard deviations
const (
	redWeight   = 0.2989
	greenWeight = 0.5870
	blueWeight  = 0.1140
)

// Histogram holds the pixel counts per intensity level of a region, red
// levels first, then green, then blue.
type Histogram [Channels * Levels]int

// Channel returns the 256 counts of channel c (0 red, 1 green, 2 blue)
func (h *Histogram) Channel(c int) []int {
	return h[c*Levels : (c+1)*Levels]
}

// Total returns the number of pixels counted in the red channel, which is
// the number of pixels of the sampled region
func (h *Histogram) Total() int {
	total := 0
	for _, count := range h.Channel(0) {
		total += count
	}
	return total
}

// Add counts one pixel of the given color
func (h *Histogram) Add(r, g, b uint8) {
	h[int(r)]++
	h[Levels+int(g)]++
	h[2*Levels+int(b)]++
}

// WeightedAverage returns the mean intensity of one channel histogram and its
// standard deviation. An empty histogram yields zero for both.
func WeightedAverage(bins []int) (value float64, err float64) {
	total := 0
	weighted := 0
	for i, count := range bins {
		total += count
		weighted += i * count
	}
	if total == 0 {
		return 0, 0
	}

	value = float64(weighted) / float64(total)

	var squares float64
	for i, count := range bins {
		d := value - float64(i)
		squares += float64(count) * d * d
	}
	err = math.Sqrt(squares / float64(total))

	return value, err
}

// ColorFromHistogram returns the average color of a region and its luma
// weighted error
func ColorFromHistogram(hist *Histogram) (data.Color, float64) {
	red, redErr := WeightedAverage(hist.Channel(0))
	green, greenErr := WeightedAverage(hist.Channel(1))
	blue, blueErr := WeightedAverage(hist.Channel(2))

	color := data.Color{
		R: int(red),
		G: int(green),
		B: int(blue),
	}
	err := redErr*redWeight + greenErr*greenWeight + blueErr*blueWeight

	return color, err
}
