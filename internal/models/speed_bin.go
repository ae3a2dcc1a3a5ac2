package models

import "fmt"

// SpeedBin is one bin of a fixed, ordered speed-distribution table.
// Bins are contiguous and non-overlapping; the final bin of a table is
// open-ended (Max == 0) and catches every speed at or above its Min.
type SpeedBin struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max,omitempty"` // 0 = open-ended final bin
	Label string  `json:"label"`
}

// openBinInterpolationWidth is the width assumed for the open-ended final
// bin when interpolating a percentile position inside it.
const openBinInterpolationWidth = 5

// Open reports whether the bin is the open-ended final bin of its table.
func (b SpeedBin) Open() bool {
	return b.Max == 0
}

// InterpolationWidth returns the bin width used for percentile
// interpolation. The open final bin is treated as Min..Min+5.
func (b SpeedBin) InterpolationWidth() float64 {
	if b.Open() {
		return openBinInterpolationWidth
	}
	return b.Max - b.Min
}

// BinScheme selects one of the two canonical speed-bin tables. Downstream
// consumers assume these exact boundaries; callers must not alter them.
type BinScheme string

const (
	BinSchemeEight  BinScheme = "eight"
	BinSchemeTwelve BinScheme = "twelve"
)

func NewBinSchemeFromString(s string) (BinScheme, error) {
	switch BinScheme(s) {
	case BinSchemeEight:
		return BinSchemeEight, nil
	case BinSchemeTwelve:
		return BinSchemeTwelve, nil
	}
	return "", fmt.Errorf("invalid bin scheme: %q", s)
}

// Table returns a fresh copy of the scheme's canonical bin table.
func (s BinScheme) Table() []SpeedBin {
	switch s {
	case BinSchemeEight:
		return eightBinTable()
	case BinSchemeTwelve:
		return twelveBinTable()
	}
	panic(fmt.Sprintf("invalid BinScheme: %q", s))
}

// EightBinTable is the coarse table: width-10 bins from 1 to 70, then open.
func EightBinTable() []SpeedBin { return eightBinTable() }

func eightBinTable() []SpeedBin {
	return []SpeedBin{
		{Min: 1, Max: 10, Label: "1-10"},
		{Min: 10, Max: 20, Label: "10-20"},
		{Min: 20, Max: 30, Label: "20-30"},
		{Min: 30, Max: 40, Label: "30-40"},
		{Min: 40, Max: 50, Label: "40-50"},
		{Min: 50, Max: 60, Label: "50-60"},
		{Min: 60, Max: 70, Label: "60-70"},
		{Min: 70, Label: "70+"},
	}
}

// TwelveBinTable is the fine table: a narrower 5-10 first bin, then width-5
// bins offset by one unit, then open.
func TwelveBinTable() []SpeedBin { return twelveBinTable() }

func twelveBinTable() []SpeedBin {
	return []SpeedBin{
		{Min: 5, Max: 10, Label: "5-10"},
		{Min: 11, Max: 15, Label: "11-15"},
		{Min: 16, Max: 20, Label: "16-20"},
		{Min: 21, Max: 25, Label: "21-25"},
		{Min: 26, Max: 30, Label: "26-30"},
		{Min: 31, Max: 35, Label: "31-35"},
		{Min: 36, Max: 40, Label: "36-40"},
		{Min: 41, Max: 45, Label: "41-45"},
		{Min: 46, Max: 50, Label: "46-50"},
		{Min: 51, Max: 55, Label: "51-55"},
		{Min: 56, Max: 60, Label: "56-60"},
		{Min: 61, Label: "61+"},
	}
}
