package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBinSchemeFromString(t *testing.T) {
	t.Parallel()

	scheme, err := NewBinSchemeFromString("eight")
	require.NoError(t, err)
	assert.Equal(t, BinSchemeEight, scheme)

	scheme, err = NewBinSchemeFromString("twelve")
	require.NoError(t, err)
	assert.Equal(t, BinSchemeTwelve, scheme)

	_, err = NewBinSchemeFromString("sixteen")
	assert.Error(t, err)
}

func TestBinScheme_Table_Shapes(t *testing.T) {
	t.Parallel()

	eight := BinSchemeEight.Table()
	require.Len(t, eight, 8)
	assert.Equal(t, 1.0, eight[0].Min)
	assert.True(t, eight[len(eight)-1].Open(), "final bin is open-ended")
	assert.Equal(t, 70.0, eight[len(eight)-1].Min)

	twelve := BinSchemeTwelve.Table()
	require.Len(t, twelve, 12)
	assert.Equal(t, 5.0, twelve[0].Min)
	assert.True(t, twelve[len(twelve)-1].Open())
	assert.Equal(t, 61.0, twelve[len(twelve)-1].Min)
}

func TestBinScheme_Table_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first := BinSchemeEight.Table()
	first[0].Min = 99

	second := BinSchemeEight.Table()
	assert.Equal(t, 1.0, second[0].Min, "callers must not be able to alter the canonical table")
}

func TestSpeedBin_InterpolationWidth(t *testing.T) {
	t.Parallel()

	closed := SpeedBin{Min: 20, Max: 30}
	assert.Equal(t, 10.0, closed.InterpolationWidth())

	open := SpeedBin{Min: 70}
	assert.True(t, open.Open())
	assert.Equal(t, 5.0, open.InterpolationWidth(), "open bin is treated as Min..Min+5")
}
