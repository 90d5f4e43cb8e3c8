package attractor

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, -1.3, p.A)
	assert.Equal(t, -1.3, p.B)
	assert.Equal(t, -1.8, p.C)
	assert.Equal(t, -1.9, p.D)
	assert.Equal(t, 0.007, p.SD)
	assert.Equal(t, 0.007, p.S0)
	assert.Zero(t, p.X0)
	assert.Zero(t, p.Y0)
	assert.NoError(t, p.Validate())
}

func TestParams_String(t *testing.T) {
	s := DefaultParams().String()
	assert.Contains(t, s, "a=-1.3")
	assert.Contains(t, s, "d=-1.9")
	assert.Contains(t, s, "start=(0,0)")
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"3", 3, false},
		{" 42 ", 42, false},
		{"100000000", 100_000_000, false},
		{"-1", 0, true},
		{"abc", 0, true},
		{"1e3", 0, true},
		{"2.5", 0, true},
		{"", 0, true},
		{"99999999999999999999999", 0, true},
		{strconv.Itoa(MaxCount + 1), 0, true},
	}
	for _, tt := range tests {
		t.Run(strconv.Quote(tt.in), func(t *testing.T) {
			got, err := ParseCount(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckCount(t *testing.T) {
	assert.NoError(t, CheckCount(0))
	assert.NoError(t, CheckCount(math.MaxInt32))
	assert.ErrorIs(t, CheckCount(-7), ErrInvalidArgument)
	assert.NoError(t, CheckCount(MaxCount))
	assert.ErrorIs(t, CheckCount(MaxCount+1), ErrInvalidArgument)
}

func TestSummarize(t *testing.T) {
	sum, err := Summarize([]float64{-1, 0, 2}, []float64{3, -3, 0})
	require.NoError(t, err)
	assert.Equal(t, Summary{
		Count: 3,
		MinX:  -1, MaxX: 2,
		MinY: -3, MaxY: 3,
		MeanX: 1.0 / 3.0, MeanY: 0,
	}, sum)
	assert.True(t, sum.Contains(3))
	assert.False(t, sum.Contains(2.5))
}

func TestSummarize_Empty(t *testing.T) {
	sum, err := Summarize(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)
	assert.True(t, sum.Contains(0))
}

func TestSummarize_Mismatch(t *testing.T) {
	_, err := Summarize([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
