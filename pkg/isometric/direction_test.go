package isometric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionRotationGroupLaws(t *testing.T) {
	for _, d := range Directions {
		for k := -7; k <= 7; k++ {
			assert.Equal(t, d, d.RotatedCW(k).RotatedCCW(k), "cw/ccw %v by %d", d, k)
			assert.Equal(t, d, d.RotatedCCW(k).RotatedCW(k), "ccw/cw %v by %d", d, k)
			assert.True(t, d.RotatedCW(k).Valid())
		}
		assert.Equal(t, d, d.RotatedCW(3))
		assert.Equal(t, d, d.RotatedCCW(3))
	}
}

func TestDirectionRotatedCW(t *testing.T) {
	assert.Equal(t, Secondary, Primary.RotatedCW(1))
	assert.Equal(t, Tertiary, Primary.RotatedCW(2))
	assert.Equal(t, Primary, Tertiary.RotatedCW(1))
	assert.Equal(t, Tertiary, Primary.RotatedCCW(1))
	assert.Equal(t, Secondary, Primary.RotatedCW(-2))
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{Primary, "B"},
		{Secondary, "S"},
		{Tertiary, "D"},
		{Direction(5), "Direction(5)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.dir.String())
	}
	assert.False(t, Direction(-1).Valid())
	assert.False(t, Direction(3).Valid())
}
