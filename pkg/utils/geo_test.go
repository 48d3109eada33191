package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates(t *testing.T) {
	lat, lng, err := ParseCoordinates("0.3476,32.5825")
	require.NoError(t, err)
	assert.InDelta(t, 0.3476, lat, 1e-9)
	assert.InDelta(t, 32.5825, lng, 1e-9)
}

func TestParseCoordinatesWithSpaces(t *testing.T) {
	lat, lng, err := ParseCoordinates(" -1.2921 , 36.8219 ")
	require.NoError(t, err)
	assert.InDelta(t, -1.2921, lat, 1e-9)
	assert.InDelta(t, 36.8219, lng, 1e-9)
}

func TestParseCoordinatesInvalid(t *testing.T) {
	cases := []string{
		"",
		"1.0",
		"1.0,2.0,3.0",
		"abc,1.0",
		"1.0,def",
		"90.5,0",
		"-90.5,0",
		"0,180.5",
		"0,-180.5",
	}

	for _, input := range cases {
		_, _, err := ParseCoordinates(input)
		assert.Error(t, err, "input %q should be rejected", input)
	}
}
