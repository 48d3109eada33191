package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCoordinates parses a "lat,lng" string as stored on Location records.
func ParseCoordinates(coordinates string) (lat, lng float64, err error) {
	parts := strings.Split(coordinates, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("coordinates must be in \"lat,lng\" format")
	}

	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude: %v", err)
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude: %v", err)
	}

	if lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("latitude out of range")
	}
	if lng < -180 || lng > 180 {
		return 0, 0, fmt.Errorf("longitude out of range")
	}

	return lat, lng, nil
}
