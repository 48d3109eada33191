package handlers

import (
	"fmt"
	"testing"

	"github.com/chachabrian/rentacar-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLocation(t *testing.T) {
	r, db := setupTestRouter(t)

	w := performRequest(r, "POST", "/api/locations", map[string]interface{}{
		"address":     "Entebbe Airport",
		"coordinates": "0.0424,32.4435",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var location models.Location
	require.NoError(t, db.First(&location).Error)
	assert.Equal(t, "Entebbe Airport", location.Address)
	assert.True(t, location.Available, "available defaults to true")
}

func TestCreateLocationInvalidCoordinates(t *testing.T) {
	r, db := setupTestRouter(t)

	cases := []string{"not-coordinates", "1.0", "91.0,10.0", "1.0,181.0"}
	for _, coords := range cases {
		w := performRequest(r, "POST", "/api/locations", map[string]interface{}{
			"address":     "Somewhere",
			"coordinates": coords,
		})
		assert.Equal(t, 400, w.Code, "coordinates %q should be rejected", coords)
	}

	var count int64
	db.Model(&models.Location{}).Count(&count)
	assert.Zero(t, count)
}

func TestGetLocations(t *testing.T) {
	r, db := setupTestRouter(t)
	seedLocation(t, db, "Branch A")
	seedLocation(t, db, "Branch B")

	w := performRequest(r, "GET", "/api/locations", nil)
	require.Equal(t, 200, w.Code)

	var locations []models.Location
	decodeBody(t, w, &locations)
	assert.Len(t, locations, 2)
}

func TestGetLocationByID(t *testing.T) {
	r, db := setupTestRouter(t)
	location := seedLocation(t, db, "Branch A")

	w := performRequest(r, "GET", fmt.Sprintf("/api/locations/%d", location.ID), nil)
	require.Equal(t, 200, w.Code)

	var fetched models.Location
	decodeBody(t, w, &fetched)
	assert.Equal(t, "Branch A", fetched.Address)
}

func TestGetLocationByIDNotFound(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := performRequest(r, "GET", "/api/locations/9999", nil)
	assert.Equal(t, 404, w.Code)
}
