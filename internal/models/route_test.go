package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute_EmptyJSON(t *testing.T) {
	assert.Equal(t, "[]", NewRoute().JSON())
	assert.Zero(t, NewRoute().Len())
}

func TestRoute_JSON(t *testing.T) {
	r := NewRoute(Position{Lat: -36.8485, Lng: 174.7633})
	r.Append(Position{Lat: -41.2865, Lng: 174.7762})

	got := r.JSON()

	assert.Equal(t, `[{"lat": -36.848500, "lng": 174.763300}, {"lat": -41.286500, "lng": 174.776200}]`, got)
	var decoded []Position
	require.NoError(t, json.Unmarshal([]byte(got), &decoded))
	assert.Equal(t, r.Positions(), decoded)
}

func TestRoute_AppendKeepsOrder(t *testing.T) {
	r := NewRoute()
	r.Append(Position{Lat: 1, Lng: 2})
	r.Append(Position{Lat: 3, Lng: 4})

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []Position{{Lat: 1, Lng: 2}, {Lat: 3, Lng: 4}}, r.Positions())
}

func TestRoute_Clear(t *testing.T) {
	r := NewRoute(Position{Lat: 1, Lng: 2}, Position{Lat: 3, Lng: 4})

	r.Clear()

	assert.Zero(t, r.Len())
	assert.Empty(t, r.Positions())
	assert.Equal(t, "[]", r.JSON())

	r.Append(Position{Lat: 5, Lng: 6})
	assert.Equal(t, []Position{{Lat: 5, Lng: 6}}, r.Positions())
}

func TestRoute_PositionsReturnsCopy(t *testing.T) {
	r := NewRoute(Position{Lat: 1, Lng: 2})

	positions := r.Positions()
	positions[0].Lat = 99

	assert.Equal(t, 1.0, r.Positions()[0].Lat)
}

func TestParseSelection(t *testing.T) {
	indices, err := ParseSelection(" 0, 2,5 ")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 5}, indices)

	indices, err = ParseSelection("")
	require.NoError(t, err)
	assert.Empty(t, indices)

	_, err = ParseSelection("1,x")
	assert.Error(t, err)
}

func TestCandidateMessage_MarshalJSON(t *testing.T) {
	msg := CandidateMessage{Points: []Position{{Lat: 1.5, Lng: 2.5}, {Lat: -3, Lng: 4}}}

	raw, err := json.Marshal(msg)

	require.NoError(t, err)
	assert.JSONEq(t, `[1.5, 2.5, -3, 4]`, string(raw))
}

func TestDomains(t *testing.T) {
	assert.True(t, HasDomain("weatherB"))
	assert.False(t, HasDomain("colour"))
	assert.True(t, InDomain("weatherB", "None"))
	assert.False(t, InDomain("weatherA", "None"))
	assert.False(t, InDomain("colour", "red"))
}
