package kml

import (
	"errors"
	"strconv"
	"strings"
)

// parseCoordinate parses one "lon,lat[,alt]" token. The token must
// have at least two comma-separated numeric fields; a non-numeric
// field is a MalformedCoordinateError.
func parseCoordinate(token string) (Coordinate, error) {
	fields := strings.Split(strings.TrimSpace(token), ",")
	if len(fields) < 2 {
		return Coordinate{}, &MalformedCoordinateError{
			Token: token,
			Err:   errors.New("want at least lon,lat"),
		}
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return Coordinate{}, &MalformedCoordinateError{Token: token, Err: err}
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return Coordinate{}, &MalformedCoordinateError{Token: token, Err: err}
	}

	c := Coordinate{Lon: lon, Lat: lat}
	if len(fields) >= 3 && strings.TrimSpace(fields[2]) != "" {
		alt, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return Coordinate{}, &MalformedCoordinateError{Token: token, Err: err}
		}
		c.Alt = alt
	}
	return c, nil
}

// parseCoordinateList splits a coordinates field on whitespace and
// parses every tuple. An empty field yields an empty list.
func parseCoordinateList(text string) ([]Coordinate, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, nil
	}
	coords := make([]Coordinate, 0, len(tokens))
	for _, tok := range tokens {
		c, err := parseCoordinate(tok)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	return coords, nil
}
