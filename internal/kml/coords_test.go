package kml

import (
	"testing"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		token   string
		want    Coordinate
		wantErr bool
	}{
		{"-0.09,51.505", Coordinate{Lon: -0.09, Lat: 51.505}, false},
		{"2.3522,48.8566,35", Coordinate{Lon: 2.3522, Lat: 48.8566, Alt: 35}, false},
		{"  -0.1,51.5  ", Coordinate{Lon: -0.1, Lat: 51.5}, false},
		{"0,0", Coordinate{}, false},
		{"-0.09, 51.505", Coordinate{Lon: -0.09, Lat: 51.505}, false},
		{"abc,51.5", Coordinate{}, true},
		{"-0.09,north", Coordinate{}, true},
		{"-0.09,51.505,low", Coordinate{}, true},
		{"51.505", Coordinate{}, true},
		{"", Coordinate{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.token, func(t *testing.T) {
			got, err := parseCoordinate(tc.token)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				if !IsMalformedCoordinate(err) {
					t.Fatalf("expected MalformedCoordinateError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("want %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestParseCoordinateList(t *testing.T) {
	coords, err := parseCoordinateList(" -0.1,51.5 \n\t -0.1,51.51 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(coords) != 2 {
		t.Fatalf("expected 2 coordinates, got %d", len(coords))
	}
	if coords[0].Lon != -0.1 || coords[1].Lat != 51.51 {
		t.Fatalf("wrong coordinates: %+v", coords)
	}

	empty, err := parseCoordinateList("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty list, got %+v", empty)
	}

	if _, err := parseCoordinateList("-0.1,51.5 bogus,51.51"); !IsMalformedCoordinate(err) {
		t.Fatalf("expected MalformedCoordinateError, got %v", err)
	}
}
