package kml

// Coordinate is a parsed position in degrees, longitude first.
// Altitude is carried when the source token has a third field but
// never enters distance math.
type Coordinate struct {
	Lon float64
	Lat float64
	Alt float64
}

// GeometryType labels the kinds of shapes found in a document. The
// labels double as the keys of ElementCounts.
type GeometryType string

const (
	TypePoint           GeometryType = "Point"
	TypeLineString      GeometryType = "LineString"
	TypeMultiLineString GeometryType = "MultiLineString"
	TypePlacemark       GeometryType = "Placemark"
)

// Geometry is the closed set of shapes a placemark can carry.
type Geometry interface {
	geometryType() GeometryType
}

type PointGeometry struct {
	Coordinate Coordinate
}

type LineStringGeometry struct {
	Coordinates []Coordinate
}

// MultiLineGeometry groups the LineStrings nested inside one
// MultiGeometry element. Each member is counted and detailed
// independently under the MultiLineString label.
type MultiLineGeometry struct {
	Lines []LineStringGeometry
}

func (PointGeometry) geometryType() GeometryType      { return TypePoint }
func (LineStringGeometry) geometryType() GeometryType { return TypeLineString }
func (MultiLineGeometry) geometryType() GeometryType  { return TypeMultiLineString }

// ElementCounts maps geometry-type labels to occurrence counts. All
// four keys are present from the start of a pass.
type ElementCounts map[GeometryType]int

func newElementCounts() ElementCounts {
	return ElementCounts{
		TypePoint:           0,
		TypeLineString:      0,
		TypeMultiLineString: 0,
		TypePlacemark:       0,
	}
}

// DetailedRecord describes one line feature: its label, geodesic
// length in meters, and the coordinates it was measured over.
type DetailedRecord struct {
	Name        string
	Type        GeometryType
	Length      float64
	Coordinates []Coordinate
}

// MapElement is one render-ready shape for the map collaborator.
// Position is set for points, Path for line types; coordinates are
// always longitude-first (adapt at the rendering boundary if a
// collaborator wants the other order).
type MapElement struct {
	Name     string
	Type     GeometryType
	Position Coordinate
	Path     []Coordinate
}
