package kml

import "kmlmap/internal/geo"

// Summary is the complete result of one pass: type counts, one detail
// record per line feature, and the render-ready element list. All
// three collections preserve document order.
type Summary struct {
	Counts   ElementCounts
	Records  []DetailedRecord
	Elements []MapElement
}

func newSummary() *Summary {
	return &Summary{Counts: newElementCounts()}
}

// addPlacemark folds one placemark's geometries into the summary.
// The placemark count advances whether or not geometries were found.
func (s *Summary) addPlacemark(name string, geoms []Geometry) {
	s.Counts[TypePlacemark]++
	for _, g := range geoms {
		switch g := g.(type) {
		case PointGeometry:
			s.Counts[TypePoint]++
			s.Elements = append(s.Elements, MapElement{
				Name:     name,
				Type:     TypePoint,
				Position: g.Coordinate,
			})
		case LineStringGeometry:
			s.addLine(name, TypeLineString, g.Coordinates)
		case MultiLineGeometry:
			for _, line := range g.Lines {
				s.addLine(name, TypeMultiLineString, line.Coordinates)
			}
		}
	}
}

func (s *Summary) addLine(name string, typ GeometryType, coords []Coordinate) {
	s.Counts[typ]++
	s.Records = append(s.Records, DetailedRecord{
		Name:        name,
		Type:        typ,
		Length:      lineLength(coords),
		Coordinates: coords,
	})
	s.Elements = append(s.Elements, MapElement{
		Name: name,
		Type: typ,
		Path: coords,
	})
}

// lineLength sums consecutive pairwise geodesic distances. Fewer than
// two coordinates measure zero.
func lineLength(coords []Coordinate) float64 {
	var total float64
	for i := 1; i < len(coords); i++ {
		a, b := coords[i-1], coords[i]
		total += geo.Haversine(a.Lon, a.Lat, b.Lon, b.Lat)
	}
	return total
}

// TotalLength is the sum of all detail-record lengths in meters.
func (s *Summary) TotalLength() float64 {
	var total float64
	for _, r := range s.Records {
		total += r.Length
	}
	return total
}

// BBox returns the bounding box over every element coordinate as
// minLon, minLat, maxLon, maxLat. ok is false when the summary holds
// no coordinates.
func (s *Summary) BBox() (minLon, minLat, maxLon, maxLat float64, ok bool) {
	grow := func(c Coordinate) {
		if !ok {
			minLon, minLat, maxLon, maxLat = c.Lon, c.Lat, c.Lon, c.Lat
			ok = true
			return
		}
		if c.Lon < minLon {
			minLon = c.Lon
		}
		if c.Lat < minLat {
			minLat = c.Lat
		}
		if c.Lon > maxLon {
			maxLon = c.Lon
		}
		if c.Lat > maxLat {
			maxLat = c.Lat
		}
	}
	for _, el := range s.Elements {
		switch el.Type {
		case TypePoint:
			grow(el.Position)
		default:
			for _, c := range el.Path {
				grow(c)
			}
		}
	}
	return
}
