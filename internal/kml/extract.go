package kml

// extractPlacemark classifies one placemark node and returns its name
// and geometries. The three shapes are not mutually exclusive: a
// composite placemark carrying both a Point and a LineString yields
// both. A placemark with none of them yields an empty slice, which
// still counts as a visited placemark.
func extractPlacemark(node any) (string, []Geometry, error) {
	pm, ok := node.(map[string]any)
	if !ok {
		// <Placemark/> with no children deserializes to a bare value.
		return "", nil, nil
	}
	name := textOf(pm["name"])

	var geoms []Geometry

	if pt, ok := pm["Point"].(map[string]any); ok {
		coords, err := parseCoordinateList(textOf(pt["coordinates"]))
		if err != nil {
			return "", nil, err
		}
		if len(coords) > 0 {
			geoms = append(geoms, PointGeometry{Coordinate: coords[0]})
		}
	}

	if ls, ok := pm["LineString"].(map[string]any); ok {
		coords, err := parseCoordinateList(textOf(ls["coordinates"]))
		if err != nil {
			return "", nil, err
		}
		geoms = append(geoms, LineStringGeometry{Coordinates: coords})
	}

	if mg, ok := pm["MultiGeometry"].(map[string]any); ok {
		var lines []LineStringGeometry
		for _, child := range asSequence(mg["LineString"]) {
			ls, ok := child.(map[string]any)
			if !ok {
				continue
			}
			coords, err := parseCoordinateList(textOf(ls["coordinates"]))
			if err != nil {
				return "", nil, err
			}
			lines = append(lines, LineStringGeometry{Coordinates: coords})
		}
		if len(lines) > 0 {
			geoms = append(geoms, MultiLineGeometry{Lines: lines})
		}
	}

	return name, geoms, nil
}
