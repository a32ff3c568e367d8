package tui

import "kmlmap/internal/kml"

// setSummary installs a fresh extraction result, replacing whatever
// was shown before, and projects it into the lon-first buffers the
// canvas draws from. This is the rendering boundary: a collaborator
// wanting lat-first order would swap here and nowhere else.
func (m *Model) setSummary(s *kml.Summary) {
	m.summary = s
	m.points = nil
	m.lines = nil
	m.hasData = false
	if s == nil {
		return
	}
	for _, el := range s.Elements {
		switch el.Type {
		case kml.TypePoint:
			m.points = append(m.points, [2]float64{el.Position.Lon, el.Position.Lat})
		default:
			path := make([][2]float64, 0, len(el.Path))
			for _, c := range el.Path {
				path = append(path, [2]float64{c.Lon, c.Lat})
			}
			m.lines = append(m.lines, path)
		}
	}
	minLon, minLat, maxLon, maxLat, ok := s.BBox()
	if ok {
		m.bbox = bbox{minLon: minLon, minLat: minLat, maxLon: maxLon, maxLat: maxLat}
		m.hasData = true
	}
	m.showPoints = len(m.points) > 0
	m.showLines = len(m.lines) > 0
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
}

// clearSummary drops the current result set. Used on extraction
// failure so stale counts never sit next to an error message.
func (m *Model) clearSummary() {
	m.setSummary(nil)
	m.selPath = ""
	if m.tblMode != tableNone {
		m.tblMode = tableNone
	}
}
