package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cellToLonLat converts a map cell coordinate back to lon/lat using bbox, zoom, and pan.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	if !m.hasData || !(m.bbox.maxLon > m.bbox.minLon && m.bbox.maxLat > m.bbox.minLat) {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	lon := m.bbox.minLon + nx*(m.bbox.maxLon-m.bbox.minLon)
	lat := m.bbox.minLat + ny*(m.bbox.maxLat-m.bbox.minLat)
	return lon, lat, true
}

func (m Model) renderAsciiMap(w, h int) string {
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		lines[y] = strings.Repeat(" ", w)
	}
	br := newBrailleBuf(w, h)

	// Point markers
	if m.showPoints {
		for _, p := range m.points {
			mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
			if !ok {
				continue
			}
			br.setPixel(mx, my)
		}
	}

	// Line and multi-line paths
	if m.showLines {
		for _, ls := range m.lines {
			var prev *[2]int
			for _, p := range ls {
				mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
				if !ok {
					continue
				}
				if prev != nil {
					br.drawLineMicro(prev[0], prev[1], mx, my)
				}
				prev = &[2]int{mx, my}
			}
		}
	}

	// Composite braille overlay onto the blank canvas
	braLines := br.toLines()
	for y := 0; y < h && y < len(braLines); y++ {
		if len(braLines[y]) == 0 {
			continue
		}
		base := []rune(lines[y])
		over := []rune(braLines[y])
		for x := 0; x < len(base) && x < len(over); x++ {
			if over[x] != ' ' {
				base[x] = over[x]
			}
		}
		lines[y] = string(base)
	}

	// Hover highlight: mark the nearest vertex cell
	if m.hovering {
		cx := m.hoverMicX / 2
		cy := m.hoverMicY / 4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				circle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("◯")
				pre := string(r[:cx])
				post := string(r[cx+1:])
				lines[cy] = pre + circle + post
			}
		}
	}
	return strings.Join(lines, "\n")
}

// screenXYMicro maps lon/lat into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(lon, lat float64, w, h int) (int, int, bool) {
	if !m.hasData || !(m.bbox.maxLon > m.bbox.minLon && m.bbox.maxLat > m.bbox.minLat) {
		return 0, 0, false
	}
	nx := (lon - m.bbox.minLon) / (m.bbox.maxLon - m.bbox.minLon)
	ny := (lat - m.bbox.minLat) / (m.bbox.maxLat - m.bbox.minLat)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// screenXY maps lon/lat to current screen integer coordinates considering zoom and pan.
func (m Model) screenXY(lon, lat float64, w, h int) (int, int, bool) {
	if !m.hasData || !(m.bbox.maxLon > m.bbox.minLon && m.bbox.maxLat > m.bbox.minLat) {
		return 0, 0, false
	}
	nx := (lon - m.bbox.minLon) / (m.bbox.maxLon - m.bbox.minLon)
	ny := (lat - m.bbox.minLat) / (m.bbox.maxLat - m.bbox.minLat)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w-1)) + m.offsetX
	sy := int((1.0-zy)*float64(h-1)) + m.offsetY
	return sx, sy, true
}

// inspectNearest finds the vertex closest to the viewport center and returns lon/lat.
func (m Model) inspectNearest() (lon, lat float64, ok bool) {
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	cx, cy := w/2, h/2
	bestD := 1<<31 - 1
	var best [2]float64
	consider := func(p [2]float64) {
		sx, sy, ok2 := m.screenXY(p[0], p[1], w, h)
		if !ok2 {
			return
		}
		dx := sx - cx
		dy := sy - cy
		d := dx*dx + dy*dy
		if d < bestD {
			bestD = d
			best = p
		}
	}
	for _, p := range m.points {
		consider(p)
	}
	for _, ls := range m.lines {
		for _, p := range ls {
			consider(p)
		}
	}
	if bestD == 1<<31-1 {
		return 0, 0, false
	}
	return best[0], best[1], true
}
