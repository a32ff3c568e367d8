package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"kmlmap/internal/kml"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; will be refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				text := strings.TrimSpace(m.ta.Value())
				if text == "" {
					m.status = "paste: empty"
					return m, nil
				}
				s, err := kml.Parse([]byte(text))
				if err != nil {
					m.clearSummary()
					m.status = "kml error: " + err.Error()
					m.pasteMode = false
					m.ta.Blur()
					return m, nil
				}
				m.selPath = ""
				m.setSummary(s)
				m.status = "extracted pasted KML  " + summaryLine(s)
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		// Overlay table focused: let it handle scrolling keys first
		if m.tblMode != tableNone {
			switch msg.String() {
			case "up", "down", "pgup", "pgdown":
				var cmd tea.Cmd
				m.tbl, cmd = m.tbl.Update(msg)
				return m, cmd
			}
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.showPoints = !m.showPoints
			m.status = fmt.Sprintf("points: %v", m.showPoints)
		case "2":
			m.showLines = !m.showLines
			m.status = fmt.Sprintf("lines: %v", m.showLines)
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "c":
			if m.tblMode == tableCounts {
				m.tblMode = tableNone
			} else {
				m.tblMode = tableCounts
				m.refreshTable()
			}
		case "d":
			if m.tblMode == tableDetails {
				m.tblMode = tableNone
			} else {
				m.tblMode = tableDetails
				m.refreshTable()
			}
		case "i":
			lon, lat, ok := m.inspectNearest()
			if ok {
				name := filepath.Base(m.selPath)
				if name == "" || name == "." {
					name = "<pasted>"
				}
				meta := []string{
					fmt.Sprintf("name: %s", name),
					fmt.Sprintf("bbox: [%.5f, %.5f, %.5f, %.5f]", m.bbox.minLon, m.bbox.minLat, m.bbox.maxLon, m.bbox.maxLat),
				}
				if m.summary != nil {
					meta = append(meta,
						summaryLine(m.summary),
						fmt.Sprintf("elements: %d", len(m.summary.Elements)))
				}
				meta = append(meta, fmt.Sprintf("nearest: lon=%.6f lat=%.6f", lon, lat))
				m.inspectPopup = strings.Join(meta, "\n")
				m.status = "inspect popup"
			} else {
				m.inspectPopup = "no feature nearby"
				m.status = m.inspectPopup
			}
		case "esc":
			m.inspectPopup = ""
			m.tblMode = tableNone
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		// track hover over map area; geometry must match the View layout
		sidebarWidth := 0
		if m.showSidebar {
			sidebarWidth = 28
		}
		headerHeight := 1
		footerHeight := 2
		contentHeight := m.height - headerHeight - footerHeight
		if contentHeight < 4 {
			contentHeight = 4
		}
		contentWidth := max(10, m.width)

		if m.showSidebar {
			m.l.SetSize(28-2, contentHeight-2)
		}

		mapWidth := contentWidth - sidebarWidth - 1
		if mapWidth < 10 {
			mapWidth = 10
		}
		mapHeight := contentHeight
		mapOriginX := sidebarWidth
		if m.showSidebar {
			mapOriginX++
		}
		mapOriginY := headerHeight
		cx, cy := msg.X, msg.Y
		if cx >= mapOriginX && cx < mapOriginX+mapWidth && cy >= mapOriginY && cy < mapOriginY+mapHeight {
			m.hovering = true
			m.hoverCellX = cx - mapOriginX
			m.hoverCellY = cy - mapOriginY
			if lon, lat, ok := m.cellToLonLat(m.hoverCellX, m.hoverCellY, mapWidth, mapHeight); ok {
				m.hoverHasGeo = true
				m.hoverLon = lon
				m.hoverLat = lat
			} else {
				m.hoverHasGeo = false
			}
			// nearest vertex in micro coords, across markers and paths
			hxMic := m.hoverCellX * 2
			hyMic := m.hoverCellY * 4
			best := 1<<31 - 1
			bx, by := hxMic, hyMic
			consider := func(p [2]float64) {
				mx, my, ok := m.screenXYMicro(p[0], p[1], mapWidth, mapHeight)
				if !ok {
					return
				}
				dx := mx - hxMic
				dy := my - hyMic
				d := dx*dx + dy*dy
				if d < best {
					best = d
					bx, by = mx, my
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
			m.hoverMicX, m.hoverMicY = bx, by
		} else {
			m.hovering = false
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}
