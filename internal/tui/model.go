package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"kmlmap/internal/kml"
)

// tableMode selects which overlay table, if any, sits on the map area.
type tableMode int

const (
	tableNone tableMode = iota
	tableCounts
	tableDetails
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Extraction results and their render-ready projection
	summary *kml.Summary
	points  [][2]float64   // lon, lat
	lines   [][][2]float64 // lon, lat paths
	bbox    bbox
	hasData bool

	// last rendered map size (for inspect)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showPoints bool
	showLines  bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64

	// overlay table
	tblMode tableMode
	tbl     table.Model
}

type bbox struct {
	minLon, minLat float64
	maxLon, maxLat float64
}

func New() Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "kmlmap ready",
		showPoints:  true,
		showLines:   true,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "KML files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste raw KML here. Press Enter to extract; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// overlay table setup (columns depend on the mode)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(path string) Model {
	m := New()
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }
