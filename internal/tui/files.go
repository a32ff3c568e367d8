package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"kmlmap/internal/kml"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(name)) != ".kml" {
			continue
		}
		items = append(items, fileItem{title: name, desc: ".kml", path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no .kml files in current directory"
	}
}

// loadPath runs extraction on a file and installs the result.
func (m *Model) loadPath(p string) {
	s, err := kml.ParseFile(p)
	if err != nil {
		m.clearSummary()
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.setSummary(s)
	m.status = "loaded: " + filepath.Base(p) + "  " + summaryLine(s)
	if m.tblMode != tableNone {
		m.refreshTable()
	}
}

func summaryLine(s *kml.Summary) string {
	return fmt.Sprintf("placemarks=%d pts=%d ls=%d mls=%d len=%.2fm",
		s.Counts[kml.TypePlacemark],
		s.Counts[kml.TypePoint],
		s.Counts[kml.TypeLineString],
		s.Counts[kml.TypeMultiLineString],
		s.TotalLength())
}
