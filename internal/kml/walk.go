package kml

import (
	"fmt"
	"io"
	"os"

	"github.com/clbanning/mxj/v2"
)

// Parse runs one full pass over raw KML text: deserialize, walk the
// placemarks in document order, extract geometries, and fold them
// into a Summary. Any error aborts the pass; no partial result is
// returned.
func Parse(data []byte) (*Summary, error) {
	root, err := mxj.NewMapXml(data)
	if err != nil {
		return nil, fmt.Errorf("kml: parse: %w", err)
	}

	placemarks, err := documentPlacemarks(root)
	if err != nil {
		return nil, err
	}

	s := newSummary()
	for _, node := range placemarks {
		name, geoms, err := extractPlacemark(node)
		if err != nil {
			return nil, err
		}
		s.addPlacemark(name, geoms)
	}
	return s, nil
}

// ParseReader parses KML from an io.Reader.
func ParseReader(r io.Reader) (*Summary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("kml: read: %w", err)
	}
	return Parse(data)
}

// ParseFile parses a KML file on disk.
func ParseFile(path string) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("kml: open: %w", err)
	}
	defer f.Close()
	return ParseReader(f)
}

// documentPlacemarks locates kml > Document > Placemark in the
// deserialized tree and returns the placemark nodes in document
// order.
func documentPlacemarks(root mxj.Map) ([]any, error) {
	tree := map[string]any(root)
	if inner, ok := tree["kml"].(map[string]any); ok {
		tree = inner
	}
	doc, ok := tree["Document"].(map[string]any)
	if !ok {
		return nil, ErrMissingDocumentRoot
	}
	placemarks := asSequence(doc["Placemark"])
	if len(placemarks) == 0 {
		return nil, ErrMissingPlacemarks
	}
	return placemarks, nil
}

// asSequence normalizes a child node to an ordered sequence. The
// deserializer represents a single child as a bare node and repeated
// children as a slice; both shapes must walk the same way.
func asSequence(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return t
	default:
		return []any{v}
	}
}

// textOf returns the character data of a leaf node. A node with
// attributes keeps its text under "#text".
func textOf(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		if s, ok := t["#text"].(string); ok {
			return s
		}
	}
	return ""
}
