package kml

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wrap(placemarks string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
<Document>` + placemarks + `</Document>
</kml>`
}

func TestParseSinglePoint(t *testing.T) {
	s, err := Parse([]byte(wrap(`
		<Placemark>
			<name>Marker</name>
			<Point><coordinates>-0.09,51.505</coordinates></Point>
		</Placemark>`)))
	require.NoError(t, err)

	assert.Equal(t, ElementCounts{
		TypePoint:           1,
		TypeLineString:      0,
		TypeMultiLineString: 0,
		TypePlacemark:       1,
	}, s.Counts)
	require.Len(t, s.Elements, 1)
	assert.Equal(t, TypePoint, s.Elements[0].Type)
	assert.Equal(t, "Marker", s.Elements[0].Name)
	assert.Equal(t, Coordinate{Lon: -0.09, Lat: 51.505}, s.Elements[0].Position)
	assert.Empty(t, s.Records)
}

func TestParseLineStringLength(t *testing.T) {
	s, err := Parse([]byte(wrap(`
		<Placemark>
			<name>Route</name>
			<LineString><coordinates>-0.1,51.5 -0.1,51.51</coordinates></LineString>
		</Placemark>`)))
	require.NoError(t, err)

	assert.Equal(t, 1, s.Counts[TypeLineString])
	require.Len(t, s.Records, 1)
	rec := s.Records[0]
	assert.Equal(t, TypeLineString, rec.Type)
	assert.Len(t, rec.Coordinates, 2)
	// 0.01 degrees of latitude is about 1113 m.
	assert.InEpsilon(t, 1113.0, rec.Length, 0.01)
	assert.InDelta(t, rec.Length, s.TotalLength(), 1e-9)
}

func TestParseMultiGeometry(t *testing.T) {
	s, err := Parse([]byte(wrap(`
		<Placemark>
			<name>Two legs</name>
			<MultiGeometry>
				<LineString><coordinates>-0.1,51.5 -0.1,51.51</coordinates></LineString>
				<LineString><coordinates>-0.11,51.5 -0.12,51.5</coordinates></LineString>
			</MultiGeometry>
		</Placemark>`)))
	require.NoError(t, err)

	assert.Equal(t, 2, s.Counts[TypeMultiLineString])
	assert.Equal(t, 1, s.Counts[TypePlacemark])
	require.Len(t, s.Records, 2)
	require.Len(t, s.Elements, 2)
	for _, rec := range s.Records {
		assert.Equal(t, TypeMultiLineString, rec.Type)
		assert.Greater(t, rec.Length, 0.0)
	}
	// document order inside the MultiGeometry is preserved
	assert.Equal(t, -0.1, s.Records[0].Coordinates[0].Lon)
	assert.Equal(t, -0.11, s.Records[1].Coordinates[0].Lon)
}

// A MultiGeometry with one nested LineString deserializes as a bare
// node rather than a sequence; it must still be walked.
func TestParseMultiGeometrySingleLine(t *testing.T) {
	s, err := Parse([]byte(wrap(`
		<Placemark>
			<MultiGeometry>
				<LineString><coordinates>-0.1,51.5 -0.1,51.51</coordinates></LineString>
			</MultiGeometry>
		</Placemark>`)))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Counts[TypeMultiLineString])
	require.Len(t, s.Records, 1)
}

// A document with exactly one Placemark is a bare node in the tree,
// not a sequence of one.
func TestParseSinglePlacemarkNormalization(t *testing.T) {
	s, err := Parse([]byte(wrap(`
		<Placemark><Point><coordinates>1,2</coordinates></Point></Placemark>`)))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Counts[TypePlacemark])
	assert.Equal(t, 1, s.Counts[TypePoint])
}

func TestParseCompositePlacemark(t *testing.T) {
	s, err := Parse([]byte(wrap(`
		<Placemark>
			<name>Both</name>
			<Point><coordinates>-0.09,51.505</coordinates></Point>
			<LineString><coordinates>-0.1,51.5 -0.1,51.51</coordinates></LineString>
		</Placemark>`)))
	require.NoError(t, err)

	assert.Equal(t, 1, s.Counts[TypePoint])
	assert.Equal(t, 1, s.Counts[TypeLineString])
	assert.Equal(t, 1, s.Counts[TypePlacemark])
	assert.Len(t, s.Elements, 2)
}

func TestParsePlacemarkWithoutGeometry(t *testing.T) {
	s, err := Parse([]byte(wrap(`
		<Placemark><name>Just a name</name></Placemark>
		<Placemark/>
		<Placemark><Point><coordinates>1,2</coordinates></Point></Placemark>`)))
	require.NoError(t, err)

	assert.Equal(t, 3, s.Counts[TypePlacemark])
	assert.Equal(t, 1, s.Counts[TypePoint])
	assert.Len(t, s.Elements, 1)
}

func TestParseDocumentOrder(t *testing.T) {
	s, err := Parse([]byte(wrap(`
		<Placemark><name>a</name><Point><coordinates>1,1</coordinates></Point></Placemark>
		<Placemark><name>b</name><LineString><coordinates>1,1 2,2</coordinates></LineString></Placemark>
		<Placemark><name>c</name><Point><coordinates>3,3</coordinates></Point></Placemark>`)))
	require.NoError(t, err)

	require.Len(t, s.Elements, 3)
	assert.Equal(t, []string{"a", "b", "c"},
		[]string{s.Elements[0].Name, s.Elements[1].Name, s.Elements[2].Name})
}

func TestParseShortLineHasZeroLength(t *testing.T) {
	s, err := Parse([]byte(wrap(`
		<Placemark><LineString><coordinates>-0.1,51.5</coordinates></LineString></Placemark>`)))
	require.NoError(t, err)
	require.Len(t, s.Records, 1)
	assert.Zero(t, s.Records[0].Length)
}

func TestParseAltitudeIgnoredInLength(t *testing.T) {
	flat, err := Parse([]byte(wrap(`
		<Placemark><LineString><coordinates>-0.1,51.5 -0.1,51.51</coordinates></LineString></Placemark>`)))
	require.NoError(t, err)
	high, err := Parse([]byte(wrap(`
		<Placemark><LineString><coordinates>-0.1,51.5,0 -0.1,51.51,8000</coordinates></LineString></Placemark>`)))
	require.NoError(t, err)

	assert.Equal(t, flat.Records[0].Length, high.Records[0].Length)
}

func TestParseMalformedCoordinateAbortsPass(t *testing.T) {
	doc := wrap(`
		<Placemark><Point><coordinates>1,2</coordinates></Point></Placemark>
		<Placemark><Point><coordinates>abc,51.5</coordinates></Point></Placemark>`)

	s, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.True(t, IsMalformedCoordinate(err))
	assert.Nil(t, s, "no partial result on failure")
}

func TestParseMissingStructure(t *testing.T) {
	_, err := Parse([]byte(`<kml><Folder></Folder></kml>`))
	assert.True(t, errors.Is(err, ErrMissingDocumentRoot), "got %v", err)

	_, err = Parse([]byte(`<kml><Document><name>empty</name></Document></kml>`))
	assert.True(t, errors.Is(err, ErrMissingPlacemarks), "got %v", err)

	_, err = Parse([]byte(`not xml at all <<<`))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMissingDocumentRoot))
}

func TestParseReader(t *testing.T) {
	s, err := ParseReader(strings.NewReader(wrap(`
		<Placemark><Point><coordinates>-0.09,51.505</coordinates></Point></Placemark>`)))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Counts[TypePoint])
}

func TestParseIdempotent(t *testing.T) {
	doc := []byte(wrap(`
		<Placemark><name>a</name><Point><coordinates>-0.09,51.505</coordinates></Point></Placemark>
		<Placemark><name>b</name><LineString><coordinates>-0.1,51.5 -0.1,51.51 -0.11,51.51</coordinates></LineString></Placemark>
		<Placemark><name>c</name><MultiGeometry>
			<LineString><coordinates>0,0 1,1</coordinates></LineString>
			<LineString><coordinates>2,2 3,3</coordinates></LineString>
		</MultiGeometry></Placemark>`))

	first, err := Parse(doc)
	require.NoError(t, err)
	second, err := Parse(doc)
	require.NoError(t, err)

	assert.Equal(t, first.Counts, second.Counts)
	assert.Equal(t, first.Records, second.Records)
	assert.Equal(t, first.Elements, second.Elements)

	// element list length matches point + line + nested-line counts
	want := first.Counts[TypePoint] + first.Counts[TypeLineString] + first.Counts[TypeMultiLineString]
	assert.Len(t, first.Elements, want)
}

func TestSummaryBBox(t *testing.T) {
	s, err := Parse([]byte(wrap(`
		<Placemark><Point><coordinates>-0.09,51.505</coordinates></Point></Placemark>
		<Placemark><LineString><coordinates>-0.2,51.4 0.1,51.6</coordinates></LineString></Placemark>`)))
	require.NoError(t, err)

	minLon, minLat, maxLon, maxLat, ok := s.BBox()
	require.True(t, ok)
	assert.Equal(t, -0.2, minLon)
	assert.Equal(t, 51.4, minLat)
	assert.Equal(t, 0.1, maxLon)
	assert.Equal(t, 51.6, maxLat)

	empty := newSummary()
	_, _, _, _, ok = empty.BBox()
	assert.False(t, ok)
}
