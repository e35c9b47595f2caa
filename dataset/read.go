package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/geoplan/geo"
)

// Exact header lines of the two sources.
const (
	PointsHeaderLine = "ID;Nome;Latitude;Longitude"
	RoutesHeaderLine = "ID;Nome;Extremidade 1;Extremidade 2;Comprimento"
)

// Separator is the field separator of both sources.
const Separator = ";"

// maxLineBytes bounds a single record line.
const maxLineBytes = 1 << 20

var (
	errNoSource   = errors.New("source has no Open function")
	errNoHeader   = errors.New("missing header line")
	errBadHeader  = errors.New("unexpected header line")
	errUnfinished = errors.New("field not terminated by separator")
	errMissing    = errors.New("field missing")
	errNotDecimal = errors.New("not a decimal number")
)

// Set is the content of a successful Read, in source order.
type Set struct {
	Points []geo.Point
	Routes []geo.Route
}

// Read parses the points source and then the routes source. It stops at the
// first failure and returns it as an *Error; on success every route endpoint
// names a point of the returned set and all ids are unique.
//
// Complexity: O(P + R) time and space, with map-backed duplicate and reference checks.
func Read(points, routes Source) (*Set, error) {
	pts, index, err := readPoints(points)
	if err != nil {
		return nil, err
	}
	rts, err := readRoutes(routes, index)
	if err != nil {
		return nil, err
	}
	return &Set{Points: pts, Routes: rts}, nil
}

// records opens src, checks the header and calls fn for every non-blank record line.
func records(src Source, kind Kind, header string, fn func(line int, text string) error) error {
	fail := func(line, code int, err error) error {
		return &Error{Kind: kind, Source: src.Name, Line: line, Code: code, Err: err}
	}
	if src.Open == nil {
		return fail(0, 1, errNoSource)
	}
	rc, err := src.Open()
	if err != nil {
		return fail(0, 1, err)
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return fail(1, 1, err)
		}
		return fail(1, 2, errNoHeader)
	}
	if got := strings.TrimSuffix(sc.Text(), "\r"); got != header {
		return fail(1, 2, fmt.Errorf("%w: %q", errBadHeader, got))
	}

	line := 1
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := fn(line, text); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fail(line, 1, err)
	}
	return nil
}

// parseNumber parses a trimmed decimal field: optional sign, digits, an
// optional fraction and exponent. Hex floats, digit separators, NaN and
// infinities are not part of the persisted format.
func parseNumber(field string) (float64, error) {
	field = strings.TrimSpace(field)
	if strings.IndexFunc(field, notDecimal) >= 0 {
		return 0, fmt.Errorf("%w: %q", errNotDecimal, field)
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q", errNotDecimal, field)
	}
	return v, nil
}

func notDecimal(r rune) bool {
	return !(r >= '0' && r <= '9') && !strings.ContainsRune("+-.eE", r)
}

func readPoints(src Source) ([]geo.Point, map[geo.PointID]struct{}, error) {
	var pts []geo.Point
	seen := make(map[geo.PointID]struct{})

	err := records(src, KindPoints, PointsHeaderLine, func(line int, text string) error {
		fail := func(code int, err error) error {
			return &Error{Kind: KindPoints, Source: src.Name, Line: line, Code: code, Err: err}
		}
		// At most 4 fields: surplus separators end up in the longitude and fail its parse.
		f := strings.SplitN(text, Separator, 4)
		switch len(f) {
		case 1:
			return fail(PointsID, fmt.Errorf("id: %w", errUnfinished))
		case 2:
			return fail(PointsName, fmt.Errorf("name: %w", errUnfinished))
		}

		p := geo.Point{ID: geo.ParsePointID(f[0]), Name: f[1]}
		var err error
		if p.Latitude, err = parseNumber(f[2]); err != nil {
			return fail(PointsLatitude, fmt.Errorf("latitude: %w", err))
		}
		if len(f) < 4 {
			return fail(PointsLongitude, fmt.Errorf("longitude: %w", errMissing))
		}
		if p.Longitude, err = parseNumber(f[3]); err != nil {
			return fail(PointsLongitude, fmt.Errorf("longitude: %w", err))
		}
		if err = p.Validate(); err != nil {
			return fail(PointsInvalid, err)
		}
		if _, dup := seen[p.ID]; dup {
			return fail(PointsDuplicate, fmt.Errorf("duplicate point id %q", p.ID))
		}
		seen[p.ID] = struct{}{}
		pts = append(pts, p)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return pts, seen, nil
}

func readRoutes(src Source, points map[geo.PointID]struct{}) ([]geo.Route, error) {
	var rts []geo.Route
	seen := make(map[geo.RouteID]struct{})

	err := records(src, KindRoutes, RoutesHeaderLine, func(line int, text string) error {
		fail := func(code int, err error) error {
			return &Error{Kind: KindRoutes, Source: src.Name, Line: line, Code: code, Err: err}
		}
		f := strings.SplitN(text, Separator, 5)
		switch len(f) {
		case 1:
			return fail(RoutesID, fmt.Errorf("id: %w", errUnfinished))
		case 2:
			return fail(RoutesName, fmt.Errorf("name: %w", errUnfinished))
		case 3:
			return fail(RoutesEnd1, fmt.Errorf("endpoint 1: %w", errUnfinished))
		case 4:
			return fail(RoutesEnd2, fmt.Errorf("endpoint 2: %w", errUnfinished))
		}

		r := geo.Route{
			ID:   geo.ParseRouteID(f[0]),
			Name: f[1],
			End1: geo.ParsePointID(f[2]),
			End2: geo.ParsePointID(f[3]),
		}
		var err error
		if r.Length, err = parseNumber(f[4]); err != nil {
			return fail(RoutesLength, fmt.Errorf("length: %w", err))
		}
		if err = r.Validate(); err != nil {
			return fail(RoutesInvalid, err)
		}
		if _, ok := points[r.End1]; !ok {
			return fail(RoutesEnd1Unknown, fmt.Errorf("endpoint 1 %q is not a loaded point", r.End1))
		}
		if _, ok := points[r.End2]; !ok {
			return fail(RoutesEnd2Unknown, fmt.Errorf("endpoint 2 %q is not a loaded point", r.End2))
		}
		if _, dup := seen[r.ID]; dup {
			return fail(RoutesDuplicate, fmt.Errorf("duplicate route id %q", r.ID))
		}
		seen[r.ID] = struct{}{}
		rts = append(rts, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rts, nil
}
