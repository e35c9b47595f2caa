package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/geoplan/astar"
	"github.com/katalvlaran/geoplan/geo"
)

// NoPathLine is written by Path when the result holds no path.
const NoPathLine = "no path"

// Network is the read surface the listings need. *core.Graph and *core.Snapshot implement it.
type Network interface {
	Points() []geo.Point
	Routes() []geo.Route
	GetPoint(id geo.PointID) (geo.Point, error)
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// PointLine formats one point.
func PointLine(p geo.Point) string {
	return fmt.Sprintf("%s\t%s (%s,%s)", p.ID, p.Name, num(p.Latitude), num(p.Longitude))
}

// RouteLine formats one route.
func RouteLine(r geo.Route) string {
	return fmt.Sprintf("%s\t%s\t%skm [%s,%s]", r.ID, r.Name, num(r.Length), r.End1, r.End2)
}

// Points writes every point of n in load order.
func Points(w io.Writer, n Network) error {
	bw := bufio.NewWriter(w)
	for _, p := range n.Points() {
		if _, err := fmt.Fprintln(bw, PointLine(p)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Routes writes every route of n in load order.
func Routes(w io.Writer, n Network) error {
	bw := bufio.NewWriter(w)
	for _, r := range n.Routes() {
		if _, err := fmt.Fprintln(bw, RouteLine(r)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Path writes res segment by segment. The first line is the origin point,
// every following line names the route taken and the point reached. Point
// names are looked up in n; an id missing from n is written without a name.
func Path(w io.Writer, n Network, res astar.Result) error {
	bw := bufio.NewWriter(w)
	if !res.Found() {
		fmt.Fprintf(bw, "%s (open %d, closed %d)\n", NoPathLine, res.Open, res.Closed)
		return bw.Flush()
	}
	for i, seg := range res.Path {
		name := ""
		if p, err := n.GetPoint(seg.Point); err == nil {
			name = p.Name
		}
		if i == 0 {
			fmt.Fprintf(bw, "%s\t%s\n", seg.Point, name)
			continue
		}
		fmt.Fprintf(bw, "  %s\t-> %s\t%s\n", seg.Route, seg.Point, name)
	}
	fmt.Fprintf(bw, "length %skm (open %d, closed %d)\n", num(res.Length), res.Open, res.Closed)
	return bw.Flush()
}
