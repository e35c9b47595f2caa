package httpapi

import (
	"github.com/katalvlaran/geoplan/astar"
	"github.com/katalvlaran/geoplan/bfs"
	"github.com/katalvlaran/geoplan/geo"
)

type pointDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func toPoint(p geo.Point) pointDTO {
	return pointDTO{ID: p.ID.String(), Name: p.Name, Latitude: p.Latitude, Longitude: p.Longitude}
}

type routeDTO struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	End1   string  `json:"end1"`
	End2   string  `json:"end2"`
	Length float64 `json:"length"`
}

func toRoute(r geo.Route) routeDTO {
	return routeDTO{ID: r.ID.String(), Name: r.Name, End1: r.End1.String(), End2: r.End2.String(), Length: r.Length}
}

type segmentDTO struct {
	Route string `json:"route,omitempty"`
	Point string `json:"point"`
}

// pathDTO is the /path response. Length is -1 when no path exists.
type pathDTO struct {
	From   string       `json:"from"`
	To     string       `json:"to"`
	Found  bool         `json:"found"`
	Length float64      `json:"length"`
	Path   []segmentDTO `json:"path"`
	Open   int          `json:"open"`
	Closed int          `json:"closed"`
}

func toPath(from, to geo.PointID, res astar.Result) pathDTO {
	out := pathDTO{
		From:   from.String(),
		To:     to.String(),
		Found:  res.Found(),
		Length: res.Length,
		Path:   make([]segmentDTO, 0, len(res.Path)),
		Open:   res.Open,
		Closed: res.Closed,
	}
	for _, s := range res.Path {
		out.Path = append(out.Path, segmentDTO{Route: s.Route.String(), Point: s.Point.String()})
	}
	return out
}

type reachedDTO struct {
	Point string `json:"point"`
	Depth int    `json:"depth"`
	From  string `json:"from,omitempty"`
	Route string `json:"route,omitempty"`
}

type reachDTO struct {
	Start  string       `json:"start"`
	Points []reachedDTO `json:"points"`
}

func toReach(start geo.PointID, res *bfs.Result) reachDTO {
	out := reachDTO{Start: start.String(), Points: make([]reachedDTO, 0, len(res.Order))}
	for _, id := range res.Order {
		hop := res.Parent[id]
		out.Points = append(out.Points, reachedDTO{
			Point: id.String(),
			Depth: res.Depth[id],
			From:  hop.From.String(),
			Route: hop.Route.String(),
		})
	}
	return out
}

type healthDTO struct {
	Status string `json:"status"`
	Points int    `json:"points"`
	Routes int    `json:"routes"`
}

type errorDTO struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
