package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geoplan/astar"
	"github.com/katalvlaran/geoplan/core"
	"github.com/katalvlaran/geoplan/dataset"
	"github.com/katalvlaran/geoplan/internal/metrics"
)

const (
	testPoints = "A;Alfa;0;0\nB;Bravo;0;0.05\nC;Charlie;0;0.1\nZ;Zulu;45;45\n"
	testRoutes = "R1;A-B;A;B;10\nR2;B-C;B;C;10\nR3;A-C;A;C;30\n"
)

func loadedGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.Load(
		dataset.StringSource("points", dataset.PointsHeaderLine+"\n"+testPoints),
		dataset.StringSource("routes", dataset.RoutesHeaderLine+"\n"+testRoutes),
	))
	return g
}

func get(t *testing.T, h http.Handler, target string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec
}

func TestHealth(t *testing.T) {
	h := NewServer(loadedGraph(t)).Handler()

	var body healthDTO
	rec := get(t, h, "/health", &body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, healthDTO{Status: "ok", Points: 4, Routes: 3}, body)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	h := NewServer(core.NewGraph()).Handler()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestPointsAndRoutes(t *testing.T) {
	h := NewServer(loadedGraph(t)).Handler()

	var pts []pointDTO
	get(t, h, "/points", &pts)
	require.Len(t, pts, 4)
	assert.Equal(t, pointDTO{ID: "B", Name: "Bravo", Latitude: 0, Longitude: 0.05}, pts[1])

	var p pointDTO
	rec := get(t, h, "/points/Z", &p)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Zulu", p.Name)

	var e errorDTO
	rec = get(t, h, "/points/nope", &e)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, e.Error)

	var rts []routeDTO
	get(t, h, "/routes", &rts)
	require.Len(t, rts, 3)
	assert.Equal(t, routeDTO{ID: "R3", Name: "A-C", End1: "A", End2: "C", Length: 30}, rts[2])

	rec = get(t, h, "/routes/R9", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPath(t *testing.T) {
	g := loadedGraph(t)
	h := NewServer(g).Handler()

	var body pathDTO
	rec := get(t, h, "/path?from=A&to=C", &body)
	require.Equal(t, http.StatusOK, rec.Code)

	want, err := astar.Search(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, toPath("A", "C", want), body)
	assert.True(t, body.Found)
	assert.Equal(t, 20.0, body.Length)
	assert.Equal(t, []segmentDTO{{Point: "A"}, {Route: "R1", Point: "B"}, {Route: "R2", Point: "C"}}, body.Path)

	rec = get(t, h, "/path?from=A&to=Z", &body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, body.Found)
	assert.Equal(t, astar.NoPath, body.Length)
	assert.Empty(t, body.Path)
	assert.Equal(t, 3, body.Closed)
}

func TestPath_Errors(t *testing.T) {
	h := NewServer(loadedGraph(t)).Handler()

	assert.Equal(t, http.StatusBadRequest, get(t, h, "/path?from=A", nil).Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/path?from=A&to=Q", nil).Code)

	empty := NewServer(core.NewGraph()).Handler()
	var e errorDTO
	rec := get(t, empty, "/path?from=A&to=B", &e)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, e.Message, "error 1")
}

func TestReach(t *testing.T) {
	h := NewServer(loadedGraph(t)).Handler()

	var body reachDTO
	rec := get(t, h, "/reach/A", &body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "A", body.Start)
	assert.Equal(t, []reachedDTO{
		{Point: "A", Depth: 0},
		{Point: "B", Depth: 1, From: "A", Route: "R1"},
		{Point: "C", Depth: 1, From: "A", Route: "R3"},
	}, body.Points)

	get(t, h, "/reach/Z", &body)
	assert.Len(t, body.Points, 1)

	assert.Equal(t, http.StatusNotFound, get(t, h, "/reach/Q", nil).Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/reach/A?max_depth=x", nil).Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/reach/A?max_depth=-2", nil).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	c := metrics.NewCollector(false)
	g := core.NewGraph(core.WithLoadHook(c.ObserveLoad))
	require.NoError(t, g.Load(
		dataset.StringSource("points", dataset.PointsHeaderLine+"\n"+testPoints),
		dataset.StringSource("routes", dataset.RoutesHeaderLine+"\n"+testRoutes),
	))
	h := NewServer(g, WithMetrics(c)).Handler()

	get(t, h, "/path?from=A&to=C", nil)
	get(t, h, "/path?from=A&to=Z", nil)
	get(t, h, "/path?from=A&to=Q", nil)

	rec := get(t, h, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `geoplan_searches_total{result="found"} 1`)
	assert.Contains(t, body, `geoplan_searches_total{result="no_path"} 1`)
	assert.Contains(t, body, `geoplan_searches_total{result="error"} 1`)
	assert.Contains(t, body, "geoplan_graph_points 4")

	assert.Equal(t, http.StatusNotFound, get(t, NewServer(g).Handler(), "/metrics", nil).Code)
}

func TestCORSPreflight(t *testing.T) {
	h := NewServer(core.NewGraph(), WithAllowedOrigins("https://maps.example")).Handler()

	req := httptest.NewRequest(http.MethodOptions, "/points", nil)
	req.Header.Set("Origin", "https://maps.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://maps.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
