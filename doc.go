// Package geoplan computes shortest road routes between named places.
//
// A network is two `;`-separated files: points (id, name, latitude,
// longitude) and routes (id, name, two endpoint ids, length in km). Loading is
// all-or-nothing: a rejected file leaves the previously loaded network intact
// and reports a numeric error code with the offending line.
//
// Queries run A* with the great-circle distance as heuristic and report, with
// every answer, how many points were still on the frontier (Open) and how
// many were expanded (Closed).
//
// Layout:
//
//	geo/       — identifiers, Point, Route, haversine distance
//	dataset/   — reader and validator of the persisted files
//	core/      — the Graph: immutable snapshots, transactional Load
//	astar/     — the A* search engine
//	bfs/       — reachability and fewest-hops traversal
//	report/    — text listings of points, routes and paths
//	internal/  — config (YAML + env), logging (zap), metrics (Prometheus), httpapi (chi)
//	cmd/geoplan — CLI: print, path, reach, serve
//
// Quick ASCII example:
//
//	  NAT ──185── JPA ──120── REC
//	   │           │           │
//	  290         125         135
//	   │           │           │
//	   └───────── CPV ──140── CAU
//
//	geoplan path NAT CAU
//	NAT	Natal
//	  BR226	-> CPV	Campina Grande
//	  BR104	-> CAU	Caruaru
//	length 430km (open 0, closed 5)
//
//	go install github.com/katalvlaran/geoplan/cmd/geoplan@latest
package geoplan
