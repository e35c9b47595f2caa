// Package report writes human-readable listings of a route network and of
// search results: one line per point, one line per route, and a path with
// its total length and frontier diagnostics.
//
// Line formats
//
//	point:  <id>\t<name> (<lat>,<lon>)
//	route:  <id>\t<name>\t<length>km [<end1>,<end2>]
//	path:   one line per segment, then "length <L>km (open <O>, closed <C>)"
//
// Numbers use the shortest representation that round-trips (strconv 'g', -1).
package report
