// Package dataset reads the persisted form of a route network: a points
// source and a routes source, both line-oriented with ';'-separated fields.
//
// Points source:
//
//	ID;Nome;Latitude;Longitude
//	<id>;<name>;<latitude>;<longitude>
//
// Routes source:
//
//	ID;Nome;Extremidade 1;Extremidade 2;Comprimento
//	<id>;<name>;<endpoint 1>;<endpoint 2>;<length km>
//
// The header line must match exactly (a trailing '\r' is tolerated). Blank
// lines are skipped. Read validates sequentially and stops at the first
// failure, reporting it as an *Error carrying the numeric code below.
//
// Points codes:
//
//	1 cannot open source        5 latitude missing or unparsable
//	2 header mismatch           6 longitude missing or unparsable
//	3 id field not terminated   7 point fails entity validity
//	4 name field not terminated 8 duplicate point id
//
// Routes codes:
//
//	1 cannot open source        7 length missing or unparsable
//	2 header mismatch           8 route fails entity validity
//	3 id field not terminated   9 endpoint 1 is not a loaded point
//	4 name field not terminated 10 endpoint 2 is not a loaded point
//	5 endpoint 1 not terminated 11 duplicate route id
//	6 endpoint 2 not terminated
//
// Every *Error also unwraps to one category sentinel (ErrUnreadable,
// ErrFormat, ErrValidation, ErrReference) and to its underlying cause.
package dataset
