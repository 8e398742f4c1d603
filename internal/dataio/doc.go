// Package dataio reads experimental chronoamperometry files and writes
// computed series.
//
// # Input format
//
// One sample per line, two comma-separated fields: time in seconds, then
// current in amperes.
//
//	# potential step at t = 0
//	time,current
//	0.1,1.0
//	0.2,0.5
//	0.3,0.33
//
// Blank lines and lines whose first non-space character is '#' are ignored,
// as is a leading UTF-8 byte order mark. The first remaining
// line may be a header; it is recognized when none of its fields is a number.
// Every other line must hold exactly two finite numbers, otherwise reading
// fails with [chrono.ErrMalformedData]. Rows keep their file order.
package dataio
