// Package classify maps raw ffprobe fields (codec names, profile strings,
// field orders, frame-rate rationals, channel-layout masks, language tags)
// onto small closed enumerations.
//
// Every enumeration has an Unknown member and every function here is total:
// unrecognized or degenerate input yields Unknown (or zero), never an error.
// Nothing in this package performs I/O.
package classify
