// Package probe runs ffprobe on a single path and returns its raw, typed
// result.
//
// One JSON call (-show_format -show_streams -show_chapters) per file. A
// failed call is classified from ffprobe's stderr into one of three
// outcomes: the content is not media (ErrNotMedia), the path could not be
// read (KindPermission), or the probe itself failed (KindFailed,
// KindTimeout, KindMalformed). Text files are recognized by content
// sniffing before ffprobe is started.
package probe
