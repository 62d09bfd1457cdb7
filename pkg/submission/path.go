package submission

import "strings"

// DataRoot is the namespace segment the storage layer nests every level of
// submission data under.
const DataRoot = "data"

// Segments splits a dotted path, dropping empty segments so malformed paths
// like "a..b" cannot address phantom keys.
func Segments(path string) []string {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, ".")
	out := parts[:0]
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// StoragePath converts a dotted schema field path into the storage layer's
// submission-relative path: the whole tree lives under `data`, and every
// additional level of nesting repeats the namespace, so `a.b.c` becomes
// `data.a.data.b.data.c`. This convention is an external contract with the
// storage subsystem; the redaction engine's correctness depends on it, which
// is why it lives here as one pure function.
func StoragePath(fieldPath string) string {
	segments := Segments(fieldPath)
	if len(segments) == 0 {
		return ""
	}
	return DataRoot + "." + strings.Join(segments, "."+DataRoot+".")
}
