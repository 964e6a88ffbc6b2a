package types

import "encoding/xml"

// Attr returns the value of the attribute named name on start, and whether
// it was present. Attribute lookup is by local name only: the ink dialect's
// attributes are unqualified, and a namespace-qualified reader would just
// add noise here.
func Attr(start xml.StartElement, name string) (string, bool) {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrDefault returns the attribute named name, or def if absent.
func AttrDefault(start xml.StartElement, name, def string) string {
	if v, ok := Attr(start, name); ok {
		return v
	}
	return def
}

// AttrOptional returns a pointer to the attribute value, or nil if absent.
// Used for attributes that are meaningfully distinguishable from "" (e.g.
// a channel's max value).
func AttrOptional(start xml.StartElement, name string) *string {
	if v, ok := Attr(start, name); ok {
		return &v
	}
	return nil
}

// Attrs looks up each of names in order and returns the corresponding
// values, nil where absent. Mirrors the original's get_ids helper: callers
// destructure the returned slice positionally.
func Attrs(start xml.StartElement, names ...string) []*string {
	out := make([]*string, len(names))
	for i, n := range names {
		out[i] = AttrOptional(start, n)
	}
	return out
}
