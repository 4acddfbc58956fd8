package router

import "strings"

// Location is a navigation target. Hash is stored without the leading '#'.
type Location struct {
	Path string
	Hash string
}

// ParseLocation splits a raw target such as "/learn?x=1#props". The query is
// dropped; routing never looks at it.
func ParseLocation(raw string) Location {
	var loc Location
	if before, hash, ok := strings.Cut(raw, "#"); ok {
		raw = before
		loc.Hash = hash
	}
	if before, _, ok := strings.Cut(raw, "?"); ok {
		raw = before
	}
	loc.Path = Normalize(raw)
	return loc
}

func (l Location) String() string {
	if l.Hash == "" {
		return l.Path
	}
	return l.Path + "#" + l.Hash
}
