package router

// Position is a scroll offset in CSS pixels.
type Position struct {
	Left int `json:"left"`
	Top  int `json:"top"`
}

// ScrollTarget says where the viewport goes after a navigation. A non-empty
// Selector means "scroll that element into view"; otherwise Position applies.
type ScrollTarget struct {
	Selector string   `json:"selector,omitempty"`
	Smooth   bool     `json:"smooth,omitempty"`
	Position Position `json:"position"`
}

// ScrollBehavior picks the scroll target for a navigation from from to to.
// A fragment wins, then a saved position from back/forward, then the top.
func ScrollBehavior(to, from Location, saved *Position) ScrollTarget {
	if to.Hash != "" {
		return ScrollTarget{Selector: "#" + to.Hash, Smooth: true}
	}
	if saved != nil {
		return ScrollTarget{Position: *saved}
	}
	return ScrollTarget{}
}
