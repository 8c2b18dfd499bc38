package state

import "fmt"

// Page selects which of the five views is active.
type Page int

const (
	PageHome Page = iota
	PageSearch
	PageQueue
	PageCart
	PageHistory
)

// Pages lists every page in navigation order.
var Pages = []Page{PageHome, PageSearch, PageQueue, PageCart, PageHistory}

var pageNames = map[Page]string{
	PageHome:    "home",
	PageSearch:  "search",
	PageQueue:   "queue",
	PageCart:    "cart",
	PageHistory: "history",
}

func (p Page) String() string {
	if name, ok := pageNames[p]; ok {
		return name
	}
	return fmt.Sprintf("page(%d)", int(p))
}

// Valid reports whether p is one of the five pages.
func (p Page) Valid() bool {
	_, ok := pageNames[p]
	return ok
}

// Next returns the following page, wrapping to home.
func (p Page) Next() Page {
	return Pages[(p.index()+1)%len(Pages)]
}

// Prev returns the preceding page, wrapping to history.
func (p Page) Prev() Page {
	return Pages[(p.index()+len(Pages)-1)%len(Pages)]
}

func (p Page) index() int {
	for i, candidate := range Pages {
		if candidate == p {
			return i
		}
	}
	return 0
}
