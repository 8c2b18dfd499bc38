package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 90

	// LayoutArtworkWidth is the minimum width to show artwork URLs in
	// search results.
	LayoutArtworkWidth = 130
)

// Vertical chrome: header, nav bar, command bar and footer.
const chromeHeight = 4

// noticeTTL is how long an action notice stays in the command bar.
const noticeTTL = 3 * time.Second
