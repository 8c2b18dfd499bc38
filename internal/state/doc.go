// Package state implements the application shell for Cosmic Converter.
//
// # Overview
//
// A single Store owns every piece of view state: the active page, the
// search query and its results, the playback slot, liked songs, the
// cart, the queue, and the in-memory download history. The UI never
// touches these fields directly. It calls Store methods to change them
// and reads Snapshot copies to render.
//
// # Core Types
//
// Store:
//   - Mutex-guarded controller, safe to call from the UI goroutine and
//     from the debounce timer callback
//   - Injected clock.Clock so the debounce is testable
//
// Snapshot:
//   - Deep copy of the state at one point in time
//   - Slices are cloned; liked flags are resolved into each Song
//
// # Search Debounce
//
// Every query change, and every page change, re-runs the same rule:
//
//	page == search && trim(query) != ""
//	  → stop pending timer, Loading = true, schedule one evaluation
//	otherwise
//	  → stop pending timer, Results = nil, Loading = false (immediately)
//
// With a 500ms window and keystrokes at t=0, 100, 200 only one timer
// survives and it fires at t=700 using the t=200 query:
//
//	t=0    SetQuery("s")     schedule @500
//	t=100  SetQuery("sp")    stop @500, schedule @600
//	t=200  SetQuery("spe")   stop @600, schedule @700
//	t=700  evaluate "spe"    Loading = false, SearchEvaluations = 1
//
// Old timers are stopped, not ignored. A generation counter additionally
// drops a callback that was already running when Stop was called.
//
// Results from the previous evaluation stay visible while the next one
// is pending.
//
// # Cart and Queue Removal
//
// RemoveFromCart and RemoveFromQueue are keyed by song id and remove
// every matching entry: all format variants in the cart, all
// occurrences in the queue.
//
// # Change Notification
//
// Synchronous operations need no notification; the caller snapshots
// afterwards. Search results arrive on the timer goroutine, so the store
// calls the SetOnChange hook (outside its lock) once they are applied.
// The UI turns that into a Bubble Tea message.
//
// # Usage Example
//
//	store := state.New(state.Options{Clock: clock.Real()})
//	store.SetQuery("spectre")
//	store.SubmitSearch()          // → search page, Loading = true
//	// ... 500ms later the hook fires
//	snap := store.Snapshot()      // snap.Results = [The Spectre]
package state
