// Package ui contains the Bubble Tea program that powers the weather
// dashboard. Model.Update only orchestrates messages; dedicated helpers own
// key routing, text input, searching, the forecast session and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses pass through three layers (navigation.go): the suggestion
//     dropdown while it is visible, the search field while it has focus, and
//     the global shortcuts otherwise.
//   - Every query edit restarts the quiet period (input.go). The debounce tick
//     carries a ticket; only the latest ticket starts a search (search.go), and
//     only results for the latest search reach the dropdown.
//   - A commit (commit.go) resolves the location from the highlighted
//     suggestion, the typed text or the device position and hands it to the
//     session (session.go), which tags each forecast fetch so that a late
//     response for an older location is dropped.
//
// State ownership:
//   - Query, candidates and highlight live in internal/ui/state.Suggestions;
//     the quiet period bookkeeping in state.Debouncer; location, data, loading
//     and error in state.Session.
//   - Network calls run inside tea.Cmd values issued through the
//     internal/ui/command bus, so all state is mutated on the Update loop.
//
// Backend interactions:
//   - A backend.Locator resolves the device position once at start-up; Update
//     waits for its single event and caches the coordinates for "use my
//     location".
package ui
