package router

import "fmt"

// HistoryMode selects how a navigable location is carried in a URL.
type HistoryMode string

// History mode constants.
const (
	// HistoryHash keeps the location in the URL fragment ("/#/CountryApp"),
	// so the server only ever sees the base path.
	HistoryHash HistoryMode = "hash"

	// HistoryWeb keeps the location in the URL path ("/CountryApp").
	HistoryWeb HistoryMode = "web"

	// HistoryMemory uses locations as given, with no URL encoding.
	HistoryMemory HistoryMode = "memory"
)

// Validate checks if the mode is a known history mode.
func (m HistoryMode) Validate() error {
	switch m {
	case HistoryHash, HistoryWeb, HistoryMemory:
		return nil
	default:
		return fmt.Errorf("invalid history mode: %s (must be hash, web, or memory)", m)
	}
}
