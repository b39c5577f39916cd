package models

// EntriesResult is the paged listing payload returned by the
// administrator listing endpoint.
type EntriesResult struct {
	// Count is the total number of accounts reported by the store.
	// It is the raw table count; the Entries slice itself excludes
	// the reserved root account (see the listing operation).
	Count int64 `json:"count"`

	// Entries is the page of administrator accounts, already filtered
	// of the reserved root account.
	Entries []Admin `json:"entries"`
}
