package models

// UsageEntry is an owner's view of the usage ledger.
type UsageEntry struct {
	OwnerID    string
	UsedBytes  int64
	QuotaBytes int64
	// Bypass exempts the owner from quota checks.
	Bypass bool
}
