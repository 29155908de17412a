package app

// IsOwner reports whether the caller may mutate a resource created by
// ownerID. Kept as a pure function so the rule is testable without any
// transport or storage in play.
func IsOwner(callerID, ownerID string) bool {
	return callerID != "" && callerID == ownerID
}
