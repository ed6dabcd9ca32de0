package model

// Release represents the subset of a GitHub release the promoter reads and writes
type Release struct {
	ID         int64  // Release ID
	Name       string // Display name
	TagName    string // Tag the release points at
	Prerelease bool   // Whether the release is flagged as a prerelease
}

// PromotionResult represents the outcome of a single promotion run
type PromotionResult struct {
	Release  *Release // Latest release as fetched before any update
	Promoted bool     // False when the release was already a full release and nothing was changed
}
