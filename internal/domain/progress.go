package domain

// ProgressSummary holds per-learner item counts by status plus the number of
// items due today. Purely derived from stored items.
type ProgressSummary struct {
	Total    int
	New      int
	Learning int
	Review   int
	Mature   int
	DueToday int
}

// StatusCount holds an item status and its count (grouped query result).
type StatusCount struct {
	Status ItemStatus
	Count  int
}

// ChapterProgress holds completion figures for one chapter. An item counts as
// memorized once its status reaches REVIEW or MATURE.
type ChapterProgress struct {
	Chapter         int
	TotalVerses     int
	MemorizedVerses int
	PercentComplete float64
	Items           []*MemorizationItem
}

