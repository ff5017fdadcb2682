package walker

// SkippedReason clarifies why an entry was not concatenated.
type SkippedReason string

const (
	ReasonIgnoredRule       SkippedReason = "Ignored (Rule Match)"
	ReasonFilteredType      SkippedReason = "Filtered (No Comment Syntax)"
	ReasonSkippedNotRegular SkippedReason = "Skipped (Not a Regular File)"
	ReasonSkippedPermError  SkippedReason = "Skipped (Permission Error)"
	ReasonSkippedWalkError  SkippedReason = "Skipped (Walk Error)"
	ReasonSkippedPathError  SkippedReason = "Skipped (Path Calculation Error)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string
	Reason SkippedReason
	IsDir  bool
}

// SkippedTracker accumulates skipped items during a walk. The walk is
// strictly sequential, so no locking is involved.
type SkippedTracker struct {
	items []SkippedItem
}

// NewSkippedTracker creates a tracker with the given initial capacity.
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{items: make([]SkippedItem, 0, capacity)}
}

// Track records a skipped entry.
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns the tracked entries in the order they were recorded.
func (st *SkippedTracker) Items() []SkippedItem {
	return st.items
}
