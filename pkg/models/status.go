package models

// ReviewStatus is the lifecycle state of a review record.
type ReviewStatus string

const (
	ReviewStatusPending    ReviewStatus = "pending"
	ReviewStatusProcessing ReviewStatus = "processing"
	ReviewStatusCompleted  ReviewStatus = "completed"
	ReviewStatusFailed     ReviewStatus = "failed"
)

// TerminalStatus reports whether s is one of the two terminal states.
func TerminalStatus(s ReviewStatus) bool {
	return s == ReviewStatusCompleted || s == ReviewStatusFailed
}

// ValidReviewStatus reports whether s is a known lifecycle state.
func ValidReviewStatus(s ReviewStatus) bool {
	switch s {
	case ReviewStatusPending, ReviewStatusProcessing, ReviewStatusCompleted, ReviewStatusFailed:
		return true
	}
	return false
}
