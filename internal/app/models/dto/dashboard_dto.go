package dto

// DashboardCounts is the data payload of the dashboard endpoint
type DashboardCounts struct {
	Customers   int64 `json:"customers"`
	Plans       int64 `json:"plans"`
	Reschedules int64 `json:"reschedules"`
}

// CompareRequest carries the institution ids to compare; at most five are
// considered, ids the provider does not recognize are silently skipped.
type CompareRequest struct {
	UnitIDs []int64 `json:"unit_ids" binding:"required,min=1"`
}
