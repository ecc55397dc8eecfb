package dto

// WorkloadParams defines query parameters for the daily workload report.
type WorkloadParams struct {
	Day       string  `form:"day" binding:"required,datetime=2006-01-02"`
	Developer *string `form:"developer"`
}

// DateRangeParams defines an optional record-creation date range filter.
// Both bounds must be given together or not at all.
type DateRangeParams struct {
	StartDate *string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}
