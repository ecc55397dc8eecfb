package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/editorialops/edit_tracking_app/internal/core/domain"
	portsrepo "github.com/editorialops/edit_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/editorialops/edit_tracking_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService rolls ledger entries into per-developer and per-day views.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: repo,
	}
}

// Ensure reportingService implements portssvc.ReportingSvcFacade
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetDailyWorkload groups the day's closed intervals by the record's current
// assignee. An empty day yields an empty slice, never an error.
func (s *reportingService) GetDailyWorkload(ctx context.Context, day time.Time, developer *string) ([]domain.DeveloperWorkload, error) {
	rows, err := s.reportingRepo.GetDailyWorkloadData(ctx, day, developer)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve daily workload data", slog.Time("day", day))
		return nil, fmt.Errorf("failed to retrieve workload data: %w", err)
	}

	byDeveloper := make(map[string]*domain.DeveloperWorkload)
	touched := make(map[string]map[int64]struct{})
	for _, row := range rows {
		wl, ok := byDeveloper[row.Developer]
		if !ok {
			wl = &domain.DeveloperWorkload{
				Developer: row.Developer,
				ByStatus:  make(map[domain.RecordStatus]domain.StatusWorkload),
			}
			byDeveloper[row.Developer] = wl
			touched[row.Developer] = make(map[int64]struct{})
		}
		wl.ByStatus[row.Status] = domain.StatusWorkload{
			Hours:       row.Hours,
			RecordCount: len(row.RecordIDs),
		}
		wl.TotalHours = wl.TotalHours.Add(row.Hours)
		// A record that closed intervals in several statuses that day still
		// counts once in the developer's total.
		for _, id := range row.RecordIDs {
			touched[row.Developer][id] = struct{}{}
		}
	}

	result := make([]domain.DeveloperWorkload, 0, len(byDeveloper))
	for developer, wl := range byDeveloper {
		wl.TotalRecordCount = len(touched[developer])
		result = append(result, *wl)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Developer < result[j].Developer
	})

	s.LogInfo(ctx, "Daily workload computed", slog.Time("day", day), slog.Int("developers", len(result)))
	return result, nil
}

// GetDailyActivities returns the day's intervals grouped by record.
func (s *reportingService) GetDailyActivities(ctx context.Context, day time.Time, developer *string) ([]domain.RecordActivities, error) {
	rows, err := s.reportingRepo.GetDailyActivityData(ctx, day, developer)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve daily activity data", slog.Time("day", day))
		return nil, fmt.Errorf("failed to retrieve activity data: %w", err)
	}

	// Rows arrive ordered by record then start time; group preserving order.
	result := []domain.RecordActivities{}
	index := make(map[int64]int)
	for _, row := range rows {
		interval := domain.ActivityInterval{
			EntryID:   row.EntryID,
			RecordID:  row.RecordID,
			Task:      row.Task,
			Developer: row.Developer,
			Status:    row.Status,
			StartedAt: row.StartedAt,
			EndedAt:   row.EndedAt,
			Hours:     row.Hours,
		}
		i, ok := index[row.RecordID]
		if !ok {
			index[row.RecordID] = len(result)
			result = append(result, domain.RecordActivities{
				RecordID:   row.RecordID,
				Task:       row.Task,
				Developer:  row.Developer,
				Intervals:  []domain.ActivityInterval{interval},
				TotalHours: row.Hours,
			})
			continue
		}
		result[i].Intervals = append(result[i].Intervals, interval)
		result[i].TotalHours = result[i].TotalHours.Add(row.Hours)
	}

	return result, nil
}

// GetDeveloperStats summarises each developer's records and closed tracked
// time, optionally filtered by record creation date range.
func (s *reportingService) GetDeveloperStats(ctx context.Context, from, to *time.Time) ([]domain.DeveloperStats, error) {
	counts, err := s.reportingRepo.GetRecordCountsByStatus(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve record counts by status")
		return nil, fmt.Errorf("failed to retrieve developer stats: %w", err)
	}
	hours, err := s.reportingRepo.GetClosedHoursByStatus(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve closed hours by status")
		return nil, fmt.Errorf("failed to retrieve developer stats: %w", err)
	}

	byDeveloper := make(map[string]*domain.DeveloperStats)
	get := func(developer string) *domain.DeveloperStats {
		stats, ok := byDeveloper[developer]
		if !ok {
			stats = &domain.DeveloperStats{
				Username:        developer,
				RecordsByStatus: make(map[domain.RecordStatus]int),
				HoursByStatus:   make(map[domain.RecordStatus]decimal.Decimal),
			}
			byDeveloper[developer] = stats
		}
		return stats
	}

	for _, row := range counts {
		stats := get(row.Developer)
		stats.RecordsByStatus[row.Status] += row.Count
		stats.TotalRecords += row.Count
	}
	for _, row := range hours {
		stats := get(row.Developer)
		stats.HoursByStatus[row.Status] = stats.HoursByStatus[row.Status].Add(row.Hours)
	}

	result := make([]domain.DeveloperStats, 0, len(byDeveloper))
	for _, stats := range byDeveloper {
		result = append(result, *stats)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Username < result[j].Username
	})

	return result, nil
}

// GetStatusOverview returns board-wide status counts and tracked hours.
func (s *reportingService) GetStatusOverview(ctx context.Context, from, to *time.Time) (*domain.StatusOverview, error) {
	counts, err := s.reportingRepo.GetRecordCountsByStatus(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve record counts by status")
		return nil, fmt.Errorf("failed to retrieve status overview: %w", err)
	}
	hours, err := s.reportingRepo.GetClosedHoursByStatus(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve closed hours by status")
		return nil, fmt.Errorf("failed to retrieve status overview: %w", err)
	}

	overview := &domain.StatusOverview{
		StatusCounts:  make(map[domain.RecordStatus]int),
		HoursByStatus: make(map[domain.RecordStatus]decimal.Decimal),
	}
	for _, row := range counts {
		overview.StatusCounts[row.Status] += row.Count
	}
	for _, row := range hours {
		overview.HoursByStatus[row.Status] = overview.HoursByStatus[row.Status].Add(row.Hours)
	}

	return overview, nil
}
