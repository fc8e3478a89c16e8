package payment

import (
	"context"
	"time"

	domain "github.com/barshopapp/barshop-api/internal/domain/payment"
)

// ======================================================
// COLLECTIONS REPORT
// ======================================================

type CollectionsReport struct {
	repo domain.Repository
	loc  *time.Location
}

func NewCollectionsReport(
	repo domain.Repository,
	loc *time.Location,
) *CollectionsReport {
	return &CollectionsReport{
		repo: repo,
		loc:  loc,
	}
}

type CollectionsSummary struct {
	TotalCollections  float64                  `json:"totalCollections"`
	TotalAppointments int                      `json:"totalAppointments"`
	Breakdown         []domain.CollectionTotal `json:"breakdown"`
}

type CollectionsResult struct {
	Period      string                 `json:"period"`
	Collections []domain.CollectionRow `json:"collections"`
	Summary     CollectionsSummary     `json:"summary"`
}

// periodWindow resolves a report period into its start instant and the
// to_char bucket format for row labels. The weekly window starts on ISO
// Monday so every payment in the window carries the window's own IYYY-IW
// label. Unknown periods fall back to daily.
func periodWindow(now time.Time, period string, loc *time.Location) (time.Time, string, string) {
	switch period {
	case "weekly":
		monday := now.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))
		since := time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, loc)
		return since, "IYYY-IW", "weekly"
	case "monthly":
		since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return since, "YYYY-MM", "monthly"
	default:
		since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		return since, "YYYY-MM-DD", "daily"
	}
}

// Execute sums completed payments since the start of the requested period,
// bucketed by day/week/month and customer type.
func (uc *CollectionsReport) Execute(
	ctx context.Context,
	period string,
) (*CollectionsResult, error) {

	since, bucket, period := periodWindow(time.Now().In(uc.loc), period, uc.loc)

	rows, err := uc.repo.CollectionsSince(ctx, since, bucket)
	if err != nil {
		return nil, err
	}

	totals, err := uc.repo.CollectionTotalsSince(ctx, since)
	if err != nil {
		return nil, err
	}

	var overallAmount float64
	var overallCount int
	for _, t := range totals {
		overallAmount += t.TotalAmount
		overallCount += t.Count
	}

	return &CollectionsResult{
		Period:      period,
		Collections: rows,
		Summary: CollectionsSummary{
			TotalCollections:  overallAmount,
			TotalAppointments: overallCount,
			Breakdown:         totals,
		},
	}, nil
}
