package store

import (
	"context"
	"fmt"

	"github.com/ritam/preptrail/ent"
	entprogress "github.com/ritam/preptrail/ent/progressrecord"
	"github.com/ritam/preptrail/internal/roadmap"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) SaveAll(ctx context.Context, records []roadmap.ProgressRecord) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.ProgressRecord.Delete().Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear progress: %w", err)
	}

	builders := make([]*ent.ProgressRecordCreate, len(records))
	for i, rec := range records {
		builders[i] = tx.ProgressRecord.Create().
			SetWeekNumber(rec.WeekNumber).
			SetCompletedTasks(rec.CompletedTasks).
			SetTotalTasks(rec.TotalTasks).
			SetCompletionPercentage(roadmap.ComputeCompletion(rec)).
			SetLastUpdated(rec.LastUpdated)
	}
	if _, err := tx.ProgressRecord.CreateBulk(builders...).Save(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save progress: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit progress: %w", err)
	}
	return nil
}

func (r *progressRepo) LoadAll(ctx context.Context) ([]roadmap.ProgressRecord, error) {
	rows, err := r.client.ProgressRecord.Query().
		Order(ent.Asc(entprogress.FieldWeekNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}

	records := make([]roadmap.ProgressRecord, len(rows))
	for i, row := range rows {
		records[i] = roadmap.Normalize(roadmap.ProgressRecord{
			WeekNumber:     row.WeekNumber,
			CompletedTasks: row.CompletedTasks,
			TotalTasks:     row.TotalTasks,
			LastUpdated:    row.LastUpdated,
		})
	}
	return records, nil
}

func (r *progressRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.client.ProgressRecord.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}
