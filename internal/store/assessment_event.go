package store

import (
	"context"
	"fmt"

	"github.com/abhisek/pathfinder/ent"
	"github.com/abhisek/pathfinder/ent/assessmentevent"
)

func (r *eventRepo) AppendAssessment(ctx context.Context, data AssessmentData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTargetRole(data.TargetRole).
		SetOverallScore(data.OverallScore).
		SetReadinessLevel(data.ReadinessLevel).
		SetMissingCount(data.MissingCount).
		SetNiceToHaveCount(data.NiceToHaveCount).
		SetRoadmapHours(data.RoadmapHours).
		SetRoadmapSource(data.RoadmapSource).
		SetDurationMs(data.DurationMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAssessments(ctx context.Context, sessionID string, opts QueryOpts) ([]Assessment, error) {
	q := r.client.AssessmentEvent.Query().
		Order(ent.Desc(assessmentevent.FieldSequence))

	if sessionID != "" {
		q = q.Where(assessmentevent.SessionID(sessionID))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}

	out := make([]Assessment, len(rows))
	for i, row := range rows {
		out[i] = Assessment{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			AssessmentData: AssessmentData{
				SessionID:       row.SessionID,
				TargetRole:      row.TargetRole,
				OverallScore:    row.OverallScore,
				ReadinessLevel:  row.ReadinessLevel,
				MissingCount:    row.MissingCount,
				NiceToHaveCount: row.NiceToHaveCount,
				RoadmapHours:    row.RoadmapHours,
				RoadmapSource:   row.RoadmapSource,
				DurationMs:      row.DurationMs,
			},
		}
	}
	return out, nil
}
