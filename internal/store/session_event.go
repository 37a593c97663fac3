package store

import (
	"context"
	"fmt"

	"github.com/abhisek/pathfinder/ent"
	"github.com/abhisek/pathfinder/ent/sessionevent"
)

func (r *eventRepo) AppendSession(ctx context.Context, data SessionData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetSource(data.Source).
		SetExtractionMethod(data.ExtractionMethod).
		SetResumeText(data.ResumeText).
		SetSkills(data.Skills).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessions(ctx context.Context, opts QueryOpts) ([]Session, error) {
	q := r.client.SessionEvent.Query().
		Order(ent.Desc(sessionevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(sessionevent.SequenceGT(opts.After))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	out := make([]Session, len(rows))
	for i, row := range rows {
		out[i] = sessionFromRow(row)
	}
	return out, nil
}

func (r *eventRepo) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	row, err := r.client.SessionEvent.Query().
		Where(sessionevent.SessionID(sessionID)).
		Order(ent.Desc(sessionevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	s := sessionFromRow(row)
	return &s, nil
}

func (r *eventRepo) LatestSession(ctx context.Context) (*Session, error) {
	row, err := r.client.SessionEvent.Query().
		Order(ent.Desc(sessionevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest session: %w", err)
	}
	s := sessionFromRow(row)
	return &s, nil
}

func sessionFromRow(row *ent.SessionEvent) Session {
	return Session{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		SessionData: SessionData{
			SessionID:        row.SessionID,
			Source:           row.Source,
			ExtractionMethod: row.ExtractionMethod,
			ResumeText:       row.ResumeText,
			Skills:           row.Skills,
		},
	}
}
