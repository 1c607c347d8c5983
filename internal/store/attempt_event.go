package store

import (
	"context"
	"fmt"

	"github.com/abhisek/quizwoiz/ent"
	"github.com/abhisek/quizwoiz/ent/attemptevent"
)

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuizID(data.QuizID).
		SetTitle(data.Title).
		SetCategory(data.Category).
		SetTotalQuestions(data.Total).
		SetCorrectAnswers(data.Correct).
		SetPercentage(data.Percentage).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	q := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(attemptevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(attemptevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(attemptevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(attemptevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	records := make([]AttemptRecord, len(events))
	for i, e := range events {
		records[i] = AttemptRecord{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			AttemptEventData: AttemptEventData{
				SessionID:    e.SessionID,
				QuizID:       e.QuizID,
				Title:        e.Title,
				Category:     e.Category,
				Total:        e.TotalQuestions,
				Correct:      e.CorrectAnswers,
				Percentage:   e.Percentage,
				DurationSecs: e.DurationSecs,
			},
		}
	}
	return records, nil
}
