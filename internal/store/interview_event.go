package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/intervu/ent/interviewevent"
)

const (
	// ActionStart marks the creation of a new interview session.
	ActionStart = "start"
	// ActionComplete marks an interview reaching its terminal state.
	ActionComplete = "complete"
)

func (r *eventRepo) AppendInterview(ctx context.Context, data InterviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.InterviewEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetPosition(data.Position).
		SetTopicsCompleted(data.TopicsCompleted).
		SetMeanScore(data.MeanScore).
		SetSuccess(data.Success).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save interview event: %w", err)
	}
	return nil
}

func (r *eventRepo) StatsForDay(ctx context.Context, t time.Time) (DailyStats, error) {
	dayStart := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	events, err := r.client.InterviewEvent.Query().
		Where(
			interviewevent.TimestampGTE(dayStart),
			interviewevent.TimestampLT(dayEnd),
		).
		All(ctx)
	if err != nil {
		return DailyStats{}, fmt.Errorf("query interview events: %w", err)
	}

	stats := DailyStats{
		Day:                  dayStart,
		PositionDistribution: make(map[string]int),
	}
	for _, e := range events {
		switch e.Action {
		case ActionStart:
			stats.TotalInterviews++
			stats.PositionDistribution[e.Position]++
		case ActionComplete:
			stats.CompletedInterviews++
			if e.Success {
				stats.SuccessCount++
			}
		}
	}
	return stats, nil
}
