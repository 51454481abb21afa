package service

import "context"

// WinnerRecorder defines the interface for publishing payout events to the
// leaderboard module. A failure here never fails the money movement that
// already committed; callers log and continue.
type WinnerRecorder interface {
	RecordWinner(ctx context.Context, roundID, userID string, prize int64, label, game string) error
}
