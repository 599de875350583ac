package history

import (
	"context"

	"gymflow/internal/ledger"
)

// Journal adapts a Repository to the booking event listener contract.
type Journal struct {
	repo Repository
}

func NewJournal(repo Repository) *Journal {
	return &Journal{repo: repo}
}

func (j *Journal) HandleEvent(ctx context.Context, ev ledger.Event) error {
	return j.repo.Record(ctx, ev)
}

func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	return j.repo.ListRecent(ctx, limit)
}

func (j *Journal) ForUser(ctx context.Context, userID string, limit int) ([]Entry, error) {
	return j.repo.ListByUser(ctx, userID, limit)
}
