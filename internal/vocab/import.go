package vocab

import (
	"context"
	"fmt"
	"strings"

	"github.com/jusunglee/hangulpad/internal/db"
)

// Import upserts every entry in one transaction, so a failing row leaves the
// stored log untouched. Entries are held to the same rules as Log.Insert. It returns the number of entries written.
func Import(ctx context.Context, repo db.Repository, entries []Entry) (int, error) {
	for i, e := range entries {
		if e.Word == nil || e.Word.IsEmpty() {
			return 0, fmt.Errorf("entry %d: %w", i+1, ErrEmptyWord)
		}
		if strings.TrimSpace(e.Description) == "" {
			return 0, fmt.Errorf("entry %d (%s): %w", i+1, e.Word, ErrEmptyDescription)
		}
	}

	err := repo.WithTx(ctx, func(tx db.Repository) error {
		for _, e := range entries {
			if _, err := tx.UpsertEntry(ctx, db.UpsertEntryParams{
				Word:        e.Word.String(),
				Description: e.Description,
			}); err != nil {
				return fmt.Errorf("importing %s: %w", e.Word, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}
