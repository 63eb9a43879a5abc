package transliteration

import (
	"context"
	"fmt"
	"runtime"

	"github.com/jusunglee/hangulpad/internal/hangul"
	"golang.org/x/sync/errgroup"
)

// ParseLines converts each line into its own Hangul on up to workers
// goroutines, or GOMAXPROCS when workers is not positive. Results keep the
// order of lines. Unreadable trailing input is dropped, matching Parse.
func ParseLines(ctx context.Context, p *Parser, lines []string, workers int) ([]string, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]string, len(lines))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, line := range lines {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var h hangul.Hangul
			if _, err := p.Parse(&h, line); err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			out[i] = h.String()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("parsing lines: %w", err)
	}
	return out, nil
}
