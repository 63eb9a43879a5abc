package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jusunglee/hangulpad/internal/csvlog"
	"github.com/jusunglee/hangulpad/internal/db"
	"github.com/jusunglee/hangulpad/internal/hangul"
	"github.com/jusunglee/hangulpad/internal/store"
	"github.com/jusunglee/hangulpad/internal/transliteration"
	"github.com/jusunglee/hangulpad/internal/tui"
	"github.com/jusunglee/hangulpad/internal/vocab"
	"github.com/samber/lo"
)

func runTUI(ctx context.Context, cfg *config) error {
	log, closeLog, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	repo, err := store.Open(ctx, cfg.databaseURL)
	if err != nil {
		return err
	}
	defer repo.Close()

	vlog, err := vocab.Open(ctx, repo, log)
	if err != nil {
		return err
	}

	tr, err := newTranslator(ctx, cfg)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "starting tui", "entries", vlog.Len(), "llm_provider", cfg.llmProvider)
	return tui.Run(ctx, tui.Config{
		Parser:     transliteration.NewParser(transliteration.NewTable()),
		Log:        vlog,
		Translator: tr,
		Logger:     log,
	})
}

// inputLines returns args, or every line of r when there are none.
func inputLines(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}

func runParse(ctx context.Context, cfg *config, args []string, in io.Reader, out io.Writer) error {
	lines, err := inputLines(args, in)
	if err != nil {
		return err
	}
	p := transliteration.NewParser(transliteration.NewTable())
	words, err := transliteration.ParseLines(ctx, p, lines, cfg.workers)
	if err != nil {
		return err
	}
	for _, w := range words {
		fmt.Fprintln(out, w)
	}
	return nil
}

func runRomanize(_ context.Context, _ *config, args []string, in io.Reader, out io.Writer) error {
	lines, err := inputLines(args, in)
	if err != nil {
		return err
	}
	for _, line := range lines {
		h, err := hangul.Parse(line)
		if err != nil {
			return fmt.Errorf("romanizing %q: %w", line, err)
		}
		fmt.Fprintln(out, transliteration.Romanize(h))
	}
	return nil
}

func runHints(prefix string, out io.Writer) error {
	p := transliteration.NewParser(transliteration.NewTable())
	matches := p.WithPrefix(prefix)
	if len(matches) == 0 {
		return fmt.Errorf("no letter is spelled with %q", prefix)
	}
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().PaddingRight(1)
		})
	for _, m := range matches {
		t.Row(m.Text, m.Value.String(), m.Value.Name())
	}
	_, err := fmt.Fprintln(out, t.String())
	return err
}

func entriesToRows(entries []db.Entry) []csvlog.Row {
	return lo.Map(entries, func(e db.Entry, _ int) csvlog.Row {
		return csvlog.Row{Hangul: e.Word, Description: e.Description}
	})
}

// rowsToEntries keeps the rows with a Hangul word and a description, and
// logs the rest.
func rowsToEntries(ctx context.Context, log *slog.Logger, rows []csvlog.Row) []vocab.Entry {
	entries := make([]vocab.Entry, 0, len(rows))
	for i, row := range rows {
		word, err := hangul.Parse(row.Hangul)
		if err != nil || word.IsEmpty() {
			log.WarnContext(ctx, "skipping row", "line", i+2, "hangul", row.Hangul, "error", err)
			continue
		}
		if strings.TrimSpace(row.Description) == "" {
			log.WarnContext(ctx, "skipping row without description", "line", i+2, "hangul", row.Hangul)
			continue
		}
		entries = append(entries, vocab.Entry{Word: word, Description: row.Description})
	}
	return entries
}

func runExport(ctx context.Context, cfg *config) error {
	log, closeLog, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	repo, err := store.Open(ctx, cfg.databaseURL)
	if err != nil {
		return err
	}
	defer repo.Close()

	entries, err := repo.ListEntries(ctx)
	if err != nil {
		return fmt.Errorf("listing entries: %w", err)
	}

	var w io.Writer = os.Stdout
	if cfg.out != "-" {
		f, err := os.Create(cfg.out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", cfg.out, err)
		}
		defer f.Close()
		w = f
	}

	if err := csvlog.Write(w, entriesToRows(entries), csvlog.Options{Encoding: cfg.encoding}); err != nil {
		return err
	}
	log.InfoContext(ctx, "exported vocabulary log", "entries", len(entries), "out", cfg.out, "encoding", cfg.encoding)
	return nil
}

func runImport(ctx context.Context, cfg *config) error {
	log, closeLog, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	var r io.Reader = os.Stdin
	if cfg.in != "-" {
		f, err := os.Open(cfg.in)
		if err != nil {
			return fmt.Errorf("opening %s: %w", cfg.in, err)
		}
		defer f.Close()
		r = f
	}

	rows, err := csvlog.Read(r, csvlog.Options{Encoding: cfg.encoding})
	if err != nil {
		return err
	}
	entries := rowsToEntries(ctx, log, rows)

	repo, err := store.Open(ctx, cfg.databaseURL)
	if err != nil {
		return err
	}
	defer repo.Close()

	n, err := vocab.Import(ctx, repo, entries)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "imported entries", "written", n, "skipped", len(rows)-n)
	return nil
}
