package report

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"WeeklyPapers/internal/domain"
	"WeeklyPapers/internal/ports"
)

const fileNameFormat = "huggingface_top_10_papers_%s_translated.txt"

// Writer serializes a report into a human-readable UTF-8 text file.
type Writer struct {
	dir    string
	logger *slog.Logger
}

var _ ports.ReportWriter = (*Writer)(nil)

// NewWriter targets the given output directory; empty means current directory.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir, logger: logger}
}

// Write creates (or overwrites) the weekly report file and returns its path.
func (w *Writer) Write(rep domain.Report) (string, error) {
	path := filepath.Join(w.dir, fmt.Sprintf(fileNameFormat, rep.Week))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}

	buf := bufio.NewWriter(f)
	fmt.Fprintf(buf, "Hugging Face weekly top papers (%s) - translated\n", rep.Week)
	fmt.Fprintf(buf, "Source: %s\n\n", rep.SourceURL)

	for _, paper := range rep.Papers {
		writeEntry(buf, paper)
	}

	if err := buf.Flush(); err != nil {
		f.Close()
		return "", fmt.Errorf("write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}

	if w.logger != nil {
		w.logger.Debug("report flushed", "path", path, "entries", len(rep.Papers))
	}
	return path, nil
}

func writeEntry(buf *bufio.Writer, paper domain.Paper) {
	if paper.Failed() {
		fmt.Fprintf(buf, "--- %d. entry failed ---\n%s\n\n", paper.Rank, paper.Err)
		return
	}

	fmt.Fprintf(buf, "--- %d. %s ---\n", paper.Rank, paper.Title)
	fmt.Fprintf(buf, "Link: %s\n\n", paper.URL)

	if paper.Abstract == "" {
		fmt.Fprint(buf, "Abstract not found.\n\n")
		return
	}

	fmt.Fprintf(buf, "## Abstract (Original)\n%s\n\n", paper.Abstract)
	fmt.Fprintf(buf, "## Abstract (Korean)\n%s\n\n", paper.Translation)
}
