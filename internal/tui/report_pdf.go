package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"pomodial/internal/session"
)

// GeneratePDFReport writes a one-page statistics summary to dir and
// returns the path of the written file.
func GeneratePDFReport(m *session.Machine, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Pomodial Report: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Statistics")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	rows := []string{
		fmt.Sprintf("Completed cycles: %d", m.Sessions()),
		fmt.Sprintf("Total focus time: %d min", m.TotalFocusMinutes()),
		fmt.Sprintf("Total break time: %d min", m.TotalBreakMinutes()),
	}
	for _, row := range rows {
		pdf.Cell(0, 8, row)
		pdf.Ln(8)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Configuration")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Current mode: %s (%s configured)", m.Mode(), FormatClock(m.Duration())))
	pdf.Ln(8)
	if m.CycleFocusDone() {
		pdf.Cell(0, 8, "A focus session is awaiting its break to complete the cycle.")
		pdf.Ln(8)
	}

	path := filepath.Join(dir, fmt.Sprintf("pomodial-%s.pdf", time.Now().Format("20060102-150405")))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
