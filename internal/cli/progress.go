package cli

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// ScanProgress renders a progress bar over the page-scan pass.
type ScanProgress struct {
	writer io.Writer
	bar    *progressbar.ProgressBar
}

// NewScanProgress creates a progress reporter writing to w (stderr when nil,
// keeping stdout clean for command output).
func NewScanProgress(w io.Writer) *ScanProgress {
	if w == nil {
		w = os.Stderr
	}
	return &ScanProgress{writer: w}
}

// Start initializes the bar for the given total page count.
func (p *ScanProgress) Start(totalPages int) {
	p.bar = progressbar.NewOptions(totalPages,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Scanning pages...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

// Advance marks one page as scanned.
func (p *ScanProgress) Advance() {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

// Finish completes the bar.
func (p *ScanProgress) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
