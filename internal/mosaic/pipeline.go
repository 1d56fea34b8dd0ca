package mosaic

import (
	"fmt"
	"image"
	"math/rand/v2"

	"github.com/ironsheep/photomosaic/internal/imaging"
	"github.com/sirupsen/logrus"
)

// Report summarizes a mosaic run.
type Report struct {
	Output  string    `json:"output,omitempty"`
	Tiles   int       `json:"tiles"`
	Skipped []Skipped `json:"skipped,omitempty"`
	Blocks  int       `json:"blocks"`
	Matched int       `json:"matched"`
	Cols    int       `json:"cols"`
	Rows    int       `json:"rows"`
	Width   int       `json:"width"`
	Height  int       `json:"height"`
}

// Render samples target, matches every block against lib and composes the
// mosaic. The report's Tiles, Skipped and Output fields are left for the
// caller to fill in.
func Render(lib *Library, target image.Image, cfg Config, src rand.Source) (*image.NRGBA, Report) {
	grid, blocks := Sample(target, cfg.SampleSize)
	matcher := NewMatcher(lib, cfg.AllowableError, src)
	canvas := NewCanvas(grid, cfg.CellSize())

	report := Report{Blocks: len(blocks), Cols: grid.Cols, Rows: grid.Rows}
	for _, block := range blocks {
		tile, ok := matcher.Match(block.Average)
		if !ok {
			continue
		}
		canvas.Paint(block, tile)
		report.Matched++
	}

	out := canvas.Image()
	report.Width = out.Bounds().Dx()
	report.Height = out.Bounds().Dy()
	return out, report
}

// Pipeline runs a complete mosaic job against the file system.
type Pipeline struct {
	Config Config

	// Logger receives progress and diagnostics. Nil discards them.
	Logger logrus.FieldLogger

	// Store optionally caches tile summaries between runs.
	Store TileStore
}

// Run builds a library from tilePaths, renders target with it and writes the
// result to output.
//
// The configuration is validated before any file is touched. An unreadable
// target or an unwritable output aborts the run without leaving an output
// file; unreadable tiles are only reported in the returned Report.
func (p *Pipeline) Run(tilePaths []string, target, output string) (*Report, error) {
	if err := p.Config.Validate(); err != nil {
		return nil, err
	}
	if _, err := imaging.EncoderFor(output); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnwritableOutput, output, err)
	}

	log := p.Logger
	if log == nil {
		log = discardLogger()
	}

	targetImg, err := imaging.Open(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadableTarget, target, err)
	}
	b := targetImg.Bounds()
	if b.Dx() < p.Config.SampleSize || b.Dy() < p.Config.SampleSize {
		return nil, fmt.Errorf("%w: sample size %d exceeds target dimensions %dx%d",
			ErrInvalidConfig, p.Config.SampleSize, b.Dx(), b.Dy())
	}

	builder := Builder{Logger: log, Store: p.Store, Verbose: p.Config.Verbose}
	lib, skipped := builder.Build(tilePaths)

	img, report := Render(lib, targetImg, p.Config, NewSource(p.Config.Seed))
	report.Output = output
	report.Tiles = lib.Len()
	report.Skipped = skipped

	if err := imaging.Save(output, img); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnwritableOutput, output, err)
	}

	log.WithFields(logrus.Fields{
		"tiles":   report.Tiles,
		"skipped": len(report.Skipped),
		"blocks":  report.Blocks,
		"matched": report.Matched,
		"size":    fmt.Sprintf("%dx%d", report.Width, report.Height),
	}).Info("Mosaic rendered")

	return &report, nil
}
