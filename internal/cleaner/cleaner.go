package cleaner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/example/statement-cleaner/internal/config"
	"github.com/example/statement-cleaner/pkg/statement"
)

// Cleaner normalizes one statement export per Run call. It is decoupled
// from CLI details so it can be exercised directly in tests.
type Cleaner struct {
	cfg    *config.Config
	logger *log.Logger
}

// New returns a Cleaner using the given options and logger.
func New(cfg *config.Config, logger *log.Logger) *Cleaner {
	return &Cleaner{cfg: cfg, logger: logger}
}

// OutputPath resolves where the cleaned file goes: the explicit output if
// given, the input itself under in_place, otherwise the input path with a
// "-cleaned" suffix before the extension.
func (c *Cleaner) OutputPath(inputPath, outputPath string) string {
	if outputPath != "" {
		return outputPath
	}
	if c.cfg.InPlace {
		return inputPath
	}
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "-cleaned" + ext
}

// Run reads inputPath, normalizes its records and writes the result to
// outputPath. The output is written to a temporary file and renamed into
// place on success, so a failed run never leaves a partial output behind.
func (c *Cleaner) Run(inputPath, outputPath string) error {
	records, err := c.read(inputPath)
	if err != nil {
		return err
	}
	c.logger.Debug("parsed input", "file", inputPath, "rows", len(records))

	for _, rec := range records {
		if err := rec.NormalizeDate(c.cfg.ValidateDates); err != nil {
			return fmt.Errorf("%s: %w", inputPath, err)
		}
	}

	if c.cfg.FilterBlanks {
		blanks := 0
		for _, rec := range records {
			if rec.IsBlank() {
				blanks++
			}
		}
		if blanks > 0 {
			c.logger.Debug("dropping blank rows", "count", blanks)
		}
	}

	if err := c.write(outputPath, records); err != nil {
		return err
	}
	c.logger.Info("cleaned statement", "input", inputPath, "output", outputPath, "rows", len(records))
	return nil
}

func (c *Cleaner) read(path string) ([]statement.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := statement.NewReader(f, statement.KeyColumns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if _, err := r.Columns(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.logger.Debug("located header", "file", path, "data_line", r.Line())

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

func (c *Cleaner) write(path string, records []statement.Record) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp output: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	opts := statement.WriteOptions{
		Order:        statement.SortOrder(c.cfg.Sort),
		FilterBlanks: c.cfg.FilterBlanks,
	}
	if err = statement.Write(tmp, records, opts); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming %s: %w", tmp.Name(), err)
	}
	return nil
}
