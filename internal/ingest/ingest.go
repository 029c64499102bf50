// Package ingest loads source documents into the content store. It accepts
// plain text and XLSX files; spreadsheets are flattened to text so the
// extraction rules see their cells as lines.
package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kwanza-labs/insights-cli/internal/docstore"
	"github.com/kwanza-labs/insights-cli/internal/registry"
)

// Service indexes documents from a source directory.
type Service struct {
	store   docstore.Store
	aliases registry.AliasTable
	workers int
}

// Result summarizes one ingest run.
type Result struct {
	Indexed int
	Skipped int
	Failed  int
}

func NewService(store docstore.Store, aliases registry.AliasTable, workers int) *Service {
	if workers <= 0 {
		workers = 4
	}
	return &Service{store: store, aliases: aliases, workers: workers}
}

// IngestDir indexes every .txt and .xlsx file under dir. Files are
// processed concurrently; a file that fails to parse or index is counted
// and logged but does not abort the run.
func (s *Service) IngestDir(ctx context.Context, dir string) (Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Result{}, eris.Wrap(err, "ingest: read source dir")
	}

	var indexed, skipped, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".txt" && ext != ".xlsx" {
			skipped.Add(1)
			continue
		}

		path := filepath.Join(dir, name)
		g.Go(func() error {
			if err := s.ingestFile(gctx, path, name, ext); err != nil {
				failed.Add(1)
				zap.L().Warn("ingest: file failed",
					zap.String("path", path),
					zap.Error(err),
				)
				return nil // keep going for the other files
			}
			indexed.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, eris.Wrap(err, "ingest: wait for workers")
	}

	result := Result{
		Indexed: int(indexed.Load()),
		Skipped: int(skipped.Load()),
		Failed:  int(failed.Load()),
	}
	zap.L().Info("ingest: run complete",
		zap.String("dir", dir),
		zap.Int("indexed", result.Indexed),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

func (s *Service) ingestFile(ctx context.Context, path, name, ext string) error {
	var content string
	switch ext {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return eris.Wrap(err, "ingest: read text file")
		}
		content = string(data)
	case ".xlsx":
		flattened, err := flattenXLSX(path)
		if err != nil {
			return err
		}
		content = flattened
	}

	if strings.TrimSpace(content) == "" {
		return eris.New("ingest: empty document")
	}

	company := ""
	if found := s.aliases.Identify(name); len(found) > 0 {
		company = found[0]
	}

	doc := docstore.Document{
		ID:      uuid.NewString(),
		Company: company,
		Title:   strings.TrimSuffix(name, filepath.Ext(name)),
		Content: content,
	}
	if err := s.store.Index(ctx, doc); err != nil {
		return eris.Wrap(err, "ingest: index document")
	}
	return nil
}

// flattenXLSX renders every sheet as lines of space-joined cell values.
func flattenXLSX(path string) (string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return "", eris.Wrap(err, "ingest: open xlsx")
	}

	var sb strings.Builder
	for _, sheet := range f.Sheets {
		for _, row := range sheet.Rows {
			cells := make([]string, 0, len(row.Cells))
			for _, cell := range row.Cells {
				if v := strings.TrimSpace(cell.Value); v != "" {
					cells = append(cells, v)
				}
			}
			if len(cells) > 0 {
				sb.WriteString(strings.Join(cells, " "))
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String(), nil
}
