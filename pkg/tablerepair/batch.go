package tablerepair

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/models"
	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/output"
	"golang.org/x/sync/errgroup"
)

// ParseDocument decodes a docling document from r and repairs all its tables.
func ParseDocument(ctx context.Context, r io.Reader, opts Options) (*models.DocumentData, error) {
	var doc models.DocumentInput
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	results, err := ParseTables(ctx, doc.Name, doc.Tables, opts)
	if err != nil {
		return nil, err
	}
	return &models.DocumentData{Name: doc.Name, Tables: results}, nil
}

// ParseTables repairs independent tables in parallel. A failing table is
// reported in its result with ParsingSuccess false and does not affect the
// others. Results keep the input order. The only error is context
// cancellation.
func ParseTables(ctx context.Context, name string, inputs []models.TableInput, opts Options) ([]models.TableResult, error) {
	results := make([]models.TableResult, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	for i := range inputs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = parseOne(name, i, inputs[i], opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, res := range results {
		if !res.ParsingSuccess {
			failed++
		}
	}
	log.Info().
		Str("document", name).
		Int("tables", len(results)).
		Int("failed", failed).
		Msg("tables parsed")

	return results, nil
}

func parseOne(name string, index int, in models.TableInput, opts Options) models.TableResult {
	res := models.TableResult{
		ID:     TableID(name, index),
		Index:  index,
		Source: in.Source,
	}

	ts, err := ParseTable(in, opts)
	if err != nil {
		tableErr := NewTableError(index, in.Source, err)
		log.Warn().Err(err).Str("id", res.ID).Int("index", index).Msg("table parsing failed")

		raw := in
		res.Error = tableErr.Error()
		res.Raw = &raw
		return res
	}

	res.ParsingSuccess = true
	res.Table = ts
	if opts.ShouldIncludeDetailed() {
		detailed := output.ToDetailed(ts)
		res.Detailed = &detailed
	}
	if opts.ShouldIncludeStructured() {
		structured := output.ToStructuredTable(ts)
		res.Structured = &structured
	}
	return res
}

// TableID derives a stable identifier from a document name and table index.
func TableID(name string, index int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("%s#%d", name, index))).String()
}
