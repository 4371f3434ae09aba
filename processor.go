package notas

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// PageReader reads the plain text of every page of a document.
type PageReader interface {
	ReadPages(ctx context.Context, path string) ([]string, error)
}

// PageReaderFunc adapts a function to the PageReader interface.
type PageReaderFunc func(ctx context.Context, path string) ([]string, error)

func (f PageReaderFunc) ReadPages(ctx context.Context, path string) ([]string, error) {
	return f(ctx, path)
}

// Processor extracts trade records from documents, one at a time.
//
// Failures are never fatal for a batch: a document that cannot be read, an
// empty page or a rejected row only produce a Diagnostic and contribute no
// record.
type Processor struct {
	Layout *Layout
	Reader PageReader
	Logger *zap.Logger // optional
}

// Result is the outcome of a batch.
type Result struct {
	Documents   int // number of documents processed
	Records     []TradeRecord
	Groups      []GroupedRecord
	Diagnostics Diagnostics
}

func (p *Processor) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

// Document extracts the trade records of the document at path.
func (p *Processor) Document(ctx context.Context, path string) ([]TradeRecord, Diagnostics) {
	name := filepath.Base(path)
	log := p.logger().With(zap.String("document", name))

	pages, err := p.readPages(ctx, path)
	if err != nil {
		log.Warn("cannot read document", zap.Error(err))
		return nil, Diagnostics{{Kind: DocumentFailed, Source: Source{Document: name}, Err: err}}
	}

	var records []TradeRecord
	var diags Diagnostics
	for i, text := range pages {
		page := i + 1
		if strings.TrimSpace(text) == "" {
			log.Debug("empty page", zap.Int("page", page))
			diags = append(diags, Diagnostic{Kind: EmptyPage, Source: Source{Document: name, Page: page}})
			continue
		}
		rs, ds := ExtractPage(text, p.Layout)
		for j := range rs {
			rs[j].Source.Document = name
			rs[j].Source.Page = page
		}
		ds.at(name, page)
		log.Debug("page extracted", zap.Int("page", page), zap.Int("records", len(rs)), zap.Int("diagnostics", len(ds)))
		records = append(records, rs...)
		diags = append(diags, ds...)
	}
	log.Info("document processed", zap.Int("pages", len(pages)), zap.Int("records", len(records)))
	return records, diags
}

// readPages reads the document, turning a panic of the reader into an error.
func (p *Processor) readPages(ctx context.Context, path string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cannot read %s: %v", path, r)
		}
	}()
	return p.Reader.ReadPages(ctx, path)
}

// Files processes the documents in order and groups their records.
//
// The only error returned is the context's one, if it is done before all
// documents are processed. The partial Result is returned anyway.
func (p *Processor) Files(ctx context.Context, paths []string) (*Result, error) {
	acc := NewAccumulator()
	res := &Result{}
	var err error
	for _, path := range paths {
		if err = ctx.Err(); err != nil {
			break
		}
		records, diags := p.Document(ctx, path)
		acc.Add(records...)
		res.Diagnostics = append(res.Diagnostics, diags...)
		res.Documents++
	}
	if acc.Len() == 0 {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{Kind: NoMatches})
	}
	res.Records = acc.Records()
	res.Groups = acc.Groups()
	return res, err
}

// Dir processes every PDF file found in dir, in lexical order.
//
// It returns an error wrapping ErrNoInputDir if dir does not exist, and
// ErrNoPDFFiles if it contains no PDF file. In both cases the Result contains
// the matching Diagnostic and nothing else.
func (p *Processor) Dir(ctx context.Context, dir string) (*Result, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		d := Diagnostic{Kind: MissingInputDir, Source: Source{Document: dir}, Err: err}
		return &Result{Diagnostics: Diagnostics{d}}, fmt.Errorf("%w: %s", ErrNoInputDir, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot list %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	if len(paths) == 0 {
		d := Diagnostic{Kind: NoPDFFiles, Source: Source{Document: dir}}
		return &Result{Diagnostics: Diagnostics{d}}, fmt.Errorf("%w: %s", ErrNoPDFFiles, dir)
	}
	p.logger().Info("processing documents", zap.String("dir", dir), zap.Int("documents", len(paths)))
	return p.Files(ctx, paths)
}
