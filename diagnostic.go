package notas

import (
	"errors"
	"fmt"
)

// Errors that halt a batch before any document is processed.
var (
	ErrNoInputDir = errors.New("input directory does not exist")
	ErrNoPDFFiles = errors.New("no PDF file found")
)

// DiagnosticKind classifies a Diagnostic.
type DiagnosticKind string

const (
	MissingInputDir DiagnosticKind = "missing-input-dir"
	NoPDFFiles      DiagnosticKind = "no-pdf-files"
	DocumentFailed  DiagnosticKind = "document-failed"
	EmptyPage       DiagnosticKind = "empty-page"
	NoMatchOnPage   DiagnosticKind = "no-match-on-page"
	RejectedLine    DiagnosticKind = "rejected-line"
	NoMatches       DiagnosticKind = "no-matches"
)

// Diagnostic is a non fatal note about a document, a page or a line.
//
// Processing always continues after a Diagnostic, the part it refers to
// simply contributes no record.
type Diagnostic struct {
	Kind   DiagnosticKind
	Source Source
	Err    error
}

// String returns the message printed to the user.
func (d Diagnostic) String() string {
	switch d.Kind {
	case MissingInputDir:
		return fmt.Sprintf("A pasta %s não existe.", d.Source.Document)
	case NoPDFFiles:
		return fmt.Sprintf("Nenhum arquivo PDF encontrado na pasta %s.", d.Source.Document)
	case DocumentFailed:
		return fmt.Sprintf("Erro ao processar %s: %v", d.Source.Document, d.Err)
	case EmptyPage:
		return fmt.Sprintf("Nenhum texto encontrado na página %d do arquivo %s.", d.Source.Page, d.Source.Document)
	case NoMatchOnPage:
		return fmt.Sprintf("Nenhum dado encontrado na página %d do arquivo %s.", d.Source.Page, d.Source.Document)
	case RejectedLine:
		return fmt.Sprintf("Linha ignorada em %s: %v", d.Source, d.Err)
	case NoMatches:
		return "Nenhum dado encontrado."
	}
	return fmt.Sprintf("%s %s: %v", d.Kind, d.Source, d.Err)
}

// Diagnostics is a list of Diagnostic.
type Diagnostics []Diagnostic

// Count returns the number of diagnostics of the given kind.
func (ds Diagnostics) Count(kind DiagnosticKind) int {
	n := 0
	for _, d := range ds {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

// at sets the document and page of every diagnostic.
func (ds Diagnostics) at(document string, page int) {
	for i := range ds {
		ds[i].Source.Document = document
		ds[i].Source.Page = page
	}
}
