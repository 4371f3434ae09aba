package notas

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultLayout is the name of the layout used when none is selected.
const DefaultLayout = "bovespa"

//go:embed layouts.yaml
var defaultLayouts []byte

// Layout describes how trade rows are laid out in one kind of nota de corretagem.
//
// Fields are picked by their position from the end of the row, because the
// ticker column has a variable number of words.
type Layout struct {
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description"`
	// Marker is the literal text that identifies a trade row.
	Marker string `yaml:"marker" validate:"required"`
	// Prefix is removed from the start of the row to get the ticker.
	Prefix string `yaml:"prefix"`
	// Qualifiers matches the trailing qualifier, it is removed with everything after it.
	Qualifiers      string `yaml:"qualifiers"`
	QuantityFromEnd int    `yaml:"quantity_from_end" validate:"min=1,nefield=PriceFromEnd"`
	PriceFromEnd    int    `yaml:"price_from_end" validate:"min=1"`
	// Strict rejects rows whose quantity or price is not a number.
	Strict bool `yaml:"strict"`

	prefix     *regexp.Regexp
	qualifiers *regexp.Regexp
}

var validate = validator.New()

// compile validates the layout and compiles its patterns.
func (l *Layout) compile() error {
	if err := validate.Struct(l); err != nil {
		return fmt.Errorf("invalid layout %q: %w", l.Name, err)
	}
	var err error
	if l.Prefix != "" {
		if l.prefix, err = regexp.Compile(l.Prefix); err != nil {
			return fmt.Errorf("invalid prefix in layout %q: %w", l.Name, err)
		}
	}
	if l.Qualifiers != "" {
		if l.qualifiers, err = regexp.Compile(l.Qualifiers); err != nil {
			return fmt.Errorf("invalid qualifiers in layout %q: %w", l.Name, err)
		}
	}
	return nil
}

// ErrRejectedLine is wrapped by every error returned by ParseLine.
var ErrRejectedLine = errors.New("rejected trade row")

// ParseLine extracts a trade record from a single line of text.
//
// ok is false if the line is not a trade row. A trade row that cannot be
// parsed into a valid record returns an error wrapping ErrRejectedLine.
func (l *Layout) ParseLine(line string) (r TradeRecord, ok bool, err error) {
	if !strings.Contains(line, l.Marker) {
		return TradeRecord{}, false, nil
	}
	line = strings.TrimSpace(line)

	ticker := line
	if l.prefix != nil {
		ticker = l.prefix.ReplaceAllString(ticker, "")
	}
	if l.qualifiers != nil {
		ticker = l.qualifiers.ReplaceAllString(ticker, "")
	}
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return TradeRecord{}, true, fmt.Errorf("%w: no ticker in %q", ErrRejectedLine, line)
	}

	fields := strings.Fields(line)
	qi, pi := len(fields)-l.QuantityFromEnd, len(fields)-l.PriceFromEnd
	if qi < 1 || pi < 1 {
		// index 0 is always the marker
		return TradeRecord{}, true, fmt.Errorf("%w: %d fields in %q", ErrRejectedLine, len(fields), line)
	}
	quantity, price := fields[qi], fields[pi]

	if l.Strict {
		if _, err := ParseNumber(quantity); err != nil {
			return TradeRecord{}, true, fmt.Errorf("%w: quantity: %w", ErrRejectedLine, err)
		}
		if _, err := ParseNumber(price); err != nil {
			return TradeRecord{}, true, fmt.Errorf("%w: price: %w", ErrRejectedLine, err)
		}
	}
	return NewTradeRecord(ticker, quantity, price), true, nil
}

// DecodeLayouts decodes and validates a YAML list of layouts.
func DecodeLayouts(r io.Reader) ([]*Layout, error) {
	var layouts []*Layout
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&layouts); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot decode layouts: %w", err)
	}
	for i, l := range layouts {
		if l == nil {
			return nil, fmt.Errorf("empty layout at index %d", i)
		}
		if err := l.compile(); err != nil {
			return nil, err
		}
	}
	return layouts, nil
}

// Layouts is a set of layouts indexed by name.
type Layouts struct {
	layouts []*Layout
	index   map[string]*Layout
}

// NewLayouts returns a set containing the built-in layouts.
func NewLayouts() *Layouts {
	builtin, err := DecodeLayouts(bytes.NewReader(defaultLayouts))
	if err != nil {
		panic(err)
	}
	s := &Layouts{index: make(map[string]*Layout)}
	s.Add(builtin...)
	return s
}

// Add adds layouts to the set, replacing the ones with the same name.
func (s *Layouts) Add(layouts ...*Layout) {
	for _, l := range layouts {
		if old, exists := s.index[l.Name]; exists {
			i := slices.Index(s.layouts, old)
			s.layouts[i] = l
		} else {
			s.layouts = append(s.layouts, l)
		}
		s.index[l.Name] = l
	}
}

// Get returns the layout called name.
func (s *Layouts) Get(name string) (*Layout, bool) {
	l, ok := s.index[name]
	return l, ok
}

// All returns every layout, in declaration order.
func (s *Layouts) All() []*Layout { return slices.Clone(s.layouts) }
