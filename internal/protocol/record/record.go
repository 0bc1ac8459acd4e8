// Package record implements the positional field codec shared by every
// entity kind: delimiter-joined text fields, empty token for NULL, fixed
// decimal and calendar-date renderings, and the broken-bar masking used by
// the one pipe-delimited record format.
package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// CommaDelimiter is the default record delimiter.
	CommaDelimiter = ","
	// PipeDelimiter is used by records whose free text is expected to
	// contain commas; it collides with the outer request separator, which
	// is why the request split is capped at three segments.
	PipeDelimiter = "|"

	// pipeMask substitutes literal '|' inside free text of pipe-delimited
	// records. The glyph is assumed absent from legitimate input; text that
	// does contain U+00A6 will not round-trip.
	pipeMask = "¦"

	// DateLayout is the wire form of calendar dates.
	DateLayout = "2006-01-02"
)

var (
	ErrMalformedRecord = errors.New("record: wrong field count")
	ErrNumericFormat   = errors.New("record: invalid numeric value")
	ErrInvalidDate     = errors.New("record: invalid date value")
	ErrInvalidID       = errors.New("record: invalid record id")
)

// Split tokenizes one encoded record and enforces its arity. Field order and
// count are fixed per entity kind; the wire carries positions, not names.
func Split(payload, delim string, arity int) ([]string, error) {
	fields := strings.Split(payload, delim)
	if len(fields) != arity {
		return nil, fmt.Errorf("%w: got %d fields, want %d", ErrMalformedRecord, len(fields), arity)
	}
	return fields, nil
}

// ParseID parses a standalone identifier payload (FIND/DELETE requests).
func ParseID(payload string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(payload), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, strings.TrimSpace(payload))
	}
	return id, nil
}

// MaskPipes replaces literal '|' so a free-text field survives pipe joining.
func MaskPipes(s string) string {
	return strings.ReplaceAll(s, PipeDelimiter, pipeMask)
}

// UnmaskPipes restores literal '|' on the way out.
func UnmaskPipes(s string) string {
	return strings.ReplaceAll(s, pipeMask, PipeDelimiter)
}

// Parser consumes split tokens positionally and converts them to typed
// values. The first conversion failure sticks; later accessors return zero
// values and Err reports the failure.
type Parser struct {
	fields []string
	pos    int
	err    error
}

func NewParser(fields []string) *Parser {
	return &Parser{fields: fields}
}

func (p *Parser) next(name string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	if p.pos >= len(p.fields) {
		p.err = fmt.Errorf("%w: missing field %s", ErrMalformedRecord, name)
		return "", false
	}
	raw := p.fields[p.pos]
	p.pos++
	return raw, true
}

func (p *Parser) Text(name string) string {
	raw, _ := p.next(name)
	return raw
}

func (p *Parser) Int(name string) int64 {
	raw, ok := p.next(name)
	if !ok {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.err = fmt.Errorf("%w: field %s: %q", ErrNumericFormat, name, raw)
		return 0
	}
	return v
}

func (p *Parser) Decimal(name string) float64 {
	raw, ok := p.next(name)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.err = fmt.Errorf("%w: field %s: %q", ErrNumericFormat, name, raw)
		return 0
	}
	return v
}

func (p *Parser) Date(name string) time.Time {
	raw, ok := p.next(name)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		p.err = fmt.Errorf("%w: field %s: %q", ErrInvalidDate, name, raw)
		return time.Time{}
	}
	return t
}

// NullText distinguishes absent from empty by schema position: a nullable
// text field whose token is empty decodes to nil.
func (p *Parser) NullText(name string) *string {
	raw, ok := p.next(name)
	if !ok || raw == "" {
		return nil
	}
	return &raw
}

func (p *Parser) NullInt(name string) *int64 {
	raw, ok := p.next(name)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.err = fmt.Errorf("%w: field %s: %q", ErrNumericFormat, name, raw)
		return nil
	}
	return &v
}

func (p *Parser) NullDecimal(name string) *float64 {
	raw, ok := p.next(name)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.err = fmt.Errorf("%w: field %s: %q", ErrNumericFormat, name, raw)
		return nil
	}
	return &v
}

// Err returns the first conversion failure, if any.
func (p *Parser) Err() error {
	return p.err
}

// Builder accumulates typed values and joins them into one encoded record.
// Encoding is deterministic: the same values always yield the same string.
type Builder struct {
	fields []string
}

func NewBuilder() *Builder {
	return &Builder{fields: make([]string, 0, 8)}
}

func (b *Builder) Text(v string) *Builder {
	b.fields = append(b.fields, v)
	return b
}

func (b *Builder) Int(v int64) *Builder {
	b.fields = append(b.fields, strconv.FormatInt(v, 10))
	return b
}

func (b *Builder) Decimal(v float64) *Builder {
	b.fields = append(b.fields, FormatDecimal(v))
	return b
}

func (b *Builder) Date(v time.Time) *Builder {
	b.fields = append(b.fields, v.Format(DateLayout))
	return b
}

func (b *Builder) NullText(v *string) *Builder {
	if v == nil {
		b.fields = append(b.fields, "")
		return b
	}
	b.fields = append(b.fields, *v)
	return b
}

func (b *Builder) NullInt(v *int64) *Builder {
	if v == nil {
		b.fields = append(b.fields, "")
		return b
	}
	return b.Int(*v)
}

func (b *Builder) NullDecimal(v *float64) *Builder {
	if v == nil {
		b.fields = append(b.fields, "")
		return b
	}
	return b.Decimal(*v)
}

func (b *Builder) Join(delim string) string {
	return strings.Join(b.fields, delim)
}

// FormatDecimal renders money-style values with two fraction digits.
func FormatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
