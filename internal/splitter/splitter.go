// Package splitter cuts a cable into the longest equal whole-unit pieces
// possible, cutting any leftover into more pieces of that length and
// keeping whatever remains as one final shorter piece.
package splitter

import (
	"fmt"
	"strconv"

	"github.com/bft-labs/cablesplit/internal/domain"
	"github.com/bft-labs/cablesplit/pkg/log"
)

// Plan describes how a cable will be cut.
type Plan struct {
	// Name is the original cable name used as the piece name prefix
	Name string `json:"name" toml:"name" yaml:"name"`

	// Segments is times+1, the number of equal cuts requested
	Segments int `json:"segments" toml:"segments" yaml:"segments"`

	// BaseLength is the longest length the cable divides into Segments ways
	BaseLength int `json:"base_length" toml:"base_length" yaml:"base_length"`

	// Remainder is what is left after Segments pieces of BaseLength
	Remainder int `json:"remainder" toml:"remainder" yaml:"remainder"`

	// TotalPieces is the number of pieces the split produces
	TotalPieces int `json:"total_pieces" toml:"total_pieces" yaml:"total_pieces"`

	// PadWidth is the digit count used for piece indices
	PadWidth int `json:"pad_width" toml:"pad_width" yaml:"pad_width"`
}

// PieceName returns the name of the piece at index i.
func (p Plan) PieceName(i int) string {
	return fmt.Sprintf("%s-%0*d", p.Name, p.PadWidth, i)
}

// Lengths returns the piece lengths in output order. A Plan with no
// positive base length, such as the zero Plan, has no pieces.
func (p Plan) Lengths() []int {
	if p.BaseLength <= 0 || p.Segments <= 0 {
		return nil
	}
	lengths := make([]int, 0, max(p.TotalPieces, 0))
	for i := 0; i < p.Segments; i++ {
		lengths = append(lengths, p.BaseLength)
	}
	remaining := p.Remainder
	for remaining-p.BaseLength >= 0 {
		lengths = append(lengths, p.BaseLength)
		remaining -= p.BaseLength
	}
	if remaining > 0 {
		lengths = append(lengths, remaining)
	}
	return lengths
}

// Splitter splits cables. The zero value is not usable; use New.
// A Splitter holds no per-call state and is safe for concurrent use.
type Splitter struct {
	logger log.Logger
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithLogger sets the logger used for plan and rejection messages.
func WithLogger(l log.Logger) Option {
	return func(s *Splitter) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Splitter. Without options it logs nothing.
func New(opts ...Option) *Splitter {
	s := &Splitter{logger: log.NewNoopLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSplitter = New()

// Split cuts cable using a Splitter that logs nothing.
func Split(cable *domain.Cable, times int) ([]domain.Cable, error) {
	return defaultSplitter.Split(cable, times)
}

// PlanSplit computes the plan for cable using a Splitter that logs nothing.
func PlanSplit(cable *domain.Cable, times int) (Plan, error) {
	return defaultSplitter.Plan(cable, times)
}

// Split cuts cable times times into the longest equal integer lengths
// possible. Leftover length is cut into more pieces of that length until
// that is no longer possible, and anything still left becomes one last
// shorter piece. Pieces are named "<name>-<index>" with indices zero-padded
// to a common width.
//
// All errors wrap domain.ErrInvalidArgument. The input cable is not modified.
func (s *Splitter) Split(cable *domain.Cable, times int) ([]domain.Cable, error) {
	plan, err := s.Plan(cable, times)
	if err != nil {
		return nil, err
	}

	pieces := make([]domain.Cable, 0, plan.TotalPieces)
	for _, length := range plan.Lengths() {
		pieces = append(pieces, domain.Cable{
			Length: length,
			Name:   plan.PieceName(len(pieces)),
		})
	}
	return pieces, nil
}

// Plan validates the inputs and computes the split without producing pieces.
func (s *Splitter) Plan(cable *domain.Cable, times int) (Plan, error) {
	if err := validate(cable, times); err != nil {
		fields := []log.Field{log.Int("times", times), log.Err(err)}
		if cable != nil {
			fields = append(fields, log.String("cable", cable.Name), log.Int("length", cable.Length))
		}
		s.logger.Warn("split rejected", fields...)
		return Plan{}, err
	}

	plan := computePlan(*cable, times)
	s.logger.Debug("split planned",
		log.String("cable", cable.Name),
		log.Int("length", cable.Length),
		log.Int("times", times),
		log.Int("base_length", plan.BaseLength),
		log.Int("remainder", plan.Remainder),
		log.Int("pieces", plan.TotalPieces),
		log.Int("pad_width", plan.PadWidth),
		log.Any("lengths", plan.Lengths()),
	)
	return plan, nil
}

// validate checks the inputs in a fixed order and returns the first violation.
func validate(cable *domain.Cable, times int) error {
	switch {
	case cable == nil:
		return domain.ErrNilCable
	case times < 1:
		return domain.ErrTooFewSplits
	case times > domain.MaxSplits:
		return domain.ErrTooManySplits
	case times > cable.Length:
		return domain.ErrSplitsExceedLength
	case times == cable.Length:
		return domain.ErrSplitsEqualLength
	}
	return nil
}

// computePlan assumes validate passed, so BaseLength is at least 1.
func computePlan(cable domain.Cable, times int) Plan {
	segments := times + 1
	base := cable.Length / segments
	remainder := cable.Length % segments

	total := segments + remainder/base
	if remainder%base != 0 {
		total++
	}

	return Plan{
		Name:        cable.Name,
		Segments:    segments,
		BaseLength:  base,
		Remainder:   remainder,
		TotalPieces: total,
		PadWidth:    len(strconv.Itoa(total)),
	}
}
