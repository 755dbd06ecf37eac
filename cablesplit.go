// Package cablesplit splits a named length of cable into the longest equal
// whole-unit pieces possible.
//
// Example usage:
//
//	cable, err := cablesplit.NewCable(10, "coconut")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pieces, err := cablesplit.Split(&cable, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// pieces: coconut-0(3) coconut-1(3) coconut-2(3) coconut-3(1)
package cablesplit

import (
	"github.com/bft-labs/cablesplit/internal/domain"
	"github.com/bft-labs/cablesplit/internal/splitter"
)

// Cable is a named length of cable. Split returns its pieces as Cables.
type Cable = domain.Cable

// Plan describes how a cable will be cut without producing the pieces.
type Plan = splitter.Plan

// ErrInvalidArgument is wrapped by every error Split returns.
var ErrInvalidArgument = domain.ErrInvalidArgument

// MaxSplits is the largest split count Split accepts.
const MaxSplits = domain.MaxSplits

// NewCable creates a Cable, rejecting non-positive lengths and empty names.
func NewCable(length int, name string) (Cable, error) {
	return domain.NewCable(length, name)
}

// Split cuts cable times times. See splitter.Splitter.Split for the rules.
func Split(cable *Cable, times int) ([]Cable, error) {
	return splitter.Split(cable, times)
}

// PlanSplit validates the inputs and returns the split plan.
func PlanSplit(cable *Cable, times int) (Plan, error) {
	return splitter.PlanSplit(cable, times)
}

// ParseTimes parses a split count from text, rejecting non-integers such as "1.6".
func ParseTimes(s string) (int, error) {
	return splitter.ParseTimes(s)
}
