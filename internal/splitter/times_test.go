package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/cablesplit/internal/domain"
)

func TestParseTimes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "2", want: 2},
		{in: " 10 ", want: 10},
		{in: "-1", want: -1},
		{in: "1.6", wantErr: true},
		{in: "2.0", wantErr: true},
		{in: "", wantErr: true},
		{in: "two", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimes(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrTimesNotInteger)
				assert.ErrorIs(t, err, domain.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimes_OutOfRange(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
	}{
		{in: "99999999999999999999", wantErr: domain.ErrTooManySplits},
		{in: "-99999999999999999999", wantErr: domain.ErrTooFewSplits},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseTimes(tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, domain.ErrTimesNotInteger)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestTimesFromValue(t *testing.T) {
	tests := []struct {
		name    string
		in      interface{}
		want    int
		wantErr bool
	}{
		{name: "int", in: 3, want: 3},
		{name: "int64", in: int64(7), want: 7},
		{name: "uint8", in: uint8(4), want: 4},
		{name: "nil", in: nil, wantErr: true},
		{name: "float", in: 1.6, wantErr: true},
		{name: "whole float", in: 2.0, wantErr: true},
		{name: "string", in: "2", wantErr: true},
		{name: "bool", in: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimesFromValue(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrTimesNotInteger)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
