package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswerKey(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    AnswerKey
		wantErr bool
	}{
		{name: "zero", raw: "0-0-0", want: AnswerKey{}},
		{name: "multi digit", raw: "1-2-13", want: AnswerKey{Part: 1, Section: 2, Question: 13}},
		{name: "leading zero", raw: "00-0-0", wantErr: true},
		{name: "leading zero in question", raw: "1-2-03", wantErr: true},
		{name: "plus sign", raw: "+0-0-0", wantErr: true},
		{name: "negative", raw: "0--1-0", wantErr: true},
		{name: "two fields", raw: "0-0", wantErr: true},
		{name: "letters", raw: "a-b-c", wantErr: true},
		{name: "spaces", raw: " 0-0-0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAnswerKey(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.raw, got.String())
		})
	}
}

func TestParseAnswerSet(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]string
		want    AnswerSet
		wantErr bool
	}{
		{
			name: "trims values",
			raw:  map[string]string{"0-0-0": " 3 ", "1-0-0": "B"},
			want: AnswerSet{{}: "3", {Part: 1}: "B"},
		},
		{
			name:    "aliased spellings of one key",
			raw:     map[string]string{"0-0-0": "1", "00-0-0": "5", "+0-0-0": "3"},
			wantErr: true,
		},
		{
			name:    "single non canonical key",
			raw:     map[string]string{"0-01-0": "2"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAnswerSet(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
