package pgerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pq.Error{Code: "23505", Constraint: "appointments_scheduled_start_key"}

	tests := []struct {
		name        string
		err         error
		constraints []string
		want        bool
	}{
		{name: "unique violation", err: unique, want: true},
		{name: "wrapped", err: fmt.Errorf("insert: %w", unique), want: true},
		{name: "matching constraint", err: unique, constraints: []string{"appointments_scheduled_start_key"}, want: true},
		{name: "other constraint", err: unique, constraints: []string{"service_types_name_key"}},
		{name: "foreign key violation", err: &pq.Error{Code: "23503"}},
		{name: "plain error", err: errors.New("boom")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err, tt.constraints...))
		})
	}
}

func TestCode(t *testing.T) {
	assert.Equal(t, SerializationFailed, Code(&pq.Error{Code: "40001"}))
	assert.True(t, IsSerializationFailure(fmt.Errorf("commit: %w", &pq.Error{Code: "40001"})))
	assert.Equal(t, pq.ErrorCode(""), Code(errors.New("boom")))
}
