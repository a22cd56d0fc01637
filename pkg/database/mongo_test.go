package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsTransient(t *testing.T) {
	var transientTests = []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"transient transaction label", mongo.CommandError{Code: 112, Labels: []string{"TransientTransactionError"}}, true},
		{"retryable write label", mongo.CommandError{Code: 91, Labels: []string{"RetryableWriteError"}}, true},
		{"wrapped label", fmt.Errorf("update user: %w", mongo.CommandError{Labels: []string{"TransientTransactionError"}}), true},
		{"command error without label", mongo.CommandError{Code: 11000, Name: "DuplicateKey"}, false},
		{"deadline exceeded", fmt.Errorf("find: %w", context.DeadlineExceeded), true},
	}

	for _, tt := range transientTests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsTransient(tt.err)
			if got != tt.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
