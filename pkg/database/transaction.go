package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// TransactorInterface runs fn so that all writes made with the passed context commit or abort together
type TransactorInterface interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// MongoTransactor runs fn in a multi-document transaction. It needs a replica set.
type MongoTransactor struct {
	Client *mongo.Client
}

// WithTransaction starts a session, runs fn inside a transaction and commits it
func (t *MongoTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessionContext mongo.SessionContext) (interface{}, error) {
		return nil, fn(context.WithValue(sessionContext, keyTransaction, true))
	})
	return err
}

type key string

const keyTransaction key = "transaction"

// InTransaction reports whether ctx belongs to a running multi-document transaction.
// The driver re-runs the whole transaction on transient errors, so single calls inside it must not be retried.
func InTransaction(ctx context.Context) bool {
	inTransaction, _ := ctx.Value(keyTransaction).(bool)
	return inTransaction
}

// NoTransactor runs fn directly, for standalone servers and tests
type NoTransactor struct{}

// WithTransaction calls fn with ctx
func (NoTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
