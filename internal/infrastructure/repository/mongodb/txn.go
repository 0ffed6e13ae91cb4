package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// withTransaction runs fn inside a session transaction so multi-document
// writes (post plus back-reference, delete plus cleanup) commit or abort as
// one unit.
func withTransaction(ctx context.Context, client *mongo.Client, fn func(sc mongo.SessionContext) (interface{}, error)) error {
	session, err := client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, fn)
	return err
}
