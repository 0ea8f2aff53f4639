// Package cms wraps the target content store: a single MongoDB collection
// of typed documents keyed by deterministic ids.
package cms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/casarosier/cms-migrate/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const collectionName = "content"

// ErrNotFound reports a missing singleton document.
var ErrNotFound = errors.New("document not found")

type Store struct {
	coll *mongo.Collection
}

// Connect dials the content database and pings it before returning.
func Connect(ctx context.Context, connString, database string) (*Store, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(connString))
	if err != nil {
		return nil, fmt.Errorf("error creating content store client: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		discCtx, discCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer discCancel()
		_ = client.Disconnect(discCtx)
		return nil, fmt.Errorf("error connecting to content store (ping failed): %w", err)
	}

	return NewStore(client.Database(database)), nil
}

// NewStore wraps an existing database handle, mainly for tests.
func NewStore(db *mongo.Database) *Store {
	return &Store{coll: db.Collection(collectionName)}
}

func (s *Store) Close(ctx context.Context) error {
	return s.coll.Database().Client().Disconnect(ctx)
}

// Upsert creates or fully replaces the document with the given id. No
// field-level patching: the stored document afterwards is exactly doc.
func (s *Store) Upsert(ctx context.Context, id string, doc interface{}) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc, opts); err != nil {
		return fmt.Errorf("upsert %s: %w", id, err)
	}
	return nil
}

// Menu fetches the singleton navigation document.
func (s *Store) Menu(ctx context.Context) (*models.SiteMenu, error) {
	var menu models.SiteMenu
	err := s.coll.FindOne(ctx, bson.M{"_type": "siteMenu"}).Decode(&menu)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch menu: %w", err)
	}
	return &menu, nil
}

// SetMenuItems patches only the items field of the menu document, leaving
// the rest untouched.
func (s *Store) SetMenuItems(ctx context.Context, id string, items []models.MenuItem) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"items": items}})
	if err != nil {
		return fmt.Errorf("patch menu items: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ContentRefs lists slug/title/type projections for every document of the
// given type, for link verification and content reports.
func (s *Store) ContentRefs(ctx context.Context, docType string) ([]models.ContentRef, error) {
	opts := options.Find().SetProjection(bson.M{
		"title": 1, "type": 1, "slug": 1, "price": 1,
	})
	cursor, err := s.coll.Find(ctx, bson.M{"_type": docType}, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", docType, err)
	}
	defer cursor.Close(ctx)

	var refs []models.ContentRef
	if err := cursor.All(ctx, &refs); err != nil {
		return nil, fmt.Errorf("decode %s list: %w", docType, err)
	}
	return refs, nil
}

// CountByType returns how many documents of the given type exist.
func (s *Store) CountByType(ctx context.Context, docType string) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{"_type": docType})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", docType, err)
	}
	return n, nil
}
