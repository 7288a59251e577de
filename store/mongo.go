package store

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/diabetaku-api/schema"
)

const mongoLogPrefix = "mongo"

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "store")
}

// MongoSource reads reference records from the reference_records collection
type MongoSource struct {
	client   *mongo.Client
	database string
}

func NewMongoSource(client *mongo.Client, database string) *MongoSource {
	return &MongoSource{
		client:   client,
		database: database,
	}
}

func (m *MongoSource) collection() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.ReferenceCollection)
}

// Ping - ping mongo db
func (m *MongoSource) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *MongoSource) Close() {
	logrus.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

func (m *MongoSource) Load(ctx context.Context) (*schema.Dataset, error) {
	const op = "load mongo dataset"

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := m.collection().Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, schema.NewError(schema.ErrLoad, op, err)
	}

	records := make([]schema.Record, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, schema.NewError(schema.ErrLoad, op, err)
	}

	log.WithFields(logrus.Fields{"database": m.database, "rows": len(records)}).Info("reference dataset read")
	return schema.NewDataset(records)
}

// Import appends records to the collection in their given order
func (m *MongoSource) Import(ctx context.Context, records []schema.Record) error {
	if len(records) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(records))
	for _, r := range records {
		docs = append(docs, r)
	}

	if _, err := m.collection().InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return schema.NewError(schema.ErrLoad, "import mongo dataset", err)
	}

	log.WithField("rows", len(records)).Info("reference records imported into mongo")
	return nil
}
