package bulkupload

import (
	"context"
	"time"

	"go-frameshop/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UploadRecord is one bulk-upload batch as stored in the history collection.
type UploadRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Filename  string             `bson:"filename,omitempty" json:"filename,omitempty"`
	Total     int                `bson:"total" json:"total"`
	Success   int                `bson:"success" json:"success"`
	Failed    int                `bson:"failed" json:"failed"`
	Errors    []string           `bson:"errors,omitempty" json:"errors,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type UploadHistoryRepository interface {
	Save(ctx context.Context, record *UploadRecord) error
	Recent(ctx context.Context, limit int64) ([]UploadRecord, error)
}

type UploadHistoryRepositoryImpl struct {
	collection *mongo.Collection
}

func NewUploadHistoryRepository(mongodb *database.MongodbDB) UploadHistoryRepository {
	return &UploadHistoryRepositoryImpl{
		collection: mongodb.DB.Collection("bulk_uploads"),
	}
}

func (r *UploadHistoryRepositoryImpl) Save(ctx context.Context, record *UploadRecord) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	record.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, record)
	return err
}

func (r *UploadHistoryRepositoryImpl) Recent(ctx context.Context, limit int64) ([]UploadRecord, error) {
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []UploadRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
