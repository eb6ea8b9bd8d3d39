package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Yulian302/lfusys-services-files/apperror"
	"github.com/Yulian302/lfusys-services-files/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	FilesCollection    = "files"
	SessionsCollection = "upload_sessions"
)

type fileDocument struct {
	ID          string    `bson:"_id"`
	OwnerID     string    `bson:"owner_id"`
	Filename    string    `bson:"filename"`
	ContentType string    `bson:"content_type"`
	Size        int64     `bson:"size"`
	StorageKey  string    `bson:"storage_key"`
	CreatedAt   time.Time `bson:"created_at"`
}

func toFileDocument(f models.File) fileDocument {
	return fileDocument{
		ID:          f.FileId,
		OwnerID:     f.OwnerId,
		Filename:    f.Name,
		ContentType: f.ContentType,
		Size:        int64(f.Size),
		StorageKey:  f.StorageKey,
		CreatedAt:   time.Unix(f.CreatedAt, 0).UTC(),
	}
}

func (d fileDocument) model() models.File {
	return models.File{
		FileId:      d.ID,
		OwnerId:     d.OwnerID,
		Name:        d.Filename,
		ContentType: d.ContentType,
		Size:        uint64(d.Size),
		StorageKey:  d.StorageKey,
		CreatedAt:   d.CreatedAt.Unix(),
	}
}

type MongoFileStoreImpl struct {
	database   *mongo.Database
	collection *mongo.Collection
}

func NewMongoFileStoreImpl(database *mongo.Database) *MongoFileStoreImpl {
	return &MongoFileStoreImpl{
		database:   database,
		collection: database.Collection(FilesCollection),
	}
}

// EnsureIndexes creates the owner index used by List and Count.
func (s *MongoFileStoreImpl) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return err
}

func (s *MongoFileStoreImpl) IsReady(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	return s.database.Client().Ping(ctx, readpref.Primary())
}

func (s *MongoFileStoreImpl) Name() string {
	return "FileStore[mongo:" + FilesCollection + "]"
}

func (s *MongoFileStoreImpl) Create(ctx context.Context, file models.File) error {
	_, err := s.collection.InsertOne(ctx, toFileDocument(file))
	return err
}

func (s *MongoFileStoreImpl) Get(ctx context.Context, ownerID, fileID string) (*models.File, error) {
	var doc fileDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": fileID, "owner_id": ownerID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}

	file := doc.model()
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

func (s *MongoFileStoreImpl) List(ctx context.Context, ownerID string) ([]models.File, error) {
	cursor, err := s.collection.Find(
		ctx,
		bson.M{"owner_id": ownerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	files := []models.File{}
	for cursor.Next(ctx) {
		var doc fileDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode file document: %w", err)
		}
		files = append(files, doc.model())
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return files, nil
}

func (s *MongoFileStoreImpl) Count(ctx context.Context, ownerID string) (int, error) {
	n, err := s.collection.CountDocuments(ctx, bson.M{"owner_id": ownerID})
	return int(n), err
}

func (s *MongoFileStoreImpl) Delete(ctx context.Context, ownerID, fileID string) (bool, error) {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": fileID, "owner_id": ownerID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
