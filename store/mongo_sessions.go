package store

import (
	"context"
	"errors"
	"time"

	"github.com/Yulian302/lfusys-services-files/apperror"
	"github.com/Yulian302/lfusys-services-files/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

type sessionDocument struct {
	ID          string            `bson:"_id"`
	OwnerID     string            `bson:"owner_id"`
	FileID      string            `bson:"file_id"`
	Filename    string            `bson:"filename"`
	ContentType string            `bson:"content_type"`
	TotalSize   int64             `bson:"total_size"`
	PartSize    int64             `bson:"part_size"`
	TotalParts  int32             `bson:"total_parts"`
	StorageKey  string            `bson:"storage_key"`
	Parts       map[string]string `bson:"parts"`
	CreatedAt   time.Time         `bson:"created_at"`
	ExpiresAt   time.Time         `bson:"expires_at"`
	Status      string            `bson:"status"`
}

func toSessionDocument(s models.UploadSession) sessionDocument {
	parts := s.Parts
	if parts == nil {
		parts = map[string]string{}
	}
	return sessionDocument{
		ID:          s.UploadId,
		OwnerID:     s.OwnerId,
		FileID:      s.FileId,
		Filename:    s.FileName,
		ContentType: s.ContentType,
		TotalSize:   int64(s.TotalSize),
		PartSize:    int64(s.PartSize),
		TotalParts:  s.TotalParts,
		StorageKey:  s.StorageKey,
		Parts:       parts,
		CreatedAt:   time.Unix(s.CreatedAt, 0).UTC(),
		ExpiresAt:   time.Unix(s.ExpiresAt, 0).UTC(),
		Status:      s.Status,
	}
}

func (d sessionDocument) model() models.UploadSession {
	return models.UploadSession{
		UploadId:    d.ID,
		OwnerId:     d.OwnerID,
		FileId:      d.FileID,
		FileName:    d.Filename,
		ContentType: d.ContentType,
		TotalSize:   uint64(d.TotalSize),
		PartSize:    uint64(d.PartSize),
		TotalParts:  d.TotalParts,
		StorageKey:  d.StorageKey,
		Parts:       d.Parts,
		CreatedAt:   d.CreatedAt.Unix(),
		ExpiresAt:   d.ExpiresAt.Unix(),
		Status:      d.Status,
	}
}

type MongoSessionStoreImpl struct {
	database   *mongo.Database
	collection *mongo.Collection

	now func() time.Time
}

func NewMongoSessionStoreImpl(database *mongo.Database) *MongoSessionStoreImpl {
	return &MongoSessionStoreImpl{
		database:   database,
		collection: database.Collection(SessionsCollection),
		now:        time.Now,
	}
}

// EnsureIndexes creates the TTL index that expires sessions at expires_at.
func (s *MongoSessionStoreImpl) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
		{
			Keys: bson.D{{Key: "owner_id", Value: 1}},
		},
	})
	return err
}

func (s *MongoSessionStoreImpl) IsReady(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	return s.database.Client().Ping(ctx, readpref.Primary())
}

func (s *MongoSessionStoreImpl) Name() string {
	return "SessionStore[mongo:" + SessionsCollection + "]"
}

func (s *MongoSessionStoreImpl) CreateSession(ctx context.Context, session models.UploadSession) error {
	_, err := s.collection.InsertOne(ctx, toSessionDocument(session))
	return err
}

func (s *MongoSessionStoreImpl) liveFilter(ownerID, uploadID string) bson.M {
	return bson.M{
		"_id":        uploadID,
		"owner_id":   ownerID,
		"expires_at": bson.M{"$gt": s.now().UTC()},
	}
}

func (s *MongoSessionStoreImpl) GetSession(ctx context.Context, ownerID, uploadID string) (*models.UploadSession, error) {
	var doc sessionDocument
	err := s.collection.FindOne(ctx, s.liveFilter(ownerID, uploadID)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	session := doc.model()
	if err := session.Validate(); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *MongoSessionStoreImpl) PutPart(ctx context.Context, ownerID, uploadID string, part models.Part) error {
	res, err := s.collection.UpdateOne(
		ctx,
		s.liveFilter(ownerID, uploadID),
		bson.M{"$set": bson.M{"parts." + models.PartKey(part.PartNumber): part.ETag}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperror.ErrSessionNotFound
	}
	return nil
}

func (s *MongoSessionStoreImpl) Delete(ctx context.Context, ownerID, uploadID string) (bool, error) {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": uploadID, "owner_id": ownerID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (s *MongoSessionStoreImpl) Purge(ctx context.Context, uploadID string) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": uploadID})
	return err
}
