package vitals

import (
	"context"
	"healthpilot-service/internal/app/contracts"
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/constvars"
	"healthpilot-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VitalMongoRepository struct {
	Collection *mongo.Collection
}

func NewVitalMongoRepository(db *mongo.Client, dbName string) contracts.VitalRepository {
	return &VitalMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionVitals),
	}
}

func (r *VitalMongoRepository) CreateVital(ctx context.Context, vital *models.Vital) (string, error) {
	result, err := r.Collection.InsertOne(ctx, vital)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *VitalMongoRepository) FindByUserID(ctx context.Context, userID string, offset, limit int) ([]models.Vital, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "recordedAt", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cursor, err := r.Collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	vitals := make([]models.Vital, 0)
	if err := cursor.All(ctx, &vitals); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return vitals, nil
}

func (r *VitalMongoRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return int(total), nil
}

func (r *VitalMongoRepository) DeleteByID(ctx context.Context, userID, vitalID string) error {
	objectID, err := primitive.ObjectIDFromHex(vitalID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "userId": userID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrResourceNotFound(nil)
	}
	return nil
}
