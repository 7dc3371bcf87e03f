package devices

import (
	"context"
	"healthpilot-service/internal/app/contracts"
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/constvars"
	"healthpilot-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeviceMongoRepository struct {
	Collection *mongo.Collection
}

func NewDeviceMongoRepository(db *mongo.Client, dbName string) contracts.DeviceRepository {
	return &DeviceMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDevices),
	}
}

func (r *DeviceMongoRepository) CreateDevice(ctx context.Context, device *models.Device) (string, error) {
	result, err := r.Collection.InsertOne(ctx, device)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *DeviceMongoRepository) FindByUserID(ctx context.Context, userID string) ([]models.Device, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	devices := make([]models.Device, 0)
	if err := cursor.All(ctx, &devices); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return devices, nil
}

func (r *DeviceMongoRepository) DeleteByID(ctx context.Context, userID, deviceID string) error {
	objectID, err := primitive.ObjectIDFromHex(deviceID)
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
