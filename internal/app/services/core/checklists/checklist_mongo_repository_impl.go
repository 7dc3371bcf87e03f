package checklists

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

type ChecklistMongoRepository struct {
	Collection *mongo.Collection
}

func NewChecklistMongoRepository(db *mongo.Client, dbName string) contracts.ChecklistRepository {
	return &ChecklistMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionChecklists),
	}
}

func (r *ChecklistMongoRepository) CreateItem(ctx context.Context, item *models.ChecklistItem) (string, error) {
	result, err := r.Collection.InsertOne(ctx, item)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ChecklistMongoRepository) FindByUserID(ctx context.Context, userID string) ([]models.ChecklistItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	items := make([]models.ChecklistItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return items, nil
}

func (r *ChecklistMongoRepository) FindByID(ctx context.Context, userID, itemID string) (*models.ChecklistItem, error) {
	objectID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var item models.ChecklistItem
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID, "userId": userID}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &item, nil
}

func (r *ChecklistMongoRepository) UpdateCompleted(ctx context.Context, userID, itemID string, completed bool) error {
	objectID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "userId": userID}
	update := bson.M{"$set": bson.M{"completed": completed}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrResourceNotFound(nil)
	}
	return nil
}

func (r *ChecklistMongoRepository) DeleteByID(ctx context.Context, userID, itemID string) error {
	objectID, err := primitive.ObjectIDFromHex(itemID)
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
