package staff

import (
	"context"
	"staffportal-service/internal/app/models"
	"staffportal-service/internal/pkg/constvars"
	"staffportal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StaffMongoRepository struct {
	Collection *mongo.Collection
}

func NewStaffMongoRepository(db *mongo.Client, dbName string) StaffRepository {
	return &StaffMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionStaff),
	}
}

func (r *StaffMongoRepository) CreateStaff(ctx context.Context, staffModel *models.StaffAccount) (string, error) {
	result, err := r.Collection.InsertOne(ctx, staffModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *StaffMongoRepository) FindByID(ctx context.Context, staffID string) (*models.StaffAccount, error) {
	objectID, err := primitive.ObjectIDFromHex(staffID)
	if err != nil {
		return nil, nil
	}
	var staffAccount models.StaffAccount
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&staffAccount)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &staffAccount, nil
}

func (r *StaffMongoRepository) FindByUsername(ctx context.Context, username string) (*models.StaffAccount, error) {
	var staffAccount models.StaffAccount
	err := r.Collection.FindOne(ctx, bson.M{"username": username}).Decode(&staffAccount)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &staffAccount, nil
}

func (r *StaffMongoRepository) FindByEmail(ctx context.Context, email string) (*models.StaffAccount, error) {
	var staffAccount models.StaffAccount
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&staffAccount)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &staffAccount, nil
}

func (r *StaffMongoRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*models.StaffAccount, error) {
	var staffAccount models.StaffAccount
	err := r.Collection.FindOne(ctx, bson.M{"employeeId": employeeID}).Decode(&staffAccount)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &staffAccount, nil
}

func (r *StaffMongoRepository) FindAll(ctx context.Context) ([]models.StaffAccount, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	staffAccounts := make([]models.StaffAccount, 0)
	if err := cursor.All(ctx, &staffAccounts); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return staffAccounts, nil
}

func (r *StaffMongoRepository) UpdateStaff(ctx context.Context, staffModel *models.StaffAccount) error {
	objectID, err := primitive.ObjectIDFromHex(staffModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	update := bson.M{"$set": bson.M{
		"username":   staffModel.Username,
		"email":      staffModel.Email,
		"password":   staffModel.Password,
		"role":       staffModel.Role,
		"fullName":   staffModel.FullName,
		"employeeId": staffModel.EmployeeID,
		"isActive":   staffModel.IsActive,
		"updatedAt":  staffModel.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *StaffMongoRepository) DeleteStaff(ctx context.Context, staffID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(staffID)
	if err != nil {
		return false, nil
	}
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}

func (r *StaffMongoRepository) CountStaff(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}
