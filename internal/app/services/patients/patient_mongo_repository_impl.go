package patients

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

type PatientMongoRepository struct {
	Collection         *mongo.Collection
	CountersCollection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) PatientRepository {
	database := db.Database(dbName)
	return &PatientMongoRepository{
		Collection:         database.Collection(constvars.MongoCollectionPatients),
		CountersCollection: database.Collection(constvars.MongoCollectionCounters),
	}
}

// NextPatientSequence increments the patient counter document atomically so
// concurrent creates never mint the same display id.
func (r *PatientMongoRepository) NextPatientSequence(ctx context.Context) (int64, error) {
	filter := bson.M{"_id": constvars.MongoCollectionPatients}
	update := bson.M{"$inc": bson.M{"sequence": int64(1)}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter struct {
		Sequence int64 `bson:"sequence"`
	}
	err := r.CountersCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter)
	if err != nil {
		return 0, exceptions.ErrMongoDBIncrementCounter(err)
	}
	return counter.Sequence, nil
}

func (r *PatientMongoRepository) CreatePatient(ctx context.Context, patientModel *models.Patient) (string, error) {
	result, err := r.Collection.InsertOne(ctx, patientModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var patient models.Patient
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	patients := make([]models.Patient, 0)
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, nil
}

// searchFilter matches the query as a case-insensitive substring of any of
// the searchable patient fields.
func searchFilter(query string) bson.M {
	return bson.M{
		"$or": []bson.M{
			{"firstName": bson.M{"$regex": query, "$options": "i"}},
			{"lastName": bson.M{"$regex": query, "$options": "i"}},
			{"condition": bson.M{"$regex": query, "$options": "i"}},
			{"patientId": bson.M{"$regex": query, "$options": "i"}},
		},
	}
}

func (r *PatientMongoRepository) Search(ctx context.Context, query string) ([]models.Patient, error) {
	cursor, err := r.Collection.Find(ctx, searchFilter(query))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	patients := make([]models.Patient, 0)
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, nil
}

func (r *PatientMongoRepository) UpdatePatient(ctx context.Context, patientModel *models.Patient) error {
	objectID, err := primitive.ObjectIDFromHex(patientModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"firstName":     patientModel.FirstName,
		"lastName":      patientModel.LastName,
		"age":           patientModel.Age,
		"gender":        patientModel.Gender,
		"phone":         patientModel.Phone,
		"email":         patientModel.Email,
		"address":       patientModel.Address,
		"condition":     patientModel.Condition,
		"status":        patientModel.Status,
		"priority":      patientModel.Priority,
		"doctor":        patientModel.Doctor,
		"admissionDate": patientModel.AdmissionDate,
		"lastVisit":     patientModel.LastVisit,
		"notes":         patientModel.Notes,
		"photoObject":   patientModel.PhotoObject,
		"updatedAt":     patientModel.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *PatientMongoRepository) DeletePatient(ctx context.Context, patientID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}

func (r *PatientMongoRepository) PushPrescription(ctx context.Context, patientID string, entry *models.Prescription) error {
	return r.pushSubRecord(ctx, patientID, "prescriptions", entry)
}

func (r *PatientMongoRepository) PushMedicalHistory(ctx context.Context, patientID string, entry *models.MedicalHistoryEntry) error {
	return r.pushSubRecord(ctx, patientID, "medicalHistory", entry)
}

func (r *PatientMongoRepository) PushVitals(ctx context.Context, patientID string, entry *models.VitalsRecord) error {
	return r.pushSubRecord(ctx, patientID, "vitals", entry)
}

func (r *PatientMongoRepository) PushNursingNote(ctx context.Context, patientID string, entry *models.NursingNote) error {
	return r.pushSubRecord(ctx, patientID, "nursingNotes", entry)
}

// prependUpdate inserts the entry at the head of the field's array so the
// newest record is always first.
func prependUpdate(field string, entry interface{}) bson.M {
	return bson.M{
		"$push": bson.M{
			field: bson.M{
				"$each":     bson.A{entry},
				"$position": 0,
			},
		},
	}
}

// pushSubRecord prepends one entry atomically so concurrent appends to the
// same patient interleave without losing records, newest staying first.
func (r *PatientMongoRepository) pushSubRecord(ctx context.Context, patientID, field string, entry interface{}) error {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, prependUpdate(field, entry))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrPatientNotFound(mongo.ErrNoDocuments)
	}
	return nil
}

func (r *PatientMongoRepository) CountPatients(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}
