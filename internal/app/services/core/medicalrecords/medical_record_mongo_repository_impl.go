package medicalrecords

import (
	"context"

	"care4u-service/internal/app/contracts"
	"care4u-service/internal/app/models"
	"care4u-service/internal/pkg/constvars"
	"care4u-service/internal/pkg/dto/requests"
	"care4u-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MedicalRecordMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicalRecordMongoRepository(db *mongo.Client, dbName string) contracts.MedicalRecordRepository {
	return &MedicalRecordMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedicalRecords),
	}
}

func (r *MedicalRecordMongoRepository) CreateRecord(ctx context.Context, recordModel *models.MedicalRecord) (recordID string, err error) {
	result, err := r.Collection.InsertOne(ctx, recordModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MedicalRecordMongoRepository) FindByID(ctx context.Context, recordID string) (*models.MedicalRecord, error) {
	objectID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var record models.MedicalRecord
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (r *MedicalRecordMongoRepository) FindByPatient(ctx context.Context, patientID string, query *requests.QueryParams) ([]models.MedicalRecord, int, error) {
	return r.findWithFilter(ctx, bson.M{"patientId": patientID}, query)
}

func (r *MedicalRecordMongoRepository) FindByDoctor(ctx context.Context, doctorID string, query *requests.QueryParams) ([]models.MedicalRecord, int, error) {
	return r.findWithFilter(ctx, bson.M{"doctorId": doctorID}, query)
}

func (r *MedicalRecordMongoRepository) findWithFilter(ctx context.Context, filter bson.M, query *requests.QueryParams) ([]models.MedicalRecord, int, error) {
	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSkip(int64((query.Page - 1) * query.PageSize)).
		SetLimit(int64(query.PageSize)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var records []models.MedicalRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, int(total), nil
}
