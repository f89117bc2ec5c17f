package doctors

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

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (r *DoctorMongoRepository) CreateDoctor(ctx context.Context, doctorModel *models.DoctorProfile) (doctorID string, err error) {
	result, err := r.Collection.InsertOne(ctx, doctorModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.DoctorProfile, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var doctor models.DoctorProfile
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.DoctorProfile, error) {
	var doctor models.DoctorProfile
	err := r.Collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

// buildDirectoryFilter narrows the listing to bookable doctors. The
// directory is public, so profiles still waiting for a schedule stay out.
func buildDirectoryFilter(query *requests.QueryParams) bson.M {
	filter := bson.M{"isAvailable": true}
	if query.Specialization != "" {
		filter["specialization"] = query.Specialization
	}
	if query.Day != "" {
		filter["availableDays"] = query.Day
	}
	if query.Search != "" {
		filter["fullName"] = bson.M{"$regex": query.Search, "$options": "i"}
	}
	return filter
}

func (r *DoctorMongoRepository) FindAll(ctx context.Context, query *requests.QueryParams) ([]models.DoctorProfile, int, error) {
	filter := buildDirectoryFilter(query)

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSkip(int64((query.Page - 1) * query.PageSize)).
		SetLimit(int64(query.PageSize)).
		SetSort(bson.D{{Key: "fullName", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var doctors []models.DoctorProfile
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}

	return doctors, int(total), nil
}

func (r *DoctorMongoRepository) ListSpecializations(ctx context.Context) ([]string, error) {
	values, err := r.Collection.Distinct(ctx, "specialization", bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	specializations := make([]string, 0, len(values))
	for _, value := range values {
		if s, ok := value.(string); ok && s != "" {
			specializations = append(specializations, s)
		}
	}
	return specializations, nil
}

// UpdateSchedule replaces days, working window and fee in one update so a
// reader never observes a half-applied schedule.
func (r *DoctorMongoRepository) UpdateSchedule(ctx context.Context, doctorID string, schedule models.Schedule) error {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{
		"$set": bson.M{
			"availableDays":   schedule.DayNames(),
			"availableStart":  schedule.Start.String(),
			"availableEnd":    schedule.End.String(),
			"consultationFee": schedule.Fee.String(),
			"isAvailable":     true,
		},
	}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDoctorNotFound(mongo.ErrNoDocuments)
	}
	return nil
}

func (r *DoctorMongoRepository) SetAvailability(ctx context.Context, doctorID string, available bool) error {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M{"isAvailable": available}})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
