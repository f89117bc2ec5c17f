package appointments

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

var activeStatuses = []string{constvars.AppointmentStatusPending, constvars.AppointmentStatusConfirmed}

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (appointmentID string, err error) {
	result, err := r.Collection.InsertOne(ctx, appointmentModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) findWithFilter(ctx context.Context, filter bson.M, query *requests.QueryParams) ([]models.Appointment, int, error) {
	if query.Status != "" {
		filter["status"] = query.Status
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSkip(int64((query.Page - 1) * query.PageSize)).
		SetLimit(int64(query.PageSize)).
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "time", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}

	return appointments, int(total), nil
}

func (r *AppointmentMongoRepository) FindByPatient(ctx context.Context, patientID string, query *requests.QueryParams) ([]models.Appointment, int, error) {
	return r.findWithFilter(ctx, bson.M{"patientId": patientID}, query)
}

func (r *AppointmentMongoRepository) FindByDoctor(ctx context.Context, doctorID string, query *requests.QueryParams) ([]models.Appointment, int, error) {
	return r.findWithFilter(ctx, bson.M{"doctorId": doctorID}, query)
}

func (r *AppointmentMongoRepository) FindAll(ctx context.Context, query *requests.QueryParams) ([]models.Appointment, int, error) {
	return r.findWithFilter(ctx, bson.M{}, query)
}

// FindActiveSlot reports a pending or confirmed appointment occupying the
// exact slot, used as the booking conflict check.
func (r *AppointmentMongoRepository) FindActiveSlot(ctx context.Context, doctorID, date, timeOfDay string) (*models.Appointment, error) {
	filter := bson.M{
		"doctorId": doctorID,
		"date":     date,
		"time":     timeOfDay,
		"status":   bson.M{"$in": activeStatuses},
	}

	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, filter).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindActiveByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	filter := bson.M{
		"doctorId": doctorID,
		"date":     date,
		"status":   bson.M{"$in": activeStatuses},
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) UpdateStatus(ctx context.Context, appointmentID, status, notes string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	set := bson.M{"status": status}
	if notes != "" {
		set["notes"] = notes
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) CountByStatus(ctx context.Context, doctorID string) (map[string]int, error) {
	matchStage := bson.D{{Key: "$match", Value: bson.M{"doctorId": doctorID}}}
	groupStage := bson.D{{Key: "$group", Value: bson.M{
		"_id":   "$status",
		"count": bson.M{"$sum": 1},
	}}}

	cursor, err := r.Collection.Aggregate(ctx, mongo.Pipeline{matchStage, groupStage})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int)
	for cursor.Next(ctx) {
		var row struct {
			Status string `bson:"_id"`
			Count  int    `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		counts[row.Status] = row.Count
	}
	return counts, nil
}
