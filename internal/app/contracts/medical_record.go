package contracts

import (
	"context"

	"care4u-service/internal/app/models"
	"care4u-service/internal/pkg/dto/requests"
	"care4u-service/internal/pkg/dto/responses"
)

type MedicalRecordUsecase interface {
	UploadRecord(ctx context.Context, session *models.Session, request *requests.UploadMedicalRecord) (*responses.MedicalRecord, error)
	ListRecords(ctx context.Context, session *models.Session, query *requests.QueryParams) ([]responses.MedicalRecord, int, error)
	DownloadRecord(ctx context.Context, session *models.Session, recordID string) (*responses.MedicalRecordDownload, error)
}

type MedicalRecordRepository interface {
	CreateRecord(ctx context.Context, recordModel *models.MedicalRecord) (recordID string, err error)
	FindByID(ctx context.Context, recordID string) (*models.MedicalRecord, error)
	FindByPatient(ctx context.Context, patientID string, query *requests.QueryParams) ([]models.MedicalRecord, int, error)
	FindByDoctor(ctx context.Context, doctorID string, query *requests.QueryParams) ([]models.MedicalRecord, int, error)
}
