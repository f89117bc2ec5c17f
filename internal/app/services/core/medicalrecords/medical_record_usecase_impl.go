package medicalrecords

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"care4u-service/internal/app/config"
	"care4u-service/internal/app/contracts"
	"care4u-service/internal/app/models"
	"care4u-service/internal/pkg/constvars"
	"care4u-service/internal/pkg/dto/requests"
	"care4u-service/internal/pkg/dto/responses"
	"care4u-service/internal/pkg/exceptions"
	"care4u-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	medicalRecordUsecaseInstance contracts.MedicalRecordUsecase
	onceMedicalRecordUsecase     sync.Once
)

type medicalRecordUsecase struct {
	MedicalRecordRepository contracts.MedicalRecordRepository
	Storage                 contracts.Storage
	AuditService            contracts.AuditService
	AllowedContentTypes     map[string]bool
	MaxUploadSizeInBytes    int64
	PresignedUrlExpiry      time.Duration
	Log                     *zap.Logger
}

func NewMedicalRecordUsecase(
	medicalRecordRepository contracts.MedicalRecordRepository,
	minioStorage contracts.Storage,
	auditService contracts.AuditService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.MedicalRecordUsecase {
	onceMedicalRecordUsecase.Do(func() {
		allowed := make(map[string]bool)
		for _, contentType := range strings.Split(internalConfig.Uploads.AllowedContentTypes, ",") {
			contentType = strings.TrimSpace(contentType)
			if contentType != "" {
				allowed[contentType] = true
			}
		}
		medicalRecordUsecaseInstance = &medicalRecordUsecase{
			MedicalRecordRepository: medicalRecordRepository,
			Storage:                 minioStorage,
			AuditService:            auditService,
			AllowedContentTypes:     allowed,
			MaxUploadSizeInBytes:    internalConfig.Uploads.MaxUploadSizeInMB * 1024 * 1024,
			PresignedUrlExpiry:      time.Duration(internalConfig.Uploads.PresignedUrlExpiryInHour) * time.Hour,
			Log:                     logger,
		}
	})
	return medicalRecordUsecaseInstance
}

func (uc *medicalRecordUsecase) UploadRecord(ctx context.Context, session *models.Session, request *requests.UploadMedicalRecord) (*responses.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.UploadRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("file_name", request.FileName),
	)

	if !uc.AllowedContentTypes[request.ContentType] {
		return nil, exceptions.ErrFileTypeNotAllowed(fmt.Errorf("content type %s not in whitelist", request.ContentType))
	}
	if request.SizeBytes > uc.MaxUploadSizeInBytes {
		return nil, exceptions.ErrFileTooLarge(fmt.Errorf("%d bytes exceeds limit %d", request.SizeBytes, uc.MaxUploadSizeInBytes))
	}

	objectName := utils.GenerateObjectName("record", session.UserID, filepath.Ext(request.FileName))
	err := uc.Storage.UploadObject(ctx, objectName, request.ContentType, bytes.NewReader(request.Content), request.SizeBytes)
	if err != nil {
		return nil, err
	}

	record := &models.MedicalRecord{
		PatientID:   session.UserID,
		DoctorID:    request.DoctorID,
		Title:       request.Title,
		Description: request.Description,
		ObjectName:  objectName,
		FileName:    request.FileName,
		ContentType: request.ContentType,
		SizeBytes:   request.SizeBytes,
	}
	record.SetCreatedAtUpdatedAt()

	recordID, err := uc.MedicalRecordRepository.CreateRecord(ctx, record)
	if err != nil {
		return nil, err
	}
	record.ID = recordID

	uc.AuditService.Record(ctx, &models.AuditLog{
		UserID:     session.UserID,
		Action:     constvars.AuditActionUploadRecord,
		Resource:   constvars.ResourceMedicalRecords,
		ResourceID: recordID,
		Detail:     fmt.Sprintf("uploaded %s (%d bytes)", request.FileName, request.SizeBytes),
	})

	return buildRecordResponse(record), nil
}

func (uc *medicalRecordUsecase) ListRecords(ctx context.Context, session *models.Session, query *requests.QueryParams) ([]responses.MedicalRecord, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.ListRecords called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var records []models.MedicalRecord
	var total int
	var err error
	if session.Role == constvars.RoleDoctor {
		records, total, err = uc.MedicalRecordRepository.FindByDoctor(ctx, session.DoctorID, query)
	} else {
		records, total, err = uc.MedicalRecordRepository.FindByPatient(ctx, session.UserID, query)
	}
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.MedicalRecord, 0, len(records))
	for i := range records {
		result = append(result, *buildRecordResponse(&records[i]))
	}
	return result, total, nil
}

func (uc *medicalRecordUsecase) DownloadRecord(ctx context.Context, session *models.Session, recordID string) (*responses.MedicalRecordDownload, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.DownloadRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("record_id", recordID),
	)

	record, err := uc.MedicalRecordRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrRecordNotFound(fmt.Errorf("record %s not found", recordID))
	}

	// The owner, the doctor the record was shared with, and admins may
	// fetch a link. Everyone else gets the same not-found as a missing id.
	allowed := record.PatientID == session.UserID ||
		session.Role == constvars.RoleAdmin ||
		(session.Role == constvars.RoleDoctor && record.DoctorID != "" && record.DoctorID == session.DoctorID)
	if !allowed {
		return nil, exceptions.ErrRecordNotFound(fmt.Errorf("record %s not accessible to requester", recordID))
	}

	url, err := uc.Storage.PresignedDownloadURL(ctx, record.ObjectName, uc.PresignedUrlExpiry)
	if err != nil {
		return nil, err
	}

	return &responses.MedicalRecordDownload{
		ID:        record.ID,
		URL:       url,
		ExpiresIn: int(uc.PresignedUrlExpiry.Seconds()),
	}, nil
}

func buildRecordResponse(record *models.MedicalRecord) *responses.MedicalRecord {
	return &responses.MedicalRecord{
		ID:          record.ID,
		DoctorID:    record.DoctorID,
		Title:       record.Title,
		Description: record.Description,
		FileName:    record.FileName,
		ContentType: record.ContentType,
		SizeBytes:   record.SizeBytes,
		UploadedAt:  record.CreatedAt.Format(time.RFC3339),
	}
}
