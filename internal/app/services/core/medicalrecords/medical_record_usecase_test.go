package medicalrecords

import (
	"context"
	"io"
	"testing"
	"time"

	"care4u-service/internal/app/config"
	"care4u-service/internal/app/models"
	"care4u-service/internal/pkg/constvars"
	"care4u-service/internal/pkg/dto/requests"
	"care4u-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockMedicalRecordRepository struct {
	mock.Mock
}

func (m *MockMedicalRecordRepository) CreateRecord(ctx context.Context, recordModel *models.MedicalRecord) (string, error) {
	args := m.Called(ctx, recordModel)
	return args.String(0), args.Error(1)
}

func (m *MockMedicalRecordRepository) FindByID(ctx context.Context, recordID string) (*models.MedicalRecord, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordRepository) FindByPatient(ctx context.Context, patientID string, query *requests.QueryParams) ([]models.MedicalRecord, int, error) {
	args := m.Called(ctx, patientID, query)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.MedicalRecord), args.Int(1), args.Error(2)
}

func (m *MockMedicalRecordRepository) FindByDoctor(ctx context.Context, doctorID string, query *requests.QueryParams) ([]models.MedicalRecord, int, error) {
	args := m.Called(ctx, doctorID, query)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.MedicalRecord), args.Int(1), args.Error(2)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadObject(ctx context.Context, objectName, contentType string, content io.Reader, size int64) error {
	args := m.Called(ctx, objectName, contentType, content, size)
	return args.Error(0)
}

func (m *MockStorage) PresignedDownloadURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, objectName, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) RemoveObject(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, entry *models.AuditLog) {
	m.Called(ctx, entry)
}

var (
	testRecordRepository = new(MockMedicalRecordRepository)
	testStorage          = new(MockStorage)
	testAuditService     = new(MockAuditService)
	testRecordUsecase    = NewMedicalRecordUsecase(
		testRecordRepository,
		testStorage,
		testAuditService,
		&config.InternalConfig{
			Uploads: config.Uploads{
				MaxUploadSizeInMB:        1,
				PresignedUrlExpiryInHour: 1,
				AllowedContentTypes:      "application/pdf, image/png,image/jpeg",
			},
		},
		zap.NewNop(),
	)
)

func patientSession() *models.Session {
	return &models.Session{SessionID: "sess-1", UserID: "patient-1", Role: constvars.RolePatient}
}

func uploadRequest() *requests.UploadMedicalRecord {
	return &requests.UploadMedicalRecord{
		Title:       "Blood work",
		FileName:    "results.pdf",
		ContentType: "application/pdf",
		SizeBytes:   2048,
		Content:     []byte("%PDF-1.4"),
	}
}

func TestMedicalRecordUsecase_UploadRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the object and the metadata", func(t *testing.T) {
		testStorage.On("UploadObject", mock.Anything, mock.AnythingOfType("string"), "application/pdf", mock.Anything, int64(2048)).Return(nil).Once()
		testRecordRepository.On("CreateRecord", mock.Anything, mock.MatchedBy(func(record *models.MedicalRecord) bool {
			return record.PatientID == "patient-1" && record.FileName == "results.pdf"
		})).Return("record-1", nil).Once()
		testAuditService.On("Record", mock.Anything, mock.AnythingOfType("*models.AuditLog")).Once()

		response, err := testRecordUsecase.UploadRecord(ctx, patientSession(), uploadRequest())

		require.NoError(t, err)
		assert.Equal(t, "record-1", response.ID)
		testStorage.AssertExpectations(t)
	})

	t.Run("sharing with a doctor stores the link", func(t *testing.T) {
		request := uploadRequest()
		request.DoctorID = "doctor-1"

		testStorage.On("UploadObject", mock.Anything, mock.AnythingOfType("string"), "application/pdf", mock.Anything, int64(2048)).Return(nil).Once()
		testRecordRepository.On("CreateRecord", mock.Anything, mock.MatchedBy(func(record *models.MedicalRecord) bool {
			return record.PatientID == "patient-1" && record.DoctorID == "doctor-1"
		})).Return("record-2", nil).Once()
		testAuditService.On("Record", mock.Anything, mock.AnythingOfType("*models.AuditLog")).Once()

		response, err := testRecordUsecase.UploadRecord(ctx, patientSession(), request)

		require.NoError(t, err)
		assert.Equal(t, "doctor-1", response.DoctorID)
		testRecordRepository.AssertExpectations(t)
	})

	t.Run("content type outside the whitelist", func(t *testing.T) {
		request := uploadRequest()
		request.FileName = "malware.exe"
		request.ContentType = "application/octet-stream"

		_, err := testRecordUsecase.UploadRecord(ctx, patientSession(), request)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnsupportedMedia, customErr.StatusCode)
	})

	t.Run("file over the size limit", func(t *testing.T) {
		request := uploadRequest()
		request.SizeBytes = 2 * 1024 * 1024

		_, err := testRecordUsecase.UploadRecord(ctx, patientSession(), request)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusEntityTooLarge, customErr.StatusCode)
	})
}

func TestMedicalRecordUsecase_DownloadRecord(t *testing.T) {
	ctx := context.Background()

	storedRecord := func() *models.MedicalRecord {
		return &models.MedicalRecord{
			ID:         "record-1",
			PatientID:  "patient-1",
			ObjectName: "record/patient-1/abc.pdf",
			FileName:   "results.pdf",
		}
	}

	t.Run("owner gets a presigned url", func(t *testing.T) {
		testRecordRepository.On("FindByID", mock.Anything, "record-1").Return(storedRecord(), nil).Once()
		testStorage.On("PresignedDownloadURL", mock.Anything, "record/patient-1/abc.pdf", time.Hour).
			Return("https://minio.local/presigned", nil).Once()

		response, err := testRecordUsecase.DownloadRecord(ctx, patientSession(), "record-1")

		require.NoError(t, err)
		assert.Equal(t, "https://minio.local/presigned", response.URL)
	})

	t.Run("another patient's record looks like it does not exist", func(t *testing.T) {
		testRecordRepository.On("FindByID", mock.Anything, "record-1").Return(storedRecord(), nil).Once()

		other := patientSession()
		other.UserID = "patient-2"

		_, err := testRecordUsecase.DownloadRecord(ctx, other, "record-1")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("shared doctor may fetch the record", func(t *testing.T) {
		record := storedRecord()
		record.DoctorID = "doctor-1"
		testRecordRepository.On("FindByID", mock.Anything, "record-1").Return(record, nil).Once()
		testStorage.On("PresignedDownloadURL", mock.Anything, "record/patient-1/abc.pdf", time.Hour).
			Return("https://minio.local/presigned", nil).Once()

		doctor := &models.Session{UserID: "doctor-user-1", Role: constvars.RoleDoctor, DoctorID: "doctor-1"}

		_, err := testRecordUsecase.DownloadRecord(ctx, doctor, "record-1")

		require.NoError(t, err)
	})

	t.Run("an unrelated doctor is refused", func(t *testing.T) {
		// Drop call history from earlier subtests so AssertNotCalled only
		// sees calls made by this subtest; the mocks are package-level.
		testStorage.Calls = nil
		testRecordRepository.On("FindByID", mock.Anything, "record-1").Return(storedRecord(), nil).Once()

		doctor := &models.Session{UserID: "doctor-user-2", Role: constvars.RoleDoctor, DoctorID: "doctor-2"}

		_, err := testRecordUsecase.DownloadRecord(ctx, doctor, "record-1")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		testStorage.AssertNotCalled(t, "PresignedDownloadURL", mock.Anything, "record/patient-1/abc.pdf", time.Hour)
	})

	t.Run("admin may fetch any record", func(t *testing.T) {
		testRecordRepository.On("FindByID", mock.Anything, "record-1").Return(storedRecord(), nil).Once()
		testStorage.On("PresignedDownloadURL", mock.Anything, "record/patient-1/abc.pdf", time.Hour).
			Return("https://minio.local/presigned", nil).Once()

		admin := &models.Session{UserID: "admin-1", Role: constvars.RoleAdmin}

		_, err := testRecordUsecase.DownloadRecord(ctx, admin, "record-1")

		require.NoError(t, err)
	})
}

func TestMedicalRecordUsecase_ListRecords(t *testing.T) {
	ctx := context.Background()
	query := &requests.QueryParams{Page: 1, PageSize: 10}

	t.Run("patient lists their own records", func(t *testing.T) {
		testRecordRepository.On("FindByPatient", mock.Anything, "patient-1", query).Return([]models.MedicalRecord{
			{ID: "record-1", PatientID: "patient-1"},
		}, 1, nil).Once()

		records, total, err := testRecordUsecase.ListRecords(ctx, patientSession(), query)

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, records, 1)
	})

	t.Run("doctor lists records shared with them", func(t *testing.T) {
		doctor := &models.Session{UserID: "doctor-user-1", Role: constvars.RoleDoctor, DoctorID: "doctor-1"}
		testRecordRepository.On("FindByDoctor", mock.Anything, "doctor-1", query).Return([]models.MedicalRecord{
			{ID: "record-2", PatientID: "patient-1", DoctorID: "doctor-1"},
		}, 1, nil).Once()

		records, total, err := testRecordUsecase.ListRecords(ctx, doctor, query)

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, records, 1)
		assert.Equal(t, "doctor-1", records[0].DoctorID)
		testRecordRepository.AssertNotCalled(t, "FindByPatient", mock.Anything, "doctor-user-1", query)
	})
}
