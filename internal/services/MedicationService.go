package services

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"mindcare/internal/models"
	"mindcare/internal/providers"
	"mindcare/internal/storage"
	"mindcare/internal/structures"
	"net/http"
	"strings"
	"time"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

type MedicationServiceInterface interface {
	Create(ctx context.Context, owner string, in *models.MedicationInput) (*models.Medication, error)
	Get(ctx context.Context, owner, id string) (*models.Medication, error)
	List(ctx context.Context, owner, query string) ([]*models.Medication, error)
	Update(ctx context.Context, owner, id string, in *models.MedicationUpdateInput) (*models.Medication, error)
	Delete(ctx context.Context, owner, id string) error
	UploadImage(ctx context.Context, owner, id string, body []byte) (*models.Medication, error)
	MaxImageBytes() int64
}

type MedicationService struct {
	db       *storage.Database
	media    providers.MediaStoreInterface
	logger   providers.Logger
	maxBytes int64
	now      func() time.Time
}

const defaultMaxImageMB = 5

func NewMedicationService(conf *structures.Config, db *storage.Database, media providers.MediaStoreInterface, logger providers.Logger) MedicationServiceInterface {
	sizeMB := conf.Media.MaxSizeMB
	if sizeMB <= 0 {
		sizeMB = defaultMaxImageMB
	}
	return &MedicationService{
		db:       db,
		media:    media,
		logger:   logger,
		maxBytes: int64(sizeMB) << 20,
		now:      time.Now,
	}
}

// imageKey is the object key of a medication photo.
func imageKey(owner, id string) string {
	return fmt.Sprintf("medications/%s/%s", owner, id)
}

func (s *MedicationService) Create(_ context.Context, owner string, in *models.MedicationInput) (*models.Medication, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	now := s.now().Unix()
	med := &models.Medication{
		ID:             uuid.NewString(),
		UserID:         owner,
		Name:           in.Name,
		Dosage:         in.Dosage,
		Frequency:      in.Frequency,
		TimeOfDay:      in.TimeOfDay,
		SpecificTimes:  lo.Compact(in.SpecificTimes),
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		Notes:          in.Notes,
		MedicationType: in.MedicationType,
		ImageURL:       in.ImageURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.db.Medications.Put(med)
	return med, nil
}

func (s *MedicationService) Get(ctx context.Context, owner, id string) (*models.Medication, error) {
	return s.db.GetMedication(ctx, owner, id)
}

// List returns the owner's medications, newest first. A non-empty query keeps
// only those whose name contains it, ignoring case.
func (s *MedicationService) List(ctx context.Context, owner, query string) ([]*models.Medication, error) {
	meds, err := s.db.ListMedications(ctx, owner)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return meds, nil
	}
	return lo.Filter(meds, func(m *models.Medication, _ int) bool {
		return strings.Contains(strings.ToLower(m.Name), query)
	}), nil
}

func (s *MedicationService) Update(ctx context.Context, owner, id string, in *models.MedicationUpdateInput) (*models.Medication, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	med, err := s.db.GetMedication(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	in.Apply(med, s.now())
	s.db.Medications.Put(med)
	return med, nil
}

func (s *MedicationService) Delete(ctx context.Context, owner, id string) error {
	med, err := s.db.GetMedication(ctx, owner, id)
	if err != nil {
		return err
	}
	if err := s.db.Medications.Delete(owner, id); err != nil {
		return err
	}
	if med.ImageURL != nil {
		if err := s.media.Delete(ctx, imageKey(owner, id)); err != nil {
			s.logger.Warnf(providers.TypeApp, "Failed to delete image of medication %s: %s", id, err)
		}
	}
	return nil
}

func (s *MedicationService) MaxImageBytes() int64 {
	return s.maxBytes
}

// UploadImage stores the photo and saves a presigned download URL on the medication.
func (s *MedicationService) UploadImage(ctx context.Context, owner, id string, body []byte) (*models.Medication, error) {
	med, err := s.db.GetMedication(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, models.NewValidationError("file", "file is empty")
	}
	if int64(len(body)) > s.maxBytes {
		return nil, models.NewValidationError("file", fmt.Sprintf("file exceeds %d bytes", s.maxBytes))
	}
	contentType := http.DetectContentType(body)
	if !allowedImageTypes[contentType] {
		return nil, models.NewValidationError("file", "file must be a JPEG, PNG, WebP or GIF image")
	}

	key := imageKey(owner, id)
	if err := s.media.Upload(ctx, key, contentType, body); err != nil {
		return nil, err
	}
	url, err := s.media.PresignGet(ctx, key)
	if err != nil {
		return nil, err
	}

	med.ImageURL = &url
	med.UpdatedAt = s.now().Unix()
	s.db.Medications.Put(med)
	s.logger.Debugf(providers.TypePost, "Stored image %s (%s, %d bytes)", key, contentType, len(body))
	return med, nil
}
