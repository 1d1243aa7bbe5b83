package repository

import (
	"context"
	"errors"
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	domainRepo "github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var settings entity.Settings
	err := r.db.WithContext(ctx).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

func (r *settingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new cart snapshot repository
func NewSnapshotRepository(db *gorm.DB) domainRepo.SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Load(ctx context.Context) (*entity.CartSnapshot, error) {
	var snapshot entity.CartSnapshot
	err := r.db.WithContext(ctx).First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &snapshot, err
}

func (r *snapshotRepository) Save(ctx context.Context, snapshot *entity.CartSnapshot) error {
	snapshot.SavedAt = time.Now()

	existing := &entity.CartSnapshot{}
	err := r.db.WithContext(ctx).First(existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(snapshot).Error
	}
	if err != nil {
		return err
	}

	existing.Payload = snapshot.Payload
	existing.SavedAt = snapshot.SavedAt
	return r.db.WithContext(ctx).Save(existing).Error
}

func (r *snapshotRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&entity.CartSnapshot{}).Error
}
