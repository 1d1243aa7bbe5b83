package repository

import (
	"context"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
)

// SettingsRepository manages the singleton settings row
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Save(ctx context.Context, settings *entity.Settings) error
}

// SnapshotRepository persists the serialized open ticket so a crash or
// restart does not lose the cashier's work in progress
type SnapshotRepository interface {
	Load(ctx context.Context) (*entity.CartSnapshot, error)
	Save(ctx context.Context, snapshot *entity.CartSnapshot) error
	Clear(ctx context.Context) error
}
