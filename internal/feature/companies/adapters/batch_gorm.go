package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"equity_backend/internal/feature/companies/domain/entity"
	"equity_backend/internal/feature/companies/usecase"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SymbolBatchModel is the GORM model for the symbol_batches table.
type SymbolBatchModel struct {
	Token     string         `gorm:"primaryKey;size:36"`
	Companies datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time      `gorm:"not null"`
	ExpiresAt time.Time      `gorm:"index;not null"`
}

// TableName returns the table name for GORM.
func (SymbolBatchModel) TableName() string {
	return "symbol_batches"
}

// symbolBatchGorm stores symbol batches in the database when Redis is not configured.
type symbolBatchGorm struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// Compile-time check to ensure symbolBatchGorm implements SymbolBatchStore.
var _ usecase.SymbolBatchStore = (*symbolBatchGorm)(nil)

// NewSymbolBatchRepository creates a database-backed SymbolBatchStore whose entries live for ttl.
func NewSymbolBatchRepository(db *gorm.DB, ttl time.Duration) *symbolBatchGorm {
	return &symbolBatchGorm{db: db, ttl: ttl, now: time.Now}
}

// Save stores the companies under a new random token and purges expired batches.
func (r *symbolBatchGorm) Save(ctx context.Context, companies []entity.Company) (string, error) {
	data, err := json.Marshal(companies)
	if err != nil {
		return "", fmt.Errorf("failed to marshal symbol batch: %w", err)
	}

	now := r.now()
	m := SymbolBatchModel{
		Token:     uuid.NewString(),
		Companies: datatypes.JSON(data),
		CreatedAt: now,
		ExpiresAt: now.Add(r.ttl),
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("expires_at <= ?", now).Delete(&SymbolBatchModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return "", err
	}
	return m.Token, nil
}

// Load returns the companies stored under token.
func (r *symbolBatchGorm) Load(ctx context.Context, token string) ([]entity.Company, error) {
	var m SymbolBatchModel
	if err := r.db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, r.now()).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrBatchNotFound
		}
		return nil, err
	}

	var companies []entity.Company
	if err := json.Unmarshal(m.Companies, &companies); err != nil {
		return nil, fmt.Errorf("failed to unmarshal symbol batch: %w", err)
	}
	return companies, nil
}
