package db

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/solenelark/glowlog/internal/models"
)

type CompletionRepository struct {
	database *gorm.DB
}

func NewCompletionRepository(database *gorm.DB) *CompletionRepository {
	return &CompletionRepository{database: database}
}

func (repo *CompletionRepository) ListByUser(userID uint) ([]models.CompletionRecord, error) {
	records := make([]models.CompletionRecord, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *CompletionRepository) ListByUserAndDay(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.CompletionRecord, error) {
	records := make([]models.CompletionRecord, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *CompletionRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.CompletionRecord, error) {
	records := make([]models.CompletionRecord, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *CompletionRepository) FindByStepAndDay(stepID uint, dayStart time.Time, dayEnd time.Time) (models.CompletionRecord, bool, error) {
	var record models.CompletionRecord
	err := repo.database.
		Where("step_id = ? AND date >= ? AND date < ?", stepID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CompletionRecord{}, false, nil
	}
	if err != nil {
		return models.CompletionRecord{}, false, err
	}
	return record, true, nil
}

func (repo *CompletionRepository) Create(record *models.CompletionRecord) error {
	return repo.database.Create(record).Error
}

func (repo *CompletionRepository) Save(record *models.CompletionRecord) error {
	return repo.database.Save(record).Error
}

func (repo *CompletionRepository) Delete(recordID uint) error {
	return repo.database.Delete(&models.CompletionRecord{}, recordID).Error
}
