package db

import (
	"errors"

	"gorm.io/gorm"

	"github.com/solenelark/glowlog/internal/models"
)

type StepRepository struct {
	database *gorm.DB
}

func NewStepRepository(database *gorm.DB) *StepRepository {
	return &StepRepository{database: database}
}

func (repo *StepRepository) ListByUser(userID uint) ([]models.RoutineStep, error) {
	steps := make([]models.RoutineStep, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("time_of_day ASC, position ASC, id ASC").
		Find(&steps).Error; err != nil {
		return nil, err
	}
	return steps, nil
}

func (repo *StepRepository) ListByUserWindow(userID uint, window models.TimeOfDay) ([]models.RoutineStep, error) {
	steps := make([]models.RoutineStep, 0)
	if err := repo.database.
		Where("user_id = ? AND time_of_day = ?", userID, window).
		Order("position ASC, id ASC").
		Find(&steps).Error; err != nil {
		return nil, err
	}
	return steps, nil
}

func (repo *StepRepository) FindByID(userID uint, stepID uint) (models.RoutineStep, bool, error) {
	var step models.RoutineStep
	err := repo.database.Where("user_id = ?", userID).First(&step, stepID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.RoutineStep{}, false, nil
	}
	if err != nil {
		return models.RoutineStep{}, false, err
	}
	return step, true, nil
}

func (repo *StepRepository) Create(step *models.RoutineStep) error {
	return repo.database.Create(step).Error
}

func (repo *StepRepository) Save(step *models.RoutineStep) error {
	return repo.database.Save(step).Error
}

func (repo *StepRepository) SavePosition(stepID uint, position int) error {
	return repo.database.Model(&models.RoutineStep{}).
		Where("id = ?", stepID).
		Update("position", position).Error
}

func (repo *StepRepository) CountByUserWindow(userID uint, window models.TimeOfDay) (int, error) {
	var count int64
	if err := repo.database.Model(&models.RoutineStep{}).
		Where("user_id = ? AND time_of_day = ?", userID, window).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// DeleteWithCompletions removes a step together with its completion history
// in one transaction so a half-deleted step never survives a crash.
func (repo *StepRepository) DeleteWithCompletions(userID uint, stepID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND step_id = ?", userID, stepID).
			Delete(&models.CompletionRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&models.RoutineStep{}, stepID).Error
	})
}
