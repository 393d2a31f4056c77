package db

import (
	"errors"

	"gorm.io/gorm"

	"github.com/solenelark/glowlog/internal/models"
)

type ProductRepository struct {
	database *gorm.DB
}

func NewProductRepository(database *gorm.DB) *ProductRepository {
	return &ProductRepository{database: database}
}

func (repo *ProductRepository) ListByUser(userID uint) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("name ASC, id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (repo *ProductRepository) FindByID(userID uint, productID uint) (models.Product, bool, error) {
	var product models.Product
	err := repo.database.Where("user_id = ?", userID).First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, false, nil
	}
	if err != nil {
		return models.Product{}, false, err
	}
	return product, true, nil
}

func (repo *ProductRepository) Create(product *models.Product) error {
	return repo.database.Create(product).Error
}

func (repo *ProductRepository) Save(product *models.Product) error {
	return repo.database.Save(product).Error
}

// Delete unlinks referencing routine steps before removing the product, so a
// step that used the product falls back to running without one.
func (repo *ProductRepository) Delete(userID uint, productID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.RoutineStep{}).
			Where("user_id = ? AND product_id = ?", userID, productID).
			Update("product_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&models.Product{}, productID).Error
	})
}
