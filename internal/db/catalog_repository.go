package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/solenelark/glowlog/internal/models"
)

const catalogSearchLimit = 25

type CatalogRepository struct {
	database *gorm.DB
}

func NewCatalogRepository(database *gorm.DB) *CatalogRepository {
	return &CatalogRepository{database: database}
}

func (repo *CatalogRepository) FindByID(entryID uint) (models.CatalogEntry, bool, error) {
	var entry models.CatalogEntry
	err := repo.database.First(&entry, entryID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CatalogEntry{}, false, nil
	}
	if err != nil {
		return models.CatalogEntry{}, false, err
	}
	return entry, true, nil
}

// Search matches the query against name and brand, case-insensitively.
// An empty query returns the first page of the catalog.
func (repo *CatalogRepository) Search(query string) ([]models.CatalogEntry, error) {
	entries := make([]models.CatalogEntry, 0)
	scope := repo.database.Model(&models.CatalogEntry{})

	query = strings.TrimSpace(query)
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		scope = scope.Where("lower(name) LIKE ? OR lower(brand) LIKE ?", pattern, pattern)
	}

	if err := scope.
		Order("brand ASC, name ASC").
		Limit(catalogSearchLimit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *CatalogRepository) Create(entry *models.CatalogEntry) error {
	return repo.database.Create(entry).Error
}
