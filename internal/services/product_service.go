package services

import (
	"errors"
	"time"

	"github.com/solenelark/glowlog/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

type ProductStore interface {
	ListByUser(userID uint) ([]models.Product, error)
	FindByID(userID uint, productID uint) (models.Product, bool, error)
	Save(product *models.Product) error
}

type CatalogReader interface {
	FindByID(entryID uint) (models.CatalogEntry, bool, error)
}

type ProductService struct {
	products ProductStore
	catalog  CatalogReader
	detector *ConflictDetector
	location *time.Location
}

func NewProductService(products ProductStore, catalog CatalogReader, detector *ConflictDetector, location *time.Location) *ProductService {
	if location == nil {
		location = time.UTC
	}
	return &ProductService{products: products, catalog: catalog, detector: detector, location: location}
}

// ListResolved returns the user's products with catalog-linked display fields
// resolved. Everything downstream (conflict detection, export, API responses)
// works on resolved products.
func (service *ProductService) ListResolved(userID uint) ([]models.Product, error) {
	products, err := service.products.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	resolved := make([]models.Product, 0, len(products))
	for _, product := range products {
		merged, err := service.resolve(product)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, merged)
	}
	return resolved, nil
}

func (service *ProductService) FindResolved(userID uint, productID uint) (models.Product, error) {
	product, found, err := service.products.FindByID(userID, productID)
	if err != nil {
		return models.Product{}, err
	}
	if !found {
		return models.Product{}, ErrProductNotFound
	}
	return service.resolve(product)
}

func (service *ProductService) resolve(product models.Product) (models.Product, error) {
	if product.CatalogID == nil {
		return product, nil
	}
	entry, found, err := service.catalog.FindByID(*product.CatalogID)
	if err != nil {
		return models.Product{}, err
	}
	if !found {
		return product, nil
	}
	return models.ResolveProductDisplay(product, &entry), nil
}

// ShelfConflicts runs the detector over the user's active shelf.
func (service *ProductService) ShelfConflicts(userID uint) ([]DetectedConflict, error) {
	products, err := service.ListResolved(userID)
	if err != nil {
		return nil, err
	}
	return service.detector.Detect(products), nil
}

// ProductConflicts previews conflicts for a single product, including it even
// when stopped.
func (service *ProductService) ProductConflicts(userID uint, productID uint) ([]DetectedConflict, error) {
	product, err := service.FindResolved(userID, productID)
	if err != nil {
		return nil, err
	}
	all, err := service.ListResolved(userID)
	if err != nil {
		return nil, err
	}
	return service.detector.DetectForProduct(product, all), nil
}

// Stop marks the product inactive as of the given day. Stopping an already
// stopped product keeps the original stop date.
func (service *ProductService) Stop(userID uint, productID uint, now time.Time) (models.Product, error) {
	product, found, err := service.products.FindByID(userID, productID)
	if err != nil {
		return models.Product{}, err
	}
	if !found {
		return models.Product{}, ErrProductNotFound
	}
	if product.IsStopped() {
		return product, nil
	}

	today := DateAtLocation(now, service.location)
	product.StoppedAt = &today
	if err := service.products.Save(&product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Restart clears stopped_at and resets started_at to today.
func (service *ProductService) Restart(userID uint, productID uint, now time.Time) (models.Product, error) {
	product, found, err := service.products.FindByID(userID, productID)
	if err != nil {
		return models.Product{}, err
	}
	if !found {
		return models.Product{}, ErrProductNotFound
	}

	product.StoppedAt = nil
	product.StartedAt = DateAtLocation(now, service.location)
	if err := service.products.Save(&product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}
