package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Steps       *StepRepository
	Completions *CompletionRepository
	Products    *ProductRepository
	Catalog     *CatalogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Steps:       NewStepRepository(database),
		Completions: NewCompletionRepository(database),
		Products:    NewProductRepository(database),
		Catalog:     NewCatalogRepository(database),
	}
}
