package models

import "time"

type Product struct {
	ID                uint         `gorm:"primaryKey" json:"id"`
	UserID            uint         `gorm:"not null;index" json:"user_id"`
	CatalogID         *uint        `json:"catalog_id,omitempty"`
	Name              string       `gorm:"not null" json:"name"`
	Brand             string       `json:"brand,omitempty"`
	Category          StepCategory `gorm:"not null;default:other" json:"category"`
	ActiveIngredients string       `json:"active_ingredients,omitempty"`
	FullIngredients   string       `json:"full_ingredients,omitempty"`
	TimeOfDay         TimeOfDay    `gorm:"not null;default:both" json:"time_of_day"`
	PAOMonths         int          `gorm:"column:pao_months;not null;default:0" json:"pao_months,omitempty"`
	StartedAt         time.Time    `gorm:"type:date;not null" json:"started_at"`
	StoppedAt         *time.Time   `gorm:"type:date" json:"stopped_at,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

func (product Product) IsStopped() bool {
	return product.StoppedAt != nil
}

// CatalogEntry is a shared, read-only reference product common to all users.
type CatalogEntry struct {
	ID                uint         `gorm:"primaryKey" json:"id"`
	Name              string       `gorm:"not null;index" json:"name"`
	Brand             string       `gorm:"index" json:"brand,omitempty"`
	Category          StepCategory `gorm:"not null;default:other" json:"category"`
	ActiveIngredients string       `json:"active_ingredients,omitempty"`
	FullIngredients   string       `json:"full_ingredients,omitempty"`
	PAOMonths         int          `gorm:"column:pao_months;not null;default:0" json:"pao_months,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
}

// ResolveProductDisplay applies the catalog precedence rule: when a product is
// linked to a catalog entry, the entry's display and ingredient fields win over
// anything stored per-user. Products without a catalog link keep their own
// fields untouched.
func ResolveProductDisplay(product Product, entry *CatalogEntry) Product {
	if product.CatalogID == nil || entry == nil || entry.ID != *product.CatalogID {
		return product
	}

	product.Name = entry.Name
	product.Brand = entry.Brand
	product.Category = entry.Category
	product.ActiveIngredients = entry.ActiveIngredients
	product.FullIngredients = entry.FullIngredients
	if entry.PAOMonths > 0 {
		product.PAOMonths = entry.PAOMonths
	}
	return product
}
