package models

import "time"

type TimeOfDay string

const (
	TimeMorning TimeOfDay = "morning"
	TimeEvening TimeOfDay = "evening"
	TimeBoth    TimeOfDay = "both"
)

// StepWindows lists the values a routine step may use. Products additionally
// allow TimeBoth for the conflict detector's overlap rule.
func StepWindows() []TimeOfDay {
	return []TimeOfDay{TimeMorning, TimeEvening}
}

func IsStepWindow(value TimeOfDay) bool {
	return value == TimeMorning || value == TimeEvening
}

func IsProductWindow(value TimeOfDay) bool {
	return IsStepWindow(value) || value == TimeBoth
}

type StepCategory string

const (
	CategoryCleanser    StepCategory = "cleanser"
	CategoryToner       StepCategory = "toner"
	CategorySerum       StepCategory = "serum"
	CategoryMoisturizer StepCategory = "moisturizer"
	CategorySunscreen   StepCategory = "sunscreen"
	CategoryExfoliant   StepCategory = "exfoliant"
	CategoryTreatment   StepCategory = "treatment"
	CategoryMask        StepCategory = "mask"
	CategoryEyeCream    StepCategory = "eye_cream"
	CategoryFaceOil     StepCategory = "face_oil"
	CategoryOther       StepCategory = "other"
)

type CategoryMeta struct {
	Label string
	Icon  string
}

var categoryCatalog = map[StepCategory]CategoryMeta{
	CategoryCleanser:    {Label: "Cleanser", Icon: "🧼"},
	CategoryToner:       {Label: "Toner", Icon: "💧"},
	CategorySerum:       {Label: "Serum", Icon: "🧪"},
	CategoryMoisturizer: {Label: "Moisturizer", Icon: "🧴"},
	CategorySunscreen:   {Label: "Sunscreen", Icon: "☀️"},
	CategoryExfoliant:   {Label: "Exfoliant", Icon: "✨"},
	CategoryTreatment:   {Label: "Treatment", Icon: "🎯"},
	CategoryMask:        {Label: "Mask", Icon: "🎭"},
	CategoryEyeCream:    {Label: "Eye cream", Icon: "👁️"},
	CategoryFaceOil:     {Label: "Face oil", Icon: "🫒"},
	CategoryOther:       {Label: "Other", Icon: "🔹"},
}

// CategoryInfo is total: unrecognized categories resolve to the "other" entry
// instead of propagating a missing lookup.
func CategoryInfo(category StepCategory) CategoryMeta {
	if meta, ok := categoryCatalog[category]; ok {
		return meta
	}
	return categoryCatalog[CategoryOther]
}

func NormalizeCategory(category StepCategory) StepCategory {
	if _, ok := categoryCatalog[category]; ok {
		return category
	}
	return CategoryOther
}

type RoutineStep struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    uint         `gorm:"not null;index" json:"user_id"`
	Name      string       `gorm:"not null" json:"name"`
	Category  StepCategory `gorm:"not null;default:other" json:"category"`
	TimeOfDay TimeOfDay    `gorm:"not null" json:"time_of_day"`
	Position  int          `gorm:"column:position;not null;default:0" json:"order"`
	Schedule  Schedule     `gorm:"serializer:json" json:"schedule"`
	ProductID *uint        `json:"product_id,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
