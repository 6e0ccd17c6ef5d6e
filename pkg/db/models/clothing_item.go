package models

// ClothingItem is a catalog row. The API never writes this table; rows are
// loaded by cmd/seed_catalog.
type ClothingItem struct {
	ID               uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Name             string `gorm:"column:name"`
	Description      string `gorm:"column:description;type:text"`
	Color            string `gorm:"column:color"`
	Pattern          string `gorm:"column:pattern"`
	Material         string `gorm:"column:material"`
	EstimatedPricing string `gorm:"column:estimated_pricing"`
	Gender           string `gorm:"column:gender"`
	Events           string `gorm:"column:events"`
	TypeOfClothing   string `gorm:"column:type_of_clothing"`
	ImageURL         string `gorm:"column:image_url"`
}
