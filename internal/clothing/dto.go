package clothing

import "github.com/kmorales-dev/closetwish-backend/pkg/db/models"

// ClothingItemDTO is the catalog read projection.
type ClothingItemDTO struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Color            string `json:"color"`
	Pattern          string `json:"pattern"`
	Material         string `json:"material"`
	EstimatedPricing string `json:"estimatedPricing"`
	Gender           string `json:"gender"`
	Events           string `json:"events"`
	TypeOfClothing   string `json:"typeOfClothing"`
	ImageURL         string `json:"imageUrl"`
}

func FromModel(item *models.ClothingItem) *ClothingItemDTO {
	if item == nil {
		return nil
	}
	return &ClothingItemDTO{
		ID:               item.ID,
		Name:             item.Name,
		Description:      item.Description,
		Color:            item.Color,
		Pattern:          item.Pattern,
		Material:         item.Material,
		EstimatedPricing: item.EstimatedPricing,
		Gender:           item.Gender,
		Events:           item.Events,
		TypeOfClothing:   item.TypeOfClothing,
		ImageURL:         item.ImageURL,
	}
}
