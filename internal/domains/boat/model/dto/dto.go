package dto

import (
	"nautica/internal/domains/boat/model"
	"nautica/shared"
	gDto "nautica/shared/dto"
	"nautica/shared/money"
)

type BoatResponse struct {
	ID             string      `json:"id"`
	OwnerID        string      `json:"owner_id"`
	Name           string      `json:"name"`
	Category       string      `json:"category"`
	Description    string      `json:"description"`
	Capacity       int         `json:"capacity"`
	LengthMeters   float64     `json:"length_meters"`
	HasCrew        bool        `json:"has_crew"`
	BasePriceDaily money.Money `json:"base_price_daily"`
	DepositAmount  money.Money `json:"deposit_amount"`
	Active         bool        `json:"active"`
	PhotoURLs      []string    `json:"photo_urls"`
	gDto.Metadata
}

func (r *BoatResponse) FromModel(model model.Boat, photoURLs []string) {
	r.ID = model.ID
	r.OwnerID = model.OwnerID
	r.Name = model.Name
	r.Category = model.Category
	r.Description = model.Description
	r.Capacity = model.Capacity
	r.LengthMeters = model.LengthMeters
	r.HasCrew = model.HasCrew
	r.BasePriceDaily = model.BasePriceDaily
	r.DepositAmount = model.DepositAmount
	r.Active = model.Active
	r.PhotoURLs = photoURLs
	r.Metadata.FromModel(model.Metadata)
}

type GetBoatsResponse struct {
	Boats     []BoatResponse `json:"boats"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetBoatsResponse) FromModels(models []model.Boat, photoURLs map[string][]string, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Boats = make([]BoatResponse, len(models))
	for i, mod := range models {
		r.Boats[i].FromModel(mod, photoURLs[mod.ID])
	}
}
