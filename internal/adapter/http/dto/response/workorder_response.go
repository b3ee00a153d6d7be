package response

import (
	"time"

	"pma_workorders/internal/domain/entities"
)

// ChecklistSummary carries the visit totals shown on the detail view.
type ChecklistSummary struct {
	ItemsOK               int `json:"itemsOk"`
	ItemsRequireAttention int `json:"itemsRequireAttention"`
}

type WorkOrderResponse struct {
	ID               string             `json:"id"`
	WorkOrderID      string             `json:"workOrderId"`
	CustomerID       string             `json:"customerId"`
	CustomerName     string             `json:"customerName"`
	Address          string             `json:"address"`
	PMAType          string             `json:"pmaType"`
	Date             string             `json:"date"`
	IndoorAirQuality string             `json:"indoorAirQuality"`
	Checklist        entities.Checklist `json:"checklist"`
	ChecklistSummary ChecklistSummary   `json:"checklistSummary"`
	OverallCondition string             `json:"overallCondition"`

	SiteConditions entities.SiteConditions `json:"siteConditions"`
	SafetyInfo     entities.SafetyInfo     `json:"safetyInfo"`

	Comments                   string `json:"comments"`
	Recommendations            string `json:"recommendations"`
	ImmediateAttentionRequired bool   `json:"immediateAttentionRequired"`
	RecommendationToFollow     bool   `json:"recommendationToFollow"`

	Materials []entities.MaterialEntry `json:"materials"`
	Hours     []entities.HoursEntry    `json:"hours"`

	AuthorizedBy        string `json:"authorizedBy"`
	SpokeWith           string `json:"spokeWith"`
	PO                  string `json:"po"`
	CustomerSignature   string `json:"customerSignature"`
	TechnicianSignature string `json:"technicianSignature"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromWorkOrder(wo entities.WorkOrder) WorkOrderResponse {
	ok, attention := wo.Checklist.Totals()
	return WorkOrderResponse{
		ID:               wo.ID,
		WorkOrderID:      wo.WorkOrderID,
		CustomerID:       wo.CustomerID,
		CustomerName:     wo.CustomerName,
		Address:          wo.Address,
		PMAType:          wo.PMAType,
		Date:             wo.Date,
		IndoorAirQuality: string(wo.IndoorAirQuality),
		Checklist:        wo.Checklist,
		ChecklistSummary: ChecklistSummary{ItemsOK: ok, ItemsRequireAttention: attention},
		OverallCondition: string(wo.OverallCondition),

		SiteConditions: wo.SiteConditions,
		SafetyInfo:     wo.SafetyInfo,

		Comments:                   wo.Comments,
		Recommendations:            wo.Recommendations,
		ImmediateAttentionRequired: wo.ImmediateAttentionRequired,
		RecommendationToFollow:     wo.RecommendationToFollow,

		Materials: wo.Materials,
		Hours:     wo.Hours,

		AuthorizedBy:        wo.AuthorizedBy,
		SpokeWith:           wo.SpokeWith,
		PO:                  wo.PO,
		CustomerSignature:   wo.CustomerSignature,
		TechnicianSignature: wo.TechnicianSignature,

		CreatedAt: wo.CreatedAt,
		UpdatedAt: wo.UpdatedAt,
	}
}

func FromWorkOrders(orders []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(orders))
	for _, wo := range orders {
		out = append(out, FromWorkOrder(wo))
	}
	return out
}
