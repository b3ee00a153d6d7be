package request

import (
	"time"

	"pma_workorders/internal/domain/entities"
)

type ChecklistItemRequest struct {
	Label             string `json:"label" binding:"required"`
	OK                bool   `json:"ok"`
	RequiresAttention bool   `json:"requiresAttention"`
}

type ChecklistRequest struct {
	Compressors        []ChecklistItemRequest `json:"compressors"`
	Condenser          []ChecklistItemRequest `json:"condenser"`
	Evaporator         []ChecklistItemRequest `json:"evaporator"`
	RefrigerantCircuit []ChecklistItemRequest `json:"refrigerantCircuit"`
	FanFanDrives       []ChecklistItemRequest `json:"fanFanDrives"`
	HeatingNaturalGas  []ChecklistItemRequest `json:"heatingNaturalGas"`
	Other              []ChecklistItemRequest `json:"other"`
	ElectricalControls []ChecklistItemRequest `json:"electricalControls"`
}

type SiteConditionsRequest struct {
	GarbageRemoval     bool   `json:"garbageRemoval"`
	RoofCondition      bool   `json:"roofCondition"`
	GuardRailsRequired bool   `json:"guardRailsRequired"`
	Other              string `json:"other"`
}

type SafetyInfoRequest struct {
	SafetyConsidered        bool `json:"safetyConsidered"`
	RedTagIssued            bool `json:"redTagIssued"`
	RefrigerantLeakDetected bool `json:"refrigerantLeakDetected"`
}

type MaterialEntryRequest struct {
	Source      string `json:"source"`
	Qty         int    `json:"qty" binding:"min=0"`
	Description string `json:"description"`
	PO          string `json:"po"`
}

type HoursEntryRequest struct {
	Date    string `json:"date"`
	Hours   int    `json:"hours" binding:"min=0"`
	OT      int    `json:"ot" binding:"min=0"`
	RT      int    `json:"rt" binding:"min=0"`
	Parking int    `json:"parking" binding:"min=0"`
	Tech    string `json:"tech"`
	Initial string `json:"initial"`
}

// WorkOrderRequest is the full-document payload used by both create and
// update. Omitted checklist sections fall back to the seed template so a
// stored document is never partial; everything else overlays the defaults.
type WorkOrderRequest struct {
	WorkOrderID      string            `json:"workOrderId"`
	CustomerID       string            `json:"customerId"`
	CustomerName     string            `json:"customerName"`
	Address          string            `json:"address"`
	PMAType          string            `json:"pmaType"`
	Date             string            `json:"date"`
	IndoorAirQuality string            `json:"indoorAirQuality"`
	Checklist        *ChecklistRequest `json:"checklist"`
	OverallCondition string            `json:"overallCondition"`

	SiteConditions SiteConditionsRequest `json:"siteConditions"`
	SafetyInfo     SafetyInfoRequest     `json:"safetyInfo"`

	Comments                   string `json:"comments"`
	Recommendations            string `json:"recommendations"`
	ImmediateAttentionRequired bool   `json:"immediateAttentionRequired"`
	RecommendationToFollow     bool   `json:"recommendationToFollow"`

	Materials []MaterialEntryRequest `json:"materials" binding:"omitempty,dive"`
	Hours     []HoursEntryRequest    `json:"hours" binding:"omitempty,dive"`

	AuthorizedBy        string `json:"authorizedBy"`
	SpokeWith           string `json:"spokeWith"`
	PO                  string `json:"po"`
	CustomerSignature   string `json:"customerSignature"`
	TechnicianSignature string `json:"technicianSignature"`
}

// ToEntity builds a fully-populated work order from the payload, starting
// from the default draft. It rejects overall-condition and air-quality
// values outside their fixed variants.
func (r WorkOrderRequest) ToEntity(now time.Time) (entities.WorkOrder, error) {
	wo := entities.NewDraft(now)

	wo.WorkOrderID = r.WorkOrderID
	wo.CustomerID = r.CustomerID
	wo.CustomerName = r.CustomerName
	wo.Address = r.Address
	if r.PMAType != "" {
		wo.PMAType = r.PMAType
	}
	if r.Date != "" {
		wo.Date = r.Date
	}

	if err := wo.SetIndoorAirQuality(entities.IndoorAirQuality(r.IndoorAirQuality)); err != nil {
		return entities.WorkOrder{}, err
	}
	cond := r.OverallCondition
	if cond == "" {
		cond = string(entities.ConditionFair)
	}
	if err := wo.SetOverallCondition(entities.OverallCondition(cond)); err != nil {
		return entities.WorkOrder{}, err
	}

	if r.Checklist != nil {
		seed := wo.Checklist
		wo.Checklist = entities.Checklist{
			Compressors:        overlaySection(r.Checklist.Compressors, seed.Compressors),
			Condenser:          overlaySection(r.Checklist.Condenser, seed.Condenser),
			Evaporator:         overlaySection(r.Checklist.Evaporator, seed.Evaporator),
			RefrigerantCircuit: overlaySection(r.Checklist.RefrigerantCircuit, seed.RefrigerantCircuit),
			FanFanDrives:       overlaySection(r.Checklist.FanFanDrives, seed.FanFanDrives),
			HeatingNaturalGas:  overlaySection(r.Checklist.HeatingNaturalGas, seed.HeatingNaturalGas),
			Other:              overlaySection(r.Checklist.Other, seed.Other),
			ElectricalControls: overlaySection(r.Checklist.ElectricalControls, seed.ElectricalControls),
		}
	}

	wo.SiteConditions = entities.SiteConditions(r.SiteConditions)
	wo.SafetyInfo = entities.SafetyInfo(r.SafetyInfo)

	wo.Comments = r.Comments
	wo.Recommendations = r.Recommendations
	wo.ImmediateAttentionRequired = r.ImmediateAttentionRequired
	wo.RecommendationToFollow = r.RecommendationToFollow

	for _, m := range r.Materials {
		wo.AppendMaterial(entities.MaterialEntry(m))
	}
	for _, h := range r.Hours {
		wo.AppendHours(entities.HoursEntry(h))
	}

	wo.AuthorizedBy = r.AuthorizedBy
	wo.SpokeWith = r.SpokeWith
	wo.PO = r.PO
	wo.CustomerSignature = r.CustomerSignature
	wo.TechnicianSignature = r.TechnicianSignature

	return wo, nil
}

// overlaySection keeps the seed-template items when the payload omits or
// empties a section, so a stored checklist always has every section
// populated.
func overlaySection(items []ChecklistItemRequest, seed []entities.ChecklistItem) []entities.ChecklistItem {
	if len(items) == 0 {
		return seed
	}
	return toChecklistItems(items)
}

func toChecklistItems(items []ChecklistItemRequest) []entities.ChecklistItem {
	out := make([]entities.ChecklistItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.ChecklistItem(it))
	}
	return out
}
