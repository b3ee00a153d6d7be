package request

import (
	"testing"
	"time"

	"pma_workorders/internal/domain/entities"
)

var testNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func TestWorkOrderRequestToEntityDefaults(t *testing.T) {
	wo, err := WorkOrderRequest{CustomerName: "Acme Co"}.ToEntity(testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if wo.CustomerName != "Acme Co" {
		t.Errorf("customer name = %q", wo.CustomerName)
	}
	if wo.PMAType != entities.DefaultPMAType {
		t.Errorf("pma type = %q", wo.PMAType)
	}
	if wo.Date != "2025-03-14" {
		t.Errorf("date = %q", wo.Date)
	}
	if wo.OverallCondition != entities.ConditionFair {
		t.Errorf("overall condition = %q", wo.OverallCondition)
	}
	if wo.IndoorAirQuality != entities.IAQNone {
		t.Errorf("indoor air quality = %q", wo.IndoorAirQuality)
	}
	// Omitted checklist keeps the seed template.
	if len(wo.Checklist.Compressors) == 0 || wo.Checklist.Compressors[0].Label == "" {
		t.Errorf("expected template-seeded checklist, got %+v", wo.Checklist.Compressors)
	}
}

func TestWorkOrderRequestToEntityRejectsInvalidEnums(t *testing.T) {
	if _, err := (WorkOrderRequest{OverallCondition: "Excellent"}).ToEntity(testNow); err != entities.ErrInvalidOverallCondition {
		t.Fatalf("expected ErrInvalidOverallCondition, got %v", err)
	}
	if _, err := (WorkOrderRequest{IndoorAirQuality: "smells fine"}).ToEntity(testNow); err != entities.ErrInvalidIndoorAirQuality {
		t.Fatalf("expected ErrInvalidIndoorAirQuality, got %v", err)
	}
}

func TestWorkOrderRequestToEntityPartialChecklist(t *testing.T) {
	req := WorkOrderRequest{
		Checklist: &ChecklistRequest{
			Compressors: []ChecklistItemRequest{{Label: "Check oil level", OK: true}},
		},
	}

	wo, err := req.ToEntity(testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every section must stay present and non-empty even when the payload
	// carries only one of them.
	for _, section := range entities.ChecklistSections {
		items := wo.Checklist.Section(section)
		if len(items) == 0 {
			t.Errorf("section %s is empty", section)
			continue
		}
		for _, item := range items {
			if item.Label == "" {
				t.Errorf("section %s has an unlabeled item", section)
			}
		}
	}
	if len(wo.Checklist.Compressors) != 1 || wo.Checklist.Compressors[0].Label != "Check oil level" {
		t.Errorf("supplied section not kept: %+v", wo.Checklist.Compressors)
	}
}

func TestWorkOrderRequestToEntityOverlays(t *testing.T) {
	req := WorkOrderRequest{
		WorkOrderID:      "0141181",
		PMAType:          "Full Coverage",
		Date:             "2025-01-02",
		OverallCondition: string(entities.ConditionGood),
		IndoorAirQuality: string(entities.IAQNoGrowthObserved),
		Checklist: &ChecklistRequest{
			Compressors: []ChecklistItemRequest{{Label: "Check oil level", OK: true}},
		},
		SiteConditions: SiteConditionsRequest{GuardRailsRequired: true, Other: "icy roof"},
		Materials: []MaterialEntryRequest{
			{Source: "Warehouse", Qty: 2, Description: "Filter 20x20", PO: "PO-1"},
		},
		Hours: []HoursEntryRequest{
			{Date: "2025-01-02", Hours: 3, Tech: "R. Smith", Initial: "RS"},
		},
	}

	wo, err := req.ToEntity(testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if wo.WorkOrderID != "0141181" || wo.PMAType != "Full Coverage" || wo.Date != "2025-01-02" {
		t.Errorf("scalars not overlaid: %+v", wo)
	}
	if wo.OverallCondition != entities.ConditionGood {
		t.Errorf("overall condition = %q", wo.OverallCondition)
	}
	if wo.IndoorAirQuality != entities.IAQNoGrowthObserved {
		t.Errorf("indoor air quality = %q", wo.IndoorAirQuality)
	}
	if len(wo.Checklist.Compressors) != 1 || !wo.Checklist.Compressors[0].OK {
		t.Errorf("checklist not replaced: %+v", wo.Checklist.Compressors)
	}
	if len(wo.Checklist.Condenser) == 0 {
		t.Errorf("sections absent from the payload must keep the template")
	}
	if !wo.SiteConditions.GuardRailsRequired || wo.SiteConditions.Other != "icy roof" {
		t.Errorf("site conditions = %+v", wo.SiteConditions)
	}
	if len(wo.Materials) != 1 || wo.Materials[0].Description != "Filter 20x20" {
		t.Errorf("materials = %+v", wo.Materials)
	}
	if len(wo.Hours) != 1 || wo.Hours[0].Tech != "R. Smith" {
		t.Errorf("hours = %+v", wo.Hours)
	}
}
