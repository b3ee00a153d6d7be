package response

import (
	"testing"
	"time"

	"pma_workorders/internal/domain/entities"
)

func TestFromWorkOrderSummaryTotals(t *testing.T) {
	wo := entities.NewDraft(time.Now().UTC())
	wo.ID = "abc-123"
	wo.WorkOrderID = "0141181"
	if err := wo.Checklist.ToggleOK(entities.SectionCompressors, 0); err != nil {
		t.Fatalf("toggle ok: %v", err)
	}
	if err := wo.Checklist.ToggleOK(entities.SectionCondenser, 1); err != nil {
		t.Fatalf("toggle ok: %v", err)
	}
	if err := wo.Checklist.ToggleRequiresAttention(entities.SectionOther, 2); err != nil {
		t.Fatalf("toggle attention: %v", err)
	}

	resp := FromWorkOrder(wo)
	if resp.ID != "abc-123" || resp.WorkOrderID != "0141181" {
		t.Errorf("identifiers not mapped: %+v", resp)
	}
	if resp.ChecklistSummary.ItemsOK != 2 {
		t.Errorf("items ok = %d", resp.ChecklistSummary.ItemsOK)
	}
	if resp.ChecklistSummary.ItemsRequireAttention != 1 {
		t.Errorf("items require attention = %d", resp.ChecklistSummary.ItemsRequireAttention)
	}
	if resp.OverallCondition != string(entities.ConditionFair) {
		t.Errorf("overall condition = %q", resp.OverallCondition)
	}
}

func TestFromWorkOrdersPreservesOrder(t *testing.T) {
	a := entities.NewDraft(time.Now().UTC())
	a.ID = "a"
	b := entities.NewDraft(time.Now().UTC())
	b.ID = "b"

	out := FromWorkOrders([]entities.WorkOrder{a, b})
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "b" {
		t.Fatalf("unexpected mapping: %+v", out)
	}

	if empty := FromWorkOrders(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("nil input must map to an empty slice")
	}
}
