package interfaces

import (
	"time"

	"pma_workorders/internal/domain/entities"
)

// IWorkOrderExporter renders one work order into a print-ready document.
//
// Render is a pure function of the record and the supplied wall-clock time
// (used only for the "generated on" and signature-date stamps); it performs
// no store or network access.

type IWorkOrderExporter interface {
	Render(wo entities.WorkOrder, now time.Time) ([]byte, error)
}
