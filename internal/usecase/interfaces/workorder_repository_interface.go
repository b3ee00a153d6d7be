package interfaces

import (
	"context"
	"pma_workorders/internal/domain/entities"
)

// IWorkOrderRepository abstracts document-store persistence for WorkOrder.
//
// Adapters assign id and timestamps on Create and refresh UpdatedAt on
// Update; CreatedAt never changes after creation. A missing document is
// reported as a zero-value WorkOrder (ID == ""), not an error, matching the
// store's "document absent" outcome. Ownership rules live in the use case;
// the local adapter has no ownership concept and ignores the owner argument
// of ListByOwner.

type IWorkOrderRepository interface {
	Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.WorkOrder, error)
	Update(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error)
	Delete(ctx context.Context, id string) error
}
