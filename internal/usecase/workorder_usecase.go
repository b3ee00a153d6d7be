package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pma_workorders/internal/domain/entities"
	"pma_workorders/internal/usecase/interfaces"
)

var (
	ErrWorkOrderNotFound  = errors.New("work order not found")
	ErrNotOwner           = errors.New("work order belongs to another user")
	ErrInvalidWorkOrderID = errors.New("invalid work order id")
	ErrInvalidOwnerID     = errors.New("invalid owner id")
)

// IWorkOrderUseCase exposes the owner-scoped work-order operations.
//
// Every operation takes the opaque owner identifier of the current session;
// the identity provider that produces it is the caller's concern. The
// ownership check is informational, not cryptographic: a stored document's
// owner_id must match the supplied one or the operation fails.

type IWorkOrderUseCase interface {
	Create(ctx context.Context, draft entities.WorkOrder, ownerID string) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id, ownerID string) (entities.WorkOrder, error)
	List(ctx context.Context, ownerID string) ([]entities.WorkOrder, error)
	Update(ctx context.Context, id string, wo entities.WorkOrder, ownerID string) (entities.WorkOrder, error)
	Delete(ctx context.Context, id, ownerID string) error
	ExportPDF(ctx context.Context, id, ownerID string) ([]byte, string, error)
}

type WorkOrderUseCase struct {
	repo     interfaces.IWorkOrderRepository
	exporter interfaces.IWorkOrderExporter
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, exporter interfaces.IWorkOrderExporter) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo, exporter: exporter}
}

// Create persists a new draft under ownerID. The repository assigns id and
// timestamps; the submitted draft is returned untouched on failure so the
// caller can retry without re-entering data.
func (u *WorkOrderUseCase) Create(ctx context.Context, draft entities.WorkOrder, ownerID string) (entities.WorkOrder, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.WorkOrder{}, ErrInvalidOwnerID
	}

	draft.ID = ""
	draft.OwnerID = ownerID
	return u.repo.Create(ctx, draft)
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id, ownerID string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.WorkOrder{}, ErrInvalidOwnerID
	}

	wo, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	if wo.OwnerID != ownerID {
		return entities.WorkOrder{}, ErrNotOwner
	}
	return wo, nil
}

// List returns the owner's work orders, newest created first. Results are a
// snapshot; staleness is resolved only by calling again.
func (u *WorkOrderUseCase) List(ctx context.Context, ownerID string) ([]entities.WorkOrder, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	return u.repo.ListByOwner(ctx, ownerID)
}

// Update replaces the stored document with wo after re-verifying ownership.
// The read-then-write is not atomic; a second writer could race between the
// check and the write, accepted for single-technician-per-order usage.
func (u *WorkOrderUseCase) Update(ctx context.Context, id string, wo entities.WorkOrder, ownerID string) (entities.WorkOrder, error) {
	existing, err := u.GetByID(ctx, id, ownerID)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	wo.ID = existing.ID
	wo.OwnerID = existing.OwnerID
	wo.CreatedAt = existing.CreatedAt
	return u.repo.Update(ctx, wo)
}

// Delete removes the document after the same ownership re-check as Update.
func (u *WorkOrderUseCase) Delete(ctx context.Context, id, ownerID string) error {
	existing, err := u.GetByID(ctx, id, ownerID)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, existing.ID)
}

// ExportPDF renders the work order as a paginated PDF and returns the bytes
// together with a download filename derived from the work-order code.
func (u *WorkOrderUseCase) ExportPDF(ctx context.Context, id, ownerID string) ([]byte, string, error) {
	wo, err := u.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, "", err
	}

	pdf, err := u.exporter.Render(wo, time.Now().UTC())
	if err != nil {
		return nil, "", err
	}

	code := strings.TrimSpace(wo.WorkOrderID)
	if code == "" {
		code = wo.ID
	}
	return pdf, fmt.Sprintf("workorder-%s.pdf", code), nil
}
