package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"pma_workorders/internal/domain/entities"
	"pma_workorders/internal/usecase/interfaces"
)

// WorkOrderSQLiteRepository is the local, offline adapter. Documents are
// stored as JSON in a key-value table; there is no ownership concept, so
// ListByOwner ignores its argument and returns everything, sorted in process
// by creation time descending.
//
// Ids are generated as "<unix-millis>-<random-suffix>" so they sort roughly
// by creation order and never collide in single-user use.

type WorkOrderSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderSQLiteRepository)(nil)

func NewWorkOrderSQLiteRepository(db *sql.DB) (*WorkOrderSQLiteRepository, error) {
	const schema = `CREATE TABLE IF NOT EXISTS work_orders (
		id TEXT PRIMARY KEY,
		doc TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create work_orders table: %w", err)
	}
	return &WorkOrderSQLiteRepository{db: db}, nil
}

func newLocalID(now time.Time) string {
	return fmt.Sprintf("%d-%06x", now.UnixMilli(), rand.Intn(1<<24))
}

func (r *WorkOrderSQLiteRepository) Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	now := time.Now().UTC()
	wo.ID = newLocalID(now)
	wo.CreatedAt = now
	wo.UpdatedAt = now

	doc, err := json.Marshal(wo)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO work_orders (id, doc) VALUES (?, ?)`,
		wo.ID, string(doc),
	)
	if err != nil {
		return entities.WorkOrder{}, fmt.Errorf("insert work order: %w", err)
	}
	return wo, nil
}

func (r *WorkOrderSQLiteRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	var doc string
	err := r.db.QueryRowContext(ctx,
		`SELECT doc FROM work_orders WHERE id = ?`, id,
	).Scan(&doc)
	if err == sql.ErrNoRows {
		return entities.WorkOrder{}, nil
	}
	if err != nil {
		return entities.WorkOrder{}, fmt.Errorf("select work order: %w", err)
	}

	var wo entities.WorkOrder
	if err := json.Unmarshal([]byte(doc), &wo); err != nil {
		return entities.WorkOrder{}, fmt.Errorf("decode work order %s: %w", id, err)
	}
	return wo, nil
}

func (r *WorkOrderSQLiteRepository) ListByOwner(ctx context.Context, _ string) ([]entities.WorkOrder, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT doc FROM work_orders`)
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()

	orders := []entities.WorkOrder{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var wo entities.WorkOrder
		if err := json.Unmarshal([]byte(doc), &wo); err != nil {
			return nil, fmt.Errorf("decode work order: %w", err)
		}
		orders = append(orders, wo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sortByCreatedAtDesc(orders)
	return orders, nil
}

func (r *WorkOrderSQLiteRepository) Update(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	wo.UpdatedAt = time.Now().UTC()

	doc, err := json.Marshal(wo)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE work_orders SET doc = ? WHERE id = ?`,
		string(doc), wo.ID,
	)
	if err != nil {
		return entities.WorkOrder{}, fmt.Errorf("update work order: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.WorkOrder{}, nil
	}
	return wo, nil
}

func (r *WorkOrderSQLiteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM work_orders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete work order: %w", err)
	}
	return nil
}
