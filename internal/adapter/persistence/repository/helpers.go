package repository

import (
	"os"
	"sort"

	"pma_workorders/internal/domain/entities"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// sortByCreatedAtDesc orders newest-created first, breaking same-instant
// ties by id so the order is deterministic.
func sortByCreatedAtDesc(orders []entities.WorkOrder) {
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
