package localstore

import (
	"fmt"

	"github.com/yurizinlala/bike-erp/internal/store"
)

// Drivers disponíveis.
const (
	DriverFile   = "file"
	DriverMemory = "memory"
)

// New seleciona o driver pelo nome configurado. Vazio assume "file".
func New(driver, root string) (store.SnapshotStore, error) {
	switch driver {
	case DriverFile, "":
		return NewFilesystem(root)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("driver de armazenamento desconhecido: %q", driver)
	}
}
