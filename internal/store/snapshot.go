package store

import (
	"encoding/json"
	"fmt"

	"github.com/yurizinlala/bike-erp/internal/domain/entity"
)

// SnapshotVersion versão atual do documento persistido.
// A versão 1 (implícita, sem campo "version") carregava apenas as quatro
// coleções originais; a 2 acrescenta aluguéis e configurações.
const SnapshotVersion = 2

// Snapshot documento completo gravado no slot local a cada mutação.
// Último escritor vence: não há merge entre snapshots.
type Snapshot struct {
	Version    int               `json:"version"`
	Products   []entity.Product  `json:"products"`
	Clients    []entity.Client   `json:"clients"`
	Orders     []entity.Order    `json:"orders"`
	Pendencies []entity.Pendency `json:"pendencies"`
	Rentals    []entity.Rental   `json:"rentals"`
	Settings   entity.Settings   `json:"settings"`
}

// EncodeSnapshot serializa o snapshot para o slot de persistência.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	snap.Version = SnapshotVersion
	return json.Marshal(snap)
}

// DecodeSnapshot interpreta um documento persistido, migrando o formato
// legado sem versão. Versões futuras desconhecidas são rejeitadas para não
// corromper silenciosamente um snapshot mais novo.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decodificar snapshot: %w", err)
	}
	switch {
	case snap.Version == 0:
		// Documento legado: só as quatro coleções. Aluguéis começam vazios
		// e as configurações assumem os valores padrão da loja.
		snap.Version = SnapshotVersion
		if snap.Rentals == nil {
			snap.Rentals = []entity.Rental{}
		}
		if snap.Settings == (entity.Settings{}) {
			snap.Settings = DefaultSettings()
		}
	case snap.Version > SnapshotVersion:
		return Snapshot{}, fmt.Errorf("versão de snapshot desconhecida: %d", snap.Version)
	}
	return snap, nil
}

// Snapshot devolve uma cópia serializável do estado atual.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Version:    SnapshotVersion,
		Products:   make([]entity.Product, len(s.products)),
		Clients:    make([]entity.Client, len(s.clients)),
		Orders:     make([]entity.Order, len(s.orders)),
		Pendencies: make([]entity.Pendency, len(s.pendencies)),
		Rentals:    make([]entity.Rental, len(s.rentals)),
		Settings:   s.settings,
	}
	copy(snap.Products, s.products)
	copy(snap.Clients, s.clients)
	copy(snap.Orders, s.orders)
	copy(snap.Pendencies, s.pendencies)
	copy(snap.Rentals, s.rentals)
	return snap
}
