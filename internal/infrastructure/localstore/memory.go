package localstore

import "sync"

// Memory guarda os snapshots em um mapa. Usado em testes e no modo efêmero.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory cria o driver em memória.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Save guarda uma cópia do documento sob a chave.
func (m *Memory) Save(key string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	m.mu.Lock()
	m.data[key] = cp
	m.mu.Unlock()
	return nil
}

// Load devolve uma cópia do documento. ok=false quando a chave não existe.
func (m *Memory) Load(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, true, nil
}
