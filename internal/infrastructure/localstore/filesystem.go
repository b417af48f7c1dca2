// Package localstore implementa o slot local durável onde o store grava
// seus snapshots. Dois drivers: filesystem (produção) e memória (testes).
package localstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Filesystem grava cada chave como um arquivo JSON sob um diretório raiz.
// A escrita é atômica: arquivo temporário seguido de rename, para que uma
// queda no meio da gravação nunca deixe um snapshot truncado.
type Filesystem struct {
	root string
}

// NewFilesystem cria o driver de arquivos, criando o diretório se preciso.
func NewFilesystem(root string) (*Filesystem, error) {
	if root == "" {
		root = "./data"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("criar diretório de dados: %w", err)
	}
	return &Filesystem{root: root}, nil
}

// sanitizeKey impede que a chave escape do diretório raiz.
func sanitizeKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("chave vazia")
	}
	if strings.Contains(key, "..") || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("chave inválida: %q", key)
	}
	return key + ".json", nil
}

// Save grava o documento sob a chave, substituindo o conteúdo anterior.
func (f *Filesystem) Save(key string, data []byte) error {
	name, err := sanitizeKey(key)
	if err != nil {
		return err
	}
	path := filepath.Join(f.root, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("gravar snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("publicar snapshot: %w", err)
	}
	return nil
}

// Load lê o documento da chave. ok=false quando a chave nunca foi gravada.
func (f *Filesystem) Load(key string) ([]byte, bool, error) {
	name, err := sanitizeKey(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(filepath.Join(f.root, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("ler snapshot: %w", err)
	}
	return data, true, nil
}
