package localstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurizinlala/bike-erp/internal/infrastructure/localstore"
)

func TestFilesystem_SaveLoad(t *testing.T) {
	fs, err := localstore.NewFilesystem(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.Save("bike-erp-storage", []byte(`{"version":2}`)))

	data, ok, err := fs.Load("bike-erp-storage")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"version":2}`, string(data))
}

func TestFilesystem_LoadChaveAusente(t *testing.T) {
	fs, err := localstore.NewFilesystem(t.TempDir())
	require.NoError(t, err)

	data, ok, err := fs.Load("nunca-gravada")
	require.NoError(t, err, "chave ausente não é erro")
	assert.False(t, ok)
	assert.Nil(t, data)
}

// TestFilesystem_SaveSubstitui última escrita vence; não há merge.
func TestFilesystem_SaveSubstitui(t *testing.T) {
	fs, err := localstore.NewFilesystem(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.Save("k", []byte("primeiro")))
	require.NoError(t, fs.Save("k", []byte("segundo")))

	data, ok, err := fs.Load("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "segundo", string(data))
}

// TestFilesystem_ChaveInvalida chaves que escapariam do diretório raiz são
// rejeitadas.
func TestFilesystem_ChaveInvalida(t *testing.T) {
	fs, err := localstore.NewFilesystem(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "  ", "../fora", "a/b", `a\b`} {
		assert.Error(t, fs.Save(key, []byte("x")), "chave %q", key)
		_, _, err := fs.Load(key)
		assert.Error(t, err, "chave %q", key)
	}
}

// TestFilesystem_SemArquivoTemporarioResidual o rename final não deixa
// o .tmp para trás.
func TestFilesystem_SemArquivoTemporarioResidual(t *testing.T) {
	dir := t.TempDir()
	fs, err := localstore.NewFilesystem(dir)
	require.NoError(t, err)

	require.NoError(t, fs.Save("k", []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "k.json", entries[0].Name())
	assert.FileExists(t, filepath.Join(dir, "k.json"))
}

func TestMemory_SaveLoad(t *testing.T) {
	mem := localstore.NewMemory()

	require.NoError(t, mem.Save("k", []byte("doc")))

	data, ok, err := mem.Load("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "doc", string(data))

	_, ok, err = mem.Load("outra")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestMemory_GuardaCopia mutar o buffer de entrada ou de saída não afeta o
// documento guardado.
func TestMemory_GuardaCopia(t *testing.T) {
	mem := localstore.NewMemory()

	in := []byte("original")
	require.NoError(t, mem.Save("k", in))
	in[0] = 'X'

	out, _, _ := mem.Load("k")
	assert.Equal(t, "original", string(out))

	out[0] = 'Y'
	again, _, _ := mem.Load("k")
	assert.Equal(t, "original", string(again))
}

func TestFactory(t *testing.T) {
	fs, err := localstore.New("file", t.TempDir())
	require.NoError(t, err)
	assert.IsType(t, &localstore.Filesystem{}, fs)

	def, err := localstore.New("", t.TempDir())
	require.NoError(t, err)
	assert.IsType(t, &localstore.Filesystem{}, def)

	mem, err := localstore.New("memory", "")
	require.NoError(t, err)
	assert.IsType(t, &localstore.Memory{}, mem)

	_, err = localstore.New("redis", "")
	assert.Error(t, err)
}
