package credential

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "credentials.json"), nil)
}

func TestSaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	user := model.User{ID: "u1", Name: "Rajesh", Email: "rajesh@example.com"}

	require.NoError(t, store.Save("token-abc", user))

	cred, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, cred)
	require.Equal(t, "token-abc", cred.Token)
	require.Equal(t, "rajesh@example.com", cred.User.Email)
}

func TestLoadMissingFileReturnsNil(t *testing.T) {
	store := newTestStore(t)

	cred, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, cred)
	require.Empty(t, store.Token())
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("token-abc", model.User{ID: "u1"}))

	require.NoError(t, store.Clear())

	cred, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, cred)

	//重複clear為no-op
	require.NoError(t, store.Clear())
}

// 每次讀取都是最新token
func TestTokenReadsFresh(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("token-1", model.User{ID: "u1"}))
	require.Equal(t, "token-1", store.Token())

	require.NoError(t, store.Save("token-2", model.User{ID: "u1"}))
	require.Equal(t, "token-2", store.Token())
}

func TestFilePermissions(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("token-abc", model.User{ID: "u1"}))

	info, err := os.Stat(store.path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

// 其他process寫入憑證檔時watch要收到通知
func TestWatchObservesExternalChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFileStore(path, nil)
	other := NewFileStore(path, nil)

	var mu sync.Mutex
	var latest *Credential
	var fired bool

	require.NoError(t, store.Watch(func(cred *Credential) {
		mu.Lock()
		defer mu.Unlock()
		latest = cred
		fired = true
	}))
	defer store.Close()

	require.NoError(t, other.Save("token-external", model.User{ID: "u2"}))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return fired && latest != nil && latest.Token == "token-external"
	}, 3*time.Second, 20*time.Millisecond, "watch應觀察到其他process的登入")

	//清除也要觀察到
	mu.Lock()
	fired = false
	mu.Unlock()
	require.NoError(t, other.Clear())

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return fired && latest == nil
	}, 3*time.Second, 20*time.Millisecond, "watch應觀察到其他process的登出")
}
