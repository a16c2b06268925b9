package credential

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Credential 持久化的登入憑證: token + 用戶資料
type Credential struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type IStore interface {
	// Save 同步寫入token與用戶資料
	// 寫入為整份替換, 先寫temp檔再rename
	Save(token string, user model.User) error
	// Load 讀取憑證
	// 檔案不存在時回傳nil, 不視為錯誤
	Load() (*Credential, error)
	// Clear 清除憑證
	// 檔案不存在時為no-op
	Clear() error
	// Token 每次呼叫讀取最新token
	// 無憑證時回傳空字串
	Token() string
	// Watch 監聽憑證檔變動 (其他process登入/登出)
	// 變動時以最新內容呼叫onChange, 憑證被清除時傳nil
	Watch(onChange func(*Credential)) error
	Close() error
}

// FileStore JSON檔案憑證存放
// 寫入是單一值整份替換, 讀取永遠是一致的快照, 不需要跨process鎖
type FileStore struct {
	path    string
	logger  *zerolog.Logger
	mu      sync.Mutex //保護watcher設置
	watcher *fsnotify.Watcher
	done    chan struct{}
}

func NewFileStore(path string, logger *zerolog.Logger) *FileStore {
	if path == "" {
		panic("credential store initialization failed: path cannot be empty")
	}
	return &FileStore{
		path:   path,
		logger: logger,
	}
}

func (s *FileStore) Save(token string, user model.User) error {
	data, err := json.MarshalIndent(Credential{Token: token, User: user}, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	//先寫temp檔再rename, 讀取端不會看到半寫入狀態
	tmp, err := os.CreateTemp(dir, ".credentials-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, s.path)
}

func (s *FileStore) Load() (*Credential, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, err
	}
	if cred.Token == "" {
		return nil, nil
	}
	return &cred, nil
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *FileStore) Token() string {
	cred, err := s.Load()
	if err != nil || cred == nil {
		return ""
	}
	return cred.Token
}

func (s *FileStore) Watch(onChange func(*Credential)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watcher != nil {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}

	s.watcher = watcher
	s.done = make(chan struct{})

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(s.path) {
					continue
				}
				cred, err := s.Load()
				if err != nil {
					if s.logger != nil {
						s.logger.Warn().Err(err).Msg("reload credential failed")
					}
					continue
				}
				onChange(cred)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if s.logger != nil {
					s.logger.Warn().Err(err).Msg("credential watcher error")
				}
			case <-s.done:
				return
			}
		}
	}()

	return nil
}

func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watcher == nil {
		return nil
	}
	close(s.done)
	err := s.watcher.Close()
	s.watcher = nil
	return err
}
