package store

import (
	"path/filepath"
	"sync"
	"time"

	"pinopoly/pkg/protocol"
)

const boardCacheFile = "board_cache.json"

type boardCacheBlob struct {
	SavedUTC   int64               `json:"saved_utc"`
	Properties []protocol.Property `json:"properties"`
}

// BoardCache keeps the last board layout fetched from /public/board/properties
// so the board can still be drawn when the server is unreachable. The cache
// is advisory; live data always wins.
type BoardCache struct {
	dir string
	mu  sync.Mutex
}

// NewBoardCache returns a BoardCache rooted at dir.
func NewBoardCache(dir string) *BoardCache {
	return &BoardCache{dir: dir}
}

// Save replaces the cached layout.
func (c *BoardCache) Save(props []protocol.Property) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	blob := boardCacheBlob{SavedUTC: time.Now().Unix(), Properties: props}
	return writeJSON(filepath.Join(c.dir, boardCacheFile), blob, 0o644)
}

// Load returns the cached layout and when it was saved. ok is false when no
// cache exists yet.
func (c *BoardCache) Load() (props []protocol.Property, saved time.Time, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var blob boardCacheBlob
	found, err := readJSON(filepath.Join(c.dir, boardCacheFile), &blob)
	if err != nil || !found {
		return nil, time.Time{}, false, err
	}
	return blob.Properties, time.Unix(blob.SavedUTC, 0), true, nil
}
