//go:build js

package storage

import (
	"context"
	"sync"
	"time"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/indexeddb"
)

// Values persist as files in an IndexedDB-backed filesystem so they survive
// browser sessions, mirroring the data/ directory native builds use.
const dbName = "gamekit"

// opTimeout bounds store setup so a wedged IndexedDB degrades to "value
// absent" instead of hanging the loop.
const opTimeout = 5 * time.Second

var (
	fsOnce sync.Once
	fsDB   *indexeddb.FS
	fsErr  error
)

func openFS() (*indexeddb.FS, error) {
	fsOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		fsDB, fsErr = indexeddb.NewFS(ctx, dbName, indexeddb.Options{})
	})
	return fsDB, fsErr
}

func store(key, value string) error {
	fs, err := openFS()
	if err != nil {
		return err
	}
	return hackpadfs.WriteFullFile(fs, key+".kv", []byte(value), 0644)
}

func load(key string) (string, bool) {
	fs, err := openFS()
	if err != nil {
		return "", false
	}
	data, err := hackpadfs.ReadFile(fs, key+".kv")
	if err != nil {
		return "", false
	}
	return string(data), true
}
