// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package store

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/mattermost/mattermost-track/model"
)

const (
	PrefsFile = ".track-config.json"
	CacheFile = ".tracker-cache.json"
)

// Store holds the local state kept next to the working directory.
type Store interface {
	Prefs() PrefsStore
	Cache() CacheStore
}

type PrefsStore interface {
	Path() string
	// Get returns empty preferences when none were saved.
	Get() (*Prefs, error)
	Save(prefs *Prefs) error
	Clear() error
}

type CacheStore interface {
	Path() string
	// Get returns nil when no cache was written yet.
	Get() (*TrackerCache, error)
	Save(cache *TrackerCache) error
	Clear() error
}

// FileStore keeps each piece of state in its own JSON file under dir.
type FileStore struct {
	prefs *FilePrefsStore
	cache *FileCacheStore
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{
		prefs: &FilePrefsStore{jsonFile{path: filepath.Join(dir, PrefsFile)}},
		cache: &FileCacheStore{jsonFile{path: filepath.Join(dir, CacheFile)}},
	}
}

func (s *FileStore) Prefs() PrefsStore { return s.prefs }
func (s *FileStore) Cache() CacheStore { return s.cache }

type jsonFile struct {
	path string
}

func (f jsonFile) Path() string { return f.path }

// read decodes the file into out and reports whether it existed.
func (f jsonFile) read(out interface{}) (bool, error) {
	data, err := ioutil.ReadFile(f.path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, model.NewIOError("failed to read "+f.path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, model.NewParseError("failed to decode "+f.path+": "+err.Error(), err)
	}
	return true, nil
}

// write replaces the file through a temporary sibling.
func (f jsonFile) write(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return model.NewParseError("failed to encode "+f.path, err)
	}
	tmp, err := ioutil.TempFile(filepath.Dir(f.path), filepath.Base(f.path)+".*")
	if err != nil {
		return model.NewIOError("failed to write "+f.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return model.NewIOError("failed to write "+f.path, errors.Wrap(err, tmp.Name()))
	}
	if err = tmp.Close(); err != nil {
		return model.NewIOError("failed to write "+f.path, err)
	}
	if err = os.Rename(tmp.Name(), f.path); err != nil {
		return model.NewIOError("failed to replace "+f.path, err)
	}
	return nil
}

func (f jsonFile) remove() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return model.NewIOError("failed to remove "+f.path, err)
	}
	return nil
}
