// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package store

// Prefs are the local defaults written by `track config`.
type Prefs struct {
	DefaultProjectID   string `json:"default_project_id,omitempty"`
	DefaultProjectName string `json:"default_project_name,omitempty"`
}

func (p *Prefs) IsEmpty() bool {
	return p.DefaultProjectID == "" && p.DefaultProjectName == ""
}

type FilePrefsStore struct {
	jsonFile
}

func (s *FilePrefsStore) Get() (*Prefs, error) {
	var p Prefs
	if _, err := s.read(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *FilePrefsStore) Save(prefs *Prefs) error {
	return s.write(prefs)
}

func (s *FilePrefsStore) Clear() error {
	return s.remove()
}
