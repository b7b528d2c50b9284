// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package mock

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
)

const (
	OpCLI = "cli"

	ResultOK       = "ok"
	ResultFallback = "fallback"
)

// Match identifies the manifest mapping that served a call.
type Match struct {
	Index int    `json:"index"`
	File  string `json:"file,omitempty"`
}

// Entry is one line of call_log.jsonl.
type Entry struct {
	Timestamp  time.Time              `json:"timestamp"`
	Op         string                 `json:"op"`
	Args       map[string]interface{} `json:"args"`
	Matched    *Match                 `json:"matched"`
	ResultKind string                 `json:"result_kind"`
	Error      string                 `json:"error,omitempty"`
}

// Failed reports whether the call ended in an error.
func (e *Entry) Failed() bool {
	return e.Error != ""
}

// CallLog appends entries to a scenario's call_log.jsonl. Appends are
// serialized so that concurrent callers never interleave lines.
type CallLog struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

func NewCallLog(dir string) *CallLog {
	return &CallLog{path: filepath.Join(dir, CallLogFile), now: time.Now}
}

func (l *CallLog) Path() string {
	return l.path
}

func (l *CallLog) Append(e *Entry) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = l.now().UTC()
	}
	if e.Args == nil {
		e.Args = map[string]interface{}{}
	}
	line, err := json.Marshal(e)
	if err != nil {
		return errors.Wrap(err, "failed to encode call log entry")
	}
	line = append(line, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "failed to open call log %s", l.path)
	}
	defer f.Close()
	if _, err = f.Write(line); err != nil {
		return errors.Wrapf(err, "failed to append to call log %s", l.path)
	}
	return nil
}

// record appends, logging failures instead of returning them.
func (l *CallLog) record(e *Entry) {
	if err := l.Append(e); err != nil {
		mlog.Warn("Unable to write mock call log", mlog.String("path", l.path), mlog.Err(err))
	}
}

// ReadCallLog returns the entries of dir/call_log.jsonl. A missing log reads
// as empty; malformed lines are skipped.
func ReadCallLog(dir string) ([]*Entry, error) {
	path := filepath.Join(dir, CallLogFile)
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return []*Entry{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read call log %s", path)
	}

	entries := []*Entry{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			mlog.Debug("Skipping malformed call log line", mlog.String("path", path), mlog.Err(err))
			continue
		}
		entries = append(entries, &e)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan call log %s", path)
	}
	return entries, nil
}

// ClearCallLog removes dir/call_log.jsonl. Clearing a missing log is a no-op.
func ClearCallLog(dir string) error {
	path := filepath.Join(dir, CallLogFile)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to remove call log %s", path)
	}
	return nil
}
