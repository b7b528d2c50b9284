// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package config

import (
	"encoding/json"
	"strings"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
)

const logQueueSize = 1000

// levelsFrom returns every level at or above the named threshold.
func levelsFrom(name string) []mlog.Level {
	ordered := []mlog.Level{mlog.LvlPanic, mlog.LvlFatal, mlog.LvlError, mlog.LvlWarn, mlog.LvlInfo, mlog.LvlDebug, mlog.LvlTrace}
	threshold := 3
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error":
		threshold = 2
	case "info":
		threshold = 4
	case "debug":
		threshold = 5
	case "trace":
		threshold = 6
	}
	return ordered[:threshold+1]
}

// LoggerConfiguration describes the single console target on stderr.
func LoggerConfiguration(cfg LogConfig) mlog.LoggerConfiguration {
	format := "plain"
	if cfg.JSON {
		format = "json"
	}
	return mlog.LoggerConfiguration{
		"console": mlog.TargetCfg{
			Type:         "console",
			Format:       format,
			Options:      json.RawMessage(`{"out":"stderr"}`),
			Levels:       levelsFrom(cfg.Level),
			MaxQueueSize: logQueueSize,
		},
	}
}

// SetupLogging installs the global logger. The returned logger must be shut
// down to flush queued records.
func SetupLogging(cfg LogConfig) (*mlog.Logger, error) {
	logger, err := mlog.NewLogger()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}
	if err := logger.ConfigureTargets(LoggerConfiguration(cfg), nil); err != nil {
		return nil, errors.Wrap(err, "failed to configure log targets")
	}
	mlog.InitGlobalLogger(logger)
	return logger, nil
}
