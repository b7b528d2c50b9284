// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mattermost/mattermost-track/model"
)

const (
	ExitOK          = 0
	ExitUser        = 1
	ExitAuth        = 2
	ExitAPI         = 3
	ExitNetwork     = 4
	ExitInterrupted = 130

	kindUsage = "usage"
)

// ExitCode maps an error to the process exit status.
func ExitCode(ctx context.Context, err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return ExitInterrupted
	}
	switch model.KindOf(err) {
	case model.KindUnauthorized:
		return ExitAuth
	case model.KindAPI, model.KindRateLimited:
		return ExitAPI
	case model.KindHTTP, model.KindParse:
		return ExitNetwork
	}
	return ExitUser
}

func errorKind(err error) string {
	if kind := model.KindOf(err); kind != "" {
		return string(kind)
	}
	return kindUsage
}

func (a *App) printError(err error) {
	if a.jsonOutput() {
		if te, ok := model.AsTrackerError(err); ok {
			fmt.Fprintln(a.Stderr, te.ToJSON())
			return
		}
		payload, _ := json.Marshal(map[string]interface{}{
			"error": map[string]interface{}{"kind": kindUsage, "message": err.Error()},
		})
		fmt.Fprintln(a.Stderr, string(payload))
		return
	}
	fmt.Fprintln(a.Stderr, "Error: "+err.Error())
}
