// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

import "strings"

type Project struct {
	ID          string `json:"id"`
	ShortName   string `json:"short_name"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Owner       string `json:"owner,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Ref returns the compact reference stored on issues.
func (p *Project) Ref() *ProjectRef {
	return &ProjectRef{ID: p.ID, ShortName: p.ShortName, Name: p.Name}
}

type ProjectRef struct {
	ID        string `json:"id"`
	ShortName string `json:"short_name,omitempty"`
	Name      string `json:"name,omitempty"`
}

type CreateProject struct {
	Name        string `json:"name"`
	ShortName   string `json:"short_name"`
	Description string `json:"description,omitempty"`
	Leader      string `json:"leader,omitempty"`
}

func (c *CreateProject) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewInvalidInput("name", "is required")
	}
	if strings.TrimSpace(c.ShortName) == "" {
		return NewInvalidInput("short_name", "is required")
	}
	return nil
}

// FindProject returns the project whose short name matches exactly, falling
// back to an exact id match.
func FindProject(projects []*Project, identifier string) *Project {
	for _, p := range projects {
		if p.ShortName == identifier {
			return p
		}
	}
	for _, p := range projects {
		if p.ID == identifier {
			return p
		}
	}
	return nil
}
