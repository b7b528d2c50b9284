// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

import (
	"strings"
	"time"
)

// Article is a knowledge base page.
type Article struct {
	ID          string      `json:"id"`
	Key         string      `json:"key,omitempty"`
	Title       string      `json:"title"`
	Content     string      `json:"content,omitempty"`
	Project     *ProjectRef `json:"project,omitempty"`
	ParentID    string      `json:"parent_id,omitempty"`
	HasChildren bool        `json:"has_children,omitempty"`
	Tags        StringArray `json:"tags,omitempty"`
	Reporter    *UserRef    `json:"reporter,omitempty"`
	URL         string      `json:"url,omitempty"`
	Created     *time.Time  `json:"created,omitempty"`
	Updated     *time.Time  `json:"updated,omitempty"`
}

type CreateArticle struct {
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"`
	ParentID  string `json:"parent_id,omitempty"`
}

func (c *CreateArticle) Validate() error {
	if strings.TrimSpace(c.ProjectID) == "" {
		return NewInvalidInput("project", "is required")
	}
	if strings.TrimSpace(c.Title) == "" {
		return NewInvalidInput("title", "is required")
	}
	return nil
}

type UpdateArticle struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

func (u *UpdateArticle) Validate() error {
	if u.Title == nil && u.Content == nil {
		return NewInvalidInput("update", "no fields to change")
	}
	return nil
}

type Attachment struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Size     int64      `json:"size,omitempty"`
	MimeType string     `json:"mime_type,omitempty"`
	URL      string     `json:"url,omitempty"`
	Created  *time.Time `json:"created,omitempty"`
}
