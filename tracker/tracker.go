// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package tracker

import (
	"context"
	"os"
	"strconv"

	"github.com/mattermost/mattermost-track/model"
)

const (
	GitHub   = "github"
	GitLab   = "gitlab"
	Jira     = "jira"
	YouTrack = "youtrack"
	Mock     = "mock"

	// MaxResultsEnv caps FetchAllIssues.
	MaxResultsEnv     = "TRACK_MAX_RESULTS"
	defaultMaxResults = 1000
	defaultPageSize   = 100
)

// Names lists the real backends in display order.
var Names = []string{GitHub, GitLab, Jira, YouTrack}

// Backend is the operation set every tracker exposes. Operations a tracker
// cannot perform fail with an unsupported error. Every returned error is a
// *model.TrackerError.
type Backend interface {
	Name() string

	GetIssue(ctx context.Context, id string) (*model.Issue, error)
	SearchIssues(ctx context.Context, query string, limit, skip int) ([]*model.Issue, error)
	// GetIssueCount counts matches without fetching them.
	GetIssueCount(ctx context.Context, query string) (int, error)
	CreateIssue(ctx context.Context, in *model.CreateIssue) (*model.Issue, error)
	UpdateIssue(ctx context.Context, id string, in *model.UpdateIssue) (*model.Issue, error)
	DeleteIssue(ctx context.Context, id string) error

	ListProjects(ctx context.Context) ([]*model.Project, error)
	GetProject(ctx context.Context, id string) (*model.Project, error)
	CreateProject(ctx context.Context, in *model.CreateProject) (*model.Project, error)
	// ResolveProjectID accepts a short name or an opaque id and returns the
	// opaque id. It is the identity on opaque ids.
	ResolveProjectID(ctx context.Context, identifier string) (string, error)
	GetProjectCustomFields(ctx context.Context, projectID string) ([]*model.CustomField, error)
	ListProjectUsers(ctx context.Context, projectID string) ([]*model.UserRef, error)
	AttachField(ctx context.Context, projectID string, in *model.AttachField) (*model.CustomField, error)

	ListCustomFieldDefinitions(ctx context.Context) ([]*model.CustomFieldDefinition, error)
	CreateCustomField(ctx context.Context, in *model.CreateCustomField) (*model.CustomFieldDefinition, error)
	ListBundles(ctx context.Context, bundleType model.BundleType) ([]*model.Bundle, error)
	CreateBundle(ctx context.Context, in *model.CreateBundle) (*model.Bundle, error)
	AddBundleValues(ctx context.Context, bundleType model.BundleType, bundleID string, values []*model.BundleValue) ([]*model.BundleValue, error)

	ListTags(ctx context.Context) ([]*model.Tag, error)
	CreateTag(ctx context.Context, in *model.TagInput) (*model.Tag, error)
	UpdateTag(ctx context.Context, currentName string, in *model.TagInput) (*model.Tag, error)
	DeleteTag(ctx context.Context, name string) error

	ListLinkTypes(ctx context.Context) ([]*model.LinkType, error)
	GetIssueLinks(ctx context.Context, id string) ([]*model.Link, error)
	LinkIssues(ctx context.Context, source, target, linkType string, direction model.Direction) error
	LinkSubtask(ctx context.Context, child, parent string) error

	AddComment(ctx context.Context, issueID, text string) (*model.Comment, error)
	GetComments(ctx context.Context, issueID string) ([]*model.Comment, error)
}

// KnowledgeBase is implemented by trackers that carry a wiki.
type KnowledgeBase interface {
	GetArticle(ctx context.Context, id string) (*model.Article, error)
	ListArticles(ctx context.Context, projectID string, limit, skip int) ([]*model.Article, error)
	SearchArticles(ctx context.Context, query, projectID string, limit int) ([]*model.Article, error)
	CreateArticle(ctx context.Context, in *model.CreateArticle) (*model.Article, error)
	UpdateArticle(ctx context.Context, id string, in *model.UpdateArticle) (*model.Article, error)
	DeleteArticle(ctx context.Context, id string) error
	GetChildArticles(ctx context.Context, id string) ([]*model.Article, error)
	MoveArticle(ctx context.Context, id, newParentID string) (*model.Article, error)
	ListArticleAttachments(ctx context.Context, id string) ([]*model.Attachment, error)
	GetArticleComments(ctx context.Context, id string) ([]*model.Comment, error)
	AddArticleComment(ctx context.Context, id, text string) (*model.Comment, error)
}

// KnowledgeBaseProvider is implemented by backends whose wiki lives behind a
// separate client.
type KnowledgeBaseProvider interface {
	KnowledgeBase() (KnowledgeBase, error)
}

// KnowledgeBaseOf returns the knowledge base of a backend, or an unsupported error.
func KnowledgeBaseOf(b Backend) (KnowledgeBase, error) {
	if p, ok := b.(KnowledgeBaseProvider); ok {
		return p.KnowledgeBase()
	}
	if kb, ok := b.(KnowledgeBase); ok {
		return kb, nil
	}
	return nil, model.NewUnsupported("knowledge_base")
}

// MaxResults returns the cap applied by FetchAllIssues.
func MaxResults() int {
	if v := os.Getenv(MaxResultsEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultMaxResults
}

// FetchAllIssues pages through SearchIssues until a short page or the cap.
func FetchAllIssues(ctx context.Context, b Backend, query string) ([]*model.Issue, error) {
	limit := MaxResults()
	var all []*model.Issue
	for skip := 0; len(all) < limit; {
		pageSize := defaultPageSize
		if remaining := limit - len(all); remaining < pageSize {
			pageSize = remaining
		}
		page, err := b.SearchIssues(ctx, query, pageSize, skip)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < pageSize {
			break
		}
		skip += len(page)
	}
	return all, nil
}
