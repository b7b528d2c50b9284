// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package gitlab

import (
	"net/http"

	"github.com/xanzy/go-gitlab"
)

const DefaultURL = "https://gitlab.com"

// Client wraps the gitlab.Client with the services the backend needs.
// Useful to mock in tests.
type Client struct {
	client *gitlab.Client

	Issues         IssuesService
	Projects       ProjectsService
	Labels         LabelsService
	Notes          NotesService
	IssueLinks     IssueLinksService
	Relations      RelationsService
	ProjectMembers ProjectMembersService
	Milestones     MilestonesService
	Users          UsersService
}

func NewClient(accessToken, baseURL string, httpClient *http.Client) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	opts := []gitlab.ClientOptionFunc{gitlab.WithBaseURL(baseURL)}
	if httpClient != nil {
		opts = append(opts, gitlab.WithHTTPClient(httpClient))
	}
	c, err := gitlab.NewClient(accessToken, opts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		client:         c,
		Issues:         c.Issues,
		Projects:       c.Projects,
		Labels:         c.Labels,
		Notes:          c.Notes,
		IssueLinks:     c.IssueLinks,
		Relations:      &relationsService{client: c},
		ProjectMembers: c.ProjectMembers,
		Milestones:     c.Milestones,
		Users:          c.Users,
	}, nil
}

type IssuesService interface {
	CreateIssue(pid interface{}, opt *gitlab.CreateIssueOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Issue, *gitlab.Response, error)
	DeleteIssue(pid interface{}, issue int, options ...gitlab.RequestOptionFunc) (*gitlab.Response, error)
	GetIssue(pid interface{}, issue int, options ...gitlab.RequestOptionFunc) (*gitlab.Issue, *gitlab.Response, error)
	ListProjectIssues(pid interface{}, opt *gitlab.ListProjectIssuesOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.Issue, *gitlab.Response, error)
	UpdateIssue(pid interface{}, issue int, opt *gitlab.UpdateIssueOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Issue, *gitlab.Response, error)
}

type ProjectsService interface {
	CreateProject(opt *gitlab.CreateProjectOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Project, *gitlab.Response, error)
	GetProject(pid interface{}, opt *gitlab.GetProjectOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Project, *gitlab.Response, error)
	ListProjects(opt *gitlab.ListProjectsOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.Project, *gitlab.Response, error)
}

type LabelsService interface {
	CreateLabel(pid interface{}, opt *gitlab.CreateLabelOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Label, *gitlab.Response, error)
	DeleteLabel(pid interface{}, opt *gitlab.DeleteLabelOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Response, error)
	ListLabels(pid interface{}, opt *gitlab.ListLabelsOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.Label, *gitlab.Response, error)
	UpdateLabel(pid interface{}, opt *gitlab.UpdateLabelOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Label, *gitlab.Response, error)
}

type NotesService interface {
	CreateIssueNote(pid interface{}, issue int, opt *gitlab.CreateIssueNoteOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Note, *gitlab.Response, error)
	ListIssueNotes(pid interface{}, issue int, opt *gitlab.ListIssueNotesOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.Note, *gitlab.Response, error)
}

type IssueLinksService interface {
	CreateIssueLink(pid interface{}, issue int, opt *gitlab.CreateIssueLinkOptions, options ...gitlab.RequestOptionFunc) (*gitlab.IssueLink, *gitlab.Response, error)
}

type ProjectMembersService interface {
	ListAllProjectMembers(pid interface{}, opt *gitlab.ListProjectMembersOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.ProjectMember, *gitlab.Response, error)
}

type MilestonesService interface {
	ListMilestones(pid interface{}, opt *gitlab.ListMilestonesOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.Milestone, *gitlab.Response, error)
}

type UsersService interface {
	ListUsers(opt *gitlab.ListUsersOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.User, *gitlab.Response, error)
}
