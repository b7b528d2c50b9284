// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package gitlab

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xanzy/go-gitlab"
)

// IssueRelation is one entry of GET /projects/:id/issues/:iid/links. The
// endpoint returns the linked issue with the link id and type folded in.
type IssueRelation struct {
	ID          int    `json:"id"`
	IID         int    `json:"iid"`
	ProjectID   int    `json:"project_id"`
	Title       string `json:"title"`
	State       string `json:"state"`
	WebURL      string `json:"web_url"`
	IssueLinkID int    `json:"issue_link_id"`
	LinkType    string `json:"link_type"`
}

type RelationsService interface {
	ListIssueRelations(pid interface{}, issue int, options ...gitlab.RequestOptionFunc) ([]*IssueRelation, *gitlab.Response, error)
}

// relationsService decodes the links endpoint itself since the SDK drops
// issue_link_id and link_type.
type relationsService struct {
	client *gitlab.Client
}

func (s *relationsService) ListIssueRelations(pid interface{}, issue int, options ...gitlab.RequestOptionFunc) ([]*IssueRelation, *gitlab.Response, error) {
	project, err := projectPath(pid)
	if err != nil {
		return nil, nil, err
	}
	u := fmt.Sprintf("projects/%s/issues/%d/links", project, issue)

	req, err := s.client.NewRequest(http.MethodGet, u, nil, options)
	if err != nil {
		return nil, nil, err
	}

	var relations []*IssueRelation
	resp, err := s.client.Do(req, &relations)
	if err != nil {
		return nil, resp, err
	}
	return relations, resp, nil
}

// projectPath renders a numeric id or a namespaced path for a URL segment.
func projectPath(pid interface{}) (string, error) {
	switch v := pid.(type) {
	case int:
		return strconv.Itoa(v), nil
	case string:
		return strings.ReplaceAll(url.PathEscape(v), ".", "%2E"), nil
	}
	return "", errors.Errorf("invalid project id %v (type %T)", pid, pid)
}
