// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package jira

import (
	"context"
	"html"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/tracker"
	"github.com/mattermost/mattermost-track/transport"
)

const childPageLimit = 100

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	blockClosePattern = regexp.MustCompile(`</(p|h[1-6]|li|tr|div)>|<br\s*/?>`)
	blankLinesPattern = regexp.MustCompile(`\n{3,}`)
)

// Confluence serves pages of a Confluence Cloud site as articles. Spaces
// play the part of projects.
type Confluence struct {
	client  *transport.Client
	baseURL string
}

var _ tracker.KnowledgeBase = (*Confluence)(nil)

// NewConfluence builds a client for the wiki at baseURL, usually the Jira
// site followed by /wiki.
func NewConfluence(baseURL, email, token string, httpClient *http.Client) *Confluence {
	baseURL = strings.TrimRight(baseURL, "/")
	auth := transport.BasicAuth{Email: email, Token: token}
	return &Confluence{
		client:  transport.NewClient(tracker.Jira, baseURL, auth, httpClient),
		baseURL: baseURL,
	}
}

type bodyValue struct {
	Representation string `json:"representation,omitempty"`
	Value          string `json:"value"`
}

type pageBody struct {
	Storage *bodyValue `json:"storage,omitempty"`
}

type version struct {
	Number    int        `json:"number"`
	Message   string     `json:"message,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type webLinks struct {
	WebUI    string `json:"webui"`
	Download string `json:"download"`
	Next     string `json:"next"`
}

type page struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Status    string     `json:"status"`
	SpaceID   string     `json:"spaceId"`
	ParentID  string     `json:"parentId"`
	AuthorID  string     `json:"authorId"`
	CreatedAt *time.Time `json:"createdAt"`
	Version   *version   `json:"version"`
	Body      *pageBody  `json:"body"`
	Links     webLinks   `json:"_links"`
}

type pageList struct {
	Results []page   `json:"results"`
	Links   webLinks `json:"_links"`
}

type pageComment struct {
	ID        string     `json:"id"`
	PageID    string     `json:"pageId"`
	CreatedAt *time.Time `json:"createdAt"`
	Version   *version   `json:"version"`
	Body      *pageBody  `json:"body"`
}

type commentPage struct {
	Results []pageComment `json:"results"`
}

type attachment struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	MediaType string     `json:"mediaType"`
	FileSize  int64      `json:"fileSize"`
	CreatedAt *time.Time `json:"createdAt"`
	Links     webLinks   `json:"_links"`
}

type attachmentPage struct {
	Results []attachment `json:"results"`
}

type searchHit struct {
	Content *struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Space *struct {
			Key string `json:"key"`
		} `json:"space"`
		Links webLinks `json:"_links"`
	} `json:"content"`
	Excerpt string `json:"excerpt"`
}

type searchPage struct {
	Results []searchHit `json:"results"`
}

type writePage struct {
	ID       string     `json:"id,omitempty"`
	SpaceID  string     `json:"spaceId,omitempty"`
	Status   string     `json:"status"`
	Title    string     `json:"title"`
	ParentID string     `json:"parentId,omitempty"`
	Body     *bodyValue `json:"body,omitempty"`
	Version  *version   `json:"version,omitempty"`
}

// toStorage renders plain text in storage format, one paragraph per
// blank-line separated block.
func toStorage(text string) string {
	var b strings.Builder
	for _, para := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(html.EscapeString(para), "\n", "<br/>"))
		b.WriteString("</p>")
	}
	if b.Len() == 0 {
		return "<p></p>"
	}
	return b.String()
}

// fromStorage strips the markup of a storage-format body.
func fromStorage(storage string) string {
	s := blockClosePattern.ReplaceAllString(storage, "\n")
	s = tagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = blankLinesPattern.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

func storageOf(b *pageBody) string {
	if b == nil || b.Storage == nil {
		return ""
	}
	return b.Storage.Value
}

func (c *Confluence) convertPage(p *page) *model.Article {
	a := &model.Article{
		ID:       p.ID,
		Title:    p.Title,
		Content:  fromStorage(storageOf(p.Body)),
		ParentID: p.ParentID,
		Created:  p.CreatedAt,
		Updated:  p.CreatedAt,
	}
	if p.SpaceID != "" {
		a.Project = &model.ProjectRef{ID: p.SpaceID}
	}
	if p.AuthorID != "" {
		a.Reporter = &model.UserRef{ID: p.AuthorID}
	}
	if p.Version != nil && p.Version.CreatedAt != nil {
		a.Updated = p.Version.CreatedAt
	}
	if p.Links.WebUI != "" {
		a.URL = c.baseURL + p.Links.WebUI
	}
	return a
}

func (c *Confluence) fetchPage(ctx context.Context, id string) (*page, error) {
	var p page
	q := url.Values{"body-format": {"storage"}}
	if err := c.client.Get(ctx, transport.Path("/api/v2/pages/%s", id), q, transport.NamedResource("page "+id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Confluence) GetArticle(ctx context.Context, id string) (*model.Article, error) {
	p, err := c.fetchPage(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.convertPage(p), nil
}

// nextCursor reads the cursor out of a "next" link.
func nextCursor(next string) string {
	if next == "" {
		return ""
	}
	u, err := url.Parse(next)
	if err != nil {
		return ""
	}
	return u.Query().Get("cursor")
}

// ListArticles walks the cursor-paginated page list, dropping the first
// skip pages.
func (c *Confluence) ListArticles(ctx context.Context, projectID string, limit, skip int) ([]*model.Article, error) {
	out := []*model.Article{}
	if limit <= 0 {
		return out, nil
	}
	q := url.Values{
		"limit":       {strconv.Itoa(limit + skip)},
		"body-format": {"storage"},
		"status":      {"current"},
	}
	if projectID != "" {
		q.Set("space-id", projectID)
	}
	seen := 0
	for {
		var list pageList
		if err := c.client.Get(ctx, "/api/v2/pages", q, transport.ProjectResource(projectID), &list); err != nil {
			return nil, err
		}
		for i := range list.Results {
			seen++
			if seen <= skip {
				continue
			}
			out = append(out, c.convertPage(&list.Results[i]))
			if len(out) == limit {
				return out, nil
			}
		}
		cursor := nextCursor(list.Links.Next)
		if cursor == "" || len(list.Results) == 0 {
			return out, nil
		}
		q.Set("cursor", cursor)
	}
}

// SearchArticles runs a CQL text search through the v1 search API.
func (c *Confluence) SearchArticles(ctx context.Context, query, projectID string, limit int) ([]*model.Article, error) {
	cql := "type=page AND text~" + quote(query)
	if projectID != "" {
		cql += " AND space=" + quote(projectID)
	}
	q := url.Values{"cql": {cql}, "limit": {strconv.Itoa(limit)}, "expand": {"content.space"}}
	var res searchPage
	if err := c.client.Get(ctx, "/rest/api/search", q, transport.Resource{}, &res); err != nil {
		return nil, err
	}
	out := []*model.Article{}
	for _, hit := range res.Results {
		if hit.Content == nil {
			continue
		}
		a := &model.Article{ID: hit.Content.ID, Title: hit.Content.Title, Content: fromStorage(hit.Excerpt)}
		if hit.Content.Space != nil {
			a.Project = &model.ProjectRef{ShortName: hit.Content.Space.Key}
		}
		if hit.Content.Links.WebUI != "" {
			a.URL = c.baseURL + hit.Content.Links.WebUI
		}
		out = append(out, a)
	}
	return out, nil
}

func (c *Confluence) CreateArticle(ctx context.Context, in *model.CreateArticle) (*model.Article, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	body := writePage{
		SpaceID:  in.ProjectID,
		Status:   "current",
		Title:    in.Title,
		ParentID: in.ParentID,
		Body:     &bodyValue{Representation: "storage", Value: toStorage(in.Content)},
	}
	var p page
	if err := c.client.Post(ctx, "/api/v2/pages", nil, body, transport.ProjectResource(in.ProjectID), &p); err != nil {
		return nil, err
	}
	return c.convertPage(&p), nil
}

// UpdateArticle replaces the title or body, bumping the page version.
// Confluence requires both on every update, so missing ones are carried
// over from the current page.
func (c *Confluence) UpdateArticle(ctx context.Context, id string, in *model.UpdateArticle) (*model.Article, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	current, err := c.fetchPage(ctx, id)
	if err != nil {
		return nil, err
	}
	body := writePage{
		ID:      id,
		Status:  current.Status,
		Title:   current.Title,
		Body:    &bodyValue{Representation: "storage", Value: storageOf(current.Body)},
		Version: &version{Number: 2},
	}
	if body.Status == "" {
		body.Status = "current"
	}
	if current.Version != nil {
		body.Version.Number = current.Version.Number + 1
	}
	if in.Title != nil {
		body.Title = *in.Title
	}
	if in.Content != nil {
		body.Body.Value = toStorage(*in.Content)
	}

	var p page
	if err = c.client.Put(ctx, transport.Path("/api/v2/pages/%s", id), body, transport.NamedResource("page "+id), &p); err != nil {
		return nil, err
	}
	return c.convertPage(&p), nil
}

func (c *Confluence) DeleteArticle(ctx context.Context, id string) error {
	return c.client.Delete(ctx, transport.Path("/api/v2/pages/%s", id), transport.NamedResource("page "+id))
}

func (c *Confluence) GetChildArticles(ctx context.Context, id string) ([]*model.Article, error) {
	var list pageList
	q := url.Values{"limit": {strconv.Itoa(childPageLimit)}}
	if err := c.client.Get(ctx, transport.Path("/api/v2/pages/%s/children", id), q, transport.NamedResource("page "+id), &list); err != nil {
		return nil, err
	}
	out := make([]*model.Article, 0, len(list.Results))
	for i := range list.Results {
		out = append(out, c.convertPage(&list.Results[i]))
	}
	return out, nil
}

// MoveArticle only supports moving to the top of the space; the v2 API has
// no way to reparent a page.
func (c *Confluence) MoveArticle(ctx context.Context, id, newParentID string) (*model.Article, error) {
	if newParentID != "" {
		return nil, model.NewInvalidInput("parent", "moving Confluence pages under a new parent is not supported")
	}
	current, err := c.fetchPage(ctx, id)
	if err != nil {
		return nil, err
	}
	number := 2
	if current.Version != nil {
		number = current.Version.Number + 1
	}
	body := writePage{
		ID:      id,
		Status:  "current",
		Title:   current.Title,
		Body:    &bodyValue{Representation: "storage", Value: storageOf(current.Body)},
		Version: &version{Number: number, Message: "Moved article"},
	}
	var p page
	if err = c.client.Put(ctx, transport.Path("/api/v2/pages/%s", id), body, transport.NamedResource("page "+id), &p); err != nil {
		return nil, err
	}
	return c.convertPage(&p), nil
}

func (c *Confluence) ListArticleAttachments(ctx context.Context, id string) ([]*model.Attachment, error) {
	var list attachmentPage
	q := url.Values{"limit": {strconv.Itoa(childPageLimit)}}
	if err := c.client.Get(ctx, transport.Path("/api/v2/pages/%s/attachments", id), q, transport.NamedResource("page "+id), &list); err != nil {
		return nil, err
	}
	out := make([]*model.Attachment, 0, len(list.Results))
	for _, a := range list.Results {
		att := &model.Attachment{ID: a.ID, Name: a.Title, Size: a.FileSize, MimeType: a.MediaType, Created: a.CreatedAt}
		if a.Links.Download != "" {
			att.URL = c.baseURL + a.Links.Download
		}
		out = append(out, att)
	}
	return out, nil
}

func convertPageComment(pc *pageComment) *model.Comment {
	return &model.Comment{
		ID:      pc.ID,
		Body:    fromStorage(storageOf(pc.Body)),
		Created: pc.CreatedAt,
	}
}

func (c *Confluence) GetArticleComments(ctx context.Context, id string) ([]*model.Comment, error) {
	var list commentPage
	q := url.Values{"limit": {strconv.Itoa(childPageLimit)}, "body-format": {"storage"}}
	if err := c.client.Get(ctx, transport.Path("/api/v2/pages/%s/footer-comments", id), q, transport.NamedResource("page "+id), &list); err != nil {
		return nil, err
	}
	out := make([]*model.Comment, 0, len(list.Results))
	for i := range list.Results {
		out = append(out, convertPageComment(&list.Results[i]))
	}
	return out, nil
}

func (c *Confluence) AddArticleComment(ctx context.Context, id, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, model.NewInvalidInput("text", "is required")
	}
	body := map[string]interface{}{
		"pageId": id,
		"body":   bodyValue{Representation: "storage", Value: toStorage(text)},
	}
	var pc pageComment
	if err := c.client.Post(ctx, "/api/v2/footer-comments", nil, body, transport.NamedResource("page "+id), &pc); err != nil {
		return nil, err
	}
	return convertPageComment(&pc), nil
}
