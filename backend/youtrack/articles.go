// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package youtrack

import (
	"context"
	"strings"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/transport"
)

func articleResource(id string) transport.Resource {
	return transport.NamedResource("article " + id)
}

func (b *Backend) convertArticles(list []article) []*model.Article {
	out := make([]*model.Article, 0, len(list))
	for i := range list {
		out = append(out, b.convertArticle(&list[i]))
	}
	return out
}

func (b *Backend) GetArticle(ctx context.Context, id string) (*model.Article, error) {
	var a article
	if err := b.client.Get(ctx, transport.Path("/articles/%s", id), fields(articleFields), articleResource(id), &a); err != nil {
		return nil, err
	}
	return b.convertArticle(&a), nil
}

// projectQuery builds the article query clause for a project. The query
// language wants the short name, so internal ids are looked up first.
func (b *Backend) projectQuery(ctx context.Context, projectID string) (string, error) {
	if !opaqueIDPattern.MatchString(projectID) {
		return "project: " + projectID, nil
	}
	p, err := b.GetProject(ctx, projectID)
	if err != nil {
		return "", err
	}
	return "project: " + p.ShortName, nil
}

func (b *Backend) queryArticles(ctx context.Context, query string, limit, skip int) ([]*model.Article, error) {
	q := paged(articleFields, limit, skip)
	if query != "" {
		q.Set("query", query)
	}
	var list []article
	if err := b.client.Get(ctx, "/articles", q, transport.Resource{}, &list); err != nil {
		return nil, err
	}
	return b.convertArticles(list), nil
}

func (b *Backend) ListArticles(ctx context.Context, projectID string, limit, skip int) ([]*model.Article, error) {
	if limit <= 0 {
		return []*model.Article{}, nil
	}
	query := ""
	if projectID != "" {
		var err error
		if query, err = b.projectQuery(ctx, projectID); err != nil {
			return nil, err
		}
	}
	return b.queryArticles(ctx, query, limit, skip)
}

func (b *Backend) SearchArticles(ctx context.Context, query, projectID string, limit int) ([]*model.Article, error) {
	if limit <= 0 {
		return []*model.Article{}, nil
	}
	query = strings.TrimSpace(query)
	if projectID != "" {
		pq, err := b.projectQuery(ctx, projectID)
		if err != nil {
			return nil, err
		}
		query = strings.TrimSpace(pq + " " + query)
	}
	return b.queryArticles(ctx, query, limit, 0)
}

func (b *Backend) CreateArticle(ctx context.Context, in *model.CreateArticle) (*model.Article, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	projectID, err := b.ResolveProjectID(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	w := writeArticle{Project: &idRef{ID: projectID}, Summary: &in.Title}
	if in.Content != "" {
		w.Content = &in.Content
	}
	if in.ParentID != "" {
		w.ParentArticle = &idRef{ID: in.ParentID}
	}
	var a article
	if err = b.client.Post(ctx, "/articles", fields(articleFields), w, transport.ProjectResource(in.ProjectID), &a); err != nil {
		return nil, err
	}
	return b.convertArticle(&a), nil
}

func (b *Backend) UpdateArticle(ctx context.Context, id string, in *model.UpdateArticle) (*model.Article, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var a article
	w := writeArticle{Summary: in.Title, Content: in.Content}
	if err := b.client.Post(ctx, transport.Path("/articles/%s", id), fields(articleFields), w, articleResource(id), &a); err != nil {
		return nil, err
	}
	return b.convertArticle(&a), nil
}

func (b *Backend) DeleteArticle(ctx context.Context, id string) error {
	return b.client.Delete(ctx, transport.Path("/articles/%s", id), articleResource(id))
}

func (b *Backend) GetChildArticles(ctx context.Context, id string) ([]*model.Article, error) {
	var list []article
	if err := b.client.Get(ctx, transport.Path("/articles/%s/childArticles", id), fields(articleFields), articleResource(id), &list); err != nil {
		return nil, err
	}
	return b.convertArticles(list), nil
}

// MoveArticle re-parents an article. An empty parent moves it to the root.
func (b *Backend) MoveArticle(ctx context.Context, id, newParentID string) (*model.Article, error) {
	body := map[string]interface{}{"parentArticle": nil}
	if newParentID != "" {
		body["parentArticle"] = idRef{ID: newParentID}
	}
	var a article
	if err := b.client.Post(ctx, transport.Path("/articles/%s", id), fields(articleFields), body, articleResource(id), &a); err != nil {
		return nil, err
	}
	return b.convertArticle(&a), nil
}

func (b *Backend) ListArticleAttachments(ctx context.Context, id string) ([]*model.Attachment, error) {
	var list []attachment
	if err := b.client.Get(ctx, transport.Path("/articles/%s/attachments", id), fields(attachmentFields), articleResource(id), &list); err != nil {
		return nil, err
	}
	out := make([]*model.Attachment, 0, len(list))
	for i := range list {
		a := convertAttachment(&list[i])
		if strings.HasPrefix(a.URL, "/") {
			a.URL = b.baseURL + a.URL
		}
		out = append(out, a)
	}
	return out, nil
}

func (b *Backend) GetArticleComments(ctx context.Context, id string) ([]*model.Comment, error) {
	var list []comment
	if err := b.client.Get(ctx, transport.Path("/articles/%s/comments", id), fields(commentFields), articleResource(id), &list); err != nil {
		return nil, err
	}
	out := make([]*model.Comment, 0, len(list))
	for i := range list {
		out = append(out, convertComment(&list[i]))
	}
	return out, nil
}

func (b *Backend) AddArticleComment(ctx context.Context, id, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, model.NewInvalidInput("comment", "cannot be empty")
	}
	var c comment
	path := transport.Path("/articles/%s/comments", id)
	if err := b.client.Post(ctx, path, fields(commentFields), map[string]string{"text": text}, articleResource(id), &c); err != nil {
		return nil, err
	}
	return convertComment(&c), nil
}
