// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package mock

import (
	"context"
	"strconv"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/transport"
)

func articleResource(id string) transport.Resource {
	return transport.NamedResource("article " + id)
}

func (b *Backend) GetArticle(ctx context.Context, id string) (*model.Article, error) {
	var a model.Article
	if err := b.respond(ctx, call{op: "get_article", args: args("id", id), res: articleResource(id)}, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (b *Backend) ListArticles(ctx context.Context, projectID string, limit, skip int) ([]*model.Article, error) {
	a := args("limit", strconv.Itoa(limit), "skip", strconv.Itoa(skip))
	setIf(a, "project_id", projectID)
	articles := []*model.Article{}
	if err := b.respond(ctx, call{op: "list_articles", args: a}, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (b *Backend) SearchArticles(ctx context.Context, query, projectID string, limit int) ([]*model.Article, error) {
	a := args("query", query, "limit", strconv.Itoa(limit))
	setIf(a, "project_id", projectID)
	articles := []*model.Article{}
	if err := b.respond(ctx, call{op: "search_articles", args: a}, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (b *Backend) CreateArticle(ctx context.Context, in *model.CreateArticle) (*model.Article, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	a := args("project", in.ProjectID, "title", in.Title)
	setIf(a, "parent_id", in.ParentID)
	var out model.Article
	if err := b.respond(ctx, call{op: "create_article", args: a, body: jsonBody(in), res: transport.ProjectResource(in.ProjectID)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *Backend) UpdateArticle(ctx context.Context, id string, in *model.UpdateArticle) (*model.Article, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out model.Article
	if err := b.respond(ctx, call{op: "update_article", args: args("id", id), body: jsonBody(in), res: articleResource(id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *Backend) DeleteArticle(ctx context.Context, id string) error {
	return b.respond(ctx, call{op: "delete_article", args: args("id", id), res: articleResource(id)}, nil)
}

func (b *Backend) GetChildArticles(ctx context.Context, id string) ([]*model.Article, error) {
	articles := []*model.Article{}
	if err := b.respond(ctx, call{op: "get_child_articles", args: args("parent_id", id), res: articleResource(id)}, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (b *Backend) MoveArticle(ctx context.Context, id, newParentID string) (*model.Article, error) {
	a := args("article_id", id)
	setIf(a, "new_parent_id", newParentID)
	var out model.Article
	if err := b.respond(ctx, call{op: "move_article", args: a, res: articleResource(id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *Backend) ListArticleAttachments(ctx context.Context, id string) ([]*model.Attachment, error) {
	attachments := []*model.Attachment{}
	if err := b.respond(ctx, call{op: "list_article_attachments", args: args("article_id", id), res: articleResource(id)}, &attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}

func (b *Backend) GetArticleComments(ctx context.Context, id string) ([]*model.Comment, error) {
	comments := []*model.Comment{}
	if err := b.respond(ctx, call{op: "get_article_comments", args: args("article_id", id), res: articleResource(id)}, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (b *Backend) AddArticleComment(ctx context.Context, id, text string) (*model.Comment, error) {
	var c model.Comment
	if err := b.respond(ctx, call{op: "add_article_comment", args: args("article_id", id, "text", text), body: text, res: articleResource(id)}, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
