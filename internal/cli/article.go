// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattermost/mattermost-track/model"
)

func newArticleCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "article",
		Aliases: []string{"a", "wiki"},
		Short:   "Read and change knowledge base articles",
	}
	cmd.AddCommand(
		newArticleGetCmd(a),
		newArticleListCmd(a),
		newArticleSearchCmd(a),
		newArticleCreateCmd(a),
		newArticleUpdateCmd(a),
		newArticleDeleteCmd(a),
		newArticleChildrenCmd(a),
		newArticleMoveCmd(a),
		newArticleAttachmentsCmd(a),
		newArticleCommentsCmd(a),
		newArticleCommentCmd(a),
	)
	return cmd
}

func newArticleGetCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kb, err := a.KnowledgeBase()
			if err != nil {
				return err
			}
			article, err := kb.GetArticle(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printer.Article(article)
		},
	}
}

func newArticleListCmd(a *App) *cobra.Command {
	var (
		project     string
		limit, skip int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List articles, optionally within a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return model.NewInvalidInput("limit", "must be positive")
			}
			b, err := a.Backend()
			if err != nil {
				return err
			}
			kb, err := a.KnowledgeBase()
			if err != nil {
				return err
			}
			projectID, err := a.optionalProject(cmd.Context(), b, project)
			if err != nil {
				return err
			}
			articles, err := kb.ListArticles(cmd.Context(), projectID, limit, skip)
			if err != nil {
				return err
			}
			return a.printer.Articles(articles)
		},
	}
	cmd.Flags().StringVarP(&project, "project", "p", "", "project short name or id")
	cmd.Flags().IntVar(&limit, "limit", defaultSearchLimit, "maximum number of articles")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of articles to skip")
	return cmd
}

func newArticleSearchCmd(a *App) *cobra.Command {
	var (
		project string
		limit   int
	)
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search articles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return model.NewInvalidInput("limit", "must be positive")
			}
			b, err := a.Backend()
			if err != nil {
				return err
			}
			kb, err := a.KnowledgeBase()
			if err != nil {
				return err
			}
			projectID := ""
			if project != "" {
				if projectID, err = b.ResolveProjectID(cmd.Context(), project); err != nil {
					return err
				}
			}
			articles, err := kb.SearchArticles(cmd.Context(), args[0], projectID, limit)
			if err != nil {
				return err
			}
			return a.printer.Articles(articles)
		},
	}
	cmd.Flags().StringVarP(&project, "project", "p", "", "restrict the search to a project")
	cmd.Flags().IntVar(&limit, "limit", defaultSearchLimit, "maximum number of articles")
	return cmd
}

func newArticleCreateCmd(a *App) *cobra.Command {
	var (
		in      model.CreateArticle
		project string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an article",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(in.Title) == "" {
				return model.NewInvalidInput("summary", "is required")
			}
			b, err := a.Backend()
			if err != nil {
				return err
			}
			kb, err := a.KnowledgeBase()
			if err != nil {
				return err
			}
			if in.ProjectID, err = a.resolveProject(cmd.Context(), b, project); err != nil {
				return err
			}
			article, err := kb.CreateArticle(cmd.Context(), &in)
			if err != nil {
				return err
			}
			return a.printer.Article(article)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&project, "project", "p", "", "project short name or id (default: the saved default project)")
	f.StringVarP(&in.Title, "summary", "s", "", "article title")
	f.StringVarP(&in.Content, "content", "c", "", "article content")
	f.StringVar(&in.ParentID, "parent", "", "parent article id")
	return cmd
}

func newArticleUpdateCmd(a *App) *cobra.Command {
	var title, content string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the title or content of an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in model.UpdateArticle
			if cmd.Flags().Changed("summary") {
				in.Title = &title
			}
			if cmd.Flags().Changed("content") {
				in.Content = &content
			}
			if err := in.Validate(); err != nil {
				return err
			}
			kb, err := a.KnowledgeBase()
			if err != nil {
				return err
			}
			article, err := kb.UpdateArticle(cmd.Context(), args[0], &in)
			if err != nil {
				return err
			}
			return a.printer.Article(article)
		},
	}
	cmd.Flags().StringVarP(&title, "summary", "s", "", "new title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "new content")
	return cmd
}

func newArticleDeleteCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kb, err := a.KnowledgeBase()
			if err != nil {
				return err
			}
			if err := kb.DeleteArticle(cmd.Context(), args[0]); err != nil {
				return err
			}
			return a.printer.Message("Deleted article %s", args[0])
		},
	}
}

func newArticleChildrenCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "children <id>",
		Short: "List the child articles of an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kb, err := a.KnowledgeBase()
			if err != nil {
				return err
			}
			articles, err := kb.GetChildArticles(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printer.Articles(articles)
		},
	}
}

func newArticleMoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> [parent]",
		Short: "Move an article under a new parent, or to the top level",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			parent := ""
			if len(args) == 2 {
				parent = args[1]
			}
			kb, err := a.KnowledgeBase()
			if err != nil {
				return err
			}
			article, err := kb.MoveArticle(cmd.Context(), args[0], parent)
			if err != nil {
				return err
			}
			return a.printer.Article(article)
		},
	}
}

func newArticleAttachmentsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "attachments <id>",
		Short: "List the attachments of an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kb, err := a.KnowledgeBase()
			if err != nil {
				return err
			}
			attachments, err := kb.ListArticleAttachments(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printer.Attachments(attachments)
		},
	}
}

func newArticleCommentsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "comments <id>",
		Short: "List the comments of an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kb, err := a.KnowledgeBase()
			if err != nil {
				return err
			}
			comments, err := kb.GetArticleComments(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printer.Comments(comments)
		},
	}
}

func newArticleCommentCmd(a *App) *cobra.Command {
	var message string
	cmd := &cobra.Command{
		Use:   "comment <id>",
		Short: "Comment on an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(message) == "" {
				return model.NewInvalidInput("message", "is required")
			}
			kb, err := a.KnowledgeBase()
			if err != nil {
				return err
			}
			c, err := kb.AddArticleComment(cmd.Context(), args[0], message)
			if err != nil {
				return err
			}
			return a.printer.Comment(c)
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "comment text")
	return cmd
}
