// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/mattermost/mattermost-track/mock"
	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/store"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"

	timeLayout = "2006-01-02 15:04"
)

// Printer renders results as JSON or as colored text.
type Printer struct {
	out   io.Writer
	json  bool
	color bool
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func NewPrinter(out io.Writer, format, colorMode string) (*Printer, error) {
	p := &Printer{out: out, json: format == outputJSON}
	switch colorMode {
	case colorAlways:
		p.color = true
	case colorNever:
	case colorAuto, "":
		_, noColor := os.LookupEnv("NO_COLOR")
		p.color = !noColor && isTerminal(out)
	default:
		return nil, model.NewInvalidInput("color", "expected auto, always or never, got "+colorMode)
	}
	return p, nil
}

func (p *Printer) paint(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if p.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

func (p *Printer) bold(s string) string  { return p.paint(s, color.Bold) }
func (p *Printer) faint(s string) string { return p.paint(s, color.Faint) }

func (p *Printer) state(s model.State) string {
	switch {
	case s.IsOpen():
		return p.paint(string(s), color.FgGreen)
	case s.IsClosed():
		return p.paint(string(s), color.FgRed)
	}
	return p.paint(string(s), color.FgYellow)
}

func (p *Printer) tagColor(c string) string {
	if c == "" {
		return ""
	}
	return "#" + c
}

// Render prints v as JSON, or calls text.
func (p *Printer) Render(v interface{}, text func(w io.Writer)) error {
	if p.json {
		return p.JSON(v)
	}
	text(p.out)
	return nil
}

func (p *Printer) JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return model.NewParseError("failed to encode output", err)
	}
	_, err = fmt.Fprintln(p.out, string(data))
	if err != nil {
		return model.NewIOError("failed to write output", err)
	}
	return nil
}

// Message prints a confirmation line in text mode and a status object in
// JSON mode.
func (p *Printer) Message(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return p.Render(map[string]string{"status": "ok", "message": msg}, func(w io.Writer) {
		fmt.Fprintln(w, msg)
	})
}

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format(timeLayout)
}

func logins(users []model.UserRef) string {
	names := make([]string, 0, len(users))
	for i := range users {
		names = append(names, users[i].Display())
	}
	return strings.Join(names, ", ")
}

func issueKey(i *model.Issue) string {
	if i.Key != "" {
		return i.Key
	}
	return i.ID
}

func (p *Printer) Issue(i *model.Issue) error {
	return p.Render(i, func(w io.Writer) {
		fmt.Fprintf(w, "%s  %s\n", p.bold(issueKey(i)), i.Title)
		tw := table(w)
		state := p.state(i.State)
		if i.Status != "" && i.Status != string(i.State) {
			state += " (" + i.Status + ")"
		}
		fmt.Fprintf(tw, "State:\t%s\n", state)
		if i.Project != nil {
			name := i.Project.ShortName
			if name == "" {
				name = i.Project.ID
			}
			fmt.Fprintf(tw, "Project:\t%s\n", name)
		}
		if len(i.Assignees) > 0 {
			fmt.Fprintf(tw, "Assignees:\t%s\n", logins(i.Assignees))
		}
		if i.Reporter != nil {
			fmt.Fprintf(tw, "Reporter:\t%s\n", i.Reporter.Display())
		}
		if len(i.Labels) > 0 {
			fmt.Fprintf(tw, "Labels:\t%s\n", i.Labels.Join())
		}
		if i.Milestone != "" {
			fmt.Fprintf(tw, "Milestone:\t%s\n", i.Milestone)
		}
		if i.Parent != "" {
			fmt.Fprintf(tw, "Parent:\t%s\n", i.Parent)
		}
		for _, f := range i.CustomFields {
			if f.Value != nil {
				fmt.Fprintf(tw, "%s:\t%v\n", f.Name, f.Value)
			}
		}
		if i.Created != nil {
			fmt.Fprintf(tw, "Created:\t%s\n", formatTime(i.Created))
		}
		if i.Updated != nil {
			fmt.Fprintf(tw, "Updated:\t%s\n", formatTime(i.Updated))
		}
		if i.Closed != nil {
			fmt.Fprintf(tw, "Closed:\t%s\n", formatTime(i.Closed))
		}
		if i.URL != "" {
			fmt.Fprintf(tw, "URL:\t%s\n", i.URL)
		}
		tw.Flush()
		if i.Body != "" {
			fmt.Fprintf(w, "\n%s\n", i.Body)
		}
	})
}

func (p *Printer) Issues(issues []*model.Issue) error {
	return p.Render(issues, func(w io.Writer) {
		if len(issues) == 0 {
			fmt.Fprintln(w, "No issues found.")
			return
		}
		tw := table(w)
		for _, i := range issues {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.bold(issueKey(i)), p.state(i.State), i.Title, p.faint(logins(i.Assignees)))
		}
		tw.Flush()
	})
}

func (p *Printer) Project(pr *model.Project) error {
	return p.Render(pr, func(w io.Writer) {
		tw := table(w)
		fmt.Fprintf(tw, "ID:\t%s\n", pr.ID)
		fmt.Fprintf(tw, "Short name:\t%s\n", p.bold(pr.ShortName))
		fmt.Fprintf(tw, "Name:\t%s\n", pr.Name)
		if pr.Owner != "" {
			fmt.Fprintf(tw, "Owner:\t%s\n", pr.Owner)
		}
		if pr.Description != "" {
			fmt.Fprintf(tw, "Description:\t%s\n", pr.Description)
		}
		if pr.URL != "" {
			fmt.Fprintf(tw, "URL:\t%s\n", pr.URL)
		}
		tw.Flush()
	})
}

func (p *Printer) Projects(projects []*model.Project) error {
	return p.Render(projects, func(w io.Writer) {
		if len(projects) == 0 {
			fmt.Fprintln(w, "No projects found.")
			return
		}
		tw := table(w)
		fmt.Fprintln(tw, p.faint("SHORT NAME\tNAME\tID"))
		for _, pr := range projects {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", p.bold(pr.ShortName), pr.Name, pr.ID)
		}
		tw.Flush()
	})
}

func (p *Printer) Fields(fields []*model.CustomField) error {
	return p.Render(fields, func(w io.Writer) {
		if len(fields) == 0 {
			fmt.Fprintln(w, "No custom fields.")
			return
		}
		tw := table(w)
		fmt.Fprintln(tw, p.faint("NAME\tTYPE\tREQUIRED\tVALUES"))
		for _, f := range fields {
			fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", p.bold(f.Name), f.Type, f.Required, strings.Join(f.Values, ", "))
		}
		tw.Flush()
	})
}

func (p *Printer) Field(f *model.CustomField) error {
	return p.Render(f, func(w io.Writer) {
		fmt.Fprintf(w, "Attached %s (%s)\n", p.bold(f.Name), f.Type)
	})
}

func (p *Printer) Users(users []*model.UserRef) error {
	return p.Render(users, func(w io.Writer) {
		if len(users) == 0 {
			fmt.Fprintln(w, "No users found.")
			return
		}
		tw := table(w)
		for _, u := range users {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", p.bold(u.Login), u.Name, u.Email)
		}
		tw.Flush()
	})
}

func (p *Printer) Tag(t *model.Tag) error {
	return p.Render(t, func(w io.Writer) {
		fmt.Fprintf(w, "%s %s\n", p.bold(t.Name), p.tagColor(t.Color))
	})
}

func (p *Printer) Tags(tags []*model.Tag) error {
	return p.Render(tags, func(w io.Writer) {
		if len(tags) == 0 {
			fmt.Fprintln(w, "No tags found.")
			return
		}
		tw := table(w)
		for _, t := range tags {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", p.bold(t.Name), p.tagColor(t.Color), t.Description)
		}
		tw.Flush()
	})
}

func (p *Printer) LinkTypes(types []*model.LinkType) error {
	return p.Render(types, func(w io.Writer) {
		if len(types) == 0 {
			fmt.Fprintln(w, "No link types.")
			return
		}
		tw := table(w)
		for _, lt := range types {
			labels := lt.Outward
			if lt.Directed && lt.Inward != "" {
				labels += " / " + lt.Inward
			}
			fmt.Fprintf(tw, "%s\t%s\n", p.bold(lt.Name), labels)
		}
		tw.Flush()
	})
}

func (p *Printer) Links(links []*model.Link) error {
	return p.Render(links, func(w io.Writer) {
		if len(links) == 0 {
			fmt.Fprintln(w, "No links.")
			return
		}
		tw := table(w)
		for _, l := range links {
			target := l.TargetKey
			if target == "" {
				target = l.Target
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.Type, strings.ToLower(string(l.Direction)), p.bold(target), l.TargetTitle)
		}
		tw.Flush()
	})
}

func (p *Printer) Comment(c *model.Comment) error {
	return p.Render(c, func(w io.Writer) {
		fmt.Fprintf(w, "Added comment %s\n", c.ID)
	})
}

func (p *Printer) Comments(comments []*model.Comment) error {
	return p.Render(comments, func(w io.Writer) {
		if len(comments) == 0 {
			fmt.Fprintln(w, "No comments.")
			return
		}
		for i, c := range comments {
			if i > 0 {
				fmt.Fprintln(w)
			}
			author := "unknown"
			if c.Author != nil {
				author = c.Author.Display()
			}
			fmt.Fprintf(w, "%s %s\n%s\n", p.bold(author), p.faint(formatTime(c.Created)), c.Body)
		}
	})
}

func (p *Printer) Article(a *model.Article) error {
	return p.Render(a, func(w io.Writer) {
		key := a.Key
		if key == "" {
			key = a.ID
		}
		fmt.Fprintf(w, "%s  %s\n", p.bold(key), a.Title)
		tw := table(w)
		if a.Project != nil {
			fmt.Fprintf(tw, "Project:\t%s\n", a.Project.ShortName)
		}
		if a.ParentID != "" {
			fmt.Fprintf(tw, "Parent:\t%s\n", a.ParentID)
		}
		if len(a.Tags) > 0 {
			fmt.Fprintf(tw, "Tags:\t%s\n", a.Tags.Join())
		}
		if a.Updated != nil {
			fmt.Fprintf(tw, "Updated:\t%s\n", formatTime(a.Updated))
		}
		if a.URL != "" {
			fmt.Fprintf(tw, "URL:\t%s\n", a.URL)
		}
		tw.Flush()
		if a.Content != "" {
			fmt.Fprintf(w, "\n%s\n", a.Content)
		}
	})
}

func (p *Printer) Articles(articles []*model.Article) error {
	return p.Render(articles, func(w io.Writer) {
		if len(articles) == 0 {
			fmt.Fprintln(w, "No articles found.")
			return
		}
		tw := table(w)
		for _, a := range articles {
			key := a.Key
			if key == "" {
				key = a.ID
			}
			marker := ""
			if a.HasChildren {
				marker = "+"
			}
			fmt.Fprintf(tw, "%s\t%s%s\n", p.bold(key), a.Title, marker)
		}
		tw.Flush()
	})
}

func (p *Printer) Attachments(attachments []*model.Attachment) error {
	return p.Render(attachments, func(w io.Writer) {
		if len(attachments) == 0 {
			fmt.Fprintln(w, "No attachments.")
			return
		}
		tw := table(w)
		for _, at := range attachments {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", p.bold(at.Name), at.Size, at.MimeType, at.URL)
		}
		tw.Flush()
	})
}

func (p *Printer) Prefs(prefs *store.Prefs, path string) error {
	return p.Render(prefs, func(w io.Writer) {
		if prefs.IsEmpty() {
			fmt.Fprintf(w, "No default project set (%s).\n", path)
			return
		}
		fmt.Fprintf(w, "Default project: %s (%s)\n", p.bold(prefs.DefaultProjectName), prefs.DefaultProjectID)
	})
}

func (p *Printer) Cache(c *store.TrackerCache) error {
	return p.Render(c, func(w io.Writer) {
		fmt.Fprintf(w, "Backend: %s, updated %s\n", c.Backend, c.UpdatedAt.Local().Format(timeLayout))
		tw := table(w)
		for _, pr := range c.Projects {
			fmt.Fprintf(tw, "%s\t%s\t%d fields\n", p.bold(pr.ShortName), pr.Name, len(c.ProjectFields[pr.ID]))
		}
		tw.Flush()
		fmt.Fprintf(w, "%d tags, %d link types\n", len(c.Tags), len(c.LinkTypes))
	})
}

func (p *Printer) Report(r *mock.Report) error {
	return p.Render(r, func(w io.Writer) {
		result := p.paint("PASS", color.FgGreen)
		if !r.Success {
			result = p.paint("FAIL", color.FgRed)
		}
		fmt.Fprintf(w, "%s %s  score %.2f (%d/%d points)\n", result, p.bold(r.Scenario), r.Score, r.Points, r.BaseScore)
		fmt.Fprintf(w, "Commands: %d, calls: %d, efficiency: %s\n", r.Commands, r.TotalCalls, r.Efficiency)
		tw := table(w)
		for _, c := range r.Criteria {
			mark := p.paint("ok", color.FgGreen)
			if !c.Passed {
				mark = p.paint("failed", color.FgRed)
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", c.Kind, c.Name, mark, c.Detail)
		}
		tw.Flush()
		for _, s := range r.Suggestions {
			fmt.Fprintf(w, "- %s\n", s)
		}
	})
}

func (p *Printer) Scenarios(scenarios []*mock.Scenario) error {
	return p.Render(scenarios, func(w io.Writer) {
		if len(scenarios) == 0 {
			fmt.Fprintln(w, "No scenarios found.")
			return
		}
		tw := table(w)
		for _, s := range scenarios {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.bold(s.Meta.Name), s.Meta.Backend, s.Meta.Difficulty, s.Dir)
		}
		tw.Flush()
	})
}

func (p *Printer) FieldDefinitions(defs []*model.CustomFieldDefinition) error {
	return p.Render(defs, func(w io.Writer) {
		if len(defs) == 0 {
			fmt.Fprintln(w, "No custom fields.")
			return
		}
		tw := table(w)
		fmt.Fprintln(tw, p.faint("NAME\tTYPE\tPROJECTS\tID"))
		for _, d := range defs {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", p.bold(d.Name), d.Type, d.Instances, d.ID)
		}
		tw.Flush()
	})
}

func (p *Printer) FieldDefinition(d *model.CustomFieldDefinition) error {
	return p.Render(d, func(w io.Writer) {
		fmt.Fprintf(w, "Created field %s (%s) %s\n", p.bold(d.Name), d.Type, p.faint(d.ID))
	})
}

func (p *Printer) bundleValueNames(values []*model.BundleValue) string {
	names := make([]string, 0, len(values))
	for _, v := range values {
		if v.Resolved != nil && *v.Resolved {
			names = append(names, p.paint(v.Name, color.FgRed))
			continue
		}
		names = append(names, v.Name)
	}
	return strings.Join(names, ", ")
}

func (p *Printer) Bundles(bundles []*model.Bundle) error {
	return p.Render(bundles, func(w io.Writer) {
		if len(bundles) == 0 {
			fmt.Fprintln(w, "No bundles found.")
			return
		}
		tw := table(w)
		for _, b := range bundles {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.bold(b.Name), b.Type, b.ID, p.bundleValueNames(b.Values))
		}
		tw.Flush()
	})
}

func (p *Printer) Bundle(b *model.Bundle) error {
	return p.Render(b, func(w io.Writer) {
		fmt.Fprintf(w, "Created %s bundle %s %s\n", b.Type, p.bold(b.Name), p.faint(b.ID))
		if len(b.Values) > 0 {
			fmt.Fprintln(w, p.bundleValueNames(b.Values))
		}
	})
}

func (p *Printer) BundleValues(values []*model.BundleValue) error {
	return p.Render(values, func(w io.Writer) {
		fmt.Fprintf(w, "Added %s\n", p.bundleValueNames(values))
	})
}

func (p *Printer) Count(query string, n int) error {
	v := struct {
		Query string `json:"query"`
		Count int    `json:"count"`
	}{query, n}
	return p.Render(v, func(w io.Writer) {
		fmt.Fprintln(w, n)
	})
}

func (p *Printer) StateResults(results []*stateResult, state string) error {
	return p.Render(results, func(w io.Writer) {
		tw := table(w)
		for _, r := range results {
			if r.Error != "" {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.bold(r.ID), p.paint("failed", color.FgRed), r.Error)
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", p.bold(issueKey(r.Issue)), p.state(model.ParseState(state)), r.Issue.Title)
		}
		tw.Flush()
	})
}

func (p *Printer) Context(c *trackerContext) error {
	return p.Render(c, func(w io.Writer) {
		fmt.Fprintf(w, "Backend: %s, cache updated %s\n", c.Backend, c.CacheUpdatedAt.Local().Format(timeLayout))
		if c.Project != nil {
			fmt.Fprintf(w, "Project: %s  %s (%s)\n", p.bold(c.Project.ShortName), c.Project.Name, c.Project.ID)
		}

		fmt.Fprintln(w, p.faint("Projects:"))
		tw := table(w)
		for _, pr := range c.Projects {
			fmt.Fprintf(tw, "  %s\t%s\n", pr.ShortName, pr.Name)
		}
		tw.Flush()

		if len(c.Fields) > 0 {
			fmt.Fprintln(w, p.faint("Fields:"))
			tw = table(w)
			for _, f := range c.Fields {
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", f.Name, f.Type, strings.Join(f.Values, ", "))
			}
			tw.Flush()
		}

		tags := make([]string, 0, len(c.Tags))
		for _, t := range c.Tags {
			tags = append(tags, t.Name)
		}
		fmt.Fprintf(w, "%s %s\n", p.faint("Tags:"), strings.Join(tags, ", "))
		types := make([]string, 0, len(c.LinkTypes))
		for _, lt := range c.LinkTypes {
			types = append(types, lt.Name)
		}
		fmt.Fprintf(w, "%s %s\n", p.faint("Link types:"), strings.Join(types, ", "))

		if len(c.Issues) > 0 {
			fmt.Fprintln(w, p.faint("Issues:"))
			tw = table(w)
			for _, i := range c.Issues {
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", issueKey(i), p.state(i.State), i.Title)
			}
			tw.Flush()
		}
	})
}
