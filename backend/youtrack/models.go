// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package youtrack

import (
	"time"
)

const (
	issueFields = "id,idReadable,summary,description,project(id,name,shortName)," +
		"customFields(name,$type,value(name,login,fullName,isResolved,text)),tags(id,name),created,updated,resolved," +
		"reporter(id,login,fullName,email)"
	projectFields     = "id,name,shortName,description,leader(login,fullName)"
	customFieldFields = "id,canBeEmpty,emptyFieldText,field(id,name,fieldType(id,presentation)),bundle(id,name,$type,values(name))"
	tagFields         = "id,name,color(id,background,foreground)"
	linkTypeFields    = "id,name,sourceToTarget,targetToSource,directed"
	linkFields        = "id,direction,linkType(" + linkTypeFields + "),issues(id,idReadable,summary)"
	commentFields     = "id,text,author(id,login,fullName),created,updated"
	userFields        = "id,login,fullName,email"
	articleFields     = "id,idReadable,summary,content,project(id,name,shortName),parentArticle(id,idReadable,summary)," +
		"hasChildren,tags(id,name),created,updated,reporter(id,login,fullName)"
	attachmentFields = "id,name,size,mimeType,url,created"
)

// Millis is a YouTrack timestamp, milliseconds since the epoch.
type Millis int64

func (m Millis) ptr() *time.Time {
	if m == 0 {
		return nil
	}
	t := time.UnixMilli(int64(m)).UTC()
	return &t
}

type user struct {
	ID       string `json:"id,omitempty"`
	Login    string `json:"login"`
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
}

type projectRef struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	ShortName string `json:"shortName,omitempty"`
}

type project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ShortName   string `json:"shortName"`
	Description string `json:"description"`
	Leader      *user  `json:"leader"`
}

type tagRef struct {
	Type string `json:"$type,omitempty"`
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type tagColor struct {
	ID         string `json:"id,omitempty"`
	Background string `json:"background,omitempty"`
	Foreground string `json:"foreground,omitempty"`
}

type issueTag struct {
	ID    string    `json:"id,omitempty"`
	Name  string    `json:"name"`
	Color *tagColor `json:"color,omitempty"`
}

// fieldValue is the union of the value shapes the issue field query asks
// for: enum and state values carry a name, users a login, text a text.
type fieldValue struct {
	Name       string `json:"name,omitempty"`
	Login      string `json:"login,omitempty"`
	FullName   string `json:"fullName,omitempty"`
	IsResolved bool   `json:"isResolved,omitempty"`
	Text       string `json:"text,omitempty"`
}

// issueField is a custom field as read from an issue. Value is a single
// object, an array for multi-value fields, or a scalar for simple fields.
type issueField struct {
	Type  string      `json:"$type"`
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

type issue struct {
	ID           string       `json:"id"`
	IDReadable   string       `json:"idReadable"`
	Summary      string       `json:"summary"`
	Description  string       `json:"description"`
	Project      *projectRef  `json:"project"`
	CustomFields []issueField `json:"customFields"`
	Tags         []issueTag   `json:"tags"`
	Reporter     *user        `json:"reporter"`
	Created      Millis       `json:"created"`
	Updated      Millis       `json:"updated"`
	Resolved     Millis       `json:"resolved"`
}

type fieldUpdate struct {
	Type  string      `json:"$type"`
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

type named struct {
	Name string `json:"name"`
}

type loginRef struct {
	Login string `json:"login"`
}

type idRef struct {
	ID string `json:"id"`
}

type writeIssue struct {
	Project      *idRef        `json:"project,omitempty"`
	Summary      *string       `json:"summary,omitempty"`
	Description  *string       `json:"description,omitempty"`
	CustomFields []fieldUpdate `json:"customFields,omitempty"`
	Tags         []tagRef      `json:"tags,omitempty"`
}

type fieldType struct {
	ID           string `json:"id"`
	Presentation string `json:"presentation"`
}

type fieldDef struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	FieldType *fieldType `json:"fieldType"`
}

type fieldBundle struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Type   string  `json:"$type"`
	Values []named `json:"values"`
}

type projectField struct {
	ID             string       `json:"id"`
	CanBeEmpty     bool         `json:"canBeEmpty"`
	EmptyFieldText string       `json:"emptyFieldText"`
	Field          *fieldDef    `json:"field"`
	Bundle         *fieldBundle `json:"bundle"`
}

type bundleRef struct {
	Type string `json:"$type"`
	ID   string `json:"id"`
}

type attachFieldRequest struct {
	Type           string     `json:"$type"`
	Field          idRef      `json:"field"`
	Bundle         *bundleRef `json:"bundle,omitempty"`
	CanBeEmpty     bool       `json:"canBeEmpty"`
	EmptyFieldText string     `json:"emptyFieldText,omitempty"`
}

type linkType struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	SourceToTarget string `json:"sourceToTarget"`
	TargetToSource string `json:"targetToSource"`
	Directed       bool   `json:"directed"`
}

type linkedIssue struct {
	ID         string `json:"id"`
	IDReadable string `json:"idReadable"`
	Summary    string `json:"summary"`
}

type issueLink struct {
	ID        string        `json:"id"`
	Direction string        `json:"direction"`
	LinkType  linkType      `json:"linkType"`
	Issues    []linkedIssue `json:"issues"`
}

type comment struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Author  *user  `json:"author"`
	Created Millis `json:"created"`
	Updated Millis `json:"updated"`
}

type articleRef struct {
	ID         string `json:"id"`
	IDReadable string `json:"idReadable,omitempty"`
	Summary    string `json:"summary,omitempty"`
}

type article struct {
	ID            string      `json:"id"`
	IDReadable    string      `json:"idReadable"`
	Summary       string      `json:"summary"`
	Content       string      `json:"content"`
	Project       *projectRef `json:"project"`
	ParentArticle *articleRef `json:"parentArticle"`
	HasChildren   bool        `json:"hasChildren"`
	Tags          []issueTag  `json:"tags"`
	Reporter      *user       `json:"reporter"`
	Created       Millis      `json:"created"`
	Updated       Millis      `json:"updated"`
}

type writeArticle struct {
	Project       *idRef  `json:"project,omitempty"`
	Summary       *string `json:"summary,omitempty"`
	Content       *string `json:"content,omitempty"`
	ParentArticle *idRef  `json:"parentArticle,omitempty"`
}

type attachment struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
	URL      string `json:"url"`
	Created  Millis `json:"created"`
}
