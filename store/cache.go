// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package store

import (
	"context"
	"time"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/robfig/cron/v3"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/tracker"
)

// TrackerCache is a snapshot of slow-changing tracker metadata.
type TrackerCache struct {
	Backend       string                          `json:"backend"`
	Projects      []*model.Project                `json:"projects"`
	ProjectFields map[string][]*model.CustomField `json:"project_fields"`
	Tags          []*model.Tag                    `json:"tags"`
	LinkTypes     []*model.LinkType               `json:"link_types"`
	UpdatedAt     time.Time                       `json:"updated_at"`
}

// IsStale reports whether the refresh schedule fired since the snapshot was
// taken. Schedules use cron syntax or descriptors such as "@every 1h".
func (c *TrackerCache) IsStale(schedule string, now time.Time) (bool, error) {
	if c == nil || c.UpdatedAt.IsZero() {
		return true, nil
	}
	sched, err := cron.ParseStandard(schedule)
	if err != nil {
		return false, model.NewInvalidInput("cache.refresh_schedule", err.Error())
	}
	return !now.Before(sched.Next(c.UpdatedAt)), nil
}

// Project finds a cached project by short name or id.
func (c *TrackerCache) Project(identifier string) *model.Project {
	if c == nil {
		return nil
	}
	return model.FindProject(c.Projects, identifier)
}

type FileCacheStore struct {
	jsonFile
}

func (s *FileCacheStore) Get() (*TrackerCache, error) {
	var c TrackerCache
	found, err := s.read(&c)
	if err != nil || !found {
		return nil, err
	}
	return &c, nil
}

func (s *FileCacheStore) Save(cache *TrackerCache) error {
	return s.write(cache)
}

func (s *FileCacheStore) Clear() error {
	return s.remove()
}

// Refresh rebuilds the cache from b. Metadata the backend does not support
// is left empty; any other failure aborts the refresh.
func Refresh(ctx context.Context, b tracker.Backend, now time.Time) (*TrackerCache, error) {
	projects, err := b.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	c := &TrackerCache{
		Backend:       b.Name(),
		Projects:      projects,
		ProjectFields: map[string][]*model.CustomField{},
		Tags:          []*model.Tag{},
		LinkTypes:     []*model.LinkType{},
		UpdatedAt:     now.UTC(),
	}

	for _, p := range projects {
		fields, err := b.GetProjectCustomFields(ctx, p.ID)
		if model.IsKind(err, model.KindUnsupported) {
			break
		}
		if err != nil {
			return nil, err
		}
		c.ProjectFields[p.ID] = fields
	}

	tags, err := b.ListTags(ctx)
	switch {
	case model.IsKind(err, model.KindUnsupported):
	case err != nil:
		return nil, err
	default:
		c.Tags = tags
	}

	types, err := b.ListLinkTypes(ctx)
	switch {
	case model.IsKind(err, model.KindUnsupported):
	case err != nil:
		return nil, err
	default:
		c.LinkTypes = types
	}

	mlog.Debug("Refreshed tracker cache",
		mlog.String("backend", c.Backend),
		mlog.Int("projects", len(c.Projects)),
		mlog.Int("tags", len(c.Tags)),
	)
	return c, nil
}
