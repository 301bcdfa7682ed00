package cusp

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/models"
	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/upload"
)

// EventForm is the edit-surface shape for an event. The image travels as the
// multipart field event_image; the remaining fields go over as plain values.
type EventForm struct {
	Title       string
	Description string
	Date        string
	Time        string
	Location    string
	LocationURL string
	EventLink   string
	EventTags   []string
	Image       *upload.Attachment
}

func (f EventForm) fields() map[string]string {
	return map[string]string{
		"title":        f.Title,
		"description":  f.Description,
		"date":         f.Date,
		"time":         f.Time,
		"location":     f.Location,
		"location_url": f.LocationURL,
		"event_link":   f.EventLink,
		"event_tags":   strings.Join(f.EventTags, ","),
	}
}

func (f EventForm) attachments() []*upload.Attachment {
	if f.Image == nil {
		return nil
	}
	image := *f.Image
	image.Field = "event_image"
	return []*upload.Attachment{&image}
}

// EventFormFromRecord maps a fetched event onto the edit surface. The stored
// image reference is not re-uploaded; an absent attachment leaves it alone.
func EventFormFromRecord(event models.Event) EventForm {
	return EventForm{
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date,
		Time:        event.Time,
		Location:    event.Location,
		LocationURL: event.LocationURL,
		EventLink:   event.EventLink,
		EventTags:   event.EventTags,
	}
}

func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := c.getList(ctx, "/event", &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	var event models.Event
	if err := c.getJSON(ctx, "/event/"+strconv.FormatInt(id, 10), &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) CreateEvent(ctx context.Context, form EventForm) error {
	return c.sendForm(ctx, http.MethodPost, "/event", form.fields(), form.attachments(), nil)
}

func (c *Client) UpdateEvent(ctx context.Context, id int64, form EventForm) error {
	return c.sendForm(ctx, http.MethodPatch, "/event/"+strconv.FormatInt(id, 10), form.fields(), form.attachments(), nil)
}

func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	return c.deleteJSON(ctx, "/event/"+strconv.FormatInt(id, 10))
}
