package cusp

import (
	"context"
	"net/http"
	"strconv"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/models"
	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/upload"
)

// TopicForm carries a presentation file upload under the ppt field.
type TopicForm struct {
	LessonID int64
	Title    string
	PPT      *upload.Attachment
}

func (f TopicForm) fields() map[string]string {
	return map[string]string{
		"lesson_id": strconv.FormatInt(f.LessonID, 10),
		"title":     f.Title,
	}
}

func (f TopicForm) attachments() []*upload.Attachment {
	if f.PPT == nil {
		return nil
	}
	ppt := *f.PPT
	ppt.Field = "ppt"
	return []*upload.Attachment{&ppt}
}

func (c *Client) ListTopics(ctx context.Context) ([]models.Topic, error) {
	var topics []models.Topic
	if err := c.getList(ctx, "/topic", &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

func (c *Client) GetTopic(ctx context.Context, id int64) (*models.Topic, error) {
	var topic models.Topic
	if err := c.getJSON(ctx, "/topic/"+strconv.FormatInt(id, 10), &topic); err != nil {
		return nil, err
	}
	return &topic, nil
}

func (c *Client) CreateTopic(ctx context.Context, form TopicForm) (*models.Topic, error) {
	var topic models.Topic
	if err := c.sendForm(ctx, http.MethodPost, "/topic", form.fields(), form.attachments(), &topic); err != nil {
		return nil, err
	}
	return &topic, nil
}

func (c *Client) UpdateTopic(ctx context.Context, id int64, form TopicForm) error {
	return c.sendForm(ctx, http.MethodPatch, "/topic/"+strconv.FormatInt(id, 10), form.fields(), form.attachments(), nil)
}

func (c *Client) DeleteTopic(ctx context.Context, id int64) error {
	return c.deleteJSON(ctx, "/topic/"+strconv.FormatInt(id, 10))
}
