package cusp

import (
	"context"
	"net/http"
	"strconv"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/models"
)

type TagInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c *Client) ListTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := c.getList(ctx, "/tags/", &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (c *Client) GetTag(ctx context.Context, id int64) (*models.Tag, error) {
	var tag models.Tag
	if err := c.getJSON(ctx, "/tags/"+strconv.FormatInt(id, 10), &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// CreateTag posts to the singular /tag path; every other tag operation lives
// under /tags. The asymmetry is the backend's, declared only here.
func (c *Client) CreateTag(ctx context.Context, input TagInput) error {
	return c.sendJSON(ctx, http.MethodPost, "/tag", input, nil)
}

func (c *Client) UpdateTag(ctx context.Context, id int64, input TagInput) error {
	return c.sendJSON(ctx, http.MethodPatch, "/tags/"+strconv.FormatInt(id, 10), input, nil)
}

func (c *Client) DeleteTag(ctx context.Context, id int64) error {
	return c.deleteJSON(ctx, "/tags/"+strconv.FormatInt(id, 10))
}
