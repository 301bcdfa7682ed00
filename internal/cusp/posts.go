package cusp

import (
	"context"
	"strconv"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/models"
)

// Posts are backend-owned content; the panel reads and deletes, never writes.

func (c *Client) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.getList(ctx, "/post/", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	if err := c.getJSON(ctx, "/post/"+strconv.FormatInt(id, 10), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) DeletePost(ctx context.Context, id int64) error {
	return c.deleteJSON(ctx, "/post/"+strconv.FormatInt(id, 10))
}
