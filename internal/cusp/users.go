package cusp

import (
	"context"
	"strconv"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/models"
)

// Users expose read and delete only. The admin panel never persists user
// edits; the backend owns every profile mutation through its own flows.

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.getList(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, "/users/"+strconv.FormatInt(id, 10), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.deleteJSON(ctx, "/users/"+strconv.FormatInt(id, 10))
}
