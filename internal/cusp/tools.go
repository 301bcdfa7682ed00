package cusp

import (
	"context"
	"net/http"
	"strconv"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/models"
	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/upload"
)

// ToolForm is the edit-surface shape for a tool. Reads expose the image as
// img_url; writes submit the captured file under the same name.
type ToolForm struct {
	Title       string
	Description string
	Link        string
	Image       *upload.Attachment
}

func (f ToolForm) fields() map[string]string {
	return map[string]string{
		"title":       f.Title,
		"description": f.Description,
		"link":        f.Link,
	}
}

func (f ToolForm) attachments() []*upload.Attachment {
	if f.Image == nil {
		return nil
	}
	image := *f.Image
	image.Field = "img_url"
	return []*upload.Attachment{&image}
}

func ToolFormFromRecord(tool models.Tool) ToolForm {
	return ToolForm{
		Title:       tool.Title,
		Description: tool.Description,
		Link:        tool.Link,
	}
}

func (c *Client) ListTools(ctx context.Context) ([]models.Tool, error) {
	var tools []models.Tool
	if err := c.getList(ctx, "/tools", &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

func (c *Client) GetTool(ctx context.Context, id int64) (*models.Tool, error) {
	var tool models.Tool
	if err := c.getJSON(ctx, "/tools/"+strconv.FormatInt(id, 10), &tool); err != nil {
		return nil, err
	}
	return &tool, nil
}

func (c *Client) CreateTool(ctx context.Context, form ToolForm) error {
	return c.sendForm(ctx, http.MethodPost, "/tools", form.fields(), form.attachments(), nil)
}

func (c *Client) UpdateTool(ctx context.Context, id int64, form ToolForm) error {
	return c.sendForm(ctx, http.MethodPatch, "/tools/"+strconv.FormatInt(id, 10), form.fields(), form.attachments(), nil)
}

func (c *Client) DeleteTool(ctx context.Context, id int64) error {
	return c.deleteJSON(ctx, "/tools/"+strconv.FormatInt(id, 10))
}
