package cusp

import (
	"context"
	"net/http"
	"strconv"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/models"
	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/upload"
)

type CourseForm struct {
	Title       string
	Description string
	Thumbnail   *upload.Attachment
}

func (f CourseForm) fields() map[string]string {
	return map[string]string{
		"title":       f.Title,
		"description": f.Description,
	}
}

func (f CourseForm) attachments() []*upload.Attachment {
	if f.Thumbnail == nil {
		return nil
	}
	thumb := *f.Thumbnail
	thumb.Field = "thumbnail"
	return []*upload.Attachment{&thumb}
}

func (c *Client) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.getList(ctx, "/course", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *Client) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	var course models.Course
	if err := c.getJSON(ctx, "/course/"+strconv.FormatInt(id, 10), &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateCourse returns the created record; the cascade needs the assigned id
// to parent its lessons.
func (c *Client) CreateCourse(ctx context.Context, form CourseForm) (*models.Course, error) {
	var course models.Course
	if err := c.sendForm(ctx, http.MethodPost, "/course", form.fields(), form.attachments(), &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) UpdateCourse(ctx context.Context, id int64, form CourseForm) error {
	return c.sendForm(ctx, http.MethodPatch, "/course/"+strconv.FormatInt(id, 10), form.fields(), form.attachments(), nil)
}

func (c *Client) DeleteCourse(ctx context.Context, id int64) error {
	return c.deleteJSON(ctx, "/course/"+strconv.FormatInt(id, 10))
}
