package cusp

import (
	"context"
	"net/http"
	"strconv"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/models"
)

// The backend spells the lesson collection "lession"; preserved here and
// nowhere else.
const lessonPath = "/lession"

type LessonInput struct {
	CourseID int64  `json:"course_id"`
	Title    string `json:"title"`
}

func (c *Client) ListLessons(ctx context.Context) ([]models.Lesson, error) {
	var lessons []models.Lesson
	if err := c.getList(ctx, lessonPath, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (c *Client) GetLesson(ctx context.Context, id int64) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := c.getJSON(ctx, lessonPath+"/"+strconv.FormatInt(id, 10), &lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

// CreateLesson returns the created record; the cascade needs the assigned id
// to parent its topics.
func (c *Client) CreateLesson(ctx context.Context, input LessonInput) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := c.sendJSON(ctx, http.MethodPost, lessonPath, input, &lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (c *Client) UpdateLesson(ctx context.Context, id int64, input LessonInput) error {
	return c.sendJSON(ctx, http.MethodPatch, lessonPath+"/"+strconv.FormatInt(id, 10), input, nil)
}

func (c *Client) DeleteLesson(ctx context.Context, id int64) error {
	return c.deleteJSON(ctx, lessonPath+"/"+strconv.FormatInt(id, 10))
}
