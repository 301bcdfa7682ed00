package controller

import (
	"context"

	"github.com/google/uuid"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/cusp"
	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/upload"
)

// CascadePlan is a course with its nested lessons and topics, created in
// dependency order: the course first, then each lesson referencing the new
// course id, then each topic referencing its new lesson id.
type CascadePlan struct {
	Course  cusp.CourseForm
	Lessons []CascadeLesson
}

type CascadeLesson struct {
	Title  string
	Topics []CascadeTopic
}

type CascadeTopic struct {
	Title string
	PPT   *upload.Attachment
}

const (
	StepCourse = "course"
	StepLesson = "lesson"
	StepTopic  = "topic"
)

// StepResult records the outcome of one creation call. The run is not
// transactional: a recorded failure rolls nothing back.
type StepResult struct {
	StepID string `json:"step_id"`
	Kind   string `json:"kind"`
	Title  string `json:"title"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

// CascadeRunner executes course creation plans against the backend, reporting
// per-step notifications as it goes.
type CascadeRunner struct {
	client *cusp.Client
	notify Notifier
}

func NewCascadeRunner(client *cusp.Client, notify Notifier) *CascadeRunner {
	if notify == nil {
		notify = LogNotifier{}
	}
	return &CascadeRunner{client: client, notify: notify}
}

// Run issues 1 + N + N·M creation calls for a plan with N lessons carrying M
// topics each, in course then lesson then topic order. A failed course aborts
// the run; a failed lesson skips only its own topics; a failed topic stops
// nothing else.
func (r *CascadeRunner) Run(ctx context.Context, plan CascadePlan) []StepResult {
	results := make([]StepResult, 0, 1+len(plan.Lessons))

	course, err := r.client.CreateCourse(ctx, plan.Course)
	results = append(results, r.step(StepCourse, plan.Course.Title, err))
	if err != nil {
		return results
	}

	for _, lessonPlan := range plan.Lessons {
		lesson, err := r.client.CreateLesson(ctx, cusp.LessonInput{
			CourseID: course.ID,
			Title:    lessonPlan.Title,
		})
		results = append(results, r.step(StepLesson, lessonPlan.Title, err))
		if err != nil {
			continue
		}
		for _, topicPlan := range lessonPlan.Topics {
			_, err := r.client.CreateTopic(ctx, cusp.TopicForm{
				LessonID: lesson.ID,
				Title:    topicPlan.Title,
				PPT:      topicPlan.PPT,
			})
			results = append(results, r.step(StepTopic, topicPlan.Title, err))
		}
	}
	return results
}

func (r *CascadeRunner) step(kind, title string, err error) StepResult {
	result := StepResult{
		StepID: uuid.NewString(),
		Kind:   kind,
		Title:  title,
		OK:     err == nil,
	}
	if err != nil {
		result.Error = err.Error()
		r.notify.Error("Failed to create " + kind + " \"" + title + "\"")
	} else {
		r.notify.Success(title + " " + kind + " created")
	}
	return result
}
