package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/config"
	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/controller"
	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/cusp"
	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/metrics"
	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/models"
	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/session"
)

// Server hosts the admin panel API: one long-lived controller per resource
// page, all sharing a single authenticated CUSP client and the session guard.
type Server struct {
	Config   config.Config
	Client   *cusp.Client
	Guard    *session.Guard
	Store    *session.Store
	Recorder *metrics.Recorder

	toasts *toastLog

	tags        *controller.Controller[models.Tag, cusp.TagInput]
	users       *controller.Controller[models.User, struct{}]
	posts       *controller.Controller[models.Post, struct{}]
	events      *controller.Controller[models.Event, cusp.EventForm]
	directories *controller.Controller[models.Directory, cusp.DirectoryForm]
	tools       *controller.Controller[models.Tool, cusp.ToolForm]
	courses     *controller.Controller[models.Course, cusp.CourseForm]
	lessons     *controller.Controller[models.Lesson, cusp.LessonInput]
	topics      *controller.Controller[models.Topic, cusp.TopicForm]
	reports     *controller.ReportBoard
	cascade     *controller.CascadeRunner
}

func NewServer(cfg config.Config, client *cusp.Client, guard *session.Guard, store *session.Store, recorder *metrics.Recorder) *Server {
	s := &Server{
		Config:   cfg,
		Client:   client,
		Guard:    guard,
		Store:    store,
		Recorder: recorder,
		toasts:   &toastLog{},
	}

	s.tags = controller.New(controller.Descriptor[models.Tag, cusp.TagInput]{
		Name:   "tag",
		ID:     func(t models.Tag) int64 { return t.ID },
		Label:  func(t models.Tag) string { return t.Name },
		Search: func(t models.Tag) []string { return []string{t.Name, t.Description} },
		List:   client.ListTags,
		Get:    client.GetTag,
		Create: client.CreateTag,
		Update: client.UpdateTag,
		Delete: client.DeleteTag,
	}, s.toasts)

	s.users = controller.New(controller.Descriptor[models.User, struct{}]{
		Name:   "user",
		ID:     func(u models.User) int64 { return u.ID },
		Label:  func(u models.User) string { return u.Username },
		Search: func(u models.User) []string { return []string{u.Username, u.Email} },
		List:   client.ListUsers,
		Get:    client.GetUser,
		Delete: client.DeleteUser,
	}, s.toasts)

	s.posts = controller.New(controller.Descriptor[models.Post, struct{}]{
		Name:   "post",
		ID:     func(p models.Post) int64 { return p.ID },
		Label:  func(p models.Post) string { return p.Title },
		Search: func(p models.Post) []string { return []string{p.Title, p.Username} },
		List:   client.ListPosts,
		Get:    client.GetPost,
		Delete: client.DeletePost,
	}, s.toasts)

	s.events = controller.New(controller.Descriptor[models.Event, cusp.EventForm]{
		Name:   "event",
		ID:     func(e models.Event) int64 { return e.ID },
		Label:  func(e models.Event) string { return e.Title },
		Search: func(e models.Event) []string { return []string{e.Title, e.Location} },
		List:   client.ListEvents,
		Get:    client.GetEvent,
		Create: client.CreateEvent,
		Update: client.UpdateEvent,
		Delete: client.DeleteEvent,
	}, s.toasts)

	s.directories = controller.New(controller.Descriptor[models.Directory, cusp.DirectoryForm]{
		Name:   "directory",
		ID:     func(d models.Directory) int64 { return d.ID },
		Label:  func(d models.Directory) string { return d.PlaceName },
		Search: func(d models.Directory) []string { return []string{d.PlaceName, d.Location} },
		List:   client.ListDirectories,
		Get:    client.GetDirectory,
		Create: client.CreateDirectory,
		Update: client.UpdateDirectory,
		Delete: client.DeleteDirectory,
	}, s.toasts)

	s.tools = controller.New(controller.Descriptor[models.Tool, cusp.ToolForm]{
		Name:   "tool",
		ID:     func(t models.Tool) int64 { return t.ID },
		Label:  func(t models.Tool) string { return t.Title },
		Search: func(t models.Tool) []string { return []string{t.Title, t.Description} },
		List:   client.ListTools,
		Get:    client.GetTool,
		Create: client.CreateTool,
		Update: client.UpdateTool,
		Delete: client.DeleteTool,
	}, s.toasts)

	s.courses = controller.New(controller.Descriptor[models.Course, cusp.CourseForm]{
		Name:   "course",
		ID:     func(c models.Course) int64 { return c.ID },
		Label:  func(c models.Course) string { return c.Title },
		Search: func(c models.Course) []string { return []string{c.Title, c.Description} },
		List:   client.ListCourses,
		Create: func(ctx context.Context, form cusp.CourseForm) error {
			_, err := client.CreateCourse(ctx, form)
			return err
		},
		Update: client.UpdateCourse,
		Delete: client.DeleteCourse,
	}, s.toasts)

	s.lessons = controller.New(controller.Descriptor[models.Lesson, cusp.LessonInput]{
		Name:   "lesson",
		ID:     func(l models.Lesson) int64 { return l.ID },
		Label:  func(l models.Lesson) string { return l.Title },
		Search: func(l models.Lesson) []string { return []string{l.Title} },
		List:   client.ListLessons,
		Create: func(ctx context.Context, input cusp.LessonInput) error {
			_, err := client.CreateLesson(ctx, input)
			return err
		},
		Update: client.UpdateLesson,
		Delete: client.DeleteLesson,
	}, s.toasts)

	s.topics = controller.New(controller.Descriptor[models.Topic, cusp.TopicForm]{
		Name:   "topic",
		ID:     func(t models.Topic) int64 { return t.ID },
		Label:  func(t models.Topic) string { return t.Title },
		Search: func(t models.Topic) []string { return []string{t.Title} },
		List:   client.ListTopics,
		Create: func(ctx context.Context, form cusp.TopicForm) error {
			_, err := client.CreateTopic(ctx, form)
			return err
		},
		Update: client.UpdateTopic,
		Delete: client.DeleteTopic,
	}, s.toasts)

	s.reports = controller.NewReportBoard(client, s.toasts)
	s.cascade = controller.NewCascadeRunner(client, s.toasts)
	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/session", s.SessionState)
		api.Post("/session", s.SignIn)
		api.Delete("/session", s.SignOut)

		api.Group(func(authed chi.Router) {
			authed.Use(s.RequireSession)

			authed.Get("/summary", s.Summary)
			authed.Get("/metrics", s.Metrics)
			authed.Get("/toasts", s.Toasts)
			authed.Get("/assets", s.ResolveAsset)
			authed.Post("/uploads/preview", s.PreviewUpload)

			authed.Route("/tags", func(tags chi.Router) {
				tags.Get("/", s.ListTags)
				tags.Get("/{id}", s.GetTag)
				tags.Post("/", s.CreateTag)
				tags.Patch("/{id}", s.UpdateTag)
				tags.Delete("/{id}", s.DeleteTag)
			})

			authed.Route("/users", func(users chi.Router) {
				users.Get("/", s.ListUsers)
				users.Get("/{id}", s.GetUser)
				users.Patch("/{id}", s.UpdateUser)
				users.Delete("/{id}", s.DeleteUser)
			})

			authed.Route("/posts", func(posts chi.Router) {
				posts.Get("/", s.ListPosts)
				posts.Get("/{id}", s.GetPost)
				posts.Delete("/{id}", s.DeletePost)
			})

			authed.Route("/events", func(events chi.Router) {
				events.Get("/", s.ListEvents)
				events.Get("/{id}", s.GetEvent)
				events.Get("/{id}/form", s.EventEditForm)
				events.Post("/", s.CreateEvent)
				events.Patch("/{id}", s.UpdateEvent)
				events.Delete("/{id}", s.DeleteEvent)
			})

			authed.Route("/directories", func(dirs chi.Router) {
				dirs.Get("/", s.ListDirectories)
				dirs.Get("/{id}", s.GetDirectory)
				dirs.Get("/{id}/form", s.DirectoryEditForm)
				dirs.Post("/", s.CreateDirectory)
				dirs.Patch("/{id}", s.UpdateDirectory)
				dirs.Delete("/{id}", s.DeleteDirectory)
			})

			authed.Route("/tools", func(tools chi.Router) {
				tools.Get("/", s.ListTools)
				tools.Get("/{id}", s.GetTool)
				tools.Get("/{id}/form", s.ToolEditForm)
				tools.Post("/", s.CreateTool)
				tools.Patch("/{id}", s.UpdateTool)
				tools.Delete("/{id}", s.DeleteTool)
			})

			authed.Route("/courses", func(courses chi.Router) {
				courses.Get("/", s.ListCourses)
				courses.Get("/{id}", s.GetCourse)
				courses.Post("/", s.CreateCourse)
				courses.Post("/cascade", s.RunCourseCascade)
				courses.Patch("/{id}", s.UpdateCourse)
				courses.Delete("/{id}", s.DeleteCourse)
			})

			authed.Route("/lessons", func(lessons chi.Router) {
				lessons.Get("/", s.ListLessons)
				lessons.Get("/{id}", s.GetLesson)
				lessons.Post("/", s.CreateLesson)
				lessons.Patch("/{id}", s.UpdateLesson)
				lessons.Delete("/{id}", s.DeleteLesson)
			})

			authed.Route("/topics", func(topics chi.Router) {
				topics.Get("/", s.ListTopics)
				topics.Get("/{id}", s.GetTopic)
				topics.Post("/", s.CreateTopic)
				topics.Patch("/{id}", s.UpdateTopic)
				topics.Delete("/{id}", s.DeleteTopic)
			})

			authed.Route("/reports", func(reports chi.Router) {
				reports.Get("/", s.ListReports)
				reports.Get("/{id}", s.ReportDetail)
				reports.Post("/{id}/resolve", s.ResolveReport)
			})
		})
	})
	return r
}
