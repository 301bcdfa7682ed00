package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/cusp"
)

// Tags travel as JSON; the media-bearing resources arrive as multipart forms
// with the same field names the panel screens use.

func (s *Server) ListTags(w http.ResponseWriter, r *http.Request) { handleList(s.tags, w, r) }
func (s *Server) GetTag(w http.ResponseWriter, r *http.Request)  { handleGet(s.tags, w, r) }

func (s *Server) CreateTag(w http.ResponseWriter, r *http.Request) {
	var input cusp.TagInput
	if !decodeBody(w, r, &input) {
		return
	}
	if strings.TrimSpace(input.Name) == "" {
		WriteError(w, http.StatusBadRequest, "Tag name is required")
		return
	}
	handleSave(s.tags, w, r, 0, input)
}

func (s *Server) UpdateTag(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var input cusp.TagInput
	if !decodeBody(w, r, &input) {
		return
	}
	handleSave(s.tags, w, r, id, input)
}

func (s *Server) DeleteTag(w http.ResponseWriter, r *http.Request) { handleDelete(s.tags, w, r) }

func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) { handleList(s.users, w, r) }
func (s *Server) GetUser(w http.ResponseWriter, r *http.Request)   { handleGet(s.users, w, r) }

// UpdateUser exists only to answer the method explicitly: the member screen
// is read and delete only, profile edits stay with the member apps.
func (s *Server) UpdateUser(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusMethodNotAllowed, "User editing is not supported")
}

func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) { handleDelete(s.users, w, r) }

func (s *Server) ListPosts(w http.ResponseWriter, r *http.Request)  { handleList(s.posts, w, r) }
func (s *Server) GetPost(w http.ResponseWriter, r *http.Request)    { handleGet(s.posts, w, r) }
func (s *Server) DeletePost(w http.ResponseWriter, r *http.Request) { handleDelete(s.posts, w, r) }

func (s *Server) eventForm(w http.ResponseWriter, r *http.Request) (cusp.EventForm, bool) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid multipart form")
		return cusp.EventForm{}, false
	}
	image, err := formAttachment(r, "image")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid image upload")
		return cusp.EventForm{}, false
	}
	form := cusp.EventForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Date:        r.FormValue("date"),
		Time:        r.FormValue("time"),
		Location:    r.FormValue("location"),
		LocationURL: r.FormValue("location_url"),
		EventLink:   r.FormValue("event_link"),
		EventTags:   splitTags(r.Form["event_tags"]),
		Image:       image,
	}
	return form, true
}

// splitTags accepts both repeated fields and a single comma separated value.
func splitTags(values []string) []string {
	var tags []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				tags = append(tags, part)
			}
		}
	}
	return tags
}

func (s *Server) ListEvents(w http.ResponseWriter, r *http.Request) { handleList(s.events, w, r) }
func (s *Server) GetEvent(w http.ResponseWriter, r *http.Request)   { handleGet(s.events, w, r) }

func (s *Server) CreateEvent(w http.ResponseWriter, r *http.Request) {
	form, ok := s.eventForm(w, r)
	if !ok {
		return
	}
	handleSave(s.events, w, r, 0, form)
}

// EventEditForm answers the edit surface for an event: the stored record
// mapped onto submit-side field names, with no attachment (the stored image
// reference is kept unless a new upload replaces it).
func (s *Server) EventEditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	event, err := s.Client.GetEvent(r.Context(), id)
	if err != nil {
		mapFailure(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, cusp.EventFormFromRecord(*event))
}

func (s *Server) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	form, ok := s.eventForm(w, r)
	if !ok {
		return
	}
	handleSave(s.events, w, r, id, form)
}

func (s *Server) DeleteEvent(w http.ResponseWriter, r *http.Request) { handleDelete(s.events, w, r) }

func (s *Server) directoryForm(w http.ResponseWriter, r *http.Request) (cusp.DirectoryForm, bool) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid multipart form")
		return cusp.DirectoryForm{}, false
	}
	image, err := formAttachment(r, "image")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid image upload")
		return cusp.DirectoryForm{}, false
	}
	form := cusp.DirectoryForm{
		PlaceName:     r.FormValue("place_name"),
		PlaceLocation: r.FormValue("place_location"),
		LocationURL:   r.FormValue("location_url"),
		PersonName:    r.FormValue("person_name"),
		PersonEmail:   r.FormValue("person_email"),
		Image:         image,
	}
	if status := r.FormValue("status"); status != "" {
		form.Status = &status
	}
	return form, true
}

func (s *Server) ListDirectories(w http.ResponseWriter, r *http.Request) {
	handleList(s.directories, w, r)
}

func (s *Server) GetDirectory(w http.ResponseWriter, r *http.Request) {
	handleGet(s.directories, w, r)
}

func (s *Server) CreateDirectory(w http.ResponseWriter, r *http.Request) {
	form, ok := s.directoryForm(w, r)
	if !ok {
		return
	}
	handleSave(s.directories, w, r, 0, form)
}

// DirectoryEditForm maps the API dialect (location, p_name, p_email) back
// onto the edit surface for prefill.
func (s *Server) DirectoryEditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	dir, err := s.Client.GetDirectory(r.Context(), id)
	if err != nil {
		mapFailure(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, cusp.DirectoryFormFromRecord(*dir))
}

func (s *Server) UpdateDirectory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	form, ok := s.directoryForm(w, r)
	if !ok {
		return
	}
	handleSave(s.directories, w, r, id, form)
}

func (s *Server) DeleteDirectory(w http.ResponseWriter, r *http.Request) {
	handleDelete(s.directories, w, r)
}

func (s *Server) toolForm(w http.ResponseWriter, r *http.Request) (cusp.ToolForm, bool) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid multipart form")
		return cusp.ToolForm{}, false
	}
	image, err := formAttachment(r, "image")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid image upload")
		return cusp.ToolForm{}, false
	}
	form := cusp.ToolForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Link:        r.FormValue("link"),
		Image:       image,
	}
	return form, true
}

func (s *Server) ListTools(w http.ResponseWriter, r *http.Request) { handleList(s.tools, w, r) }
func (s *Server) GetTool(w http.ResponseWriter, r *http.Request)   { handleGet(s.tools, w, r) }

func (s *Server) CreateTool(w http.ResponseWriter, r *http.Request) {
	form, ok := s.toolForm(w, r)
	if !ok {
		return
	}
	handleSave(s.tools, w, r, 0, form)
}

func (s *Server) ToolEditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	tool, err := s.Client.GetTool(r.Context(), id)
	if err != nil {
		mapFailure(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, cusp.ToolFormFromRecord(*tool))
}

func (s *Server) UpdateTool(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	form, ok := s.toolForm(w, r)
	if !ok {
		return
	}
	handleSave(s.tools, w, r, id, form)
}

func (s *Server) DeleteTool(w http.ResponseWriter, r *http.Request) { handleDelete(s.tools, w, r) }

func (s *Server) courseForm(w http.ResponseWriter, r *http.Request) (cusp.CourseForm, bool) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid multipart form")
		return cusp.CourseForm{}, false
	}
	thumbnail, err := formAttachment(r, "thumbnail")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid thumbnail upload")
		return cusp.CourseForm{}, false
	}
	form := cusp.CourseForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Thumbnail:   thumbnail,
	}
	return form, true
}

func (s *Server) ListCourses(w http.ResponseWriter, r *http.Request) { handleList(s.courses, w, r) }

func (s *Server) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	course, err := s.Client.GetCourse(r.Context(), id)
	if err != nil {
		mapFailure(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, course)
}

func (s *Server) CreateCourse(w http.ResponseWriter, r *http.Request) {
	form, ok := s.courseForm(w, r)
	if !ok {
		return
	}
	handleSave(s.courses, w, r, 0, form)
}

func (s *Server) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	form, ok := s.courseForm(w, r)
	if !ok {
		return
	}
	handleSave(s.courses, w, r, id, form)
}

func (s *Server) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	handleDelete(s.courses, w, r)
}

func (s *Server) ListLessons(w http.ResponseWriter, r *http.Request) { handleList(s.lessons, w, r) }

func (s *Server) GetLesson(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	lesson, err := s.Client.GetLesson(r.Context(), id)
	if err != nil {
		mapFailure(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, lesson)
}

func (s *Server) CreateLesson(w http.ResponseWriter, r *http.Request) {
	var input cusp.LessonInput
	if !decodeBody(w, r, &input) {
		return
	}
	if input.CourseID <= 0 {
		WriteError(w, http.StatusBadRequest, "A lesson needs a course")
		return
	}
	handleSave(s.lessons, w, r, 0, input)
}

func (s *Server) UpdateLesson(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var input cusp.LessonInput
	if !decodeBody(w, r, &input) {
		return
	}
	handleSave(s.lessons, w, r, id, input)
}

func (s *Server) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	handleDelete(s.lessons, w, r)
}

func (s *Server) topicForm(w http.ResponseWriter, r *http.Request) (cusp.TopicForm, bool) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid multipart form")
		return cusp.TopicForm{}, false
	}
	ppt, err := formAttachment(r, "ppt")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ppt upload")
		return cusp.TopicForm{}, false
	}
	lessonID, _ := strconv.ParseInt(r.FormValue("lesson_id"), 10, 64)
	form := cusp.TopicForm{
		LessonID: lessonID,
		Title:    r.FormValue("title"),
		PPT:      ppt,
	}
	return form, true
}

func (s *Server) ListTopics(w http.ResponseWriter, r *http.Request) { handleList(s.topics, w, r) }

func (s *Server) GetTopic(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	topic, err := s.Client.GetTopic(r.Context(), id)
	if err != nil {
		mapFailure(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, topic)
}

func (s *Server) CreateTopic(w http.ResponseWriter, r *http.Request) {
	form, ok := s.topicForm(w, r)
	if !ok {
		return
	}
	if form.LessonID <= 0 {
		WriteError(w, http.StatusBadRequest, "A topic needs a lesson")
		return
	}
	handleSave(s.topics, w, r, 0, form)
}

func (s *Server) UpdateTopic(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	form, ok := s.topicForm(w, r)
	if !ok {
		return
	}
	handleSave(s.topics, w, r, id, form)
}

func (s *Server) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	handleDelete(s.topics, w, r)
}
