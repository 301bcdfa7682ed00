package httpapi

import (
	"net/http"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/controller"
)

type ResolveRequest struct {
	Action string `json:"action"`
}

func (s *Server) ListReports(w http.ResponseWriter, r *http.Request) {
	if err := s.reports.Load(r.Context()); err != nil {
		mapFailure(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, s.reports.Visible(r.URL.Query().Get("q")))
}

func (s *Server) ReportDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	row, err := s.reports.Detail(r.Context(), id)
	if err != nil {
		mapFailure(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, row)
}

func (s *Server) ResolveReport(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req ResolveRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.reports.Resolve(r.Context(), id, req.Action); err != nil {
		mapFailure(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"msg": "Report resolved"})
}

// cascadeRequest is the multipart "plan" document. Topic PPT values name the
// file field carrying the upload so one request can ship many attachments.
type cascadeRequest struct {
	Course struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"course"`
	Lessons []struct {
		Title  string `json:"title"`
		Topics []struct {
			Title string `json:"title"`
			PPT   string `json:"ppt,omitempty"`
		} `json:"topics"`
	} `json:"lessons"`
}

type CascadeResponse struct {
	Steps []controller.StepResult `json:"steps"`
}

func (s *Server) RunCourseCascade(w http.ResponseWriter, r *http.Request) {
	plan, ok := s.cascadePlan(w, r)
	if !ok {
		return
	}
	steps := s.cascade.Run(r.Context(), *plan)
	WriteJSON(w, http.StatusOK, CascadeResponse{Steps: steps})
}

func (s *Server) cascadePlan(w http.ResponseWriter, r *http.Request) (*controller.CascadePlan, bool) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid multipart form")
		return nil, false
	}
	var req cascadeRequest
	if err := jsonUnmarshal(r.FormValue("plan"), &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid cascade plan")
		return nil, false
	}
	if req.Course.Title == "" {
		WriteError(w, http.StatusBadRequest, "Course title is required")
		return nil, false
	}

	plan := &controller.CascadePlan{}
	plan.Course.Title = req.Course.Title
	plan.Course.Description = req.Course.Description
	thumbnail, err := formAttachment(r, "thumbnail")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid thumbnail upload")
		return nil, false
	}
	plan.Course.Thumbnail = thumbnail

	for _, lesson := range req.Lessons {
		l := controller.CascadeLesson{Title: lesson.Title}
		for _, topic := range lesson.Topics {
			t := controller.CascadeTopic{Title: topic.Title}
			if topic.PPT != "" {
				ppt, err := formAttachment(r, topic.PPT)
				if err != nil {
					WriteError(w, http.StatusBadRequest, "Invalid ppt upload for topic "+topic.Title)
					return nil, false
				}
				t.PPT = ppt
			}
			l.Topics = append(l.Topics, t)
		}
		plan.Lessons = append(plan.Lessons, l)
	}
	return plan, true
}
