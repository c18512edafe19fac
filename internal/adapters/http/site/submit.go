package site

import (
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/okian/spithack/internal/domain/model"
	"github.com/okian/spithack/internal/domain/submission"
	"github.com/okian/spithack/internal/domain/validation"
)

// uploadMemory is how much of a multipart body is buffered in memory. File
// contents are never kept.
const uploadMemory = 8 << 20

type submitView struct {
	Form       *submission.Form
	Types      []submission.Type
	Categories [][2]string
	Verify     *submission.Result
	Errors     map[string]string
	Key        string
	Submitted  bool
	Receipt    string
}

func newSubmitView(f *submission.Form, key string) submitView {
	return submitView{
		Form:       f,
		Types:      submission.Types(),
		Categories: submission.CategoryOptions(),
		Key:        key,
	}
}

func (s *Site) handleSubmitPage(w http.ResponseWriter, r *http.Request) {
	f := submission.NewForm()
	if t := r.URL.Query().Get("type"); t != "" {
		f.SelectType(submission.ParseType(t))
	}
	s.render(w, r, "submit", "", http.StatusOK, page{
		Title: "Submit Project",
		Nav:   "submit",
		Body:  newSubmitView(f, uuid.NewString()),
	})
}

func (s *Site) handleSubmitPost(w http.ResponseWriter, r *http.Request) {
	v, err := s.readSubmitForm(w, r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var (
		note   *model.Notification
		status = http.StatusOK
	)

	verb, arg, _ := strings.Cut(r.PostFormValue("action"), ":")
	switch verb {
	case "type":
		t, terr := submission.LookupType(arg)
		if terr != nil {
			status = http.StatusBadRequest
			break
		}
		v.Form.SelectType(t)
	case "verify":
		res := s.deps.VerifyTeamCode(r.Context(), v.Form.TeamCode)
		v.Verify = &res
		note = &res.Notification
	case "submit":
		receipt, serr := s.deps.SubmitProject(r.Context(), v.Key, v.Form.Submission())
		switch {
		case serr == nil:
			v.Submitted = true
			v.Receipt = receipt.ID
			note = &receipt.Notification
		case errors.Is(serr, validation.ErrInvalid):
			v.Errors = validation.Fields(serr)
			status = http.StatusUnprocessableEntity
		case errors.Is(serr, model.ErrBackpressure):
			note = &busy
			status = http.StatusTooManyRequests
		case errors.Is(serr, submission.ErrUnknownType):
			status = http.StatusBadRequest
		default:
			s.fail(w, r, serr)
			return
		}
	default:
		status = http.StatusBadRequest
	}

	s.render(w, r, "submit", "", status, page{Title: "Submit Project", Nav: "submit", Notification: note, Body: v})
}

// handleVerify answers the inline Verify button. htmx gets only the team code
// block; other clients get the whole page.
func (s *Site) handleVerify(w http.ResponseWriter, r *http.Request) {
	v, err := s.readSubmitForm(w, r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	res := s.deps.VerifyTeamCode(r.Context(), v.Form.TeamCode)
	v.Verify = &res
	s.render(w, r, "submit", "team-verify", http.StatusOK, page{
		Title:        "Submit Project",
		Nav:          "submit",
		Notification: &res.Notification,
		Body:         v,
	})
}

// readSubmitForm parses a urlencoded or multipart post. Only the names of
// uploaded files are read; names captured earlier travel in *_name fields.
func (s *Site) readSubmitForm(w http.ResponseWriter, r *http.Request) (submitView, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseMultipartForm(uploadMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return submitView{}, err
	}
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}

	get := func(name string) string { return strings.TrimSpace(r.PostFormValue(name)) }

	f := submission.NewForm()
	f.TeamCode = get("team_code")
	f.Type = submission.ParseType(get("type"))
	f.Project = submission.Project{
		Name:         get("project_name"),
		Description:  get("project_description"),
		Category:     get("project_category"),
		Technologies: get("technologies"),
	}
	f.Repository = submission.Repository{
		URL:               get("repo_url"),
		Branch:            get("branch"),
		SetupInstructions: get("setup_instructions"),
	}
	f.Assets = submission.Assets{
		ProjectFiles:  firstName(fileNames(r, "project_files")),
		Documentation: firstName(fileNames(r, "documentation")),
		Slides:        firstName(fileNames(r, "slides")),
		Screenshots:   fileNames(r, "screenshots"),
	}
	f.Demo = submission.Demo{
		DemoURL:           get("demo_url"),
		VideoURL:          get("video_url"),
		Credentials:       get("credentials"),
		UsageInstructions: get("usage_instructions"),
	}

	return newSubmitView(f, get("idempotency_key")), nil
}

// fileNames returns the base names of the files posted under field, falling
// back to names carried from an earlier render.
func fileNames(r *http.Request, field string) []string {
	var headers []*multipart.FileHeader
	if r.MultipartForm != nil {
		headers = r.MultipartForm.File[field]
	}
	var out []string
	for _, h := range headers {
		if h.Filename != "" {
			out = append(out, filepath.Base(h.Filename))
		}
	}
	if len(out) > 0 {
		return out
	}
	for _, name := range r.PostForm[field+"_name"] {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func firstName(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[0]
}
