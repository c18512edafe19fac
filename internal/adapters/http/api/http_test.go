package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/spithack/internal/adapters/http/api"
	"github.com/okian/spithack/internal/domain/catalog"
	"github.com/okian/spithack/internal/domain/directory"
	"github.com/okian/spithack/internal/domain/model"
	"github.com/okian/spithack/internal/domain/submission"
	"github.com/okian/spithack/internal/domain/validation"
	"github.com/okian/spithack/internal/domain/wizard"
	. "github.com/smartystreets/goconvey/convey"
)

var sampleEvents = []model.Event{
	{ID: "hackathon-2023", Title: "SPIT Hackathon 2023", Description: "Our flagship 48-hour coding marathon", Date: "December 15-17, 2023", Category: model.CategoryFlagship},
	{ID: "webdev-challenge", Title: "Web Development Challenge", Description: "Design and develop responsive web solutions", Date: "November 25, 2023", Category: model.CategoryWeb},
}

type mockDeps struct {
	lastFilter   catalog.FilterState
	lastKey      string
	lastReg      wizard.Registration
	submitErr    error
	duplicate    bool
	readErr      error
	verifyCalled string
}

func (m *mockDeps) Events(_ context.Context, f catalog.FilterState) ([]model.Event, error) {
	m.lastFilter = f
	if m.readErr != nil {
		return nil, m.readErr
	}
	return catalog.Filter(sampleEvents, f), nil
}

func (m *mockDeps) Event(_ context.Context, id string) (model.Event, error) {
	for _, e := range sampleEvents {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Event{}, model.ErrNotFound
}

func (m *mockDeps) Teams(_ context.Context, f directory.Filter) ([]model.Team, error) {
	teams := []model.Team{{Name: "CodeCrafters", Members: []model.Member{{Name: "Alex", Skills: []string{"Frontend"}}}}}
	return directory.FilterTeams(teams, f), nil
}

func (m *mockDeps) Individuals(_ context.Context, f directory.Filter) ([]model.Individual, error) {
	people := []model.Individual{{Name: "Arjun Nair", Skills: []string{"Blockchain"}}}
	return directory.FilterIndividuals(people, f), nil
}

func (m *mockDeps) VerifyTeamCode(_ context.Context, code string) submission.Result {
	m.verifyCalled = code
	return submission.Verify(code)
}

func (m *mockDeps) SubmitRegistration(_ context.Context, key string, reg wizard.Registration) (model.Receipt, error) {
	m.lastKey, m.lastReg = key, reg
	if m.submitErr != nil {
		return model.Receipt{}, m.submitErr
	}
	if m.duplicate {
		return model.Receipt{Status: "duplicate", Duplicate: true, Notification: wizard.Confirmation()}, nil
	}
	return model.Receipt{ID: "r-1", Status: "accepted", Notification: wizard.Confirmation()}, nil
}

func (m *mockDeps) SubmitProject(_ context.Context, key string, _ submission.Submission) (model.Receipt, error) {
	m.lastKey = key
	if m.submitErr != nil {
		return model.Receipt{}, m.submitErr
	}
	return model.Receipt{ID: "p-1", Status: "accepted", Notification: submission.Confirmation()}, nil
}

type mockStats struct{}

func (mockStats) GetStats() map[string]any { return map[string]any{"started": true} }

func newMux(deps *mockDeps) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(deps, mockStats{}, nil).Register(context.Background(), mux)
	return mux
}

func serve(mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestServer_Register(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		mux := newMux(&mockDeps{})

		Convey("Then /healthz serves metrics", func() {
			w := serve(mux, http.MethodGet, "/healthz", "")
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("Then /stats serves JSON", func() {
			w := serve(mux, http.MethodGet, "/stats", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldContainSubstring, "application/json")
		})

		Convey("Then a nil mux panics", func() {
			So(func() { api.NewServer(&mockDeps{}, mockStats{}, nil).Register(context.Background(), nil) }, ShouldPanic)
		})
	})
}

func TestEventsHandler(t *testing.T) {
	Convey("Given the events endpoints", t, func() {
		deps := &mockDeps{}
		mux := newMux(deps)

		Convey("When listing with a category", func() {
			w := serve(mux, http.MethodGet, "/api/events?category=Web", "")
			var events []model.Event
			So(json.Unmarshal(w.Body.Bytes(), &events), ShouldBeNil)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(events, ShouldHaveLength, 1)
			So(events[0].ID, ShouldEqual, "webdev-challenge")
		})

		Convey("When nothing matches", func() {
			w := serve(mux, http.MethodGet, "/api/events?q=zzz-nonexistent", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(strings.TrimSpace(w.Body.String()), ShouldEqual, "[]")
		})

		Convey("When a date is given", func() {
			w := serve(mux, http.MethodGet, "/api/events?date=2023-11-25", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(deps.lastFilter.HasDate(), ShouldBeTrue)
			So(w.Body.String(), ShouldContainSubstring, "webdev-challenge")
			So(w.Body.String(), ShouldNotContainSubstring, "hackathon-2023")
		})

		Convey("When the date is malformed", func() {
			w := serve(mux, http.MethodGet, "/api/events?date=25-11-2023", "")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(w.Body.String(), ShouldContainSubstring, "bad_request")
		})

		Convey("When the category is unknown", func() {
			w := serve(mux, http.MethodGet, "/api/events?category=Gaming", "")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When fetching by id", func() {
			So(serve(mux, http.MethodGet, "/api/events/webdev-challenge", "").Code, ShouldEqual, http.StatusOK)
			So(serve(mux, http.MethodGet, "/api/events/nope", "").Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When the service is not ready", func() {
			deps.readErr = model.ErrUnavailable
			So(serve(mux, http.MethodGet, "/api/events", "").Code, ShouldEqual, http.StatusServiceUnavailable)
		})
	})
}

func TestDirectoryHandler(t *testing.T) {
	Convey("Given the directory endpoints", t, func() {
		mux := newMux(&mockDeps{})

		Convey("Then the skill filter applies per list", func() {
			w := serve(mux, http.MethodGet, "/api/teams?skill=Blockchain", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(strings.TrimSpace(w.Body.String()), ShouldEqual, "[]")

			w = serve(mux, http.MethodGet, "/api/individuals?skill=blockchain", "")
			So(w.Body.String(), ShouldContainSubstring, "Arjun Nair")
		})
	})
}

func TestFormsHandler(t *testing.T) {
	Convey("Given the form endpoints", t, func() {
		deps := &mockDeps{}
		mux := newMux(deps)
		body := `{"kind":"individual","individual":{"personal":{"first_name":"Priya"}}}`

		Convey("When a registration is accepted", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/registrations", strings.NewReader(body))
			req.Header.Set(api.IdempotencyHeader, "abc")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then 202 carries the receipt and the key is forwarded", func() {
				So(w.Code, ShouldEqual, http.StatusAccepted)
				var receipt model.Receipt
				So(json.Unmarshal(w.Body.Bytes(), &receipt), ShouldBeNil)
				So(receipt.ID, ShouldEqual, "r-1")
				So(receipt.Notification.Title, ShouldEqual, "Registration submitted")
				So(deps.lastKey, ShouldEqual, "abc")
				So(deps.lastReg.Individual.Personal.FirstName, ShouldEqual, "Priya")
			})
		})

		Convey("When the post is a duplicate", func() {
			deps.duplicate = true
			w := serve(mux, http.MethodPost, "/api/registrations", body)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"duplicate":true`)
		})

		Convey("When the body is not JSON", func() {
			w := serve(mux, http.MethodPost, "/api/registrations", "{")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the body has unknown fields", func() {
			w := serve(mux, http.MethodPost, "/api/registrations", `{"kind":"individual","extra":1}`)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When validation fails", func() {
			deps.submitErr = validation.Required("personal.email")
			w := serve(mux, http.MethodPost, "/api/registrations", body)

			Convey("Then the fields are listed", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(w.Body.String(), ShouldContainSubstring, `"personal.email":"is required"`)
			})
		})

		Convey("When the queue is full", func() {
			deps.submitErr = errors.Join(errors.New("form queue full"), model.ErrBackpressure)
			So(serve(mux, http.MethodPost, "/api/submissions", `{"type":"repository"}`).Code, ShouldEqual, http.StatusTooManyRequests)
		})

		Convey("When an unexpected error happens", func() {
			deps.submitErr = errors.New("boom")
			w := serve(mux, http.MethodPost, "/api/submissions", `{"type":"demo"}`)
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
			So(w.Body.String(), ShouldNotContainSubstring, "boom")
		})

		Convey("When verifying a short team code", func() {
			w := serve(mux, http.MethodPost, "/api/team-codes/verify", `{"code":"AB"}`)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"valid":false`)
			So(w.Body.String(), ShouldContainSubstring, "Invalid team code")
		})

		Convey("When verifying a long team code", func() {
			w := serve(mux, http.MethodPost, "/api/team-codes/verify", `{"code":"CODE1"}`)
			So(w.Body.String(), ShouldContainSubstring, `"valid":true`)
			So(w.Body.String(), ShouldContainSubstring, "Team CodeCrafters verified")
			So(deps.verifyCalled, ShouldEqual, "CODE1")
		})
	})
}

func TestErrorKinds(t *testing.T) {
	Convey("Given wrapped API errors", t, func() {
		cause := errors.New("eof")
		err := api.WrapKind("api.op", api.ErrBadRequest, cause)

		So(errors.Is(err, api.ErrBadRequest), ShouldBeTrue)
		So(errors.Is(err, cause), ShouldBeTrue)
		So(err.Error(), ShouldEqual, "api.op: bad request: eof")
		So(api.NewKind("api.op", api.ErrNotFound).Error(), ShouldEqual, "api.op: not found")
		So(api.Wrap("api.op", nil), ShouldBeNil)
	})
}
