package site

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/okian/spithack/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func renderString(c templ.Component) string {
	var b strings.Builder
	So(c.Render(context.Background(), &b), ShouldBeNil)
	return b.String()
}

func TestComponents(t *testing.T) {
	Convey("Given an event card", t, func() {
		e := model.Event{ID: "web dev", Title: "Web <Dev>", Category: model.CategoryWeb, Date: "November 25, 2023"}

		Convey("When registration is closed", func() {
			html := renderString(eventCard(e))

			Convey("Then text is escaped and the card links to the detail page", func() {
				So(html, ShouldContainSubstring, "Web &lt;Dev&gt;")
				So(html, ShouldNotContainSubstring, "<Dev>")
				So(html, ShouldContainSubstring, `href="/events/web%20dev">View Details`)
				So(html, ShouldContainSubstring, "Registration Closed")
				So(html, ShouldContainSubstring, "<li>November 25, 2023</li>")
			})
		})

		Convey("When registration is open", func() {
			e.RegistrationOpen = true
			html := renderString(eventCard(e))
			So(html, ShouldContainSubstring, "Registration Open")
			So(html, ShouldContainSubstring, `href="/register">Register Now`)
		})

		Convey("When inlined into a page template", func() {
			html, err := inline(eventCard(e))
			So(err, ShouldBeNil)
			So(string(html), ShouldStartWith, `<article class="card event-card">`)
		})
	})

	Convey("Given the layout", t, func() {
		body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<p>body</p>")
			return err
		})

		Convey("When a page carries a notification", func() {
			note := model.Notification{Title: "Registration Successful!", Description: "See you there", Destructive: true}
			html := renderString(layout(page{Title: "Register", Nav: "teams", Notification: &note}, body))

			Convey("Then the shell, the active link and the toast are rendered", func() {
				So(html, ShouldContainSubstring, "<title>Register | SPIT Hackathons</title>")
				So(html, ShouldContainSubstring, `<a href="/teams" class="active">Teams</a>`)
				So(html, ShouldContainSubstring, `<a href="/events">Events</a>`)
				So(html, ShouldContainSubstring, `class="toast destructive"`)
				So(html, ShouldContainSubstring, "<main>\n<p>body</p></main>")
				So(html, ShouldContainSubstring, "All rights reserved.")
			})
		})

		Convey("When a page has no title", func() {
			html := renderString(layout(page{}, body))
			So(html, ShouldContainSubstring, "<title>SPIT Hackathons</title>")
			So(html, ShouldNotContainSubstring, "toast")
		})
	})
}
