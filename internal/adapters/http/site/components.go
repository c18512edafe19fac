package site

import (
	"context"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/okian/spithack/internal/domain/model"
)

// navLinks is the navbar order. Keys match page.Nav.
var navLinks = []struct{ key, href, label string }{
	{"home", "/", "Home"},
	{"events", "/events", "Events"},
	{"teams", "/teams", "Teams"},
	{"submit", "/submit", "Submit"},
}

// htmlWriter stops writing after the first error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(parts ...string) {
	for _, p := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// layout wraps a page body in the document shell.
func layout(p page, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>`)
		if p.Title != "" {
			h.text(p.Title)
			h.raw(" | ")
		}
		h.raw(`SPIT Hackathons</title>
  <link rel="stylesheet" href="/static/site.css">
  <script src="https://unpkg.com/htmx.org@2.0.4" defer></script>
</head>
<body>
`)
		h.component(ctx, navbar(p.Nav))
		if p.Notification != nil {
			h.component(ctx, toast(*p.Notification))
		}
		h.raw("<main>\n")
		h.component(ctx, body)
		h.raw("</main>\n")
		h.component(ctx, footer())
		h.raw("</body>\n</html>\n")
		return h.err
	})
}

func navbar(active string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<header class="navbar">
  <a class="brand" href="/">SPIT Hackathons</a>
  <nav>
`)
		for _, l := range navLinks {
			h.raw(`    <a href="`, l.href, `"`)
			if l.key == active {
				h.raw(` class="active"`)
			}
			h.raw(">", l.label, "</a>\n")
		}
		h.raw(`  </nav>
  <a class="button primary" href="/register">Register Now</a>
</header>
`)
		return h.err
	})
}

func footer() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<footer class="footer">
  <div>
    <h3>SPIT Hackathons</h3>
    <p>Empowering innovation through collaborative coding events at Sardar Patel Institute of Technology.</p>
  </div>
  <div>
    <h4>Quick Links</h4>
    <a href="/events">Events</a>
    <a href="/teams">Find a Team</a>
    <a href="/register">Register</a>
    <a href="/submit">Submit Project</a>
  </div>
  <div>
    <h4>Contact</h4>
    <p>Sardar Patel Institute of Technology<br>Munshi Nagar, Andheri (W), Mumbai 400058</p>
    <p>hackathons@spit.ac.in</p>
  </div>
  <p class="copyright">&copy; SPIT Hackathons. All rights reserved.</p>
</footer>
`)
		return err
	})
}

func toast(n model.Notification) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div class="toast`)
		if n.Destructive {
			h.raw(" destructive")
		}
		h.raw(`" role="status">`, "\n  <strong>")
		h.text(n.Title)
		h.raw("</strong>\n  <p>")
		h.text(n.Description)
		h.raw("</p>\n</div>\n")
		return h.err
	})
}

func eventCard(e model.Event) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		detail := "/events/" + url.PathEscape(e.ID)

		h := &htmlWriter{w: w}
		h.raw(`<article class="card event-card">`, "\n  <img src=\"")
		h.text(string(templ.URL(e.Image)))
		h.raw(`" alt="`)
		h.text(e.Title)
		h.raw(`" loading="lazy">`, "\n  <div class=\"card-body\">\n    <span class=\"badge\">")
		h.text(string(e.Category))
		h.raw("</span>\n    ")
		if e.RegistrationOpen {
			h.raw(`<span class="badge open">Registration Open</span>`)
		} else {
			h.raw(`<span class="badge closed">Registration Closed</span>`)
		}
		h.raw("\n    <h3><a href=\"")
		h.text(detail)
		h.raw(`">`)
		h.text(e.Title)
		h.raw("</a></h3>\n    <p>")
		h.text(e.Description)
		h.raw("</p>\n    <ul class=\"meta\">\n")
		for _, m := range []string{e.Date, e.Time, e.Location, e.Capacity} {
			h.raw("      <li>")
			h.text(m)
			h.raw("</li>\n")
		}
		h.raw("    </ul>\n    ")
		if e.RegistrationOpen {
			h.raw(`<a class="button primary" href="/register">Register Now</a>`)
		} else {
			h.raw(`<a class="button" href="`)
			h.text(detail)
			h.raw(`">View Details</a>`)
		}
		h.raw("\n  </div>\n</article>\n")
		return h.err
	})
}

// inline renders c for use inside an html/template page.
func inline(c templ.Component) (template.HTML, error) {
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}
