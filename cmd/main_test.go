package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	service "github.com/okian/spithack/internal/app"
	"github.com/okian/spithack/internal/config"
	"github.com/okian/spithack/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoading(t *testing.T) {
	convey.Convey("Given portal environment variables", t, func() {
		for _, kv := range os.Environ() {
			if key, _, _ := strings.Cut(kv, "="); strings.HasPrefix(key, "HACKATHON_") {
				t.Setenv(key, "")
				_ = os.Unsetenv(key)
			}
		}
		t.Setenv("HACKATHON_ADDR", ":8080")
		t.Setenv("HACKATHON_QUEUE_SIZE", "1000")
		t.Setenv("HACKATHON_WORKER_COUNT", "4")

		convey.Convey("Then configuration should be loadable", func() {
			cfg, err := config.Load(context.Background())
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
			convey.So(cfg.QueueSize, convey.ShouldEqual, 1000)
			convey.So(cfg.WorkerCount, convey.ShouldEqual, 4)
		})

		convey.Convey("When the address is blank", func() {
			t.Setenv("HACKATHON_ADDR", "")

			convey.Convey("Then loading fails", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func TestHandler(t *testing.T) {
	convey.Convey("Given a started service behind the full handler", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		cfg := config.New(ctx)
		cfg.WorkerCount = 2
		svc := newService(cfg, logger.Nop())
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		handler, err := newHandler(ctx, cfg, svc, logger.Nop())
		convey.So(err, convey.ShouldBeNil)

		get := func(path string) *httptest.ResponseRecorder {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			return rec
		}

		convey.Convey("Then pages, API and docs are all mounted", func() {
			for _, path := range []string{"/", "/events", "/teams", "/register", "/submit", "/api/events", "/api/teams", "/api-docs", "/openapi.yaml", "/healthz", "/stats"} {
				convey.So(get(path).Code, convey.ShouldEqual, http.StatusOK)
			}
		})

		convey.Convey("Then unknown paths get the not-found page", func() {
			rec := get("/nowhere")
			convey.So(rec.Code, convey.ShouldEqual, http.StatusNotFound)
			convey.So(rec.Body.String(), convey.ShouldContainSubstring, "Oops! Page not found")
		})

		convey.Convey("Then the metric updaters run without panicking", func() {
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
			convey.So(func() { updateServiceMetrics(svc) }, convey.ShouldNotPanic)
		})
	})
}

func TestNewServiceFixtures(t *testing.T) {
	convey.Convey("Given a fixtures path that does not exist", t, func() {
		cfg := config.New(context.Background())
		cfg.FixturesPath = "/nonexistent/portal.yaml"
		svc := newService(cfg, logger.Nop())

		convey.Convey("Then the service refuses to start", func() {
			convey.So(svc.Start(context.Background()), convey.ShouldNotBeNil)
		})
	})
}

func TestMetricsUpdaters(t *testing.T) {
	convey.Convey("Given a short-lived context", t, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		convey.Convey("Then the updaters return when it ends", func() {
			convey.So(func() { startSystemMetricsUpdater(ctx) }, convey.ShouldNotPanic)
			convey.So(func() { startServiceMetricsUpdater(ctx, service.New()) }, convey.ShouldNotPanic)
		})
	})
}
