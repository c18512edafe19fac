package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/spithack/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

// clearPortalEnv unsets every HACKATHON_ variable. t.Setenv only restores at
// the end of the test, so each convey pass starts from a clean environment.
func clearPortalEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "HACKATHON_") {
			t.Setenv(key, "")
			_ = os.Unsetenv(key)
		}
	}
}

func TestConfigLoader(t *testing.T) {
	ctx := context.Background()

	convey.Convey("Given a config loader", t, func() {
		clearPortalEnv(t)

		convey.Convey("When loading with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then the defaults come back", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.HeroIntervalMS, convey.ShouldEqual, 5000)
			})
		})

		convey.Convey("When environment variables are set", func() {
			t.Setenv("HACKATHON_ADDR", ":8080")
			t.Setenv("HACKATHON_QUEUE_SIZE", "64")
			t.Setenv("HACKATHON_WORKER_COUNT", "2")
			t.Setenv("HACKATHON_HERO_INTERVAL_MS", "250")
			t.Setenv("HACKATHON_OTEL_ENDPOINT", "http://collector:4318")

			cfg, err := config.Load(ctx)

			convey.Convey("Then they override the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.QueueSize, convey.ShouldEqual, 64)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 2)
				convey.So(cfg.HeroIntervalMS, convey.ShouldEqual, 250)
				convey.So(cfg.OTelEndpoint, convey.ShouldEqual, "http://collector:4318")
			})
		})

		convey.Convey("When a YAML file is provided", func() {
			path := filepath.Join(t.TempDir(), "portal.yaml")
			yamlContent := "addr: \":9090\"\nlog_format: json\ndedupe_size: 42\n"
			convey.So(os.WriteFile(path, []byte(yamlContent), 0o600), convey.ShouldBeNil)
			t.Setenv("HACKATHON_CONFIG", path)

			convey.Convey("Then the file values apply", func() {
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.DedupeSize, convey.ShouldEqual, 42)
			})

			convey.Convey("Then env still wins over the file", func() {
				t.Setenv("HACKATHON_ADDR", ":7070")
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
			})
		})

		convey.Convey("When the file does not exist", func() {
			t.Setenv("HACKATHON_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
			_, err := config.Load(ctx)
			convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When an earlier pass set variables", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then they no longer apply", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.LogFormat, convey.ShouldNotEqual, "xml")
				convey.So(cfg.DedupeSize, convey.ShouldNotEqual, 42)
			})
		})

		convey.Convey("When a value is invalid", func() {
			t.Setenv("HACKATHON_HERO_INTERVAL_MS", "0")
			_, err := config.Load(ctx)
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When the log format is unknown", func() {
			t.Setenv("HACKATHON_LOG_FORMAT", "xml")
			_, err := config.Load(ctx)
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})
}
