package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given a JSON logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(Init(WithFormat("json"), WithOutput(&buf)), ShouldBeNil)
		defer func() { So(Sync(), ShouldBeNil) }()

		Convey("When logging with fields", func() {
			Named("api").Info(context.Background(), "registration accepted",
				String("kind", "individual"), Int("step", 3), Bool("duplicate", false))

			Convey("Then the line carries fields, the name and the caller", func() {
				var line map[string]any
				So(json.Unmarshal(buf.Bytes(), &line), ShouldBeNil)
				So(line["msg"], ShouldEqual, "registration accepted")
				So(line["kind"], ShouldEqual, "individual")
				So(line["logger"], ShouldEqual, "api")
				So(line["source"], ShouldContainSubstring, "logger_test.go")
			})
		})

		Convey("When the level is raised", func() {
			So(SetLevelString("warn"), ShouldBeNil)
			Get().Info(context.Background(), "hidden")
			So(buf.Len(), ShouldEqual, 0)
			So(SetLevelString("info"), ShouldBeNil)
		})
	})

	Convey("Unknown levels and formats are rejected", t, func() {
		So(SetLevelString("loud"), ShouldNotBeNil)
		So(Init(WithFormat("xml")), ShouldNotBeNil)
		So(Init(), ShouldBeNil)
	})

	Convey("Nop discards without panicking", t, func() {
		So(func() {
			l := Nop().Named("test")
			l.Error(context.Background(), "ignored")
			l.Fatal(context.Background(), "ignored")
		}, ShouldNotPanic)
	})
}

func TestNamedNesting(t *testing.T) {
	Convey("Named loggers nest with dots", t, func() {
		var buf bytes.Buffer
		So(Init(WithFormat("json"), WithOutput(&buf)), ShouldBeNil)
		Named("service").Named("worker-0").Warn(context.Background(), "slow delivery")

		var line map[string]any
		So(json.Unmarshal(buf.Bytes(), &line), ShouldBeNil)
		So(line["logger"], ShouldEqual, "service.worker-0")
		So(line["level"], ShouldEqual, "WARN")
	})
}
