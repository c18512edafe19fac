package textmatch

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestContains(t *testing.T) {
	Convey("Contains", t, func() {
		Convey("matches regardless of case", func() {
			So(Contains("Web Development Challenge", "web"), ShouldBeTrue)
			So(Contains("Web Development Challenge", "CHALLENGE"), ShouldBeTrue)
		})

		Convey("empty needle matches everything", func() {
			So(Contains("", ""), ShouldBeTrue)
			So(Contains("anything", ""), ShouldBeTrue)
		})

		Convey("rejects missing text", func() {
			So(Contains("Cybersecurity Hackathon", "zzz-nonexistent"), ShouldBeFalse)
		})
	})

	Convey("ContainsAny checks every haystack", t, func() {
		So(ContainsAny("bio", "Arjun Nair", "Blockchain developer"), ShouldBeFalse)
		So(ContainsAny("ethereum", "Arjun Nair", "experience in Ethereum-based applications"), ShouldBeTrue)
		So(ContainsAny("", "x"), ShouldBeTrue)
	})
}

func TestEqual(t *testing.T) {
	Convey("Equal folds case", t, func() {
		So(Equal("blockchain", "Blockchain"), ShouldBeTrue)
		So(Equal("AI/ML", "ai/ml"), ShouldBeTrue)
		So(Equal("UI/UX", "UI/UX Design"), ShouldBeFalse)
	})
}
