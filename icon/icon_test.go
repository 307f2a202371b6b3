package icon

import (
	"testing"

	"github.com/apod-cli/apod/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		Convey("It renders for each variant", func() {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				for i := range icons {
					So(Get(i), ShouldNotBeEmpty)
				}
			}
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Image), ShouldBeEmpty)
		})
	})
}

func TestForKind(t *testing.T) {
	Convey("ForKind", t, func() {
		viper.Set(key.IconsVariant, "plain")
		So(ForKind("image"), ShouldEqual, "img")
		So(ForKind("video"), ShouldEqual, "vid")
		So(ForKind("gif"), ShouldEqual, "gif")
		So(ForKind("other"), ShouldEqual, "---")
	})
}
