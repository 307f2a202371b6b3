package auth

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/apod-cli/apod/filesystem"
	"github.com/apod-cli/apod/key"
	"github.com/spf13/viper"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

const validKey = "abcdefghijABCDEFGHIJ0123456789abcdefghij"

func TestValid(t *testing.T) {
	Convey("Given candidate keys", t, func() {
		So(Valid(validKey), ShouldBeTrue)
		So(Valid("DEMO_KEY"), ShouldBeFalse)
		So(Valid(validKey[:39]), ShouldBeFalse)
		So(Valid(validKey+"x"), ShouldBeFalse)
		So(Valid(strings.Repeat("-", 40)), ShouldBeFalse)
	})
}

func TestResolve(t *testing.T) {
	Convey("Given an empty keyring and an in-memory filesystem", t, func() {
		keyring.MockInit()
		filesystem.SetMemMapFs()
		keyFile := filepath.Join(os.TempDir(), "apod_api_key")
		viper.Set(key.APIKeyFile, keyFile)
		viper.Set(key.APIKey, "")

		Convey("No key is found", func() {
			_, _, err := Resolve()
			So(err, ShouldEqual, ErrNoKey)
		})

		Convey("The key file is used", func() {
			So(filesystem.API().WriteFile(keyFile, []byte(validKey+"\n"), 0o600), ShouldBeNil)

			k, src, err := Resolve()
			So(err, ShouldBeNil)
			So(k, ShouldEqual, validKey)
			So(src, ShouldEqual, SourceFile)
		})

		Convey("A short key file is ignored", func() {
			So(filesystem.API().WriteFile(keyFile, []byte("short"), 0o600), ShouldBeNil)

			_, _, err := Resolve()
			So(err, ShouldEqual, ErrNoKey)
		})

		Convey("The keyring wins over the key file", func() {
			other := strings.Repeat("z", 40)
			So(filesystem.API().WriteFile(keyFile, []byte(other), 0o600), ShouldBeNil)

			src, err := Save(validKey)
			So(err, ShouldBeNil)
			So(src, ShouldEqual, SourceKeyring)

			k, src, err := Resolve()
			So(err, ShouldBeNil)
			So(k, ShouldEqual, validKey)
			So(src, ShouldEqual, SourceKeyring)
		})

		Convey("The configuration wins over everything", func() {
			other := strings.Repeat("Q", 40)
			_, err := Save(validKey)
			So(err, ShouldBeNil)
			viper.Set(key.APIKey, other)

			k, src, err := Resolve()
			So(err, ShouldBeNil)
			So(k, ShouldEqual, other)
			So(src, ShouldEqual, SourceConfig)
		})

		Convey("The demo key is never accepted", func() {
			viper.Set(key.APIKey, "DEMO_KEY")
			_, _, err := Resolve()
			So(err, ShouldEqual, ErrNoKey)
		})

		Convey("Save rejects invalid keys", func() {
			_, err := Save("DEMO_KEY")
			So(err, ShouldEqual, ErrInvalidKey)
		})

		Convey("Delete removes the keyring entry", func() {
			_, err := Save(validKey)
			So(err, ShouldBeNil)
			So(Delete(), ShouldBeNil)
			So(Delete(), ShouldBeNil)

			_, _, err = Resolve()
			So(err, ShouldEqual, ErrNoKey)
		})

		Reset(func() {
			viper.Set(key.APIKey, "")
		})
	})
}
