package network

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/apod-cli/apod/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGet(t *testing.T) {
	Convey("Given a test server", t, func() {
		var agent string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			agent = r.Header.Get("User-Agent")
			if r.URL.Path == "/missing" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = io.WriteString(w, "ok")
		}))
		defer srv.Close()

		Convey("Get returns the body and sets the User-Agent", func() {
			body, err := Get(context.Background(), nil, srv.URL+"/")
			So(err, ShouldBeNil)
			defer body.Close()

			data, _ := io.ReadAll(body)
			So(string(data), ShouldEqual, "ok")
			So(agent, ShouldEqual, constant.UserAgent)
		})

		Convey("Non-200 responses become a StatusError", func() {
			_, err := Get(context.Background(), nil, srv.URL+"/missing")
			var statusErr *StatusError
			So(errors.As(err, &statusErr), ShouldBeTrue)
			So(statusErr.Status, ShouldEqual, http.StatusNotFound)
		})
	})
}
