package console_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/okian/marks/internal/adapters/console"
	. "github.com/smartystreets/goconvey/convey"
)

func TestConsole(t *testing.T) {
	Convey("Given a console over two lines of input", t, func() {
		var out bytes.Buffer
		con := console.New(strings.NewReader("first\r\nsecond\n"), &out)
		ctx := context.Background()

		Convey("When reading every line", func() {
			a, errA := con.ReadLine(ctx)
			b, errB := con.ReadLine(ctx)
			_, errC := con.ReadLine(ctx)

			Convey("Then lines should come back in order without line endings", func() {
				So(errA, ShouldBeNil)
				So(errB, ShouldBeNil)
				So(a, ShouldEqual, "first")
				So(b, ShouldEqual, "second")
			})

			Convey("And the end of input should be io.EOF", func() {
				So(errors.Is(errC, io.EOF), ShouldBeTrue)
			})
		})

		Convey("When prompting", func() {
			answer, err := con.Prompt(ctx, "Name: ")

			Convey("Then the prompt should be written before reading", func() {
				So(err, ShouldBeNil)
				So(answer, ShouldEqual, "first")
				So(out.String(), ShouldEqual, "Name: ")
			})
		})

		Convey("When writing output", func() {
			con.Println("hello")
			con.Printf("%d marks\n", 3)
			So(out.String(), ShouldEqual, "hello\n3 marks\n")
		})

		Convey("When the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := con.ReadLine(cctx)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}

func TestConsole_Lines(t *testing.T) {
	ctx := context.Background()

	Convey("Given a line longer than any read buffer", t, func() {
		long := strings.TrimSuffix(strings.Repeat("85,", 40000), ",")
		con := console.New(strings.NewReader(long+"\nnext\n"), &bytes.Buffer{})

		Convey("Then it should be read whole and reading should go on", func() {
			got, err := con.ReadLine(ctx)
			So(err, ShouldBeNil)
			So(len(got), ShouldEqual, len(long))
			next, err := con.ReadLine(ctx)
			So(err, ShouldBeNil)
			So(next, ShouldEqual, "next")
		})
	})

	Convey("Given a last line without a newline", t, func() {
		con := console.New(strings.NewReader("1,2\ndone"), &bytes.Buffer{})
		_, _ = con.ReadLine(ctx)

		Convey("Then it should be returned before io.EOF", func() {
			last, err := con.ReadLine(ctx)
			So(err, ShouldBeNil)
			So(last, ShouldEqual, "done")
			_, err = con.ReadLine(ctx)
			So(errors.Is(err, io.EOF), ShouldBeTrue)
		})
	})
}
