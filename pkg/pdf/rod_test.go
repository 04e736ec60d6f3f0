package pdf_test

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/go-rod/rod/lib/launcher"
	"github.com/opst/aptsales/pkg/pdf"
	"github.com/opst/aptsales/pkg/utils/try"
)

func TestRodPrinter(t *testing.T) {
	bin, ok := launcher.LookPath()
	if !ok {
		t.Skip("browser is not found")
	}

	testee := pdf.NewRodPrinter(pdf.RodConfig{
		Bin: bin, NoSandbox: true, Timeout: 30 * time.Second, Idle: 100 * time.Millisecond,
	})
	defer testee.Close()

	for _, page := range []string{"<p>first</p>", "<p>second</p>"} {
		got := try.To(testee.Print(context.Background(), pdf.PrintDocument([]byte(page)))).OrFatal(t)
		if !bytes.HasPrefix(got, []byte("%PDF")) {
			t.Fatalf("not a pdf: %.20q", got)
		}
		if n := pageCount(t, got); n != 1 {
			t.Errorf("pages: got %d, want 1", n)
		}
	}
}

// silentBrowser accepts DevTools websocket connections and never answers.
func silentBrowser(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { l.Close() })

	go func() {
		for {
			conn, err := l.Accept()
			if err != nil {
				return
			}
			go func() {
				defer conn.Close()
				req, err := http.ReadRequest(bufio.NewReader(conn))
				if err != nil {
					return
				}
				h := sha1.Sum([]byte(req.Header.Get("Sec-WebSocket-Key") + "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"))
				io.WriteString(conn, "HTTP/1.1 101 Switching Protocols\r\n"+
					"Upgrade: websocket\r\n"+
					"Connection: Upgrade\r\n"+
					"Sec-WebSocket-Accept: "+base64.StdEncoding.EncodeToString(h[:])+"\r\n\r\n")
				io.Copy(io.Discard, conn)
			}()
		}
	}()

	return "ws://" + l.Addr().String() + "/devtools/browser/silent"
}

func TestRodPrinter_UnresponsiveBrowser(t *testing.T) {
	type when struct {
		timeout time.Duration
		ctx     func() (context.Context, context.CancelFunc)
	}

	for name, testcase := range map[string]when{
		"configured timeout stops printing": {
			timeout: 300 * time.Millisecond,
			ctx: func() (context.Context, context.CancelFunc) {
				return context.WithCancel(context.Background())
			},
		},
		"deadline of the context stops printing": {
			ctx: func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(context.Background(), 300*time.Millisecond)
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			testee := pdf.NewRodPrinter(pdf.RodConfig{
				ControlURL: silentBrowser(t), Timeout: testcase.timeout,
			})
			defer testee.Close()

			ctx, cancel := testcase.ctx()
			defer cancel()

			done := make(chan error, 1)
			go func() {
				_, err := testee.Print(ctx, pdf.PrintDocument([]byte("<p>never</p>")))
				done <- err
			}()

			select {
			case err := <-done:
				if !errors.Is(err, context.DeadlineExceeded) {
					t.Errorf("unexpected error: %v", err)
				}
			case <-time.After(10 * time.Second):
				t.Fatal("printing is not stopped")
			}
		})
	}
}
