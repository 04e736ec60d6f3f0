package pdf

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	xe "github.com/opst/aptsales/pkg/errors"
	"github.com/ysmood/gson"
)

// time limit to close pages, after ctx of printing is done
const cleanupTimeout = 5 * time.Second

// A4 in inches
const (
	paperWidth  = 8.27
	paperHeight = 11.69
)

// fitToSheet is run just before printing.
const fitToSheet = `() => {
	for (const el of [document.body, document.documentElement]) {
		el.style.width = '210mm';
		el.style.height = '297mm';
		el.style.margin = '0';
		el.style.padding = '0';
	}
}`

type RodConfig struct {
	// path to browser binary. If empty, rod looks up or downloads one.
	Bin string

	// DevTools URL of a running browser. If not empty, the browser is not launched.
	ControlURL string

	NoSandbox bool

	// time limit to print a page
	Timeout time.Duration

	// how long network should be idle before printing
	Idle time.Duration
}

type rodPrinter struct {
	conf RodConfig

	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
}

// NewRodPrinter returns a Printer with a headless Chromium.
//
// The browser is launched (or connected) at the first Print, and kept until Close.
func NewRodPrinter(conf RodConfig) Printer {
	return &rodPrinter{conf: conf}
}

// connect returns the browser, launching or connecting it if needed.
//
// Calls to the browser are bound to ctx.
func (r *rodPrinter) connect(ctx context.Context) (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser != nil {
		if _, err := r.browser.Context(ctx).Version(); err == nil {
			return r.browser.Context(ctx), nil
		}
		if err := ctx.Err(); err != nil {
			return nil, xe.Wrap(err)
		}
		// stale connection.
		r.closeLocked()
	}

	controlURL := r.conf.ControlURL
	if controlURL == "" {
		l := launcher.New().Headless(true).NoSandbox(r.conf.NoSandbox)
		if r.conf.Bin != "" {
			l = l.Bin(r.conf.Bin)
		}
		u, err := l.Launch()
		if err != nil {
			return nil, xe.WrapWithNote("launching browser", err)
		}
		r.launcher = l
		controlURL = u
	}

	b := rod.New().ControlURL(controlURL)

	// Connect is left unbound: the connection is kept beyond ctx.
	connected := make(chan error, 1)
	go func() { connected <- b.Connect() }()

	var err error
	select {
	case err = <-connected:
	case <-ctx.Done():
		err = ctx.Err()
		launched := r.launcher != nil
		go func() {
			if <-connected == nil && launched {
				b.Close()
			}
		}()
	}
	if err != nil {
		if r.launcher != nil {
			r.launcher.Kill()
			r.launcher = nil
		}
		return nil, xe.WrapWithNote("connecting browser", err)
	}
	r.browser = b
	return b.Context(ctx), nil
}

func (r *rodPrinter) Print(ctx context.Context, html string) ([]byte, error) {
	if r.conf.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.conf.Timeout)
		defer cancel()
	}

	b, err := r.connect(ctx)
	if err != nil {
		return nil, err
	}

	incognito, err := b.Incognito()
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer func() { incognito.Context(context.Background()).Timeout(cleanupTimeout).Close() }()

	page, err := incognito.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer func() { page.Context(context.Background()).Timeout(cleanupTimeout).Close() }()

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width: 1280, Height: 1696, DeviceScaleFactor: 2, Mobile: false,
	}); err != nil {
		return nil, xe.Wrap(err)
	}

	idle := page.WaitRequestIdle(r.conf.Idle, nil, nil, nil)
	if err := page.SetDocumentContent(html); err != nil {
		return nil, xe.Wrap(err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, xe.Wrap(err)
	}
	idle()

	if _, err := page.Eval(fitToSheet); err != nil {
		return nil, xe.Wrap(err)
	}

	s, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:        gson.Num(paperWidth),
		PaperHeight:       gson.Num(paperHeight),
		MarginTop:         gson.Num(0),
		MarginBottom:      gson.Num(0),
		MarginLeft:        gson.Num(0),
		MarginRight:       gson.Num(0),
		PrintBackground:   true,
		PreferCSSPageSize: true,
		Scale:             gson.Num(1),
	})
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer s.Close()
	return io.ReadAll(s)
}

func (r *rodPrinter) closeLocked() error {
	var err error
	if r.browser != nil {
		if r.conf.ControlURL == "" {
			err = r.browser.Close()
		}
		r.browser = nil
	}
	if r.launcher != nil {
		r.launcher.Kill()
		r.launcher = nil
	}
	return err
}

func (r *rodPrinter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closeLocked()
}
