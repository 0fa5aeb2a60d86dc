package browser

import (
	"context"
	"fmt"
	"net"

	"github.com/chromedp/chromedp"
)

// LocalLauncher starts Chrome as a child process of the server. The
// remote debugging port is fixed per launch so the automation engine can
// attach to the same browser.
type LocalLauncher struct {
	parent   context.Context
	execPath string
}

// NewLocalLauncher creates a launcher whose browsers live until parent is
// cancelled or the instance is closed. An empty execPath lets chromedp
// find Chrome on the PATH.
func NewLocalLauncher(parent context.Context, execPath string) *LocalLauncher {
	return &LocalLauncher{parent: parent, execPath: execPath}
}

func (l *LocalLauncher) Launch(ctx context.Context, opts LaunchOptions) (Instance, error) {
	port, err := freePort()
	if err != nil {
		return nil, fmt.Errorf("failed to reserve debugging port: %w", err)
	}

	allocOpts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	allocOpts = append(allocOpts,
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("remote-debugging-port", port),
	)
	if opts.Viewport.Width > 0 && opts.Viewport.Height > 0 {
		allocOpts = append(allocOpts, chromedp.WindowSize(opts.Viewport.Width, opts.Viewport.Height))
	}
	if l.execPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(l.execPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(l.parent, allocOpts...)

	// abandon the launch if the caller gives up first
	stop := context.AfterFunc(ctx, allocCancel)
	page, browserCancel, err := newChromePage(allocCtx, opts)
	stop()
	if err != nil {
		allocCancel()
		return nil, fmt.Errorf("failed to launch chrome: %w", err)
	}

	return &instance{
		page:       page,
		connectURL: fmt.Sprintf("http://127.0.0.1:%d", port),
		release: func(context.Context) error {
			browserCancel()
			allocCancel()
			return nil
		},
	}, nil
}

func freePort() (int, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port, nil
}
