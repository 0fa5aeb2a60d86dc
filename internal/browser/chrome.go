package browser

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"

	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

// ChromePage drives one Chrome browser through chromedp. It starts on the
// first tab and follows ActivateTab to others.
type ChromePage struct {
	browserCtx  context.Context
	idleTimeout time.Duration

	mu        sync.Mutex
	tabCtx    context.Context
	tabCancel context.CancelFunc
}

// newChromePage starts the browser behind allocCtx and opens the first tab.
func newChromePage(allocCtx context.Context, opts LaunchOptions) (*ChromePage, context.CancelFunc, error) {
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	actions := []chromedp.Action{}
	if vp := opts.Viewport; vp.Width > 0 && vp.Height > 0 {
		actions = append(actions, chromedp.EmulateViewport(int64(vp.Width), int64(vp.Height)))
	}
	// the first Run allocates the browser and its initial tab
	if err := chromedp.Run(browserCtx, actions...); err != nil {
		browserCancel()
		return nil, nil, fmt.Errorf("start chrome: %w", err)
	}

	return &ChromePage{
		browserCtx:  browserCtx,
		idleTimeout: opts.NetworkIdleTimeout,
		tabCtx:      browserCtx,
	}, browserCancel, nil
}

// run executes actions on the active tab, bounded by the caller's ctx.
func (p *ChromePage) run(ctx context.Context, actions ...chromedp.Action) error {
	p.mu.Lock()
	tabCtx := p.tabCtx
	p.mu.Unlock()

	runCtx, cancel := context.WithCancel(tabCtx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, actions...)
}

// Navigate loads rawURL, then waits up to the session's network idle
// timeout for the new document to go quiet. Running out of that time is
// not an error.
func (p *ChromePage) Navigate(ctx context.Context, rawURL string) error {
	if p.idleTimeout <= 0 {
		if err := p.run(ctx, chromedp.Navigate(rawURL)); err != nil {
			return fmt.Errorf("navigate %s: %w", rawURL, err)
		}
		return nil
	}

	watch := newIdleWatch()
	err := p.run(ctx,
		page.SetLifecycleEventsEnabled(true),
		chromedp.ActionFunc(func(ctx context.Context) error {
			chromedp.ListenTarget(ctx, watch.observe)
			return nil
		}),
		chromedp.Navigate(rawURL),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			_, err = watch.wait(ctx, tree.Frame.LoaderID, p.idleTimeout)
			return err
		}),
	)
	if err != nil {
		return fmt.Errorf("navigate %s: %w", rawURL, err)
	}
	return nil
}

// idleWatch collects networkIdle lifecycle events so a navigation can wait
// for its own document, identified by loader, to go quiet.
type idleWatch struct {
	loaders chan cdp.LoaderID
}

func newIdleWatch() *idleWatch {
	return &idleWatch{loaders: make(chan cdp.LoaderID, 32)}
}

// observe is a chromedp target listener; it must not block.
func (w *idleWatch) observe(ev any) {
	e, ok := ev.(*page.EventLifecycleEvent)
	if !ok || e.Name != "networkIdle" {
		return
	}
	select {
	case w.loaders <- e.LoaderID:
	default:
	}
}

// wait reports whether loaderID went idle within timeout. Only ctx ending
// is an error.
func (w *idleWatch) wait(ctx context.Context, loaderID cdp.LoaderID, timeout time.Duration) (bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case id := <-w.loaders:
			if id == loaderID {
				return true, nil
			}
		case <-timer.C:
			return false, nil
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}

func (p *ChromePage) Location(ctx context.Context) (models.Location, error) {
	var loc models.Location
	if err := p.run(ctx, chromedp.Location(&loc.URL), chromedp.Title(&loc.Title)); err != nil {
		return loc, fmt.Errorf("read location: %w", err)
	}
	loc.Path = pathOf(loc.URL)
	return loc, nil
}

func (p *ChromePage) Tabs(ctx context.Context) ([]models.TabInfo, error) {
	infos, err := p.pageTargets(ctx)
	if err != nil {
		return nil, err
	}

	tabs := make([]models.TabInfo, len(infos))
	for i, info := range infos {
		tabs[i] = models.TabInfo{ID: i, URL: info.URL, Title: info.Title}
	}
	return tabs, nil
}

// ActivateTab switches the active tab to the index-th page target and
// brings it to the front.
func (p *ChromePage) ActivateTab(ctx context.Context, index int) error {
	infos, err := p.pageTargets(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(infos) {
		return fmt.Errorf("tab %d does not exist (%d open)", index, len(infos))
	}
	id := infos[index].TargetID

	tabCtx, tabCancel := chromedp.NewContext(p.browserCtx, chromedp.WithTargetID(id))
	if err := chromedp.Run(tabCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		return target.ActivateTarget(id).Do(ctx)
	})); err != nil {
		tabCancel()
		return fmt.Errorf("activate tab %d: %w", index, err)
	}

	p.mu.Lock()
	prev := p.tabCancel
	p.tabCtx, p.tabCancel = tabCtx, tabCancel
	p.mu.Unlock()

	if prev != nil {
		prev()
	}
	return nil
}

// Evaluate runs script in the active tab, awaiting a returned promise.
func (p *ChromePage) Evaluate(ctx context.Context, script string) (any, error) {
	var out any
	err := p.run(ctx, chromedp.Evaluate(script, &out, func(params *runtime.EvaluateParams) *runtime.EvaluateParams {
		return params.WithAwaitPromise(true)
	}))
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (p *ChromePage) Screenshot(ctx context.Context) ([]byte, error) {
	var buf []byte
	if err := p.run(ctx, chromedp.CaptureScreenshot(&buf)); err != nil {
		return nil, fmt.Errorf("capture screenshot: %w", err)
	}
	return buf, nil
}

func (p *ChromePage) TargetID() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c := chromedp.FromContext(p.tabCtx); c != nil && c.Target != nil {
		return string(c.Target.TargetID)
	}
	return ""
}

// close detaches from any tab opened by ActivateTab; the browser itself is
// released by the owning instance.
func (p *ChromePage) close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.tabCancel != nil {
		p.tabCancel()
		p.tabCancel = nil
	}
	p.tabCtx = p.browserCtx
}

func (p *ChromePage) pageTargets(ctx context.Context) ([]*target.Info, error) {
	runCtx, cancel := context.WithCancel(p.browserCtx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	all, err := chromedp.Targets(runCtx)
	if err != nil {
		return nil, fmt.Errorf("list targets: %w", err)
	}
	return pageTargets(all), nil
}

func pageTargets(all []*target.Info) []*target.Info {
	pages := make([]*target.Info, 0, len(all))
	for _, info := range all {
		if info.Type == "page" {
			pages = append(pages, info)
		}
	}
	return pages
}

func pathOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return "/"
	}
	return u.Path
}

// instance is the Instance shared by both launchers; release frees the
// process or container once the page is torn down.
type instance struct {
	page       *ChromePage
	connectURL string
	release    func(ctx context.Context) error

	once sync.Once
	err  error
}

func (i *instance) Page() Page {
	return i.page
}

func (i *instance) ConnectURL() string {
	return i.connectURL
}

func (i *instance) Close(ctx context.Context) error {
	i.once.Do(func() {
		i.page.close()
		i.err = i.release(ctx)
	})
	return i.err
}
