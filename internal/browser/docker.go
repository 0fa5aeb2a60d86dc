package browser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
)

const (
	browserPort   nat.Port = "3000/tcp"
	readyRetries           = 20
	readyInterval          = 500 * time.Millisecond
)

// DockerLauncher runs one browserless Chrome container per session and
// drives it over CDP.
type DockerLauncher struct {
	client *client.Client
	image  string
	parent context.Context
	logger *slog.Logger
}

// NewDockerLauncher connects to the Docker daemon from the environment.
func NewDockerLauncher(parent context.Context, imageName string, logger *slog.Logger) (*DockerLauncher, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}

	return &DockerLauncher{
		client: cli,
		image:  imageName,
		parent: parent,
		logger: logger,
	}, nil
}

func (d *DockerLauncher) Launch(ctx context.Context, opts LaunchOptions) (Instance, error) {
	containerConfig := &container.Config{
		Image: d.image,
		Labels: map[string]string{
			"session-id": opts.SessionID,
			"managed-by": "browserbase-orchestrator",
		},
		Env: []string{
			"CONNECTION_TIMEOUT=-1",
			"MAX_CONCURRENT_SESSIONS=1",
			"PREBOOT_CHROME=true",
			"KEEP_ALIVE=true",
			"EXIT_ON_HEALTH_FAILURE=false",
			fmt.Sprintf("DEFAULT_HEADLESS=%t", opts.Headless),
		},
		ExposedPorts: nat.PortSet{browserPort: struct{}{}},
	}

	hostConfig := &container.HostConfig{
		PortBindings: nat.PortMap{
			browserPort: []nat.PortBinding{{HostIP: "127.0.0.1", HostPort: "0"}},
		},
	}

	resp, err := d.client.ContainerCreate(ctx, containerConfig, hostConfig, nil, nil, containerName(opts.SessionID))
	if err != nil {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}
	containerID := resp.ID

	// anything that fails from here on must not leave the container behind
	fail := func(err error) (Instance, error) {
		if stopErr := d.stop(context.WithoutCancel(ctx), containerID); stopErr != nil {
			d.logger.Warn("Failed to remove container after launch error", "containerId", containerID, "error", stopErr)
		}
		return nil, err
	}

	if err := d.client.ContainerStart(ctx, containerID, container.StartOptions{}); err != nil {
		return fail(fmt.Errorf("failed to start container: %w", err))
	}

	inspect, err := d.client.ContainerInspect(ctx, containerID)
	if err != nil {
		return fail(fmt.Errorf("failed to inspect container: %w", err))
	}
	bindings := inspect.NetworkSettings.Ports[browserPort]
	if len(bindings) == 0 {
		return fail(fmt.Errorf("container %s exposes no browser port", containerID))
	}
	port := bindings[0].HostPort

	if err := waitForBrowserReady(ctx, port); err != nil {
		return fail(fmt.Errorf("browser failed to become ready: %w", err))
	}

	connectURL := fmt.Sprintf("ws://127.0.0.1:%s", port)
	allocCtx, allocCancel := chromedp.NewRemoteAllocator(d.parent, connectURL)

	stop := context.AfterFunc(ctx, allocCancel)
	page, browserCancel, err := newChromePage(allocCtx, opts)
	stop()
	if err != nil {
		allocCancel()
		return fail(err)
	}

	return &instance{
		page:       page,
		connectURL: connectURL,
		release: func(ctx context.Context) error {
			browserCancel()
			allocCancel()
			return d.stop(ctx, containerID)
		},
	}, nil
}

// EnsureImage pulls the browser image unless it is already present.
func (d *DockerLauncher) EnsureImage(ctx context.Context) error {
	images, err := d.client.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return fmt.Errorf("failed to list images: %w", err)
	}

	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == d.image {
				return nil
			}
		}
	}

	d.logger.Info("Pulling browser image", "image", d.image)
	reader, err := d.client.ImagePull(ctx, d.image, image.PullOptions{})
	if err != nil {
		return fmt.Errorf("failed to pull image: %w", err)
	}
	defer reader.Close()

	_, err = io.Copy(io.Discard, reader)
	return err
}

// Close releases the Docker client.
func (d *DockerLauncher) Close() error {
	return d.client.Close()
}

func (d *DockerLauncher) stop(ctx context.Context, containerID string) error {
	timeout := 10
	if err := d.client.ContainerStop(ctx, containerID, container.StopOptions{Timeout: &timeout}); err != nil {
		return fmt.Errorf("failed to stop container: %w", err)
	}
	if err := d.client.ContainerRemove(ctx, containerID, container.RemoveOptions{}); err != nil {
		return fmt.Errorf("failed to remove container: %w", err)
	}
	return nil
}

func containerName(sessionID string) string {
	if len(sessionID) > 8 {
		sessionID = sessionID[:8]
	}
	return "session-" + sessionID
}

// waitForBrowserReady polls the DevTools version endpoint until it answers.
func waitForBrowserReady(ctx context.Context, port string) error {
	url := fmt.Sprintf("http://127.0.0.1:%s/json/version", port)

	for i := 0; i < readyRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		if resp, err := http.DefaultClient.Do(req); err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(readyInterval):
		}
	}

	return fmt.Errorf("browser did not become ready after %d retries", readyRetries)
}
