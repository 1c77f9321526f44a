// Package docker provides a thin wrapper around the Docker Engine SDK
// client used by the optional container runtime probe.
//
// The wrapper handles Docker socket auto-detection and daemon
// connectivity verification. Nothing in the checker manages containers —
// the only question answered here is "would `docker run` work on this
// machine right now?".
package docker

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/docker/docker/client"
)

// defaultPingTimeout is the maximum duration to wait for a Docker daemon
// response during a Ping operation. 5 seconds is generous enough for most
// environments, including Docker Desktop which can be slower than native
// Linux Docker.
const defaultPingTimeout = 5 * time.Second

// Client wraps the Docker Engine SDK client. We wrap rather than embed
// to expose only the two operations the probe needs: Ping and Close.
type Client struct {
	inner *client.Client
}

// NewClient creates a Docker client with automatic socket detection.
//
// The detection strategy follows this priority order:
//  1. DOCKER_HOST environment variable (if set, used as-is)
//  2. Platform default socket paths:
//     - Linux: /var/run/docker.sock
//     - macOS: /var/run/docker.sock, then ~/.docker/run/docker.sock
//
// The course targets Ubuntu, so no Windows named-pipe probing is done;
// on other platforms detection simply reports the socket as absent.
func NewClient() (*Client, error) {
	// Respect an explicit DOCKER_HOST unconditionally and let the SDK
	// handle the connection string parsing.
	host := os.Getenv("DOCKER_HOST")
	if host == "" {
		detected, err := detectDockerHost()
		if err != nil {
			return nil, err
		}
		host = detected
	}

	// WithAPIVersionNegotiation ensures compatibility across daemon
	// versions without hardcoding a specific API version.
	c, err := client.NewClientWithOpts(
		client.WithHost(host),
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client for host %q: %w", host, err)
	}
	return &Client{inner: c}, nil
}

// detectDockerHost probes the known socket paths for the current platform
// and returns the host URI for the first one that exists.
//
// Existence is checked with os.Stat rather than by dialing: a present
// socket with no listening daemon is Ping's problem to report, and the
// distinction matters for the remediation shown to the student.
func detectDockerHost() (string, error) {
	var candidates []string
	switch runtime.GOOS {
	case "linux":
		candidates = []string{"/var/run/docker.sock"}
	case "darwin":
		candidates = []string{"/var/run/docker.sock"}
		if home, err := os.UserHomeDir(); err == nil {
			candidates = append(candidates, home+"/.docker/run/docker.sock")
		}
	default:
		return "", fmt.Errorf("no Docker socket detection for platform %s", runtime.GOOS)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return "unix://" + path, nil
		}
	}
	return "", fmt.Errorf("Docker socket not found at any of %v", candidates)
}

// Ping verifies that the Docker daemon is reachable and responsive,
// waiting up to defaultPingTimeout for a reply.
func (c *Client) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()

	if _, err := c.inner.Ping(pingCtx); err != nil {
		return fmt.Errorf("docker daemon did not respond: %w", err)
	}
	return nil
}

// Close releases the resources held by the Docker client.
// It is safe to call multiple times.
func (c *Client) Close() error {
	if c.inner != nil {
		return c.inner.Close()
	}
	return nil
}
