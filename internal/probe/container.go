package probe

import (
	"context"

	"github.com/robostack-edu/envcheck/internal/checkup"
	"github.com/robostack-edu/envcheck/internal/docker"
	"github.com/robostack-edu/envcheck/internal/model"
)

// dockerRemediation covers both failure modes of the runtime probe:
// daemon not installed and daemon installed but not running.
const dockerRemediation = "install Docker Engine and start the daemon (sudo systemctl start docker)"

// ContainerRuntime returns a check that detects the Docker socket and
// pings the daemon. The probe always yields a warn verdict on failure —
// a container runtime is convenient for the course but never required,
// so its absence must not fail the smoke test.
func ContainerRuntime() checkup.Check {
	return checkup.Check{
		Name: "container runtime",
		Run: func(ctx context.Context) model.CheckResult {
			cli, err := docker.NewClient()
			if err != nil {
				return model.Warn("container runtime", dockerRemediation, "docker socket not found: %v", err)
			}
			defer cli.Close()

			if err := cli.Ping(ctx); err != nil {
				return model.Warn("container runtime", dockerRemediation, "docker daemon not responding: %v", err)
			}
			return model.Pass("container runtime", "docker daemon reachable")
		},
	}
}
