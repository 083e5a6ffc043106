// Package nodes drives the devnet's containers: lifecycle control of the two
// catalyst nodes plus one-shot runs of the forced inclusion toolbox.
package nodes

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/ethereum/go-ethereum/log"
)

// NewDockerClient creates a docker client from the environment and checks the
// daemon is reachable.
func NewDockerClient() (*client.Client, error) {
	apiClient, err := client.NewClientWithOpts(client.FromEnv)
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	if _, err := apiClient.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to Docker: %w", err)
	}
	return apiClient, nil
}

// containerName maps a node number to its compose container name.
func containerName(node int) (string, error) {
	switch node {
	case 1:
		return "catalyst-node-1", nil
	case 2:
		return "catalyst-node-2", nil
	default:
		return "", fmt.Errorf("no catalyst node numbered %d", node)
	}
}

// Controller stops, starts and restarts catalyst nodes by number.
type Controller struct {
	log log.Logger
	cli *client.Client
}

func NewController(cli *client.Client, logger log.Logger) *Controller {
	return &Controller{log: logger, cli: cli}
}

// Stop halts the node's container. The node loses its mempool and preconf
// head; only L1-posted state survives a later start.
func (c *Controller) Stop(ctx context.Context, node int) error {
	name, err := containerName(node)
	if err != nil {
		return err
	}
	c.log.Info("stopping catalyst node", "container", name)
	if err := c.cli.ContainerStop(ctx, name, container.StopOptions{}); err != nil {
		return fmt.Errorf("failed to stop container %s: %w", name, err)
	}
	return nil
}

// Start brings a stopped node back up.
func (c *Controller) Start(ctx context.Context, node int) error {
	name, err := containerName(node)
	if err != nil {
		return err
	}
	c.log.Info("starting catalyst node", "container", name)
	if err := c.cli.ContainerStart(ctx, name, container.StartOptions{}); err != nil {
		return fmt.Errorf("failed to start container %s: %w", name, err)
	}
	return nil
}

// Restart bounces the node with the daemon's default stop timeout.
func (c *Controller) Restart(ctx context.Context, node int) error {
	name, err := containerName(node)
	if err != nil {
		return err
	}
	c.log.Info("restarting catalyst node", "container", name)
	if err := c.cli.ContainerRestart(ctx, name, container.StopOptions{}); err != nil {
		return fmt.Errorf("failed to restart container %s: %w", name, err)
	}
	return nil
}

// IsRunning reports whether the node's container is up.
func (c *Controller) IsRunning(ctx context.Context, node int) (bool, error) {
	name, err := containerName(node)
	if err != nil {
		return false, err
	}
	info, err := c.cli.ContainerInspect(ctx, name)
	if err != nil {
		return false, fmt.Errorf("failed to inspect container %s: %w", name, err)
	}
	return info.State.Running, nil
}

// EnsureRunning starts the node if it is not already up. Teardowns use it to
// leave the devnet the way scenarios expect to find it.
func (c *Controller) EnsureRunning(ctx context.Context, node int) error {
	running, err := c.IsRunning(ctx, node)
	if err != nil {
		return err
	}
	if running {
		return nil
	}
	return c.Start(ctx, node)
}
