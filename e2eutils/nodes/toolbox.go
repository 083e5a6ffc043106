package nodes

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/google/uuid"

	"github.com/nethswitchboard/catalyst-e2e/config"
)

const toolboxImage = "nethswitchboard/taiko-forced-inclusion-toolbox"

// The toolbox prints the L1 submission as "... hash=0x...".
var txHashPattern = regexp.MustCompile(`hash=(0x[a-fA-F0-9]{64})`)

// Toolbox runs the forced inclusion toolbox image against the devnet. Each
// send is a fresh container sharing the host network so the toolbox reaches
// L1 on localhost, configured through the same environment the harness runs
// with.
type Toolbox struct {
	log log.Logger
	cli *client.Client
	cfg *config.Config
}

func NewToolbox(cli *client.Client, cfg *config.Config, logger log.Logger) *Toolbox {
	return &Toolbox{log: logger, cli: cli, cfg: cfg}
}

// imageFor picks the toolbox build matching the protocol deployment.
func imageFor(v config.Variant) string {
	if v == config.VariantShasta {
		return toolboxImage + ":shasta"
	}
	return toolboxImage
}

// SendForcedInclusion submits one forced inclusion request to the L1 queue
// and returns the hash of the L2 transaction it carries. nonceDelta offsets
// the forced inclusion sender's nonce so consecutive sends in the same batch
// don't collide.
func (t *Toolbox) SendForcedInclusion(ctx context.Context, nonceDelta uint64) (common.Hash, error) {
	img := imageFor(t.cfg.Protocol)
	if reader, err := t.cli.ImagePull(ctx, img, image.PullOptions{}); err != nil {
		t.log.Warn("toolbox image pull failed, using local copy", "image", img, "err", err)
	} else {
		_, _ = io.Copy(io.Discard, reader)
		reader.Close()
	}

	name := "fi-toolbox-" + uuid.NewString()
	created, err := t.cli.ContainerCreate(ctx, &container.Config{
		Image: img,
		Cmd:   []string{"send", "--nonce-delta", strconv.FormatUint(nonceDelta, 10)},
		Env:   t.cfg.EnvStrings(),
	}, &container.HostConfig{
		NetworkMode: "host",
	}, nil, nil, name)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to create toolbox container: %w", err)
	}
	defer func() {
		if err := t.cli.ContainerRemove(ctx, created.ID, container.RemoveOptions{Force: true}); err != nil {
			t.log.Warn("failed to remove toolbox container", "container", name, "err", err)
		}
	}()

	t.log.Info("sending forced inclusion", "image", img, "nonce_delta", nonceDelta)
	if err := t.cli.ContainerStart(ctx, created.ID, container.StartOptions{}); err != nil {
		return common.Hash{}, fmt.Errorf("failed to start toolbox container: %w", err)
	}

	var exitCode int64
	waitCh, errCh := t.cli.ContainerWait(ctx, created.ID, container.WaitConditionNotRunning)
	select {
	case resp := <-waitCh:
		exitCode = resp.StatusCode
	case err := <-errCh:
		return common.Hash{}, fmt.Errorf("waiting for toolbox container: %w", err)
	case <-ctx.Done():
		return common.Hash{}, ctx.Err()
	}

	stdout, stderr, err := t.containerOutput(ctx, created.ID)
	if err != nil {
		return common.Hash{}, err
	}
	t.log.Debug("toolbox output", "stdout", stdout, "stderr", stderr)

	if exitCode != 0 {
		return common.Hash{}, fmt.Errorf("toolbox exited with status %d: %s", exitCode, strings.TrimSpace(stderr))
	}

	txHash, err := parseTxHash(stdout)
	if err != nil {
		return common.Hash{}, err
	}
	t.log.Info("forced inclusion submitted", "tx", txHash)
	return txHash, nil
}

func (t *Toolbox) containerOutput(ctx context.Context, id string) (string, string, error) {
	logs, err := t.cli.ContainerLogs(ctx, id, container.LogsOptions{ShowStdout: true, ShowStderr: true})
	if err != nil {
		return "", "", fmt.Errorf("failed to read toolbox logs: %w", err)
	}
	defer logs.Close()

	var stdout, stderr bytes.Buffer
	if _, err := stdcopy.StdCopy(&stdout, &stderr, logs); err != nil {
		return "", "", fmt.Errorf("failed to demux toolbox logs: %w", err)
	}
	return stdout.String(), stderr.String(), nil
}

// parseTxHash extracts the forced inclusion transaction hash from the
// toolbox's stdout.
func parseTxHash(output string) (common.Hash, error) {
	m := txHashPattern.FindStringSubmatch(output)
	if m == nil {
		return common.Hash{}, fmt.Errorf("no transaction hash in toolbox output: %q", strings.TrimSpace(output))
	}
	return common.HexToHash(m[1]), nil
}
