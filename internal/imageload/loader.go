// Package imageload pushes container images into kind cluster nodes. Kind
// nodes cannot pull from the host's image store, and multi-arch images often
// fail the direct load path, so the loader falls back to a platform-specific
// registry pull when the local archive route does not work.
package imageload

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/google/go-containerregistry/pkg/crane"
	v1 "github.com/google/go-containerregistry/pkg/v1"
	"sigs.k8s.io/kind/pkg/cluster"
	"sigs.k8s.io/kind/pkg/cluster/nodes"
	"sigs.k8s.io/kind/pkg/cluster/nodeutils"
)

// ClusterProvider is the part of kind's cluster provider the loader needs.
type ClusterProvider interface {
	List() ([]string, error)
	ListInternalNodes(name string) ([]nodes.Node, error)
}

// CommandRunner abstracts host command execution for the docker save path.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

type Loader struct {
	provider ClusterProvider
	runner   CommandRunner
}

// NewLoader returns a Loader backed by the docker-based kind provider and the
// host's docker CLI.
func NewLoader() *Loader {
	return &Loader{
		provider: cluster.NewProvider(cluster.ProviderWithDocker()),
		runner:   execRunner{},
	}
}

// NewLoaderWithCollaborators wires explicit collaborators. Used by tests.
func NewLoaderWithCollaborators(provider ClusterProvider, runner CommandRunner) *Loader {
	return &Loader{provider: provider, runner: runner}
}

// Clusters lists the kind clusters visible to the provider.
func (l *Loader) Clusters() ([]string, error) {
	clusters, err := l.provider.List()
	if err != nil {
		return nil, fmt.Errorf("listing kind clusters: %w", err)
	}
	return clusters, nil
}

// Load pushes the image into every node of the named cluster. It first tries
// the host's image store via docker save. If that fails, typically because
// the host only has a manifest list for a foreign platform, it pulls a
// platform-specific image from the registry and loads that archive instead.
func (l *Loader) Load(ctx context.Context, image, clusterName, platform string) error {
	log := logr.FromContextOrDiscard(ctx).WithValues("image", image, "cluster", clusterName)

	if err := l.ensureCluster(clusterName); err != nil {
		return err
	}

	clusterNodes, err := l.provider.ListInternalNodes(clusterName)
	if err != nil {
		return fmt.Errorf("listing nodes of cluster %q: %w", clusterName, err)
	}
	if len(clusterNodes) == 0 {
		return fmt.Errorf("cluster %q has no nodes", clusterName)
	}

	dir, err := os.MkdirTemp("", "imageload-")
	if err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(dir)
	archive := filepath.Join(dir, "image.tar")

	log.V(1).Info("saving image from host store")
	if saveErr := l.runner.Run(ctx, "docker", "save", image, "-o", archive); saveErr != nil {
		log.V(1).Info("docker save failed", "error", saveErr)
	} else if loadErr := loadArchive(clusterNodes, archive); loadErr != nil {
		log.V(1).Info("archive load from host store failed", "error", loadErr)
	} else {
		log.Info("image loaded from host store")
		return nil
	}

	log.V(1).Info("pulling platform-specific image", "platform", platform)
	if err := l.pullToArchive(ctx, image, platform, archive); err != nil {
		return fmt.Errorf("loading %q into cluster %q: all methods failed, last: %w",
			image, clusterName, err)
	}
	if err := loadArchive(clusterNodes, archive); err != nil {
		return fmt.Errorf("loading pulled archive into cluster %q: %w", clusterName, err)
	}
	log.Info("image loaded via platform-specific pull", "platform", platform)
	return nil
}

func (l *Loader) ensureCluster(clusterName string) error {
	clusters, err := l.Clusters()
	if err != nil {
		return err
	}
	for _, c := range clusters {
		if c == clusterName {
			return nil
		}
	}
	return fmt.Errorf(
		"kind cluster %q not found, available: %s",
		clusterName, strings.Join(clusters, ", "))
}

func (l *Loader) pullToArchive(ctx context.Context, image, platform, path string) error {
	parsed, err := v1.ParsePlatform(platform)
	if err != nil {
		return fmt.Errorf("parsing platform %q: %w", platform, err)
	}

	img, err := crane.Pull(image,
		crane.WithContext(ctx), crane.WithPlatform(parsed))
	if err != nil {
		return fmt.Errorf("pulling %q for %s: %w", image, platform, err)
	}

	if err := crane.Save(img, image, path); err != nil {
		return fmt.Errorf("writing %q to archive: %w", image, err)
	}
	return nil
}

func loadArchive(clusterNodes []nodes.Node, path string) error {
	for _, node := range clusterNodes {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening image archive: %w", err)
		}

		err = nodeutils.LoadImageArchive(node, f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("loading archive into node %s: %w", node.String(), err)
		}
	}
	return nil
}
