package zfs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rusenback/zfscachemon/internal/source"
)

// ListPools returns the imported pool names in zpool's order
func ListPools(ctx context.Context, r source.Runner, timeout time.Duration) ([]string, error) {
	out, err := r.Run(ctx, "zpool", []string{"list", "-H", "-o", "name"}, timeout)
	if err != nil {
		if errors.Is(err, source.ErrNotFound) {
			return nil, newError(NoTargetFound, err, "zpool command not available")
		}
		return nil, classify(err, "listing pools")
	}

	var pools []string
	for _, line := range strings.Split(out, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			pools = append(pools, name)
		}
	}
	return pools, nil
}

// SelectPool validates name against the imported pools. An empty name
// picks the first pool.
func SelectPool(ctx context.Context, r source.Runner, name string, timeout time.Duration) (string, error) {
	pools, err := ListPools(ctx, r, timeout)
	if err != nil {
		return "", err
	}
	if len(pools) == 0 {
		return "", newError(NoTargetFound, nil, "no ZFS pools imported")
	}
	if name == "" {
		return pools[0], nil
	}
	for _, p := range pools {
		if p == name {
			return p, nil
		}
	}
	return "", newError(NoTargetFound, nil, "pool %q not found (available: %s)", name, strings.Join(pools, ", "))
}
