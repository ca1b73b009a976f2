// Package status builds ordered snapshots of every tracked goal's identity
// and lifecycle status, for broadcast on the status channel.
package status

import (
	"github.com/goalmesh/goalmesh/core"
	"github.com/goalmesh/goalmesh/registry"
)

// Snapshot returns one entry per tracked goal, in whatever order the registry
// currently holds them. Consumers must treat the result as a set view: the
// order carries no meaning and changes across removals. An empty registry
// yields a nil slice with no allocation performed.
func Snapshot(reg *registry.Registry) []core.StatusEntry {
	n := reg.Len()
	if n == 0 {
		return nil
	}
	entries := make([]core.StatusEntry, n)
	for i, h := range reg.Snapshot() {
		entries[i] = core.StatusEntry{Info: h.Info(), Status: h.Status()}
	}
	return entries
}
