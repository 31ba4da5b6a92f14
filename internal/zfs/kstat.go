package zfs

import (
	"bufio"
	"strings"

	"github.com/rusenback/zfscachemon/internal/model"
)

// ArcstatsPath is the kernel statistics file for the ARC and L2ARC
const ArcstatsPath = "/proc/spl/kstat/zfs/arcstats"

// counters we read from arcstats, anything else is ignored
var kstatLabels = map[string]bool{
	"hits": true, "misses": true, "size": true, "c": true, "c_max": true,
	"l2_hits": true, "l2_misses": true, "l2_size": true, "l2_read_bytes": true,
}

// kstat is a parsed arcstats file
type kstat struct {
	values map[string]uint64
	notes  []string
}

func (k kstat) has(label string) bool {
	_, ok := k.values[label]
	return ok
}

// parseKstat scans labelled counter lines. With the usual "name type data"
// header the value column comes from the header; without it the first
// column after the label is used.
func parseKstat(text string) kstat {
	f := &fields{source: "arcstats"}
	k := kstat{values: make(map[string]uint64)}
	valueCol := 1

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}

		if parts[0] == "name" {
			for i, p := range parts {
				if p == "data" {
					valueCol = i
				}
			}
			continue
		}

		if !kstatLabels[parts[0]] || len(parts) <= valueCol {
			continue
		}
		k.values[parts[0]] = f.integer(parts[0], parts[valueCol])
	}

	k.notes = f.notes
	return k
}

// arcCounters is the ARC part of arcstats. Reads is cumulative.
type arcCounters struct {
	stats model.ArcStats
	reads uint64
}

// arc extracts ARC figures. ok is false when the file carried neither
// hit/miss counters nor a size.
func (k kstat) arc() (arcCounters, bool) {
	if !(k.has("hits") || k.has("misses")) || !k.has("size") {
		return arcCounters{}, false
	}

	hits, misses := k.values["hits"], k.values["misses"]
	target, ok := k.values["c"]
	if !ok {
		target = k.values["c_max"]
	}

	return arcCounters{
		stats: model.ArcStats{
			HitRate:  percent(hits, misses),
			MissRate: percent(misses, hits),
			Size:     k.values["size"],
			Target:   target,
		},
		reads: hits + misses,
	}, true
}

// l2Counters is the L2ARC part of arcstats. Ops and ReadBytes are
// cumulative.
type l2Counters struct {
	stats     model.L2ArcStats
	ops       uint64
	readBytes uint64
}

func (k kstat) l2() (l2Counters, bool) {
	if !k.has("l2_hits") && !k.has("l2_misses") {
		return l2Counters{}, false
	}

	hits, misses := k.values["l2_hits"], k.values["l2_misses"]
	return l2Counters{
		stats: model.L2ArcStats{
			HitRate:  percent(hits, misses),
			MissRate: percent(misses, hits),
			Size:     k.values["l2_size"],
		},
		ops:       hits + misses,
		readBytes: k.values["l2_read_bytes"],
	}, true
}
