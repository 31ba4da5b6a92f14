package zfs

import (
	"math"
	"testing"
)

const arcstatsFixture = `13 1 0x01 147 39984 5143588585 2167489614783021
name                            type data
hits                            4    9000
misses                          4    1000
size                            4    49720066048
c                               4    49910562816
c_max                           4    67108864000
l2_hits                         4    300
l2_misses                       4    100
l2_read_bytes                   4    4096
l2_size                         4    193273528320
`

func TestParseKstatWithHeader(t *testing.T) {
	k := parseKstat(arcstatsFixture)
	if len(k.notes) != 0 {
		t.Fatalf("unexpected notes: %v", k.notes)
	}

	arc, ok := k.arc()
	if !ok {
		t.Fatal("arc() not ok")
	}
	if arc.stats.HitRate != 90 || arc.stats.MissRate != 10 {
		t.Errorf("rates = %v/%v, want 90/10", arc.stats.HitRate, arc.stats.MissRate)
	}
	if arc.stats.Size != 49720066048 || arc.stats.Target != 49910562816 {
		t.Errorf("size/target = %d/%d", arc.stats.Size, arc.stats.Target)
	}
	if arc.reads != 10000 {
		t.Errorf("reads = %d, want 10000", arc.reads)
	}

	l2, ok := k.l2()
	if !ok {
		t.Fatal("l2() not ok")
	}
	if l2.stats.HitRate != 75 || l2.ops != 400 || l2.readBytes != 4096 {
		t.Errorf("l2 = %+v", l2)
	}
}

func TestParseKstatWithoutHeader(t *testing.T) {
	k := parseKstat("hits   12345   999\nmisses  678  111\nsize 100 7\n")
	arc, ok := k.arc()
	if !ok {
		t.Fatal("arc() not ok")
	}

	if math.Abs(arc.stats.HitRate-94.8) > 0.05 {
		t.Errorf("hit rate = %v, want ~94.8", arc.stats.HitRate)
	}
	if math.Abs(arc.stats.MissRate-5.2) > 0.05 {
		t.Errorf("miss rate = %v, want ~5.2", arc.stats.MissRate)
	}
	if sum := arc.stats.HitRate + arc.stats.MissRate; math.Abs(sum-100) > 1e-9 {
		t.Errorf("hit+miss = %v, want 100", sum)
	}
}

func TestParseKstatZeroTotal(t *testing.T) {
	k := parseKstat("name type data\nhits 4 0\nmisses 4 0\nsize 4 0\n")
	arc, ok := k.arc()
	if !ok {
		t.Fatal("arc() not ok")
	}
	if arc.stats.HitRate != 0 || arc.stats.MissRate != 0 {
		t.Fatalf("rates = %v/%v, want 0/0", arc.stats.HitRate, arc.stats.MissRate)
	}
}

func TestParseKstatMalformedField(t *testing.T) {
	k := parseKstat("name type data\nhits 4 bogus\nmisses 4 50\nsize 4 1024\n")
	arc, ok := k.arc()
	if !ok {
		t.Fatal("a malformed field must not fail the parse")
	}
	if arc.stats.Size != 1024 || arc.stats.MissRate != 100 {
		t.Errorf("stats = %+v", arc.stats)
	}
	if len(k.notes) != 1 {
		t.Errorf("notes = %v, want one", k.notes)
	}
}

func TestParseKstatTargetFallsBackToCMax(t *testing.T) {
	k := parseKstat("name type data\nhits 4 1\nsize 4 10\nc_max 4 20\n")
	arc, _ := k.arc()
	if arc.stats.Target != 20 {
		t.Fatalf("target = %d, want 20", arc.stats.Target)
	}
}

func TestParseKstatDegenerate(t *testing.T) {
	if _, ok := parseKstat("").arc(); ok {
		t.Error("empty file parsed as ARC")
	}
	if _, ok := parseKstat("name type data\nhits 4 1\n").arc(); ok {
		t.Error("file without size parsed as ARC")
	}
	if _, ok := parseKstat("name type data\nhits 4 1\nsize 4 10\n").l2(); ok {
		t.Error("file without l2 counters parsed as L2ARC")
	}
}
