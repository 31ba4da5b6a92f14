package zfs

import (
	"math"
	"testing"
)

const iostatFixture = `                     capacity     operations     bandwidth    total_wait
pool               alloc   free   read  write   read  write   read  write
-----------------  -----  -----  -----  -----  -----  -----  -----  -----
data               3.21T  4.04T     45    312  5.62M  38.1M    4ms    2ms
  mirror-0         3.21T  4.04T     45    187  5.62M  26.1M    4ms    3ms
    sda                -      -     22     93  2.81M  13.0M    4ms    3ms
logs                   -      -      -      -      -      -      -      -
  mirror-1          124M   232G      0    125      0  12.0M      -  612us
    nvme1n1p3          -      -      0     63      0  6.00M      -  627us
cache                  -      -      -      -      -      -      -      -
  nvme0n1p4         180G  52.4G     12      8  1.41M  2.10M    1ms    2ms
-----------------  -----  -----  -----  -----  -----  -----  -----  -----
`

func TestParseIostatDevice(t *testing.T) {
	row, notes, ok := parseIostatDevice(iostatFixture, "mirror-1")
	if !ok {
		t.Fatal("mirror-1 not found")
	}
	if len(notes) != 0 {
		t.Errorf("notes = %v", notes)
	}
	if row.writeOps != 125 || row.writeBytes != 12*1024*1024 {
		t.Errorf("row = %+v", row)
	}
	if !row.hasLatency || math.Abs(row.latencyMs-0.612) > 1e-9 {
		t.Errorf("latency = %v", row.latencyMs)
	}
}

func TestParseIostatPrefersLogsSection(t *testing.T) {
	// the same name outside the logs section must lose
	text := "pool alloc free read write read write\n" +
		"tank 1G 1G 0 0 0 0\n" +
		"  nvme0n1 - - 0 999 0 1G\n" +
		"logs - - - - - -\n" +
		"  nvme0n1 - - 0 7 0 1M\n"

	row, _, ok := parseIostatDevice(text, "nvme0n1")
	if !ok || row.writeOps != 7 {
		t.Fatalf("row = %+v, ok = %v", row, ok)
	}
	if row.hasLatency {
		t.Error("latency reported without -l columns")
	}
}

func TestParseIostatFallsBackOutsideLogs(t *testing.T) {
	row, _, ok := parseIostatDevice(iostatFixture, "mirror-0")
	if !ok || row.writeOps != 187 {
		t.Fatalf("row = %+v, ok = %v", row, ok)
	}
}

func TestParseIostatMissingDevice(t *testing.T) {
	if _, _, ok := parseIostatDevice(iostatFixture, "nvme9n1"); ok {
		t.Error("unknown device found")
	}
	if _, _, ok := parseIostatDevice("", "mirror-1"); ok {
		t.Error("device found in empty output")
	}
}

func TestParseIostatMalformedField(t *testing.T) {
	text := "logs - - - - - -\n  log0 - - 0 lots 0 1M 0 1ms\n"
	row, notes, ok := parseIostatDevice(text, "log0")
	if ok {
		// "lots" is not numeric so the row is not a data row at all
		t.Fatalf("row = %+v", row)
	}
	if len(notes) != 0 {
		t.Errorf("notes = %v", notes)
	}

	text = "logs - - - - - -\n  log0 - - 0 5 0 1M 0 1x\n"
	row, notes, ok = parseIostatDevice(text, "log0")
	if !ok || row.writeOps != 5 || row.latencyMs != 0 || len(notes) != 1 {
		t.Fatalf("row = %+v, notes = %v, ok = %v", row, notes, ok)
	}
}

func TestParseBlockStat(t *testing.T) {
	ticks, ok := parseBlockStat("  1204889 0 96123422 455678 9876543 0 123456789 7654321 0 2345670 8111100 0 0\n")
	if !ok || ticks != 2345670 {
		t.Fatalf("ticks = %d, ok = %v", ticks, ok)
	}
	if _, ok := parseBlockStat("1 2 3"); ok {
		t.Error("short stat line accepted")
	}
}
