package discovery

import (
	"context"
	"reflect"
	"testing"

	"github.com/packetshadow/packetshadow/internal/command/commandtest"
	"go.uber.org/zap"
)

const iwDevOutput = `phy#1
	Interface wlan1
		ifindex 5
		wdev 0x100000001
		addr 00:c0:ca:aa:bb:cc
		type managed
phy#0
	Unnamed/non-netdev interface
		wdev 0x2
	Interface wlan0
		ifindex 3
		type managed
	Interface wlan0mon
		ifindex 6
		type monitor
	Interface wlan1
		ifindex 5`

const ipBriefOutput = `lo               UNKNOWN        00:00:00:00:00:00 <LOOPBACK,UP,LOWER_UP>
eth0             UP             52:54:00:12:34:56 <BROADCAST,MULTICAST,UP,LOWER_UP>
wlp3s0           DOWN           a4:34:d9:00:11:22 <NO-CARRIER,BROADCAST,MULTICAST,UP>
WLAN9            DOWN           a4:34:d9:00:11:23 <BROADCAST,MULTICAST>
docker0          DOWN           02:42:ac:11:00:02 <NO-CARRIER,BROADCAST,MULTICAST,UP>
ath0             UP             00:11:22:33:44:55 <BROADCAST,MULTICAST,UP,LOWER_UP>

wifi1            UNKNOWN        00:11:22:33:44:66 <BROADCAST>`

func TestParseDeviceList(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []string
	}{
		{
			name:   "iw dev output with repeats",
			output: iwDevOutput,
			want:   []string{"wlan1", "wlan0", "wlan0mon"},
		},
		{
			name:   "no interface lines",
			output: "phy#0\n\tUnnamed/non-netdev interface\n",
			want:   []string{},
		},
		{
			name:   "malformed lines skipped",
			output: "Interface\n  Interfacewlan0\n  Interface   wlan2  extra\nxx Interface wlan3",
			want:   []string{"wlan2"},
		},
		{
			name:   "empty",
			output: "",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDeviceList(tt.output)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseDeviceList() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLinkList(t *testing.T) {
	prefixes := DefaultConfig().Prefixes

	got := ParseLinkList(ipBriefOutput, prefixes)
	want := []string{"wlp3s0", "ath0", "wifi1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseLinkList() = %v, want %v", got, want)
	}

	// Prefix set is configurable.
	got = ParseLinkList(ipBriefOutput, []string{"eth", "docker"})
	want = []string{"eth0", "docker0"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseLinkList() with custom prefixes = %v, want %v", got, want)
	}

	if got := ParseLinkList(ipBriefOutput, nil); len(got) != 0 {
		t.Errorf("no prefixes should match nothing, got %v", got)
	}
}

func TestScanner_Discover(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name       string
		setup      func(*commandtest.FakeRunner)
		want       []string
		wantSource Source
		wantCalls  []string
	}{
		{
			name: "primary succeeds",
			setup: func(f *commandtest.FakeRunner) {
				f.On(cfg.Primary, 0, iwDevOutput, "")
				f.On(cfg.Fallback, 0, ipBriefOutput, "")
			},
			want:       []string{"wlan1", "wlan0", "wlan0mon"},
			wantSource: SourcePrimary,
			wantCalls:  []string{"iw dev"},
		},
		{
			name: "primary fails, fallback used",
			setup: func(f *commandtest.FakeRunner) {
				f.On(cfg.Primary, 1, "", "command failed: No such device")
				f.On(cfg.Fallback, 0, ipBriefOutput, "")
			},
			want:       []string{"wlp3s0", "ath0", "wifi1"},
			wantSource: SourceFallback,
			wantCalls:  []string{"iw dev", "ip -brief link"},
		},
		{
			name: "primary empty, fallback used",
			setup: func(f *commandtest.FakeRunner) {
				f.On(cfg.Primary, 0, "", "")
				f.On(cfg.Fallback, 0, ipBriefOutput, "")
			},
			want:       []string{"wlp3s0", "ath0", "wifi1"},
			wantSource: SourceFallback,
			wantCalls:  []string{"iw dev", "ip -brief link"},
		},
		{
			name: "primary has no matching lines, fallback used",
			setup: func(f *commandtest.FakeRunner) {
				f.On(cfg.Primary, 0, "phy#0\n\tUnnamed/non-netdev interface", "")
				f.On(cfg.Fallback, 0, ipBriefOutput, "")
			},
			want:       []string{"wlp3s0", "ath0", "wifi1"},
			wantSource: SourceFallback,
			wantCalls:  []string{"iw dev", "ip -brief link"},
		},
		{
			name: "primary binary missing",
			setup: func(f *commandtest.FakeRunner) {
				f.On(cfg.Fallback, 0, ipBriefOutput, "")
			},
			want:       []string{"wlp3s0", "ath0", "wifi1"},
			wantSource: SourceFallback,
			wantCalls:  []string{"iw dev", "ip -brief link"},
		},
		{
			name:       "both fail",
			setup:      func(f *commandtest.FakeRunner) {},
			want:       []string{},
			wantSource: SourceNone,
			wantCalls:  []string{"iw dev", "ip -brief link"},
		},
		{
			name: "fallback has no wireless links",
			setup: func(f *commandtest.FakeRunner) {
				f.On(cfg.Primary, 1, "", "")
				f.On(cfg.Fallback, 0, "lo UNKNOWN\neth0 UP", "")
			},
			want:       []string{},
			wantSource: SourceNone,
			wantCalls:  []string{"iw dev", "ip -brief link"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := commandtest.NewFakeRunner()
			tt.setup(fake)
			scanner := NewScanner(cfg, fake, zap.NewNop())

			got, source := scanner.Scan(context.Background())
			if got == nil {
				t.Fatal("Scan() must return a non-nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scan() = %v, want %v", got, tt.want)
			}
			if source != tt.wantSource {
				t.Errorf("source = %v, want %v", source, tt.wantSource)
			}
			if calls := fake.CallLines(); !reflect.DeepEqual(calls, tt.wantCalls) {
				t.Errorf("calls = %v, want %v", calls, tt.wantCalls)
			}
		})
	}
}

func TestScanner_DiscoverIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	fake := commandtest.NewFakeRunner().On(cfg.Primary, 0, iwDevOutput, "")
	scanner := NewScanner(cfg, fake, nil)

	first := scanner.Discover(context.Background())
	second := scanner.Discover(context.Background())
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Discover() not idempotent: %v vs %v", first, second)
	}
}
