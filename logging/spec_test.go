package logging_test

import (
	"testing"

	"github.com/insanitybit/void-ship/logging"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    logging.Spec
		wantErr bool
	}{
		{
			name: "empty defaults to info",
			spec: "",
			want: logging.Spec{
				BaseLevel:  logging.LevelInfo,
				Components: map[string]logging.Level{},
			},
		},
		{
			name: "bare level",
			spec: "debug",
			want: logging.Spec{
				BaseLevel:  logging.LevelDebug,
				Components: map[string]logging.Level{},
			},
		},
		{
			name: "base plus component override",
			spec: "warn,procmaps=debug",
			want: logging.Spec{
				BaseLevel: logging.LevelWarn,
				Components: map[string]logging.Level{
					"procmaps": logging.LevelDebug,
				},
			},
		},
		{
			name: "multiple components",
			spec: "info,procmaps=debug,vmem=error",
			want: logging.Spec{
				BaseLevel: logging.LevelInfo,
				Components: map[string]logging.Level{
					"procmaps": logging.LevelDebug,
					"vmem":     logging.LevelError,
				},
			},
		},
		{
			name: "whitespace tolerated",
			spec: " warn , procmaps = debug ",
			want: logging.Spec{
				BaseLevel: logging.LevelWarn,
				Components: map[string]logging.Level{
					"procmaps": logging.LevelDebug,
				},
			},
		},
		{
			name:    "unknown level",
			spec:    "loud",
			wantErr: true,
		},
		{
			name:    "unknown component level",
			spec:    "info,procmaps=loud",
			wantErr: true,
		},
		{
			name:    "empty component name",
			spec:    "info,=debug",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := logging.ParseSpec(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSpec(%q) succeeded, want error", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSpec(%q): %v", tt.spec, err)
			}
			if got.BaseLevel != tt.want.BaseLevel {
				t.Errorf("BaseLevel = %v, want %v", got.BaseLevel, tt.want.BaseLevel)
			}
			if len(got.Components) != len(tt.want.Components) {
				t.Fatalf("Components = %v, want %v", got.Components, tt.want.Components)
			}
			for name, level := range tt.want.Components {
				if got.Components[name] != level {
					t.Errorf("Components[%q] = %v, want %v", name, got.Components[name], level)
				}
			}
		})
	}
}

func TestSpec_LevelFor(t *testing.T) {
	spec := logging.Spec{
		BaseLevel: logging.LevelWarn,
		Components: map[string]logging.Level{
			"procmaps": logging.LevelDebug,
		},
	}

	if got := spec.LevelFor("procmaps"); got != logging.LevelDebug {
		t.Errorf("LevelFor(procmaps) = %v, want debug", got)
	}
	if got := spec.LevelFor("vmem"); got != logging.LevelWarn {
		t.Errorf("LevelFor(vmem) = %v, want base warn", got)
	}
	if got := spec.LevelFor(""); got != logging.LevelWarn {
		t.Errorf("LevelFor(root) = %v, want base warn", got)
	}
}

func TestSpec_StringRoundTrip(t *testing.T) {
	spec, err := logging.ParseSpec("warn,vmem=error,procmaps=debug")
	if err != nil {
		t.Fatal(err)
	}

	want := "warn,procmaps=debug,vmem=error"
	if got := spec.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	again, err := logging.ParseSpec(spec.String())
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if again.String() != want {
		t.Errorf("round trip = %q, want %q", again.String(), want)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    logging.Level
		wantErr bool
	}{
		{in: "debug", want: logging.LevelDebug},
		{in: "INFO", want: logging.LevelInfo},
		{in: "warning", want: logging.LevelWarn},
		{in: "err", want: logging.LevelError},
		{in: "trace", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := logging.ParseLevel(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLevel(%q) succeeded, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
