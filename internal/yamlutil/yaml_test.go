package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-mdsite/internal/yamlutil"
)

type testConfig struct {
	Name    string `yaml:"name"`
	Count   int    `yaml:"count"`
	Enabled bool   `yaml:"enabled"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Parses YAML into Go structs, rejecting unknown fields
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("valid YAML", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		err := yamlutil.UnmarshalStrict([]byte("name: test\ncount: 42\nenabled: true"), &cfg)
		if err != nil {
			t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
		}
		if cfg.Name != "test" {
			t.Errorf("Name = %q, want %q", cfg.Name, "test")
		}
		if cfg.Count != 42 {
			t.Errorf("Count = %d, want %d", cfg.Count, 42)
		}
		if !cfg.Enabled {
			t.Error("Enabled = false, want true")
		}
	})

	t.Run("unknown field fails", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		err := yamlutil.UnmarshalStrict([]byte("name: ok\nbogus: true"), &cfg)
		if err == nil {
			t.Fatal("UnmarshalStrict() expected error for unknown field")
		}
	})

	t.Run("nil data", func(t *testing.T) {
		t.Parallel()

		err := yamlutil.UnmarshalStrict(nil, &testConfig{})
		if !errors.Is(err, yamlutil.ErrNilData) {
			t.Errorf("UnmarshalStrict() error = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()

		err := yamlutil.UnmarshalStrict([]byte("name: test"), nil)
		if !errors.Is(err, yamlutil.ErrNilDestination) {
			t.Errorf("UnmarshalStrict() error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("input too large", func(t *testing.T) {
		t.Parallel()

		data := []byte("name: " + strings.Repeat("x", yamlutil.MaxInputSize))
		err := yamlutil.UnmarshalStrict(data, &testConfig{})
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("UnmarshalStrict() error = %v, want ErrInputTooLarge", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestDecodeStringMap - Flat string-to-string mappings only
// ---------------------------------------------------------------------------

func TestDecodeStringMap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		want    map[string]string
		wantErr error
	}{
		{
			name: "flat string mapping",
			data: "title: \"My Website\"\nauthor: Jane",
			want: map[string]string{"title": "My Website", "author": "Jane"},
		},
		{
			name: "quoted number stays string",
			data: "version: \"42\"",
			want: map[string]string{"version": "42"},
		},
		{
			name:    "bare integer value rejected",
			data:    "count: 42",
			wantErr: yamlutil.ErrNotStringValue,
		},
		{
			name:    "boolean value rejected",
			data:    "draft: true",
			wantErr: yamlutil.ErrNotStringValue,
		},
		{
			name:    "list value rejected",
			data:    "tags:\n  - a\n  - b",
			wantErr: yamlutil.ErrNotStringValue,
		},
		{
			name:    "nested mapping rejected",
			data:    "meta:\n  inner: x",
			wantErr: yamlutil.ErrNotStringValue,
		},
		{
			name:    "null value rejected",
			data:    "title:",
			wantErr: yamlutil.ErrNotStringValue,
		},
		{
			name:    "scalar document rejected",
			data:    "just a string",
			wantErr: yamlutil.ErrNotMapping,
		},
		{
			name:    "malformed YAML rejected",
			data:    "title: [unclosed",
			wantErr: yamlutil.ErrNotMapping,
		},
		{
			name:    "empty input",
			data:    "",
			wantErr: yamlutil.ErrNilData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := yamlutil.DecodeStringMap([]byte(tt.data))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecodeStringMap() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeStringMap() unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("DecodeStringMap() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("DecodeStringMap()[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}
