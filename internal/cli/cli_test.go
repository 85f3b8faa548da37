package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgsToCamelCase(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want Args
	}{
		{
			name: "hyphenated key and positional dropped",
			in:   map[string]any{"foo-bar": 1, "_": []string{"x"}},
			want: Args{"fooBar": 1},
		},
		{
			name: "plain key unchanged",
			in:   map[string]any{"a": 1},
			want: Args{"a": 1},
		},
		{
			name: "several words",
			in:   map[string]any{"max-request-retries": 3},
			want: Args{"maxRequestRetries": 3},
		},
		{
			name: "doubled hyphen",
			in:   map[string]any{"foo--bar": true},
			want: Args{"foobar": true},
		},
		{
			name: "trailing hyphen",
			in:   map[string]any{"foo-": "v"},
			want: Args{"foo": "v"},
		},
		{
			name: "leading hyphen",
			in:   map[string]any{"-x": "v"},
			want: Args{"X": "v"},
		},
		{
			name: "digit after hyphen",
			in:   map[string]any{"retry-2": "v"},
			want: Args{"retry2": "v"},
		},
		{
			name: "only positional",
			in:   map[string]any{"_": []string{}},
			want: Args{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ArgsToCamelCase(tt.in))
		})
	}
}

func TestArgsToCamelCaseDoesNotMutateInput(t *testing.T) {
	in := map[string]any{"user-id": "u1", "_": []string{"a"}}

	_ = ArgsToCamelCase(in)

	assert.Equal(t, map[string]any{"user-id": "u1", "_": []string{"a"}}, in)
}

func TestArgsToCamelCaseIsIdempotent(t *testing.T) {
	in := map[string]any{"dry-run": true, "token": "t", "build-tag": "latest"}

	once := ArgsToCamelCase(in)
	twice := ArgsToCamelCase(once)

	assert.Equal(t, once, twice)
}

func TestArgsAccessors(t *testing.T) {
	args := Args{"token": "t", "force": true, "verbose": 2}

	assert.Equal(t, "t", args.String("token"))
	assert.True(t, args.Bool("force"))
	assert.Equal(t, 2, args.Int("verbose"))

	assert.Equal(t, "", args.String("force"))
	assert.False(t, args.Bool("missing"))
	assert.Equal(t, 0, args.Int("token"))
}

func TestCollectArgs(t *testing.T) {
	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	cmd.Flags().String("user-id", "", "")
	cmd.Flags().Bool("dry-run", false, "")
	cmd.Flags().CountP("verbose", "v", "")
	cmd.Flags().StringSlice("env", nil, "")
	cmd.Flags().Int("memory-mbytes", 1024, "")

	require.NoError(t, cmd.ParseFlags([]string{"--user-id", "u1", "--dry-run", "-vv", "--env", "A=1,B=2"}))

	raw := CollectArgs(cmd, []string{"my-actor"})

	assert.Equal(t, map[string]any{
		"_":             []string{"my-actor"},
		"user-id":       "u1",
		"dry-run":       true,
		"verbose":       2,
		"env":           []string{"A=1", "B=2"},
		"memory-mbytes": 1024,
	}, raw)

	args := ArgsToCamelCase(raw)
	assert.Equal(t, "u1", args.String("userId"))
	assert.True(t, args.Bool("dryRun"))
	assert.Equal(t, 1024, args.Int("memoryMbytes"))
	assert.NotContains(t, args, "_")
}

func TestArgsToCamelCaseCollisions(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want Args
	}{
		{
			name: "camel case key wins over hyphenated",
			in:   map[string]any{"foo-bar": 1, "fooBar": 2},
			want: Args{"fooBar": 2},
		},
		{
			name: "camel case key wins regardless of sort position",
			in:   map[string]any{"a-b": 1, "aB": 2, "a--B": 3},
			want: Args{"aB": 2},
		},
		{
			name: "last hyphenated key in sorted order wins",
			in:   map[string]any{"foo--Bar": 1, "foo-bar": 2},
			want: Args{"fooBar": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Map iteration order varies between runs; the result must not.
			for i := 0; i < 50; i++ {
				require.Equal(t, tt.want, ArgsToCamelCase(tt.in))
			}
		})
	}
}
