package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/wardrobe/internal/inventory"
	"github.com/mesh-intelligence/wardrobe/pkg/types"
	"github.com/mesh-intelligence/wardrobe/pkg/wardrobe"
)

const demoOutput = `Wardrobe contents:
T-Shirt (M) - Casual wear
Jeans (32) - Slim fit
Jacket (L) - Winter coat
Running Shoes (9) - Sportswear
Ankle Socks (1 Size) - Comfortable

Check if ready to go out:
Number of clothing types: 5
Ready to go out: Yes

Sorted wardrobe by size:
Ankle Socks (1 Size) - Comfortable
Jeans (32) - Slim fit
Running Shoes (9) - Sportswear
Jacket (L) - Winter coat
T-Shirt (M) - Casual wear
`

// isolate points the CLI at an empty config dir and clears the
// environment overrides. It returns the config dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("WARDROBE_CONFIG_DIR", dir)
	t.Setenv("WARDROBE_BACKEND", "")
	t.Setenv("WARDROBE_ITEMS_FILE", "")
	t.Setenv("WARDROBE_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "")
	return dir
}

// run executes a fresh root command with args.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDemoOutput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "root command", args: nil},
		{name: "demo subcommand", args: []string{"demo"}},
		{name: "sqlite backend", args: []string{"demo", "--backend", "sqlite"}},
		{name: "color on a non-terminal", args: []string{"--color"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			stdout, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, demoOutput, stdout)
		})
	}
}

func TestDemoJSON(t *testing.T) {
	isolate(t)
	stdout, _, err := run(t, "--json")
	require.NoError(t, err)

	var report wardrobe.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, types.Readiness{TypeCount: 5, Ready: true}, report.Readiness)
	require.Len(t, report.Contents, 5)
	require.Len(t, report.Sorted, 5)
	assert.Equal(t, "T-Shirt", report.Contents[0].Name)
	assert.Equal(t, "Ankle Socks", report.Sorted[0].Name)
	require.NotNil(t, report.Sorted[0].Type)
	assert.Equal(t, types.Socks, *report.Sorted[0].Type)
	assert.NotEmpty(t, report.Sorted[0].ItemID)
}

func TestList(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "insertion order",
			args: []string{"list"},
			want: "T-Shirt (M) - Casual wear\nJeans (32) - Slim fit\nJacket (L) - Winter coat\nRunning Shoes (9) - Sportswear\nAnkle Socks (1 Size) - Comfortable\n",
		},
		{
			name: "sorted by size",
			args: []string{"list", "--sorted"},
			want: "Ankle Socks (1 Size) - Comfortable\nJeans (32) - Slim fit\nRunning Shoes (9) - Sportswear\nJacket (L) - Winter coat\nT-Shirt (M) - Casual wear\n",
		},
		{
			name: "formal only",
			args: []string{"list", "--formal"},
			want: "T-Shirt (M) - Casual wear\nJacket (L) - Winter coat\n",
		},
		{
			name: "formal and sorted on sqlite",
			args: []string{"list", "--formal", "--sorted", "--backend", "sqlite"},
			want: "Jacket (L) - Winter coat\nT-Shirt (M) - Casual wear\n",
		},
		{
			name: "by type",
			args: []string{"list", "--type", "SOCKS"},
			want: "Ankle Socks (1 Size) - Comfortable\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			stdout, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestListJSON(t *testing.T) {
	isolate(t)
	stdout, _, err := run(t, "list", "--json", "--type", "jeans")
	require.NoError(t, err)

	var items []*types.Item
	require.NoError(t, json.Unmarshal([]byte(stdout), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Jeans", items[0].Name)
	assert.Equal(t, "32", items[0].Size)
}

func TestListUnknownType(t *testing.T) {
	isolate(t)
	_, _, err := run(t, "list", "--type", "hat")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidClothingType)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestReady(t *testing.T) {
	dir := isolate(t)
	items := writeFile(t, dir, "closet.yaml", `
- name: T-Shirt
  description: Casual wear
  size: M
  type: shirt
- name: Jeans
  description: Slim fit
  size: "32"
  type: jeans
- name: Polo
  description: Smart
  size: L
  type: shirt
`)

	stdout, _, err := run(t, "ready", "--items", items)
	require.NoError(t, err)
	assert.Equal(t, "Number of clothing types: 2\nReady to go out: No\n", stdout)

	stdout, _, err = run(t, "ready", "--json")
	require.NoError(t, err)
	var r types.Readiness
	require.NoError(t, json.Unmarshal([]byte(stdout), &r))
	assert.Equal(t, types.Readiness{TypeCount: 5, Ready: true}, r)
}

func TestConfigFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, "closet.jsonl", `{"name":"Scarf","description":"Wool","size":"1 Size"}
{"name":"Blazer","description":"Navy","size":"40","type":"jacket"}
`)
	writeFile(t, dir, "config.yaml", "backend: sqlite\nitems_file: closet.jsonl\n")

	stdout, stderr, err := run(t, "list", "--sorted", "--verbose")
	require.NoError(t, err)
	assert.Equal(t, "Scarf (1 Size) - Wool\nBlazer (40) - Navy\n", stdout)
	assert.Contains(t, stderr, "backend=sqlite")
	assert.Contains(t, stderr, "closet.jsonl")
}

func TestConfigPrecedence(t *testing.T) {
	t.Run("env overrides config file", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, dir, "config.yaml", "backend: memory\n")
		t.Setenv("WARDROBE_BACKEND", "postgres")

		_, _, err := run(t, "ready")
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrBackendUnknown)
		assert.Equal(t, exitUserError, exitCode(err))
	})

	t.Run("flag overrides env", func(t *testing.T) {
		isolate(t)
		t.Setenv("WARDROBE_BACKEND", "postgres")

		stdout, _, err := run(t, "ready", "--backend", "sqlite")
		require.NoError(t, err)
		assert.Equal(t, "Number of clothing types: 5\nReady to go out: Yes\n", stdout)
	})

	t.Run("config dir flag overrides env", func(t *testing.T) {
		isolate(t)
		other := t.TempDir()
		writeFile(t, other, "config.yaml", "backend: nosuch\n")

		_, _, err := run(t, "ready", "--config-dir", other)
		assert.ErrorIs(t, err, types.ErrBackendUnknown)
	})
}

func TestConfigMalformed(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, "config.yaml", "backend: [unterminated\n")

	_, _, err := run(t)
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestItemsFileErrors(t *testing.T) {
	dir := isolate(t)
	bad := writeFile(t, dir, "closet.jsonl", "{\"name\":\"Hat\",\"type\":\"hat\"}\n")

	_, _, err := run(t, "--items", bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidClothingType)
	assert.Equal(t, exitUserError, exitCode(err))

	_, _, err = run(t, "--items", filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, exitUserError, exitCode(err))

	_, _, err = run(t, "--items", writeFile(t, dir, "closet.csv", ""))
	assert.ErrorIs(t, err, inventory.ErrUnsupportedFormat)
}

func TestTypes(t *testing.T) {
	isolate(t)
	stdout, _, err := run(t, "types")
	require.NoError(t, err)
	assert.Equal(t, "shirt (formal)\njeans\njacket (formal)\nshoes\nsocks\n", stdout)

	stdout, _, err = run(t, "types", "--json")
	require.NoError(t, err)
	var infos []typeInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &infos))
	require.Len(t, infos, 5)
	assert.Equal(t, typeInfo{Type: types.Jacket, Formal: true}, infos[2])
}

func TestVersion(t *testing.T) {
	isolate(t)
	t.Setenv("WARDROBE_BACKEND", "postgres")

	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "wardrobe v"+wardrobe.Version+"\nmodule: "+modulePath+"\n", stdout)
}

func TestUsageErrors(t *testing.T) {
	isolate(t)

	_, _, err := run(t, "--no-such-flag")
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))

	_, _, err = run(t, "wear")
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestExitCode(t *testing.T) {
	base := errors.New("boom")
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(base))
	assert.Equal(t, exitUserError, exitCode(userError(base)))
	assert.Equal(t, exitSysError, exitCode(sysError(base)))
	assert.ErrorIs(t, sysError(base), base)
}

func TestHeaderFunc(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, "Wardrobe contents:", headerFunc(&buf, false)("Wardrobe contents:"))
	assert.True(t, strings.Contains(headerFunc(&buf, true)("Wardrobe contents:"), "Wardrobe contents:"))
}
