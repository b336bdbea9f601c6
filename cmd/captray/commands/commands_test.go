package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/captray/internal/model"
)

func writeProject(t *testing.T, dir, meta string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "recording-meta.json"), []byte(meta), 0o644))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cli := New("1.2.3", &out)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func fixtureBase(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	writeProject(t, filepath.Join(base, "recordings", "demo.cap"), `{"pretty_name":"Demo","segments":[]}`)
	writeProject(t, filepath.Join(base, "recordings", "broken.cap"), `{"segments":[]}`)
	writeProject(t, filepath.Join(base, "exports", "screenshot", "shot.cap"), `{"pretty_name":"Shot","fps":30}`)
	return base
}

func TestScan(t *testing.T) {
	base := fixtureBase(t)

	out, err := execute(t, "scan", "--base", base)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, out, "Demo")
	assert.Contains(t, out, "Shot")
	assert.NotContains(t, out, "broken")
	assert.Contains(t, out, model.KindScreenshot.String())
}

func TestScan_EmptyBase(t *testing.T) {
	out, err := execute(t, "scan", "--base", t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMenu_Setup(t *testing.T) {
	out, err := execute(t, "menu", "--base", fixtureBase(t), "--setup")
	require.NoError(t, err)

	assert.Equal(t, "Request Permissions\n----\nCap v1.2.3 (disabled)\nQuit Cap\n", out)
}

func TestMenu_ListsPreviousItems(t *testing.T) {
	out, err := execute(t, "menu", "--base", fixtureBase(t), "--ids")
	require.NoError(t, err)

	assert.Contains(t, out, "  🎬 Demo  [previous_item_")
	assert.Contains(t, out, "  📷 Shot  [previous_item_")
	assert.Contains(t, out, "[record_display]")
	assert.Contains(t, out, "[take_screenshot]")
}

func TestMenu_LocaleAndMode(t *testing.T) {
	out, err := execute(t, "menu", "--base", t.TempDir(), "-l", "zh-CN", "-m", "screenshot")
	require.NoError(t, err)

	assert.Contains(t, out, "退出 Cap")
	assert.NotContains(t, out, "Quit")
}

func TestMenu_InvalidMode(t *testing.T) {
	_, err := execute(t, "menu", "--base", t.TempDir(), "--mode", "video")
	require.ErrorContains(t, err, model.ErrInvalidMode.Error())
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "captray version 1.2.3\n", out)
}

func TestRoots_Overrides(t *testing.T) {
	base := t.TempDir()
	shots := filepath.Join(base, "elsewhere")
	writeProject(t, filepath.Join(shots, "x.cap"), `{"pretty_name":"Elsewhere","fps":60}`)

	out, err := execute(t, "scan", "--base", base, "--screenshots", shots)
	require.NoError(t, err)
	assert.Contains(t, out, "Elsewhere")
	assert.Contains(t, out, model.KindScreenshot.String())
}
