package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "code")

	out, err := runCommand(t, "encode", "https://example.com/qr", "-o", path, "--fg", "#1a237e", "--bg", "#fff8e1")
	require.NoError(t, err)
	assert.Contains(t, out, "saved: code.png")

	out, err = runCommand(t, "decode", path+".png")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/qr", strings.TrimSpace(out))
}

func TestEncodeAllBackends(t *testing.T) {
	for _, backend := range []string{"zxing", "barcode", "go-qrcode"} {
		t.Run(backend, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "code.png")

			_, err := runCommand(t, "encode", "backend "+backend, "-o", path, "--backend", backend, "--level", "M")
			require.NoError(t, err)

			out, err := runCommand(t, "decode", path)
			require.NoError(t, err)
			assert.Equal(t, "backend "+backend, strings.TrimSpace(out))
		})
	}
}

func TestEncodeRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.png")
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0o644))

	_, err := runCommand(t, "encode", "hello", "-o", path)
	require.ErrorIs(t, err, errRefused)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))

	_, err = runCommand(t, "encode", "hello", "-o", path, "--force")
	require.NoError(t, err)

	out, err := runCommand(t, "decode", path)
	require.NoError(t, err)
	assert.Equal(t, "hello", strings.TrimSpace(out))
}

func TestEncodeErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"empty text", []string{"encode", "  ", "-o", filepath.Join(dir, "a.png")}, "enter text"},
		{"too large", []string{"encode", strings.Repeat("x", 5000), "-o", filepath.Join(dir, "b.png")}, "too large"},
		{"bad color", []string{"encode", "hi", "--fg", "red"}, "invalid --fg"},
		{"bad level", []string{"encode", "hi", "--level", "Z"}, "Z"},
		{"bad backend", []string{"encode", "hi", "--backend", "nope"}, "nope"},
		{"size too big", []string{"encode", "hi", "--size", "100000", "-o", filepath.Join(dir, "c.png")}, "invalid --size"},
		{"size too small", []string{"encode", "hi", "--size", "10", "-o", filepath.Join(dir, "d.png")}, "invalid --size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "failed encodes must not write files")
}

func TestShowPrintsHalfBlocks(t *testing.T) {
	out, err := runCommand(t, "show", "hello")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Greater(t, strings.Count(out, "\n"), 5)

	_, err = runCommand(t, "show", " ")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "qrgen dev\n", out)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"#000000", color.RGBA{A: 0xff}, false},
		{"ffffff", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false},
		{"#1A237E", color.RGBA{R: 0x1a, G: 0x23, B: 0x7e, A: 0xff}, false},
		{"#fff", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseHexColor(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
