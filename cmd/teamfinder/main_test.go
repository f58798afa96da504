package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamfinder/internal/config"
	"teamfinder/internal/roster"
)

// sheetLine lays out one counter sheet row in the default layout.
func sheetLine(def, atk [3]string, notes string) string {
	l := roster.DefaultLayout()
	cells := make([]string, l.Width())

	for i, off := range l.Defense {
		cells[off] = def[i]
	}

	for i, off := range l.Attack {
		cells[off] = atk[i]
	}

	cells[l.Notes] = notes

	return strings.Join(cells, ",")
}

type fixture struct {
	dir     string
	config  string
	input   string
	missLog string
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	for _, key := range []string{"DISCORD_TOKEN", "TEAMFINDER_SOURCE", "TEAMFINDER_MISS_LOG", "TEAMFINDER_LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	dir := t.TempDir()
	f := fixture{
		dir:     dir,
		config:  filepath.Join(dir, "teamfinder.yaml"),
		input:   filepath.Join(dir, "input.csv"),
		missLog: filepath.Join(dir, "misses.txt"),
	}

	sheet := strings.Join([]string{
		sheetLine([3]string{"Defense Unit 1", "Defense Unit 2", "Defense Unit 3"}, [3]string{"ATK Unit 1", "ATK Unit 2", "ATK Unit 3"}, "Notes"),
		sheetLine([3]string{"Lilith", "Archdemon", "Maxwell"}, [3]string{"Leo", "Mars", "Saturn"}, "use shields"),
		sheetLine([3]string{"Archangel", "Kitty", "Yuna"}, [3]string{"Rin", "Ivy", "Kai"}, ""),
		sheetLine([3]string{"Lonely", "", ""}, [3]string{"", "", ""}, ""),
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(f.input, []byte(sheet), 0o644))

	cfg := "source:\n  path: " + f.input + "\nmiss_log:\n  path: " + f.missLog + "\nlogging:\n  level: error\n"
	require.NoError(t, os.WriteFile(f.config, []byte(cfg), 0o644))

	return f
}

func (f fixture) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", f.config, "--env", filepath.Join(f.dir, "missing.env")}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestConvert(t *testing.T) {
	f := newFixture(t)
	cleaned := filepath.Join(f.dir, "cleaned.csv")
	units := filepath.Join(f.dir, "units.txt")

	out, err := f.run(t, "convert", "-o", cleaned, "--units", units)
	require.NoError(t, err)
	assert.Contains(t, out, "Cleaned CSV written to "+cleaned)

	data, err := os.ReadFile(cleaned)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "Team,Slot,Unit,Notes", lines[0])
	assert.Contains(t, lines, "Defense,Unit 1,Lilith,use shields")
	assert.Contains(t, lines, "Attack,Unit 3,Kai,")

	names, err := os.ReadFile(units)
	require.NoError(t, err)
	assert.Equal(t, "Archangel\nArchdemon\nIvy\nKai\nKitty\nLeo\nLilith\nMars\nMaxwell\nRin\nSaturn\nYuna\n", string(names))
}

func TestConvert_CleanedRoundTrip(t *testing.T) {
	f := newFixture(t)
	cleaned := filepath.Join(f.dir, "cleaned.csv")

	_, err := f.run(t, "convert", "-o", cleaned, "--units", "")
	require.NoError(t, err)

	cfg := "source:\n  path: " + cleaned + "\n  cleaned: true\nmiss_log:\n  path: " + f.missLog + "\nlogging:\n  level: error\n"
	require.NoError(t, os.WriteFile(f.config, []byte(cfg), 0o644))

	out, err := f.run(t, "find", "maxwell", "lilith", "archdemon")
	require.NoError(t, err)
	assert.Contains(t, out, "Attack:  Leo | Mars | Saturn")
}

func TestFind(t *testing.T) {
	f := newFixture(t)

	out, err := f.run(t, "find", "Kity", "yuna", "ARCHANGEL")
	require.NoError(t, err)
	assert.Contains(t, out, "Attack:  Rin | Ivy | Kai")

	out, err = f.run(t, "find", "Foo", "Bar", "Baz")
	require.NoError(t, err)
	assert.Contains(t, out, "No matching defense set found for Foo, Bar, Baz")
	assert.NoFileExists(t, f.missLog)
}

func TestFind_RecordAndMisses(t *testing.T) {
	f := newFixture(t)

	out, err := f.run(t, "misses", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No unmatched teams logged yet.")

	_, err = f.run(t, "find", "--record", "Foo", "Bar", "Baz")
	require.NoError(t, err)

	data, err := os.ReadFile(f.missLog)
	require.NoError(t, err)
	assert.Equal(t, "Foo, Bar, Baz\n", string(data))

	out, err = f.run(t, "misses", "list")
	require.NoError(t, err)
	assert.Equal(t, "Foo, Bar, Baz\n", out)

	_, err = f.run(t, "misses", "clear")
	require.NoError(t, err)

	out, err = f.run(t, "misses", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No unmatched teams logged yet.")
}

func TestUnits(t *testing.T) {
	f := newFixture(t)

	out, err := f.run(t, "units", "arch")
	require.NoError(t, err)
	assert.Equal(t, "Archangel\nArchdemon\n", out)

	out, err = f.run(t, "units", "-n", "1")
	require.NoError(t, err)
	assert.Equal(t, "Archangel\n", out)
}

func TestInspect(t *testing.T) {
	f := newFixture(t)

	out, err := f.run(t, "inspect", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "Sets:         2")
	assert.Contains(t, out, "Discarded:    1")
	assert.Contains(t, out, roster.CodeGroupDiscarded)
	assert.Contains(t, out, "Lilith")
}

func TestServe_RequiresToken(t *testing.T) {
	f := newFixture(t)

	_, err := f.run(t, "serve")
	assert.ErrorIs(t, err, config.ErrMissingToken)
}

func TestInvalidConfig(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(f.config, []byte("match:\n  strategy: fastest\n"), 0o644))

	_, err := f.run(t, "units")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
