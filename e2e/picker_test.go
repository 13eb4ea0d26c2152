//go:build e2e && unix

package main

import (
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fruit = []string{"apple-item", "banana-item", "cherry-item", "damson-item", "elder-item"}

func TestMultiToggleThenAccept(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	list := tf.WriteList("fruit.txt", fruit...)
	require.NoError(t, tf.StartApp("--multi", "--print-text", list))
	require.True(t, tf.SeePlain("apple-item"), "list should render")

	tf.SendKeys(KeyDown, KeySpace, KeyDown, KeyDown, KeySpace)
	require.True(t, tf.SeePlain("2/5 selected"))
	tf.SendKeys(KeyQuit)

	code, exited := tf.WaitExit(2 * time.Second)
	require.True(t, exited, "picker should exit on q")
	assert.Equal(t, 0, code)
	assert.Contains(t, tf.SnapshotPlain(), "banana-item\ndamson-item\n")
}

func TestShiftExtendPrintsValuesInSelectionOrder(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	list := tf.WriteList("fruit.txt", fruit...)
	require.NoError(t, tf.StartApp("--multi", "--toggle-shift", "--value-key", "text", list))
	require.True(t, tf.SeePlain("apple-item"))

	tf.SendKeys(KeyDown, KeyDown, KeyDown, KeyEnter, "K", "K")
	require.True(t, tf.SeePlain("3/5 selected"))
	tf.SendKeys(KeyQuit)

	code, exited := tf.WaitExit(2 * time.Second)
	require.True(t, exited)
	assert.Equal(t, 0, code)
	// each K moves up one row and extends from the previous anchor
	assert.Contains(t, tf.SnapshotPlain(), "damson-item\ncherry-item\nbanana-item\n")
}

func TestSinglePickPrintsEntry(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	list := tf.WriteList("fruit.txt", fruit...)
	require.NoError(t, tf.StartApp("--print-text", list))
	require.True(t, tf.SeePlain("apple-item"))

	tf.SendKeys(KeyDown, KeyDown, KeyEnter, KeyQuit)

	code, exited := tf.WaitExit(2 * time.Second)
	require.True(t, exited)
	assert.Equal(t, 0, code)
	plain := strings.TrimRight(tf.SnapshotPlain(), "\n")
	assert.True(t, strings.HasSuffix(plain, "cherry-item"), "last line should be the picked entry")
}

func TestCtrlCAborts(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	list := tf.WriteList("fruit.txt", fruit...)
	require.NoError(t, tf.StartApp("--multi", list))
	require.True(t, tf.SeePlain("apple-item"))

	tf.SendKeys(KeySpace, KeyCtrlC)

	code, exited := tf.WaitExit(2 * time.Second)
	require.True(t, exited, "picker should exit on ctrl+c")
	assert.Equal(t, 1, code)
	assert.Contains(t, tf.SnapshotPlain(), "selection aborted")
}

func TestFallbackSelectedOnStart(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	list := tf.WriteList("fruit.txt", fruit...)
	require.NoError(t, tf.StartApp("--multi", "--print-text", "--fallback", "4", list))
	require.True(t, tf.SeePlain("[x] elder-item"), "fallback should be selected")

	// deselecting the fallback selects it again
	tf.SendKeys("G", KeySpace)
	require.True(t, tf.SeePlain("1/5 selected"))
	tf.SendKeys(KeyQuit)

	_, exited := tf.WaitExit(2 * time.Second)
	require.True(t, exited)
	assert.True(t, strings.HasSuffix(strings.TrimRight(tf.SnapshotPlain(), "\n"), "elder-item"))
}

func TestHelpFlag(t *testing.T) {
	t.Parallel()

	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "help should run without error")

	output := string(out)
	assert.Contains(t, output, "Usage")
	assert.Contains(t, output, "--toggle-shift")
	assert.Contains(t, output, "--fallback")
}
