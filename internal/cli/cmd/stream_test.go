package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/xiboic/internal/cli"
	"github.com/bnema/xiboic/internal/cli/styles"
)

type playerLog struct {
	mu    sync.Mutex
	paths []string
	body  []string
}

func (l *playerLog) snapshot() ([]string, []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.paths...), append([]string(nil), l.body...)
}

func newTestApp(t *testing.T, location string) (*cli.App, *playerLog) {
	t.Helper()

	log := &playerLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		log.mu.Lock()
		log.paths = append(log.paths, r.URL.Path)
		log.body = append(log.body, string(data))
		log.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	content := fmt.Sprintf(`
[player]
protocol = "http"
host_name = %q
port = %q

[widget]
target_id = "9"
location = %q

[logging]
level = "disabled"
`, u.Hostname(), u.Port(), location)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	app, err := cli.NewApp(cli.Options{ConfigFile: path})
	require.NoError(t, err)
	return app, log
}

func newTestPrinter(app *cli.App) (*streamPrinter, *bytes.Buffer) {
	var out bytes.Buffer
	return &streamPrinter{out: &out, renderer: styles.NewActionRenderer(app.Theme)}, &out
}

func TestStreamLines_VisibleRunsImmediately(t *testing.T) {
	app, player := newTestApp(t, "http://localhost/widget.html")
	printer, out := newTestPrinter(app)

	input := strings.NewReader("# comment\n\ntrigger next\nextend 15\n")
	require.NoError(t, streamLines(context.Background(), app, printer, input))
	app.Client.Wait()

	paths, bodies := player.snapshot()
	assert.ElementsMatch(t, []string{"/trigger", "/duration/extend"}, paths)
	assert.Contains(t, bodies, `{"id":9,"trigger":"next"}`)
	assert.Contains(t, bodies, `{"id":9,"duration":15}`)
	assert.Contains(t, out.String(), "trigger next")
}

func TestStreamLines_HiddenBuffersUntilVisible(t *testing.T) {
	app, player := newTestApp(t, "http://localhost/widget.html?visible=0")
	printer, _ := newTestPrinter(app)

	require.NoError(t, streamLines(context.Background(), app, printer, strings.NewReader("expire\ninfo\n")))
	app.Client.Wait()

	paths, _ := player.snapshot()
	assert.Empty(t, paths)
	assert.Equal(t, 2, app.Client.QueueLen())

	require.NoError(t, streamLines(context.Background(), app, printer, strings.NewReader("visible\n")))
	app.Client.Wait()

	paths, _ = player.snapshot()
	assert.ElementsMatch(t, []string{"/duration/expire", "/info"}, paths)
	assert.Zero(t, app.Client.QueueLen())
	assert.True(t, app.Client.IsVisible())
}

func TestStreamLine_RejectsMalformed(t *testing.T) {
	app, player := newTestApp(t, "")
	printer, _ := newTestPrinter(app)
	ctx := context.Background()

	assert.Error(t, streamLine(ctx, app, printer, "reboot"))
	assert.Error(t, streamLine(ctx, app, printer, "trigger"))
	assert.Error(t, streamLine(ctx, app, printer, "extend soon"))
	assert.Error(t, streamLine(ctx, app, printer, "expire now"))
	app.Client.Wait()

	paths, _ := player.snapshot()
	assert.Empty(t, paths)
}

func TestStreamLines_StopsOnCancel(t *testing.T) {
	app, _ := newTestApp(t, "")
	printer, _ := newTestPrinter(app)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := streamLines(ctx, app, printer, strings.NewReader("info\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseSeconds(t *testing.T) {
	n, err := parseSeconds(" 30 ")
	require.NoError(t, err)
	assert.Equal(t, 30, n)

	n, err = parseSeconds("-5")
	require.NoError(t, err)
	assert.Equal(t, -5, n, "range is the player's business")

	_, err = parseSeconds("1.5")
	assert.Error(t, err)
}

func TestActionLabel(t *testing.T) {
	assert.Equal(t, "trigger next", actionLabel("trigger", "next", 0))
	assert.Equal(t, "extend 10s", actionLabel("extend", "", 10))
	assert.Equal(t, "info", actionLabel("info", "", 0))
}
