package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millersjournal/journal/internal/app"
	"github.com/millersjournal/journal/internal/editor"
	"github.com/millersjournal/journal/internal/model"
	"github.com/millersjournal/journal/internal/notify"
	"github.com/millersjournal/journal/internal/scheduler"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DATA_DIR", dir)
	t.Setenv("APP_ENV", "development")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("SYNC_DEBOUNCE", "10ms")
	t.Setenv("UI_URL", "")
	return dir
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	now := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	cmd := New(app.Options{
		Scheduler: scheduler.NewManual(),
		Notifier:  &notify.LogNotifier{},
		Now:       func() time.Time { return now },
	})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestGoalAddAndToday(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "", "goal", "add", "November", "novel", "--count", "1667", "--start", "2026-10-01", "--end", "2026-11-30")
	require.NoError(t, err)
	assert.Contains(t, out, "November novel")
	assert.Contains(t, out, "1667")

	out, err = run(t, "", "goal", "today")
	require.NoError(t, err)
	assert.Contains(t, out, "November novel")

	out, err = run(t, "", "goal", "today", "--date", "2027-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "no goal covers 2027-01-01")
}

func TestGoalAddRejectsBadRange(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "", "goal", "add", "Backwards", "--count", "10", "--start", "2026-10-31", "--end", "2026-10-01")
	assert.Error(t, err)

	_, err = run(t, "", "goal", "add", "No count")
	assert.Error(t, err)
}

func TestWriteThenShow(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "", "goal", "add", "Daily", "--count", "10")
	require.NoError(t, err)

	out, err := run(t, "The *sea* was calm.\nGulls everywhere.\n", "write")
	require.NoError(t, err)
	assert.Contains(t, out, "saved 2026-10-18 (6 words)")

	out, err = run(t, "", "entry", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "2026-10-18 - Daily")
	assert.Contains(t, out, "6 words of 10")
	assert.Contains(t, out, "The sea was calm.")

	out, err = run(t, "Then rain.\n", "write", "--append")
	require.NoError(t, err)
	assert.Contains(t, out, "(8 words)")

	out, err = run(t, "", "entry", "month")
	require.NoError(t, err)
	assert.Contains(t, out, "2026-10 - 1")
	assert.Contains(t, out, "2026-10-18")
}

func TestEntryImport(t *testing.T) {
	dir := setupEnv(t)

	file := filepath.Join(dir, "entry.md")
	require.NoError(t, os.WriteFile(file, []byte("---\ndate: 2026-10-02\n---\n# Title\n\nfour words right here\n"), 0o644))

	out, err := run(t, "", "entry", "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "saved 2026-10-02 (5 words)")

	out, err = run(t, "", "entry", "show", "2026-10-02")
	require.NoError(t, err)
	assert.Contains(t, out, "four words right here")

	out, err = run(t, "", "entry", "show", "2026-10-03")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing written on 2026-10-03")
}

func TestCheck(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "All of today's goals are met.")

	_, err = run(t, "", "goal", "add", "Daily", "--count", "100")
	require.NoError(t, err)
	_, err = run(t, "twenty five words would be nice but here are only seven\n", "write")
	require.NoError(t, err)

	out, err = run(t, "", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "11%")
}

func TestOpenNeedsUIURL(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "", "open", "calendar")
	assert.ErrorContains(t, err, "UI_URL")

	_, err = run(t, "", "open", "settings")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "", "version")
	require.NoError(t, err)
	var v map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.NotEmpty(t, v["version"])

	out, err = run(t, "", "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, v["version"]+"\n", out)
}

type mapLoader map[string]*model.Entry

func (m mapLoader) Load(date string) (*model.Entry, error) {
	return m[date], nil
}

func TestBrowseShowsLatestSelection(t *testing.T) {
	loader := mapLoader{
		"2026-10-02": {CreatedDate: "2026-10-02", ContentText: "harbour walk", WordCount: 2},
	}

	var out bytes.Buffer
	err := browse(strings.NewReader("n\np\n2026-10-02\n"), &out, loader, "2026-10-18")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(out.String(), "harbour walk\n\n"), out.String())
}

func TestBrowseCommands(t *testing.T) {
	loader := mapLoader{}

	var out bytes.Buffer
	err := browse(strings.NewReader("bogus\nq\n2026-10-02\n"), &out, loader, "2026-10-18")
	require.NoError(t, err)

	assert.Contains(t, out.String(), `unknown command "bogus"`)
	assert.NotContains(t, out.String(), "2026-10-02")
	assert.Equal(t, "2026-10-19", shiftDay("2026-10-18", 1))
	assert.Equal(t, "2026-09-30", shiftDay("2026-10-01", -1))
}

func TestEntryBrowseCommand(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "first day back\n", "write", "--date", "2026-10-17")
	require.NoError(t, err)

	out, err := run(t, "p\n", "entry", "browse")
	require.NoError(t, err)
	assert.Contains(t, out, "first day back")
}

func TestEntryImportChecksFrontMatterGoal(t *testing.T) {
	dir := setupEnv(t)

	_, err := run(t, "", "goal", "add", "October", "--count", "10", "--start", "2026-10-01", "--end", "2026-10-31")
	require.NoError(t, err)

	outside := filepath.Join(dir, "outside.md")
	require.NoError(t, os.WriteFile(outside, []byte("---\ndate: 2026-11-02\ngoal: 1\n---\nlate words\n"), 0o644))
	_, err = run(t, "", "entry", "import", outside)
	assert.ErrorContains(t, err, "not 2026-11-02")

	missing := filepath.Join(dir, "missing.md")
	require.NoError(t, os.WriteFile(missing, []byte("---\ndate: 2026-10-02\ngoal: 7\n---\nwords\n"), 0o644))
	_, err = run(t, "", "entry", "import", missing)
	assert.ErrorContains(t, err, "goal 7 not found")

	inside := filepath.Join(dir, "inside.md")
	require.NoError(t, os.WriteFile(inside, []byte("---\ndate: 2026-10-02\ngoal: 1\n---\non time\n"), 0o644))
	_, err = run(t, "", "entry", "import", inside)
	require.NoError(t, err)

	out, err := run(t, "", "entry", "show", "2026-10-02")
	require.NoError(t, err)
	assert.Contains(t, out, "2026-10-02 - October")
}

type recordingSyncer struct {
	synced []model.EntrySync
}

func (r *recordingSyncer) Sync(entry *model.EntrySync) error {
	r.synced = append(r.synced, *entry)
	return nil
}

func TestWriteAppendKeepsStoredHTML(t *testing.T) {
	rec := &recordingSyncer{}
	session := editor.NewSession(rec, time.Hour)
	base := &model.Entry{
		CreatedDate: "2026-10-18",
		ContentHTML: "<h1>Heading</h1>\n",
		ContentText: "Heading",
		WordCount:   1,
	}

	words, err := write(strings.NewReader("more *words*\n"), session, "2026-10-18", nil, base)
	require.NoError(t, err)

	assert.Equal(t, 3, words)
	require.Len(t, rec.synced, 1)
	got := rec.synced[0]
	assert.Equal(t, "<h1>Heading</h1>\n<p>more <em>words</em></p>\n", got.ContentHTML)
	assert.Equal(t, "Heading\n\nmore words", got.ContentText)
	assert.Equal(t, 3, got.WordCount)
}
