package shell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	focused int
	closed  bool
}

func (f *fakeWindow) Focus() error { f.focused++; return nil }
func (f *fakeWindow) Close() error { f.closed = true; return nil }

func TestOpenCreatesOnceThenFocuses(t *testing.T) {
	created := 0
	r := NewRegistry(func(kind string) (Window, error) {
		created++
		return &fakeWindow{}, nil
	})

	first, err := r.Open(Calendar)
	require.NoError(t, err)
	second, err := r.Open(Calendar)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, created)
	assert.Equal(t, 2, first.(*fakeWindow).focused)

	_, err = r.Open(Editor)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
}

func TestUnregisterAllowsReopen(t *testing.T) {
	created := 0
	r := NewRegistry(func(kind string) (Window, error) {
		created++
		return &fakeWindow{}, nil
	})

	_, err := r.Open(Editor)
	require.NoError(t, err)
	assert.True(t, r.Unregister(Editor))
	assert.False(t, r.Unregister(Editor))

	_, ok := r.Lookup(Editor)
	assert.False(t, ok)

	_, err = r.Open(Editor)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
}

func TestOpenFactoryError(t *testing.T) {
	r := NewRegistry(func(kind string) (Window, error) {
		return nil, errors.New("no display")
	})

	_, err := r.Open(Calendar)
	assert.Error(t, err)
	_, ok := r.Lookup(Calendar)
	assert.False(t, ok)
}

func TestCloseAll(t *testing.T) {
	r := NewRegistry(nil)
	cal := &fakeWindow{}
	ed := &fakeWindow{}
	r.Register(Calendar, cal)
	r.Register(Editor, ed)

	require.NoError(t, r.CloseAll())
	assert.True(t, cal.closed)
	assert.True(t, ed.closed)
	_, ok := r.Lookup(Calendar)
	assert.False(t, ok)
}

func TestBrowserFactory(t *testing.T) {
	w, err := BrowserFactory("")(Calendar)
	require.NoError(t, err)
	assert.IsType(t, &logWindow{}, w)
	assert.NoError(t, w.Focus())

	w, err = BrowserFactory("http://localhost:5173/")(Editor)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5173/editor", w.(*browserWindow).url)
}

func TestBrowserWindowOpensOncePerRegistration(t *testing.T) {
	var opened []string
	orig := openURL
	openURL = func(url string) error {
		opened = append(opened, url)
		return nil
	}
	t.Cleanup(func() { openURL = orig })

	r := NewRegistry(BrowserFactory("http://127.0.0.1:5173"))

	_, err := r.Open(Calendar)
	require.NoError(t, err)
	_, err = r.Open(Calendar)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://127.0.0.1:5173/calendar"}, opened)

	// The UI reports the tab closed; the next open starts a new one.
	assert.True(t, r.Unregister(Calendar))
	_, err = r.Open(Calendar)
	require.NoError(t, err)
	assert.Len(t, opened, 2)
}

func TestBrowserWindowRetriesAfterFailedOpen(t *testing.T) {
	orig := openURL
	fail := true
	openURL = func(string) error {
		if fail {
			return errors.New("no browser")
		}
		return nil
	}
	t.Cleanup(func() { openURL = orig })

	w, err := BrowserFactory("http://127.0.0.1:5173")(Editor)
	require.NoError(t, err)
	assert.Error(t, w.Focus())

	fail = false
	assert.NoError(t, w.Focus())
	assert.True(t, w.(*browserWindow).opened)
}
