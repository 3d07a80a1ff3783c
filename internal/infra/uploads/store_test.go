package uploads

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	jpegHeader = "\xff\xd8\xff\xe0\x00\x10JFIF\x00"
	pngHeader  = "\x89PNG\r\n\x1a\n"
)

func TestStore_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewStore(dir, 1024, "http://localhost:8001/")
	require.NoError(t, err)

	stored, err := store.Save("Prancha.JPG", strings.NewReader(jpegHeader+"image-bytes"))

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stored.Filename, ".jpg"))
	assert.Len(t, stored.Filename, 36+len(".jpg"))
	assert.Equal(t, "http://localhost:8001/uploads/"+stored.Filename, stored.URL)

	data, err := os.ReadFile(filepath.Join(dir, stored.Filename))
	require.NoError(t, err)
	assert.Equal(t, jpegHeader+"image-bytes", string(data))
}

func TestStore_Save_TooLarge(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, 16, "")
	require.NoError(t, err)

	_, err = store.Save("a.png", strings.NewReader(pngHeader+strings.Repeat("x", 32)))

	assert.ErrorIs(t, err, ErrTooLarge)
	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestStore_Save_UnsupportedType(t *testing.T) {
	store, err := NewStore(t.TempDir(), 1024, "")
	require.NoError(t, err)

	_, err = store.Save("script.sh", strings.NewReader("echo"))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	svg := `<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`
	_, err = store.Save("logo.svg", strings.NewReader(svg))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestStore_Save_ContentMustMatchExtension(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, 1024, "")
	require.NoError(t, err)

	_, err = store.Save("logo.png", strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = store.Save("page.jpg", strings.NewReader("<html><body>oi</body></html>"))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = store.Save("foto.png", strings.NewReader(jpegHeader+"image-bytes"))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}
