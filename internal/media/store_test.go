package media

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart.FileHeader the way a request would.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}

func TestStore_AcceptWritesFile(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Accept(fileHeader(t, "sunrise.jpg", []byte("jpeg-bytes")))
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(ref, URLPrefix+"/"), "ref %q missing prefix", ref)
	name := strings.TrimPrefix(ref, URLPrefix+"/")
	assert.NotEqual(t, "sunrise.jpg", name, "client filename must never be reused")
	assert.True(t, strings.HasSuffix(name, ".jpg"))

	data, err := os.ReadFile(filepath.Join(store.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestStore_AcceptGeneratesUniqueNames(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	refA, err := store.Accept(fileHeader(t, "same.png", []byte("a")))
	require.NoError(t, err)
	refB, err := store.Accept(fileHeader(t, "same.png", []byte("b")))
	require.NoError(t, err)

	assert.NotEqual(t, refA, refB)
}

func TestStore_AcceptDropsHostileFilename(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root)
	require.NoError(t, err)

	ref, err := store.Accept(fileHeader(t, "../../etc/passwd", []byte("x")))
	require.NoError(t, err)

	name := strings.TrimPrefix(ref, URLPrefix+"/")
	assert.NotContains(t, name, "/")
	assert.NotContains(t, name, "..")

	// The file landed inside the root, nowhere else.
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, name, entries[0].Name())
}

func TestSafeExt(t *testing.T) {
	assert.Equal(t, ".jpg", safeExt("photo.JPG"))
	assert.Equal(t, ".png", safeExt("a/b/c.png"))
	assert.Equal(t, "", safeExt("noext"))
	assert.Equal(t, "", safeExt("weird.j pg"))
	assert.Equal(t, "", safeExt("trailingdot."))
}
