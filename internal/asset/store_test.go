package asset

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "uploads"), "/uploads", nil)
	require.NoError(t, err)
	return s
}

func dataURI(b []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(b)
}

func TestSaveRoundTrip(t *testing.T) {
	s := newTestStore(t)
	payload := []byte("\x89PNG fake image bytes")

	ref, err := s.Save(dataURI(payload), "front_123.png")
	require.NoError(t, err)
	require.Equal(t, "/uploads/front_123.png", ref)

	got, err := os.ReadFile(s.Path(ref))
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestSaveEmptyPayload(t *testing.T) {
	s := newTestStore(t)
	ref, err := s.Save("", "front_1.png")
	require.NoError(t, err)
	require.Empty(t, ref)
}

// 形状不符的载荷按"未提供图片"处理，不报错
func TestSaveMalformedPayload(t *testing.T) {
	s := newTestStore(t)
	for _, payload := range []string{
		"not-a-data-uri",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png;base64,", // 空数据段
		"data:image/png;base64,!!!not-base64!!!",
	} {
		ref, err := s.Save(payload, "front_1.png")
		require.NoError(t, err, payload)
		require.Empty(t, ref, payload)
	}
}

func TestRemoveIdempotent(t *testing.T) {
	s := newTestStore(t)
	ref, err := s.Save(dataURI([]byte("x")), "back_1.png")
	require.NoError(t, err)

	require.NoError(t, s.Remove(ref))
	require.NoError(t, s.Remove(ref)) // 已删除再删不报错
	require.NoError(t, s.Remove(""))
	require.NoFileExists(t, s.Path(ref))
}

func TestSaveSanitizesName(t *testing.T) {
	s := newTestStore(t)
	ref, err := s.Save(dataURI([]byte("x")), "../../etc/evil.png")
	require.NoError(t, err)
	require.Equal(t, "/uploads/evil.png", ref)
	require.FileExists(t, s.Path(ref))
}

func TestNewStoreCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "a", "b", "uploads")
	_, err := NewStore(root, "/uploads", nil)
	require.NoError(t, err)
	require.DirExists(t, root)
}
