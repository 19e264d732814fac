package levels

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderFetchHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.json":
			w.Write([]byte(`[` + sampleRow + `]`))
		case "/broken.json":
			w.Write([]byte(`[{"number": 1,`))
		case "/null.json":
			w.Write([]byte(`null`))
		case "/object.json":
			w.Write([]byte(`{"levels": []}`))
		case "/empty.json":
			w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	loader := &Loader{Client: srv.Client()}

	rows, err := loader.Fetch(context.Background(), srv.URL+"/ok.json")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "icedcave", rows[0].Creator)

	for _, name := range []string{"/broken.json", "/null.json", "/object.json"} {
		rows, err = loader.Fetch(context.Background(), srv.URL+name)
		assert.ErrorIs(t, err, ErrMalformed, name)
		assert.Nil(t, rows, name)
	}

	rows, err = loader.Fetch(context.Background(), srv.URL+"/empty.json")
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = loader.Fetch(context.Background(), srv.URL+"/missing")
	assert.ErrorIs(t, err, ErrStatus)
}

func TestLoaderFetchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pemons.json")
	require.NoError(t, os.WriteFile(path, []byte(`[`+sampleRow+`,`+sampleRow+`]`), 0o644))

	rows, err := NewLoader().Fetch(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = NewLoader().Fetch(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)

	_, err = NewLoader().Fetch(context.Background(), "")
	assert.Error(t, err)

	nullPath := filepath.Join(t.TempDir(), "null.json")
	require.NoError(t, os.WriteFile(nullPath, []byte("null\n"), 0o644))
	_, err = NewLoader().Fetch(context.Background(), nullPath)
	assert.ErrorIs(t, err, ErrMalformed)
}
