package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/susuregis/Chatbot/internal/model"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/cardapio", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Prato Principal":[{"nome":"Feijoada","descricao":"Completa","preco":38.0}],` +
			`"Bebida":[{"nome":"Suco de Laranja","descricao":"Natural","preco":7.0}]}`))
	})
	mux.HandleFunc("/frete", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"centro": 10.0, "jardim": 8.0, "vila nova": 12.0, "planalto": 15.0}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Menu(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL+"/", time.Second)

	menu, err := client.Menu(context.Background())
	require.NoError(t, err)
	require.Len(t, menu, 2)
	assert.Equal(t, "Prato Principal", menu[0].Name)
	assert.Equal(t, "Bebida", menu[1].Name)
	assert.Equal(t, model.MenuItem{Name: "Feijoada", Description: "Completa", Price: 38}, menu[0].Items[0])
}

func TestClient_Fees(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, time.Second)

	fees, err := client.Fees(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.FeeTable{"centro": 10, "jardim": 8, "vila nova": 12, "planalto": 15}, fees)
}

func TestClient_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/frete" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()
	client := NewClient(srv.URL, time.Second)

	_, err := client.Fees(context.Background())
	assert.Error(t, err)
	_, err = client.Menu(context.Background())
	assert.Error(t, err)

	down := NewClient("http://127.0.0.1:1", 100*time.Millisecond)
	_, err = down.Fees(context.Background())
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	item, ok := DefaultMenu().FindDish("feijoada")
	require.True(t, ok)
	assert.Equal(t, 38.0, item.Price)

	fee, ok := DefaultFees().Lookup("Jardim")
	require.True(t, ok)
	assert.Equal(t, 8.0, fee)
}
