package notify

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewConsoleNotifier(&buf)

	require.NoError(t, n.Notify(context.Background(), "3 items copied"))
	assert.Equal(t, "3 items copied\n", buf.String())
}

func TestTelegramNotifier(t *testing.T) {
	var sentChat, sentText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"extractor","username":"extractor_bot"}}`)
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			sentChat = r.FormValue("chat_id")
			sentText = r.FormValue("text")
			fmt.Fprint(w, `{"ok":true,"result":{"message_id":5,"date":0,"chat":{"id":42,"type":"private"},"text":"ok"}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	n, err := newTelegramNotifier("123:abc", 42, srv.URL+"/bot%s/%s", srv.Client())
	require.NoError(t, err)

	require.NoError(t, n.Notify(context.Background(), "12 items extracted"))
	assert.Equal(t, "42", sentChat)
	assert.Equal(t, "12 items extracted", sentText)
}

func TestTelegramNotifierRequiresSettings(t *testing.T) {
	_, err := NewTelegramNotifier("", 42)
	assert.Error(t, err)

	_, err = NewTelegramNotifier("123:abc", 0)
	assert.Error(t, err)
}
