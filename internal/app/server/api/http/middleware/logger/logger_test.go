package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropops/internal/app/server/api/http/middleware/auth"
)

const testWallet = "0x52908400098527886e0f7030069857d2e4169ee7"

func withWallet(ctx huma.Context, next func(huma.Context)) {
	next(huma.WithContext(ctx, auth.WithWallet(ctx.Context(), testWallet)))
}

func setup(t *testing.T, status int, mws ...func(huma.Context, func(huma.Context))) (humatest.TestAPI, *bytes.Buffer) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, api := humatest.New(t)
	huma.Register(api, huma.Operation{
		OperationID: "list-airdrops",
		Method:      http.MethodGet,
		Path:        "/api/v1/airdrops",
		Middlewares: append(huma.Middlewares(mws), New(log).Middleware()),
	}, func(ctx context.Context, _ *struct{}) (*struct{}, error) {
		if status >= 400 {
			return nil, huma.NewError(status, http.StatusText(status))
		}
		return nil, nil
	})
	return api, &buf
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	return entry
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wallet    bool
		wantLevel string
	}{
		{name: "success with wallet", status: http.StatusNoContent, wallet: true, wantLevel: "INFO"},
		{name: "client error", status: http.StatusNotFound, wallet: true, wantLevel: "WARN"},
		{name: "server error without wallet", status: http.StatusInternalServerError, wantLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mws []func(huma.Context, func(huma.Context))
			if tt.wallet {
				mws = append(mws, withWallet)
			}
			api, buf := setup(t, tt.status, mws...)

			resp := api.Get("/api/v1/airdrops")
			assert.Equal(t, tt.status, resp.Code)

			entry := decode(t, buf)
			assert.Equal(t, "api call", entry["msg"])
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "api_access", entry["component"])
			assert.Equal(t, "list-airdrops", entry["operation"])
			assert.Equal(t, "/api/v1/airdrops", entry["path"])
			assert.EqualValues(t, tt.status, entry["status"])
			if tt.wallet {
				assert.Equal(t, testWallet, entry["wallet"])
			} else {
				assert.NotContains(t, entry, "wallet")
			}
		})
	}
}
