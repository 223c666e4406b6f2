package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// newRecoveryRouter はRecoveryとRequestIDを適用したテスト用ルーターを生成する。
func newRecoveryRouter() *gin.Engine {
	router := gin.New()
	router.Use(Recovery())
	router.Use(RequestID())
	return router
}

// TestRecovery はRecoveryミドルウェアを検証する。
func TestRecovery(t *testing.T) {
	t.Parallel()

	t.Run("パニックが発生した場合500とエラーメッセージが返ること", func(t *testing.T) {
		t.Parallel()

		router := newRecoveryRouter()
		router.GET("/panic", func(_ *gin.Context) {
			panic("テスト用パニック")
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusInternalServerError)
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("レスポンスボディのパースに失敗: %v", err)
		}
		if body["error"] != "内部サーバーエラーが発生しました" {
			t.Errorf("error = %q, want %q", body["error"], "内部サーバーエラーが発生しました")
		}
	})

	t.Run("パニック値の型によらず500が返ること", func(t *testing.T) {
		t.Parallel()

		router := newRecoveryRouter()
		router.GET("/int", func(_ *gin.Context) { panic(42) })
		router.GET("/error", func(_ *gin.Context) { panic(http.ErrAbortHandler) })

		for _, path := range []string{"/int", "/error"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			if w.Code != http.StatusInternalServerError {
				t.Errorf("%s: ステータスコード = %d, want %d", path, w.Code, http.StatusInternalServerError)
			}
		}
	})

	t.Run("パニック後もサーバーが次のリクエストを処理できること", func(t *testing.T) {
		t.Parallel()

		router := newRecoveryRouter()
		router.GET("/panic", func(_ *gin.Context) { panic("パニック発生") })
		router.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "recovered"})
		})

		w1 := httptest.NewRecorder()
		router.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/panic", nil))
		if w1.Code != http.StatusInternalServerError {
			t.Errorf("1回目のステータスコード = %d, want %d", w1.Code, http.StatusInternalServerError)
		}

		w2 := httptest.NewRecorder()
		router.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/ok", nil))
		if w2.Code != http.StatusOK {
			t.Errorf("2回目のステータスコード = %d, want %d", w2.Code, http.StatusOK)
		}
	})

	t.Run("パニック時の500レスポンスにもX-Request-IDが付与されること", func(t *testing.T) {
		t.Parallel()

		router := newRecoveryRouter()
		router.GET("/panic", func(_ *gin.Context) {
			panic("リクエストID付きパニック")
		})

		req := httptest.NewRequest(http.MethodGet, "/panic", nil)
		req.Header.Set(HeaderRequestID, "panic-req-1")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusInternalServerError)
		}
		if got := w.Header().Get(HeaderRequestID); got != "panic-req-1" {
			t.Errorf("X-Request-ID = %q, want %q", got, "panic-req-1")
		}
	})
}
