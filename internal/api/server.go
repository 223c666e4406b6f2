package api

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/chesstutor/internal/config"
	"github.com/nao1215/chesstutor/pkg/middleware"
)

const (
	// rootMessage はルートエンドポイントが返すメッセージ。
	rootMessage = "Chess Tutor API is running!"
	// healthStatus はヘルスチェックが返すステータス。
	healthStatus = "healthy"
	// unknownEnvironment はENV未設定時に返す環境名。
	unknownEnvironment = "unknown"
	// envKeyEnvironment は環境名を保持する環境変数のキー。
	envKeyEnvironment = "ENV"
)

// EnvLookup は環境変数を参照する関数。os.LookupEnv と同じシグネチャを持つ。
// 値が設定されていない場合は第2戻り値がfalseになる。
type EnvLookup func(key string) (string, bool)

// Server はChess Tutor APIのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// lookupEnv はリクエストごとに環境名を参照するための関数。
	lookupEnv EnvLookup
}

// NewServer は新しいAPIサーバーを生成する。
// lookupEnvがnilの場合は os.LookupEnv を使用する。
func NewServer(cfg config.Config, lookupEnv EnvLookup) *Server {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{"*"},
		AllowHeaders:     []string{"*"},
	}))

	s := &Server{
		router:    router,
		port:      cfg.Port,
		lookupEnv: lookupEnv,
	}
	s.setupRoutes()

	return s
}

// Handler はサーバーのHTTPハンドラを返す。
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	// 稼働確認
	s.router.GET("/", s.handleRoot())
	// APIドキュメント
	s.router.GET("/openapi.json", s.handleOpenAPI())

	api := s.router.Group("/api/v1")
	{
		// ヘルスチェック
		api.GET("/health", s.handleHealth())
	}
}

// rootResponse はルートエンドポイントのJSONレスポンス構造。
type rootResponse struct {
	// Message は稼働中であることを示すメッセージ。
	Message string `json:"message"`
}

// healthResponse はヘルスチェックのJSONレスポンス構造。
type healthResponse struct {
	// Status はサービスの状態。常に "healthy"。
	Status string `json:"status"`
	// Environment は実行環境名。
	Environment string `json:"environment"`
}

// handleRoot は稼働確認メッセージを返すハンドラを返す。
func (s *Server) handleRoot() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, rootResponse{Message: rootMessage})
	}
}

// handleHealth はヘルスチェックを処理するハンドラを返す。
// 環境名は起動時にキャッシュせず、呼び出しごとに参照する。
func (s *Server) handleHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, healthResponse{
			Status:      healthStatus,
			Environment: s.environment(),
		})
	}
}

// environment は現在の環境名を返す。ENVが未設定の場合は "unknown"。
func (s *Server) environment() string {
	if env, ok := s.lookupEnv(envKeyEnvironment); ok {
		return env
	}
	return unknownEnvironment
}
