package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// apiTitle はAPIの名称。
	apiTitle = "Chess Tutor API"
	// apiDescription はAPIの説明。
	apiDescription = "AI powered chess learning platform"
	// apiVersion はAPIのバージョン。
	apiVersion = "1.0.0"
)

// openAPIDocument は公開エンドポイントを記述したOpenAPI 3.1ドキュメント。
var openAPIDocument = gin.H{
	"openapi": "3.1.0",
	"info": gin.H{
		"title":       apiTitle,
		"description": apiDescription,
		"version":     apiVersion,
	},
	"paths": gin.H{
		"/": gin.H{
			"get": gin.H{
				"summary":     "Root",
				"operationId": "root",
				"responses": gin.H{
					"200": jsonResponse("稼働確認メッセージ", gin.H{
						"type": "object",
						"properties": gin.H{
							"message": gin.H{"type": "string"},
						},
						"required": []string{"message"},
					}),
				},
			},
		},
		"/api/v1/health": gin.H{
			"get": gin.H{
				"summary":     "Health Check",
				"operationId": "health_check",
				"responses": gin.H{
					"200": jsonResponse("サービスの状態と実行環境名", gin.H{
						"type": "object",
						"properties": gin.H{
							"status":      gin.H{"type": "string", "enum": []string{healthStatus}},
							"environment": gin.H{"type": "string"},
						},
						"required": []string{"status", "environment"},
					}),
				},
			},
		},
	},
}

// jsonResponse はapplication/jsonを返すレスポンス定義を組み立てる。
func jsonResponse(description string, schema gin.H) gin.H {
	return gin.H{
		"description": description,
		"content": gin.H{
			"application/json": gin.H{"schema": schema},
		},
	}
}

// handleOpenAPI はOpenAPIドキュメントを返すハンドラを返す。
func (s *Server) handleOpenAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, openAPIDocument)
	}
}
