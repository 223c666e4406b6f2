package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// wildcard は全てを許可することを表す設定値。
const wildcard = "*"

// defaultMaxAge はプリフライト結果のキャッシュ秒数の既定値。
const defaultMaxAge = 600

// allMethods はAllowMethodsにワイルドカードを指定した場合に返すメソッド一覧。
var allMethods = []string{
	http.MethodDelete,
	http.MethodGet,
	http.MethodHead,
	http.MethodOptions,
	http.MethodPatch,
	http.MethodPost,
	http.MethodPut,
}

// CORSConfig はCORSミドルウェアのポリシー設定。
type CORSConfig struct {
	// AllowOrigins は許可するオリジンの一覧。"*" を含む場合は全オリジンを許可する。
	AllowOrigins []string
	// AllowCredentials はAccess-Control-Allow-Credentialsを返すかどうか。
	AllowCredentials bool
	// AllowMethods は許可するHTTPメソッド。"*" を含む場合は全メソッドを許可する。
	AllowMethods []string
	// AllowHeaders は許可するリクエストヘッダー。"*" を含む場合は要求されたヘッダーをそのまま許可する。
	AllowHeaders []string
	// MaxAge はプリフライト結果のキャッシュ秒数。0の場合は600秒。
	MaxAge int
}

// CORS は指定されたポリシーでクロスオリジンリクエストを許可するGinミドルウェアを返す。
// OPTIONSリクエストはプリフライトとして扱い、ルートハンドラを実行せずに204を返す。
func CORS(cfg CORSConfig) gin.HandlerFunc {
	originsSet := make(map[string]struct{}, len(cfg.AllowOrigins))
	for _, o := range cfg.AllowOrigins {
		originsSet[o] = struct{}{}
	}
	_, allowAllOrigins := originsSet[wildcard]

	methods := strings.Join(cfg.AllowMethods, ", ")
	if slices.Contains(cfg.AllowMethods, wildcard) {
		methods = strings.Join(allMethods, ", ")
	}

	allowAllHeaders := slices.Contains(cfg.AllowHeaders, wildcard)
	headers := strings.Join(cfg.AllowHeaders, ", ")

	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = defaultMaxAge
	}
	maxAgeValue := strconv.Itoa(maxAge)

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		// Originヘッダーが無いリクエストは空文字列のオリジン設定とも一致させない
		allowed := false
		if origin != "" {
			_, ok := originsSet[origin]
			allowed = ok || allowAllOrigins
		}

		// Allow-CredentialsはOriginを持つ全リクエストに付与する。許可判定はAllow-Originのみで行う
		if origin != "" && cfg.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		if allowed {
			// 資格情報を許可するため "*" ではなく要求元オリジンをそのまま返す
			c.Header("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", methods)
			if allowAllHeaders {
				if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
					c.Header("Access-Control-Allow-Headers", requested)
				}
			} else if headers != "" {
				c.Header("Access-Control-Allow-Headers", headers)
			}
			c.Header("Access-Control-Max-Age", maxAgeValue)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
