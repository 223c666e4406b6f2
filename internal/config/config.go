package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// DefaultPort はPORT未設定時のリッスンポート。
	DefaultPort = "8000"
	// DefaultCORSOrigins はCORS_ORIGINS未設定時に許可するオリジン。
	DefaultCORSOrigins = "http://localhost:5173"
)

// Config は起動時に一度だけ構築されるサービス設定。
type Config struct {
	// Port はサーバーのリッスンポート。
	Port string
	// AllowedOrigins はクロスオリジンリクエストを許可するオリジンの一覧。
	AllowedOrigins []string
}

// envSpec は環境変数とのマッピング。
// 値が空文字列で設定されている場合はデフォルト値を使わず空文字列のまま受け取る。
type envSpec struct {
	Port        string `envconfig:"PORT" default:"8000"`
	CORSOrigins string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
}

// LoadDotEnv は指定パスの .env ファイルをプロセスの環境変数に読み込む。
// ファイルが存在しない場合は何もしない。既に設定済みの環境変数は上書きしない。
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf(".envファイルの読み込みに失敗: %w", err)
	}
	return nil
}

// Load は環境変数からConfigを構築する。
func Load() (Config, error) {
	var env envSpec
	if err := envconfig.Process("", &env); err != nil {
		return Config{}, fmt.Errorf("環境変数の解析に失敗: %w", err)
	}

	port := env.Port
	if port == "" {
		port = DefaultPort
	}

	return Config{
		Port:           port,
		AllowedOrigins: SplitOrigins(env.CORSOrigins),
	}, nil
}

// SplitOrigins はカンマ区切りのオリジン文字列を分割する。
// 前後の空白は除去しない。空文字列は空文字列1要素のスライスになる。
func SplitOrigins(raw string) []string {
	return strings.Split(raw, ",")
}
