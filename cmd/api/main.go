// Chess Tutor APIのエントリポイント。
// 起動時に .env と環境変数から設定を読み込み、CORSポリシーを適用した
// HTTPサーバーを起動する。
package main

import (
	"log"
	"os"

	"github.com/nao1215/chesstutor/internal/api"
	"github.com/nao1215/chesstutor/internal/config"
)

func main() {
	// .envが無い場合は何もしない。読み込めない場合も起動は継続する
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("警告: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	server := api.NewServer(cfg, os.LookupEnv)

	log.Printf("Chess Tutor APIを起動します: :%s (許可オリジン: %q)", cfg.Port, cfg.AllowedOrigins)
	if err := server.Run(); err != nil {
		log.Fatalf("Chess Tutor APIの起動に失敗: %v", err)
	}
}
