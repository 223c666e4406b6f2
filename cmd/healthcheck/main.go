// コンテナのHEALTHCHECKから呼び出すヘルスチェックコマンド。
// APIサーバーのヘルスチェックエンドポイントが healthy を返せば終了コード0で終了する。
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/nao1215/chesstutor/internal/healthcheck"
)

func main() {
	if err := healthcheck.Run(context.Background(), os.Args[1:]); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.Printf("ヘルスチェックに失敗: %v", err)
		os.Exit(1)
	}
}
