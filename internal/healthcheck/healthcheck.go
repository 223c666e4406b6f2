package healthcheck

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	"github.com/nao1215/chesstutor/pkg/httpclient"
)

// ErrUnhealthy はサーバーが healthy 以外の状態を返したことを表す。
var ErrUnhealthy = errors.New("サーバーが正常な状態ではありません")

// healthyStatus は正常時にサーバーが返すステータス。
const healthyStatus = "healthy"

// Options はヘルスチェックコマンドのフラグ。
type Options struct {
	// URL はヘルスチェックエンドポイントのURL。
	URL string `short:"u" long:"url" description:"ヘルスチェックエンドポイントのURL" default:"http://localhost:8000/api/v1/health"`
	// Timeout はリクエストのタイムアウト。
	Timeout time.Duration `short:"t" long:"timeout" description:"リクエストのタイムアウト" default:"3s"`
}

// healthResponse はヘルスチェックエンドポイントのレスポンス。
type healthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
}

// Run はコマンドライン引数を解析してヘルスチェックを実行する。
func Run(ctx context.Context, args []string) error {
	opts := &Options{}
	if _, err := flags.ParseArgs(opts, args); err != nil {
		return err
	}

	client := httpclient.New(opts.URL, httpclient.WithTimeout(opts.Timeout))
	return Probe(ctx, client)
}

// Probe はclientの接続先にGETリクエストを送り、statusが healthy であることを確認する。
func Probe(ctx context.Context, client *httpclient.Client) error {
	ctx = httpclient.WithRequestID(ctx, "healthcheck-"+uuid.NewString())

	var resp healthResponse
	if err := client.GetJSON(ctx, "", &resp); err != nil {
		return fmt.Errorf("ヘルスチェックリクエストに失敗: %w", err)
	}
	if resp.Status != healthyStatus {
		return fmt.Errorf("%w: status=%q", ErrUnhealthy, resp.Status)
	}
	return nil
}
