// Package healthcheck は稼働中のAPIサーバーへヘルスチェックを行う。
//
// コンテナのHEALTHCHECKから呼び出され、ヘルスチェックエンドポイントが
// status=healthy を返すかどうかで成否を判定する。
package healthcheck
