// Package httpclient はJSON APIを呼び出すHTTPクライアントを提供する。
//
// コンテナのヘルスチェックなど、稼働中のAPIサーバーへ問い合わせる
// ツールから使用する。リクエストIDの伝播とタイムアウトを統一して扱う。
package httpclient
