// Package api はChess Tutor APIのHTTPサーバーを提供する。
//
// 起動時に構築した設定をもとにCORSポリシーを全リクエストに適用し、
// 稼働確認用のルートエンドポイントとヘルスチェックエンドポイントを公開する。
// どのハンドラも共有状態を持たず、リクエストはそれぞれ独立して処理される。
package api
