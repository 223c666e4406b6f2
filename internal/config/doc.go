// Package config はChess Tutor APIの起動時設定を提供する。
//
// 起動時に一度だけ .env ファイルと環境変数を読み込み、不変の Config を
// 構築する。Config はサーバー生成時に明示的に渡され、以降は再読み込みしない。
package config
