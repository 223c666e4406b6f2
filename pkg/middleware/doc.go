// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// クロスオリジンポリシー（CORS）、パニックリカバリ、リクエストIDの付与など、
// リクエスト処理の前後で共通して必要となる処理を含む。
package middleware
