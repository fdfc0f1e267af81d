package storage

import "errors"

// ---- 失敗の分類（sentinel error） ----
//
// Repository が外に出すエラーは次の3種類に収束する。
//   - ErrNotFound   : 指定 id の行が存在しない（Get / Update）
//   - ErrConstraint : 一意制約違反など、ストアの制約による失敗（User.Email 重複）
//   - それ以外      : バックエンド障害（接続断・ドライバエラー等）
//
// アダプタは Classify だけを見てプロトコル別のステータスに変換する。
// 変換表を gRPC / HTTP の両側で重複して持たないための唯一の共通ポリシー。

var (
	ErrNotFound   = errors.New("not found")
	ErrConstraint = errors.New("constraint violation")
)

// Kind はアダプタが扱う失敗の種別。
type Kind int

const (
	KindBackend Kind = iota // 汎用の内部エラー（詳細はログ側にだけ残す）
	KindNotFound
	KindConstraint
)

// Classify は Repository から返ったエラーを Kind に分類する。
// fmt.Errorf("...: %w", ErrNotFound) のように包まれていても拾える。
func Classify(err error) Kind {
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConstraint):
		return KindConstraint
	default:
		return KindBackend
	}
}
