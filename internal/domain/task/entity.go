package task

// Task は tasks テーブルの1行をそのまま表す純粋なデータ構造。
// バリデーションはここでは行わない（列制約＝ストア側の責務）。
type Task struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
}

// Patch は部分更新の「差分」を表す。
// nil のフィールドは「未指定＝現在値を保持」、非 nil は「この値で置き換える」。
// 空文字と未指定を区別するため、デフォルト値ではなくポインタで表現する。
type Patch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// IsEmpty はすべてのフィールドが未指定かどうかを返す。
// 空の Patch による Update は no-op（現在値をそのまま返す）になる。
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}
