package user

// User は users テーブルの1行を表す純粋なデータ構造。
// Email の一意性は UNIQUE 制約で担保する（重複は Create 時に storage.ErrConstraint になる）。
type User struct {
	ID    int64
	Name  string
	Email string
}

// Patch は部分更新の差分。nil は「未指定＝現在値を保持」。
type Patch struct {
	Name  *string
	Email *string
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil
}
