package task

import "context"

// Repository は Task の永続化を抽象化するインターフェース。
// 実装（sqlite / memory）を差し替えてもアダプタ側は変更不要にする。
//
//   - Get / Update は対象が存在しなければ storage.ErrNotFound を返す
//   - Delete は「消せたか」を bool で返す（存在しない id はエラーではない）
//   - List は id 降順（新しいものが先頭）。これは契約であり実装詳細ではない
type Repository interface {
	Create(ctx context.Context, title, description string) (*Task, error)
	Get(ctx context.Context, id int64) (*Task, error)
	List(ctx context.Context) ([]*Task, error)
	Update(ctx context.Context, id int64, patch Patch) (*Task, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
