package user

import "context"

// Repository は User の永続化を抽象化するインターフェース。
// 契約は task.Repository と同じ（NotFound / bool Delete / id 降順 List）。
type Repository interface {
	Create(ctx context.Context, name, email string) (*User, error)
	Get(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, id int64, patch Patch) (*User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
