package sqlite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/teooliver/taskstore/internal/storage"
	sqlite "modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

// sqliteErrCode はドライバのエラーから SQLite の result code を取り出す。
func sqliteErrCode(err error) (int, bool) {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code(), true
	}
	return 0, false
}

// isConstraintErr は UNIQUE 等の制約違反かどうかを判定する。
// result code が取れないケースに備えて文字列判定も残す（保険）。
func isConstraintErr(err error) bool {
	if code, ok := sqliteErrCode(err); ok {
		return code&0xff == sqlitelib.SQLITE_CONSTRAINT
	}
	return strings.Contains(strings.ToLower(err.Error()), "constraint failed")
}

// wrapErr はドライバのエラーを storage の分類に寄せる。
// 分類できないものはそのまま返し、アダプタ側で内部エラー扱いになる。
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if isConstraintErr(err) {
		return fmt.Errorf("%w: %v", storage.ErrConstraint, err)
	}
	return err
}
