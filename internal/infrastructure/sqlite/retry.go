package sqlite

import (
	"context"
	"database/sql/driver"
	"errors"
	"strings"
	"time"

	sqlitelib "modernc.org/sqlite/lib"
)

// RetryPolicy は「何回・どのくらい待つか」の設定。
type RetryPolicy struct {
	MaxAttempts int           // 例: 3（合計3回試す）
	BaseBackoff time.Duration // 例: 50ms
	MaxBackoff  time.Duration // 例: 500ms
}

// DefaultReadRetry は読み取り（Get / List）向けの安全寄りデフォルト。
// 書き込みは retry しない。SQLITE_BUSY で弾かれた INSERT を再実行すると
// 二重挿入のリスクがあるため、busy_timeout に任せる。
var DefaultReadRetry = RetryPolicy{
	MaxAttempts: 3,
	BaseBackoff: 50 * time.Millisecond,
	MaxBackoff:  500 * time.Millisecond,
}

// doWithRetry は retryable なエラーのみバックオフ付きで再実行する。
// ctx の deadline/cancel は即座に尊重する。
func doWithRetry(ctx context.Context, policy RetryPolicy, fn func() error) error {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 1
	}
	if policy.BaseBackoff <= 0 {
		policy.BaseBackoff = 10 * time.Millisecond
	}
	if policy.MaxBackoff <= 0 {
		policy.MaxBackoff = 200 * time.Millisecond
	}

	var lastErr error
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !isRetryableDBErr(err) {
			return err
		}
		if attempt == policy.MaxAttempts {
			return err
		}

		if err := sleepWithContext(ctx, backoff(policy.BaseBackoff, policy.MaxBackoff, attempt)); err != nil {
			return err
		}
	}

	return lastErr
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// backoff は指数バックオフ（ジッタ無しの簡易版）。attempt: 1,2,3...
func backoff(base, max time.Duration, attempt int) time.Duration {
	b := base
	for i := 1; i < attempt; i++ {
		b *= 2
		if b >= max {
			return max
		}
	}
	if b > max {
		return max
	}
	return b
}

// isRetryableDBErr は「一時的に起きがちな」失敗だけ true。
// SQLite では書き込みロック競合（SQLITE_BUSY / SQLITE_LOCKED）が典型。
// 文字列判定はドライバのエラー型を通らなかった場合の保険。
func isRetryableDBErr(err error) bool {
	// ctx 系は retry しない（上位に返す）
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	if code, ok := sqliteErrCode(err); ok {
		switch code & 0xff {
		case sqlitelib.SQLITE_BUSY, sqlitelib.SQLITE_LOCKED:
			return true
		default:
			return false
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "database is locked"):
		return true
	case strings.Contains(msg, "database table is locked"):
		return true
	default:
		return false
	}
}
