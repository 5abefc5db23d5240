package cache

import (
	"time"
)

// TimeUntilNext は loc における次の hour 時ちょうどまでの期間を返します。
func TimeUntilNext(now time.Time, hour int, loc *time.Location) time.Duration {
	now = now.In(loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, loc)

	// 今日の指定時刻を過ぎていれば翌日
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

// UntilDailyRefresh は呼び出し時点から次の hour 時までを返す関数を作ります。
// キャッシュのTTLとして使用します。
func UntilDailyRefresh(hour int, loc *time.Location) func() time.Duration {
	return func() time.Duration {
		return TimeUntilNext(time.Now(), hour, loc)
	}
}
