package utils

import "time"

func ToDaysDuration(days int64) time.Duration {
	return time.Duration(days) * time.Hour * 24
}
