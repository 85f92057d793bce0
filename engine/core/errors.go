package core

import (
	"errors"
)

var (
	ErrWatcherClosed     = errors.New("watcher already closed")
	ErrEventSystemClosed = errors.New("event system already shut down")
	ErrUnknownLogLevel   = errors.New("unknown log level")
)
