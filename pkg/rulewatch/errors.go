package rulewatch

import "errors"

var (
	ErrNoPath          = errors.New("rule file path is empty")
	ErrWatch           = errors.New("failed to watch rule file")
	ErrAlreadyWatching = errors.New("watcher already running")
)
