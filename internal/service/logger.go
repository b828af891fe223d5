package service

import "go.uber.org/zap"

// log — логгер пакета. По умолчанию no-op, переопределяется из main.
var log = zap.NewNop().Sugar()

// SetLogger устанавливает логгер сервисного слоя.
func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		log = l
	}
}
