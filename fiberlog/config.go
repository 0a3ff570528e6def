package fiberlog

import "github.com/sirupsen/logrus"

// Config - настройки middleware логирования запросов api
type Config struct {
	// Logger - целевой логгер, по умолчанию стандартный логгер logrus
	Logger *logrus.Logger
	// Tags - поля записи о запросе, см. tags.go
	Tags []string
}

var ConfigDefault = Config{
	Tags: []string{
		TagMethod,
		TagPath,
		TagStatus,
		TagLatency,
	},
}
