package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const requestMessage = "запрос к api вакансий"

// New возвращает middleware, пишущее запись о каждом запросе api через logrus
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
	}
	d := new(data)
	d.pid = os.Getpid()
	ftm := getFuncTagMap(cfg, d)
	return func(c *fiber.Ctx) error {
		d.start = time.Now()
		err := c.Next()
		d.end = time.Now()
		// preflight-запросы не логируем
		if c.Method() == fiber.MethodOptions {
			return err
		}
		entry := targetLogger(cfg).WithFields(collectFields(ftm, c, d))
		if c.Response().StatusCode() >= fiber.StatusBadRequest {
			entry.Warn(requestMessage)
		} else {
			entry.Info(requestMessage)
		}
		return err
	}
}

func targetLogger(cfg Config) *log.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return log.StandardLogger()
}

// collectFields вычисляет значения настроенных тегов,
// пустые строковые значения опускаются
func collectFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	fields := make(log.Fields, len(ftm))
	for tag, fn := range ftm {
		value := fn(c, d)
		if str, ok := value.(string); ok {
			if str != "" {
				fields[tag] = str
			}
			continue
		}
		fields[tag] = value
	}
	return fields
}
