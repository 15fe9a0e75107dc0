package users

import (
	"time"
)

// Status describes the running application, e.g. for a status command or endpoint.
type Status struct {
	Status          string      `json:"status"`
	Time            time.Time   `json:"time"`
	Uptime          string      `json:"uptime"`
	GitHash         string      `json:"gitHash"`
	ApplicationName string      `json:"applicationName"`
	Environment     Environment `json:"environment"`
	LogLevel        string      `json:"logLevel"`
	Seeded          bool        `json:"seeded"`
	OTEL            OTEL        `json:"otel"`
}

func (c *Container) Status() Status {
	return Status{
		Status:          "online",
		Time:            time.Now(),
		Uptime:          time.Since(c.startedAt).Round(time.Second).String(),
		GitHash:         gitHash(),
		ApplicationName: c.Config.ApplicationName,
		Environment:     c.Config.Environment,
		LogLevel:        c.Config.Log.Level,
		Seeded:          c.Config.Users.Seed,
		OTEL:            c.Config.OTEL,
	}
}
