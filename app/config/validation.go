package config

import (
	"fmt"
	"strings"
)

// FieldError describes one invalid configuration key.
type FieldError struct {
	Key    string
	Value  any
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s=%v: %s", e.Key, e.Value, e.Reason)
}

// ValidationErrors collects every invalid key found by Validate.
type ValidationErrors []*FieldError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate reports every invalid value at once.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, &FieldError{"server.port", c.Server.Port, "must be between 0 and 65535"})
	}
	if c.Server.ShutdownTimeout < 0 {
		errs = append(errs, &FieldError{"server.shutdown_timeout", c.Server.ShutdownTimeout, "must not be negative"})
	}
	if strings.TrimSpace(c.Session.Name) == "" {
		errs = append(errs, &FieldError{"session.name", c.Session.Name, "must not be empty"})
	}
	switch c.Storage.Driver {
	case "memory", "badger":
	default:
		errs = append(errs, &FieldError{"storage.driver", c.Storage.Driver, "must be memory or badger"})
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, &FieldError{"log.format", c.Log.Format, "must be text or json"})
	}
	if c.Seed.Posts < 0 {
		errs = append(errs, &FieldError{"seed.posts", c.Seed.Posts, "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
