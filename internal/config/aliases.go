package config

import (
	"strings"

	"github.com/rohankatakam/githours/internal/errors"
)

// ParseEmailAlias splits "other@example.com=main@example.com" into the raw
// email and the canonical email it should be grouped under
func ParseEmailAlias(value string) (email, alias string, err error) {
	idx := strings.Index(value, "=")
	if idx <= 0 {
		return "", "", errors.ValidationErrorf("invalid alias: %s", value)
	}

	email = strings.TrimSpace(value[:idx])
	alias = strings.TrimSpace(value[idx+1:])
	if email == "" || alias == "" {
		return "", "", errors.ValidationErrorf("invalid alias: %s", value)
	}

	return email, alias, nil
}

// Aliases returns the alias table. Later entries win over earlier ones for
// the same raw email, so command-line aliases override config file ones.
func (c *Config) Aliases() (map[string]string, error) {
	aliases := make(map[string]string, len(c.EmailAliases))
	for _, entry := range c.EmailAliases {
		email, alias, err := ParseEmailAlias(entry)
		if err != nil {
			return nil, err
		}
		aliases[email] = alias
	}
	return aliases, nil
}
