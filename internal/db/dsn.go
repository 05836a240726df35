package db

import (
	"regexp"
	"strings"
)

var kvPairRegex = regexp.MustCompile(`(?i)\b(host|user|password|dbname|port|sslmode)=`)

// NormalizeDSN trims quotes and whitespace and supplements a postgres
// key=value DSN with sslmode=disable when missing. Anything that does not
// look like postgres is treated as a sqlite path and returned as-is.
func NormalizeDSN(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'")
	if s == "" {
		return "orcamentos.db"
	}
	if !IsPostgres(s) {
		return s
	}
	if strings.HasPrefix(strings.ToLower(s), "postgres") {
		return s
	}
	// key=value list: collapse spacing, default sslmode
	cleaned := strings.Join(strings.Fields(s), " ")
	if !strings.Contains(strings.ToLower(cleaned), "sslmode=") {
		cleaned += " sslmode=disable"
	}
	return cleaned
}

// IsPostgres reports whether the DSN targets postgres (URL or key=value
// form) rather than a sqlite file.
func IsPostgres(dsn string) bool {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	return strings.HasPrefix(lower, "postgres://") ||
		strings.HasPrefix(lower, "postgresql://") ||
		kvPairRegex.MatchString(dsn)
}
