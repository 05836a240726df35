package db

import "testing"

func TestNormalizeDSN(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty defaults to local sqlite", "", "orcamentos.db"},
		{"sqlite path untouched", "data/orcamentos.db", "data/orcamentos.db"},
		{"postgres url untouched", "postgres://u:p@localhost:5432/orc", "postgres://u:p@localhost:5432/orc"},
		{"kv gains sslmode", "host=localhost user=orc dbname=orc", "host=localhost user=orc dbname=orc sslmode=disable"},
		{"kv keeps explicit sslmode", "host=db dbname=orc sslmode=require", "host=db dbname=orc sslmode=require"},
		{"quotes and spacing trimmed", `  "host=db   dbname=orc"  `, "host=db dbname=orc sslmode=disable"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeDSN(tc.in); got != tc.want {
				t.Errorf("NormalizeDSN(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestIsPostgres(t *testing.T) {
	for _, dsn := range []string{
		"postgres://u:p@localhost/orc",
		"postgresql://u:p@localhost/orc",
		"host=localhost dbname=orc",
	} {
		if !IsPostgres(dsn) {
			t.Errorf("IsPostgres(%q) = false, want true", dsn)
		}
	}
	for _, dsn := range []string{"orcamentos.db", "file:test?mode=memory", ""} {
		if IsPostgres(dsn) {
			t.Errorf("IsPostgres(%q) = true, want false", dsn)
		}
	}
}
