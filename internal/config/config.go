package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/gorilla/schema"

	"github.com/nfrolov/sweeper/internal/mines"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

/*
ParseDifficulty accepts a preset name (easy, medium, hard) or a custom
geometry in query-string form:

	width=30&height=16&mine_count=99
*/
func ParseDifficulty(s string) (mines.GameParams, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return mines.Easy, nil
	case "medium":
		return mines.Medium, nil
	case "hard":
		return mines.Hard, nil
	}
	values, err := url.ParseQuery(s)
	if err != nil {
		return mines.GameParams{}, fmt.Errorf("invalid difficulty %q: %w", s, err)
	}
	var params mines.GameParams
	if err := decoder.Decode(&params, values); err != nil {
		return mines.GameParams{}, fmt.Errorf("invalid difficulty %q: %w", s, err)
	}
	if err := params.Validate(); err != nil {
		return mines.GameParams{}, err
	}
	return params, nil
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// LogFile names the rotating debug log target; empty disables file
// logging entirely.
func LogFile() string {
	return os.Getenv("SWEEPER_LOG_FILE")
}
