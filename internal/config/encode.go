package config

import (
	"fmt"
	"strconv"

	"github.com/joho/godotenv"
)

// Encode serializes the record as `.env`-style text (KEY=VALUE per line).
// Resolving the output as the sole dotenv source yields an equal record.
func (r Record) Encode() (string, error) {
	out, err := godotenv.Marshal(map[string]string{
		KeyDBName:     r.DBName,
		KeyDBPassword: r.DBPassword,
		KeyBaseURL:    r.BaseURL,
		KeyClientID:   strconv.Itoa(r.ClientID),
	})
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	return out, nil
}
