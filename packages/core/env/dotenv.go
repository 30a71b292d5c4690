package env

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadExamples parses a dotenv file of example values and returns them as
// key-value pairs. Quoting, export prefixes and comments follow godotenv.
// Nothing is exported to the OS environment.
func LoadExamples(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open examples file: %w", err)
	}
	defer file.Close()

	values, err := godotenv.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing examples file %s: %w", path, err)
	}

	return values, nil
}
