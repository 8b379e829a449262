// Package targets loads the list of sites to probe from a plain text file,
// one domain per line.
package targets

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads the target list at path and returns the sites in file order.
// Lines are trimmed of surrounding whitespace and blank lines are skipped;
// duplicates are kept. No URL or DNS validation happens here: a malformed
// entry surfaces later as a probe failure, not a load failure.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open targets file %s: %w", path, err)
	}
	defer f.Close()

	var sites []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		site := strings.TrimSpace(scanner.Text())
		if site == "" {
			continue
		}
		sites = append(sites, site)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read targets file %s: %w", path, err)
	}
	return sites, nil
}
