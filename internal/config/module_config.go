package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ModuleConfig holds the named numeric thresholds every QC module consults
// to decide its Pass/Warn/Fail verdict, keyed as "module:warn" or
// "module:error".
type ModuleConfig struct {
	params map[string]float64
}

// New returns a ModuleConfig preloaded with DefaultLimits.
func New() (*ModuleConfig, error) {
	c := &ModuleConfig{params: make(map[string]float64)}
	if err := c.Load(strings.NewReader(DefaultLimits)); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns the threshold for key ("module:warn" or "module:error").
// It panics if the key is absent, matching the bundled defaults always
// covering every recognized key; callers needing a soft fallback should use
// Lookup instead.
func (c *ModuleConfig) Get(key string) float64 {
	v, ok := c.params[key]
	if !ok {
		panic(fmt.Sprintf("module config: no threshold configured for %q", key))
	}
	return v
}

// Lookup returns the threshold for key and whether it was present.
func (c *ModuleConfig) Lookup(key string) (float64, bool) {
	v, ok := c.params[key]
	return v, ok
}

// Load parses additional "module\twarn_or_error\tnumber" lines from r,
// overriding any keys already present. Blank lines and lines starting with
// '#' are skipped. A line that doesn't split into exactly 3 whitespace-
// separated fields stops parsing, matching the bundled loader's behavior
// of treating a malformed line as the end of the table rather than
// skipping just that line.
func (c *ModuleConfig) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || len(line) == 0 {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			break
		}
		val, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			continue
		}
		c.params[fields[0]+":"+fields[1]] = val
	}
	return scanner.Err()
}
