package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lawnchairsociety/amazeing/internal/logger"
	"github.com/lawnchairsociety/amazeing/internal/maze"
)

// ErrInvalid is wrapped by every configuration error
var ErrInvalid = errors.New("invalid configuration")

// Keys of the KEY=VALUE format
const (
	KeyWidth        = "WIDTH"
	KeyHeight       = "HEIGHT"
	KeyEntry        = "ENTRY"
	KeyExit         = "EXIT"
	KeyOutputFile   = "OUTPUT_FILE"
	KeyPerfect      = "PERFECT"
	KeySeed         = "SEED"
	KeyPattern      = "PATTERN"
	KeyLoopAttempts = "LOOP_ATTEMPTS"
)

var requiredKeys = []string{KeyWidth, KeyHeight, KeyEntry, KeyExit, KeyOutputFile, KeyPerfect}

var optionalKeys = []string{KeySeed, KeyPattern, KeyLoopAttempts}

// MazeConfig holds the settings of one generator run.
type MazeConfig struct {
	Width, Height int
	Entry, Exit   maze.Point
	Perfect       bool

	// Seed is nil when the run should pick a random seed
	Seed *int64

	OutputFile string

	// Pattern stamps the "42" pattern when the maze is large enough
	Pattern bool

	// LoopAttempts is the loop adder budget. 0 means maze.DefaultLoopAttempts.
	LoopAttempts int
}

// DefaultConfig returns the values used for optional keys.
func DefaultConfig() *MazeConfig {
	return &MazeConfig{
		Perfect:      true,
		Pattern:      true,
		LoopAttempts: maze.DefaultLoopAttempts,
	}
}

// LoadConfig reads and validates a configuration file. Files ending in
// .yaml or .yml are decoded as YAML, anything else as KEY=VALUE lines.
func LoadConfig(path string) (*MazeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file '%s' not found", path)
		}
		return nil, fmt.Errorf("cannot open config file '%s': %w", path, err)
	}

	var config *MazeConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		config, err = ParseYAML(data)
	default:
		config, err = Parse(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Parse reads the KEY=VALUE format. Blank lines and lines starting with #
// are skipped. Every required key must be present; missing keys are
// reported together.
func Parse(r io.Reader) (*MazeConfig, error) {
	raw := make(map[string]string)

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: expected KEY=VALUE", ErrInvalid, lineNumber)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			return nil, fmt.Errorf("%w: line %d: empty key or value", ErrInvalid, lineNumber)
		}
		if !isKnownKey(key) {
			logger.Warning("Ignoring unknown config key", "key", key, "line", lineNumber)
			continue
		}
		raw[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var missing []string
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: missing required config keys: %s", ErrInvalid, strings.Join(missing, ", "))
	}

	return fromRaw(raw)
}

func isKnownKey(key string) bool {
	for _, k := range requiredKeys {
		if k == key {
			return true
		}
	}
	for _, k := range optionalKeys {
		if k == key {
			return true
		}
	}
	return false
}

func fromRaw(raw map[string]string) (*MazeConfig, error) {
	config := DefaultConfig()
	var err error

	if config.Width, err = parseInt(KeyWidth, raw[KeyWidth]); err != nil {
		return nil, err
	}
	if config.Height, err = parseInt(KeyHeight, raw[KeyHeight]); err != nil {
		return nil, err
	}
	if config.Entry, err = parseCoord(KeyEntry, raw[KeyEntry]); err != nil {
		return nil, err
	}
	if config.Exit, err = parseCoord(KeyExit, raw[KeyExit]); err != nil {
		return nil, err
	}
	if config.Perfect, err = parseBool(KeyPerfect, raw[KeyPerfect]); err != nil {
		return nil, err
	}
	config.OutputFile = raw[KeyOutputFile]

	if value, ok := raw[KeySeed]; ok {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be an integer", ErrInvalid, KeySeed)
		}
		config.Seed = &seed
	}
	if value, ok := raw[KeyPattern]; ok {
		if config.Pattern, err = parseBool(KeyPattern, value); err != nil {
			return nil, err
		}
	}
	if value, ok := raw[KeyLoopAttempts]; ok {
		if config.LoopAttempts, err = parseInt(KeyLoopAttempts, value); err != nil {
			return nil, err
		}
	}

	return config, nil
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalid, key)
	}
	return n, nil
}

func parseBool(key, value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: %s must be True or False", ErrInvalid, key)
}

// parseCoord reads an "x,y" pair
func parseCoord(key, value string) (maze.Point, error) {
	xs, ys, ok := strings.Cut(value, ",")
	if !ok || strings.Contains(ys, ",") {
		return maze.Point{}, fmt.Errorf("%w: %s must be in format x,y", ErrInvalid, key)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return maze.Point{}, fmt.Errorf("%w: %s coordinates must be integers", ErrInvalid, key)
	}
	return maze.Point{X: x, Y: y}, nil
}

// Validate checks the values against each other and the maze bounds.
func (c *MazeConfig) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: %s must be greater than 0", ErrInvalid, KeyWidth)
	}
	if c.Height <= 0 {
		return fmt.Errorf("%w: %s must be greater than 0", ErrInvalid, KeyHeight)
	}
	if !c.inBounds(c.Entry) {
		return fmt.Errorf("%w: %s coordinates are outside maze bounds", ErrInvalid, KeyEntry)
	}
	if !c.inBounds(c.Exit) {
		return fmt.Errorf("%w: %s coordinates are outside maze bounds", ErrInvalid, KeyExit)
	}
	if c.Entry == c.Exit {
		return fmt.Errorf("%w: %s and %s must be different", ErrInvalid, KeyEntry, KeyExit)
	}
	if strings.TrimSpace(c.OutputFile) == "" {
		return fmt.Errorf("%w: %s cannot be empty", ErrInvalid, KeyOutputFile)
	}
	if c.LoopAttempts < 0 {
		return fmt.Errorf("%w: %s cannot be negative", ErrInvalid, KeyLoopAttempts)
	}
	return nil
}

func (c *MazeConfig) inBounds(p maze.Point) bool {
	return p.X >= 0 && p.X < c.Width && p.Y >= 0 && p.Y < c.Height
}

// Options converts the configuration into generator options
func (c *MazeConfig) Options() maze.Options {
	opts := maze.DefaultOptions(c.Width, c.Height, c.Entry, c.Exit)
	opts.Perfect = c.Perfect
	opts.Seed = c.Seed
	if !c.Pattern {
		opts.Pattern = nil
	}
	if c.LoopAttempts > 0 {
		opts.LoopAttempts = c.LoopAttempts
	}
	return opts
}
