package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lawnchairsociety/amazeing/internal/maze"
	"gopkg.in/yaml.v3"
)

// yamlConfig mirrors MazeConfig with pointers so absent keys can be told
// apart from zero values.
type yamlConfig struct {
	Width        *int        `yaml:"width"`
	Height       *int        `yaml:"height"`
	Entry        *coordValue `yaml:"entry"`
	Exit         *coordValue `yaml:"exit"`
	OutputFile   *string     `yaml:"output_file"`
	Perfect      *bool       `yaml:"perfect"`
	Seed         *int64      `yaml:"seed"`
	Pattern      *bool       `yaml:"pattern"`
	LoopAttempts *int        `yaml:"loop_attempts"`
}

// coordValue accepts either "x,y" or [x, y]
type coordValue maze.Point

func (c *coordValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		p, err := parseCoord("coordinate", node.Value)
		if err != nil {
			return err
		}
		*c = coordValue(p)
		return nil
	case yaml.SequenceNode:
		var xy []int
		if err := node.Decode(&xy); err != nil || len(xy) != 2 {
			return fmt.Errorf("%w: line %d: coordinate must be [x, y]", ErrInvalid, node.Line)
		}
		*c = coordValue{X: xy[0], Y: xy[1]}
		return nil
	}
	return fmt.Errorf("%w: line %d: coordinate must be \"x,y\" or [x, y]", ErrInvalid, node.Line)
}

// ParseYAML decodes the YAML format. Keys are the lower-case versions of
// the KEY=VALUE keys; unknown keys are rejected.
func ParseYAML(data []byte) (*MazeConfig, error) {
	var raw yamlConfig

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		if errors.Is(err, ErrInvalid) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	var missing []string
	if raw.Width == nil {
		missing = append(missing, KeyWidth)
	}
	if raw.Height == nil {
		missing = append(missing, KeyHeight)
	}
	if raw.Entry == nil {
		missing = append(missing, KeyEntry)
	}
	if raw.Exit == nil {
		missing = append(missing, KeyExit)
	}
	if raw.OutputFile == nil {
		missing = append(missing, KeyOutputFile)
	}
	if raw.Perfect == nil {
		missing = append(missing, KeyPerfect)
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: missing required config keys: %s", ErrInvalid, strings.Join(missing, ", "))
	}

	config := DefaultConfig()
	config.Width = *raw.Width
	config.Height = *raw.Height
	config.Entry = maze.Point(*raw.Entry)
	config.Exit = maze.Point(*raw.Exit)
	config.OutputFile = *raw.OutputFile
	config.Perfect = *raw.Perfect
	config.Seed = raw.Seed
	if raw.Pattern != nil {
		config.Pattern = *raw.Pattern
	}
	if raw.LoopAttempts != nil {
		config.LoopAttempts = *raw.LoopAttempts
	}
	return config, nil
}
