// Package config loads simulation settings from
// TOML or INI files and command line values.
package config

import (
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/djdv/go-pagesim"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

// Config is the input of a simulation run.
type Config struct {
	LogLevel   string
	Sequence   []int
	Policies   []pagesim.Policy
	Frames     int
	Sequential bool
	Trace      bool
	Progress   bool
}

// Recognized keys, shared by every file format.
const (
	KeyFrames     = "frames"
	KeySequence   = "sequence"
	KeyPolicies   = "policies"
	KeySequential = "sequential"
	KeyTrace      = "trace"
	KeyProgress   = "progress"
	KeyLogLevel   = "log_level"
)

// ErrUnsupportedFormat is returned by [Load]
// for files that are neither TOML nor INI.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Default returns a config selecting every policy.
func Default() Config {
	return Config{
		Policies: slices.Collect(pagesim.Policies()),
		LogLevel: "info",
	}
}

// Load overlays the file at path onto c.
// The format is chosen by extension: `.toml`, or `.ini`/`.cfg`.
func (c *Config) Load(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return c.loadTOML(path)
	case ".ini", ".cfg":
		return c.loadINI(path)
	default:
		return errors.Wrap(ErrUnsupportedFormat, path)
	}
}

func (c *Config) loadTOML(path string) error {
	tree, err := toml.LoadFile(path)
	if err != nil {
		return errors.Wrapf(err, "loading %s", path)
	}
	if value := tree.Get(KeyFrames); value != nil {
		frames, ok := value.(int64)
		if !ok {
			return keyError(path, KeyFrames, value)
		}
		c.Frames = int(frames)
	}
	if value := tree.Get(KeySequence); value != nil {
		if c.Sequence, err = tomlInts(value); err != nil {
			return errors.Wrapf(err, "%s: %s", path, KeySequence)
		}
	}
	if value := tree.Get(KeyPolicies); value != nil {
		names, err := tomlStrings(value)
		if err != nil {
			return errors.Wrapf(err, "%s: %s", path, KeyPolicies)
		}
		if c.Policies, err = ParsePolicies(names...); err != nil {
			return errors.Wrapf(err, "%s: %s", path, KeyPolicies)
		}
	}
	for key, flag := range map[string]*bool{
		KeySequential: &c.Sequential,
		KeyTrace:      &c.Trace,
		KeyProgress:   &c.Progress,
	} {
		if value := tree.Get(key); value != nil {
			set, ok := value.(bool)
			if !ok {
				return keyError(path, key, value)
			}
			*flag = set
		}
	}
	if value := tree.Get(KeyLogLevel); value != nil {
		level, ok := value.(string)
		if !ok {
			return keyError(path, KeyLogLevel, value)
		}
		c.LogLevel = level
	}
	return nil
}

// tomlInts accepts an array of integers or a string sequence.
func tomlInts(value any) ([]int, error) {
	switch value := value.(type) {
	case string:
		return ParseSequence(value)
	case []any:
		ints := make([]int, len(value))
		for i, element := range value {
			integer, ok := element.(int64)
			if !ok {
				return nil, errors.Errorf("element %d (%v) is not an integer", i, element)
			}
			ints[i] = int(integer)
		}
		return ints, nil
	default:
		return nil, errors.Errorf("unexpected type %T", value)
	}
}

func tomlStrings(value any) ([]string, error) {
	switch value := value.(type) {
	case string:
		return strings.Split(value, ","), nil
	case []any:
		strs := make([]string, len(value))
		for i, element := range value {
			str, ok := element.(string)
			if !ok {
				return nil, errors.Errorf("element %d (%v) is not a string", i, element)
			}
			strs[i] = str
		}
		return strs, nil
	default:
		return nil, errors.Errorf("unexpected type %T", value)
	}
}

func (c *Config) loadINI(path string) error {
	file, err := ini.Load(path)
	if err != nil {
		return errors.Wrapf(err, "loading %s", path)
	}
	section := file.Section(ini.DefaultSection)
	if section.HasKey(KeyFrames) {
		if c.Frames, err = section.Key(KeyFrames).Int(); err != nil {
			return errors.Wrapf(err, "%s: %s", path, KeyFrames)
		}
	}
	if section.HasKey(KeySequence) {
		if c.Sequence, err = ParseSequence(section.Key(KeySequence).String()); err != nil {
			return errors.Wrapf(err, "%s: %s", path, KeySequence)
		}
	}
	if section.HasKey(KeyPolicies) {
		names := section.Key(KeyPolicies).Strings(",")
		if c.Policies, err = ParsePolicies(names...); err != nil {
			return errors.Wrapf(err, "%s: %s", path, KeyPolicies)
		}
	}
	for key, flag := range map[string]*bool{
		KeySequential: &c.Sequential,
		KeyTrace:      &c.Trace,
		KeyProgress:   &c.Progress,
	} {
		if !section.HasKey(key) {
			continue
		}
		if *flag, err = section.Key(key).Bool(); err != nil {
			return errors.Wrapf(err, "%s: %s", path, key)
		}
	}
	if section.HasKey(KeyLogLevel) {
		c.LogLevel = section.Key(KeyLogLevel).String()
	}
	return nil
}

func keyError(path, key string, value any) error {
	return errors.Errorf("%s: %s: unexpected value %v (%T)", path, key, value, value)
}

// ParseSequence parses page identifiers separated
// by commas and/or whitespace, e.g. "1,2, 3 4".
func ParseSequence(text string) ([]int, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	sequence := make([]int, len(fields))
	for i, field := range fields {
		page, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(err, "reference %d", i)
		}
		sequence[i] = page
	}
	return sequence, nil
}

// ParsePolicies parses policy names, skipping empty ones.
// "all" selects every policy.
func ParsePolicies(names ...string) ([]pagesim.Policy, error) {
	var policies []pagesim.Policy
	for _, name := range names {
		name = strings.TrimSpace(name)
		switch {
		case name == "":
			continue
		case strings.EqualFold(name, "all"):
			policies = slices.AppendSeq(policies, pagesim.Policies())
			continue
		}
		policy, err := pagesim.ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		policies = append(policies, policy)
	}
	return policies, nil
}
