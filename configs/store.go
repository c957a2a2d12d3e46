package configs

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	CLIErrors "github.com/cwbdev/cwb/errors"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Store edits the config file in place, keeping key order and comments of
// untouched nodes. Callers reload the document after a write.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

type document struct {
	root       yaml.Node
	envs       *yaml.Node
	defaultKey string
	mapping    *yaml.Node
}

func (s *Store) read() (*document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &CLIErrors.ConfigParseError{Path: s.path, Err: err}
	}

	d := &document{}
	if err := yaml.Unmarshal(data, &d.root); err != nil {
		return nil, &CLIErrors.ConfigParseError{Path: s.path, Err: err}
	}
	if len(d.root.Content) == 0 || d.root.Content[0].Kind != yaml.MappingNode {
		return nil, &CLIErrors.ConfigParseError{Path: s.path, Err: fmt.Errorf("top level is not a mapping")}
	}
	d.mapping = d.root.Content[0]

	if _, envs := lookupKey(d.mapping, canonicalEnvsKey); envs != nil && envs.Kind == yaml.MappingNode {
		d.envs = envs
		d.defaultKey = canonicalDefaultKey
	} else {
		d.envs = d.mapping
		d.defaultKey = legacyDefaultKey
	}
	return d, nil
}

func (s *Store) write(d *document) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&d.root); err != nil {
		return errors.Wrap(err, "encoding config")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "encoding config")
	}

	perm := os.FileMode(0644)
	if info, err := os.Stat(s.path); err == nil {
		perm = info.Mode().Perm()
	}
	return errors.Wrapf(os.WriteFile(s.path, buf.Bytes(), perm), "writing %s", s.path)
}

func (d *document) environment(name string) *yaml.Node {
	if d.envs == d.mapping && strings.EqualFold(name, legacyDefaultKey) {
		return nil
	}
	_, node := lookupKey(d.envs, name)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	return node
}

func (d *document) defaultEnvironment() string {
	_, node := lookupKey(d.mapping, d.defaultKey)
	if node == nil {
		return ""
	}
	return strings.ToLower(node.Value)
}

// HasEnvironment reports whether name is defined in the file.
func (s *Store) HasEnvironment(name string) (bool, error) {
	d, err := s.read()
	if err != nil {
		return false, err
	}
	return d.environment(strings.ToLower(name)) != nil, nil
}

// CopyEnvironment defines name as a copy of the from block, replacing any
// existing definition of name.
func (s *Store) CopyEnvironment(name, from string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	name, from = strings.ToLower(name), strings.ToLower(from)

	d, err := s.read()
	if err != nil {
		return err
	}

	source := d.environment(from)
	if source == nil {
		return &CLIErrors.UnknownEnvironmentError{Name: from, Valid: d.environmentNames()}
	}

	setKey(d.envs, name, cloneNode(source))
	return s.write(d)
}

// AddEnvironment defines name with the given scalar fields, replacing any
// existing definition of name.
func (s *Store) AddEnvironment(name string, fields map[string]string) error {
	if err := ValidateEnvironment(name, fields); err != nil {
		return err
	}
	name = strings.ToLower(name)

	d, err := s.read()
	if err != nil {
		return err
	}

	setKey(d.envs, name, fieldsBlock(fields))
	return s.write(d)
}

// Create writes a new document in the canonical layout holding a single
// environment, which becomes the default.
func (s *Store) Create(name string, fields map[string]string) error {
	if err := ValidateEnvironment(name, fields); err != nil {
		return err
	}
	name = strings.ToLower(name)

	d := &document{
		mapping:    &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"},
		envs:       &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"},
		defaultKey: canonicalDefaultKey,
	}
	d.root = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{d.mapping}}

	setKey(d.mapping, canonicalDefaultKey, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name})
	setKey(d.mapping, canonicalEnvsKey, d.envs)
	setKey(d.envs, name, fieldsBlock(fields))
	return s.write(d)
}

// fieldsBlock renders fields as a mapping sorted by key. Empty values are left out.
func fieldsBlock(fields map[string]string) *yaml.Node {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	block := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range keys {
		if fields[k] == "" {
			continue
		}
		setKey(block, k, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: fields[k], Style: yaml.DoubleQuotedStyle})
	}
	return block
}

// RemoveEnvironment deletes the name block. The default environment cannot
// be removed.
func (s *Store) RemoveEnvironment(name string) error {
	name = strings.ToLower(name)

	d, err := s.read()
	if err != nil {
		return err
	}
	if d.environment(name) == nil {
		return &CLIErrors.UnknownEnvironmentError{Name: name, Valid: d.environmentNames()}
	}
	if d.defaultEnvironment() == name {
		return &CLIErrors.DefaultEnvironmentDeleteError{Name: name}
	}

	deleteKey(d.envs, name)
	return s.write(d)
}

// SetDefaultEnvironment points the default selector at name and returns the
// previous default.
func (s *Store) SetDefaultEnvironment(name string) (string, error) {
	name = strings.ToLower(name)

	d, err := s.read()
	if err != nil {
		return "", err
	}
	if d.environment(name) == nil {
		return "", &CLIErrors.UnknownEnvironmentError{Name: name, Valid: d.environmentNames()}
	}

	previous := d.defaultEnvironment()
	setKey(d.mapping, d.defaultKey, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name})
	return previous, s.write(d)
}

func (d *document) environmentNames() []string {
	var names []string
	for i := 0; i+1 < len(d.envs.Content); i += 2 {
		key, value := d.envs.Content[i], d.envs.Content[i+1]
		if value.Kind != yaml.MappingNode {
			continue
		}
		if d.envs == d.mapping && strings.EqualFold(key.Value, canonicalEnvsKey) {
			continue
		}
		names = append(names, strings.ToLower(key.Value))
	}
	sort.Strings(names)
	return names
}

func lookupKey(mapping *yaml.Node, key string) (int, *yaml.Node) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if strings.EqualFold(mapping.Content[i].Value, key) {
			return i, mapping.Content[i+1]
		}
	}
	return -1, nil
}

func setKey(mapping *yaml.Node, key string, value *yaml.Node) {
	if i, _ := lookupKey(mapping, key); i >= 0 {
		value.HeadComment = mapping.Content[i+1].HeadComment
		mapping.Content[i+1] = value
		return
	}
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		value,
	)
}

func deleteKey(mapping *yaml.Node, key string) {
	if i, _ := lookupKey(mapping, key); i >= 0 {
		mapping.Content = append(mapping.Content[:i], mapping.Content[i+2:]...)
	}
}

func cloneNode(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	out := *n
	out.Anchor = ""
	if n.Content != nil {
		out.Content = make([]*yaml.Node, len(n.Content))
		for i, c := range n.Content {
			out.Content[i] = cloneNode(c)
		}
	}
	return &out
}
