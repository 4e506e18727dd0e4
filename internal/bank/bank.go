package bank

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"SafetyQuizBot/internal/core"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

var errInvalidSection = errors.New("invalid section")

type optionFile struct {
	Label   string `toml:"label"`
	Correct bool   `toml:"correct"`
}

type questionFile struct {
	Text    string       `toml:"text"`
	Image   string       `toml:"image"`
	Options []optionFile `toml:"options"`
}

type sectionFile struct {
	Name      string         `toml:"name"`
	Questions []questionFile `toml:"questions"`
}

type bankFile struct {
	Sections []sectionFile `toml:"sections"`
}

// Bank implements core.QuestionBank over an ordered section list.
type Bank struct {
	ordered []core.Section
	byName  map[string]core.Section
}

// New builds a bank from already-validated sections.
func New(sections []core.Section) *Bank {
	b := &Bank{ordered: sections, byName: make(map[string]core.Section, len(sections))}
	for _, sec := range sections {
		b.byName[sec.Name] = sec
	}
	return b
}

// Sections returns all sections in load order.
func (b *Bank) Sections() []core.Section { return b.ordered }

// Section looks a section up by name.
func (b *Bank) Section(name string) (core.Section, bool) {
	sec, ok := b.byName[name]
	return sec, ok
}

// Load reads every *.toml file in dir, in lexical order, into a bank.
func Load(dir string) (*Bank, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	var sections []core.Section
	for _, path := range paths {
		var bf bankFile
		if _, err := toml.DecodeFile(path, &bf); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		for _, sf := range bf.Sections {
			sec, err := convertSection(sf)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			sections = append(sections, sec)
		}
	}
	if len(sections) == 0 {
		return nil, fmt.Errorf("no sections found in %s", dir)
	}
	return New(sections), nil
}

// LoadOrDefault loads the bank from dir, falling back to the built-in
// sections when dir is unset or yields nothing usable.
func LoadOrDefault(dir string) *Bank {
	if dir == "" {
		return Default()
	}
	b, err := Load(dir)
	if err != nil {
		logrus.WithError(err).WithField("dir", dir).Warn("Falling back to built-in questions")
		return Default()
	}
	logrus.WithFields(logrus.Fields{"dir": dir, "sections": len(b.Sections())}).Info("Question bank loaded")
	return b
}

func convertSection(sf sectionFile) (core.Section, error) {
	if sf.Name == "" {
		return core.Section{}, fmt.Errorf("%w: missing name", errInvalidSection)
	}
	if len(sf.Questions) == 0 {
		return core.Section{}, fmt.Errorf("%w: %q has no questions", errInvalidSection, sf.Name)
	}
	sec := core.Section{Name: sf.Name, Questions: make([]core.Question, 0, len(sf.Questions))}
	for i, qf := range sf.Questions {
		if qf.Text == "" {
			return core.Section{}, fmt.Errorf("%w: %q question[%d] missing text", errInvalidSection, sf.Name, i)
		}
		if len(qf.Options) < 2 {
			return core.Section{}, fmt.Errorf("%w: %q question[%d] needs at least 2 options", errInvalidSection, sf.Name, i)
		}
		q := core.Question{Text: qf.Text, Image: qf.Image, Options: make([]core.Option, 0, len(qf.Options))}
		hasCorrect := false
		for j, of := range qf.Options {
			if of.Label == "" {
				return core.Section{}, fmt.Errorf("%w: %q question[%d] option[%d] is empty", errInvalidSection, sf.Name, i, j)
			}
			if of.Correct {
				hasCorrect = true
			}
			q.Options = append(q.Options, core.Option{Label: of.Label, Correct: of.Correct})
		}
		if !hasCorrect {
			return core.Section{}, fmt.Errorf("%w: %q question[%d] has no correct option", errInvalidSection, sf.Name, i)
		}
		sec.Questions = append(sec.Questions, q)
	}
	return sec, nil
}
