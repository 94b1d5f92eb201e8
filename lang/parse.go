package lang

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"log/slog"
	"math/rand/v2"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/ardnew/createnv/log"
)

// Grammar of a template line, matched against [Line.Cleaned].
var (
	titlePattern  = regexp.MustCompile(`^# (?P<title>.+)$`)
	configPattern = regexp.MustCompile(`^(?P<name>[A-Z_0-9]+)=(?P<value>.+)?$`)
	randomPattern = regexp.MustCompile(`^<random(:(?P<length>\d+))?>$`)
)

// inlineComment separates a config value from its human-readable label.
const inlineComment = "  # "

// Parser reads a template file into a sequence of [Group].
type Parser struct {
	source string
	chars  string
	rng    *rand.Rand
	fsys   fs.FS
	logger log.Logger
}

// Option configures a [Parser].
type Option func(*Parser)

// WithRandomChars sets the characters random values are drawn from.
// An empty string selects [DefaultRandomChars].
func WithRandomChars(chars string) Option {
	return func(p *Parser) {
		if chars == "" {
			chars = DefaultRandomChars
		}

		p.chars = chars
	}
}

// WithRand sets the generator random values are drawn with. By default the
// package-level generator of math/rand/v2 is used.
func WithRand(rng *rand.Rand) Option {
	return func(p *Parser) { p.rng = rng }
}

// WithFS reads the source from fsys instead of the operating system.
func WithFS(fsys fs.FS) Option {
	return func(p *Parser) { p.fsys = fsys }
}

// WithLogger sets the logger that receives parse traces.
func WithLogger(logger log.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// NewParser returns a Parser for the template at source.
func NewParser(source string, opts ...Option) *Parser {
	p := &Parser{
		source: source,
		chars:  DefaultRandomChars,
		logger: log.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Source returns the path of the template.
func (p *Parser) Source() string { return p.source }

// RandomChars returns the characters random values are drawn from.
func (p *Parser) RandomChars() string { return p.chars }

// Parse reads the whole template and returns its groups in source order.
//
// The first error aborts parsing; no partial result is returned. Source
// errors are [ErrSourceNotFound] or [ErrSourceNotFile], grammar errors are
// [*ParseError].
func (p *Parser) Parse(ctx context.Context) ([]*Group, error) {
	if err := p.check(); err != nil {
		return nil, err
	}

	var groups []*Group

	for block, err := range p.Blocks() {
		if err != nil {
			return nil, err
		}

		group, err := p.ParseBlock(ctx, block)
		if err != nil {
			return nil, err
		}

		groups = append(groups, group)
	}

	p.logger.DebugContext(ctx, "template parsed",
		slog.String("source", p.source),
		slog.Int("group_count", len(groups)),
	)

	return groups, nil
}

// check verifies that the source exists and is a regular file.
func (p *Parser) check() error {
	info, err := p.stat()
	if errors.Is(err, fs.ErrNotExist) {
		return ErrSourceNotFound.
			Wrap(fmt.Errorf("%s does not exist", p.source)).
			With(slog.String("source", p.source))
	}

	if err != nil {
		return ErrReadInput.Wrap(err).With(slog.String("source", p.source))
	}

	if !info.Mode().IsRegular() {
		return ErrSourceNotFile.
			Wrap(fmt.Errorf("%s is not a file", p.source)).
			With(slog.String("source", p.source))
	}

	return nil
}

func (p *Parser) stat() (fs.FileInfo, error) {
	if p.fsys != nil {
		return fs.Stat(p.fsys, p.source)
	}

	return os.Stat(p.source)
}

func (p *Parser) open() (fs.File, error) {
	if p.fsys != nil {
		return p.fsys.Open(p.source)
	}

	return os.Open(p.source)
}

// Blocks returns an iterator over the blocks of the source. Every call
// reopens and rescans the source.
func (p *Parser) Blocks() iter.Seq2[Block, error] {
	return func(yield func(Block, error) bool) {
		f, err := p.open()
		if err != nil {
			yield(Block{}, ErrReadInput.Wrap(err).
				With(slog.String("source", p.source)))

			return
		}
		defer f.Close()

		for block, err := range ScanBlocks(f) {
			if !yield(block, err) {
				return
			}
		}
	}
}

// ParseBlock parses one block into a [Group].
//
// The first line is the title. The second is a description or a config.
// Every other line is a config. Only the first [AutoConfig] is kept.
func (p *Parser) ParseBlock(ctx context.Context, block Block) (*Group, error) {
	if block.IsEmpty() {
		return nil, ErrReadInput.Wrap(errors.New("empty block"))
	}

	title, err := p.ParseTitle(block.Lines[0])
	if err != nil {
		return nil, err
	}

	group := &Group{Title: title}

	if len(block.Lines) < 2 {
		// The slot for the second line is the row after the title.
		missing := Line{Number: block.Lines[0].Number + 1}

		return nil, NewParseError(p.source, missing, ContextSecondLine)
	}

	description, value, err := p.ParseDescriptionOrConfig(block.Lines[1])
	if err != nil {
		return nil, err
	}

	group.Description = description
	if value != nil {
		p.add(ctx, group, block.Lines[1], value)
	}

	for _, line := range block.Lines[2:] {
		value, err := p.ParseConfig(line)
		if err != nil {
			return nil, err
		}

		p.add(ctx, group, line, value)
	}

	p.logger.TraceContext(ctx, "block parsed",
		slog.String("title", group.Title),
		slog.Int("line", block.Lines[0].Number),
		slog.Int("config_count", len(group.Configs)),
		slog.Bool("auto", group.Auto != nil),
	)

	return group, nil
}

// add appends value to group, keeping only the first AutoConfig.
func (p *Parser) add(ctx context.Context, group *Group, line Line, value Value) {
	switch v := value.(type) {
	case Prompted:
		group.Configs = append(group.Configs, v)

	case AutoConfig:
		if group.Auto == nil {
			group.Auto = &v

			return
		}

		p.logger.DebugContext(ctx, "extra auto config ignored",
			slog.String("name", v.Name),
			slog.Int("line", line.Number),
			slog.String("kept", group.Auto.Name),
		)
	}
}

// ParseTitle returns the title text of a title line.
func (p *Parser) ParseTitle(line Line) (string, error) {
	m := titlePattern.FindStringSubmatch(line.Cleaned())
	if m == nil {
		return "", NewParseError(p.source, line, ContextTitle)
	}

	return m[titlePattern.SubexpIndex("title")], nil
}

// ParseConfig parses a config line into a [Config], [RandomConfig] or
// [AutoConfig].
func (p *Parser) ParseConfig(line Line) (Value, error) {
	m := configPattern.FindStringSubmatch(line.Cleaned())
	if m == nil {
		return nil, NewParseError(p.source, line, ContextConfig)
	}

	name := m[configPattern.SubexpIndex("name")]
	value := m[configPattern.SubexpIndex("value")]

	var human string
	if i := strings.LastIndex(value, inlineComment); i >= 0 {
		value, human = value[:i], value[i+len(inlineComment):]
	}

	if placeholder.MatchString(value) {
		return AutoConfig{Name: name, Value: value}, nil
	}

	if r := randomPattern.FindStringSubmatch(value); r != nil {
		// Zero and absent lengths both select a random length.
		length, _ := strconv.Atoi(r[randomPattern.SubexpIndex("length")])

		return RandomConfig{
			Name:         name,
			HumanName:    human,
			AllowedChars: p.chars,
			Length:       length,
			rng:          p.rng,
		}, nil
	}

	return Config{Name: name, HumanName: human, Default: value}, nil
}

// ParseDescriptionOrConfig parses the second line of a block. A comment line
// yields a description; any other line yields a config value.
func (p *Parser) ParseDescriptionOrConfig(
	line Line,
) (description string, value Value, err error) {
	if line.IsComment() {
		description, err = p.ParseTitle(line)
	} else {
		value, err = p.ParseConfig(line)
	}

	if err != nil {
		return "", nil, NewParseError(p.source, line, ContextSecondLine)
	}

	return description, value, nil
}
