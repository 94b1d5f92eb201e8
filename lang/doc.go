// Package lang parses environment templates and resolves the variables they
// declare.
//
// # Grammar
//
// A template is a sequence of blocks separated by one or more empty lines.
// Each block declares one [Group]:
//
//	# Title
//	# Optional description
//	NAME=
//	NAME=default
//	NAME=default  # Human label
//	NAME=<random>
//	NAME=<random:32>
//	NAME={OTHER} literal text {ANOTHER}
//
// The first line of a block is its title. The second line is either a
// description or a variable. Every other line is a variable:
//
//   - NAME= declares a [Config] without a default.
//   - NAME=value declares a [Config] with a default.
//   - NAME=<random> and NAME=<random:N> declare a [RandomConfig], whose
//     default is a random string of N characters (64 to 128 if N is absent).
//   - A value containing {OTHER} placeholders declares an [AutoConfig],
//     computed from the other variables of the group. Only the first one of
//     a block is kept.
//
// A value may be followed by two spaces, '#', a space and a label shown in
// place of the name when prompting.
//
// # Errors
//
// Grammar violations are reported as [*ParseError], carrying the offending
// [Line] and the [Context] it was parsed in. A missing or non-regular source
// is reported as [ErrSourceNotFound] or [ErrSourceNotFile]. An [AutoConfig]
// referring to a variable its group does not define fails to resolve with
// [ErrReference].
//
// # Example
//
//	p := lang.NewParser(".env.sample")
//	groups, err := p.Parse(ctx)
//	if err != nil {
//		return err
//	}
//	for _, g := range groups {
//		settings, err := g.Resolve(ctx, prompter, true)
//		...
//	}
package lang
