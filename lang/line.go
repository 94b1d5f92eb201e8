package lang

import (
	"bufio"
	"io"
	"iter"
	"slices"
	"strings"
)

// Line is one physical row of a template along with its 1-based position.
type Line struct {
	Number   int
	Contents string
}

// Cleaned returns the contents with surrounding whitespace removed.
func (l Line) Cleaned() string { return strings.TrimSpace(l.Contents) }

// IsEmpty reports whether the line holds nothing but whitespace.
func (l Line) IsEmpty() bool { return l.Cleaned() == "" }

// IsComment reports whether the cleaned line starts with '#'.
func (l Line) IsComment() bool { return strings.HasPrefix(l.Cleaned(), "#") }

// Block is a maximal run of consecutive non-empty lines.
type Block struct {
	Lines []Line
}

// Add appends line to the block and returns the block.
func (b *Block) Add(line Line) *Block {
	b.Lines = append(b.Lines, line)

	return b
}

// IsEmpty reports whether the block holds no lines.
func (b Block) IsEmpty() bool { return len(b.Lines) == 0 }

// All returns an iterator over the lines of the block in order.
func (b Block) All() iter.Seq[Line] { return slices.Values(b.Lines) }

// String returns the raw contents of the block, one line per row.
func (b Block) String() string {
	var sb strings.Builder

	for i, line := range b.Lines {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(line.Contents)
	}

	return sb.String()
}

// ScanBlocks returns an iterator over the blocks of r.
//
// Runs of empty lines separate blocks and are never part of one. A read error
// is yielded once as the second element, after which iteration stops.
func ScanBlocks(r io.Reader) iter.Seq2[Block, error] {
	return func(yield func(Block, error) bool) {
		scanner := bufio.NewScanner(r)
		// Allow long lines, e.g. generated secrets pasted as defaults.
		scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), 1<<20)

		var (
			block  Block
			number int
		)

		for scanner.Scan() {
			number++

			line := Line{Number: number, Contents: scanner.Text()}
			if !line.IsEmpty() {
				block.Add(line)

				continue
			}

			if block.IsEmpty() {
				continue
			}

			if !yield(block, nil) {
				return
			}

			block = Block{}
		}

		if err := scanner.Err(); err != nil {
			yield(Block{}, ErrReadInput.Wrap(err))

			return
		}

		if !block.IsEmpty() {
			yield(block, nil)
		}
	}
}
