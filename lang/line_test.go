package lang

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		contents string
		cleaned  string
		empty    bool
		comment  bool
	}{
		{contents: "", cleaned: "", empty: true},
		{contents: " ", cleaned: "", empty: true},
		{contents: "\t", cleaned: "", empty: true},
		{contents: "\n\t", cleaned: "", empty: true},
		{contents: "  \tyay\n  ", cleaned: "yay"},
		{contents: "# Hell yeah!", cleaned: "# Hell yeah!", comment: true},
		{contents: "\t# Hell yeah!", cleaned: "# Hell yeah!", comment: true},
		{contents: "    # Hell yeah!", cleaned: "# Hell yeah!", comment: true},
		{contents: "NAME=CUDUCOS", cleaned: "NAME=CUDUCOS"},
	}

	for _, tt := range tests {
		line := Line{Number: 42, Contents: tt.contents}

		if got := line.Cleaned(); got != tt.cleaned {
			t.Errorf("Line(%q).Cleaned() = %q, want %q", tt.contents, got, tt.cleaned)
		}

		if got := line.IsEmpty(); got != tt.empty {
			t.Errorf("Line(%q).IsEmpty() = %v, want %v", tt.contents, got, tt.empty)
		}

		if got := line.IsComment(); got != tt.comment {
			t.Errorf("Line(%q).IsComment() = %v, want %v", tt.contents, got, tt.comment)
		}
	}
}

func TestBlock(t *testing.T) {
	t.Parallel()

	var block Block
	if !block.IsEmpty() {
		t.Error("zero Block is not empty")
	}

	first := Line{Number: 1, Contents: "Hell yeah!"}
	second := Line{Number: 2, Contents: "This is awesome"}

	block.Add(first).Add(second)

	if block.IsEmpty() {
		t.Error("Block with lines is empty")
	}

	var got []Line
	for line := range block.All() {
		got = append(got, line)
	}

	if diff := cmp.Diff([]Line{first, second}, got); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}

	if want := "Hell yeah!\nThis is awesome"; block.String() != want {
		t.Errorf("String() = %q, want %q", block.String(), want)
	}
}

func TestScanBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Block
	}{
		{
			name:  "empty",
			input: "",
		},
		{
			name:  "only blank lines",
			input: "\n \n\t\n",
		},
		{
			name: "blank lines around blocks",
			input: "\t\n# Title\n# Description\nVARIABLE=\n\n" +
				"# Another title\nANOTHER_VARIABLE=\n\n",
			want: []Block{
				{Lines: []Line{
					{Number: 2, Contents: "# Title"},
					{Number: 3, Contents: "# Description"},
					{Number: 4, Contents: "VARIABLE="},
				}},
				{Lines: []Line{
					{Number: 6, Contents: "# Another title"},
					{Number: 7, Contents: "ANOTHER_VARIABLE="},
				}},
			},
		},
		{
			name:  "several separators and no final newline",
			input: "# A\nX=1\n\n\n  \n# B\nY=2",
			want: []Block{
				{Lines: []Line{
					{Number: 1, Contents: "# A"},
					{Number: 2, Contents: "X=1"},
				}},
				{Lines: []Line{
					{Number: 6, Contents: "# B"},
					{Number: 7, Contents: "Y=2"},
				}},
			},
		},
		{
			name:  "contents kept verbatim",
			input: "  # Indented\n\tX=1  \n",
			want: []Block{
				{Lines: []Line{
					{Number: 1, Contents: "  # Indented"},
					{Number: 2, Contents: "\tX=1  "},
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got []Block

			for block, err := range ScanBlocks(strings.NewReader(tt.input)) {
				if err != nil {
					t.Fatalf("ScanBlocks() error = %v", err)
				}

				got = append(got, block)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ScanBlocks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScanBlocks_Break(t *testing.T) {
	t.Parallel()

	count := 0

	for range ScanBlocks(strings.NewReader("# A\nX=1\n\n# B\nY=2\n")) {
		count++

		break
	}

	if count != 1 {
		t.Errorf("iterations = %d, want 1", count)
	}
}

// errorReader is a reader that always returns an error.
type errorReader struct {
	err error
}

func (r *errorReader) Read([]byte) (int, error) { return 0, r.err }

func TestScanBlocks_ReadError(t *testing.T) {
	t.Parallel()

	var errs []error

	for _, err := range ScanBlocks(&errorReader{err: bytes.ErrTooLarge}) {
		errs = append(errs, err)
	}

	if len(errs) != 1 {
		t.Fatalf("yielded %d times, want 1", len(errs))
	}

	if !errors.Is(errs[0], ErrReadInput) {
		t.Errorf("error = %v, want %v", errs[0], ErrReadInput)
	}

	if !errors.Is(errs[0], bytes.ErrTooLarge) {
		t.Errorf("error = %v, want to wrap %v", errs[0], bytes.ErrTooLarge)
	}
}
