package lang_test

import (
	"context"
	"fmt"
	"testing/fstest"

	"github.com/ardnew/createnv/lang"
	"github.com/ardnew/createnv/log"
)

func ExampleParser_Parse() {
	fsys := fstest.MapFS{
		".env.sample": {Data: []byte(`# Database
# Where the data lives
DB_HOST=localhost
DB_PORT=5432  # Port
DB_URL=postgres://{DB_HOST}:{DB_PORT}
`)},
	}

	p := lang.NewParser(".env.sample", lang.WithFS(fsys), lang.WithLogger(log.Logger{}))

	groups, err := p.Parse(context.Background())
	if err != nil {
		fmt.Println(err)

		return
	}

	// Every value has a default, so nothing is asked.
	ask := lang.PrompterFunc(func(context.Context, string, string) (string, error) {
		return "", fmt.Errorf("unexpected prompt")
	})

	for _, g := range groups {
		fmt.Println(g.Title, g.ShouldEcho(true))

		settings, err := g.Resolve(context.Background(), ask, true)
		if err != nil {
			fmt.Println(err)

			return
		}

		for name, value := range settings.All() {
			fmt.Printf("%s=%s\n", name, value)
		}
	}
	// Output:
	// Database false
	// DB_HOST=localhost
	// DB_PORT=5432
	// DB_URL=postgres://localhost:5432
}
