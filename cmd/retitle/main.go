package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/retitle"
	"github.com/fwojciec/retitle/batch"
	"github.com/fwojciec/retitle/fs"
	"github.com/fwojciec/retitle/goquery"
	rslog "github.com/fwojciec/retitle/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("retitle"),
		kong.Description("Fix post titles and authors in a Becker-Posner blog archive"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	postsDir := filepath.Join(cli.Dir, postsDirName)
	if info, err := os.Stat(postsDir); err != nil || !info.IsDir() {
		return retitle.Errorf(retitle.ENOTFOUND, "%s/ folder not found in %s. Run this from the archive folder.", postsDirName, cli.Dir)
	}

	// Wire dependencies
	var (
		posts  retitle.PostStore      = fs.NewPostStore(postsDir)
		index  retitle.PostIndex      = fs.NewIndexStore(filepath.Join(cli.Dir, dataDirName, indexFileName))
		titles retitle.TitleExtractor = goquery.NewTitleExtractor()
	)

	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		posts = rslog.NewLoggingPostStore(posts, logger)
		index = rslog.NewLoggingPostIndex(index, logger)
		titles = rslog.NewLoggingTitleExtractor(titles, logger)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Fixer: &batch.Fixer{
			Index:  index,
			Posts:  posts,
			Titles: titles,
			DryRun: cli.DryRun,
		},
	}

	cmd := &FixCmd{}
	return cmd.Run(deps)
}

// Archive layout under CLI.Dir.
const (
	postsDirName  = "posts"
	dataDirName   = "data"
	indexFileName = "posts.json"
)

// printError writes err for a human. Application errors print their message
// only.
func printError(w io.Writer, err error) {
	if retitle.ErrorCode(err) == retitle.EINTERNAL {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprintf(w, "error: %s\n", retitle.ErrorMessage(err))
}
