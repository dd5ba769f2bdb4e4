// Command cantus is the CLI tool for working with cantus score packs.
// It provides commands for inspecting, validating, and listing the
// contents of packed scores.
package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/alecthomas/kong"

	"github.com/cantusworks/cantus/core/engraving"
	"github.com/cantusworks/cantus/core/engraving/rw"
	"github.com/cantusworks/cantus/core/imagestore"
	"github.com/cantusworks/cantus/core/pack"
	"github.com/cantusworks/cantus/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for cantus.
var CLI struct {
	// Global flags
	Verbose bool `short:"v" help:"Enable debug logging"`
	JSONLog bool `name:"json-log" help:"Emit logs as JSON"`

	Info     InfoCmd     `cmd:"" help:"Show document metadata from a score pack"`
	Validate ValidateCmd `cmd:"" help:"Check that a score pack loads cleanly"`
	Images   ImagesCmd   `cmd:"" help:"List the images bundled in a score pack"`
	Excerpts ExcerptsCmd `cmd:"" help:"List the excerpts declared by a score pack"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// loadPack opens path and loads it into a fresh master score.
func loadPack(path string, ignoreVersionError bool) (*engraving.MasterScore, rw.CompatSettings, error) {
	p, err := pack.Open(path)
	if err != nil {
		return nil, rw.CompatSettings{}, fmt.Errorf("failed to open pack: %w", err)
	}
	defer p.Close()

	master := engraving.NewMasterScore()
	settings, err := rw.LoadPack(master, p, ignoreVersionError)
	return master, settings, err
}

// InfoCmd shows document metadata from a score pack.
type InfoCmd struct {
	Path               string `arg:"" help:"Path to score pack" type:"existingfile"`
	IgnoreVersionError bool   `name:"ignore-version-error" help:"Load files outside the supported version range"`
}

func (c *InfoCmd) Run() error {
	master, settings, err := loadPack(c.Path, c.IgnoreVersionError)
	if err != nil {
		return describeLoadError(c.Path, err)
	}

	fmt.Printf("Pack: %s\n", c.Path)
	fmt.Printf("  Format version: %d.%02d\n", master.Version()/100, master.Version()%100)
	if master.AppVersion() != "" {
		fmt.Printf("  Written by:     %s (rev %x)\n", master.AppVersion(), master.AppRevision())
	}
	if master.Name() != "" {
		fmt.Printf("  Title:          %s\n", master.Name())
	}
	fmt.Printf("  Parts:          %d\n", len(master.Parts()))
	fmt.Printf("  Measures:       %d\n", len(master.Measures()))
	fmt.Printf("  Excerpts:       %d\n", len(master.Excerpts()))
	fmt.Printf("  Audio:          %v\n", master.Audio() != nil)

	if settings.StyleMigrated {
		fmt.Printf("  Style:          migrated from a %d.%02d baseline\n",
			settings.SourceVersion/100, settings.SourceVersion%100)
	}
	for _, d := range settings.Diagnostics {
		fmt.Printf("  Note:           %s\n", d)
	}
	return nil
}

// ValidateCmd checks that a score pack loads cleanly.
type ValidateCmd struct {
	Path               string `arg:"" help:"Path to score pack" type:"existingfile"`
	IgnoreVersionError bool   `name:"ignore-version-error" help:"Load files outside the supported version range"`
}

func (c *ValidateCmd) Run() error {
	_, settings, err := loadPack(c.Path, c.IgnoreVersionError)
	if err != nil {
		return describeLoadError(c.Path, err)
	}

	fmt.Printf("OK: %s\n", c.Path)
	for _, d := range settings.Diagnostics {
		fmt.Printf("  note: %s\n", d)
	}
	return nil
}

// describeLoadError turns a load failure into a user-facing message.
func describeLoadError(path string, err error) error {
	switch {
	case errors.Is(err, rw.ErrFileTooNew):
		return fmt.Errorf("%s was saved by a newer program version and cannot be opened (use --ignore-version-error to try anyway)", path)
	case errors.Is(err, rw.ErrFileTooOld):
		return fmt.Errorf("%s uses a format older than any this program can read", path)
	case errors.Is(err, rw.ErrFileOld300Format):
		return fmt.Errorf("%s uses the unsupported 3.00 development format", path)
	case errors.Is(err, rw.ErrFileCriticallyCorrupted):
		return fmt.Errorf("%s is critically corrupted: %v", path, err)
	case errors.Is(err, rw.ErrFileCorrupted):
		return fmt.Errorf("%s is corrupted: %v", path, err)
	case errors.Is(err, rw.ErrFileBadFormat):
		return fmt.Errorf("%s is not well formed: %v", path, err)
	default:
		return err
	}
}

// ImagesCmd lists the images bundled in a score pack.
type ImagesCmd struct {
	Path string `arg:"" help:"Path to score pack" type:"existingfile"`
}

func (c *ImagesCmd) Run() error {
	p, err := pack.Open(c.Path)
	if err != nil {
		return fmt.Errorf("failed to open pack: %w", err)
	}
	defer p.Close()

	names := p.ImageFileNames()
	if len(names) == 0 {
		fmt.Println("No images.")
		return nil
	}

	// A throwaway store gives us the same content hashes the loader
	// would register, without touching the process-wide one.
	store := imagestore.NewStore()
	sort.Strings(names)
	for _, name := range names {
		img := store.Add(name, p.ReadImageFile(name))
		fmt.Printf("%-32s %8d bytes  %s\n", filepath.Base(name), len(img.Data), img.Hash)
	}
	return nil
}

// ExcerptsCmd lists the excerpts declared by a score pack.
type ExcerptsCmd struct {
	Path string `arg:"" help:"Path to score pack" type:"existingfile"`
}

func (c *ExcerptsCmd) Run() error {
	master, _, err := loadPack(c.Path, false)
	if err != nil {
		return describeLoadError(c.Path, err)
	}

	if len(master.Excerpts()) == 0 {
		fmt.Println("No excerpts.")
		return nil
	}
	for _, ex := range master.Excerpts() {
		fmt.Printf("%s\n", ex.Name())
		if score := ex.ExcerptScore(); score != nil {
			fmt.Printf("  Parts:    %d\n", len(score.Parts()))
			fmt.Printf("  Measures: %d\n", len(score.Measures()))
		}
		if tracks := ex.Tracks(); len(tracks) > 0 {
			for _, src := range tracks.Sources() {
				fmt.Printf("  Track:    %d -> %d\n", src, tracks[src])
			}
		}
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("cantus version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("cantus"),
		kong.Description("Cantus - score pack inspection tools"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	level := logging.LevelWarn
	if CLI.Verbose {
		level = logging.LevelDebug
	}
	format := logging.FormatText
	if CLI.JSONLog {
		format = logging.FormatJSON
	}
	logging.InitLogger(level, format)

	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
