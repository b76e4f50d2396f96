package generate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"dtc/archive"
	"dtc/config"
	"dtc/convert"
	"dtc/css"
	"dtc/extract"
	"dtc/state"
	"dtc/tokens"
)

// OptionsFromConfig returns generation options for output directory dir.
func OptionsFromConfig(cfg *config.OutputConfig, dir string) Options {
	return Options{
		OutputDir:       dir,
		FilePrefix:      cfg.Prefix,
		UseGroups:       cfg.Grouping.Grouped(),
		PrettyPrint:     cfg.Pretty,
		VendorNamespace: cfg.VendorNamespace,
	}
}

// OutputFlags returns flags overriding output configuration.
func OutputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "prefix", Usage: "output file name `PREFIX`, file is named <PREFIX>" + FileSuffix},
		&cli.BoolFlag{Name: "flat", Usage: "do not group tokens, every token carries explicit $type"},
		&cli.BoolFlag{Name: "compact", Usage: "write compact JSON instead of indented"},
	}
}

// RunFlags returns flags of "generate" command.
func RunFlags() []cli.Flag {
	return append(OutputFlags(),
		&cli.BoolFlag{Name: "strict", Usage: "fail when any of the payload values cannot be converted"},
	)
}

// ScanFlags returns flags of "scan" command.
func ScanFlags() []cli.Flag {
	return append(OutputFlags(),
		&cli.StringSliceFlag{Name: "include", Usage: "`PATTERN` of stylesheets to harvest (doublestar glob, may be repeated)"},
		&cli.StringSliceFlag{Name: "exclude", Usage: "`PATTERN` of files or directories to skip (doublestar glob, may be repeated)"},
		&cli.IntFlag{Name: "min-usage", Usage: "skip anonymous values used less than `N` times"},
	)
}

// Run is "generate" command: converts extractor payload into token document.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no token payload has been specified")
	}
	dst, err := destination(cmd, 1, log)
	if err != nil {
		return err
	}

	applyOutputFlags(cmd, &env.Cfg.Output)
	env.Strict = cmd.Bool("strict")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	payload, err := extract.LoadPayload(src)
	if err != nil {
		return err
	}
	if src != "-" {
		if err := env.Rpt.StoreCopy("source/"+filepath.Base(src), src); err != nil {
			log.Debug("Unable to store payload in report", zap.Error(err))
		}
	}

	data, err := payload.Convert()
	if err != nil {
		if env.Strict {
			return fmt.Errorf("unable to convert token payload: %w", err)
		}
		for _, e := range multierr.Errors(err) {
			log.Warn("Token skipped", zap.Error(e))
		}
	}
	log.Debug("Payload converted", zap.Int("raw", len(payload.Tokens)), zap.Int("converted", len(data)))

	return write(ctx, data, dst, NewPrefixValues("generate", src), env)
}

// Scan is "scan" command: harvests stylesheets under source directory or
// inside zip archive and generates token document out of them.
func Scan(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("scan")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no source directory or archive has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found: %w", err)
	}
	if !fi.IsDir() && !(fi.Mode().IsRegular() && archive.IsArchive(src)) {
		return fmt.Errorf("input source is neither directory nor zip archive (%s)", src)
	}
	dst, err := destination(cmd, 1, log)
	if err != nil {
		return err
	}

	applyOutputFlags(cmd, &env.Cfg.Output)
	scan := &env.Cfg.Scan
	if cmd.IsSet("include") {
		scan.Include = cmd.StringSlice("include")
	}
	if cmd.IsSet("exclude") {
		scan.Exclude = cmd.StringSlice("exclude")
	}
	if cmd.IsSet("min-usage") {
		scan.MinUsage = cmd.Int("min-usage")
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	h := extract.NewHarvester(scan.MinUsage, env.Log)
	if env.Rpt != nil {
		var n int
		h.Inspect = func(origin string, sheet *css.Stylesheet) {
			n++
			env.Rpt.StoreData(fmt.Sprintf("css/%03d-%s", n, path.Base(origin)), []byte(sheet.String()))
		}
	}

	var data []extract.ExtractedToken
	if fi.IsDir() {
		data, err = scanDir(ctx, h, src, scan, log)
	} else {
		data, err = scanArchive(ctx, h, src, scan)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err != nil {
		if data == nil {
			return err
		}
		for _, e := range multierr.Errors(err) {
			log.Warn("Stylesheet skipped", zap.Error(e))
		}
	}
	log.Debug("Stylesheets harvested", zap.Int("tokens", len(data)))

	return write(ctx, data, dst, NewPrefixValues("scan", src), env)
}

// scanDir and scanArchive return nil tokens only when nothing could be
// harvested at all.
func scanDir(ctx context.Context, h *extract.Harvester, root string, scan *config.ScanConfig, log *zap.Logger) ([]extract.ExtractedToken, error) {
	paths, err := extract.DiscoverCSSFiles(root, scan.Include, scan.Exclude)
	if err != nil {
		return nil, fmt.Errorf("unable to discover stylesheets: %w", err)
	}
	if len(paths) == 0 {
		log.Warn("No stylesheets found", zap.String("dir", root), zap.Strings("include", scan.Include))
	}
	for _, p := range paths {
		log.Debug("Stylesheet found", zap.String("file", p))
	}
	return h.HarvestFiles(ctx, paths)
}

func scanArchive(ctx context.Context, h *extract.Harvester, name string, scan *config.ScanConfig) ([]extract.ExtractedToken, error) {
	m, err := extract.NewMatcher(scan.Include, scan.Exclude)
	if err != nil {
		return nil, err
	}
	return h.HarvestArchive(ctx, name, m)
}

// ConvertValue is "convert" command: prints single converted value as JSON.
// Typography value is a list of font declarations.
func ConvertValue(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() < 2 {
		return errors.New("both value kind and value have to be specified")
	}
	kind, err := tokens.ParseKind(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	raw := strings.Join(cmd.Args().Slice()[1:], " ")

	var v tokens.Value
	if kind == tokens.KindTypography {
		v, err = typographyFromDeclarations(raw, env.Log)
	} else {
		v, err = convert.Value(kind, raw)
	}
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if w := cmd.Root().Writer; w != nil {
		out = w
	}
	enc := json.NewEncoder(out)
	if env.Cfg.Output.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func typographyFromDeclarations(raw string, log *zap.Logger) (tokens.Value, error) {
	sheet := css.NewParser(log).Parse([]byte("typography{" + raw + "}"))
	if len(sheet.Rules) == 0 {
		return nil, fmt.Errorf("no font declarations in %q", raw)
	}
	var p convert.TypographyProperties
	for _, d := range sheet.Rules[0].Declarations {
		if !p.Set(d.Property, d.Value) {
			return nil, fmt.Errorf("unexpected typography property %q", d.Property)
		}
	}
	return convert.Typography(p)
}

// destination returns absolute output directory from positional argument at
// index pos, current working directory when absent.
func destination(cmd *cli.Command, pos int, log *zap.Logger) (dst string, err error) {
	dst = cmd.Args().Get(pos)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return "", fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return "", err
	}
	if cmd.Args().Len() > pos+1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[pos+1:]))
	}
	return dst, nil
}

func applyOutputFlags(cmd *cli.Command, out *config.OutputConfig) {
	if cmd.IsSet("prefix") {
		out.Prefix = cmd.String("prefix")
	}
	if cmd.Bool("flat") {
		out.Grouping = config.OutputLayoutFlat
	}
	if cmd.Bool("compact") {
		out.Pretty = false
	}
}

func write(ctx context.Context, data []extract.ExtractedToken, dst string, values PrefixValues, env *state.LocalEnv) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	opts := OptionsFromConfig(&env.Cfg.Output, dst)
	prefix, err := ExpandPrefix(opts.FilePrefix, values)
	if err != nil {
		return err
	}
	opts.FilePrefix = prefix

	g := NewGenerator(opts, env.Log)
	if env.Rpt != nil {
		g.Inspect = func(doc *tokens.Document) {
			env.Rpt.StoreData("document.txt", []byte(Describe(doc)))
		}
	}

	fname, err := g.Generate(data)
	if err != nil {
		return fmt.Errorf("unable to generate token document: %w", err)
	}
	env.Rpt.Store("result"+FileSuffix, fname)
	return nil
}
