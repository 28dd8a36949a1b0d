// Package services holds the command pipeline shared by the create and custom
// entry points.
package services

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/conneroisu/rfs/internal/componentpath"
	"github.com/conneroisu/rfs/internal/config"
	"github.com/conneroisu/rfs/internal/errors"
	"github.com/conneroisu/rfs/internal/interfaces"
	"github.com/conneroisu/rfs/internal/logging"
	"github.com/conneroisu/rfs/internal/plan"
	"github.com/conneroisu/rfs/internal/scaffolding"
	"github.com/conneroisu/rfs/internal/structure"
	"github.com/conneroisu/rfs/internal/workspace"
)

// Prompt placeholders for the component path.
const (
	PromptPath                = "Enter component path with / or \\ (e.g. user/profile)"
	PromptPathWithName        = "Enter component path and name with / or \\ (e.g. user/profile/Avatar)"
	PromptPathWithOptions     = "Enter options (e=TS, s=CSS, i+, t+, h+) and then component path with / or \\"
	PromptPathWithNameAndOpts = "Enter options (e=TS, s=CSS, i+, t+, h+) and name and then component path with / or \\"
)

// Mode selects the entry point.
type Mode int

const (
	// ModePath reads a bare component path.
	ModePath Mode = iota
	// ModeOptions reads option tokens followed by a component path.
	ModeOptions
)

// CreateRequest describes one invocation.
type CreateRequest struct {
	Mode Mode
	// Folder is the pre-selected root folder, if any.
	Folder string
	// Line answers the path prompt without asking when non-empty.
	Line string
	// DryRun stops after rendering.
	DryRun bool
}

// CreateResult is what a run produced.
type CreateResult struct {
	Root   string
	Config config.Config
	Plan   plan.Plan
	Files  []scaffolding.File
	// Output is nil for dry runs.
	Output *structure.Result
}

// Creator runs Config Resolver, Path Normalizer, Naming Planner, Content
// Generator and Structure Materializer in sequence.
type Creator struct {
	settings     interfaces.SettingsReader
	prompter     interfaces.Prompter
	notifier     interfaces.Notifier
	fs           interfaces.FileSystem
	logger       logging.Logger
	resolver     *workspace.Resolver
	materializer *structure.Materializer
}

// NewCreator wires a creator from host capabilities. logger may be nil.
func NewCreator(
	settings interfaces.SettingsReader,
	prompter interfaces.Prompter,
	notifier interfaces.Notifier,
	fs interfaces.FileSystem,
	logger logging.Logger,
) *Creator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Creator{
		settings:     settings,
		prompter:     prompter,
		notifier:     notifier,
		fs:           fs,
		logger:       logger.WithComponent("creator"),
		resolver:     workspace.NewResolver(fs, prompter, notifier),
		materializer: structure.NewMaterializer(fs, notifier, logger),
	}
}

// Create runs the pipeline without reporting errors. File-level failures are
// returned joined alongside a non-nil result.
func (c *Creator) Create(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	settings := config.LoadSettings(c.settings)

	root, err := c.resolver.Resolve(ctx, req.Folder, settings)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Resolve(settings, root)
	if err != nil {
		return nil, err
	}

	line := req.Line
	if line == "" {
		line, err = workspace.AskPath(ctx, c.prompter, c.fs, placeholder(req.Mode, cfg.IndexMode), false)
		if err != nil {
			return nil, err
		}
	}

	raw := line
	if req.Mode == ModeOptions {
		var opts []config.Option
		opts, raw = config.SplitOptions(line)
		if cfg, err = cfg.WithOptions(opts); err != nil {
			return nil, err
		}
		c.logger.Debug(ctx, "Applied inline options", "count", len(opts))
	}

	path, err := componentpath.Parse(raw)
	if err != nil {
		return nil, err
	}

	p := plan.Build(cfg, path)
	files, err := scaffolding.Render(p, cfg)
	if err != nil {
		return nil, errors.Wrap(errors.KindInternal, "", err)
	}

	res := &CreateResult{Root: root, Config: cfg, Plan: p, Files: files}
	if req.DryRun {
		return res, nil
	}

	c.logger.Info(ctx, "Materializing component", "root", root, "path", path.String(), "files", len(files))
	op := logging.StartOperation(c.logger, "materialize")
	res.Output, err = c.materializer.Materialize(ctx, root, p.Folders, files)
	if err != nil {
		op.EndWithError(ctx, err)
	} else {
		op.End(ctx)
	}
	return res, err
}

// Run is Create followed by reporting: any error is surfaced once through the
// handler and a summary is sent on success.
func (c *Creator) Run(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	res, err := c.Create(ctx, req)
	if err != nil {
		if !stderrors.As(err, new(*errors.ScaffoldError)) {
			err = errors.Wrap(errors.KindInternal, "", err)
		}
		errors.NewErrorHandler(c.logger, c.notifier).Handle(ctx, err)
		return res, err
	}

	if res.Output != nil && c.notifier != nil {
		c.notifier.Notify(ctx, errors.SeverityInfo, summary(res.Output))
	}
	return res, nil
}

func placeholder(mode Mode, index config.IndexMode) string {
	component := index == config.IndexComponent
	switch {
	case mode == ModeOptions && component:
		return PromptPathWithOptions
	case mode == ModeOptions:
		return PromptPathWithNameAndOpts
	case component:
		return PromptPath
	default:
		return PromptPathWithName
	}
}

func summary(r *structure.Result) string {
	msg := fmt.Sprintf("Created %d file(s) in %s", len(r.Created), r.Directory)
	if n := len(r.Existing); n > 0 {
		msg += fmt.Sprintf(", skipped %d existing", n)
	}
	return msg
}
