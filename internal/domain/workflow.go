// Package domain runs human-in-the-loop suites and manages their reports.
package domain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mouse-blink/handcheck/internal/adapter"
	"github.com/mouse-blink/handcheck/internal/config"
	"github.com/mouse-blink/handcheck/internal/controller"
	"github.com/mouse-blink/handcheck/internal/logging"
	m "github.com/mouse-blink/handcheck/internal/model"
)

// DefaultEmailTemplate is rendered when no template is named.
const DefaultEmailTemplate = "welcome"

// LatestReport selects the most recent report in View.
const LatestReport = "latest"

// RunArgs are shared by every suite.
type RunArgs struct {
	Reports m.Path
	// TestID overrides the suite's default test id.
	TestID string
}

// OAuthArgs selects the provider for the oauth suite.
type OAuthArgs struct {
	RunArgs
	Provider string
}

// EmailArgs selects recipient and template for the email suite.
type EmailArgs struct {
	RunArgs
	Recipient string
	Template  string
}

// ChecklistArgs names a bundled checklist or a YAML file.
type ChecklistArgs struct {
	RunArgs
	Ref string
}

// ListArgs controls listing of past reports.
type ListArgs struct {
	Reports m.Path
	Browse  bool
}

// ViewArgs selects one report to display.
type ViewArgs struct {
	Reports m.Path
	// Report is a file path, a file name inside Reports, or "latest".
	Report string
}

// Workflow defines the operations behind the CLI commands.
type Workflow interface {
	OAuth(ctx context.Context, args OAuthArgs) error
	Email(ctx context.Context, args EmailArgs) error
	Checklist(ctx context.Context, args ChecklistArgs) error
	List(args ListArgs) error
	View(args ViewArgs) error
	Providers() error
	Checklists() error
}

// WorkflowDeps are the collaborators of a Workflow. Nil fields get the
// production adapters.
type WorkflowDeps struct {
	Config     config.Config
	UI         controller.UI
	Prompter   adapter.Prompter
	Store      adapter.ReportStore
	Checklists adapter.ChecklistStore
	OAuth      adapter.OAuthClient
	Browser    adapter.BrowserOpener
	Prober     adapter.Prober
	Templates  adapter.TemplateRenderer
	NewMailer  func(cfg config.EmailConfig) (adapter.Mailer, error)
	Logger     *log.Logger
	Clock      func() time.Time
	NewRunID   func() string
	Operator   string
	Host       string
}

type workflow struct {
	cfg        config.Config
	ui         controller.UI
	prompter   adapter.Prompter
	store      adapter.ReportStore
	checklists adapter.ChecklistStore
	oauth      adapter.OAuthClient
	browser    adapter.BrowserOpener
	prober     adapter.Prober
	templates  adapter.TemplateRenderer
	newMailer  func(cfg config.EmailConfig) (adapter.Mailer, error)
	logger     *log.Logger
	runLogger  *log.Logger
	clock      func() time.Time
	newRunID   func() string
	operator   string
	host       string
}

// NewWorkflow creates a Workflow from deps.
func NewWorkflow(deps WorkflowDeps) Workflow {
	w := &workflow{
		cfg:        deps.Config,
		ui:         deps.UI,
		prompter:   deps.Prompter,
		store:      deps.Store,
		checklists: deps.Checklists,
		oauth:      deps.OAuth,
		browser:    deps.Browser,
		prober:     deps.Prober,
		templates:  deps.Templates,
		newMailer:  deps.NewMailer,
		logger:     deps.Logger,
		clock:      deps.Clock,
		newRunID:   deps.NewRunID,
		operator:   deps.Operator,
		host:       deps.Host,
	}

	w.fillDefaults()

	return w
}

func (w *workflow) fillDefaults() {
	httpClient := adapter.NewHTTPClient(w.cfg.HTTPTimeout())

	if w.prompter == nil {
		w.prompter = adapter.NewAutoPrompter()
	}

	if w.store == nil {
		w.store = adapter.NewReportStore()
	}

	if w.checklists == nil {
		w.checklists = adapter.NewChecklistStore()
	}

	if w.oauth == nil {
		w.oauth = adapter.NewOAuthClient(httpClient)
	}

	if w.browser == nil {
		w.browser = adapter.NewSystemBrowser()
	}

	if w.prober == nil {
		w.prober = adapter.NewProber(httpClient)
	}

	if w.templates == nil {
		w.templates = adapter.NewTemplateRenderer(w.cfg.Email.TemplatesDir)
	}

	if w.newMailer == nil {
		w.newMailer = func(cfg config.EmailConfig) (adapter.Mailer, error) {
			return adapter.NewMailer(cfg, w.prober, httpClient)
		}
	}

	if w.logger == nil {
		w.logger = logging.Discard()
	}

	w.runLogger = w.logger
	w.logger = logging.Component(w.logger, "workflow")

	if w.clock == nil {
		w.clock = time.Now
	}

	if w.newRunID == nil {
		w.newRunID = NewRunID
	}

	if w.operator == "" {
		w.operator = defaultOperator(w.cfg)
	}

	if w.host == "" {
		w.host, _ = os.Hostname()
	}
}

func defaultOperator(cfg config.Config) string {
	if cfg.General.Operator != "" {
		return cfg.General.Operator
	}

	if user := os.Getenv("USER"); user != "" {
		return user
	}

	return os.Getenv("USERNAME")
}

// OAuth runs the oauth suite against one provider.
func (w *workflow) OAuth(ctx context.Context, args OAuthArgs) error {
	runID := w.newRunID()

	return w.execute(ctx, args.RunArgs, w.oauthSuite(args, runID))
}

// Email runs the email suite for one recipient.
func (w *workflow) Email(ctx context.Context, args EmailArgs) error {
	runID := w.newRunID()

	return w.execute(ctx, args.RunArgs, w.emailSuite(args, runID))
}

// Checklist walks a bundled or file-based checklist. A checklist that cannot
// be loaded is an error and produces no report.
func (w *workflow) Checklist(ctx context.Context, args ChecklistArgs) error {
	cl, err := w.checklists.Load(args.Ref)
	if err != nil {
		return err
	}

	runID := w.newRunID()

	return w.execute(ctx, args.RunArgs, w.checklistSuite(cl, args, runID))
}

func (w *workflow) execute(ctx context.Context, args RunArgs, suite Suite) error {
	if err := w.ui.Start(controller.WithRunMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	reports := args.Reports
	if reports == "" {
		reports = m.Path(w.cfg.General.ReportsDir)
	}

	w.logger.Debug("starting run", "suite", suite.Name, "target", suite.Target, "test_id", suite.TestID)

	run := NewRunner(RunnerOptions{
		Store:    w.store,
		Prompter: w.prompter,
		UI:       w.ui,
		Logger:   w.runLogger,
		Reports:  reports,
		Operator: w.operator,
		Host:     w.host,
		Clock:    w.clock,
	})

	report, path, err := run.Run(ctx, suite)
	if err != nil {
		return err
	}

	if err := w.ui.DisplayReport(report, path); err != nil {
		return err
	}

	if report.Summary.Verdict == m.Fail {
		return ErrRunFailed
	}

	return nil
}

// List shows every report in the reports directory.
func (w *workflow) List(args ListArgs) error {
	option := controller.WithRunMode()
	if args.Browse {
		option = controller.WithBrowseMode()
	}

	if err := w.ui.Start(option); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	reports, err := w.store.ListReports(w.reportsDir(args.Reports))
	if err != nil {
		return err
	}

	return w.ui.DisplayReports(reports)
}

// View shows the step table of one report.
func (w *workflow) View(args ViewArgs) error {
	if err := w.ui.Start(controller.WithRunMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	path, err := w.resolveReport(args)
	if err != nil {
		return err
	}

	report, err := w.store.LoadReport(path)
	if err != nil {
		return err
	}

	w.logger.Debug("loaded report", "path", path)

	return w.ui.DisplayReport(report, "")
}

func (w *workflow) resolveReport(args ViewArgs) (m.Path, error) {
	dir := w.reportsDir(args.Reports)

	if args.Report == "" || args.Report == LatestReport {
		reports, err := w.store.ListReports(dir)
		if err != nil {
			return "", err
		}

		if len(reports) == 0 {
			return "", fmt.Errorf("no reports in %s", dir)
		}

		return m.Path(filepath.Join(string(dir), reports[len(reports)-1].FileName())), nil
	}

	if _, err := os.Stat(args.Report); err == nil {
		return m.Path(args.Report), nil
	}

	candidate := filepath.Join(string(dir), args.Report)
	if _, err := os.Stat(candidate); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("report %s not found (looked in . and %s)", args.Report, dir)
		}

		return "", err
	}

	return m.Path(candidate), nil
}

func (w *workflow) reportsDir(dir m.Path) m.Path {
	if dir == "" {
		return m.Path(w.cfg.General.ReportsDir)
	}

	return dir
}

// Providers shows the configured OAuth providers.
func (w *workflow) Providers() error {
	if err := w.ui.Start(controller.WithRunMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	names := w.cfg.ProviderNames()
	providers := make([]m.ProviderInfo, 0, len(names))

	for _, name := range names {
		p := w.cfg.OAuth.Providers[name]
		providers = append(providers, m.ProviderInfo{
			Name:        name,
			AuthURL:     p.AuthURL,
			RedirectURL: p.RedirectURL,
			Scopes:      p.Scopes,
			Configured:  p.ClientID != "",
		})
	}

	return w.ui.DisplayProviders(providers)
}

// Checklists shows the bundled checklist names.
func (w *workflow) Checklists() error {
	if err := w.ui.Start(controller.WithRunMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	return w.ui.DisplayChecklists(w.checklists.Bundled())
}

// testIDOr returns the override when it still names something once made
// safe for a file name, and the cleaned fallback otherwise.
func testIDOr(override, fallback string) string {
	if id := m.CleanTestID(override); id != "" {
		return id
	}

	return m.CleanTestID(fallback)
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0:0]

	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
