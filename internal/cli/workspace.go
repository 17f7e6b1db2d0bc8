package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/srazash/linkledger/internal/domain"
	infraconfig "github.com/srazash/linkledger/internal/infra/config"
	"github.com/srazash/linkledger/internal/infra/filedoc"
	"github.com/srazash/linkledger/internal/infra/httpclient"
	"github.com/srazash/linkledger/internal/infra/reportstore"
	"github.com/srazash/linkledger/internal/infra/webdoc"
	"github.com/srazash/linkledger/internal/infra/workspacefinder"
	"github.com/srazash/linkledger/internal/infra/yamlledger"
	"github.com/srazash/linkledger/internal/ports"
	"github.com/srazash/linkledger/internal/usecase"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	ledgers ports.LedgerLoader
	store   ports.ReportStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := infraconfig.Load(root)
	if err != nil {
		return nil, err
	}

	loader := yamlledger.NewLoader(
		yamlledger.WithLedgersDir(cfg.Paths.LedgersDir),
	)
	store := reportstore.NewJSONStore(root, cfg, reportstore.WithIndex(true))

	return &workspaceCtx{
		root:    root,
		cfg:     cfg,
		ledgers: loader,
		store:   store,
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `linkledger init`): %w", wd, err)
	}
	return root, nil
}

func resolveLedgerPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("ledger is required (use --ledger or -l)")
	}

	// A path-looking argument resolves relative to the workspace root.
	if strings.Contains(in, "/") || strings.Contains(in, string(filepath.Separator)) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	ledgersDir := filepath.Join(ws.root, ws.cfg.Paths.LedgersDir)

	if ext := strings.ToLower(filepath.Ext(in)); ext == ".yaml" || ext == ".yml" {
		p := filepath.Join(ledgersDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	for _, ext := range []string{".yaml", ".yml"} {
		p := filepath.Join(ledgersDir, in+ext)
		if fileExists(p) {
			return p, nil
		}
	}

	// Last resort: match by ledger "name" field.
	refs, err := ws.ledgers.ListLedgers(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", fmt.Errorf("ledger %q not found in %q", in, ledgersDir)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// newDocumentResolver wires both retrieval strategies behind the usecase.
// cfg may come from a workspace; without one the defaults apply.
func newDocumentResolver(cfg domain.Config) *usecase.ResolveDocument {
	client := httpclient.New(
		httpclient.DefaultConfig().WithTimeout(cfg.HTTP.Timeout()),
	)
	web := webdoc.New(client, webdoc.WithMaxBodyBytes(cfg.HTTP.MaxBodyBytes))
	return usecase.NewResolveDocument(web, filedoc.New())
}

// newSourceReader picks the raw retrieval strategy for a source.
func newSourceReader(cfg domain.Config, source string) ports.SourceReader {
	if usecase.IsWebSource(source) {
		client := httpclient.New(
			httpclient.DefaultConfig().WithTimeout(cfg.HTTP.Timeout()),
		)
		return webdoc.New(client, webdoc.WithMaxBodyBytes(cfg.HTTP.MaxBodyBytes))
	}
	return filedoc.New()
}

// loadConfigOrDefault tolerates running outside a workspace.
func loadConfigOrDefault() domain.Config {
	wd, err := os.Getwd()
	if err != nil {
		return domain.DefaultConfig()
	}
	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return domain.DefaultConfig()
	}
	cfg, err := infraconfig.Load(root)
	if err != nil {
		return domain.DefaultConfig()
	}
	return cfg
}
