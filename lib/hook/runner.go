package hook

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	shellwords "github.com/mattn/go-shellwords"
	"github.com/samber/oops"

	"github.com/gameserverhooks/starthook/lib/config"
	"github.com/gameserverhooks/starthook/lib/expand"
	"github.com/gameserverhooks/starthook/lib/patch"
	"github.com/gameserverhooks/starthook/lib/rules"
	"github.com/gameserverhooks/starthook/lib/util"
	"github.com/gameserverhooks/starthook/lib/util/logger"
)

var log = logger.GetLogger()

// Runner executes one invocation of the hook.
type Runner struct {
	cfg      *config.HookConfig
	expander *expand.Expander
}

// NewRunner builds a Runner over a settings snapshot and an environment
// snapshot.
func NewRunner(cfg *config.HookConfig, ex *expand.Expander) *Runner {
	return &Runner{cfg: cfg, expander: ex}
}

// Run performs the full container start-up sequence. It returns an error
// only for the fatal kinds; per-entry problems are logged and skipped.
func (r *Runner) Run() error {
	wd, err := os.Getwd()
	if err != nil {
		return oops.Wrapf(err, "cannot determine working directory")
	}
	if !util.SameFile(wd, r.cfg.WorkingDir) {
		return oops.Errorf("hook must run in %s, not %s", r.cfg.WorkingDir, wd)
	}

	doc, err := rules.Load(r.cfg.RulesPath)
	if err != nil {
		return err
	}

	marker := r.cfg.MarkerFile()
	if util.CheckFileExists(marker) {
		log.Debugf("Install marker %s present, skipping install phase", marker)
	} else {
		if err := r.runInstallCommand(); err != nil {
			return err
		}
		if err := r.ApplyPhase(doc, rules.PhaseInstall); err != nil {
			return err
		}
		if err := writeMarker(marker); err != nil {
			return err
		}
	}

	if err := r.ApplyPhase(doc, rules.PhasePreStart); err != nil {
		return err
	}

	if err := r.relocateEULA(); err != nil {
		return err
	}

	log.Debug("File patching completed successfully.")
	return nil
}

// ApplyPhase patches every target file the named phase declares, in
// declared order. Entries with an unrecognized parser tag or no rules
// are skipped with a warning; adapter I/O errors abort the run.
func (r *Runner) ApplyPhase(doc *rules.Document, name string) error {
	phase, ok := doc.ByName(name)
	if !ok {
		log.Warnf("Unknown phase %q, skipping", name)
		return nil
	}

	for _, entry := range phase {
		parser := patch.ParserFromTag(entry.Parser)
		if parser == patch.ParserUnsupported {
			log.Warnf("Parser %q for %s is not supported, skipping", entry.Parser, entry.Path)
			continue
		}
		if len(entry.Find) == 0 {
			log.Warnf("No rules for %s, skipping", entry.Path)
			continue
		}

		target := r.targetPath(entry.Path)
		if dir := filepath.Dir(target); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return oops.Wrapf(err, "creating parent directory for %s", target)
			}
		}

		log.Debugf("Processing file: %s (using parser: %s)", target, parser)
		if err := parser.Apply(target, entry.Find, r.expander); err != nil {
			return err
		}
	}
	return nil
}

// targetPath resolves a rule document file path against the working
// directory.
func (r *Runner) targetPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.cfg.WorkingDir, path)
}

// runInstallCommand runs the optional one-time initialization command.
// It blocks until the command exits; a non-zero exit is fatal to the
// whole run.
func (r *Runner) runInstallCommand() error {
	if r.cfg.InstallCommand == "" {
		return nil
	}
	words, err := shellwords.Parse(r.cfg.InstallCommand)
	if err != nil {
		return oops.Wrapf(err, "install command %q is not lexable", r.cfg.InstallCommand)
	}
	if len(words) == 0 {
		return nil
	}

	log.Debugf("Running install command: %s", r.cfg.InstallCommand)
	cmd := exec.Command(words[0], words[1:]...)
	cmd.Dir = r.cfg.WorkingDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return oops.Wrapf(err, "install command %q failed", r.cfg.InstallCommand)
	}
	return nil
}

// writeMarker records that the install phase has completed. Only the
// marker's presence matters; the run id and timestamp exist for humans
// debugging a container.
func writeMarker(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return oops.Wrapf(err, "creating marker directory")
		}
	}
	content := fmt.Sprintf("run-id: %s\ninstalled-at: %s\n",
		uuid.NewString(), time.Now().UTC().Format(time.RFC3339))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return oops.Wrapf(err, "writing install marker %s", path)
	}
	return nil
}
