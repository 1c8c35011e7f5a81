package hook

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/oops"

	"github.com/gameserverhooks/starthook/lib/util"
)

// relocateEULA moves the license file into the configured server
// subdirectory once its contents record acceptance. Disabled when no
// target directory is configured; a missing source, unaccepted license,
// or already-relocated file is a quiet no-op.
func (r *Runner) relocateEULA() error {
	if r.cfg.EULATargetDir == "" || r.cfg.EULASource == "" {
		return nil
	}

	src := r.targetPath(r.cfg.EULASource)
	if !util.CheckFileExists(src) {
		return nil
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return oops.Wrapf(err, "reading %s", src)
	}
	if !eulaAccepted(string(data)) {
		log.Debugf("License file %s not accepted, leaving it in place", src)
		return nil
	}

	dstDir := r.targetPath(r.cfg.EULATargetDir)
	dst := filepath.Join(dstDir, filepath.Base(src))
	if util.CheckFileExists(dst) {
		return nil
	}
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return oops.Wrapf(err, "creating %s", dstDir)
	}
	log.Debugf("Relocating accepted license file %s -> %s", src, dst)
	if err := os.Rename(src, dst); err != nil {
		return oops.Wrapf(err, "relocating %s", src)
	}
	return nil
}

// eulaAccepted scans for an eula=true line, ignoring comments and
// whitespace.
func eulaAccepted(contents string) bool {
	for _, line := range strings.Split(contents, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.EqualFold(strings.ReplaceAll(trimmed, " ", ""), "eula=true") {
			return true
		}
	}
	return false
}
