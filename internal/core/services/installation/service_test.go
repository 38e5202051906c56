package installation

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/AntonioJCosta/batc-install/internal/core/domain/alias"
	"github.com/AntonioJCosta/batc-install/internal/core/domain/install"
	"github.com/AntonioJCosta/batc-install/internal/core/domain/shell"
	"github.com/AntonioJCosta/batc-install/internal/core/testutil"
	"github.com/AntonioJCosta/batc-install/internal/repositories/scriptstore"
	"github.com/AntonioJCosta/batc-install/internal/repositories/shellconfig"
	"github.com/charmbracelet/log"
)

const scriptBody = "#!/usr/bin/env python3\nprint('batc')\n"

// fixture is a fake home directory plus a repository checkout holding the script.
type fixture struct {
	home     string
	repo     string
	reloader *testutil.MockProfileReloader
	svc      *service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	f := &fixture{
		home:     filepath.Join(root, "home", "jdoe"),
		repo:     filepath.Join(root, "src", "batc"),
		reloader: &testutil.MockProfileReloader{},
	}
	mustWrite(t, filepath.Join(f.repo, "batc.py"), scriptBody, 0644)
	mustWrite(t, filepath.Join(f.repo, "README.md"), "# batc\n", 0644)
	mustWrite(t, filepath.Join(f.repo, "batc-install"), "binary", 0755)
	if err := os.MkdirAll(f.home, 0755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}

	f.svc = NewService(
		scriptstore.NewFileScriptStore(),
		shellconfig.NewShellConfigAccessorForHome(f.home),
		f.reloader,
		log.New(io.Discard),
	).(*service)
	return f
}

func (f *fixture) options() install.Options {
	return install.Options{
		WorkDir:       f.repo,
		DestDir:       ".bin",
		ScriptName:    "batc.py",
		AliasName:     "batc",
		InstallerFile: "batc-install",
	}
}

func mustWrite(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(content)
}

func assertMissing(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be absent, stat err = %v", path, err)
	}
}

func TestNewService(t *testing.T) {
	store := scriptstore.NewFileScriptStore()
	sc := &testutil.MockShellConfigAccessor{}
	reloader := &testutil.MockProfileReloader{}

	t.Run("nil logger is allowed", func(t *testing.T) {
		if svc := NewService(store, sc, reloader, nil); svc == nil {
			t.Fatal("NewService() returned nil")
		}
	})

	panics := map[string]func(){
		"nil store":       func() { NewService(nil, sc, reloader, nil) },
		"nil shellConfig": func() { NewService(store, nil, reloader, nil) },
		"nil reloader":    func() { NewService(store, sc, nil, nil) },
	}
	for name, fn := range panics {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("NewService did not panic with %s", name)
				}
			}()
			fn()
		})
	}
}

func TestService_Install_BashProfile(t *testing.T) {
	f := newFixture(t)
	bashrc := filepath.Join(f.home, ".bashrc")
	mustWrite(t, bashrc, "export EDITOR=vim\n", 0644)
	mustWrite(t, filepath.Join(f.home, ".zshrc"), "# zsh\n", 0644)

	report, err := f.svc.Install(f.options())
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	dest := filepath.Join(f.home, ".bin", "batc.py")
	if got := readFile(t, dest); got != scriptBody {
		t.Errorf("installed script content = %q, want %q", got, scriptBody)
	}
	if runtime.GOOS != "windows" {
		info, err := os.Stat(dest)
		if err != nil {
			t.Fatalf("stat installed script: %v", err)
		}
		if info.Mode().Perm()&0111 != 0111 {
			t.Errorf("installed script mode = %v, want execute bits set", info.Mode().Perm())
		}
	}

	wantLine := "alias batc='" + dest + "'"
	if got, want := readFile(t, bashrc), "export EDITOR=vim\n"+wantLine+"\n"; got != want {
		t.Errorf(".bashrc = %q, want %q", got, want)
	}
	if got := readFile(t, filepath.Join(f.home, ".zshrc")); got != "# zsh\n" {
		t.Errorf(".zshrc was modified: %q", got)
	}

	assertMissing(t, f.repo)

	if len(f.reloader.ReloadCalls) != 1 || f.reloader.ReloadCalls[0] != (shell.Profile{Shell: shell.Bash, Path: bashrc}) {
		t.Errorf("Reload calls = %+v, want one call for %s", f.reloader.ReloadCalls, bashrc)
	}

	if report.ScriptPath != dest {
		t.Errorf("report.ScriptPath = %q, want %q", report.ScriptPath, dest)
	}
	if report.Alias != (alias.Alias{Name: "batc", Command: dest}) {
		t.Errorf("report.Alias = %+v", report.Alias)
	}
	if !report.ProfileFound || report.Profile.Path != bashrc {
		t.Errorf("report profile = %+v found=%v, want %s", report.Profile, report.ProfileFound, bashrc)
	}
	if w := report.Warnings(); len(w) != 0 {
		t.Errorf("report.Warnings() = %+v, want none", w)
	}

	wantSteps := []install.Step{
		install.StepResolveHome,
		install.StepEnsureDestDir,
		install.StepVerifyScript,
		install.StepMakeExecutable,
		install.StepMoveScript,
		install.StepSelectProfile,
		install.StepAppendAlias,
		install.StepReloadProfile,
		install.StepRemoveInstaller,
		install.StepRemoveRepo,
	}
	if len(report.Steps) != len(wantSteps) {
		t.Fatalf("report.Steps = %+v, want %d steps", report.Steps, len(wantSteps))
	}
	for i, step := range wantSteps {
		if report.Steps[i].Step != step {
			t.Errorf("step %d = %v, want %v", i, report.Steps[i].Step, step)
		}
	}
}

func TestService_Install_ZshProfile(t *testing.T) {
	f := newFixture(t)
	zshrc := filepath.Join(f.home, ".zshrc")
	mustWrite(t, zshrc, "", 0644)

	if _, err := f.svc.Install(f.options()); err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	dest := filepath.Join(f.home, ".bin", "batc.py")
	if got, want := readFile(t, zshrc), "alias batc='"+dest+"'\n"; got != want {
		t.Errorf(".zshrc = %q, want %q", got, want)
	}
	assertMissing(t, filepath.Join(f.home, ".bashrc"))
	if len(f.reloader.ReloadCalls) != 1 || f.reloader.ReloadCalls[0].Shell != shell.Zsh {
		t.Errorf("Reload calls = %+v, want one zsh call", f.reloader.ReloadCalls)
	}
}

func TestService_Install_NoProfile(t *testing.T) {
	f := newFixture(t)

	report, err := f.svc.Install(f.options())
	if err != nil {
		t.Fatalf("Install() error = %v, want nil when no profile exists", err)
	}

	assertMissing(t, filepath.Join(f.home, ".bashrc"))
	assertMissing(t, filepath.Join(f.home, ".zshrc"))
	assertMissing(t, f.repo)
	if _, err := os.Stat(filepath.Join(f.home, ".bin", "batc.py")); err != nil {
		t.Errorf("script not installed: %v", err)
	}
	if len(f.reloader.ReloadCalls) != 0 {
		t.Errorf("Reload called %d times, want 0", len(f.reloader.ReloadCalls))
	}

	if report.ProfileFound {
		t.Error("report.ProfileFound = true, want false")
	}
	sel, ok := report.Result(install.StepSelectProfile)
	if !ok || sel.Status != install.StatusWarned {
		t.Errorf("select profile result = %+v, want warning", sel)
	}
	appendRes, ok := report.Result(install.StepAppendAlias)
	if !ok || appendRes.Status != install.StatusSkipped {
		t.Errorf("append alias result = %+v, want skipped", appendRes)
	}
}

func TestService_Install_MissingScript(t *testing.T) {
	f := newFixture(t)
	bashrc := filepath.Join(f.home, ".bashrc")
	mustWrite(t, bashrc, "# untouched\n", 0644)
	if err := os.Remove(filepath.Join(f.repo, "batc.py")); err != nil {
		t.Fatalf("remove script: %v", err)
	}

	_, err := f.svc.Install(f.options())
	if !errors.Is(err, ErrScriptNotFound) {
		t.Fatalf("Install() error = %v, want ErrScriptNotFound", err)
	}
	if !strings.Contains(err.Error(), "batc.py") {
		t.Errorf("Install() error = %q, want it to name the script", err.Error())
	}

	// Only the destination directory may have been created.
	if info, statErr := os.Stat(filepath.Join(f.home, ".bin")); statErr != nil || !info.IsDir() {
		t.Errorf("destination directory not created: %v", statErr)
	}
	entries, _ := os.ReadDir(filepath.Join(f.home, ".bin"))
	if len(entries) != 0 {
		t.Errorf("destination directory has %d entries, want 0", len(entries))
	}
	if got := readFile(t, bashrc); got != "# untouched\n" {
		t.Errorf(".bashrc = %q, want untouched", got)
	}
	if _, statErr := os.Stat(filepath.Join(f.repo, "README.md")); statErr != nil {
		t.Errorf("repository was modified: %v", statErr)
	}
	if _, statErr := os.Stat(filepath.Join(f.repo, "batc-install")); statErr != nil {
		t.Errorf("installer was removed: %v", statErr)
	}
}

func TestService_Install_SecondRunFails(t *testing.T) {
	f := newFixture(t)
	bashrc := filepath.Join(f.home, ".bashrc")
	mustWrite(t, bashrc, "", 0644)

	if _, err := f.svc.Install(f.options()); err != nil {
		t.Fatalf("first Install() error = %v", err)
	}
	_, err := f.svc.Install(f.options())
	if !errors.Is(err, ErrScriptNotFound) {
		t.Fatalf("second Install() error = %v, want ErrScriptNotFound", err)
	}
	if got := strings.Count(readFile(t, bashrc), "alias batc="); got != 1 {
		t.Errorf(".bashrc has %d alias lines after two runs, want 1", got)
	}
}

func TestService_Install_OverwritesExistingScript(t *testing.T) {
	f := newFixture(t)
	mustWrite(t, filepath.Join(f.home, ".bin", "batc.py"), "old version", 0755)

	if _, err := f.svc.Install(f.options()); err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if got := readFile(t, filepath.Join(f.home, ".bin", "batc.py")); got != scriptBody {
		t.Errorf("installed script = %q, want the new version", got)
	}
}

func TestService_Install_ReloadFailureIsWarning(t *testing.T) {
	f := newFixture(t)
	mustWrite(t, filepath.Join(f.home, ".bashrc"), "", 0644)
	f.reloader.ReloadFunc = func(shell.Profile) error { return errors.New("bash: not found") }

	report, err := f.svc.Install(f.options())
	if err != nil {
		t.Fatalf("Install() error = %v, want nil", err)
	}
	res, ok := report.Result(install.StepReloadProfile)
	if !ok || res.Status != install.StatusWarned || !strings.Contains(res.Detail, "bash: not found") {
		t.Errorf("reload result = %+v, want warning with cause", res)
	}
	assertMissing(t, f.repo)
}

func TestService_Install_ExplicitRepoDir(t *testing.T) {
	f := newFixture(t)
	checkout := filepath.Dir(f.repo)
	work := filepath.Join(checkout, "batc", "scripts")
	mustWrite(t, filepath.Join(work, "batc.py"), scriptBody, 0644)

	opts := f.options()
	opts.WorkDir = work
	opts.RepoDir = f.repo

	report, err := f.svc.Install(opts)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if report.RepoDir != f.repo {
		t.Errorf("report.RepoDir = %q, want %q", report.RepoDir, f.repo)
	}
	assertMissing(t, f.repo)
	if _, err := os.Stat(checkout); err != nil {
		t.Errorf("parent of repository was removed: %v", err)
	}
}

func TestService_Install_UnsafeRepoDir(t *testing.T) {
	tests := []struct {
		name    string
		repoDir func(f *fixture) string
	}{
		{name: "home directory", repoDir: func(f *fixture) string { return f.home }},
		{name: "parent of home", repoDir: func(f *fixture) string { return filepath.Dir(f.home) }},
		{name: "destination directory", repoDir: func(f *fixture) string { return filepath.Join(f.home, ".bin") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			opts := f.options()
			opts.RepoDir = tt.repoDir(f)

			_, err := f.svc.Install(opts)
			if !errors.Is(err, ErrUnsafeRepoDir) {
				t.Fatalf("Install() error = %v, want ErrUnsafeRepoDir", err)
			}
			assertMissing(t, filepath.Join(f.home, ".bin", "batc.py"))
			if _, statErr := os.Stat(filepath.Join(f.repo, "batc.py")); statErr != nil {
				t.Errorf("script was moved despite refusal: %v", statErr)
			}
		})
	}
}

func TestService_Install_RepoDirNotADirectory(t *testing.T) {
	f := newFixture(t)
	opts := f.options()
	opts.RepoDir = filepath.Join(f.repo, "README.md")

	_, err := f.svc.Install(opts)
	if !errors.Is(err, ErrUnsafeRepoDir) {
		t.Fatalf("Install() error = %v, want ErrUnsafeRepoDir", err)
	}
	if _, statErr := os.Stat(filepath.Join(f.repo, "batc.py")); statErr != nil {
		t.Errorf("script was moved despite refusal: %v", statErr)
	}
}

func TestService_Install_ShellConfigErrors(t *testing.T) {
	homeErr := errors.New("no passwd entry")
	appendErr := errors.New("read-only file system")

	tests := []struct {
		name    string
		mock    func(home string) *testutil.MockShellConfigAccessor
		wantErr error
	}{
		{
			name: "home directory cannot be resolved",
			mock: func(string) *testutil.MockShellConfigAccessor {
				return &testutil.MockShellConfigAccessor{
					HomeDirFunc: func() (string, error) { return "", homeErr },
				}
			},
			wantErr: homeErr,
		},
		{
			name: "alias cannot be appended",
			mock: func(home string) *testutil.MockShellConfigAccessor {
				return &testutil.MockShellConfigAccessor{
					HomeDirFunc: func() (string, error) { return home, nil },
					SelectProfileFunc: func() (shell.Profile, bool, error) {
						return shell.Profile{Shell: shell.Bash, Path: filepath.Join(home, ".bashrc")}, true, nil
					},
					AppendAliasFunc: func(shell.Profile, alias.Alias) error { return appendErr },
				}
			},
			wantErr: appendErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			reloader := &testutil.MockProfileReloader{}
			svc := NewService(scriptstore.NewFileScriptStore(), tt.mock(f.home), reloader, nil)

			_, err := svc.Install(f.options())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Install() error = %v, want %v", err, tt.wantErr)
			}
			if len(reloader.ReloadCalls) != 0 {
				t.Error("Reload called after a failed step")
			}
			if _, statErr := os.Stat(f.repo); statErr != nil {
				t.Errorf("repository removed after a failed step: %v", statErr)
			}
		})
	}
}

func TestService_Install_HomeWithQuote(t *testing.T) {
	f := newFixture(t)
	home := filepath.Join(filepath.Dir(f.home), "o'brien")
	if err := os.MkdirAll(home, 0755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	mustWrite(t, filepath.Join(home, ".bashrc"), "", 0644)
	svc := NewService(scriptstore.NewFileScriptStore(), shellconfig.NewShellConfigAccessorForHome(home), f.reloader, nil)

	_, err := svc.Install(f.options())
	if !errors.Is(err, ErrUnquotablePath) {
		t.Fatalf("Install() error = %v, want ErrUnquotablePath", err)
	}
	assertMissing(t, filepath.Join(home, ".bin"))
	if got := readFile(t, filepath.Join(home, ".bashrc")); got != "" {
		t.Errorf(".bashrc = %q, want untouched", got)
	}
	if _, statErr := os.Stat(filepath.Join(f.repo, "batc.py")); statErr != nil {
		t.Errorf("script was moved despite refusal: %v", statErr)
	}
}
