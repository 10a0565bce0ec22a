package system

import (
	"os"
	"os/exec"

	"github.com/pterm/pterm"

	"github.com/herfiles/herfiles/pkg/logging"
)

// ExecInstaller installs packages through the configured OS package
// manager. Managers that need root are invoked through sudo; the package
// manager handles its own elevation prompts.
type ExecInstaller struct {
	// Manager is the package manager command: brew, apt, dnf or pacman.
	Manager string
}

// NewInstaller creates an installer for the given package manager.
func NewInstaller(manager string) *ExecInstaller {
	return &ExecInstaller{Manager: manager}
}

// Install installs the package with the given id. Command output is
// streamed to the operator. Returns true on success.
func (i *ExecInstaller) Install(id, description string) bool {
	logger := logging.GetLogger("system.installer")

	argv := i.commandFor(id)
	if argv == nil {
		logger.Error().Str("manager", i.Manager).Msg("unsupported package manager")
		return false
	}

	pterm.Info.Printfln("Installing %s via %s...", description, i.Manager)
	logger.Info().Str("package", id).Strs("argv", argv).Msg("running package install")

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		logger.Error().Err(err).Str("package", id).Msg("package install failed")
		pterm.Error.Printfln("Failed to install %s", description)
		return false
	}

	pterm.Success.Printfln("Installed %s", description)
	return true
}

func (i *ExecInstaller) commandFor(id string) []string {
	switch i.Manager {
	case "brew":
		return []string{"brew", "install", id}
	case "apt":
		return []string{"sudo", "apt-get", "install", "-y", id}
	case "dnf":
		return []string{"sudo", "dnf", "install", "-y", id}
	case "pacman":
		return []string{"sudo", "pacman", "-S", "--noconfirm", id}
	default:
		return nil
	}
}
