package platform

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"go.trai.ch/zerr"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

var (
	// ErrPathNotFound is returned when the target of an open/reveal request is missing.
	ErrPathNotFound = zerr.New("path does not exist")

	// ErrUnsupportedOS is returned on platforms without a known desktop shell.
	ErrUnsupportedOS = zerr.New("unsupported operating system")

	// ErrNoFileManager is returned on Linux when neither xdg-open nor a known
	// file manager could be started.
	ErrNoFileManager = zerr.New("no suitable file manager found")
)

// runCommand executes an external program; tests replace it.
var runCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// OpenFileInManager opens the system file manager with path highlighted.
// On Linux the parent directory is opened instead.
func OpenFileInManager(path string) error {
	absPath, err := existingAbs(path)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin:
		return runCommand(OpenCommand, MacOSSelectFlag, absPath)
	case OSWindows:
		return runCommand(ExplorerCommand, WindowsSelectParam+absPath)
	case OSLinux:
		return openInManagerLinux(filepath.Dir(absPath))
	default:
		return zerr.With(ErrUnsupportedOS, "os", runtime.GOOS)
	}
}

// OpenDirectory opens dir itself in the system file manager.
func OpenDirectory(dir string) error {
	absPath, err := existingAbs(dir)
	if err != nil {
		return err
	}
	if runtime.GOOS == OSLinux {
		return openInManagerLinux(absPath)
	}
	return OpenFileWithDefaultApp(absPath)
}

// openInManagerLinux tries xdg-open, then the common file managers.
func openInManagerLinux(dir string) error {
	if err := runCommand(XDGOpenCommand, dir); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return runCommand(fm, dir)
		}
	}

	return ErrNoFileManager
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(path string) error {
	absPath, err := existingAbs(path)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin:
		return runCommand(OpenCommand, absPath)
	case OSWindows:
		return runCommand(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath)
	case OSLinux:
		return runCommand(XDGOpenCommand, absPath)
	default:
		return zerr.With(ErrUnsupportedOS, "os", runtime.GOOS)
	}
}

func existingAbs(path string) (string, error) {
	if path == "" {
		return "", zerr.With(ErrPathNotFound, "path", path)
	}
	if _, err := os.Stat(path); err != nil {
		return "", zerr.With(zerr.Wrap(err, ErrPathNotFound.Error()), "path", path)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.Wrap(err, "failed to get absolute path")
	}
	return absPath, nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeVideosDir returns the standard Videos directory for the user
func GetHomeVideosDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", zerr.Wrap(err, "failed to get user home directory")
	}
	return filepath.Join(homeDir, "Videos"), nil
}
