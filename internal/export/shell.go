//go:generate go run github.com/dmarkham/enumer -type=ShellType -trimprefix=ShellType -transform=kebab -text
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

type ShellType int

const (
	ShellTypeAuto ShellType = iota
	ShellTypeSh
	ShellTypePowershell
	ShellTypeCmd
)

// EnvName normalizes name into an environment variable name: upper case,
// '-' and '.' replaced by '_'.
func EnvName(name string) string {
	r := strings.NewReplacer("-", "_", ".", "_", " ", "_")
	return strings.ToUpper(r.Replace(strings.TrimSpace(name)))
}

// shellLiteral quotes s for POSIX shells. Single quotes inside s are
// spliced as '\''.
func shellLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func powershellLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func cmdLiteral(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// Assignment returns the statement that sets varName to val in shellType.
// With persist the variable outlives the current session: export for sh,
// the user environment for powershell, setx for cmd.
func Assignment(shellType ShellType, varName string, val string, persist bool) (string, error) {
	switch shellType {
	case ShellTypeSh:
		if persist {
			return fmt.Sprintf("export %s=%s", varName, shellLiteral(val)), nil
		}
		return fmt.Sprintf("%s=%s", varName, shellLiteral(val)), nil
	case ShellTypePowershell:
		if persist {
			return fmt.Sprintf("[System.Environment]::SetEnvironmentVariable('%s',%s,'User')",
				strings.ReplaceAll(varName, "'", "''"), powershellLiteral(val)), nil
		}
		return fmt.Sprintf("$Env:%s = %s", varName, powershellLiteral(val)), nil
	case ShellTypeCmd:
		escaped := cmdLiteral(val)
		if persist {
			return fmt.Sprintf("setx %s %s", varName, escaped), nil
		}
		return fmt.Sprintf("set \"%s=%s\"", varName, strings.Trim(escaped, `"`)), nil
	default:
		return "", fmt.Errorf("unsupported shell type: %v", shellType)
	}
}

// ResolveShellType returns shellType unless it is ShellTypeAuto, in which
// case the calling shell is detected.
func ResolveShellType(shellType ShellType) (ShellType, error) {
	switch shellType {
	case ShellTypeSh, ShellTypePowershell, ShellTypeCmd:
		return shellType, nil
	case ShellTypeAuto:
		name, err := detectUserShell()
		if err != nil {
			return ShellTypeAuto, fmt.Errorf("cannot detect user shell: %w", err)
		}
		return shellTypeFromName(name), nil
	default:
		return ShellTypeAuto, fmt.Errorf("unsupported shell type: %v", shellType)
	}
}

func shellTypeFromName(name string) ShellType {
	name = strings.TrimSuffix(strings.ToLower(name), ".exe")
	switch name {
	case "powershell", "pwsh":
		return ShellTypePowershell
	case "cmd":
		return ShellTypeCmd
	default:
		// 其余一律按 sh 处理
		return ShellTypeSh
	}
}

var knownShells = []string{
	"bash", "zsh", "fish", "ksh", "sh", "dash", "tcsh", "csh",
	"powershell", "pwsh", "cmd",
}

// detectUserShell walks the parent process chain with gopsutil looking for
// a known shell, then falls back to SHELL and COMSPEC, which only name the
// default shell rather than the one actually running us.
func detectUserShell() (string, error) {
	p, err := process.NewProcess(int32(os.Getppid()))
	if err == nil {
		seen := map[int32]struct{}{}
		for p != nil {
			if _, ok := seen[p.Pid]; ok {
				break
			}
			seen[p.Pid] = struct{}{}

			name, _ := p.Name()
			if name == "" {
				if exe, _ := p.Exe(); exe != "" {
					name = filepath.Base(exe)
				}
			}
			n := strings.TrimSuffix(strings.ToLower(name), ".exe")
			for _, k := range knownShells {
				if n == k {
					return name, nil
				}
			}

			parent, perr := p.Parent()
			if perr != nil || parent == nil {
				break
			}
			p = parent
		}
	}

	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh), nil
	}
	if com := os.Getenv("COMSPEC"); com != "" {
		return filepath.Base(com), nil
	}
	return "", fmt.Errorf("user shell not detected")
}
